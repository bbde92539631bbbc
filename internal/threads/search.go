// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package threads

import (
	"context"
	"net/url"
	"strconv"

	"github.com/jcteacher/threads-search-web/pkg/types"
)

// upstreamMaxLimit is the largest result count the keyword-search endpoint
// accepts in one call. The service never paginates: callers asking for more
// than this still get a single page of at most 200 items.
const upstreamMaxLimit = 200

type keywordSearchResponse struct {
	Data []types.Post `json:"data"`
}

// KeywordSearch queries the keyword-search endpoint. limit is clamped to
// [1, 200] before being sent. since and until are Unix seconds; zero means
// the bound is omitted.
func (c *Client) KeywordSearch(ctx context.Context, q string, limit int, since, until int64) ([]types.Post, error) {
	if limit < 1 {
		limit = 1
	}
	if limit > upstreamMaxLimit {
		limit = upstreamMaxLimit
	}

	params := url.Values{
		"q":     {q},
		"limit": {strconv.Itoa(limit)},
	}
	if since > 0 {
		params.Set("since", strconv.FormatInt(since, 10))
	}
	if until > 0 {
		params.Set("until", strconv.FormatInt(until, 10))
	}

	var resp keywordSearchResponse
	if err := c.getJSON(ctx, "/keyword_search", params, &resp); err != nil {
		return nil, err
	}
	return resp.Data, nil
}
