// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package threads

import (
	"context"
	"net/url"
	"strings"

	"github.com/jcteacher/threads-search-web/pkg/types"
)

// DefaultDetailFields is the field set requested from the detail endpoint
// when the caller does not name its own.
var DefaultDetailFields = []string{
	"id", "permalink", "like_count", "reply_count", "repost_count",
	"text", "username", "created_time",
}

// PostDetail fetches the full field set for one post by media ID. A nil or
// empty fields slice requests DefaultDetailFields.
func (c *Client) PostDetail(ctx context.Context, mediaID string, fields []string) (types.Post, error) {
	if len(fields) == 0 {
		fields = DefaultDetailFields
	}

	params := url.Values{
		"fields": {strings.Join(fields, ",")},
	}

	var post types.Post
	if err := c.getJSON(ctx, "/"+mediaID, params, &post); err != nil {
		return types.Post{}, err
	}
	return post, nil
}
