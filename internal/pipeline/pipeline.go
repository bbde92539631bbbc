// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package pipeline orchestrates a keyword search: fetch, enrich partial
// records, filter by minimum like count, and rank by likes.
package pipeline

import (
	"context"
	"log/slog"
	"sort"

	"github.com/jcteacher/threads-search-web/internal/timeutil"
	"github.com/jcteacher/threads-search-web/pkg/types"
)

// Searcher is the slice of the upstream client the pipeline needs.
type Searcher interface {
	KeywordSearch(ctx context.Context, q string, limit int, since, until int64) ([]types.Post, error)
	PostDetail(ctx context.Context, mediaID string, fields []string) (types.Post, error)
}

// DefaultLimit is the result limit used when the caller does not set one.
const DefaultLimit = 200

// MaxLimit is the caller-facing cap. Note that the upstream search endpoint
// is only ever asked for one page of at most 200 items, so limits above 200
// do not fetch additional results.
const MaxLimit = 500

// Params holds one search request.
type Params struct {
	Query    string
	MinLikes int
	Limit    int
	// Since and Until are flexible time bounds: Unix seconds or a date
	// string accepted by timeutil.ToUnix. Empty means unbounded.
	Since string
	Until string
}

// Search runs the full search-and-filter pipeline and returns posts with at
// least MinLikes likes, sorted by like count descending. Ties keep their
// upstream order.
//
// Search records that lack a like count or a permalink are completed with a
// per-item detail call. A failed detail call never fails the search: the
// item keeps whatever fields it had, with a missing like count treated as
// zero. Detail calls are sequential, so a search costs up to 1+N upstream
// round-trips.
func Search(ctx context.Context, client Searcher, p Params, log *slog.Logger) ([]types.Post, error) {
	if log == nil {
		log = slog.Default()
	}
	limit := p.Limit
	if limit <= 0 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}

	since, err := timeutil.ToUnix(p.Since)
	if err != nil {
		return nil, err
	}
	until, err := timeutil.ToUnix(p.Until)
	if err != nil {
		return nil, err
	}

	raw, err := client.KeywordSearch(ctx, p.Query, limit, since, until)
	if err != nil {
		return nil, err
	}

	kept := make([]types.Post, 0, len(raw))
	for _, item := range raw {
		if item.NeedsEnrichment() {
			detail, err := client.PostDetail(ctx, item.ID, nil)
			if err != nil {
				log.Warn("enrichment failed, keeping partial record", "id", item.ID, "err", err)
			} else {
				item.Merge(detail)
			}
		}
		if item.Likes() >= p.MinLikes {
			kept = append(kept, item)
		}
	}

	// Stable keeps upstream order for equal like counts.
	sort.SliceStable(kept, func(i, j int) bool {
		return kept[i].Likes() > kept[j].Likes()
	})
	return kept, nil
}
