// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared data structures for the threads-search service.
package types

// Post represents one Threads post as returned by the upstream Graph API.
// The keyword-search endpoint may return partially populated records, so
// presence-sensitive fields use pointers: a nil LikeCount means the count
// was absent from the response, which is not the same as a count of zero.
type Post struct {
	// ID is the upstream media identifier.
	ID string `json:"id"`

	// Permalink is the public URL of the post. Absence signals a partial
	// search record that should be completed via the detail endpoint.
	Permalink *string `json:"permalink,omitempty"`

	// Text is the post body.
	Text string `json:"text,omitempty"`

	// Username is the author's handle.
	Username string `json:"username,omitempty"`

	// LikeCount, ReplyCount, and RepostCount are engagement counters.
	LikeCount   *int `json:"like_count,omitempty"`
	ReplyCount  *int `json:"reply_count,omitempty"`
	RepostCount *int `json:"repost_count,omitempty"`

	// CreatedTime is the creation timestamp as reported upstream.
	CreatedTime string `json:"created_time,omitempty"`
}

// Likes returns the like count, treating an absent count as zero.
func (p Post) Likes() int {
	if p.LikeCount == nil {
		return 0
	}
	return *p.LikeCount
}

// NeedsEnrichment reports whether the post lacks the fields that signal a
// partial search record: a missing like count or a missing permalink.
func (p Post) NeedsEnrichment() bool {
	return p.LikeCount == nil || p.Permalink == nil
}

// Merge copies every field present in detail onto p. Detail fields win on
// collision; fields absent from detail leave the existing values untouched.
func (p *Post) Merge(detail Post) {
	if detail.ID != "" {
		p.ID = detail.ID
	}
	if detail.Permalink != nil {
		p.Permalink = detail.Permalink
	}
	if detail.Text != "" {
		p.Text = detail.Text
	}
	if detail.Username != "" {
		p.Username = detail.Username
	}
	if detail.LikeCount != nil {
		p.LikeCount = detail.LikeCount
	}
	if detail.ReplyCount != nil {
		p.ReplyCount = detail.ReplyCount
	}
	if detail.RepostCount != nil {
		p.RepostCount = detail.RepostCount
	}
	if detail.CreatedTime != "" {
		p.CreatedTime = detail.CreatedTime
	}
}
