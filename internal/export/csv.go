// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package export serializes search results for download.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/jcteacher/threads-search-web/pkg/types"
)

// Columns is the fixed CSV column order.
var Columns = []string{
	"id", "permalink", "text", "username",
	"like_count", "reply_count", "repost_count", "created_time",
}

// utf8BOM is prepended so spreadsheet applications detect UTF-8.
const utf8BOM = "\xef\xbb\xbf"

// WriteCSV writes posts as CSV to w: a UTF-8 byte-order mark, the header
// row, then one row per post. Absent fields become empty cells. The header
// is written even when posts is empty.
func WriteCSV(w io.Writer, posts []types.Post) error {
	if _, err := io.WriteString(w, utf8BOM); err != nil {
		return fmt.Errorf("writing BOM: %w", err)
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(Columns); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	for _, p := range posts {
		if err := cw.Write(record(p)); err != nil {
			return fmt.Errorf("writing row for %s: %w", p.ID, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

func record(p types.Post) []string {
	return []string{
		p.ID,
		strDeref(p.Permalink),
		p.Text,
		p.Username,
		intCell(p.LikeCount),
		intCell(p.ReplyCount),
		intCell(p.RepostCount),
		p.CreatedTime,
	}
}

func strDeref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func intCell(n *int) string {
	if n == nil {
		return ""
	}
	return strconv.Itoa(*n)
}
