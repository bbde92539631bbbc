// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package timeutil converts flexible date/time input into Unix timestamps
// for upstream query parameters.
package timeutil

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// layouts lists the accepted date/time formats, tried in order. Layouts
// without a zone offset resolve in UTC, so "2024-01-01" means midnight UTC
// on that date.
var layouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// ParseError reports an input that is neither a Unix timestamp nor a
// recognizable date/time string.
type ParseError struct {
	Input string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("unrecognized date/time %q (want Unix seconds, YYYY-MM-DD, or ISO-8601)", e.Input)
}

// ToUnix converts s into integer Unix seconds. An empty string maps to 0
// (meaning "unset"). Numeric input is treated as an existing Unix timestamp
// and truncated to whole seconds. Anything else is parsed against the
// layout list above.
func ToUnix(s string) (int64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, nil
	}

	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		return n, nil
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return int64(f), nil
	}

	for _, layout := range layouts {
		if t, err := time.ParseInLocation(layout, s, time.UTC); err == nil {
			return t.Unix(), nil
		}
	}
	return 0, &ParseError{Input: s}
}
