// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package threads

import (
	"errors"
	"fmt"
)

// ErrMissingToken reports that no bearer token was configured. This is a
// startup-time condition; no upstream call is attempted without a token.
var ErrMissingToken = errors.New("threads: access token not configured (set THREADS_TOKEN)")

// RejectedError reports a non-retryable upstream response: any status other
// than 200 and the retryable set (429, 500, 502, 503, 504).
type RejectedError struct {
	Status int
	Body   string
}

func (e *RejectedError) Error() string {
	return fmt.Sprintf("threads: upstream rejected request with HTTP %d: %s", e.Status, e.Body)
}

// UnreachableError reports that every retry attempt was exhausted. Err holds
// the last underlying failure: a transport error, or a *RejectedError
// carrying the final retryable status when the upstream kept answering
// 429/5xx without ever returning 200.
type UnreachableError struct {
	Err error
}

func (e *UnreachableError) Error() string {
	return fmt.Sprintf("threads: upstream unreachable after retries: %v", e.Err)
}

func (e *UnreachableError) Unwrap() error { return e.Err }
