// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package threads

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jcteacher/threads-search-web/pkg/types"
)

func init() {
	// Use tiny backoffs so retry tests finish quickly.
	statusRetryDelay = 1 * time.Millisecond
	networkRetryDelay = 1 * time.Millisecond
}

func discardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func testClient(t *testing.T, serverURL string) *Client {
	t.Helper()
	c, err := New(types.UpstreamConfig{
		BaseURL: serverURL,
		Token:   "test-token",
	}, discardLogger())
	require.NoError(t, err)
	return c
}

func TestNewRequiresToken(t *testing.T) {
	_, err := New(types.UpstreamConfig{BaseURL: "https://example.com"}, discardLogger())
	assert.ErrorIs(t, err, ErrMissingToken)
}

func TestGetJSONSendsBearerToken(t *testing.T) {
	var gotAuth string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		fmt.Fprint(w, `{"data":[]}`)
	}))
	defer ts.Close()

	c := testClient(t, ts.URL)
	_, err := c.KeywordSearch(context.Background(), "golang", 10, 0, 0)
	require.NoError(t, err)
	assert.Equal(t, "Bearer test-token", gotAuth)
}

func TestGetJSONRetriesServiceUnavailableThenSucceeds(t *testing.T) {
	var calls int32
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		n := atomic.AddInt32(&calls, 1)
		if n <= 2 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		fmt.Fprint(w, `{"data":[{"id":"1","like_count":7}]}`)
	}))
	defer ts.Close()

	c := testClient(t, ts.URL)
	posts, err := c.KeywordSearch(context.Background(), "golang", 10, 0, 0)
	require.NoError(t, err)
	require.Len(t, posts, 1)
	assert.Equal(t, 7, posts[0].Likes())
	assert.Equal(t, int32(3), atomic.LoadInt32(&calls))
}

func TestGetJSONDoesNotRetryNotFound(t *testing.T) {
	var calls int32
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusNotFound)
		fmt.Fprint(w, "no such media")
	}))
	defer ts.Close()

	c := testClient(t, ts.URL)
	_, err := c.PostDetail(context.Background(), "12345", nil)
	require.Error(t, err)

	var rejected *RejectedError
	require.ErrorAs(t, err, &rejected)
	assert.Equal(t, http.StatusNotFound, rejected.Status)
	assert.Equal(t, "no such media", rejected.Body)
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
}

func TestGetJSONExhaustsRetryableStatuses(t *testing.T) {
	var calls int32
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusServiceUnavailable)
		fmt.Fprint(w, "overloaded")
	}))
	defer ts.Close()

	c := testClient(t, ts.URL)
	_, err := c.KeywordSearch(context.Background(), "golang", 10, 0, 0)
	require.Error(t, err)

	var unreachable *UnreachableError
	require.ErrorAs(t, err, &unreachable)
	assert.Equal(t, int32(3), atomic.LoadInt32(&calls))

	// The last retryable response is preserved for diagnostics.
	var rejected *RejectedError
	require.ErrorAs(t, unreachable.Err, &rejected)
	assert.Equal(t, http.StatusServiceUnavailable, rejected.Status)
	assert.Equal(t, "overloaded", rejected.Body)
}

func TestGetJSONExhaustsNetworkFailures(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	ts.Close() // every dial now fails

	c := testClient(t, ts.URL)
	_, err := c.KeywordSearch(context.Background(), "golang", 10, 0, 0)
	require.Error(t, err)

	var unreachable *UnreachableError
	assert.ErrorAs(t, err, &unreachable)
}

func TestGetJSONContextCancelledDuringBackoff(t *testing.T) {
	old := statusRetryDelay
	statusRetryDelay = 500 * time.Millisecond
	defer func() { statusRetryDelay = old }()

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer ts.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	c := testClient(t, ts.URL)
	_, err := c.KeywordSearch(ctx, "golang", 10, 0, 0)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestKeywordSearchClampsLimit(t *testing.T) {
	tests := []struct {
		name      string
		limit     int
		wantLimit string
	}{
		{"below range", 0, "1"},
		{"negative", -5, "1"},
		{"in range", 50, "50"},
		{"above range", 1000, "200"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotLimit string
			ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				gotLimit = r.URL.Query().Get("limit")
				fmt.Fprint(w, `{"data":[]}`)
			}))
			defer ts.Close()

			c := testClient(t, ts.URL)
			_, err := c.KeywordSearch(context.Background(), "golang", tt.limit, 0, 0)
			require.NoError(t, err)
			assert.Equal(t, tt.wantLimit, gotLimit)
		})
	}
}

func TestKeywordSearchTimeBounds(t *testing.T) {
	var query map[string][]string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		query = r.URL.Query()
		fmt.Fprint(w, `{"data":[]}`)
	}))
	defer ts.Close()

	c := testClient(t, ts.URL)

	_, err := c.KeywordSearch(context.Background(), "golang", 10, 1700000000, 1700086400)
	require.NoError(t, err)
	assert.Equal(t, []string{"1700000000"}, query["since"])
	assert.Equal(t, []string{"1700086400"}, query["until"])

	_, err = c.KeywordSearch(context.Background(), "golang", 10, 0, 0)
	require.NoError(t, err)
	assert.NotContains(t, query, "since")
	assert.NotContains(t, query, "until")
}

func TestKeywordSearchMissingDataField(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprint(w, `{}`)
	}))
	defer ts.Close()

	c := testClient(t, ts.URL)
	posts, err := c.KeywordSearch(context.Background(), "golang", 10, 0, 0)
	require.NoError(t, err)
	assert.Empty(t, posts)
}

func TestPostDetailRequestsDefaultFields(t *testing.T) {
	var gotPath, gotFields string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotFields = r.URL.Query().Get("fields")
		fmt.Fprint(w, `{"id":"12345","permalink":"https://threads.net/p/1","like_count":3}`)
	}))
	defer ts.Close()

	c := testClient(t, ts.URL)
	post, err := c.PostDetail(context.Background(), "12345", nil)
	require.NoError(t, err)

	assert.Equal(t, "/12345", gotPath)
	assert.Equal(t, "id,permalink,like_count,reply_count,repost_count,text,username,created_time", gotFields)
	assert.Equal(t, "12345", post.ID)
	require.NotNil(t, post.Permalink)
	assert.Equal(t, "https://threads.net/p/1", *post.Permalink)
	assert.Equal(t, 3, post.Likes())
}
