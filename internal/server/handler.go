// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/jcteacher/threads-search-web/internal/export"
	"github.com/jcteacher/threads-search-web/internal/pipeline"
	"github.com/jcteacher/threads-search-web/internal/threads"
	"github.com/jcteacher/threads-search-web/internal/timeutil"
)

const exportFilename = "threads_results.csv"

// paramsFromRequest builds pipeline.Params from the shared query parameters
// of /api/search and /api/export.
func paramsFromRequest(r *http.Request) (pipeline.Params, error) {
	q := r.URL.Query()

	p := pipeline.Params{
		Query: q.Get("q"),
		Since: q.Get("since"),
		Until: q.Get("until"),
		Limit: pipeline.DefaultLimit,
	}
	if p.Query == "" {
		return p, errors.New("q is required")
	}

	if v := q.Get("min_likes"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			return p, errors.New("min_likes must be a non-negative integer")
		}
		p.MinLikes = n
	}

	if v := q.Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 || n > pipeline.MaxLimit {
			return p, errors.New("limit must be an integer between 1 and 500")
		}
		p.Limit = n
	}

	return p, nil
}

func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	p, err := paramsFromRequest(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	posts, err := pipeline.Search(r.Context(), s.client, p, s.log)
	if err != nil {
		s.writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]any{
		"count": len(posts),
		"items": posts,
	})
}

func (s *Server) handleExport(w http.ResponseWriter, r *http.Request) {
	p, err := paramsFromRequest(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	posts, err := pipeline.Search(r.Context(), s.client, p, s.log)
	if err != nil {
		s.writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename=`+exportFilename)
	if err := export.WriteCSV(w, posts); err != nil {
		s.log.Error("csv export failed mid-stream", "err", err)
	}
}

// writeError maps pipeline failures onto HTTP statuses: bad time bounds are
// the caller's fault, an upstream rejection keeps its original status, and
// exhausted retries surface as a bad gateway.
func (s *Server) writeError(w http.ResponseWriter, err error) {
	var perr *timeutil.ParseError
	var rejected *threads.RejectedError
	var unreachable *threads.UnreachableError

	switch {
	case errors.As(err, &perr):
		http.Error(w, perr.Error(), http.StatusBadRequest)
	case errors.As(err, &unreachable):
		s.log.Error("upstream unreachable", "err", err)
		http.Error(w, unreachable.Error(), http.StatusBadGateway)
	case errors.As(err, &rejected):
		s.log.Warn("upstream rejected request", "status", rejected.Status)
		http.Error(w, rejected.Body, rejected.Status)
	default:
		s.log.Error("search failed", "err", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
