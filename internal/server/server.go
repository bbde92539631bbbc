// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package server exposes the search pipeline over HTTP: a static search
// page, a JSON search API, and a CSV export endpoint.
package server

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/jcteacher/threads-search-web/internal/pipeline"
)

// Server handles the web surface. It holds no per-request state; every
// request runs the pipeline independently.
type Server struct {
	client pipeline.Searcher
	mux    *http.ServeMux
	log    *slog.Logger
}

// New builds a Server around the given upstream client.
func New(client pipeline.Searcher, log *slog.Logger) *Server {
	if log == nil {
		log = slog.Default()
	}
	s := &Server{client: client, mux: http.NewServeMux(), log: log}
	s.routes()
	return s
}

// Handler returns the root handler, for tests and embedding.
func (s *Server) Handler() http.Handler { return s.mux }

// ListenAndServe serves on addr until ctx is cancelled.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	httpSrv := &http.Server{
		Addr:    addr,
		Handler: s.mux,
	}
	go func() {
		<-ctx.Done()
		_ = httpSrv.Shutdown(context.Background())
	}()
	s.log.Info("listening", "addr", addr)
	return httpSrv.ListenAndServe()
}
