// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/jcteacher/threads-search-web/internal/server"
	"github.com/jcteacher/threads-search-web/internal/threads"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the search web server",
	Long: `Serve starts the HTTP server: GET / renders the search page,
GET /api/search returns JSON results, and GET /api/export streams CSV.`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().String("addr", "", "listen address (default :8000)")

	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if addr, _ := cmd.Flags().GetString("addr"); addr != "" {
		cfg.Server.ListenAddr = addr
	}
	log := setupLogger(cfg)

	client, err := threads.New(cfg.Upstream, log)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	s := server.New(client, log)
	if err := s.ListenAndServe(ctx, cfg.Server.ListenAddr); !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
