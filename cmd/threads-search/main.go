// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the threads-search CLI.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/jcteacher/threads-search-web/internal/secrets"
	"github.com/jcteacher/threads-search-web/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the threads-search CLI.
var rootCmd = &cobra.Command{
	Use:   "threads-search",
	Short: "Search Threads public posts by keyword and filter by likes",
	Long: `threads-search is a thin proxy over the Threads Graph API. It searches
public posts by keyword, filters them by minimum like count, and returns
results as a web page, JSON, or CSV.

Run "threads-search serve" to start the web server, or "threads-search
search" for a one-shot query from the terminal. A Threads API access token
is required (THREADS_TOKEN, a .env file, or .secrets/threads-token).`,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./threads-search.yaml or ~/.config/threads-search/config.yaml)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("threads-search")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "threads-search"))
		}
	}

	viper.SetEnvPrefix("THREADS")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// loadConfig builds the resolved service configuration: config file values,
// then the token from the environment or secrets directory, then defaults.
func loadConfig() (types.Config, error) {
	var cfg types.Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return cfg, fmt.Errorf("parsing configuration: %w", err)
	}

	if cfg.Upstream.Token == "" {
		token, err := secrets.Token(".secrets/")
		if err != nil {
			return cfg, err
		}
		cfg.Upstream.Token = token
	}

	cfg.FillDefaults()
	return cfg, nil
}

// setupLogger installs a JSON slog logger at the configured level.
func setupLogger(cfg types.Config) *slog.Logger {
	var level slog.Level
	if err := level.UnmarshalText([]byte(cfg.App.LogLevel)); err != nil {
		level = slog.LevelInfo
	}
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	return logger
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
