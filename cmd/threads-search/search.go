// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jcteacher/threads-search-web/internal/export"
	"github.com/jcteacher/threads-search-web/internal/pipeline"
	"github.com/jcteacher/threads-search-web/internal/threads"
	"github.com/jcteacher/threads-search-web/pkg/types"
)

var searchCmd = &cobra.Command{
	Use:   "search",
	Short: "Run a one-shot keyword search from the terminal",
	Long: `Search queries the Threads keyword-search endpoint, enriches partial
records, filters by minimum like count, and prints the results ranked by
likes. Output is a table by default; use --json for JSON or --csv to write
a CSV file.`,
	RunE: runSearch,
}

func init() {
	searchCmd.Flags().StringP("query", "q", "", "keyword to search for (required)")
	searchCmd.Flags().Int("min-likes", 0, "keep only posts with at least this many likes")
	searchCmd.Flags().Int("limit", pipeline.DefaultLimit, "maximum results (1-500; one upstream page of at most 200 is fetched)")
	searchCmd.Flags().String("since", "", "start time bound (Unix seconds, YYYY-MM-DD, or ISO-8601)")
	searchCmd.Flags().String("until", "", "end time bound (Unix seconds, YYYY-MM-DD, or ISO-8601)")
	searchCmd.Flags().Bool("json", false, "output results as JSON")
	searchCmd.Flags().String("csv", "", "write results as CSV to this file")

	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	query, _ := cmd.Flags().GetString("query")
	if query == "" {
		return fmt.Errorf("provide a keyword with --query")
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	log := setupLogger(cfg)

	client, err := threads.New(cfg.Upstream, log)
	if err != nil {
		return err
	}

	minLikes, _ := cmd.Flags().GetInt("min-likes")
	limit, _ := cmd.Flags().GetInt("limit")
	since, _ := cmd.Flags().GetString("since")
	until, _ := cmd.Flags().GetString("until")

	posts, err := pipeline.Search(context.Background(), client, pipeline.Params{
		Query:    query,
		MinLikes: minLikes,
		Limit:    limit,
		Since:    since,
		Until:    until,
	}, log)
	if err != nil {
		return err
	}

	if path, _ := cmd.Flags().GetString("csv"); path != "" {
		f, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("creating %s: %w", path, err)
		}
		defer f.Close()
		if err := export.WriteCSV(f, posts); err != nil {
			return err
		}
		fmt.Fprintf(os.Stderr, "Wrote %d result(s) to %s\n", len(posts), path)
		return nil
	}

	if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(posts)
	}

	formatTable(posts, os.Stdout)
	return nil
}

// formatTable writes results as a human-readable ranked table.
func formatTable(posts []types.Post, w io.Writer) {
	if len(posts) == 0 {
		fmt.Fprintln(w, "No results found.")
		return
	}

	fmt.Fprintf(w, "%-4s  %6s  %-16s  %-50s  %s\n", "Rank", "Likes", "User", "Text", "Permalink")
	fmt.Fprintln(w, strings.Repeat("-", 110))

	for i, p := range posts {
		permalink := ""
		if p.Permalink != nil {
			permalink = *p.Permalink
		}
		fmt.Fprintf(w, "%-4d  %6d  %-16s  %-50s  %s\n",
			i+1, p.Likes(), truncate(p.Username, 16), truncate(excerpt(p.Text), 50), permalink)
	}

	fmt.Fprintf(w, "\n%d result(s)\n", len(posts))
}

// excerpt flattens the post body onto one line.
func excerpt(text string) string {
	return strings.Join(strings.Fields(text), " ")
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}
