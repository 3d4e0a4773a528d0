package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/paperscout/internal/eutils"
	"github.com/pdiddy/paperscout/internal/export"
	"github.com/pdiddy/paperscout/internal/extract"
	"github.com/pdiddy/paperscout/internal/store"
	"github.com/pdiddy/paperscout/pkg/types"
)

const (
	defaultTimeout    = 30 * time.Second
	defaultMaxResults = 10
	defaultUserAgent  = "paperscout/0.1"
	defaultTool       = "paperscout"
)

var fetchCmd = &cobra.Command{
	Use:   "fetch [query]",
	Short: "Fetch PubMed papers with commercial affiliations for a query",
	Long: `Fetch resolves the query to a list of PMIDs via ESearch, retrieves the
article records via EFetch, and keeps papers where at least one author
affiliation matches the commercial lexicon. Articles that fail to parse
are reported on stderr and skipped.

With --file the result is written as CSV; without it the records are
printed as indented JSON on stdout.`,
	Args: cobra.ExactArgs(1),
	RunE: runFetch,
}

func init() {
	fetchCmd.Flags().BoolP("debug", "d", false, "print progress details to stderr")
	fetchCmd.Flags().StringP("file", "f", "", "write results to this CSV file instead of stdout")
	fetchCmd.Flags().Int("max-results", 0, "maximum number of PMIDs to request (default 10)")
	fetchCmd.Flags().Duration("timeout", 0, "HTTP request timeout (default 30s)")
	fetchCmd.Flags().String("save", "", "also save the run (query, records, summary) to this YAML file")
	fetchCmd.Flags().String("db", "", "also persist the records to this SQLite database")

	rootCmd.AddCommand(fetchCmd)
}

func runFetch(cmd *cobra.Command, args []string) error {
	query := args[0]
	debug, _ := cmd.Flags().GetBool("debug")
	file, _ := cmd.Flags().GetString("file")
	savePath, _ := cmd.Flags().GetString("save")
	dbPath, _ := cmd.Flags().GetString("db")

	cfg := fetchConfig(cmd)
	client := &eutils.Client{
		Client: &http.Client{Timeout: cfg.Timeout},
		Config: cfg,
	}
	ctx := context.Background()

	if debug {
		fmt.Fprintf(os.Stderr, "Fetching papers for query: %s\n", query)
	}

	pmids, err := client.Search(ctx, query)
	if err != nil {
		return err
	}
	if debug {
		fmt.Fprintf(os.Stderr, "Found %d papers.\n", len(pmids))
	}

	result, err := extract.Run(ctx, client, pmids, os.Stderr)
	if err != nil {
		return err
	}
	if debug {
		fmt.Fprintf(os.Stderr, "Extracted %d record(s), skipped %d, failed %d.\n",
			len(result.Records), result.Skipped, result.Failed)
	}

	if savePath != "" {
		if err := export.WriteRunFile(savePath, query, cfg.MaxResults, len(pmids), result); err != nil {
			return err
		}
		fmt.Fprintf(os.Stderr, "Run saved to %s\n", savePath)
	}

	if dbPath != "" {
		s, err := store.Open(types.StoreConfig{Path: dbPath})
		if err != nil {
			return err
		}
		defer s.Close()
		if err := s.Save(ctx, query, result.Records); err != nil {
			return err
		}
	}

	if file != "" {
		return export.WriteCSV(result.Records, file, os.Stdout)
	}
	return export.WriteJSON(result.Records, os.Stdout)
}

// fetchConfig resolves the fetch configuration from flags, the viper
// config file, and loaded secrets, in that order.
func fetchConfig(cmd *cobra.Command) types.FetchConfig {
	timeout, _ := cmd.Flags().GetDuration("timeout")
	if timeout == 0 {
		timeout = viper.GetDuration("fetch.timeout")
	}
	if timeout == 0 {
		timeout = defaultTimeout
	}

	maxResults, _ := cmd.Flags().GetInt("max-results")
	if maxResults == 0 {
		maxResults = viper.GetInt("fetch.max_results")
	}
	if maxResults == 0 {
		maxResults = defaultMaxResults
	}

	userAgent := viper.GetString("fetch.user_agent")
	if userAgent == "" {
		userAgent = defaultUserAgent
	}

	tool := viper.GetString("fetch.tool")
	if tool == "" {
		tool = defaultTool
	}

	return types.FetchConfig{
		HTTPConfig: types.HTTPConfig{
			Timeout:   timeout,
			UserAgent: userAgent,
		},
		MaxResults: maxResults,
		Tool:       tool,
		Email:      secretDefault("ncbi-email", viper.GetString("fetch.email")),
		APIKey:     secretDefault("ncbi-api-key", viper.GetString("fetch.api_key")),
	}
}
