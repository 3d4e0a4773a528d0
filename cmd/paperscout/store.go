package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/paperscout/internal/store"
	"github.com/pdiddy/paperscout/pkg/types"
)

var storeCmd = &cobra.Command{
	Use:   "store",
	Short: "Inspect previously persisted fetch results",
	Long: `Store reads the SQLite database written by fetch --db and lists the
persisted papers, optionally filtered by the originating query or PMID.`,
}

var storeListCmd = &cobra.Command{
	Use:   "list",
	Short: "List persisted papers",
	RunE:  runStoreList,
}

func init() {
	storeListCmd.Flags().String("db", "paperscout.db", "SQLite database file")
	storeListCmd.Flags().String("query", "", "filter by the originating search query")
	storeListCmd.Flags().String("pmid", "", "filter by PMID")
	storeListCmd.Flags().Int("max-results", 20, "maximum number of rows to list")
	storeListCmd.Flags().Bool("json", false, "output rows as JSON")

	storeCmd.AddCommand(storeListCmd)
	rootCmd.AddCommand(storeCmd)
}

func runStoreList(cmd *cobra.Command, args []string) error {
	dbPath, _ := cmd.Flags().GetString("db")
	query, _ := cmd.Flags().GetString("query")
	pmid, _ := cmd.Flags().GetString("pmid")
	maxResults, _ := cmd.Flags().GetInt("max-results")
	jsonOutput, _ := cmd.Flags().GetBool("json")

	if _, err := os.Stat(dbPath); err != nil {
		return fmt.Errorf("database %s not found: run fetch --db first", dbPath)
	}

	s, err := store.Open(types.StoreConfig{Path: dbPath, MaxResults: maxResults})
	if err != nil {
		return err
	}
	defer s.Close()

	rows, err := s.List(context.Background(), store.ListOptions{
		Query:      query,
		PubmedID:   pmid,
		MaxResults: maxResults,
	})
	if err != nil {
		return err
	}

	if jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(rows)
	}

	if len(rows) == 0 {
		fmt.Println("No records found.")
		return nil
	}

	fmt.Fprintf(os.Stdout, "%-10s  %-50s  %-12s  %-30s  %s\n",
		"PMID", "Title", "Date", "Company Affiliation(s)", "Query")
	fmt.Fprintln(os.Stdout, strings.Repeat("-", 120))

	for _, r := range rows {
		title := r.Title
		if len(title) > 50 {
			title = title[:47] + "..."
		}
		affils := r.CompanyAffiliations
		if len(affils) > 30 {
			affils = affils[:27] + "..."
		}
		fmt.Fprintf(os.Stdout, "%-10s  %-50s  %-12s  %-30s  %s\n",
			r.PubmedID, title, r.PublicationDate, affils, r.Query)
	}

	fmt.Fprintf(os.Stdout, "\n%d records\n", len(rows))
	return nil
}
