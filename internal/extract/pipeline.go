// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package extract

import (
	"context"
	"fmt"
	"io"

	"github.com/pdiddy/paperscout/internal/eutils"
	"github.com/pdiddy/paperscout/pkg/types"
)

// Fetcher retrieves article records for a batch of PMIDs. *eutils.Client
// implements it; tests substitute a mock.
type Fetcher interface {
	Fetch(ctx context.Context, pmids []string) ([]eutils.Article, error)
}

// BatchResult holds the outcome of extracting one fetched batch.
type BatchResult struct {
	// Records lists the extracted papers in original article order.
	Records []types.PaperRecord
	Skipped int
	Failed  int
}

// Total returns the number of articles processed.
func (r BatchResult) Total() int {
	return len(r.Records) + r.Skipped + r.Failed
}

// Run fetches the article records for the given PMIDs and extracts them.
// An empty PMID list yields an empty result without touching the network.
func Run(ctx context.Context, f Fetcher, pmids []string, w io.Writer) (BatchResult, error) {
	if len(pmids) == 0 {
		return BatchResult{}, nil
	}
	articles, err := f.Fetch(ctx, pmids)
	if err != nil {
		return BatchResult{}, err
	}
	return ExtractBatch(articles, w), nil
}

// ExtractBatch runs ExtractArticle over every article in order. Articles
// without a commercial affiliation are dropped; malformed articles are
// reported to w and skipped without aborting the batch.
func ExtractBatch(articles []eutils.Article, w io.Writer) BatchResult {
	var result BatchResult
	for _, a := range articles {
		r := ExtractArticle(a)
		switch r.Status {
		case StatusExtracted:
			result.Records = append(result.Records, *r.Record)
		case StatusSkipped:
			result.Skipped++
		case StatusFailed:
			fmt.Fprintf(w, "error parsing article %s: %v\n", r.PMID, r.Err)
			result.Failed++
		}
	}
	return result
}
