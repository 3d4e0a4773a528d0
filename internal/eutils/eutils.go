// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package eutils queries the NCBI E-utilities API: ESearch to resolve a
// query string into PMIDs and EFetch to retrieve the article records for
// a batch of PMIDs.
package eutils

import (
	"context"
	"encoding/json"
	"encoding/xml"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/pdiddy/paperscout/internal/httputil"
	"github.com/pdiddy/paperscout/pkg/types"
)

// E-utilities endpoints. Declared as vars so tests can substitute
// httptest servers.
var (
	searchAPIBase = "https://eutils.ncbi.nlm.nih.gov/entrez/eutils/esearch.fcgi"
	fetchAPIBase  = "https://eutils.ncbi.nlm.nih.gov/entrez/eutils/efetch.fcgi"
)

// Client calls the E-utilities endpoints with the configured politeness
// parameters (tool, email, api_key).
type Client struct {
	Client *http.Client
	Config types.FetchConfig
}

// Search resolves a query string to an ordered list of PMIDs via ESearch.
// An empty result is valid: it means zero matching papers.
func (c *Client) Search(ctx context.Context, query string) ([]string, error) {
	if strings.TrimSpace(query) == "" {
		return nil, fmt.Errorf("query is empty")
	}

	maxResults := c.Config.MaxResults
	if maxResults <= 0 {
		maxResults = 10
	}

	params := url.Values{
		"db":      {"pubmed"},
		"term":    {query},
		"retmode": {"json"},
		"retmax":  {fmt.Sprintf("%d", maxResults)},
	}
	c.addIdentification(params)

	body, err := c.get(ctx, searchAPIBase+"?"+params.Encode())
	if err != nil {
		return nil, fmt.Errorf("ESearch request: %w", err)
	}
	defer body.Close()

	var sr esearchResponse
	if err := json.NewDecoder(body).Decode(&sr); err != nil {
		return nil, fmt.Errorf("parsing ESearch response: %w", err)
	}
	return sr.Result.IDList, nil
}

// Fetch retrieves the full article records for a batch of PMIDs via
// EFetch. An empty PMID list short-circuits to an empty result without a
// network call.
func (c *Client) Fetch(ctx context.Context, pmids []string) ([]Article, error) {
	if len(pmids) == 0 {
		return nil, nil
	}

	params := url.Values{
		"db":      {"pubmed"},
		"id":      {strings.Join(pmids, ",")},
		"retmode": {"xml"},
	}
	c.addIdentification(params)

	body, err := c.get(ctx, fetchAPIBase+"?"+params.Encode())
	if err != nil {
		return nil, fmt.Errorf("EFetch request: %w", err)
	}
	defer body.Close()

	var set articleSet
	if err := xml.NewDecoder(body).Decode(&set); err != nil {
		return nil, fmt.Errorf("parsing EFetch response: %w", err)
	}
	return set.Articles, nil
}

// addIdentification appends the NCBI identification parameters. The tool
// and email parameters let NCBI contact the operator instead of blocking
// the client; an API key raises the rate limit.
func (c *Client) addIdentification(params url.Values) {
	if c.Config.Tool != "" {
		params.Set("tool", c.Config.Tool)
	}
	if c.Config.Email != "" {
		params.Set("email", c.Config.Email)
	}
	if c.Config.APIKey != "" {
		params.Set("api_key", c.Config.APIKey)
	}
}

func (c *Client) get(ctx context.Context, reqURL string) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", c.Config.UserAgent)

	resp, err := httputil.DoWithRetry(ctx, c.Client, req, 0)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, fmt.Errorf("E-utilities returned HTTP %d", resp.StatusCode)
	}
	return resp.Body, nil
}

// ESearch JSON structures.
type esearchResponse struct {
	Result esearchResult `json:"esearchresult"`
}

type esearchResult struct {
	Count  string   `json:"count"`
	IDList []string `json:"idlist"`
}
