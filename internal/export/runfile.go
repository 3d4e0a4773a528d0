// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package export

import (
	"fmt"
	"os"
	"time"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/paperscout/internal/extract"
	"github.com/pdiddy/paperscout/pkg/types"
)

// RunFile is the on-disk representation of one fetch run: the query, the
// records it produced, and summary counters. A saved run can be reloaded
// later without re-querying PubMed.
type RunFile struct {
	Query   string              `yaml:"query"`
	Config  RunConfig           `yaml:"config"`
	Records []types.PaperRecord `yaml:"records"`
	Summary RunSummary          `yaml:"summary"`
}

// RunConfig stores the fetch configuration that produced the records.
type RunConfig struct {
	MaxResults int `yaml:"max_results"`
}

// RunSummary stores result statistics and a timestamp.
type RunSummary struct {
	Found     int       `yaml:"found"`
	Extracted int       `yaml:"extracted"`
	Skipped   int       `yaml:"skipped"`
	Failed    int       `yaml:"failed"`
	Timestamp time.Time `yaml:"timestamp"`
}

// WriteRunFile saves the query and its batch outcome to a YAML file.
// found is the number of PMIDs the query resolved to, which can exceed
// the number of fetched articles when some were filtered out upstream.
func WriteRunFile(path, query string, maxResults, found int, result extract.BatchResult) error {
	rf := RunFile{
		Query:   query,
		Config:  RunConfig{MaxResults: maxResults},
		Records: result.Records,
		Summary: RunSummary{
			Found:     found,
			Extracted: len(result.Records),
			Skipped:   result.Skipped,
			Failed:    result.Failed,
			Timestamp: time.Now(),
		},
	}

	data, err := yaml.Marshal(&rf)
	if err != nil {
		return fmt.Errorf("marshaling run file: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

// ReadRunFile loads a previously saved run file from disk.
func ReadRunFile(path string) (*RunFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading run file: %w", err)
	}
	var rf RunFile
	if err := yaml.Unmarshal(data, &rf); err != nil {
		return nil, fmt.Errorf("parsing run file: %w", err)
	}
	return &rf, nil
}
