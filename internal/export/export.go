// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package export writes extracted PaperRecords to CSV, JSON, or a YAML
// run file.
package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/pdiddy/paperscout/pkg/types"
)

// columns is the fixed CSV column order.
var columns = []string{
	"PubmedID",
	"Title",
	"Publication Date",
	"Non-academic Author(s)",
	"Company Affiliation(s)",
	"Corresponding Author Email",
}

// WriteCSV writes one row per record to path with a header row. An empty
// record list writes nothing; both cases are reported to w.
func WriteCSV(records []types.PaperRecord, path string, w io.Writer) error {
	if len(records) == 0 {
		fmt.Fprintln(w, "No records found. CSV file not created.")
		return nil
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating CSV file: %w", err)
	}
	defer f.Close()

	cw := csv.NewWriter(f)
	if err := cw.Write(columns); err != nil {
		return fmt.Errorf("writing CSV header: %w", err)
	}
	for _, r := range records {
		row := []string{
			r.PubmedID,
			r.Title,
			r.PublicationDate,
			r.NonAcademicAuthors,
			r.CompanyAffiliations,
			r.CorrespondingEmail,
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("writing CSV row for %s: %w", r.PubmedID, err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("flushing CSV: %w", err)
	}

	fmt.Fprintf(w, "CSV file saved: %s\n", path)
	return nil
}

// WriteJSON writes the records as indented JSON. An empty list emits an
// empty JSON array.
func WriteJSON(records []types.PaperRecord, w io.Writer) error {
	if records == nil {
		records = []types.PaperRecord{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(records)
}
