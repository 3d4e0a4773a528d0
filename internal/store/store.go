// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package store persists extracted PaperRecords in a SQLite database so
// past fetch runs can be inspected without re-querying PubMed.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/pdiddy/paperscout/pkg/types"
)

// Store manages the results SQLite database.
type Store struct {
	db         *sql.DB
	maxResults int
}

// Open opens or creates the results database at cfg.Path and creates the
// schema if it does not exist.
func Open(cfg types.StoreConfig) (*Store, error) {
	db, err := sql.Open("sqlite3", cfg.Path+"?_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	maxResults := cfg.MaxResults
	if maxResults <= 0 {
		maxResults = 20
	}

	s := &Store{db: db, maxResults: maxResults}
	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createSchema() error {
	_, err := s.db.Exec(`CREATE TABLE IF NOT EXISTS papers (
		pubmed_id TEXT PRIMARY KEY,
		title TEXT,
		publication_date TEXT,
		non_academic_authors TEXT,
		company_affiliations TEXT,
		corresponding_email TEXT,
		query TEXT,
		fetched_at TEXT
	)`)
	if err != nil {
		return fmt.Errorf("executing schema statement: %w", err)
	}
	return nil
}

// Save upserts the records of one fetch run, tagging each row with the
// originating query and the fetch time. Re-fetching a paper overwrites
// its previous row.
func (s *Store) Save(ctx context.Context, query string, records []types.PaperRecord) error {
	if len(records) == 0 {
		return nil
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, `INSERT INTO papers
		(pubmed_id, title, publication_date, non_academic_authors,
		 company_affiliations, corresponding_email, query, fetched_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(pubmed_id) DO UPDATE SET
			title = excluded.title,
			publication_date = excluded.publication_date,
			non_academic_authors = excluded.non_academic_authors,
			company_affiliations = excluded.company_affiliations,
			corresponding_email = excluded.corresponding_email,
			query = excluded.query,
			fetched_at = excluded.fetched_at`)
	if err != nil {
		return fmt.Errorf("preparing insert: %w", err)
	}
	defer stmt.Close()

	fetchedAt := time.Now().UTC().Format(time.RFC3339)
	for _, r := range records {
		if _, err := stmt.ExecContext(ctx,
			r.PubmedID, r.Title, r.PublicationDate, r.NonAcademicAuthors,
			r.CompanyAffiliations, r.CorrespondingEmail, query, fetchedAt,
		); err != nil {
			return fmt.Errorf("inserting %s: %w", r.PubmedID, err)
		}
	}

	return tx.Commit()
}

// ListOptions holds parameters for listing stored papers.
type ListOptions struct {
	// Query filters rows by the originating query string (exact match).
	Query string

	// PubmedID filters by PMID.
	PubmedID string

	// MaxResults limits result count. Zero uses the store default.
	MaxResults int
}

// StoredRecord is a PaperRecord with its provenance columns.
type StoredRecord struct {
	types.PaperRecord `yaml:",inline"`
	Query             string `json:"query" yaml:"query"`
	FetchedAt         string `json:"fetched_at" yaml:"fetched_at"`
}

// List returns stored papers, newest fetch first, optionally filtered by
// originating query or PMID.
func (s *Store) List(ctx context.Context, opts ListOptions) ([]StoredRecord, error) {
	maxResults := opts.MaxResults
	if maxResults <= 0 {
		maxResults = s.maxResults
	}

	var (
		qb   strings.Builder
		args []any
	)
	qb.WriteString(`SELECT pubmed_id, title, publication_date, non_academic_authors,
		company_affiliations, corresponding_email, query, fetched_at
		FROM papers WHERE 1=1`)
	if opts.Query != "" {
		qb.WriteString(` AND query = ?`)
		args = append(args, opts.Query)
	}
	if opts.PubmedID != "" {
		qb.WriteString(` AND pubmed_id = ?`)
		args = append(args, opts.PubmedID)
	}
	qb.WriteString(` ORDER BY fetched_at DESC, pubmed_id ASC LIMIT ?`)
	args = append(args, maxResults)

	rows, err := s.db.QueryContext(ctx, qb.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("querying papers: %w", err)
	}
	defer rows.Close()

	var out []StoredRecord
	for rows.Next() {
		var r StoredRecord
		if err := rows.Scan(
			&r.PubmedID, &r.Title, &r.PublicationDate, &r.NonAcademicAuthors,
			&r.CompanyAffiliations, &r.CorrespondingEmail, &r.Query, &r.FetchedAt,
		); err != nil {
			return nil, fmt.Errorf("scanning row: %w", err)
		}
		out = append(out, r)
	}
	return out, rows.Err()
}
