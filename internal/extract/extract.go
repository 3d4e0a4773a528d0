// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package extract turns fetched PubMed article records into PaperRecords,
// keeping only papers with at least one commercially affiliated author.
package extract

import (
	"fmt"
	"sort"
	"strings"

	"github.com/pdiddy/paperscout/internal/affil"
	"github.com/pdiddy/paperscout/internal/eutils"
	"github.com/pdiddy/paperscout/pkg/types"
)

// Status reports the outcome of extracting one article.
type Status int

const (
	// StatusExtracted means a PaperRecord was produced.
	StatusExtracted Status = iota
	// StatusSkipped means the article parsed fine but no affiliation
	// matched the commercial lexicon.
	StatusSkipped
	// StatusFailed means a mandatory field was missing or unparseable.
	StatusFailed
)

// Result is the outcome of extracting one article. Exactly one of Record
// and Err is set for StatusExtracted and StatusFailed; both are unset for
// StatusSkipped.
type Result struct {
	Status Status
	Record *types.PaperRecord
	// PMID is the article identifier, or "unknown" when identifier
	// extraction itself failed.
	PMID string
	Err  error
}

// ExtractArticle walks one article's authors and affiliations and builds
// a PaperRecord when at least one affiliation classifies as commercial.
//
// Affiliations come from two source locations: the author's own
// AffiliationInfo entries and the loose article-level Affiliation nodes.
// Both are merged into one flat set per author, which attributes
// article-level affiliations to every author. That over-attribution
// mirrors the loose placement of the nodes in the source data; whether
// article-level entries should instead apply only to authors without a
// direct affiliation is an open product question.
func ExtractArticle(a eutils.Article) Result {
	if a.PMID == "" {
		return Result{
			Status: StatusFailed,
			PMID:   "unknown",
			Err:    fmt.Errorf("article has no PMID"),
		}
	}

	title := a.Title
	if title == "" {
		title = "N/A"
	}

	pubDate := a.Year
	if pubDate == "" {
		pubDate = a.MedlineDate
	}
	if pubDate == "" {
		pubDate = "N/A"
	}

	nonAcademicAuthors := make(map[string]struct{})
	companyAffiliations := make(map[string]struct{})
	var correspondingEmail string

	for _, author := range a.Authors {
		fullName := author.FullName()

		// Per-author affiliation set: own entries plus every article-level
		// node, deduplicated by exact text. Document order is kept so the
		// first-found email is deterministic.
		seen := make(map[string]struct{})
		var affiliations []string
		for _, text := range append(append([]string{}, author.Affiliations...), a.ArticleAffiliations...) {
			if text == "" {
				continue
			}
			if _, dup := seen[text]; dup {
				continue
			}
			seen[text] = struct{}{}
			affiliations = append(affiliations, text)
		}

		for _, text := range affiliations {
			if correspondingEmail == "" {
				if email, ok := affil.ExtractEmail(text); ok {
					correspondingEmail = email
				}
			}
		}

		for _, text := range affiliations {
			cleaned := affil.CleanAffiliation(text)
			if affil.IsNonAcademic(cleaned) {
				nonAcademicAuthors[fullName] = struct{}{}
				companyAffiliations[cleaned] = struct{}{}
			}
		}
	}

	if len(companyAffiliations) == 0 {
		return Result{Status: StatusSkipped, PMID: a.PMID}
	}

	if correspondingEmail == "" {
		correspondingEmail = "N/A"
	}

	return Result{
		Status: StatusExtracted,
		PMID:   a.PMID,
		Record: &types.PaperRecord{
			PubmedID:            a.PMID,
			Title:               title,
			PublicationDate:     pubDate,
			NonAcademicAuthors:  joinSorted(nonAcademicAuthors),
			CompanyAffiliations: joinSorted(companyAffiliations),
			CorrespondingEmail:  correspondingEmail,
		},
	}
}

// joinSorted returns the set's members sorted ascending and comma-joined.
func joinSorted(set map[string]struct{}) string {
	members := make([]string, 0, len(set))
	for m := range set {
		members = append(members, m)
	}
	sort.Strings(members)
	return strings.Join(members, ", ")
}
