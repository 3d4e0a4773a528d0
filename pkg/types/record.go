// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared data structures for the paperscout pipeline.
package types

// PaperRecord is one exported row: a paper with at least one author
// affiliated with a commercial or clinical organization. The author and
// affiliation fields hold deduplicated, lexicographically sorted,
// comma-joined sets. A PaperRecord is never built without at least one
// company affiliation.
type PaperRecord struct {
	// PubmedID is the PMID of the paper.
	PubmedID string `json:"pubmed_id" yaml:"pubmed_id"`

	// Title is the article title, or "N/A" when PubMed omits it.
	Title string `json:"title" yaml:"title"`

	// PublicationDate is the publication year, the MedlineDate free-text
	// fallback, or "N/A" when both are absent.
	PublicationDate string `json:"publication_date" yaml:"publication_date"`

	// NonAcademicAuthors lists authors with a company affiliation.
	NonAcademicAuthors string `json:"non_academic_authors" yaml:"non_academic_authors"`

	// CompanyAffiliations lists the cleaned affiliation strings that
	// matched the commercial lexicon.
	CompanyAffiliations string `json:"company_affiliations" yaml:"company_affiliations"`

	// CorrespondingEmail is the first email found scanning the article's
	// authors in document order, or "N/A" when none was found. It is not
	// necessarily the email of a non-academic author.
	CorrespondingEmail string `json:"corresponding_email" yaml:"corresponding_email"`
}
