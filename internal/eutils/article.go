// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package eutils

import "encoding/xml"

// articleSet is the root of an EFetch XML response.
type articleSet struct {
	XMLName  xml.Name  `xml:"PubmedArticleSet"`
	Articles []Article `xml:"PubmedArticle"`
}

// Article is one PubmedArticle record. Affiliation text appears in two
// places: under each author's AffiliationInfo entries, and as loose
// Affiliation nodes attached directly to the article (the pre-2014 DTD
// location, still present in older records).
type Article struct {
	PMID        string   `xml:"MedlineCitation>PMID"`
	Title       string   `xml:"MedlineCitation>Article>ArticleTitle"`
	Year        string   `xml:"MedlineCitation>Article>Journal>JournalIssue>PubDate>Year"`
	MedlineDate string   `xml:"MedlineCitation>Article>Journal>JournalIssue>PubDate>MedlineDate"`
	Authors     []Author `xml:"MedlineCitation>Article>AuthorList>Author"`

	// ArticleAffiliations holds the loose article-level Affiliation nodes.
	ArticleAffiliations []string `xml:"MedlineCitation>Article>Affiliation"`
}

// Author is one entry of an article's AuthorList.
type Author struct {
	LastName     string   `xml:"LastName"`
	ForeName     string   `xml:"ForeName"`
	Affiliations []string `xml:"AffiliationInfo>Affiliation"`
}

// FullName returns "ForeName LastName", or "Unknown" when either part is
// missing.
func (a Author) FullName() string {
	if a.ForeName == "" || a.LastName == "" {
		return "Unknown"
	}
	return a.ForeName + " " + a.LastName
}
