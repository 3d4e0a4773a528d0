// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package affil classifies author affiliation strings as academic or
// commercial and provides the text helpers the extraction stage needs.
package affil

import (
	"regexp"
	"strings"
)

// emailPattern matches a single email address: ASCII letters, digits and
// ._%+- in the local part, letters, digits, dots and hyphens in the
// domain, and a TLD of at least two letters.
var emailPattern = regexp.MustCompile(`[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}`)

// nonAcademicMarkers is the lexicon of substrings that mark an affiliation
// as commercial or clinical. Matching is substring-based with no word
// boundaries, so "co." inside an unrelated word also matches; the
// permissiveness is accepted as a known false-positive source.
var nonAcademicMarkers = []string{
	"pharma", "biotech", "inc", "ltd", "corp", "gmbh", "s.a.", "s.r.l.", "llc",
	"co.", "laboratories", "technologies", "research institute", "private limited",
	"medical center", "hospital", "research lab", "clinical research", "drug development",
}

// ExtractEmail returns the first email address found in text. The second
// return value reports whether one was found.
func ExtractEmail(text string) (string, bool) {
	m := emailPattern.FindString(text)
	return m, m != ""
}

// CleanAffiliation removes every email address from an affiliation string
// and trims surrounding whitespace. Applying it twice yields the same
// result as applying it once.
func CleanAffiliation(text string) string {
	return strings.TrimSpace(emailPattern.ReplaceAllString(text, ""))
}

// IsNonAcademic reports whether a cleaned affiliation string indicates a
// commercial or clinical organization. The check is a case-insensitive
// substring match against the marker lexicon.
func IsNonAcademic(cleaned string) bool {
	lower := strings.ToLower(cleaned)
	for _, marker := range nonAcademicMarkers {
		if strings.Contains(lower, marker) {
			return true
		}
	}
	return false
}
