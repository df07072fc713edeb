package scoring

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// legal-entity suffixes stripped before name comparison
var businessSuffixes = []string{
	"株式会社",
	"（株）",
	"(株)",
	"有限会社",
	"合同会社",
	"inc",
	"co.,ltd",
	"co., ltd",
	"llc",
}

// NormalizeText folds text to NFKC (full-width/half-width and compatibility
// characters) and trims surrounding whitespace. Idempotent.
func NormalizeText(s string) string {
	return strings.TrimSpace(norm.NFKC.String(s))
}

// normalizeName canonicalizes a business name for similarity comparison:
// NFKC, lowercased, legal-entity suffixes dropped, internal spaces removed.
func normalizeName(name string) string {
	s := strings.ToLower(NormalizeText(name))
	for _, suffix := range businessSuffixes {
		s = strings.ReplaceAll(s, suffix, "")
	}
	return strings.ReplaceAll(s, " ", "")
}
