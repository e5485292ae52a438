package catalog

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Course is one record in the advising catalog.
type Course struct {
	// Number is the normalized course number, e.g. "CSCI200".
	Number string `json:"number"`
	// Title is the display title, taken verbatim from the source file.
	Title string `json:"title"`
	// Prerequisites holds normalized course numbers in source order.
	// They are not validated against the catalog at load time; resolution
	// happens lazily during lookup.
	Prerequisites []string `json:"prerequisites,omitempty"`
}

// NormalizeNumber canonicalizes a course number for use as an index key:
// surrounding whitespace is stripped, the text is NFC-normalized, and the
// result is upper-cased. Returns "" for blank input.
func NormalizeNumber(raw string) string {
	return strings.ToUpper(norm.NFC.String(strings.TrimSpace(raw)))
}
