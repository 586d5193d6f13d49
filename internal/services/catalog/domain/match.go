package domain

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Folder performs case-insensitive containment checks. A Folder is not safe
// for concurrent use; create one per query.
type Folder struct {
	caser cases.Caser
}

// NewFolder returns a Folder using language-neutral lowercasing.
func NewFolder() *Folder {
	return &Folder{caser: cases.Lower(language.Und)}
}

// Fold lowercases s.
func (f *Folder) Fold(s string) string {
	return f.caser.String(s)
}

// Contains reports whether needle, already folded, occurs in haystack.
func (f *Folder) Contains(haystack, foldedNeedle string) bool {
	return strings.Contains(f.caser.String(haystack), foldedNeedle)
}
