package assetindex

import (
	"strconv"
	"strings"

	"golang.org/x/text/cases"

	"mcpackr/internal/revision"
)

// Path is a forward-slash path relative to the pack root. It may end in an
// override suffix "@<revision>" that restricts it to one target revision.
type Path string

// Override returns the revision named by the suffix, if any.
func (p Path) Override() (revision.ID, bool) {
	_, id, ok := p.split()
	return id, ok
}

// Logical returns the path with any override suffix removed.
func (p Path) Logical() string {
	logical, _, _ := p.split()
	return logical
}

// Key returns the case-folded logical path used for matching.
func (p Path) Key() string {
	return FoldKey(p.Logical())
}

func (p Path) String() string { return string(p) }

func (p Path) split() (string, revision.ID, bool) {
	s := string(p)
	if len(s) < 2 {
		return s, 0, false
	}
	at := strings.LastIndexByte(s, '@')
	if at <= 0 || at == len(s)-1 {
		return s, 0, false
	}
	digits := s[at+1:]
	for i := 0; i < len(digits); i++ {
		if digits[i] < '0' || digits[i] > '9' {
			return s, 0, false
		}
	}
	n, err := strconv.Atoi(digits)
	if err != nil {
		return s, 0, false
	}
	return s[:at], revision.ID(n), true
}

// FoldKey case-folds a pack-relative path for case-insensitive comparison.
func FoldKey(path string) string {
	return cases.Fold().String(path)
}
