package content

import (
	"strings"

	"github.com/agnivade/levenshtein"
)

// MaxSuggestDistance is the largest edit distance still accepted as a typo.
const MaxSuggestDistance = 2

// NameIndex resolves user-typed names to catalog ids. Matching order: exact
// id, exact display name, unique prefix, then closest levenshtein match
// within MaxSuggestDistance.
type NameIndex struct {
	byID   map[string]struct{}
	byName map[string]string // lowercased display name -> id
}

// NewNameIndex builds an index from id -> display name.
func NewNameIndex(names map[string]string) *NameIndex {
	idx := &NameIndex{
		byID:   make(map[string]struct{}, len(names)),
		byName: make(map[string]string, len(names)),
	}
	for id, name := range names {
		idx.byID[id] = struct{}{}
		idx.byName[strings.ToLower(name)] = id
	}
	return idx
}

// Resolve returns the id for the given input, or ("", false) when nothing is
// close enough.
func (idx *NameIndex) Resolve(input string) (string, bool) {
	needle := strings.ToLower(strings.TrimSpace(input))
	if needle == "" {
		return "", false
	}

	if _, ok := idx.byID[needle]; ok {
		return needle, true
	}
	if id, ok := idx.byName[needle]; ok {
		return id, true
	}

	// Unique prefix match on display names
	prefixID := ""
	prefixHits := 0
	for name, id := range idx.byName {
		if strings.HasPrefix(name, needle) {
			prefixID = id
			prefixHits++
		}
	}
	if prefixHits == 1 {
		return prefixID, true
	}

	// Closest typo within the allowed edit distance
	bestID := ""
	bestDist := MaxSuggestDistance + 1
	for name, id := range idx.byName {
		if d := levenshtein.ComputeDistance(needle, name); d < bestDist {
			bestDist = d
			bestID = id
		}
	}
	if bestID != "" && bestDist <= MaxSuggestDistance {
		return bestID, true
	}
	return "", false
}
