package search

import (
	"strings"

	"github.com/sahilm/fuzzy"
)

// MatchResult contains match information for one name
type MatchResult struct {
	Index          int    // position of the name in the input slice
	Name           string // the matched name
	MatchedIndexes []int  // byte offsets of matched characters
}

// PrefixMatchNames returns the names that start with prefix, in input order.
// Matching is case-sensitive; an empty prefix matches every name.
func PrefixMatchNames(prefix string, names []string) []string {
	matches := make([]string, 0, len(names))
	for _, name := range names {
		if strings.HasPrefix(name, prefix) {
			matches = append(matches, name)
		}
	}
	return matches
}

// FuzzyMatchNames ranks names against query, best match first. An empty
// query matches nothing.
func FuzzyMatchNames(query string, names []string) []MatchResult {
	if query == "" {
		return nil
	}

	found := fuzzy.Find(query, names)
	results := make([]MatchResult, len(found))
	for i, m := range found {
		results[i] = MatchResult{
			Index:          m.Index,
			Name:           m.Str,
			MatchedIndexes: m.MatchedIndexes,
		}
	}
	return results
}
