package search

import (
	"reflect"
	"testing"
)

func TestPrefixMatchNames(t *testing.T) {
	page := []string{"foo", "foobar", "bar"}

	tests := []struct {
		name     string
		prefix   string
		expected []string
	}{
		{"shared prefix", "foo", []string{"foo", "foobar"}},
		{"empty prefix", "", []string{"foo", "foobar", "bar"}},
		{"no match", "xyz", []string{}},
		{"case sensitive", "Foo", []string{}},
		{"full name", "foobar", []string{"foobar"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := PrefixMatchNames(tt.prefix, page)
			if !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("PrefixMatchNames(%q) = %v, want %v", tt.prefix, got, tt.expected)
			}
		})
	}
}

func TestPrefixMatchNamesKeepsOrder(t *testing.T) {
	got := PrefixMatchNames("a", []string{"ab", "b", "aa", "ac"})
	want := []string{"ab", "aa", "ac"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestFuzzyMatchNames(t *testing.T) {
	names := []string{
		"file1.txt",
		"document.pdf",
		"readme.md",
		"config.json",
	}

	tests := []struct {
		name          string
		query         string
		expectedCount int
	}{
		{"exact match", "readme.md", 1},
		{"scattered letters", "dcpdf", 1},
		{"no match", "xyz", 0},
		{"empty query", "", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			results := FuzzyMatchNames(tt.query, names)
			if len(results) != tt.expectedCount {
				t.Errorf("FuzzyMatchNames(%s) returned %d results, expected %d", tt.query, len(results), tt.expectedCount)
			}
		})
	}
}

func TestFuzzyMatchNamesReportsIndex(t *testing.T) {
	names := []string{"alpha", "beta", "gamma"}
	results := FuzzyMatchNames("bet", names)
	if len(results) != 1 {
		t.Fatalf("expected one result, got %d", len(results))
	}
	if results[0].Index != 1 || results[0].Name != "beta" {
		t.Errorf("unexpected result %+v", results[0])
	}
	if len(results[0].MatchedIndexes) != 3 {
		t.Errorf("expected 3 matched indexes, got %v", results[0].MatchedIndexes)
	}
}
