package models

import (
	"fmt"
	"strings"
)

// CorpusSpec names one input corpus: a local file and the author label its
// records are tagged with. Parsed from the CLI form "author=path".
type CorpusSpec struct {
	Author string
	Path   string
}

// ParseCorpusSpec parses "author=path" into a CorpusSpec.
func ParseCorpusSpec(s string) (CorpusSpec, error) {
	author, path, ok := strings.Cut(s, "=")
	author = strings.TrimSpace(author)
	path = strings.TrimSpace(path)
	if !ok || author == "" || path == "" {
		return CorpusSpec{}, fmt.Errorf("invalid corpus spec %q (want author=path)", s)
	}
	return CorpusSpec{Author: author, Path: path}, nil
}

// LineRecord is one line of source text tagged with its author. Raw is the
// line as loaded; Norm is filled by the normalizer. Records are created at
// load time and discarded after tokenization.
type LineRecord struct {
	Author string
	Raw    string
	Norm   string
}

// TokenRecord is one surviving token after normalization, stop-word removal
// and the length filter, still carrying its author tag.
type TokenRecord struct {
	Author string
	Word   string
}

// WordCount is one aggregated (author, word) group. Count is always >= 1 and
// (Author, Word) is unique within a result set.
type WordCount struct {
	Author string `yaml:"author,omitempty"`
	Word   string `yaml:"word"`
	Count  int    `yaml:"count"`
}

// CorpusStats summarizes one mined corpus for the session record.
type CorpusStats struct {
	Author     string `yaml:"author"`
	Source     string `yaml:"source"`
	LineCount  int    `yaml:"lines"`
	TokenCount int    `yaml:"tokens"`
}
