package session

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/DrJoeShmo/bigdataclass2018/models"
)

func TestGenerateSessionID(t *testing.T) {
	a := GenerateSessionID([]string{"huck.txt", "sherlock.txt"})
	b := GenerateSessionID([]string{"sherlock.txt", "huck.txt"})

	// Source order must not change the hash part.
	if a[len(a)-12:] != b[len(b)-12:] {
		t.Errorf("hash differs for reordered sources: %s vs %s", a, b)
	}

	c := GenerateSessionID([]string{"huck.txt"})
	if a[len(a)-12:] == c[len(c)-12:] {
		t.Error("different sources produced the same hash")
	}

	if !strings.Contains(a, "-") || len(a) < 17 {
		t.Errorf("unexpected ID shape: %s", a)
	}
}

func TestWriteSummaryAndIndex(t *testing.T) {
	baseDir := t.TempDir()

	summary := Summary{
		SessionID: "2026-08-29T10-00-abcdef123456",
		Created:   time.Now(),
		Corpora: []models.CorpusStats{
			{Author: "twain", Source: "huck.txt", LineCount: 100, TokenCount: 900},
		},
		TopWords: map[string][]models.WordCount{
			"twain": {{Author: "twain", Word: "river", Count: 42}},
		},
	}

	path, err := WriteSummary(baseDir, summary)
	if err != nil {
		t.Fatalf("WriteSummary() error: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"twain", "river", "count: 42"} {
		if !strings.Contains(string(data), want) {
			t.Errorf("summary.yaml missing %q", want)
		}
	}

	info := Info{SessionID: summary.SessionID, Created: summary.Created, DBPath: "x.db", Corpora: []string{"huck.txt"}}
	if err := UpdateIndex(baseDir, info); err != nil {
		t.Fatalf("UpdateIndex() error: %v", err)
	}

	index, err := LoadIndex(baseDir)
	if err != nil {
		t.Fatal(err)
	}
	if len(index.Sessions) != 1 || index.Sessions[0].SessionID != summary.SessionID {
		t.Errorf("index = %+v", index)
	}

	// Updating the same session must replace, not duplicate.
	if err := UpdateIndex(baseDir, info); err != nil {
		t.Fatal(err)
	}
	index, _ = LoadIndex(baseDir)
	if len(index.Sessions) != 1 {
		t.Errorf("duplicate session entry after re-update: %+v", index.Sessions)
	}
}

func TestUpdateIndexSortsNewestFirst(t *testing.T) {
	baseDir := t.TempDir()

	old := Info{SessionID: "2026-01-01T00-00-aaaaaaaaaaaa", Created: time.Now()}
	recent := Info{SessionID: "2026-08-29T12-00-bbbbbbbbbbbb", Created: time.Now()}
	if err := UpdateIndex(baseDir, old); err != nil {
		t.Fatal(err)
	}
	if err := UpdateIndex(baseDir, recent); err != nil {
		t.Fatal(err)
	}

	index, err := LoadIndex(baseDir)
	if err != nil {
		t.Fatal(err)
	}
	if index.Sessions[0].SessionID != recent.SessionID {
		t.Errorf("index not newest-first: %+v", index.Sessions)
	}
}

func TestLoadIndexMissing(t *testing.T) {
	index, err := LoadIndex(filepath.Join(t.TempDir(), "empty"))
	if err != nil {
		t.Fatalf("LoadIndex() on missing file: %v", err)
	}
	if len(index.Sessions) != 0 {
		t.Errorf("expected empty index, got %+v", index)
	}
}
