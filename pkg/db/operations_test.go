package db

import (
	"testing"

	"github.com/DrJoeShmo/bigdataclass2018/models"
)

// setupTestDB creates an in-memory SQLite database for testing.
func setupTestDB(t *testing.T) *DB {
	t.Helper()

	database, err := Open(":memory:", Options{})
	if err != nil {
		t.Fatalf("failed to create test database: %v", err)
	}
	t.Cleanup(func() { database.Close() })
	return database
}

func seedTokens(t *testing.T, db *DB, tokens []models.TokenRecord) {
	t.Helper()
	if err := db.InsertTokens(tokens); err != nil {
		t.Fatalf("InsertTokens() error: %v", err)
	}
	if err := db.MaterializeCounts(); err != nil {
		t.Fatalf("MaterializeCounts() error: %v", err)
	}
}

func TestMaterializeCountsMatchesRecount(t *testing.T) {
	db := setupTestDB(t)

	tokens := []models.TokenRecord{
		{Author: "twain", Word: "river"},
		{Author: "twain", Word: "river"},
		{Author: "twain", Word: "river"},
		{Author: "twain", Word: "raft"},
		{Author: "doyle", Word: "river"},
		{Author: "doyle", Word: "deduction"},
		{Author: "doyle", Word: "deduction"},
	}
	seedTokens(t, db, tokens)

	for _, author := range []string{"twain", "doyle"} {
		counts, err := db.TopWords(author, 0)
		if err != nil {
			t.Fatalf("TopWords(%s) error: %v", author, err)
		}
		for _, wc := range counts {
			recount := 0
			for _, tok := range tokens {
				if tok.Author == wc.Author && tok.Word == wc.Word {
					recount++
				}
			}
			if wc.Count != recount {
				t.Errorf("count(%s, %s) = %d, recount = %d", wc.Author, wc.Word, wc.Count, recount)
			}
			if wc.Count < 1 {
				t.Errorf("count(%s, %s) = %d, must be >= 1", wc.Author, wc.Word, wc.Count)
			}
		}
	}
}

func TestMaterializeCountsIsRepeatable(t *testing.T) {
	db := setupTestDB(t)
	seedTokens(t, db, []models.TokenRecord{
		{Author: "twain", Word: "river"},
		{Author: "twain", Word: "river"},
	})

	// A second materialization over the same token table is a no-op.
	if err := db.MaterializeCounts(); err != nil {
		t.Fatalf("second MaterializeCounts() error: %v", err)
	}
	counts, err := db.TopWords("twain", 0)
	if err != nil {
		t.Fatal(err)
	}
	if len(counts) != 1 || counts[0].Count != 2 {
		t.Errorf("counts after re-materialize = %+v, want river=2", counts)
	}
}

func TestTopWordsOrderingAndLimit(t *testing.T) {
	db := setupTestDB(t)

	var tokens []models.TokenRecord
	add := func(word string, n int) {
		for i := 0; i < n; i++ {
			tokens = append(tokens, models.TokenRecord{Author: "twain", Word: word})
		}
	}
	add("huck", 9)
	add("river", 5)
	add("raft", 5)
	add("miss", 1)
	seedTokens(t, db, tokens)

	got, err := db.TopWords("twain", 3)
	if err != nil {
		t.Fatalf("TopWords() error: %v", err)
	}

	want := []models.WordCount{
		{Author: "twain", Word: "huck", Count: 9},
		{Author: "twain", Word: "raft", Count: 5},
		{Author: "twain", Word: "river", Count: 5},
	}
	if len(got) != len(want) {
		t.Fatalf("TopWords() = %+v, want %+v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("row %d = %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestVocabDiff(t *testing.T) {
	db := setupTestDB(t)

	seedTokens(t, db, []models.TokenRecord{
		{Author: "twain", Word: "river"},
		{Author: "twain", Word: "river"},
		{Author: "twain", Word: "raft"},
		{Author: "twain", Word: "fog"},
		{Author: "doyle", Word: "fog"},
		{Author: "doyle", Word: "fog"},
		{Author: "doyle", Word: "deduction"},
	})

	diff, err := db.VocabDiff("twain", "doyle", 0)
	if err != nil {
		t.Fatalf("VocabDiff() error: %v", err)
	}

	// fog is shared (regardless of count), so only river and raft remain,
	// with twain's counts preserved.
	want := []models.WordCount{
		{Author: "twain", Word: "river", Count: 2},
		{Author: "twain", Word: "raft", Count: 1},
	}
	if len(diff) != len(want) {
		t.Fatalf("VocabDiff() = %+v, want %+v", diff, want)
	}
	for i := range want {
		if diff[i] != want[i] {
			t.Errorf("row %d = %+v, want %+v", i, diff[i], want[i])
		}
	}

	// And the reverse direction.
	diff, err = db.VocabDiff("doyle", "twain", 0)
	if err != nil {
		t.Fatal(err)
	}
	if len(diff) != 1 || diff[0].Word != "deduction" {
		t.Errorf("VocabDiff(doyle, twain) = %+v, want only deduction", diff)
	}
}

func TestVocabDiffLimit(t *testing.T) {
	db := setupTestDB(t)
	seedTokens(t, db, []models.TokenRecord{
		{Author: "twain", Word: "one"},
		{Author: "twain", Word: "two"},
		{Author: "twain", Word: "three"},
		{Author: "doyle", Word: "other"},
	})

	diff, err := db.VocabDiff("twain", "doyle", 2)
	if err != nil {
		t.Fatal(err)
	}
	if len(diff) != 2 {
		t.Errorf("VocabDiff(limit=2) returned %d rows", len(diff))
	}
}

func TestCountWordCaseInsensitive(t *testing.T) {
	db := setupTestDB(t)

	seedTokens(t, db, []models.TokenRecord{
		{Author: "twain", Word: "Sherlock"},
		{Author: "twain", Word: "sherlock"},
		{Author: "twain", Word: "Sherlock"},
		{Author: "twain", Word: "watson"},
		{Author: "doyle", Word: "Sherlock"},
	})

	n, err := db.CountWord("twain", "sherlock")
	if err != nil {
		t.Fatalf("CountWord() error: %v", err)
	}
	if n != 3 {
		t.Errorf("CountWord(twain, sherlock) = %d, want 3 (mixed-case tokens all count)", n)
	}

	n, err = db.CountWord("twain", "moriarty")
	if err != nil {
		t.Fatal(err)
	}
	if n != 0 {
		t.Errorf("CountWord(twain, moriarty) = %d, want 0", n)
	}
}

func TestGrepLines(t *testing.T) {
	db := setupTestDB(t)

	lines := []models.LineRecord{
		{Author: "twain", Raw: "Have you met Sherlock Holmes?", Norm: "Have you met Sherlock Holmes "},
		{Author: "twain", Raw: "He got thoroughly sherlocked.", Norm: "He got thoroughly sherlocked "},
		{Author: "doyle", Raw: "The fog rolled in.", Norm: "The fog rolled in "},
	}
	if err := db.InsertLines(lines); err != nil {
		t.Fatalf("InsertLines() error: %v", err)
	}

	got, err := db.GrepLines("sherlock")
	if err != nil {
		t.Fatalf("GrepLines() error: %v", err)
	}
	// Raw containment: matches the compound "sherlocked" too, and returns
	// the raw lines, not the normalized ones.
	if len(got) != 2 {
		t.Fatalf("GrepLines() = %v, want 2 matches", got)
	}
	if got[0] != "Have you met Sherlock Holmes?" {
		t.Errorf("match 0 = %q, want the raw line", got[0])
	}
	if got[1] != "He got thoroughly sherlocked." {
		t.Errorf("match 1 = %q", got[1])
	}
}

func TestAuthorsAndStats(t *testing.T) {
	db := setupTestDB(t)
	seedTokens(t, db, []models.TokenRecord{
		{Author: "twain", Word: "river"},
		{Author: "doyle", Word: "fog"},
	})

	authors, err := db.Authors()
	if err != nil {
		t.Fatal(err)
	}
	if len(authors) != 2 || authors[0] != "doyle" || authors[1] != "twain" {
		t.Errorf("Authors() = %v", authors)
	}

	stat := models.CorpusStats{Author: "twain", Source: "huck.txt", LineCount: 10, TokenCount: 42}
	if err := db.InsertCorpus(stat); err != nil {
		t.Fatal(err)
	}
	stats, err := db.Stats()
	if err != nil {
		t.Fatal(err)
	}
	if len(stats) != 1 || stats[0] != stat {
		t.Errorf("Stats() = %+v, want %+v", stats, stat)
	}
}

func TestReset(t *testing.T) {
	db := setupTestDB(t)
	seedTokens(t, db, []models.TokenRecord{{Author: "twain", Word: "river"}})

	if err := db.Reset(); err != nil {
		t.Fatalf("Reset() error: %v", err)
	}
	counts, err := db.TopWords("twain", 0)
	if err != nil {
		t.Fatal(err)
	}
	if len(counts) != 0 {
		t.Errorf("counts survived Reset(): %+v", counts)
	}
}
