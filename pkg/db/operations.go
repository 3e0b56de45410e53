package db

import (
	"fmt"

	"github.com/DrJoeShmo/bigdataclass2018/models"
)

// InsertCorpus records a mined corpus and its stats.
func (db *DB) InsertCorpus(stats models.CorpusStats) error {
	_, err := db.Exec(
		"INSERT INTO corpora (author, source, line_count, token_count) VALUES (?, ?, ?, ?)",
		stats.Author, stats.Source, stats.LineCount, stats.TokenCount,
	)
	if err != nil {
		return fmt.Errorf("failed to insert corpus row: %w", err)
	}
	return nil
}

// InsertLines writes normalized line records in a single transaction.
func (db *DB) InsertLines(records []models.LineRecord) error {
	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare("INSERT INTO lines (author, raw, norm) VALUES (?, ?, ?)")
	if err != nil {
		return fmt.Errorf("failed to prepare line insert: %w", err)
	}
	defer stmt.Close()

	for _, rec := range records {
		if _, err := stmt.Exec(rec.Author, rec.Raw, rec.Norm); err != nil {
			return fmt.Errorf("failed to insert line: %w", err)
		}
	}
	return tx.Commit()
}

// InsertTokens materializes token records in a single transaction. This is
// the cache point: once written, aggregation and the ad-hoc queries operate
// on these rows instead of re-tokenizing.
func (db *DB) InsertTokens(records []models.TokenRecord) error {
	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare("INSERT INTO tokens (author, word) VALUES (?, ?)")
	if err != nil {
		return fmt.Errorf("failed to prepare token insert: %w", err)
	}
	defer stmt.Close()

	for _, rec := range records {
		if _, err := stmt.Exec(rec.Author, rec.Word); err != nil {
			return fmt.Errorf("failed to insert token: %w", err)
		}
	}
	return tx.Commit()
}

// MaterializeCounts rebuilds word_counts from the token table with a single
// group-by. Counts are exact: group keys keep their original casing.
func (db *DB) MaterializeCounts() error {
	if _, err := db.Exec("DELETE FROM word_counts"); err != nil {
		return fmt.Errorf("failed to clear word counts: %w", err)
	}
	_, err := db.Exec(`
		INSERT INTO word_counts (author, word, n)
		SELECT author, word, COUNT(*) FROM tokens GROUP BY author, word`)
	if err != nil {
		return fmt.Errorf("failed to aggregate word counts: %w", err)
	}
	return nil
}

// TopWords returns an author's word counts, highest first. Ties break
// ascending by word. n <= 0 returns the full set.
func (db *DB) TopWords(author string, n int) ([]models.WordCount, error) {
	query := "SELECT author, word, n FROM word_counts WHERE author = ? ORDER BY n DESC, word ASC"
	args := []interface{}{author}
	if n > 0 {
		query += " LIMIT ?"
		args = append(args, n)
	}
	return db.queryWordCounts(query, args...)
}

// VocabDiff returns words counted for author a that never occur for author b,
// keeping a's counts. The anti-join is on the word key alone; b's counts are
// irrelevant. limit <= 0 returns the full difference.
func (db *DB) VocabDiff(a, b string, limit int) ([]models.WordCount, error) {
	query := `
		SELECT author, word, n FROM word_counts
		WHERE author = ?
		  AND word NOT IN (SELECT word FROM word_counts WHERE author = ?)
		ORDER BY n DESC, word ASC`
	args := []interface{}{a, b}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}
	return db.queryWordCounts(query, args...)
}

// CountWord counts token rows for an exact (author, word) pair. The word
// comparison is case-insensitive so "Sherlock" and "sherlock" both count.
func (db *DB) CountWord(author, word string) (int, error) {
	var n int
	err := db.QueryRow(
		"SELECT COUNT(*) FROM tokens WHERE author = ? AND LOWER(word) = LOWER(?)",
		author, word,
	).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("failed to count word: %w", err)
	}
	return n, nil
}

// GrepLines returns raw lines whose lowercased content contains substr.
// Raw containment, not word-boundary: "sherlocked" matches "sherlock".
// Each call is a full scan; no search structure is maintained.
func (db *DB) GrepLines(substr string) ([]string, error) {
	rows, err := db.Query(
		"SELECT raw FROM lines WHERE INSTR(LOWER(raw), LOWER(?)) > 0",
		substr,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to scan lines: %w", err)
	}
	defer rows.Close()

	var matches []string
	for rows.Next() {
		var raw string
		if err := rows.Scan(&raw); err != nil {
			return nil, fmt.Errorf("failed to scan row: %w", err)
		}
		matches = append(matches, raw)
	}
	return matches, rows.Err()
}

// Authors lists the distinct author labels present in the token table.
func (db *DB) Authors() ([]string, error) {
	rows, err := db.Query("SELECT DISTINCT author FROM tokens ORDER BY author")
	if err != nil {
		return nil, fmt.Errorf("failed to list authors: %w", err)
	}
	defer rows.Close()

	var authors []string
	for rows.Next() {
		var a string
		if err := rows.Scan(&a); err != nil {
			return nil, fmt.Errorf("failed to scan row: %w", err)
		}
		authors = append(authors, a)
	}
	return authors, rows.Err()
}

// Stats returns the per-corpus stats recorded during mining.
func (db *DB) Stats() ([]models.CorpusStats, error) {
	rows, err := db.Query("SELECT author, source, line_count, token_count FROM corpora ORDER BY corpus_id")
	if err != nil {
		return nil, fmt.Errorf("failed to read corpus stats: %w", err)
	}
	defer rows.Close()

	var stats []models.CorpusStats
	for rows.Next() {
		var s models.CorpusStats
		if err := rows.Scan(&s.Author, &s.Source, &s.LineCount, &s.TokenCount); err != nil {
			return nil, fmt.Errorf("failed to scan row: %w", err)
		}
		stats = append(stats, s)
	}
	return stats, rows.Err()
}

func (db *DB) queryWordCounts(query string, args ...interface{}) ([]models.WordCount, error) {
	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query word counts: %w", err)
	}
	defer rows.Close()

	var counts []models.WordCount
	for rows.Next() {
		var wc models.WordCount
		if err := rows.Scan(&wc.Author, &wc.Word, &wc.Count); err != nil {
			return nil, fmt.Errorf("failed to scan row: %w", err)
		}
		counts = append(counts, wc)
	}
	return counts, rows.Err()
}
