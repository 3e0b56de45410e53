// Package query implements the read-side verbs over a mined database: top
// word listings, vocabulary differences, and the ad-hoc count/grep scans.
package query

import (
	"fmt"
	"os"

	"github.com/DrJoeShmo/bigdataclass2018/models"
	"github.com/DrJoeShmo/bigdataclass2018/pkg/db"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/urfave/cli/v2"
	"gopkg.in/yaml.v3"
)

func openDB(c *cli.Context) (*db.DB, error) {
	database, err := db.Open(c.String("db"), db.Options{})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	return database, nil
}

// TopAction lists an author's highest-count words.
func TopAction(c *cli.Context) error {
	database, err := openDB(c)
	if err != nil {
		return err
	}
	defer database.Close()

	author := c.String("author")
	if author == "" {
		return fmt.Errorf("--author is required")
	}

	counts, err := database.TopWords(author, c.Int("n"))
	if err != nil {
		return err
	}
	if len(counts) == 0 {
		return fmt.Errorf("no words counted for author %q (run mine first?)", author)
	}

	renderCounts(fmt.Sprintf("Top words for %s", author), counts)
	return nil
}

// DiffAction lists words one author uses that the other never does.
func DiffAction(c *cli.Context) error {
	database, err := openDB(c)
	if err != nil {
		return err
	}
	defer database.Close()

	a, b := c.String("author"), c.String("other")
	if a == "" || b == "" {
		return fmt.Errorf("--author and --other are both required")
	}

	counts, err := database.VocabDiff(a, b, c.Int("limit"))
	if err != nil {
		return err
	}

	if c.Bool("yaml") {
		out, err := yaml.Marshal(counts)
		if err != nil {
			return fmt.Errorf("failed to marshal diff: %w", err)
		}
		fmt.Print(string(out))
		return nil
	}

	renderCounts(fmt.Sprintf("Words %s uses that %s does not", a, b), counts)
	return nil
}

// CountAction counts token rows for an exact (author, word) pair.
// The comparison is case-insensitive.
func CountAction(c *cli.Context) error {
	database, err := openDB(c)
	if err != nil {
		return err
	}
	defer database.Close()

	author, word := c.String("author"), c.String("word")
	if author == "" || word == "" {
		return fmt.Errorf("--author and --word are both required")
	}

	n, err := database.CountWord(author, word)
	if err != nil {
		return err
	}
	fmt.Printf("%s uses %q %d time(s)\n", author, word, n)
	return nil
}

// GrepAction prints raw lines containing the substring, case-insensitively.
// Raw containment: "sherlock" also matches "sherlocked".
func GrepAction(c *cli.Context) error {
	database, err := openDB(c)
	if err != nil {
		return err
	}
	defer database.Close()

	substr := c.String("substr")
	if substr == "" {
		return fmt.Errorf("--substr is required")
	}

	lines, err := database.GrepLines(substr)
	if err != nil {
		return err
	}
	for _, line := range lines {
		fmt.Println(line)
	}
	fmt.Fprintf(os.Stderr, "%d matching line(s)\n", len(lines))
	return nil
}

func renderCounts(title string, counts []models.WordCount) {
	fmt.Println(title)

	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"#", "Word", "Count"})
	for i, wc := range counts {
		t.AppendRow(table.Row{i + 1, wc.Word, wc.Count})
	}
	t.Render()
}
