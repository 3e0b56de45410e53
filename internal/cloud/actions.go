// Package cloud implements the cloud verb: rendering word clouds from the
// aggregated counts or from a vocabulary difference.
package cloud

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/DrJoeShmo/bigdataclass2018/models"
	"github.com/DrJoeShmo/bigdataclass2018/pkg/db"
	"github.com/DrJoeShmo/bigdataclass2018/pkg/wordcloud"
	"github.com/urfave/cli/v2"
)

func CloudAction(c *cli.Context) error {
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))

	cfg, err := models.LoadConfig(c.String("config"))
	if err != nil {
		return err
	}
	font := cfg.Font
	if c.IsSet("font") {
		font = c.String("font")
	}

	database, err := db.Open(c.String("db"), db.Options{})
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer database.Close()

	var counts []models.WordCount
	switch {
	case c.IsSet("diff"):
		a, b, ok := strings.Cut(c.String("diff"), ",")
		if !ok {
			return fmt.Errorf("--diff wants two authors: a,b")
		}
		counts, err = database.VocabDiff(strings.TrimSpace(a), strings.TrimSpace(b), wordcloud.MaxWords)
	case c.String("author") != "":
		counts, err = database.TopWords(c.String("author"), wordcloud.MaxWords)
	default:
		return fmt.Errorf("pass --author or --diff a,b")
	}
	if err != nil {
		return err
	}

	out := c.String("out")
	if err := wordcloud.Render(counts, wordcloud.Options{FontFile: font}, out); err != nil {
		return err
	}
	logger.Info("word cloud rendered", "out", out, "words", len(counts))
	return nil
}
