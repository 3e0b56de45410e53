// Package mine implements the mine verb: the full pipeline from loading
// corpora through tokenization to the materialized word counts.
package mine

import (
	"fmt"
	"log/slog"
	"os"
	"sync"
	"time"

	"github.com/DrJoeShmo/bigdataclass2018/models"
	"github.com/DrJoeShmo/bigdataclass2018/pkg/analytics"
	"github.com/DrJoeShmo/bigdataclass2018/pkg/corpus"
	"github.com/DrJoeShmo/bigdataclass2018/pkg/db"
	"github.com/DrJoeShmo/bigdataclass2018/pkg/language"
	"github.com/DrJoeShmo/bigdataclass2018/pkg/mapreduce"
	"github.com/DrJoeShmo/bigdataclass2018/pkg/session"
	"github.com/urfave/cli/v2"
)

// batchSize is how many lines one worker job carries.
const batchSize = 2000

func MineAction(c *cli.Context) error {
	logLevel := slog.LevelInfo
	if c.Bool("quiet") {
		logLevel = slog.LevelError
	}
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))
	startTime := time.Now()

	cfg, err := models.LoadConfig(c.String("config"))
	if err != nil {
		return err
	}
	if c.IsSet("workers") {
		cfg.Workers = c.Int("workers")
	}
	if c.IsSet("output-dir") {
		cfg.OutputDir = c.String("output-dir")
	}
	if c.IsSet("stopwords") {
		cfg.Stopwords = c.String("stopwords")
	}

	var specs []models.CorpusSpec
	for _, raw := range c.StringSlice("corpus") {
		spec, err := models.ParseCorpusSpec(raw)
		if err != nil {
			return err
		}
		specs = append(specs, spec)
	}
	if len(specs) == 0 {
		return fmt.Errorf("no corpora given (use --corpus author=path, repeatable)")
	}

	stopwords := analytics.DefaultStopwords()
	if cfg.Stopwords != "" {
		stopwords, err = analytics.FromFile(cfg.Stopwords)
		if err != nil {
			return err
		}
	}
	logger.Info("stopword list loaded", "lang", stopwords.Lang(), "size", stopwords.Len())

	database, err := db.Open(c.String("db"), db.Options{
		CacheMemoryMB: cfg.CacheMemoryMB,
		MmapSizeMB:    cfg.MmapSizeMB,
	})
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer database.Close()

	// Re-mining rebuilds everything; nothing outlives a run by contract.
	if err := database.Reset(); err != nil {
		return err
	}

	detector := language.NewDetector()

	var sets [][]models.LineRecord
	var sources []string
	for _, spec := range specs {
		records, err := corpus.Load(spec)
		if err != nil {
			return err
		}
		logger.Info("corpus loaded", "author", spec.Author, "source", spec.Path, "lines", len(records))

		if lang := detector.DetectCorpus(records); lang != "" && lang != stopwords.Lang() && cfg.Stopwords == "" {
			logger.Warn("corpus language differs from stopword list",
				"author", spec.Author, "detected", lang, "stopwords", stopwords.Lang())
		}

		sets = append(sets, records)
		sources = append(sources, spec.Path)
	}

	// Merge, drop empty lines, strip punctuation.
	normalized := analytics.NormalizeAll(sets...)

	// Tokenize, stop-filter and un-nest on a worker pool: each job is a
	// batch of lines, each result a batch of token records plus its partial
	// counts. The partials are reduced into one count map for reporting.
	tokens, counts := tokenizeAll(normalized, stopwords, cfg.Workers)
	logger.Info("tokenization complete", "lines", len(normalized), "tokens", len(tokens), "workers", cfg.Workers)

	// Materialize once; every downstream query reuses these tables.
	if err := database.InsertLines(normalized); err != nil {
		return err
	}
	if err := database.InsertTokens(tokens); err != nil {
		return err
	}
	if err := database.MaterializeCounts(); err != nil {
		return err
	}

	tokensByAuthor := make(map[string]int)
	for author, byWord := range counts {
		for _, n := range byWord {
			tokensByAuthor[author] += n
		}
	}
	linesByAuthor := make(map[string]int)
	for _, rec := range normalized {
		linesByAuthor[rec.Author]++
	}

	var stats []models.CorpusStats
	for _, spec := range specs {
		s := models.CorpusStats{
			Author:     spec.Author,
			Source:     spec.Path,
			LineCount:  linesByAuthor[spec.Author],
			TokenCount: tokensByAuthor[spec.Author],
		}
		if err := database.InsertCorpus(s); err != nil {
			return err
		}
		stats = append(stats, s)
	}

	// Display and summary come straight from the reduced counts; the
	// materialized word_counts table serves the later verbs. Both orderings
	// use the same tie-break, so the two views agree.
	topN := c.Int("top")
	topWords := make(map[string][]models.WordCount)
	for _, spec := range specs {
		top := mapreduce.TopN(spec.Author, counts[spec.Author], topN)
		topWords[spec.Author] = top
		printTop(spec.Author, top)
	}

	sessionID := session.GenerateSessionID(sources)
	summaryPath, err := session.WriteSummary(cfg.OutputDir, session.Summary{
		SessionID: sessionID,
		Created:   startTime,
		Corpora:   stats,
		TopWords:  topWords,
	})
	if err != nil {
		return err
	}
	if err := session.UpdateIndex(cfg.OutputDir, session.Info{
		SessionID: sessionID,
		Created:   startTime,
		DBPath:    database.Path(),
		Corpora:   sources,
	}); err != nil {
		return err
	}

	logger.Info("mining complete",
		"session", sessionID,
		"summary", summaryPath,
		"db", database.Path(),
		"elapsed", time.Since(startTime).String(),
	)
	return nil
}

// tokenizeAll fans line batches out to workers, collects the token records
// for materialization, and reduces the per-batch partial counts into one
// count map. Fan-out order between batches is irrelevant: aggregation is
// order-independent.
func tokenizeAll(records []models.LineRecord, stopwords analytics.Stopwords, workers int) ([]models.TokenRecord, mapreduce.Counts) {
	if workers <= 0 {
		workers = 1
	}

	type result struct {
		tokens  []models.TokenRecord
		partial mapreduce.Counts
	}

	nBatches := (len(records) + batchSize - 1) / batchSize
	jobs := make(chan []models.LineRecord, nBatches)
	results := make(chan result, nBatches)

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for batch := range jobs {
				var out []models.TokenRecord
				for _, rec := range batch {
					kept := stopwords.Filter(analytics.Tokenize(rec.Norm))
					out = append(out, mapreduce.Explode(rec.Author, kept)...)
				}
				results <- result{tokens: out, partial: mapreduce.Aggregate(out)}
			}
		}()
	}

	for start := 0; start < len(records); start += batchSize {
		end := start + batchSize
		if end > len(records) {
			end = len(records)
		}
		jobs <- records[start:end]
	}
	close(jobs)

	wg.Wait()
	close(results)

	var tokens []models.TokenRecord
	var partials []mapreduce.Counts
	for res := range results {
		tokens = append(tokens, res.tokens...)
		partials = append(partials, res.partial)
	}
	return tokens, mapreduce.Reduce(partials)
}
