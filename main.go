package main

import (
	"fmt"
	"os"

	"github.com/DrJoeShmo/bigdataclass2018/internal/cloud"
	"github.com/DrJoeShmo/bigdataclass2018/internal/mine"
	"github.com/DrJoeShmo/bigdataclass2018/internal/query"
	"github.com/DrJoeShmo/bigdataclass2018/internal/sessions"
	"github.com/urfave/cli/v2"
)

func main() {
	app := &cli.App{
		Name:  "bigdataclass",
		Usage: "word-frequency mining over author-tagged text corpora",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "config",
				Usage: "path to config.yaml",
				Value: "config.yaml",
			},
			&cli.StringFlag{
				Name:  "db",
				Usage: "path to the mined database (default: next to the binary)",
			},
		},
		Commands: []*cli.Command{
			{
				Name:  "mine",
				Usage: "run the full pipeline over one or more corpora",
				Flags: []cli.Flag{
					&cli.StringSliceFlag{
						Name:     "corpus",
						Usage:    "corpus to mine as author=path (repeatable)",
						Required: true,
					},
					&cli.IntFlag{
						Name:  "workers",
						Usage: "tokenization parallelism (overrides config)",
					},
					&cli.IntFlag{
						Name:  "top",
						Usage: "how many top words to print and record per author",
						Value: 10,
					},
					&cli.StringFlag{
						Name:  "stopwords",
						Usage: "external stop-word list, one word per line (overrides config)",
					},
					&cli.StringFlag{
						Name:  "output-dir",
						Usage: "session output directory (overrides config)",
					},
					&cli.BoolFlag{
						Name:  "quiet",
						Usage: "only log errors",
					},
				},
				Action: mine.MineAction,
			},
			{
				Name:  "top",
				Usage: "list an author's most frequent words",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "author", Usage: "author label", Required: true},
					&cli.IntFlag{Name: "n", Usage: "how many words", Value: 10},
				},
				Action: query.TopAction,
			},
			{
				Name:  "diff",
				Usage: "words one author uses that another never does",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "author", Usage: "author whose vocabulary is kept", Required: true},
					&cli.StringFlag{Name: "other", Usage: "author whose vocabulary is subtracted", Required: true},
					&cli.IntFlag{Name: "limit", Usage: "max rows (0 = all)", Value: 100},
					&cli.BoolFlag{Name: "yaml", Usage: "emit YAML instead of a table"},
				},
				Action: query.DiffAction,
			},
			{
				Name:  "count",
				Usage: "count occurrences of an exact word for an author (case-insensitive)",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "author", Required: true},
					&cli.StringFlag{Name: "word", Required: true},
				},
				Action: query.CountAction,
			},
			{
				Name:  "grep",
				Usage: "print raw lines containing a substring (case-insensitive, raw containment)",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "substr", Required: true},
				},
				Action: query.GrepAction,
			},
			{
				Name:  "cloud",
				Usage: "render a word cloud PNG from the aggregated counts",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "author", Usage: "render this author's top words"},
					&cli.StringFlag{Name: "diff", Usage: "render a vocabulary difference: a,b"},
					&cli.StringFlag{Name: "out", Usage: "output PNG path", Value: "cloud.png"},
					&cli.StringFlag{Name: "font", Usage: "TTF font file (overrides config)"},
				},
				Action: cloud.CloudAction,
			},
			{
				Name:  "sessions",
				Usage: "list past mining runs",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "output-dir", Usage: "session output directory (overrides config)"},
				},
				Action: sessions.SessionsAction,
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
