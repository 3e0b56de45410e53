// Package sessions implements the sessions verb: listing past mining runs.
package sessions

import (
	"fmt"
	"os"

	"github.com/DrJoeShmo/bigdataclass2018/models"
	"github.com/DrJoeShmo/bigdataclass2018/pkg/session"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/urfave/cli/v2"
)

func SessionsAction(c *cli.Context) error {
	cfg, err := models.LoadConfig(c.String("config"))
	if err != nil {
		return err
	}
	outputDir := cfg.OutputDir
	if c.IsSet("output-dir") {
		outputDir = c.String("output-dir")
	}

	index, err := session.LoadIndex(outputDir)
	if err != nil {
		return err
	}
	if len(index.Sessions) == 0 {
		fmt.Println("No sessions found")
		return nil
	}

	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Session", "Created", "Corpora", "DB"})
	for _, s := range index.Sessions {
		t.AppendRow(table.Row{
			s.SessionID,
			s.Created.Format("2006-01-02 15:04:05"),
			len(s.Corpora),
			s.DBPath,
		})
	}
	t.Render()

	fmt.Printf("\nTotal: %d session(s)\n", len(index.Sessions))
	return nil
}
