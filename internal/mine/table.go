package mine

import (
	"fmt"
	"os"

	"github.com/DrJoeShmo/bigdataclass2018/models"
	"github.com/jedib0t/go-pretty/v6/table"
)

// printTop renders one author's top words as a terminal table.
func printTop(author string, counts []models.WordCount) {
	fmt.Printf("\nTop %d words for %s\n", len(counts), author)

	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"#", "Word", "Count"})
	for i, wc := range counts {
		t.AppendRow(table.Row{i + 1, wc.Word, wc.Count})
	}
	t.Render()
}
