package corpus

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/DrJoeShmo/bigdataclass2018/models"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadText(t *testing.T) {
	path := writeFile(t, "huck.txt", "line one\n\nline three\n")

	records, err := LoadText(path, "twain")
	if err != nil {
		t.Fatalf("LoadText() error: %v", err)
	}

	// Empty lines are kept here; the normalizer drops them later.
	if len(records) != 3 {
		t.Fatalf("LoadText() = %d records, want 3", len(records))
	}
	for i, rec := range records {
		if rec.Author != "twain" {
			t.Errorf("record %d author = %q", i, rec.Author)
		}
	}
	if records[1].Raw != "" {
		t.Errorf("record 1 = %q, want empty line preserved", records[1].Raw)
	}
}

func TestLoadTextMissingFile(t *testing.T) {
	if _, err := LoadText(filepath.Join(t.TempDir(), "nope.txt"), "twain"); err == nil {
		t.Error("expected error for a missing corpus")
	}
}

func TestLoadDispatchesOnExtension(t *testing.T) {
	html := `<html><head><style>p{color:red}</style></head>` +
		`<body><p>The fog rolled in.</p><script>var x=1;</script></body></html>`
	path := writeFile(t, "study.html", html)

	records, err := Load(models.CorpusSpec{Author: "doyle", Path: path})
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	found := false
	for _, rec := range records {
		if rec.Author != "doyle" {
			t.Fatalf("author tag lost: %+v", rec)
		}
		switch {
		case strings.Contains(rec.Raw, "fog rolled"):
			found = true
		case strings.Contains(rec.Raw, "color:red"), strings.Contains(rec.Raw, "var x"):
			t.Errorf("markup leaked into text: %q", rec.Raw)
		}
	}
	if !found {
		t.Error("body text missing from extracted records")
	}
}
