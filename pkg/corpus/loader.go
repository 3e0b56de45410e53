// Package corpus loads author-tagged source text. Plain-text files are read
// line by line; HTML editions are reduced to text first.
package corpus

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/DrJoeShmo/bigdataclass2018/models"
)

// maxLineSize bounds a single source line. Public-domain book dumps
// occasionally contain very long unwrapped paragraphs.
const maxLineSize = 1024 * 1024

// Load reads one corpus file into author-tagged line records. Files ending in
// .html or .htm go through the HTML extractor; everything else is treated as
// plain text, one record per line. Bytes are passed through as-is; no
// encoding validation happens here.
func Load(spec models.CorpusSpec) ([]models.LineRecord, error) {
	switch strings.ToLower(filepath.Ext(spec.Path)) {
	case ".html", ".htm":
		return LoadHTML(spec.Path, spec.Author)
	default:
		return LoadText(spec.Path, spec.Author)
	}
}

// LoadText reads a plain-text file, one logical unit of text per line.
func LoadText(path, author string) ([]models.LineRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open corpus %s: %w", path, err)
	}
	defer f.Close()

	var records []models.LineRecord
	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 64*1024), maxLineSize)
	for sc.Scan() {
		records = append(records, models.LineRecord{Author: author, Raw: sc.Text()})
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("failed to read corpus %s: %w", path, err)
	}
	return records, nil
}
