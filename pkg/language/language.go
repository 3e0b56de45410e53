// Package language detects the dominant language of a corpus sample so a
// mismatched stop-word list can be flagged before it silently filters
// nothing.
package language

import (
	"strings"

	"github.com/DrJoeShmo/bigdataclass2018/models"
	"github.com/pemistahl/lingua-go"
)

// sampleLines caps how much of a corpus feeds the detector; a couple hundred
// lines of a book is plenty.
const sampleLines = 200

// Detector wraps a lingua detector restricted to the languages we ship or
// expect stop-word lists for.
type Detector struct {
	inner lingua.LanguageDetector
}

// NewDetector builds a detector over the common European book languages.
func NewDetector() *Detector {
	langs := []lingua.Language{
		lingua.English,
		lingua.French,
		lingua.German,
		lingua.Spanish,
		lingua.Italian,
		lingua.Portuguese,
	}
	return &Detector{
		inner: lingua.NewLanguageDetectorBuilder().
			FromLanguages(langs...).
			Build(),
	}
}

// DetectCorpus samples the first records of a corpus and returns the
// detected language name in lowercase ("english"), or "" when detection
// fails or the sample is empty.
func (d *Detector) DetectCorpus(records []models.LineRecord) string {
	n := len(records)
	if n > sampleLines {
		n = sampleLines
	}
	var b strings.Builder
	for _, rec := range records[:n] {
		b.WriteString(rec.Raw)
		b.WriteByte('\n')
	}
	return d.Detect(b.String())
}

// Detect returns the lowercase language name of the text, or "".
func (d *Detector) Detect(text string) string {
	if strings.TrimSpace(text) == "" {
		return ""
	}
	lang, ok := d.inner.DetectLanguageOf(text)
	if !ok {
		return ""
	}
	return strings.ToLower(lang.String())
}
