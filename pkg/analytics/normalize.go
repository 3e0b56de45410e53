// Package analytics holds the text transforms of the pipeline: punctuation
// normalization, whitespace tokenization and stop-word filtering.
package analytics

import (
	"regexp"
	"strings"

	"github.com/DrJoeShmo/bigdataclass2018/models"
)

// punctuation is the fixed substitution class. Each occurrence becomes a
// single space. This is deliberately not a general Unicode-punctuation class.
var punctuation = regexp.MustCompile(`[_"'():;,.!?\-]`)

// Normalize replaces every punctuation character in the class with a space.
// Casing is untouched here; only the ad-hoc queries fold case.
func Normalize(line string) string {
	return punctuation.ReplaceAllString(line, " ")
}

// NormalizeAll merges the given record sets into one, drops records whose
// content is empty after trimming, and fills Norm on the survivors.
func NormalizeAll(sets ...[]models.LineRecord) []models.LineRecord {
	var out []models.LineRecord
	for _, set := range sets {
		for _, rec := range set {
			if strings.TrimSpace(rec.Raw) == "" {
				continue
			}
			rec.Norm = Normalize(rec.Raw)
			out = append(out, rec)
		}
	}
	return out
}
