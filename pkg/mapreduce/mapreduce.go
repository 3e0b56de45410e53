// Package mapreduce implements the fan-out and aggregation primitives of the
// pipeline: un-nesting token sequences into per-token records, counting
// (author, word) groups, and merging partial counts.
package mapreduce

import (
	"unicode/utf8"

	"github.com/DrJoeShmo/bigdataclass2018/models"
)

// MinTokenLen is the exclusive lower bound on token length: tokens of this
// many runes or fewer are discarded during Explode.
const MinTokenLen = 2

// Explode un-nests one line's token sequence into per-token records tagged
// with the author, discarding tokens of MinTokenLen runes or fewer. Ordering
// between fan-out records is irrelevant downstream.
func Explode(author string, tokens []string) []models.TokenRecord {
	out := make([]models.TokenRecord, 0, len(tokens))
	for _, t := range tokens {
		if utf8.RuneCountInString(t) <= MinTokenLen {
			continue
		}
		out = append(out, models.TokenRecord{Author: author, Word: t})
	}
	return out
}

// Counts maps author -> word -> occurrences. Group keys are exact strings;
// no case folding happens during aggregation.
type Counts map[string]map[string]int

// Aggregate groups token records by (author, word) and counts rows per group.
func Aggregate(tokens []models.TokenRecord) Counts {
	counts := make(Counts)
	for _, t := range tokens {
		byWord := counts[t.Author]
		if byWord == nil {
			byWord = make(map[string]int)
			counts[t.Author] = byWord
		}
		byWord[t.Word]++
	}
	return counts
}

// Reduce merges partial counts into a single Counts by summing per group key.
// Reducing a single already-aggregated partial is a no-op: keys and counts
// come through unchanged.
func Reduce(partials []Counts) Counts {
	final := make(Counts)
	for _, partial := range partials {
		for author, byWord := range partial {
			dst := final[author]
			if dst == nil {
				dst = make(map[string]int)
				final[author] = dst
			}
			for word, n := range byWord {
				dst[word] += n
			}
		}
	}
	return final
}
