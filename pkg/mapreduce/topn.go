package mapreduce

import (
	"sort"

	"github.com/DrJoeShmo/bigdataclass2018/models"
)

// SortWordCounts orders word counts descending by count. Equal counts are
// broken ascending lexicographically by word so the ordering is deterministic
// across runs and matches the SQL path (ORDER BY n DESC, word ASC).
func SortWordCounts(wc []models.WordCount) {
	sort.Slice(wc, func(i, j int) bool {
		if wc[i].Count != wc[j].Count {
			return wc[i].Count > wc[j].Count
		}
		return wc[i].Word < wc[j].Word
	})
}

// TopN returns the n highest-count words for one author's count map.
// n <= 0 returns all words, still sorted.
func TopN(author string, byWord map[string]int, n int) []models.WordCount {
	wc := make([]models.WordCount, 0, len(byWord))
	for word, count := range byWord {
		wc = append(wc, models.WordCount{Author: author, Word: word, Count: count})
	}
	SortWordCounts(wc)

	if n > 0 && len(wc) > n {
		wc = wc[:n]
	}
	return wc
}
