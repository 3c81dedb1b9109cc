// Package stats aggregates corpus-level counts over treebank partitions.
package stats

import (
	"sort"

	gsd "github.com/Aiquinones/syntax-analysis-beto"
	"github.com/Aiquinones/syntax-analysis-beto/conllu"
)

// Summary holds the aggregate counts of one partition.
type Summary struct {
	Sentences    int
	Words        int
	Incompatible int
	Relations    map[string]int
}

// Collect aggregates counts over sentences. Incompatible counts the
// sentences the extractor would drop, using the same ideograph predicate.
func Collect(sents []*conllu.Sentence) Summary {
	s := Summary{Relations: make(map[string]int)}

	for _, sent := range sents {
		s.Sentences++
		s.Words += len(sent.Words)
		if gsd.HasIdeograph(sent) {
			s.Incompatible++
		}
		for _, reln := range sent.Relns {
			s.Relations[reln]++
		}
	}

	return s
}

// MeanWords returns the average sentence length in words.
func (s Summary) MeanWords() float64 {
	if s.Sentences == 0 {
		return 0
	}
	return float64(s.Words) / float64(s.Sentences)
}

// RelationCount pairs a dependency relation with its frequency.
type RelationCount struct {
	Reln  string
	Count int
}

// TopRelations returns the n most frequent relations, most frequent first.
// Ties break alphabetically so the order is stable.
func (s Summary) TopRelations(n int) []RelationCount {
	counts := make([]RelationCount, 0, len(s.Relations))
	for reln, c := range s.Relations {
		counts = append(counts, RelationCount{Reln: reln, Count: c})
	}

	sort.Slice(counts, func(i, j int) bool {
		if counts[i].Count != counts[j].Count {
			return counts[i].Count > counts[j].Count
		}
		return counts[i].Reln < counts[j].Reln
	})

	if n > 0 && n < len(counts) {
		counts = counts[:n]
	}
	return counts
}
