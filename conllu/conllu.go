// Package conllu reads CoNLL-U dependency treebank files.
//
// Only the columns the downstream parser consumes are retained: the surface
// form, the head index and the dependency relation of every token. For the
// full format see https://universaldependencies.org/format.html
package conllu

// Sentence is one treebank sentence reduced to three parallel columns.
// Words, Heads and Relns always have the same length.
type Sentence struct {
	// ID is the identifier from the "# sent_id" metadata line, kept
	// verbatim for traceability.
	ID string `json:"id"`

	// Words holds the surface forms in sentence order. Compound span rows
	// (index "3-4") are elided; their component rows are kept.
	Words []string `json:"words"`

	// Heads holds, per word, the index of its syntactic head in the
	// original token numbering of the sentence, with 0 marking the root.
	// Where a compound span was elided earlier in the sentence the indices
	// can exceed len(Words).
	Heads []int `json:"heads"`

	// Relns holds the dependency relation of each word to its head.
	Relns []string `json:"relns"`
}

func newSentence(id string) *Sentence {
	return &Sentence{
		ID:    id,
		Words: []string{},
		Heads: []int{},
		Relns: []string{},
	}
}
