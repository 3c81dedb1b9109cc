package gsd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/Aiquinones/syntax-analysis-beto/conllu"
)

// WriteCorpus writes sentences to path as one JSON array, in acceptance
// order. Object keys follow the Sentence field order, so the same input
// always produces the same bytes. A nil slice still encodes as an empty
// array.
func WriteCorpus(path string, sents []*conllu.Sentence) error {
	if sents == nil {
		sents = []*conllu.Sentence{}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating corpus: %w", err)
	}

	if err := json.NewEncoder(f).Encode(sents); err != nil {
		f.Close()
		return fmt.Errorf("encoding corpus: %w", err)
	}
	return f.Close()
}

// ReadCorpus loads a JSON corpus previously written by WriteCorpus.
func ReadCorpus(path string) ([]*conllu.Sentence, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading corpus: %w", err)
	}

	var sents []*conllu.Sentence
	if err := json.Unmarshal(data, &sents); err != nil {
		return nil, fmt.Errorf("decoding corpus: %w", err)
	}
	return sents, nil
}
