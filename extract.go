package gsd

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/Aiquinones/syntax-analysis-beto/conllu"
)

// Extractor converts CoNLL-U partition streams into the sentence records
// the parsing model trains on, dropping tokenizer-incompatible sentences.
type Extractor struct {
	logger       *slog.Logger
	incompatible func(*conllu.Sentence) bool
}

// New creates an Extractor.
func New(opts ...Option) *Extractor {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Extractor{
		logger:       cfg.logger,
		incompatible: cfg.incompatible,
	}
}

// Extract consumes a CoNLL-U stream and returns the accepted sentences in
// input order together with the number of sentences the filter dropped.
// The first malformed row aborts the whole stream.
func (e *Extractor) Extract(r io.Reader) ([]*conllu.Sentence, int, error) {
	cr := conllu.NewReader(r)

	var sents []*conllu.Sentence
	filtered := 0
	for {
		sent, err := cr.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, 0, err
		}

		if e.incompatible(sent) {
			filtered++
			e.logger.Debug("dropping tokenizer-incompatible sentence", "id", sent.ID)
			continue
		}
		sents = append(sents, sent)
	}

	return sents, filtered, nil
}

// ExtractFile runs Extract over the partition file at path.
func (e *Extractor) ExtractFile(path string) ([]*conllu.Sentence, int, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, 0, fmt.Errorf("%w: %s", ErrCorpusNotFound, path)
		}
		return nil, 0, fmt.Errorf("opening corpus: %w", err)
	}
	defer f.Close()

	sents, filtered, err := e.Extract(f)
	if err != nil {
		return nil, 0, fmt.Errorf("%s: %w", path, err)
	}
	return sents, filtered, nil
}
