package gsd

import (
	"log/slog"

	"github.com/Aiquinones/syntax-analysis-beto/conllu"
)

// Option configures an Extractor.
type Option func(*config)

type config struct {
	logger       *slog.Logger
	incompatible func(*conllu.Sentence) bool
}

func defaultConfig() config {
	return config{
		logger:       slog.Default(),
		incompatible: HasIdeograph,
	}
}

// WithLogger sets the logger (default: slog.Default()).
func WithLogger(l *slog.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithFilter replaces the predicate deciding which sentences to drop
// (default: HasIdeograph).
func WithFilter(fn func(*conllu.Sentence) bool) Option {
	return func(c *config) {
		if fn != nil {
			c.incompatible = fn
		}
	}
}
