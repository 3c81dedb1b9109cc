package conllu

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// numFields is the column count of a CoNLL-U token row.
const numFields = 10

// Sentinel errors for conditions callers may need to handle differently.
var (
	// ErrFieldCount indicates a token row without the required 10 columns.
	ErrFieldCount = errors.New("conllu: wrong field count")

	// ErrOrphanToken indicates a token row before any sentence metadata.
	ErrOrphanToken = errors.New("conllu: token row outside a sentence")
)

// lineClass is the category of one raw input line.
type lineClass int

const (
	lineBlank lineClass = iota
	lineMetaID
	lineMetaText
	lineToken
	lineOther
)

// classify maps a raw line to its category. Comment lines split on the
// "text" tag at bytes 2:6, the position it occupies in "# text = ..."; any
// other comment is the sentence-identifier metadata line.
func classify(line string) lineClass {
	switch {
	case line == "":
		return lineBlank
	case line[0] == '#':
		if len(line) >= 6 && line[2:6] == "text" {
			return lineMetaText
		}
		return lineMetaID
	case line[0] >= '0' && line[0] <= '9':
		return lineToken
	}
	return lineOther
}

// Reader yields sentences from a CoNLL-U stream in a single forward pass.
// A metadata line opens a sentence, token rows extend it and a blank line
// (or the end of the stream) completes it; whether a sentence is open is
// tracked in cur. Reader is not safe for concurrent use.
type Reader struct {
	scanner *bufio.Scanner
	line    int
	cur     *Sentence
	done    bool
}

// NewReader returns a Reader consuming r.
func NewReader(r io.Reader) *Reader {
	return &Reader{scanner: bufio.NewScanner(r)}
}

// Next returns the next sentence, or io.EOF once the stream is exhausted.
// Any other error is fatal: the input cannot be trusted past a malformed
// row, so the Reader stops and every later call returns io.EOF.
func (r *Reader) Next() (*Sentence, error) {
	if r.done {
		return nil, io.EOF
	}

	for r.scanner.Scan() {
		r.line++
		line := r.scanner.Text()

		switch classify(line) {
		case lineBlank:
			if r.cur == nil {
				continue
			}
			sent := r.cur
			r.cur = nil
			return sent, nil

		case lineMetaID:
			// A new identifier line replaces any record still open.
			fields := strings.Fields(line)
			r.cur = newSentence(fields[len(fields)-1])

		case lineMetaText:
			// Restates the token rows as free text, never consumed.

		case lineToken:
			if r.cur == nil {
				r.done = true
				return nil, fmt.Errorf("line %d: %w", r.line, ErrOrphanToken)
			}
			if err := r.cur.addRow(line); err != nil {
				r.done = true
				return nil, fmt.Errorf("line %d: %w", r.line, err)
			}

		case lineOther:
			// Not part of the format, skipped.
		}
	}

	r.done = true
	if err := r.scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading input: %w", err)
	}
	if r.cur != nil {
		sent := r.cur
		r.cur = nil
		return sent, nil
	}
	return nil, io.EOF
}

// addRow parses one token row and appends its word, head and relation.
// Compound span rows carry an index like "3-4"; their components follow as
// rows of their own, so the span row itself contributes nothing.
func (s *Sentence) addRow(line string) error {
	fields := strings.Split(line, "\t")
	if len(fields) != numFields {
		return fmt.Errorf("%w: got %d", ErrFieldCount, len(fields))
	}
	if strings.Contains(fields[0], "-") {
		return nil
	}

	head, err := strconv.Atoi(fields[6])
	if err != nil {
		return fmt.Errorf("head %q: %w", fields[6], err)
	}

	s.Words = append(s.Words, fields[1])
	s.Heads = append(s.Heads, head)
	s.Relns = append(s.Relns, fields[7])
	return nil
}

// ReadAll consumes r and returns every sentence in input order.
func ReadAll(r io.Reader) ([]*Sentence, error) {
	cr := NewReader(r)
	var sents []*Sentence
	for {
		sent, err := cr.Next()
		if err == io.EOF {
			return sents, nil
		}
		if err != nil {
			return nil, err
		}
		sents = append(sents, sent)
	}
}
