package gsd

import (
	"unicode"

	"github.com/Aiquinones/syntax-analysis-beto/conllu"
)

// ideographs holds the CJK ideograph blocks a WordPiece tokenizer splits
// into one token per character: the Unified Ideographs block, extensions A
// through E, and the Compatibility Ideographs block with its supplement.
// Hangul and the kana blocks are word-segmentable and stay out of the table.
var ideographs = &unicode.RangeTable{
	R16: []unicode.Range16{
		{Lo: 0x3400, Hi: 0x4DBF, Stride: 1}, // Extension A
		{Lo: 0x4E00, Hi: 0x9FFF, Stride: 1}, // CJK Unified Ideographs
		{Lo: 0xF900, Hi: 0xFAFF, Stride: 1}, // Compatibility Ideographs
	},
	R32: []unicode.Range32{
		{Lo: 0x20000, Hi: 0x2A6DF, Stride: 1}, // Extension B
		{Lo: 0x2A700, Hi: 0x2B73F, Stride: 1}, // Extension C
		{Lo: 0x2B740, Hi: 0x2B81F, Stride: 1}, // Extension D
		{Lo: 0x2B820, Hi: 0x2CEAF, Stride: 1}, // Extension E
		{Lo: 0x2F800, Hi: 0x2FA1F, Stride: 1}, // Compatibility Supplement
	},
}

// HasIdeograph reports whether any word of the sentence contains a CJK
// ideograph. The treebank annotates one head and one relation per word,
// while a WordPiece tokenizer emits one token per ideograph, so a single
// such character breaks the word-to-token alignment for the whole sentence.
func HasIdeograph(sent *conllu.Sentence) bool {
	for _, word := range sent.Words {
		for _, r := range word {
			if unicode.Is(ideographs, r) {
				return true
			}
		}
	}
	return false
}
