// Package gsd converts Universal Dependencies GSD treebank partitions into
// per-sentence JSON records for training a subword-tokenized dependency
// parser.
//
// # Quick Start
//
//	ex := gsd.New()
//	sents, filtered, err := ex.ExtractFile("es_gsd-ud-dev.conllu")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Printf("kept %d sentences, dropped %d\n", len(sents), filtered)
//
//	if err := gsd.WriteCorpus("es_gsd-ud-dev.json", sents); err != nil {
//	    log.Fatal(err)
//	}
//
// # Tokenizer Compatibility
//
// The treebank annotates one head and one dependency relation per word,
// while WordPiece-style tokenizers emit one token per CJK ideograph. A
// sentence containing such characters can no longer be aligned word-to-token,
// so the extractor drops it rather than guess a realignment, and reports
// how many sentences were dropped.
//
// # Treebank Files
//
// Partition files follow the UD release naming scheme and are available at
// https://github.com/UniversalDependencies/UD_Spanish-GSD
package gsd
