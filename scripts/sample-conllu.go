//go:build ignore

// Cut the first N sentences out of a CoNLL-U file, keeping comment lines
// and compound rows intact. Used to build small fixtures under testdata/.
// Usage: go run ./scripts/sample-conllu.go in.conllu out.conllu 25
package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
)

func main() {
	if len(os.Args) != 4 {
		fmt.Fprintln(os.Stderr, "usage: sample-conllu.go <in.conllu> <out.conllu> <sentences>")
		os.Exit(1)
	}

	limit, err := strconv.Atoi(os.Args[3])
	if err != nil || limit <= 0 {
		fmt.Fprintf(os.Stderr, "bad sentence count %q\n", os.Args[3])
		os.Exit(1)
	}

	n, err := sample(os.Args[1], os.Args[2], limit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Sampled %d sentences into %s\n", n, os.Args[2])
}

func sample(inPath, outPath string, limit int) (int, error) {
	in, err := os.Open(inPath)
	if err != nil {
		return 0, fmt.Errorf("opening input: %w", err)
	}
	defer in.Close()

	out, err := os.Create(outPath)
	if err != nil {
		return 0, fmt.Errorf("creating output: %w", err)
	}
	defer out.Close()

	w := bufio.NewWriter(out)
	scanner := bufio.NewScanner(in)

	sentences := 0
	open := false
	for scanner.Scan() {
		line := scanner.Text()

		if line == "" {
			if !open {
				continue
			}
			fmt.Fprintln(w)
			open = false
			sentences++
			if sentences == limit {
				break
			}
			continue
		}

		open = true
		fmt.Fprintln(w, line)
	}
	if err := scanner.Err(); err != nil {
		return 0, fmt.Errorf("reading input: %w", err)
	}

	// Input ended mid-block without a trailing blank line
	if open {
		fmt.Fprintln(w)
		sentences++
	}

	if err := w.Flush(); err != nil {
		return 0, fmt.Errorf("writing output: %w", err)
	}
	return sentences, nil
}
