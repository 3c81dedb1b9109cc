package gsd

import (
	"fmt"
	"path/filepath"
)

// partitions is the expansion of the "all" selector, in processing order.
var partitions = []string{"dev", "test", "train"}

// Dataset locates the partition files of one treebank release.
type Dataset struct {
	// Dir is the directory holding the .conllu partition files.
	Dir string

	// Lang is the language code used in the partition filenames.
	Lang string
}

// PartitionPath returns the CoNLL-U input file for a partition, following
// the UD release naming scheme <dir>/<lang>_gsd-ud-<partition>.conllu.
func (d Dataset) PartitionPath(partition string) string {
	return filepath.Join(d.Dir, fmt.Sprintf("%s_gsd-ud-%s.conllu", d.Lang, partition))
}

// OutputPath returns the JSON output file for a partition under dir.
func (d Dataset) OutputPath(dir, partition string) string {
	return filepath.Join(dir, fmt.Sprintf("%s_gsd-ud-%s.json", d.Lang, partition))
}

// Partitions resolves a partition selector into the list of partitions to
// process: one of dev, test or train, or all of them in that order.
func Partitions(sel string) ([]string, error) {
	switch sel {
	case "all":
		return partitions, nil
	case "dev", "test", "train":
		return []string{sel}, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownPartition, sel)
}
