package gsd

import "errors"

// Sentinel errors for conditions callers may need to handle differently.
var (
	// ErrCorpusNotFound indicates the partition file does not exist.
	ErrCorpusNotFound = errors.New("gsd: corpus file not found")

	// ErrUnknownPartition indicates a partition selector other than
	// dev, test, train or all.
	ErrUnknownPartition = errors.New("gsd: unknown partition")
)
