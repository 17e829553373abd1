// Package apperrors holds the error taxonomy shared by the screening packages.
// Callers wrap these with fmt.Errorf("...: %w", err) and classify with errors.Is.
package apperrors

import "errors"

var (
	// ErrExtraction means no text could be recovered from a source document.
	ErrExtraction = errors.New("no text could be extracted from the document")

	// ErrUnsupportedFormat means the document kind is outside the supported set.
	ErrUnsupportedFormat = errors.New("unsupported document format")

	// ErrInvalidQuery means the query is empty or carries nothing to match on.
	ErrInvalidQuery = errors.New("invalid query")

	// ErrEmptyCorpus means there are no eligible candidate documents.
	ErrEmptyCorpus = errors.New("no eligible candidate documents")

	// ErrInvalidThreshold means a similarity threshold outside [0,1].
	ErrInvalidThreshold = errors.New("threshold must be within [0,1]")

	// ErrCorpusTooLarge means the corpus exceeds the configured ranking bound.
	ErrCorpusTooLarge = errors.New("corpus exceeds ranking limit")

	ErrNotFound = errors.New("not found")
)
