// Package starerr defines the sentinel errors shared across the
// star-tracker pipeline. Call sites wrap these with fmt.Errorf("...: %w",
// starerr.ErrIO) so callers can still test with errors.Is while getting a
// specific message.
package starerr

import "errors"

var (
	// ErrIO indicates a file was missing, truncated, or unreadable.
	ErrIO = errors.New("io error")

	// ErrParse indicates a malformed calibration or catalog file.
	ErrParse = errors.New("parse error")

	// ErrEmptyInput indicates extraction ran with no frame loaded, or
	// identification ran with fewer than four spots.
	ErrEmptyInput = errors.New("empty input")

	// ErrCatalog indicates identification was attempted before a feature
	// catalog was loaded.
	ErrCatalog = errors.New("catalog not loaded")
)
