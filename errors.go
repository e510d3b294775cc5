package sanipath

import "errors"

// Sentinel errors for the three fatal failure modes. Everything else the
// sanitizer encounters is auto-corrected, never rejected.
var (
	// ErrUnsupportedPath is returned for long UNC Windows paths (\\? prefix),
	// which are deliberately not supported.
	ErrUnsupportedPath = errors.New("unsupported path")

	// ErrHintContradiction is returned when caller-supplied role hints are
	// inconsistent with each other or with the segment text. It indicates a
	// bug in the calling code, not bad user input.
	ErrHintContradiction = errors.New("contradictory role hints")

	// ErrNodeTooLong is returned when a segment exceeds MaxNodeLength and
	// truncation was not enabled.
	ErrNodeTooLong = errors.New("path node exceeds maximum length")
)
