// SPDX-License-Identifier: MIT
// Package vamanaerr defines the implementation-independent error kinds shared
// across every package in this module, so callers can test for a class of
// failure with errors.Is regardless of which package raised it.
package vamanaerr

import "errors"

// Sentinel error kinds. Every package-level sentinel error in this module
// wraps exactly one of these via fmt.Errorf("<pkg>: ...: %w", <kind>).
var (
	// InvalidArgument marks structural misuse: bad dimensions, negative
	// counts, mismatched lengths, or an attempt to normalise a zero vector.
	InvalidArgument = errors.New("vamana: invalid argument")

	// UnsupportedFormat marks a file with an unknown magic, version,
	// bits-per-dimension, or K.
	UnsupportedFormat = errors.New("vamana: unsupported format")

	// IO marks an underlying read/write failure from a collaborator.
	IO = errors.New("vamana: io error")

	// Corruption marks an asserted invariant violated while loading
	// persisted state (e.g. sum(subSizes) != D).
	Corruption = errors.New("vamana: corruption")
)
