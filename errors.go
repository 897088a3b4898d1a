// SPDX-License-Identifier: MIT
package vamana

import (
	"fmt"

	"github.com/katalvlaran/vamana/vamanaerr"
)

// Sentinel errors for package vamana.
var (
	// ErrEmptySource indicates Build was called against a vector source
	// with zero rows.
	ErrEmptySource = fmt.Errorf("vamana: empty vector source: %w", vamanaerr.InvalidArgument)

	// ErrNoCompressor indicates a caller asked for a compressed score
	// function without configuring a Compressor.
	ErrNoCompressor = fmt.Errorf("vamana: no compressor configured: %w", vamanaerr.InvalidArgument)

	// ErrDimensionMismatch indicates a query's length does not match the
	// index's configured dimension.
	ErrDimensionMismatch = fmt.Errorf("vamana: dimension mismatch: %w", vamanaerr.InvalidArgument)
)
