// SPDX-License-Identifier: MIT
package nvq

import (
	"fmt"

	"github.com/katalvlaran/vamana/vamanaerr"
)

// Sentinel errors for package nvq.
var (
	// ErrTooManySubspaces indicates M > D.
	ErrTooManySubspaces = fmt.Errorf("nvq: M exceeds vector dimension: %w", vamanaerr.InvalidArgument)

	// ErrBadBitsPerDim indicates bitsPerDim is not 4 or 8.
	ErrBadBitsPerDim = fmt.Errorf("nvq: bitsPerDim must be 4 or 8: %w", vamanaerr.InvalidArgument)

	// ErrDimensionMismatch indicates a vector presented for encode does not
	// match the quantizer's configured dimension.
	ErrDimensionMismatch = fmt.Errorf("nvq: vector dimension mismatch: %w", vamanaerr.InvalidArgument)

	// ErrEmptyTrainingSet indicates Fit was called with zero vectors.
	ErrEmptyTrainingSet = fmt.Errorf("nvq: training set is empty: %w", vamanaerr.InvalidArgument)

	// ErrCorruptVector indicates a persisted compressed vector fails a
	// layout invariant (e.g. packedLen != ceil(subDim*bitsPerDim/8)).
	ErrCorruptVector = fmt.Errorf("nvq: corrupt compressed vector: %w", vamanaerr.Corruption)

	// ErrUnsupportedVersion indicates a persisted stream's version is not
	// recognised.
	ErrUnsupportedVersion = fmt.Errorf("nvq: unsupported persisted format: %w", vamanaerr.UnsupportedFormat)

	// ErrZeroVector indicates an attempt to compute cosine similarity
	// against a zero-norm operand.
	ErrZeroVector = fmt.Errorf("nvq: zero vector: %w", vamanaerr.InvalidArgument)
)
