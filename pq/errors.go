// SPDX-License-Identifier: MIT
package pq

import (
	"fmt"

	"github.com/katalvlaran/vamana/vamanaerr"
)

// Sentinel errors for package pq.
var (
	// ErrTooManySubspaces indicates M > D.
	ErrTooManySubspaces = fmt.Errorf("pq: M exceeds vector dimension: %w", vamanaerr.InvalidArgument)

	// ErrTooFewTrainingVectors indicates K exceeds the (post-subsample)
	// training set size.
	ErrTooFewTrainingVectors = fmt.Errorf("pq: K exceeds training set size: %w", vamanaerr.InvalidArgument)

	// ErrEmptyTrainingSet indicates Train was called with zero vectors.
	ErrEmptyTrainingSet = fmt.Errorf("pq: training set is empty: %w", vamanaerr.InvalidArgument)

	// ErrDimensionMismatch indicates a vector presented for encode/decode
	// does not match the codebook's dimension. BuildADCTable also returns it
	// for an invalid similarity kind.
	ErrDimensionMismatch = fmt.Errorf("pq: vector dimension mismatch: %w", vamanaerr.InvalidArgument)

	// ErrBadCode indicates a compressed code's length does not equal M or a
	// byte exceeds K-1.
	ErrBadCode = fmt.Errorf("pq: malformed compressed code: %w", vamanaerr.InvalidArgument)

	// ErrUnsupportedVersion indicates a persisted codebook's version or
	// magic word is not recognised.
	ErrUnsupportedVersion = fmt.Errorf("pq: unsupported persisted format: %w", vamanaerr.UnsupportedFormat)

	// ErrCorruptLayout indicates a persisted codebook fails an invariant
	// check on load (e.g. sum(subSizes) != D).
	ErrCorruptLayout = fmt.Errorf("pq: corrupt codebook layout: %w", vamanaerr.Corruption)
)
