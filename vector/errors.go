// SPDX-License-Identifier: MIT
package vector

import (
	"fmt"

	"github.com/katalvlaran/vamana/vamanaerr"
)

// Sentinel errors for package vector.
var (
	// ErrZeroVector indicates an attempt to compute cosine similarity or
	// normalise a vector whose norm is zero.
	ErrZeroVector = fmt.Errorf("vector: zero vector: %w", vamanaerr.InvalidArgument)

	// ErrLengthMismatch indicates two operands of different lengths were
	// passed to a binary kernel. ScalarProvider.Score also returns it for a
	// similarity kind it does not recognise.
	ErrLengthMismatch = fmt.Errorf("vector: length mismatch: %w", vamanaerr.InvalidArgument)

	// ErrRangeOutOfBounds indicates an (offset, length) logical range does
	// not fit inside the backing slice.
	ErrRangeOutOfBounds = fmt.Errorf("vector: range out of bounds: %w", vamanaerr.InvalidArgument)
)
