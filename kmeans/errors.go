// SPDX-License-Identifier: MIT
package kmeans

import (
	"fmt"

	"github.com/katalvlaran/vamana/vamanaerr"
)

// Sentinel errors for package kmeans.
var (
	// ErrTooFewPoints indicates K exceeds the number of input points.
	ErrTooFewPoints = fmt.Errorf("kmeans: K exceeds point count: %w", vamanaerr.InvalidArgument)

	// ErrEmptyPoints indicates an empty points slice was passed to Cluster.
	ErrEmptyPoints = fmt.Errorf("kmeans: points must be non-empty: %w", vamanaerr.InvalidArgument)

	// ErrBadK indicates K <= 0.
	ErrBadK = fmt.Errorf("kmeans: K must be positive: %w", vamanaerr.InvalidArgument)

	// ErrBadThreshold indicates an anisotropic threshold outside [0, 1).
	ErrBadThreshold = fmt.Errorf("kmeans: anisotropic threshold must be in [0,1): %w", vamanaerr.InvalidArgument)
)
