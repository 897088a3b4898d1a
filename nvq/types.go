// SPDX-License-Identifier: MIT
package nvq

// Subvector is one subspace's compressed, self-describing code: the fitted
// logistic-warp parameters plus the packed, quantized levels.
type Subvector struct {
	BitsPerDim  int
	MinValue    float32
	MaxValue    float32
	GrowthRate  float32
	Midpoint    float32 // always 0; retained for wire compatibility.
	OriginalDim int
	Packed      []byte
}

// Vector is a full compressed vector: one Subvector per subspace.
type Vector struct {
	Subvectors []Subvector
}

// Options configures a Quantizer.
type Options struct {
	BitsPerDim   int
	GlobalCenter bool
	Learn        bool
	DefaultRate  float32
}

// Option is a functional option for NewQuantizer.
type Option func(*Options)

// WithBitsPerDim sets the packed code width (4 or 8, default 8).
func WithBitsPerDim(bits int) Option {
	return func(o *Options) { o.BitsPerDim = bits }
}

// WithGlobalCentering enables subtracting a precomputed global mean from
// every vector before per-subvector fitting.
func WithGlobalCentering() Option {
	return func(o *Options) { o.GlobalCenter = true }
}

// WithoutLearning disables the growth-rate search, fixing every subvector's
// rate to DefaultRate. Useful for tests and for data known to be uniform.
func WithoutLearning() Option {
	return func(o *Options) { o.Learn = false }
}

// WithDefaultRate sets the growth rate used when learning is disabled.
func WithDefaultRate(r float32) Option {
	return func(o *Options) { o.DefaultRate = r }
}

func defaultOptions() Options {
	return Options{BitsPerDim: 8, Learn: true, DefaultRate: 1.0}
}

// Quantizer holds the shared, vector-independent configuration for NVQ:
// dimension layout and bit width. Per-vector warp parameters are fitted
// fresh on every Encode call.
type Quantizer struct {
	Dimension  int
	M          int
	SubSizes   []int
	Offsets    []int
	BitsPerDim int
	GlobalMean []float32 // nil if centering disabled

	learn       bool
	defaultRate float32
}

// NewQuantizer builds a Quantizer for vectors of the given dimension split
// into m subvectors.
func NewQuantizer(dim, m int, opts ...Option) (*Quantizer, error) {
	if m <= 0 || m > dim {
		return nil, ErrTooManySubspaces
	}
	cfg := defaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.BitsPerDim != 4 && cfg.BitsPerDim != 8 {
		return nil, ErrBadBitsPerDim
	}

	sizes := subspaceSizes(dim, m)
	offsets := subspaceOffsets(sizes)

	q := &Quantizer{
		Dimension:   dim,
		M:           m,
		SubSizes:    sizes,
		Offsets:     offsets,
		BitsPerDim:  cfg.BitsPerDim,
		learn:       cfg.Learn,
		defaultRate: cfg.DefaultRate,
	}

	if cfg.GlobalCenter {
		// Zero mean until Fit is called; Fit overwrites this.
		q.GlobalMean = make([]float32, dim)
	}
	return q, nil
}

// Fit computes the global mean over vectors when global centering is
// enabled. It is a no-op otherwise.
func (q *Quantizer) Fit(vectors [][]float32) error {
	if q.GlobalMean == nil {
		return nil
	}
	if len(vectors) == 0 {
		return ErrEmptyTrainingSet
	}
	mean := make([]float32, q.Dimension)
	for _, v := range vectors {
		if len(v) != q.Dimension {
			return ErrDimensionMismatch
		}
		for d, x := range v {
			mean[d] += x
		}
	}
	inv := 1 / float32(len(vectors))
	for d := range mean {
		mean[d] *= inv
	}
	q.GlobalMean = mean
	return nil
}

func subspaceSizes(dim, m int) []int {
	base := dim / m
	rem := dim % m
	sizes := make([]int, m)
	for i := range sizes {
		sizes[i] = base
		if i < rem {
			sizes[i]++
		}
	}
	return sizes
}

func subspaceOffsets(sizes []int) []int {
	offsets := make([]int, len(sizes))
	acc := 0
	for i, s := range sizes {
		offsets[i] = acc
		acc += s
	}
	return offsets
}
