// SPDX-License-Identifier: MIT
package vamana

import (
	"github.com/katalvlaran/vamana/nvq"
	"github.com/katalvlaran/vamana/pq"
	"github.com/katalvlaran/vamana/search"
	"github.com/katalvlaran/vamana/similarity"
)

// Compressor adapts a trained PQ or NVQ quantizer to a uniform encode/score
// contract so Index can stay agnostic of which compression scheme is
// active.
type Compressor interface {
	// Fit trains the compressor against a representative sample of vectors.
	Fit(vectors [][]float32) error
	// Encode compresses one vector into an opaque per-node code.
	Encode(vec []float32) (any, error)
	// ScoreFunction returns a search.ScoreFunc scoring every ordinal's
	// stored code against query, under kind.
	ScoreFunction(query []float32, kind similarity.Kind, codes []any) (search.ScoreFunc, error)
}

// PQCompressor adapts package pq to Compressor.
type PQCompressor struct {
	M        int
	Opts     []pq.Option
	Quantize bool
	codebook *pq.Codebook
}

// NewPQCompressor returns a Compressor that trains an M-subspace product
// quantization codebook, optionally quantizing ADC tables to 16 bits.
func NewPQCompressor(m int, quantize bool, opts ...pq.Option) *PQCompressor {
	return &PQCompressor{M: m, Opts: opts, Quantize: quantize}
}

func (c *PQCompressor) Fit(vectors [][]float32) error {
	cb, err := pq.Train(vectors, c.M, c.Opts...)
	if err != nil {
		return err
	}
	c.codebook = cb
	return nil
}

func (c *PQCompressor) Encode(vec []float32) (any, error) {
	return c.codebook.Encode(vec)
}

func (c *PQCompressor) ScoreFunction(query []float32, kind similarity.Kind, codes []any) (search.ScoreFunc, error) {
	table, err := c.codebook.BuildADCTable(query, kind, c.Quantize)
	if err != nil {
		return nil, err
	}
	return func(ord int32) float32 {
		code, _ := codes[ord].(pq.Code)
		score, _ := table.Score(code)
		return score
	}, nil
}

// NVQCompressor adapts package nvq to Compressor.
type NVQCompressor struct {
	M         int
	Opts      []nvq.Option
	quantizer *nvq.Quantizer
	dim       int
}

// NewNVQCompressor returns a Compressor that scalar-quantizes each of M
// subvectors via a per-subvector logistic warp.
func NewNVQCompressor(m int, opts ...nvq.Option) *NVQCompressor {
	return &NVQCompressor{M: m, Opts: opts}
}

func (c *NVQCompressor) Fit(vectors [][]float32) error {
	if len(vectors) == 0 {
		return ErrEmptySource
	}
	c.dim = len(vectors[0])
	q, err := nvq.NewQuantizer(c.dim, c.M, c.Opts...)
	if err != nil {
		return err
	}
	if err := q.Fit(vectors); err != nil {
		return err
	}
	c.quantizer = q
	return nil
}

func (c *NVQCompressor) Encode(vec []float32) (any, error) {
	return c.quantizer.Encode(vec)
}

func (c *NVQCompressor) ScoreFunction(query []float32, kind similarity.Kind, codes []any) (search.ScoreFunc, error) {
	return func(ord int32) float32 {
		cv, _ := codes[ord].(*nvq.Vector)
		var score float32
		switch kind {
		case similarity.Euclidean:
			d, _ := c.quantizer.SquaredL2(query, cv)
			score = 1 / (1 + d)
		case similarity.Cosine:
			score, _ = c.quantizer.CosineSimilarity(query, cv)
		default:
			score, _ = c.quantizer.DotProduct(query, cv)
		}
		return score
	}, nil
}
