// SPDX-License-Identifier: MIT
package pq

import (
	"math"

	"github.com/katalvlaran/vamana/similarity"
	"github.com/katalvlaran/vamana/vector"
)

// ADCTable holds precomputed per-subspace partial scores for one query
// against a Codebook, enabling asymmetric distance computation (ADC): each
// candidate's score is the sum of M table lookups instead of M full
// subspace distance computations.
//
// Table entries are additive "raw" quantities (dot product for
// similarity.DotProduct, squared-L2 distance for similarity.Euclidean); the
// final "higher is better" transform is applied once, after summing, in
// Score. similarity.Cosine is approximated as a dot-product table and
// requires both the query and the trained vectors to have been
// unit-normalized before encoding.
type ADCTable struct {
	cb    *Codebook
	kind  similarity.Kind
	table [][]float32 // [m][k], raw additive quantity

	quantized bool
	delta     float32   // shared quantization step
	bases     []float32 // per-subspace base (minimum raw value)
	qtable    [][]uint16
}

// BuildADCTable precomputes the M×K table of raw per-subspace scores between
// query and every centroid. When quantize is true the table is additionally
// compressed to 16-bit fixed point.
func (cb *Codebook) BuildADCTable(query []float32, kind similarity.Kind, quantize bool) (*ADCTable, error) {
	if len(query) != cb.Dimension {
		return nil, ErrDimensionMismatch
	}
	if !kind.Valid() {
		return nil, ErrDimensionMismatch
	}

	residual := query
	if cb.GlobalCentroid != nil {
		residual = make([]float32, cb.Dimension)
		_ = vector.Sub(residual, query, cb.GlobalCentroid)
	}

	table := make([][]float32, cb.M)
	for m := 0; m < cb.M; m++ {
		sub := residual[cb.Offsets[m] : cb.Offsets[m]+cb.SubSizes[m]]
		row := make([]float32, cb.K)
		for k, c := range cb.Centroids[m] {
			switch kind {
			case similarity.Euclidean:
				row[k], _ = vector.SquaredL2(sub, c)
			default: // DotProduct, Cosine (approximated as dot product)
				row[k], _ = vector.DotProduct(sub, c)
			}
		}
		table[m] = row
	}

	adc := &ADCTable{cb: cb, kind: kind, table: table}
	if quantize {
		adc.quantizeTable()
	}
	return adc, nil
}

// quantizeTable compresses adc.table to 16-bit fixed point: a single shared
// step size (delta) across all subspaces, plus one per-subspace base (the
// subspace's minimum raw value), so that
//
//	table[m][k] ≈ bases[m] + float32(qtable[m][k])*delta
func (adc *ADCTable) quantizeTable() {
	globalMin := adc.table[0][0]
	globalMax := adc.table[0][0]
	for _, row := range adc.table {
		for _, v := range row {
			if v < globalMin {
				globalMin = v
			}
			if v > globalMax {
				globalMax = v
			}
		}
	}

	delta := (globalMax - globalMin) / float32(math.MaxUint16)
	if delta == 0 {
		delta = 1
	}

	bases := make([]float32, adc.cb.M)
	qtable := make([][]uint16, adc.cb.M)
	for m, row := range adc.table {
		min := row[0]
		for _, v := range row {
			if v < min {
				min = v
			}
		}
		bases[m] = min
		q := make([]uint16, len(row))
		for k, v := range row {
			q[k] = uint16((v - min) / delta)
		}
		qtable[m] = q
	}

	adc.quantized = true
	adc.delta = delta
	adc.bases = bases
	adc.qtable = qtable
}

// Score returns the "higher is better" similarity score for code under this
// table: the sum of M partial lookups, transformed once per adc.kind.
func (adc *ADCTable) Score(code Code) (float32, error) {
	if len(code) != adc.cb.M {
		return 0, ErrBadCode
	}

	var raw float32
	if adc.quantized {
		var sumCodes uint32
		var sumBases float32
		for m, k := range code {
			if int(k) >= adc.cb.K {
				return 0, ErrBadCode
			}
			sumCodes += uint32(adc.qtable[m][k])
			sumBases += adc.bases[m]
		}
		raw = sumBases + float32(sumCodes)*adc.delta
	} else {
		for m, k := range code {
			if int(k) >= adc.cb.K {
				return 0, ErrBadCode
			}
			raw += adc.table[m][k]
		}
	}

	if adc.kind == similarity.Euclidean {
		return 1 / (1 + raw), nil
	}
	return raw, nil
}
