// SPDX-License-Identifier: MIT
package nvq

import "math"

// Encode compresses vec into a Vector, fitting a fresh logistic warp per
// subvector.
func (q *Quantizer) Encode(vec []float32) (*Vector, error) {
	if len(vec) != q.Dimension {
		return nil, ErrDimensionMismatch
	}

	residual := vec
	if q.GlobalMean != nil {
		residual = make([]float32, q.Dimension)
		for i := range vec {
			residual[i] = vec[i] - q.GlobalMean[i]
		}
	}

	levels := (1 << uint(q.BitsPerDim)) - 1
	subvectors := make([]Subvector, q.M)
	for m := 0; m < q.M; m++ {
		sub := residual[q.Offsets[m] : q.Offsets[m]+q.SubSizes[m]]
		subvectors[m] = encodeSubvector(sub, q.BitsPerDim, levels, q.learn, q.defaultRate)
	}
	return &Vector{Subvectors: subvectors}, nil
}

func encodeSubvector(vals []float32, bits, levels int, learn bool, defaultRate float32) Subvector {
	minVal, maxVal := vals[0], vals[0]
	for _, v := range vals[1:] {
		if v < minVal {
			minVal = v
		}
		if v > maxVal {
			maxVal = v
		}
	}

	rate := defaultRate
	if learn && maxVal > minVal {
		rate = fitGrowthRate(vals, minVal, maxVal, levels)
	}

	span := float64(maxVal - minVal)
	ilevels := make([]int, len(vals))
	for i, x := range vals {
		if span == 0 {
			ilevels[i] = 0
			continue
		}
		u := (float64(x) - float64(minVal)) / span
		warped := scaledLogistic(u, float64(rate), 0)
		lv := int(math.Round(warped * float64(levels)))
		if lv < 0 {
			lv = 0
		}
		if lv > levels {
			lv = levels
		}
		ilevels[i] = lv
	}

	return Subvector{
		BitsPerDim:  bits,
		MinValue:    minVal,
		MaxValue:    maxVal,
		GrowthRate:  rate,
		Midpoint:    0,
		OriginalDim: len(vals),
		Packed:      packLevels(ilevels, bits),
	}
}

// Decode reconstructs an approximate vector from a compressed Vector.
func (q *Quantizer) Decode(cv *Vector) ([]float32, error) {
	if len(cv.Subvectors) != q.M {
		return nil, ErrCorruptVector
	}
	out := make([]float32, q.Dimension)
	for m, sv := range cv.Subvectors {
		dec := decodeSubvector(sv)
		copy(out[q.Offsets[m]:q.Offsets[m]+q.SubSizes[m]], dec)
	}
	if q.GlobalMean != nil {
		for i := range out {
			out[i] += q.GlobalMean[i]
		}
	}
	return out, nil
}

func decodeSubvector(sv Subvector) []float32 {
	levels := (1 << uint(sv.BitsPerDim)) - 1
	ilevels := unpackLevels(sv.Packed, sv.OriginalDim, sv.BitsPerDim)
	out := make([]float32, sv.OriginalDim)
	span := float64(sv.MaxValue - sv.MinValue)
	for i, lv := range ilevels {
		if span == 0 {
			out[i] = sv.MinValue
			continue
		}
		p := float64(lv) / float64(levels)
		uHat := scaledLogit(p, float64(sv.GrowthRate), float64(sv.Midpoint))
		out[i] = float32(uHat*span + float64(sv.MinValue))
	}
	return out
}

// decodeElement reconstructs a single coordinate i (0-indexed within the
// subvector) without materialising the full decoded slice, so kernels can
// apply the logistic warp on the fly.
func decodeElement(sv Subvector, i int) float32 {
	levels := (1 << uint(sv.BitsPerDim)) - 1
	var lv int
	switch sv.BitsPerDim {
	case 8:
		lv = int(sv.Packed[i])
	case 4:
		b := sv.Packed[i/2]
		if i%2 == 0 {
			lv = int(b & 0x0F)
		} else {
			lv = int(b >> 4)
		}
	}
	span := float64(sv.MaxValue - sv.MinValue)
	if span == 0 {
		return sv.MinValue
	}
	p := float64(lv) / float64(levels)
	uHat := scaledLogit(p, float64(sv.GrowthRate), float64(sv.Midpoint))
	return float32(uHat*span + float64(sv.MinValue))
}
