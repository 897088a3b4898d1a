// SPDX-License-Identifier: MIT
package nvq

import "math"

// scaledLogistic maps u in [0,1] through a logistic warp parameterised by
// growth rate r and midpoint, renormalised so that u=0 maps to 0 and u=1
// maps to 1 for any r > 0. This keeps the warp a genuine bijection on
// [0,1], which scaledLogit inverts exactly (up to quantization rounding).
func scaledLogistic(u float64, r, midpoint float64) float64 {
	lo := sigmoid(r * (0 - midpoint))
	hi := sigmoid(r * (1 - midpoint))
	if hi == lo {
		return u
	}
	return (sigmoid(r*(u-midpoint)) - lo) / (hi - lo)
}

// scaledLogit inverts scaledLogistic.
func scaledLogit(p float64, r, midpoint float64) float64 {
	lo := sigmoid(r * (0 - midpoint))
	hi := sigmoid(r * (1 - midpoint))
	if hi == lo {
		return p
	}
	raw := p*(hi-lo) + lo
	raw = clamp(raw, 1e-9, 1-1e-9)
	return midpoint + math.Log(raw/(1-raw))/r
}

func sigmoid(z float64) float64 {
	return 1 / (1 + math.Exp(-z))
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// nvqLoss returns the mean squared round-trip reconstruction error over
// vals under warp rate r with midpoint fixed at 0, quantizing to levels
// levels = 2^bits - 1.
func nvqLoss(vals []float32, minVal, maxVal float32, r float64, levels int) float64 {
	span := float64(maxVal - minVal)
	if span == 0 {
		return 0
	}
	var sumSq float64
	for _, x := range vals {
		u := (float64(x) - float64(minVal)) / span
		warped := scaledLogistic(u, r, 0)
		level := math.Round(warped * float64(levels))
		level = clamp(level, 0, float64(levels))
		p := level / float64(levels)
		uHat := scaledLogit(p, r, 0)
		xHat := uHat*span + float64(minVal)
		d := float64(x) - xHat
		sumSq += d * d
	}
	return sumSq / float64(len(vals))
}

// fitGrowthRate searches for the growth rate r maximising
// uniformLoss(v) / nvqLoss(v, r, midpoint=0) via a coarse scan from 1e-6
// to 20 (step 1), then a fine scan ±1 around the coarse best (step 0.1).
// uniformLoss is nvqLoss at the near-linear r=1e-6 baseline, since the
// logistic warp degenerates to (approximately) linear as r→0.
func fitGrowthRate(vals []float32, minVal, maxVal float32, levels int) float32 {
	const uniformRate = 1e-6
	uniformLoss := nvqLoss(vals, minVal, maxVal, uniformRate, levels)
	if uniformLoss == 0 {
		return uniformRate
	}

	bestRate := uniformRate
	bestRatio := 1.0
	for r := 1e-6; r <= 20; r += 1 {
		loss := nvqLoss(vals, minVal, maxVal, r, levels)
		if loss == 0 {
			continue
		}
		ratio := uniformLoss / loss
		if ratio > bestRatio {
			bestRatio, bestRate = ratio, r
		}
	}

	coarse := bestRate
	for r := coarse - 1; r <= coarse+1; r += 0.1 {
		if r <= 0 {
			continue
		}
		loss := nvqLoss(vals, minVal, maxVal, r, levels)
		if loss == 0 {
			continue
		}
		ratio := uniformLoss / loss
		if ratio > bestRatio {
			bestRatio, bestRate = ratio, r
		}
	}

	return float32(bestRate)
}
