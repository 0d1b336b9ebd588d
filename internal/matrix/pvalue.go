// internal/matrix/pvalue.go
package matrix

import "math"

// targetRange is the scaled-score span a motif is quantized into; the
// best possible window maps to this value and the worst to zero.
const targetRange = 1000

// pseudocount regularizes letter probabilities before the log-odds
// transform, matching the reference tool default.
const pseudocount = 0.1

// build turns letter probabilities into a quantized matrix with its
// p-value table computed under the background model bg.
func build(name string, probs [][Bases]float64, bg [Bases]float64) *Matrix {
	n := len(probs)
	logodds := make([][Bases]float64, n)
	min, max := math.Inf(1), math.Inf(-1)
	for i := 0; i < n; i++ {
		for b := 0; b < Bases; b++ {
			p := (probs[i][b] + pseudocount*bg[b]) / (1 + pseudocount)
			w := math.Log2(p / bg[b])
			logodds[i][b] = w
			if w < min {
				min = w
			}
			if w > max {
				max = w
			}
		}
	}
	scale := 1.0
	if max > min {
		scale = targetRange / (max - min)
	}
	weights := make([][Bases]int, n)
	for i := 0; i < n; i++ {
		for b := 0; b < Bases; b++ {
			weights[i][b] = int(math.Round((logodds[i][b] - min) * scale))
		}
	}
	return &Matrix{
		Name:             name,
		Weights:          weights,
		Scale:            scale,
		MinBeforeScaling: min,
		Pvalues:          pvalueTable(weights, bg),
	}
}

// pvalueTable computes P(score >= s) for every scaled score s a matrix
// can produce, by convolving per-position score distributions under the
// background model. The table covers [0, MaxScore] so every score the
// scanner computes is a valid index.
func pvalueTable(weights [][Bases]int, bg [Bases]float64) []float64 {
	maxScore := 0
	for _, w := range weights {
		best := w[0]
		for b := 1; b < Bases; b++ {
			if w[b] > best {
				best = w[b]
			}
		}
		maxScore += best
	}

	dist := make([]float64, maxScore+1)
	dist[0] = 1
	upper := 0
	for _, w := range weights {
		best := w[0]
		for b := 1; b < Bases; b++ {
			if w[b] > best {
				best = w[b]
			}
		}
		next := make([]float64, maxScore+1)
		for s := 0; s <= upper; s++ {
			p := dist[s]
			if p == 0 {
				continue
			}
			for b := 0; b < Bases; b++ {
				next[s+w[b]] += p * bg[b]
			}
		}
		dist = next
		upper += best
	}

	pv := make([]float64, maxScore+1)
	tail := 0.0
	for s := maxScore; s >= 0; s-- {
		tail += dist[s]
		pv[s] = tail
	}
	return pv
}
