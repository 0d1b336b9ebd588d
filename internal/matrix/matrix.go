// internal/matrix/matrix.go
package matrix

// Bases is the alphabet size; weights are indexed A=0 C=1 G=2 T=3.
const Bases = 4

// Matrix is a position weight matrix prepared for integer scoring.
// Weights are shifted so the minimum entry is zero and quantized so any
// window score is a direct index into Pvalues. A scaled score outside
// Pvalues indicates a matrix construction bug, not bad input, and
// panics via the bounds check.
type Matrix struct {
	Name              string
	Weights           [][Bases]int
	Scale             float64
	MinBeforeScaling  float64
	Pvalues           []float64
	ReverseComplement bool
}

// Length returns the motif width in bases.
func (m *Matrix) Length() int { return len(m.Weights) }

// MaxScore returns the largest scaled score the matrix can produce.
func (m *Matrix) MaxScore() int {
	total := 0
	for _, w := range m.Weights {
		best := w[0]
		for b := 1; b < Bases; b++ {
			if w[b] > best {
				best = w[b]
			}
		}
		total += best
	}
	return total
}

var baseIndex [256]int8

func init() {
	for i := range baseIndex {
		baseIndex[i] = -1
	}
	baseIndex['A'], baseIndex['a'] = 0, 0
	baseIndex['C'], baseIndex['c'] = 1, 1
	baseIndex['G'], baseIndex['g'] = 2, 2
	baseIndex['T'], baseIndex['t'] = 3, 3
}

// Score sums per-position weights over window, which must be exactly
// Length() bytes. Lookup is case-insensitive; symbols outside ACGT take
// the position minimum, which is zero after shifting.
func (m *Matrix) Score(window []byte) int {
	s := 0
	for i := 0; i < len(window); i++ {
		if idx := baseIndex[window[i]]; idx >= 0 {
			s += m.Weights[i][idx]
		}
	}
	return s
}

// Unscale converts a scaled integer score back to the log-odds score
// reported to the user.
func (m *Matrix) Unscale(scaled int) float64 {
	return float64(scaled)/m.Scale + float64(m.Length())*m.MinBeforeScaling
}

var complement [256]byte

func init() {
	for i := range complement {
		complement[i] = 'N'
	}
	pairs := []struct{ a, b byte }{
		{'A', 'T'}, {'C', 'G'},
		{'R', 'Y'}, {'K', 'M'}, {'B', 'V'}, {'D', 'H'},
	}
	for _, p := range pairs {
		complement[p.a], complement[p.b] = p.b, p.a
		la, lb := p.a+'a'-'A', p.b+'a'-'A'
		complement[la], complement[lb] = lb, la
	}
	complement['S'], complement['W'] = 'S', 'W'
	complement['s'], complement['w'] = 's', 'w'
	complement['N'], complement['n'] = 'N', 'n'
}

// RevComp returns the reverse complement of seq as a new slice,
// preserving case so reported match text mirrors the corpus exactly.
// Bases with no defined complement become 'N'.
func RevComp(seq []byte) []byte {
	n := len(seq)
	if n == 0 {
		return nil
	}
	out := make([]byte, n)
	for i := 0; i < n; i++ {
		out[i] = complement[seq[n-1-i]]
	}
	return out
}

// NewReverseComplement returns the minus-strand twin of m: weights
// reversed position-wise with A/T and C/G columns swapped, so scoring
// the forward text at a window equals scoring m against that window's
// reverse complement. Scale and offset carry over; the p-value table is
// shared, which is exact whenever the background is complement
// symmetric (LoadMEME recomputes it otherwise).
func NewReverseComplement(m *Matrix) *Matrix {
	n := m.Length()
	w := make([][Bases]int, n)
	for i := 0; i < n; i++ {
		src := m.Weights[n-1-i]
		w[i] = [Bases]int{src[3], src[2], src[1], src[0]}
	}
	return &Matrix{
		Name:              m.Name,
		Weights:           w,
		Scale:             m.Scale,
		MinBeforeScaling:  m.MinBeforeScaling,
		Pvalues:           m.Pvalues,
		ReverseComplement: true,
	}
}
