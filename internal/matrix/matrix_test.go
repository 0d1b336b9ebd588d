// internal/matrix/matrix_test.go
package matrix

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var baseIdx = map[byte]int{'A': 0, 'C': 1, 'G': 2, 'T': 3}

// exactMatcher builds a matrix that scores 1 per position for the given
// word and 0 otherwise, with a hand-set p-value table.
func exactMatcher(name, word string, pv float64) *Matrix {
	w := make([][Bases]int, len(word))
	for i := 0; i < len(word); i++ {
		w[i][baseIdx[word[i]]] = 1
	}
	pvalues := make([]float64, len(word)+1)
	for i := range pvalues {
		pvalues[i] = 1
	}
	pvalues[len(word)] = pv
	return &Matrix{Name: name, Weights: w, Scale: 1, Pvalues: pvalues}
}

func TestScoreCaseInsensitive(t *testing.T) {
	m := exactMatcher("m", "ACGT", 0.0001)
	assert.Equal(t, 4, m.Score([]byte("ACGT")))
	assert.Equal(t, 4, m.Score([]byte("acgt")))
	assert.Equal(t, 3, m.Score([]byte("ACGA")))
}

func TestScoreUnknownBaseTakesMinimum(t *testing.T) {
	m := exactMatcher("m", "ACGT", 0.0001)
	// N and other symbols contribute the position minimum (zero).
	assert.Equal(t, 3, m.Score([]byte("NCGT")))
	assert.Equal(t, 0, m.Score([]byte("NNNN")))
}

func TestMaxScore(t *testing.T) {
	m := exactMatcher("m", "ACGT", 0.0001)
	assert.Equal(t, 4, m.MaxScore())
	assert.Len(t, m.Pvalues, m.MaxScore()+1)
}

func TestUnscale(t *testing.T) {
	m := exactMatcher("m", "ACGT", 0.0001)
	m.Scale = 200
	m.MinBeforeScaling = -2.5
	assert.InDelta(t, 800.0/200+4*-2.5, m.Unscale(800), 1e-12)
}

func TestRevCompPreservesCase(t *testing.T) {
	assert.Equal(t, []byte("aCgT"), RevComp([]byte("AcGt")))
	assert.Equal(t, []byte("NACGT"), RevComp([]byte("ACGTN")))
	assert.Nil(t, RevComp(nil))
}

func TestRevCompUnknownBecomesN(t *testing.T) {
	assert.Equal(t, []byte("TNA"), RevComp([]byte("T-A")))
}

func TestNewReverseComplementScoresMinusStrand(t *testing.T) {
	m := exactMatcher("m", "ACGG", 0.0001)
	rc := NewReverseComplement(m)

	require.True(t, rc.ReverseComplement)
	require.Equal(t, m.Length(), rc.Length())
	assert.Equal(t, m.Name, rc.Name)

	// rc scores the forward text of a minus-strand site: the site whose
	// reverse complement is ACGG reads CCGT on the forward strand.
	assert.Equal(t, 4, rc.Score([]byte("CCGT")))
	assert.Equal(t, m.MaxScore(), rc.MaxScore())
}

func TestReverseComplementOfPalindromeMatchesItself(t *testing.T) {
	m := exactMatcher("m", "ACGT", 0.0001)
	rc := NewReverseComplement(m)
	assert.Equal(t, 4, rc.Score([]byte("ACGT")))
}
