// internal/matrix/meme_test.go
package matrix

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const memeSample = `MEME version 4

ALPHABET= ACGT

strands: + -

Background letter frequencies
A 0.25 C 0.25 G 0.25 T 0.25

MOTIF MA0001.1 TESTA
letter-probability matrix: alength= 4 w= 4 nsites= 20 E= 0
0.97 0.01 0.01 0.01
0.01 0.97 0.01 0.01
0.01 0.01 0.97 0.01
0.01 0.01 0.01 0.97

MOTIF MA0002.1
letter-probability matrix: alength= 4 w= 2 nsites= 20 E= 0
0.50 0.50 0.00 0.00
0.00 0.00 0.50 0.50
`

func TestParseMEME(t *testing.T) {
	list, err := ParseMEME(strings.NewReader(memeSample))
	require.NoError(t, err)
	// Each motif yields a forward matrix plus its reverse-complement twin.
	require.Len(t, list, 4)

	fwd, rc := list[0], list[1]
	assert.Equal(t, "MA0001.1", fwd.Name)
	assert.False(t, fwd.ReverseComplement)
	assert.Equal(t, 4, fwd.Length())
	assert.Equal(t, "MA0001.1", rc.Name)
	assert.True(t, rc.ReverseComplement)

	assert.Equal(t, "MA0002.1", list[2].Name)
	assert.Equal(t, 2, list[2].Length())
}

func TestParseMEMEPvalueTable(t *testing.T) {
	list, err := ParseMEME(strings.NewReader(memeSample))
	require.NoError(t, err)

	for _, m := range list {
		require.Len(t, m.Pvalues, m.MaxScore()+1, "table must cover every reachable score")
		assert.InDelta(t, 1.0, m.Pvalues[0], 1e-9, "P(score >= 0) is 1")
		for s := 1; s < len(m.Pvalues); s++ {
			assert.LessOrEqual(t, m.Pvalues[s], m.Pvalues[s-1], "p-values must be nonincreasing")
		}
	}

	// For MA0001.1 the best base is unique at every position, so the
	// probability of the maximum score under uniform background is 0.25^4.
	fwd := list[0]
	assert.InDelta(t, math.Pow(0.25, 4), fwd.Pvalues[fwd.MaxScore()], 1e-9)
}

func TestParseMEMEScaling(t *testing.T) {
	list, err := ParseMEME(strings.NewReader(memeSample))
	require.NoError(t, err)

	fwd := list[0]
	// Per-position weights span [0, targetRange] after quantization.
	for _, w := range fwd.Weights {
		for b := 0; b < Bases; b++ {
			assert.GreaterOrEqual(t, w[b], 0)
			assert.LessOrEqual(t, w[b], targetRange)
		}
	}
	assert.Negative(t, fwd.MinBeforeScaling)
	assert.Positive(t, fwd.Scale)
}

func TestParseMEMEErrors(t *testing.T) {
	_, err := ParseMEME(strings.NewReader("MEME version 4\n"))
	assert.Error(t, err, "no motifs")

	bad := `MOTIF M1
letter-probability matrix: alength= 4 w= 3
0.25 0.25 0.25 0.25
0.25 0.25 0.25 0.25
`
	_, err = ParseMEME(strings.NewReader(bad))
	assert.Error(t, err, "row count mismatch")
}

func TestParseMEMENonUniformBackground(t *testing.T) {
	src := `Background letter frequencies
A 0.3 C 0.2 G 0.2 T 0.3

MOTIF M1
letter-probability matrix: alength= 4 w= 2
0.9 0.05 0.03 0.02
0.02 0.03 0.05 0.9
`
	list, err := ParseMEME(strings.NewReader(src))
	require.NoError(t, err)
	require.Len(t, list, 2)
	// The twin's table is recomputed for its own weights, so both stay
	// exact under any background.
	assert.Len(t, list[1].Pvalues, list[1].MaxScore()+1)
}
