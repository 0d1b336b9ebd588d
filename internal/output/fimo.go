// internal/output/fimo.go
package output

import (
	"fmt"
	"io"
)

// Header is the canonical FIMO-compatible column header, written once
// before any match lines. Keep this as the single source of truth.
const Header = "#pattern name\tsequence name\tstart\tstop\tstrand\tscore\tp-value\tq-value\tmatched sequence"

// Match is one significant motif occurrence, already strand oriented.
// It exists only long enough to be formatted.
type Match struct {
	Pattern  string
	Sequence string
	Start    int // 1-based
	Stop     int // 1-based, inclusive
	Strand   byte
	Score    float64
	Pvalue   float64
	Text     []byte
}

// Write formats one match line onto w. The score carries six
// significant digits and the p-value three; the q-value column is
// reserved and left empty.
func Write(w io.Writer, m Match) error {
	_, err := fmt.Fprintf(w, "%s\t%s\t%d\t%d\t%c\t%.6g\t%.3g\t\t%s\n",
		m.Pattern, m.Sequence, m.Start, m.Stop, m.Strand, m.Score, m.Pvalue, m.Text)
	return err
}
