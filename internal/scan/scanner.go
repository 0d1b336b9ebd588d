// internal/scan/scanner.go
package scan

import (
	"io"

	"motifscan/internal/corpus"
	"motifscan/internal/matrix"
	"motifscan/internal/output"
)

// DefaultThreshold is the fixed p-value cutoff below which a window is
// reported.
const DefaultThreshold = 0.001

// Scanner scores corpus records against a set of motif matrices. It is
// stateless apart from read-only shared inputs, so one Scanner serves
// all workers.
type Scanner struct {
	Corpus    *corpus.Corpus
	Matrices  []*matrix.Matrix
	Threshold float64 // 0 means DefaultThreshold
}

func (s *Scanner) threshold() float64 {
	if s.Threshold > 0 {
		return s.Threshold
	}
	return DefaultThreshold
}

// ScanRange scores every record whose header marker lies inside r and
// writes one formatted line per significant match to w. A record that
// starts inside r is scored to completion even when its sequence runs
// past r.End.
func (s *Scanner) ScanRange(r corpus.Range, w io.Writer) error {
	pos := r.Begin
	for {
		rec, next, ok := s.Corpus.NextRecord(pos, r.End)
		if !ok {
			return nil
		}
		if err := s.scanRecord(rec, w); err != nil {
			return err
		}
		pos = next
	}
}

// scanRecord slides each matrix across the record's sequence line.
// Window order per matrix is left to right; matrices run in their
// configured order, forward then reverse-complement twin.
func (s *Scanner) scanRecord(rec corpus.Record, w io.Writer) error {
	name := string(rec.Name(s.Corpus))
	thr := s.threshold()
	for _, m := range s.Matrices {
		n := m.Length()
		if n > rec.SeqLen() {
			continue
		}
		for begin, end := rec.SeqBegin, rec.SeqBegin+n; end <= rec.SeqEnd; begin, end = begin+1, end+1 {
			window := s.Corpus.Window(begin, end)
			scaled := m.Score(window)
			pv := m.Pvalues[scaled]
			if pv >= thr {
				continue
			}
			start := begin - rec.SeqBegin + 1
			mt := output.Match{
				Pattern:  m.Name,
				Sequence: name,
				Start:    start,
				Stop:     start + n - 1,
				Strand:   '+',
				Score:    m.Unscale(scaled),
				Pvalue:   pv,
				Text:     window,
			}
			if m.ReverseComplement {
				mt.Strand = '-'
				mt.Text = matrix.RevComp(window)
			}
			if err := output.Write(w, mt); err != nil {
				return err
			}
		}
	}
	return nil
}
