// internal/matrix/meme.go
package matrix

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// LoadMEME reads motifs from a MEME minimal-format file and returns the
// scan-ready matrix list: for each motif, the forward matrix followed by
// its reverse-complement twin.
func LoadMEME(path string) ([]*Matrix, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = fh.Close() }()
	list, err := ParseMEME(fh)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return list, nil
}

// ParseMEME parses MEME minimal format: an optional background
// frequency block, then MOTIF sections each carrying a
// letter-probability matrix. Unrecognized lines (version, alphabet,
// strands, URLs) are skipped. The background defaults to uniform.
func ParseMEME(r io.Reader) ([]*Matrix, error) {
	sc := bufio.NewScanner(r)
	bg := [Bases]float64{0.25, 0.25, 0.25, 0.25}

	var (
		list  []*Matrix
		name  string
		probs [][Bases]float64
		want  int // rows promised by w=; 0 means until the section ends
		ln    int
	)

	flush := func() error {
		if name == "" {
			return nil
		}
		if len(probs) == 0 {
			return fmt.Errorf("motif %s has no probability matrix", name)
		}
		if want > 0 && len(probs) != want {
			return fmt.Errorf("motif %s: got %d rows, header promised %d", name, len(probs), want)
		}
		fwd := build(name, probs, bg)
		rc := NewReverseComplement(fwd)
		rc.Pvalues = pvalueTable(rc.Weights, bg)
		list = append(list, fwd, rc)
		name, probs, want = "", nil, 0
		return nil
	}

	for sc.Scan() {
		ln++
		line := strings.TrimSpace(sc.Text())
		switch {
		case line == "":
			continue
		case strings.HasPrefix(line, "Background letter frequencies"):
			if !sc.Scan() {
				return nil, fmt.Errorf("line %d: background block truncated", ln)
			}
			ln++
			parsed, err := parseBackground(sc.Text())
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", ln, err)
			}
			bg = parsed
		case strings.HasPrefix(line, "MOTIF"):
			if err := flush(); err != nil {
				return nil, err
			}
			f := strings.Fields(line)
			if len(f) < 2 {
				return nil, fmt.Errorf("line %d: MOTIF without a name", ln)
			}
			name = f[1]
		case strings.HasPrefix(line, "letter-probability matrix:"):
			if name == "" {
				return nil, fmt.Errorf("line %d: matrix outside a MOTIF section", ln)
			}
			want = parseWidth(line)
		default:
			if row, ok := parseProbRow(line); ok && name != "" {
				probs = append(probs, row)
			}
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	if err := flush(); err != nil {
		return nil, err
	}
	if len(list) == 0 {
		return nil, fmt.Errorf("no motifs found")
	}
	return list, nil
}

// parseBackground reads "A 0.3 C 0.2 G 0.2 T 0.3" pairs.
func parseBackground(line string) ([Bases]float64, error) {
	bg := [Bases]float64{0.25, 0.25, 0.25, 0.25}
	f := strings.Fields(line)
	if len(f)%2 != 0 {
		return bg, fmt.Errorf("bad background line %q", line)
	}
	for i := 0; i < len(f); i += 2 {
		idx := baseIndex[f[i][0]]
		if len(f[i]) != 1 || idx < 0 {
			continue // letters outside ACGT (protein alphabets) are not supported
		}
		v, err := strconv.ParseFloat(f[i+1], 64)
		if err != nil {
			return bg, fmt.Errorf("bad background frequency %q", f[i+1])
		}
		bg[idx] = v
	}
	return bg, nil
}

// parseWidth extracts the w= field from a letter-probability header,
// returning 0 when absent.
func parseWidth(line string) int {
	f := strings.Fields(line)
	for i, tok := range f {
		if tok == "w=" && i+1 < len(f) {
			if n, err := strconv.Atoi(f[i+1]); err == nil {
				return n
			}
		}
		if v, found := strings.CutPrefix(tok, "w="); found && v != "" {
			if n, err := strconv.Atoi(v); err == nil {
				return n
			}
		}
	}
	return 0
}

// parseProbRow reads one matrix row of four probabilities. ok=false
// means the line is not a probability row (e.g. "URL ...") and should
// be skipped.
func parseProbRow(line string) (row [Bases]float64, ok bool) {
	f := strings.Fields(line)
	if len(f) != Bases {
		return row, false
	}
	for i, tok := range f {
		v, err := strconv.ParseFloat(tok, 64)
		if err != nil {
			return row, false
		}
		row[i] = v
	}
	return row, true
}
