// internal/output/fimo_test.go
package output

import (
	"bytes"
	"strings"
	"testing"
)

func TestWriteColumns(t *testing.T) {
	var buf bytes.Buffer
	err := Write(&buf, Match{
		Pattern:  "MA0001.1",
		Sequence: "chr1",
		Start:    3,
		Stop:     10,
		Strand:   '-',
		Score:    14.25,
		Pvalue:   0.0005,
		Text:     []byte("ACGGTCAA"),
	})
	if err != nil {
		t.Fatal(err)
	}
	line := strings.TrimSuffix(buf.String(), "\n")
	cols := strings.Split(line, "\t")
	if len(cols) != 9 {
		t.Fatalf("got %d columns, want 9: %q", len(cols), line)
	}
	want := []string{"MA0001.1", "chr1", "3", "10", "-", "14.25", "0.0005", "", "ACGGTCAA"}
	for i, w := range want {
		if cols[i] != w {
			t.Errorf("col %d = %q, want %q", i, cols[i], w)
		}
	}
}

func TestSignificantDigits(t *testing.T) {
	var buf bytes.Buffer
	if err := Write(&buf, Match{Strand: '+', Score: 12.3456789, Pvalue: 0.00012345, Text: []byte("A")}); err != nil {
		t.Fatal(err)
	}
	cols := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\t")
	if cols[5] != "12.3457" {
		t.Errorf("score = %q, want 12.3457 (6 significant digits)", cols[5])
	}
	if cols[6] != "0.000123" {
		t.Errorf("p-value = %q, want 0.000123 (3 significant digits)", cols[6])
	}
}

func TestHeaderShape(t *testing.T) {
	if !strings.HasPrefix(Header, "#pattern name\t") {
		t.Error("header must start with #pattern name")
	}
	if got := len(strings.Split(Header, "\t")); got != 9 {
		t.Errorf("header has %d columns, want 9", got)
	}
}
