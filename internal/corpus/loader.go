// internal/corpus/loader.go
package corpus

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/klauspost/compress/gzip"
)

// Load reads an entire FASTA input into memory. Plain files are read
// with one bulk read sized to the file length; gzip input, detected by
// the magic number (1F 8B) or a .gz suffix, is decompressed fully.
// "-" reads stdin to EOF.
func Load(path string) (*Corpus, error) {
	if path == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, fmt.Errorf("read stdin: %w", err)
		}
		return New(data), nil
	}
	fh, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = fh.Close() }()

	var sig [2]byte
	n, _ := fh.Read(sig[:])
	if _, err := fh.Seek(0, io.SeekStart); err != nil {
		return nil, fmt.Errorf("seek %s: %w", path, err)
	}
	if (n == 2 && sig[0] == 0x1f && sig[1] == 0x8b) || strings.HasSuffix(path, ".gz") {
		gz, err := gzip.NewReader(fh)
		if err != nil {
			return nil, fmt.Errorf("gzip %s: %w", path, err)
		}
		defer func() { _ = gz.Close() }()
		data, err := io.ReadAll(gz)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", path, err)
		}
		return New(data), nil
	}

	st, err := fh.Stat()
	if err != nil {
		return nil, fmt.Errorf("stat %s: %w", path, err)
	}
	data := make([]byte, st.Size())
	if _, err := io.ReadFull(fh, data); err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return New(data), nil
}
