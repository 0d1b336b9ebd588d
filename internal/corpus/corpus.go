// internal/corpus/corpus.go
package corpus

import "bytes"

// Corpus holds one whole FASTA input as a single immutable byte buffer.
// Workers share it without synchronization: nothing writes to it after
// Load returns, and every offset handed out stays valid for the life of
// the scan. Callers never index the buffer directly; record discovery
// and window access go through the methods below.
type Corpus struct {
	data []byte
}

// New wraps data as a corpus. The caller must not mutate data afterwards.
func New(data []byte) *Corpus { return &Corpus{data: data} }

// Len returns the corpus size in bytes.
func (c *Corpus) Len() int { return len(c.data) }

// Window returns the [begin, end) view of the buffer. Offsets come from
// NextRecord, so an out-of-range pair is a bug and panics via the
// runtime bounds check.
func (c *Corpus) Window(begin, end int) []byte { return c.data[begin:end] }

func (c *Corpus) indexByte(b byte, from int) int {
	if from >= len(c.data) {
		return -1
	}
	i := bytes.IndexByte(c.data[from:], b)
	if i < 0 {
		return -1
	}
	return from + i
}

// Record is a transient view of one FASTA record inside the corpus.
// All offsets are corpus-relative; SeqEnd is the offset of the newline
// terminating the sequence line.
type Record struct {
	NameBegin int
	NameEnd   int
	SeqBegin  int
	SeqEnd    int
}

// Name returns the header text between '>' and the end of the header line.
func (r Record) Name(c *Corpus) []byte { return c.Window(r.NameBegin, r.NameEnd) }

// SeqLen returns the sequence line length in bases.
func (r Record) SeqLen() int { return r.SeqEnd - r.SeqBegin }

// NextRecord locates the first complete record whose '>' marker sits at
// or after p and strictly before limit. ok=false means the caller's
// range has no further records. next is the scan position immediately
// after the record's sequence newline, so repeated calls visit each
// record exactly once: a record belongs to whichever range contains its
// marker, even when the range boundary falls mid-record.
//
// The corpus is assumed newline terminated. A trailing record whose
// header or sequence line never reaches a newline is skipped silently
// rather than reported; truncated files are tolerated, not repaired.
// A '>' occurring inside sequence data is taken as a record marker when
// a range happens to start inside that line. Both behaviors are
// intentional and covered by tests.
func (c *Corpus) NextRecord(p, limit int) (rec Record, next int, ok bool) {
	marker := c.indexByte('>', p)
	if marker < 0 || marker >= limit {
		return Record{}, 0, false
	}
	nameBegin := marker + 1
	nameEnd := c.indexByte('\n', nameBegin+1)
	if nameEnd < 0 {
		return Record{}, 0, false
	}
	seqBegin := nameEnd + 1
	seqEnd := c.indexByte('\n', seqBegin+1)
	if seqEnd < 0 {
		return Record{}, 0, false
	}
	rec = Record{NameBegin: nameBegin, NameEnd: nameEnd, SeqBegin: seqBegin, SeqEnd: seqEnd}
	return rec, seqEnd + 1, true
}
