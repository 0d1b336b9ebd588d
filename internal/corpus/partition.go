// internal/corpus/partition.go
package corpus

// DefaultGrain is the partition width in bytes, sized to roughly one
// hundred FASTA records of a typical short-read file.
const DefaultGrain = 8400

// Range is a half-open [Begin, End) span of corpus bytes handed to one
// worker as a unit of work. Ranges are not record aligned; record
// ownership across a boundary is resolved by NextRecord's
// marker-in-range rule.
type Range struct {
	Begin, End int
}

// Partition splits [0, n) into ordered, contiguous, non-overlapping
// ranges of width grain, the final one truncated to n. grain < 1 falls
// back to DefaultGrain. Purely a function of its inputs.
func Partition(n, grain int) []Range {
	if grain < 1 {
		grain = DefaultGrain
	}
	var rs []Range
	for b := 0; b < n; b += grain {
		e := b + grain
		if e > n {
			e = n
		}
		rs = append(rs, Range{Begin: b, End: e})
	}
	return rs
}
