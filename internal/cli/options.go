// internal/cli/options.go
package cli

import (
	"errors"
	"flag"
	"fmt"

	"motifscan/internal/corpus"
	"motifscan/internal/scan"
	"motifscan/internal/version"
)

// Options holds all CLI flags and arguments.
type Options struct {
	MotifFile string
	SeqFile   string
	Output    string

	Threshold float64

	Threads int
	Grain   int

	Header  bool // true unless --no-header
	Version bool
}

// NewFlagSet returns a configured FlagSet with custom usage/help.
func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(),
			`%s: motif scanning over FASTA

Scans sequences against position-weight matrices (MEME minimal format)
on both strands and reports significant matches as FIMO-style TSV.

Version: %s

Usage of %s:
`, name, version.Version, name)
		fs.PrintDefaults()
	}
	return fs
}

// ParseArgs registers and parses all flags, returning an Options struct.
func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	var opt Options
	var help, noHeader bool

	fs.StringVar(&opt.MotifFile, "motifs", "", "MEME-format motif file [*]")
	fs.StringVar(&opt.SeqFile, "sequences", "", "FASTA file, .gz ok, '-' for stdin [*]")
	fs.StringVar(&opt.Output, "output", "-", "output file ('-' = stdout) [-]")

	fs.Float64Var(&opt.Threshold, "threshold", scan.DefaultThreshold, "p-value cutoff for reporting a match [0.001]")

	fs.IntVar(&opt.Threads, "threads", 0, "number of worker threads (0 = all CPUs) [0]")
	fs.IntVar(&opt.Grain, "grain", corpus.DefaultGrain, "bytes of FASTA per work unit [8400]")

	fs.BoolVar(&noHeader, "no-header", false, "suppress the header line [false]")
	fs.BoolVar(&opt.Version, "v", false, "print version and exit (shorthand) [false]")
	fs.BoolVar(&opt.Version, "version", false, "print version and exit [false]")
	fs.BoolVar(&help, "h", false, "show this help message (shorthand) [false]")

	if err := fs.Parse(argv); err != nil {
		return opt, err
	}
	if help {
		fs.Usage()
		return opt, flag.ErrHelp
	}
	if opt.Version {
		return opt, nil
	}
	opt.Header = !noHeader

	if opt.MotifFile == "" {
		return opt, errors.New("--motifs is required")
	}
	if opt.SeqFile == "" {
		return opt, errors.New("--sequences is required")
	}
	if opt.Threshold <= 0 || opt.Threshold > 1 {
		return opt, fmt.Errorf("--threshold %g out of range (0, 1]", opt.Threshold)
	}
	if opt.Threads < 0 {
		return opt, errors.New("--threads must be >= 0")
	}
	if opt.Grain < 1 {
		return opt, errors.New("--grain must be >= 1")
	}
	return opt, nil
}
