// internal/app/app.go
package app

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/dustin/go-humanize"

	"motifscan/internal/cli"
	"motifscan/internal/corpus"
	"motifscan/internal/logging"
	"motifscan/internal/matrix"
	"motifscan/internal/scan"
	"motifscan/internal/version"
)

// RunContext drives one scan: parse flags, load motifs and corpus, run
// the parallel scan, and map failures to exit codes (0 ok, 1 runtime
// failure, 2 usage error, 3 final flush failure).
func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	outw := bufio.NewWriter(stdout)
	defer func() { _ = outw.Flush() }()

	fs := cli.NewFlagSet("motifscan")
	fs.SetOutput(io.Discard)

	if len(argv) == 0 {
		fs.SetOutput(outw)
		fs.Usage()
		return flushCode(outw, stderr, 0)
	}

	opts, err := cli.ParseArgs(fs, argv)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			fs.SetOutput(outw)
			fs.Usage()
			return flushCode(outw, stderr, 0)
		}
		_, _ = fmt.Fprintln(stderr, err)
		return 2
	}

	if opts.Version {
		_, _ = fmt.Fprintf(outw, "motifscan version %s\n", version.Version)
		return flushCode(outw, stderr, 0)
	}

	log := logging.Init("motifscan", stderr)

	matrices, err := matrix.LoadMEME(opts.MotifFile)
	if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return 1
	}

	crp, err := corpus.Load(opts.SeqFile)
	if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return 1
	}
	log.Info("corpus loaded",
		"path", opts.SeqFile,
		"size", humanize.Bytes(uint64(crp.Len())),
		"matrices", len(matrices))

	out := io.Writer(outw)
	var closeOut func() error
	if opts.Output != "" && opts.Output != "-" {
		f, err := os.Create(opts.Output)
		if err != nil {
			_, _ = fmt.Fprintln(stderr, err)
			return 1
		}
		bw := bufio.NewWriter(f)
		out = bw
		closeOut = func() error {
			if err := bw.Flush(); err != nil {
				_ = f.Close()
				return err
			}
			return f.Close()
		}
	}

	sc := &scan.Scanner{Corpus: crp, Matrices: matrices, Threshold: opts.Threshold}
	runErr := scan.Run(parent, sc, out, scan.Options{
		Threads:  opts.Threads,
		Grain:    opts.Grain,
		NoHeader: !opts.Header,
	})
	if closeOut != nil {
		if err := closeOut(); err != nil && runErr == nil {
			runErr = err
		}
	}
	if runErr != nil {
		if isBrokenPipe(runErr) {
			return 0
		}
		_, _ = fmt.Fprintln(stderr, runErr)
		return 1
	}
	return flushCode(outw, stderr, 0)
}

// Run is RunContext with a background context.
func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}

// flushCode flushes the stdout buffer and maps flush failures to exit
// code 3; a broken pipe (e.g. piping into head) is not a failure.
func flushCode(outw *bufio.Writer, stderr io.Writer, ok int) int {
	if err := outw.Flush(); isBrokenPipe(err) {
		return 0
	} else if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return 3
	}
	return ok
}
