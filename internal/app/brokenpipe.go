package app

import (
	"errors"
	"io"
	"syscall"
)

// isBrokenPipe reports whether an error is a broken or closed pipe.
// Downstream consumers like `head` close stdout early; that is a clean
// exit, not a failure.
func isBrokenPipe(err error) bool {
	return err != nil && (errors.Is(err, syscall.EPIPE) || errors.Is(err, io.ErrClosedPipe))
}
