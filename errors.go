package blokus

import (
	"fmt"

	"github.com/pkg/errors"
)

// ErrInvalidFEN and ErrInvalidAction are sentinel causes for the two
// parse-boundary failures the worker can hit reading a line-protocol
// request: both are wrapped with errors.Wrap so the offending input
// survives into the log message.
var (
	ErrInvalidFEN    = errors.New("blokus: invalid FEN")
	ErrInvalidAction = errors.New("blokus: invalid action")
)

func wrapFENError(input string, cause error) error {
	return errors.Wrapf(ErrInvalidFEN, "parsing %q: %v", input, cause)
}

func wrapActionError(input string, cause error) error {
	return errors.Wrapf(ErrInvalidAction, "parsing %q: %v", input, cause)
}

// fenFieldCountError reports a FEN with the wrong number of whitespace
// separated fields; FromFEN wraps it with wrapFENError and returns it like
// any other parse failure.
func fenFieldCountError(got, want int) error {
	return fmt.Errorf("blokus: fen has %d fields, want %d", got, want)
}
