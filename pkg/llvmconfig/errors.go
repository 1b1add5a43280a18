package llvmconfig

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound       = errors.New("llvm-config not found")
	ErrEmptyOutput    = errors.New("llvm-config returned empty output")
	ErrBadLibraryName = errors.New("unrecognized library name")
)

// Error describes a failed discovery step. Every Error is fatal for the
// generator.
type Error struct {
	Op  string // "locate", "query", "libnames", "system-libs"
	Arg string // flag or offending token
	Err error
}

func (e *Error) Error() string {
	if e.Arg == "" {
		return fmt.Sprintf("llvmconfig: %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("llvmconfig: %s %q: %v", e.Op, e.Arg, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }
