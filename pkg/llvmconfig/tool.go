package llvmconfig

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"unicode/utf8"

	"github.com/GriffinCanCode/linka/pkg/logger"
)

// Runner executes a command and returns its stdout.
type Runner interface {
	Run(ctx context.Context, name string, args ...string) ([]byte, error)
}

type execRunner struct{}

func (execRunner) Run(ctx context.Context, name string, args ...string) ([]byte, error) {
	out, err := exec.CommandContext(ctx, name, args...).Output()
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) && len(exitErr.Stderr) > 0 {
		return out, fmt.Errorf("%w: %s", err, strings.TrimSpace(string(exitErr.Stderr)))
	}
	return out, err
}

// Tool is a located llvm-config binary.
type Tool struct {
	Path   string
	Runner Runner
}

// NewTool wraps path with the real process runner.
func NewTool(path string) *Tool {
	return &Tool{Path: path, Runner: execRunner{}}
}

// Query runs "<path> <flag> --link-static" and returns stdout. Empty
// output is an error.
func (t *Tool) Query(ctx context.Context, flag string) (string, error) {
	out, err := t.Runner.Run(ctx, t.Path, flag, "--link-static")
	if err != nil {
		return "", &Error{Op: "query", Arg: flag, Err: err}
	}
	logger.LogQuery(t.Path, flag, len(out))
	if len(out) == 0 {
		return "", &Error{Op: "query", Arg: flag, Err: ErrEmptyOutput}
	}
	if !utf8.Valid(out) {
		return "", &Error{Op: "query", Arg: flag, Err: errors.New("output is not valid UTF-8")}
	}
	return string(out), nil
}

// Version returns the LLVM version string, e.g. "18.1.8".
func (t *Tool) Version(ctx context.Context) (string, error) {
	out, err := t.Query(ctx, "--version")
	return strings.TrimSpace(out), err
}

// LibDir returns the directory holding the LLVM libraries.
func (t *Tool) LibDir(ctx context.Context) (string, error) {
	out, err := t.Query(ctx, "--libdir")
	return strings.TrimSpace(out), err
}

// BuildMode returns the CMake build type LLVM was built with.
func (t *Tool) BuildMode(ctx context.Context) (string, error) {
	out, err := t.Query(ctx, "--build-mode")
	return strings.TrimSpace(out), err
}

// IsDebug reports whether LLVM was built in a Debug mode.
func (t *Tool) IsDebug(ctx context.Context) (bool, error) {
	mode, err := t.BuildMode(ctx)
	if err != nil {
		return false, err
	}
	return strings.Contains(mode, "Debug"), nil
}
