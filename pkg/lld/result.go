package lld

import (
	"fmt"
	"strings"
)

// Result is the outcome of one Link call. Messages holds everything the
// driver wrote, stderr first, and is owned by Go.
type Result struct {
	Flavor   Flavor
	Success  bool
	Messages string
}

// Err collapses the result: nil on success, a *LinkError otherwise.
func (r Result) Err() error {
	if r.Success {
		return nil
	}
	return &LinkError{Flavor: r.Flavor, Messages: r.Messages}
}

func (r Result) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "result from invocation: %t\n", r.Success)
	fmt.Fprintf(&b, "attached message(s): %s", r.Messages)
	return b.String()
}

// LinkError carries the driver diagnostics of a failed link verbatim.
type LinkError struct {
	Flavor   Flavor
	Messages string
}

func (e *LinkError) Error() string {
	msg := strings.TrimSpace(e.Messages)
	if msg == "" {
		msg = "link failed"
	}
	return fmt.Sprintf("lld (%s): %s", e.Flavor, msg)
}

func failure(f Flavor, format string, args ...any) Result {
	return Result{Flavor: f, Messages: fmt.Sprintf(format, args...)}
}
