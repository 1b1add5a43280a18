//go:build lld && !lldfake

package lld

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestNativeAvailable(t *testing.T) {
	if !Available() {
		t.Fatal("Available() = false with the lld tag")
	}
}

func TestVersionQuery(t *testing.T) {
	for _, f := range []Flavor{Elf, Wasm, MachO, Coff} {
		t.Run(f.String(), func(t *testing.T) {
			res := Link(f, []string{"--version"})
			if res.Messages == "" {
				t.Fatalf("no messages from %s --version", f)
			}
			if res.Success {
				if err := res.Err(); err != nil {
					t.Errorf("successful result returned %v", err)
				}
			} else if res.Err().Error() == "" {
				t.Error("failed result with empty error")
			}
		})
	}
}

func TestMissingInputFails(t *testing.T) {
	dir := t.TempDir()
	missing := filepath.Join(dir, "missing.o")
	out := filepath.Join(dir, "a.out")

	res := Link(Elf, []string{"-o", out, missing})
	if res.Success {
		t.Fatal("link of a missing object succeeded")
	}
	if !strings.Contains(res.Messages, "missing.o") {
		t.Errorf("diagnostic should name the input: %q", res.Messages)
	}
	if _, err := os.Stat(out); err == nil {
		t.Error("output written despite failure")
	}
}

func TestRepeatedCallsReleaseContext(t *testing.T) {
	// The shim destroys the driver context after each run; a second run
	// must start clean.
	for i := 0; i < 3; i++ {
		if res := Link(Elf, []string{"--version"}); res.Messages == "" {
			t.Fatalf("call %d returned no messages", i)
		}
	}
}
