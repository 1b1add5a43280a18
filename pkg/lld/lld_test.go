package lld

import (
	"strings"
	"testing"
)

func TestLinkRejectsInvalidFlavor(t *testing.T) {
	res := Link(Flavor(9), []string{"--version"})
	if res.Success {
		t.Fatal("invalid flavor must not succeed")
	}
	if !strings.Contains(res.Messages, "Flavor(9)") {
		t.Errorf("message should name the flavor: %q", res.Messages)
	}
}

func TestLinkRejectsNULArgument(t *testing.T) {
	res := Link(Elf, []string{"-o", "a\x00b"})
	if res.Success {
		t.Fatal("NUL argument must not succeed")
	}
	if !strings.Contains(res.Messages, "argument 1") {
		t.Errorf("message should name the argument: %q", res.Messages)
	}
	if res.Flavor != Elf {
		t.Errorf("Flavor = %s", res.Flavor)
	}
}
