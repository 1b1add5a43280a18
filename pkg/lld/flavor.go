// Package lld links object files in process by calling the LLD drivers
// through cgo.
//
// Design: one synchronous call per link. The native result is copied into
// Go memory and released before Link returns. The bridge is compiled only
// with the "lld" build tag; run "go generate" in this directory first so
// zcgo_flags.go carries the LLVM link directives for the host.
package lld

//go:generate go run ../../cmd/lldconfig -o zcgo_flags.go -pkg lld -tags "lld && !lldfake"

import (
	"fmt"
	"strings"
)

// Flavor selects the object format LLD emits. Values match the C shim.
type Flavor int

const (
	Elf   Flavor = 0
	Wasm  Flavor = 1
	MachO Flavor = 2
	Coff  Flavor = 3
)

var flavorNames = [...]string{
	Elf:   "elf",
	Wasm:  "wasm",
	MachO: "macho",
	Coff:  "coff",
}

// Driver names LLD itself accepts for -flavor, plus our canonical names.
var flavorAliases = map[string]Flavor{
	"elf":      Elf,
	"gnu":      Elf,
	"ld.lld":   Elf,
	"wasm":     Wasm,
	"wasm-ld":  Wasm,
	"macho":    MachO,
	"mach-o":   MachO,
	"darwin":   MachO,
	"ld64.lld": MachO,
	"coff":     Coff,
	"pe":       Coff,
	"link":     Coff,
	"lld-link": Coff,
}

func (f Flavor) String() string {
	if f.Valid() {
		return flavorNames[f]
	}
	return fmt.Sprintf("Flavor(%d)", int(f))
}

// Valid reports whether f is one of the four supported flavors.
func (f Flavor) Valid() bool {
	return f >= Elf && f <= Coff
}

// ProgramName is the argv[0] the driver expects. The shim inserts it.
func (f Flavor) ProgramName() string {
	if f == Coff {
		return "lld.exe"
	}
	return "lld"
}

// ParseFlavor resolves a flavor name or LLD driver alias.
func ParseFlavor(s string) (Flavor, error) {
	if f, ok := flavorAliases[strings.ToLower(strings.TrimSpace(s))]; ok {
		return f, nil
	}
	return Elf, fmt.Errorf("unknown lld flavor %q", s)
}

// Set implements flag.Value.
func (f *Flavor) Set(s string) error {
	v, err := ParseFlavor(s)
	if err != nil {
		return err
	}
	*f = v
	return nil
}
