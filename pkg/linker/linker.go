// Package linker builds linker command lines from object lists and runs
// them through the in-process LLD bridge.
//
// Design: the caller describes inputs once; Args spells them in the
// dialect of the chosen flavor (GNU-style for ELF, Wasm and Mach-O,
// link.exe-style for COFF).
package linker

import (
	"errors"

	"github.com/GriffinCanCode/linka/pkg/lld"
)

// ErrNoObjects is returned by Link when no input was added.
var ErrNoObjects = errors.New("linker: no input objects")

// Linker links object files into an executable or library
type Linker struct {
	flavor   lld.Flavor
	output   string
	entry    string
	static   bool
	objects  []string
	libs     []string
	libPaths []string
	extra    []string
}

func New(flavor lld.Flavor, output string) *Linker {
	return &Linker{
		flavor: flavor,
		output: output,
	}
}

func (l *Linker) Flavor() lld.Flavor { return l.flavor }

func (l *Linker) AddObject(path string) {
	l.objects = append(l.objects, path)
}

// AddLibrary links against name, given without prefix or suffix.
func (l *Linker) AddLibrary(name string) {
	l.libs = append(l.libs, name)
}

func (l *Linker) AddLibraryPath(dir string) {
	l.libPaths = append(l.libPaths, dir)
}

// AddArgs appends raw driver arguments after the generated ones.
func (l *Linker) AddArgs(args ...string) {
	l.extra = append(l.extra, args...)
}

func (l *Linker) SetEntry(symbol string) {
	l.entry = symbol
}

// SetStatic requests a static executable. Only ELF honors it.
func (l *Linker) SetStatic(static bool) {
	l.static = static
}

// Args returns the driver arguments, without the program name.
func (l *Linker) Args() []string {
	if l.flavor == lld.Coff {
		return l.coffArgs()
	}

	var args []string
	if l.output != "" {
		args = append(args, "-o", l.output)
	}
	if l.static && l.flavor == lld.Elf {
		args = append(args, "-static")
	}
	if l.entry != "" {
		if l.flavor == lld.Wasm {
			args = append(args, "--entry="+l.entry)
		} else {
			args = append(args, "-e", l.entry)
		}
	}
	for _, dir := range l.libPaths {
		args = append(args, "-L"+dir)
	}
	args = append(args, l.objects...)
	for _, name := range l.libs {
		args = append(args, "-l"+name)
	}
	return append(args, l.extra...)
}

func (l *Linker) coffArgs() []string {
	var args []string
	if l.output != "" {
		args = append(args, "/out:"+l.output)
	}
	if l.entry != "" {
		args = append(args, "/entry:"+l.entry)
	}
	for _, dir := range l.libPaths {
		args = append(args, "/libpath:"+dir)
	}
	args = append(args, l.objects...)
	for _, name := range l.libs {
		args = append(args, name+".lib")
	}
	return append(args, l.extra...)
}

// Link produces the final output. Driver diagnostics come back as a
// *lld.LinkError.
func (l *Linker) Link() error {
	if len(l.objects) == 0 {
		return ErrNoObjects
	}
	return lld.Link(l.flavor, l.Args()).Err()
}
