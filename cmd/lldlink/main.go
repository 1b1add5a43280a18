// Package main implements lldlink, a front end for the in-process LLD
// drivers.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/GriffinCanCode/linka/pkg/linker"
	"github.com/GriffinCanCode/linka/pkg/lld"
	"github.com/GriffinCanCode/linka/pkg/logger"
)

const version = "0.1.0"

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	if len(args) < 1 {
		usage(stderr)
		return 1
	}

	defer logger.Close()

	var err error
	switch args[0] {
	case "link":
		err = link(args[1:], stdout, stderr)
	case "raw":
		err = raw(args[1:], stdout, stderr)
	case "version":
		err = showVersion(args[1:], stdout, stderr)
	case "help":
		usage(stdout)
	default:
		fmt.Fprintf(stderr, "unknown command: %s\n", args[0])
		usage(stderr)
		return 1
	}

	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}
	return 0
}

func usage(w io.Writer) {
	fmt.Fprintln(w, `lldlink - link objects with the built-in LLD drivers

Usage:
    lldlink link [options] <object>...    Link objects into -o
    lldlink raw <flavor> [lld args]...    Pass arguments to LLD verbatim
    lldlink version [-flavor f]           Show lldlink and LLD versions
    lldlink help                          Show this help message

Link options:
    -flavor <f>    Output format: elf, wasm, macho, coff (default: elf)
    -o <file>      Output file (default: a.out)
    -L <dir>       Add a library search directory (repeatable)
    -l <name>      Link a library (repeatable)
    -e <symbol>    Entry point
    -static        Static executable (elf only)
    -v             Verbose output`)
}

type listFlag []string

func (l *listFlag) String() string { return strings.Join(*l, ",") }
func (l *listFlag) Set(s string) error { *l = append(*l, s); return nil }

// initLogging logs warnings as text to stderr unless LINKA_LOG_LEVEL,
// LINKA_LOG_FORMAT or LINKA_LOG_FILE say otherwise; -v forces debug.
func initLogging(verbose bool, stderr io.Writer) error {
	cfg := logger.Config{
		Level:   logger.LevelWarn,
		Format:  os.Getenv("LINKA_LOG_FORMAT"),
		Output:  stderr,
		LogFile: os.Getenv("LINKA_LOG_FILE"),
	}
	if env := os.Getenv("LINKA_LOG_LEVEL"); env != "" {
		level, err := logger.ParseLevel(env)
		if err != nil {
			return err
		}
		cfg.Level = level
	}
	if verbose {
		cfg.Level = logger.LevelDebug
	}
	return logger.Init(cfg)
}

func link(args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("link", flag.ContinueOnError)
	fs.SetOutput(stderr)
	flavor := lld.Elf
	var libPaths, libs listFlag
	fs.Var(&flavor, "flavor", "output format")
	output := fs.String("o", "a.out", "output file")
	fs.Var(&libPaths, "L", "library search directory")
	fs.Var(&libs, "l", "library")
	entry := fs.String("e", "", "entry point")
	static := fs.Bool("static", false, "static executable")
	verbose := fs.Bool("v", false, "verbose output")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() == 0 {
		return fmt.Errorf("no input objects")
	}
	if err := initLogging(*verbose, stderr); err != nil {
		return err
	}

	l := linker.New(flavor, *output)
	l.SetEntry(*entry)
	l.SetStatic(*static)
	for _, dir := range libPaths {
		l.AddLibraryPath(dir)
	}
	for _, obj := range fs.Args() {
		l.AddObject(obj)
	}
	for _, name := range libs {
		l.AddLibrary(name)
	}

	logger.Info("Linking", "flavor", flavor, "objects", fs.NArg(), "output", *output)
	if err := l.Link(); err != nil {
		return err
	}
	if *verbose {
		fmt.Fprintf(stdout, "wrote %s\n", *output)
	}
	return nil
}

func raw(args []string, stdout, stderr io.Writer) error {
	if len(args) == 0 {
		return fmt.Errorf("raw: missing flavor")
	}
	flavor, err := lld.ParseFlavor(args[0])
	if err != nil {
		return err
	}
	if err := initLogging(false, stderr); err != nil {
		return err
	}

	res := lld.Link(flavor, args[1:])
	if res.Success {
		fmt.Fprint(stdout, res.Messages)
	}
	return res.Err()
}

func showVersion(args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("version", flag.ContinueOnError)
	fs.SetOutput(stderr)
	flavor := lld.Elf
	fs.Var(&flavor, "flavor", "driver to query")
	if err := fs.Parse(args); err != nil {
		return err
	}

	fmt.Fprintf(stdout, "lldlink version %s\n", version)
	if !lld.Available() {
		fmt.Fprintln(stdout, "lld: not built in (build with -tags lld)")
		return nil
	}
	res := lld.Link(flavor, []string{"--version"})
	if err := res.Err(); err != nil {
		return err
	}
	fmt.Fprint(stdout, res.Messages)
	return nil
}
