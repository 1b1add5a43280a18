package llvmconfig

import (
	"bytes"
	"context"
	"fmt"
	"go/format"
	"io"
	"strings"
	"text/template"

	"github.com/GriffinCanCode/linka/pkg/logger"
)

// LLDLibraries are the LLD driver archives the shim links against.
// lldCommon is last: every driver archive depends on it.
var LLDLibraries = []string{"lldWasm", "lldCOFF", "lldELF", "lldMachO", "lldMinGW", "lldCommon"}

// Blocklist holds LLVM components never linked. LineEditor pulls in
// libedit, which the drivers do not use.
var Blocklist = []string{"LLVMLineEditor"}

// Plan is the normalized outcome of discovery.
type Plan struct {
	Target      Target
	Tool        string
	Version     string
	CXXFlags    []string
	LibDir      string
	SearchDirs  []string
	LLDLibs     []string
	StaticLibs  []string
	DynamicLibs []string
}

// Discover queries tool and assembles the Plan for cfg.Target.
func Discover(ctx context.Context, tool *Tool, cfg Config) (*Plan, error) {
	t := cfg.Target
	logger.LogDiscoveryStart(t.String())

	plan := &Plan{Target: t, Tool: tool.Path}

	version, err := tool.Version(ctx)
	if err != nil {
		return nil, err
	}
	plan.Version = version

	cxx, err := tool.Query(ctx, "--cxxflags")
	if err != nil {
		return nil, err
	}
	plan.CXXFlags = CleanCXXFlags(cxx, t, cfg.NoCleanCXXFlags)
	if t.IsMSVC() {
		plan.CXXFlags = append(plan.CXXFlags, "/std:c++17")
	} else {
		plan.CXXFlags = append(plan.CXXFlags, "-std=c++17")
	}

	if cfg.SkipLLVMLinking {
		return plan, nil
	}

	if plan.LibDir, err = tool.LibDir(ctx); err != nil {
		return nil, err
	}

	names, err := tool.Query(ctx, "--libnames")
	if err != nil {
		return nil, err
	}
	static, err := ParseLinkLibraries(names, t)
	if err != nil {
		return nil, err
	}
	for _, name := range static {
		if blocked(name) {
			continue
		}
		logger.LogLibrary("static", name)
		plan.StaticLibs = append(plan.StaticLibs, name)
	}

	sys, err := tool.Query(ctx, "--system-libs")
	if err != nil {
		return nil, err
	}
	plan.DynamicLibs, plan.SearchDirs, err = ParseSystemLibraries(sys, t, nil)
	if err != nil {
		return nil, err
	}

	if t.IsMSVC() {
		debug := cfg.UseDebugMSVCRT
		if !debug {
			if debug, err = tool.IsDebug(ctx); err != nil {
				return nil, err
			}
		}
		if debug {
			plan.DynamicLibs = append(plan.DynamicLibs, "msvcrtd")
		}
	}

	plan.LLDLibs = append([]string(nil), LLDLibraries...)

	if t.OS == "darwin" {
		plan.DynamicLibs = append(plan.DynamicLibs, "xar")
	}
	if t.OS != "windows" {
		plan.DynamicLibs = append(plan.DynamicLibs, "ffi")
	}
	return plan, nil
}

func blocked(name string) bool {
	for _, b := range Blocklist {
		if strings.Contains(name, b) {
			return true
		}
	}
	return false
}

// Libraries is the number of libraries the plan links.
func (p *Plan) Libraries() int {
	return len(p.LLDLibs) + len(p.StaticLibs) + len(p.DynamicLibs)
}

// LDFlags returns the linker flags: search directories, then LLD, LLVM
// and system libraries in dependency order.
func (p *Plan) LDFlags() []string {
	var flags []string
	if p.LibDir != "" {
		flags = append(flags, "-L"+p.LibDir)
	}
	for _, dir := range p.SearchDirs {
		flags = append(flags, "-L"+dir)
	}
	for _, group := range [][]string{p.LLDLibs, p.StaticLibs, p.DynamicLibs} {
		for _, name := range group {
			flags = append(flags, "-l"+name)
		}
	}
	return flags
}

// CgoOptions controls the generated file header.
type CgoOptions struct {
	Package   string
	BuildTag  string
	Generator string
}

var cgoTemplate = template.Must(template.New("cgo").Parse(`// Code generated by {{.Generator}}; DO NOT EDIT.
{{if .BuildTag}}
//go:build {{.BuildTag}}
{{end}}
// LLVM {{.Plan.Version}} ({{.Plan.Tool}}) for {{.Plan.Target}}.

package {{.Package}}

/*
{{- if .CXXFlags}}
#cgo CXXFLAGS: {{.CXXFlags}}
{{- end}}
{{- if .LDFlags}}
#cgo LDFLAGS: {{.LDFlags}}
{{- end}}
*/
import "C"
`))

// WriteCgo renders the plan as a Go source file of cgo directives.
func (p *Plan) WriteCgo(w io.Writer, opts CgoOptions) error {
	if opts.Package == "" {
		return fmt.Errorf("llvmconfig: package name required")
	}
	if opts.Generator == "" {
		opts.Generator = "lldconfig"
	}

	var buf bytes.Buffer
	err := cgoTemplate.Execute(&buf, map[string]any{
		"Generator": opts.Generator,
		"BuildTag":  opts.BuildTag,
		"Package":   opts.Package,
		"Plan":      p,
		"CXXFlags":  joinQuoted(p.CXXFlags),
		"LDFlags":   joinQuoted(p.LDFlags()),
	})
	if err != nil {
		return err
	}

	src, err := format.Source(buf.Bytes())
	if err != nil {
		return fmt.Errorf("llvmconfig: format generated source: %w", err)
	}
	_, err = w.Write(src)
	return err
}

// joinQuoted joins flags for a #cgo line, quoting any that contain
// spaces the way cgo's directive splitter expects.
func joinQuoted(flags []string) string {
	out := make([]string, len(flags))
	for i, f := range flags {
		if strings.ContainsAny(f, " \t") {
			f = "'" + f + "'"
		}
		out[i] = f
	}
	return strings.Join(out, " ")
}
