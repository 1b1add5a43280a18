// Command lldconfig queries llvm-config and writes the cgo directives that
// let package lld compile its shim and link LLVM and LLD statically.
//
// Usage (normally through go generate in pkg/lld):
//
//	lldconfig [-o zcgo_flags.go] [-pkg lld] [-tags "lld && !lldfake"] [-target-os linux] [-msvc] [-v]
//
// LLVM_CONFIG overrides the llvm-config binary. See package llvmconfig for
// the other environment switches.
package main

import (
	"bytes"
	"context"
	"flag"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/GriffinCanCode/linka/pkg/llvmconfig"
	"github.com/GriffinCanCode/linka/pkg/logger"
)

type options struct {
	output   string
	pkg      string
	tags     string
	targetOS string
	msvc     bool
	verbose  bool
}

func main() {
	var opts options
	flag.StringVar(&opts.output, "o", "zcgo_flags.go", "output file")
	flag.StringVar(&opts.pkg, "pkg", "lld", "package name of the generated file")
	flag.StringVar(&opts.tags, "tags", "lld && !lldfake", "build constraint of the generated file")
	flag.StringVar(&opts.targetOS, "target-os", "", "target GOOS (default: host)")
	flag.BoolVar(&opts.msvc, "msvc", false, "target the MSVC environment")
	flag.BoolVar(&opts.verbose, "v", false, "verbose output")
	flag.Parse()

	if opts.verbose {
		logger.InitDev()
	} else {
		_ = logger.Init(logger.DefaultConfig())
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	err := run(ctx, opts, os.Getenv)
	if err != nil {
		logger.Error("lldconfig failed", "error", err)
	}
	logger.Close()
	if err != nil {
		os.Exit(1)
	}
}

func run(ctx context.Context, opts options, getenv func(string) string) error {
	cfg := llvmconfig.ConfigFromEnv(getenv)
	cfg.Target = llvmconfig.HostTarget(opts.msvc)
	if opts.targetOS != "" {
		cfg.Target.OS = opts.targetOS
	}

	path, how, err := llvmconfig.Locate(cfg, nil)
	if err != nil {
		return err
	}
	logger.LogToolFound(path, how)

	plan, err := llvmconfig.Discover(ctx, llvmconfig.NewTool(path), cfg)
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	err = plan.WriteCgo(&buf, llvmconfig.CgoOptions{
		Package:   opts.pkg,
		BuildTag:  opts.tags,
		Generator: "lldconfig",
	})
	if err != nil {
		return err
	}
	if err := writeFileAtomic(opts.output, buf.Bytes()); err != nil {
		return err
	}

	logger.LogDirectivesWritten(opts.output, plan.Libraries())
	return nil
}

// writeFileAtomic replaces path only once data is fully on disk.
func writeFileAtomic(path string, data []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), ".lldconfig-*")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Chmod(tmp.Name(), 0o644); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}
