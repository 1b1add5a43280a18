package llvmconfig

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// fakeRunner answers llvm-config queries from a table keyed by flag.
type fakeRunner struct {
	outputs map[string]string
	fail    map[string]error
	calls   []string
}

func (f *fakeRunner) Run(_ context.Context, name string, args ...string) ([]byte, error) {
	f.calls = append(f.calls, strings.Join(args, " "))
	if len(args) != 2 || args[1] != "--link-static" {
		return nil, fmt.Errorf("unexpected invocation %s %v", name, args)
	}
	if err := f.fail[args[0]]; err != nil {
		return nil, err
	}
	return []byte(f.outputs[args[0]]), nil
}

var errExit = errors.New("exit status 1")

func linuxOutputs() map[string]string {
	return map[string]string{
		"--version":     "18.1.8\n",
		"--cxxflags":    "-I/usr/lib/llvm-18/include -std=c++17 -fno-exceptions -Wall -Wno-unused -D_GNU_SOURCE\n",
		"--libdir":      "/usr/lib/llvm-18/lib\n",
		"--libnames":    "libLLVMCore.a libLLVMLineEditor.a libLLVMSupport.a\nlibLLVMDemangle.a\n",
		"--system-libs": "-lrt -ldl -lm -lz -lzstd -ltinfo -lxml2\n",
		"--build-mode":  "Release\n",
	}
}
