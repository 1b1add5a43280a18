// Package llvmconfig discovers how to compile and statically link against
// an LLVM/LLD installation by querying llvm-config.
//
// Design: locate the tool, run it once per flag, normalize the platform's
// library naming, and hand back a Plan that renders to cgo directives.
// Any missing or malformed output is an error; nothing is guessed.
package llvmconfig

import "runtime"

// Environment variables read by ConfigFromEnv.
const (
	EnvConfigPath      = "LLVM_CONFIG"
	EnvNoCleanCXXFlags = "LINKA_NO_CLEAN_CFLAGS"
	EnvUseDebugMSVCRT  = "LINKA_USE_DEBUG_MSVCRT"
	EnvNoLLVMLinking   = "LINKA_NO_LLVM_LINKING"
)

// DefaultSearchPatterns are install roots scanned when llvm-config is not
// on the search path.
var DefaultSearchPatterns = []string{
	"/usr/lib/llvm-*/bin/llvm-config",
	"/usr/lib/llvm*/bin/llvm-config",
	"/usr/local/opt/llvm*/bin/llvm-config",
	"/opt/homebrew/opt/llvm*/bin/llvm-config",
	"/usr/local/llvm*/bin/llvm-config",
}

// Config controls discovery.
type Config struct {
	Path            string // explicit llvm-config, skips the search
	Target          Target
	NoCleanCXXFlags bool
	UseDebugMSVCRT  bool
	SkipLLVMLinking bool // emit compiler flags only
	SearchPatterns  []string
}

// ConfigFromEnv builds a Config for the host target. A boolean variable
// is on when set to any non-empty value.
func ConfigFromEnv(getenv func(string) string) Config {
	return Config{
		Path:            getenv(EnvConfigPath),
		Target:          HostTarget(false),
		NoCleanCXXFlags: getenv(EnvNoCleanCXXFlags) != "",
		UseDebugMSVCRT:  getenv(EnvUseDebugMSVCRT) != "",
		SkipLLVMLinking: getenv(EnvNoLLVMLinking) != "",
		SearchPatterns:  DefaultSearchPatterns,
	}
}

// Target is the platform the generated directives are for.
type Target struct {
	OS  string // GOOS spelling: linux, darwin, freebsd, windows
	Env string // "msvc" or empty
}

// HostTarget describes the running platform.
func HostTarget(msvc bool) Target {
	t := Target{OS: runtime.GOOS}
	if msvc {
		t.Env = "msvc"
	}
	return t
}

func (t Target) IsMSVC() bool { return t.Env == "msvc" }

func (t Target) String() string {
	if t.Env == "" {
		return t.OS
	}
	return t.OS + "-" + t.Env
}

// DylibExt is the shared-object suffix on the target.
func (t Target) DylibExt() string {
	if t.OS == "darwin" {
		return ".dylib"
	}
	return ".so"
}

// LibCXX names the C++ runtime library to link, or "" under MSVC where
// the toolchain adds it implicitly.
func (t Target) LibCXX() string {
	switch {
	case t.IsMSVC():
		return ""
	case t.OS == "darwin", t.OS == "freebsd":
		return "c++"
	default:
		return "stdc++"
	}
}
