package llvmconfig

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// IsFileFunc reports whether path names an existing regular file.
type IsFileFunc func(path string) bool

func isRegularFile(path string) bool {
	fi, err := os.Stat(path)
	return err == nil && fi.Mode().IsRegular()
}

// ParseLinkLibraries turns "llvm-config --libnames" output into library
// names suitable for -l.
func ParseLinkLibraries(out string, target Target) ([]string, error) {
	var names []string
	for _, name := range strings.Fields(out) {
		if target.IsMSVC() {
			if !strings.HasSuffix(name, ".lib") {
				return nil, &Error{Op: "libnames", Arg: name,
					Err: fmt.Errorf("%w: not an MSVC library file", ErrBadLibraryName)}
			}
			names = append(names, strings.TrimSuffix(name, ".lib"))
			continue
		}
		if !strings.HasPrefix(name, "lib") || !strings.HasSuffix(name, ".a") || len(name) <= len("lib.a") {
			return nil, &Error{Op: "libnames", Arg: name,
				Err: fmt.Errorf("%w: not a static library", ErrBadLibraryName)}
		}
		names = append(names, name[len("lib"):len(name)-len(".a")])
	}
	return names, nil
}

// ParseSystemLibraries turns "llvm-config --system-libs" output into
// library names. Libraries given as full shared-object paths add their
// directory to searchDirs. The target's C++ runtime is appended.
func ParseSystemLibraries(out string, target Target, isFile IsFileFunc) (libs, searchDirs []string, err error) {
	if isFile == nil {
		isFile = isRegularFile
	}

	for _, flag := range strings.Fields(out) {
		if strings.HasPrefix(flag, "/") {
			continue
		}

		if target.IsMSVC() {
			if !strings.HasSuffix(flag, ".lib") {
				return nil, nil, &Error{Op: "system-libs", Arg: flag,
					Err: fmt.Errorf("%w: not an MSVC library file", ErrBadLibraryName)}
			}
			libs = append(libs, strings.TrimSuffix(flag, ".lib"))
			continue
		}

		if strings.HasPrefix(flag, "-l") {
			if target.OS == "darwin" && strings.HasPrefix(flag, "-llib") && strings.HasSuffix(flag, ".tbd") {
				libs = append(libs, flag[len("-llib"):len(flag)-len(".tbd")])
			} else {
				libs = append(libs, flag[len("-l"):])
			}
			continue
		}

		if !isFile(flag) {
			return nil, nil, &Error{Op: "system-libs", Arg: flag,
				Err: fmt.Errorf("%w: unable to parse result of llvm-config --system-libs", ErrBadLibraryName)}
		}
		name, err := sharedObjectName(filepath.Base(flag), target.DylibExt())
		if err != nil {
			return nil, nil, &Error{Op: "system-libs", Arg: flag, Err: err}
		}
		libs = append(libs, name)
		searchDirs = appendUnique(searchDirs, filepath.Dir(flag))
	}

	if cxx := target.LibCXX(); cxx != "" {
		libs = append(libs, cxx)
	}
	return libs, searchDirs, nil
}

// sharedObjectName maps "libz.so.1" to "z".
func sharedObjectName(base, ext string) (string, error) {
	i := strings.LastIndex(base, ext)
	if i < 0 {
		return "", fmt.Errorf("%w: shared library should be a %s file", ErrBadLibraryName, ext)
	}
	return strings.TrimPrefix(base[:i], "lib"), nil
}

// CleanCXXFlags splits "llvm-config --cxxflags" output and drops warning
// flags, which LLVM's own build enables but the shim does not need.
func CleanCXXFlags(out string, target Target, noClean bool) []string {
	words := strings.Fields(out)
	if noClean || target.IsMSVC() {
		return words
	}
	kept := words[:0]
	for _, w := range words {
		if !strings.HasPrefix(w, "-W") {
			kept = append(kept, w)
		}
	}
	return kept
}

func appendUnique(list []string, s string) []string {
	for _, v := range list {
		if v == s {
			return list
		}
	}
	return append(list, s)
}
