package llvmconfig

import (
	"fmt"
	"os/exec"
	"regexp"
	"sort"
	"strconv"

	"github.com/bmatcuk/doublestar/v4"
)

// LookPathFunc resolves an executable name on the search path.
type LookPathFunc func(file string) (string, error)

// Versioned binaries shipped by distro packages, newest first.
const (
	newestVersioned = 20
	oldestVersioned = 14
)

// Locate finds llvm-config. It returns the path and how it was found:
// "env", "path", "versioned" or "glob".
func Locate(cfg Config, lookPath LookPathFunc) (string, string, error) {
	if cfg.Path != "" {
		return cfg.Path, "env", nil
	}
	if lookPath == nil {
		lookPath = exec.LookPath
	}

	if p, err := lookPath("llvm-config"); err == nil {
		return p, "path", nil
	}
	for v := newestVersioned; v >= oldestVersioned; v-- {
		if p, err := lookPath("llvm-config-" + strconv.Itoa(v)); err == nil {
			return p, "versioned", nil
		}
	}

	candidates, err := globInstallRoots(cfg.SearchPatterns)
	if err != nil {
		return "", "", &Error{Op: "locate", Err: err}
	}
	if len(candidates) > 0 {
		return candidates[0], "glob", nil
	}

	return "", "", &Error{
		Op:  "locate",
		Err: fmt.Errorf("%w; set %s to its path", ErrNotFound, EnvConfigPath),
	}
}

var versionDigits = regexp.MustCompile(`llvm[-@]?(\d+)`)

// globInstallRoots expands patterns and orders hits by the LLVM version
// in their path, newest first.
func globInstallRoots(patterns []string) ([]string, error) {
	seen := make(map[string]bool)
	var hits []string
	for _, pattern := range patterns {
		matches, err := doublestar.FilepathGlob(pattern)
		if err != nil {
			return nil, fmt.Errorf("glob %q: %w", pattern, err)
		}
		for _, m := range matches {
			if !seen[m] {
				seen[m] = true
				hits = append(hits, m)
			}
		}
	}

	sort.SliceStable(hits, func(i, j int) bool {
		vi, vj := pathVersion(hits[i]), pathVersion(hits[j])
		if vi != vj {
			return vi > vj
		}
		return hits[i] > hits[j]
	})
	return hits, nil
}

func pathVersion(p string) int {
	m := versionDigits.FindStringSubmatch(p)
	if m == nil {
		return 0
	}
	v, _ := strconv.Atoi(m[1])
	return v
}
