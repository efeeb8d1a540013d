package rules

import (
	"os"

	"github.com/mqtt-plugin/libstage/internal/descriptor"
	"github.com/mqtt-plugin/libstage/internal/layout"
	"github.com/mqtt-plugin/libstage/internal/platform"
)

// CheckKind names what a Check entry inspected.
type CheckKind string

const (
	CheckLibraryDir  CheckKind = "library"
	CheckIncludePath CheckKind = "include"
	CheckLibraryPath CheckKind = "libpath"
	CheckArtifact    CheckKind = "artifact"
)

// CheckResult reports whether one expected path exists.
type CheckResult struct {
	Kind   CheckKind `json:"kind"`
	Path   string    `json:"path"`
	OK     bool      `json:"ok"`
	Detail string    `json:"detail,omitempty"`
}

// Check verifies that the third-party tree provides everything the
// descriptor for t refers to, without staging anything.
func Check(t platform.Target, l layout.Layout) []CheckResult {
	d := descriptor.Resolve(t, l)
	if d.IsEmpty() {
		return nil
	}

	results := []CheckResult{checkPath(CheckLibraryDir, l.LibraryDir(), true)}
	for _, p := range d.IncludePaths {
		results = append(results, checkPath(CheckIncludePath, p, true))
	}
	for _, p := range d.LibraryPaths {
		results = append(results, checkPath(CheckLibraryPath, p, true))
	}
	for _, p := range d.Artifacts {
		results = append(results, checkPath(CheckArtifact, p, false))
	}
	return results
}

// Failed counts the failing results.
func Failed(results []CheckResult) int {
	n := 0
	for _, r := range results {
		if !r.OK {
			n++
		}
	}
	return n
}

func checkPath(kind CheckKind, path string, wantDir bool) CheckResult {
	r := CheckResult{Kind: kind, Path: path}
	info, err := os.Stat(path)
	switch {
	case err != nil:
		r.Detail = "not found"
	case wantDir && !info.IsDir():
		r.Detail = "not a directory"
	case !wantDir && !info.Mode().IsRegular():
		r.Detail = "not a regular file"
	default:
		r.OK = true
	}
	return r
}
