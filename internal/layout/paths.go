// Package layout derives the on-disk locations the resolver and staging
// engine work with: the third-party library tree next to the plugin and the
// per-platform Binaries directory of the project.
package layout

import (
	"path/filepath"

	"github.com/mqtt-plugin/libstage/internal/branding"
	"github.com/mqtt-plugin/libstage/internal/platform"
)

// Directory name constants for the plugin convention.
const (
	ThirdPartyDir = "ThirdParty"
	BinariesDir   = "Binaries"
)

// Layout locates a plugin module within a project.
//
//	<project>/Plugins/<Plugin>/Source/<Module>   ModuleRoot
//	<project>/Plugins/<Plugin>/ThirdParty/<Lib>  LibraryDir
//	<project>/Binaries/<Platform>                BinariesDir
type Layout struct {
	// ModuleRoot is the directory containing the module's build rules.
	ModuleRoot string
	// ProjectRoot overrides the project directory. Empty means four levels
	// above ModuleRoot.
	ProjectRoot string
	// ThirdPartyRoot overrides the third-party directory. Empty means
	// <ModuleRoot>/../../ThirdParty.
	ThirdPartyRoot string
	// Library is the directory name of the prebuilt library under the
	// third-party root. Empty means branding.DefaultLibrary().
	Library string
}

// LibraryName returns the configured library directory name.
func (l Layout) LibraryName() string {
	if l.Library != "" {
		return l.Library
	}
	return branding.DefaultLibrary()
}

// ThirdPartyDir returns the absolute third-party root.
func (l Layout) ThirdPartyDir() string {
	if l.ThirdPartyRoot != "" {
		return absPath(l.ThirdPartyRoot)
	}
	return absPath(filepath.Join(l.ModuleRoot, "..", "..", ThirdPartyDir))
}

// LibraryDir returns the absolute directory of the prebuilt library.
func (l Layout) LibraryDir() string {
	return filepath.Join(l.ThirdPartyDir(), l.LibraryName())
}

// LibraryPath joins elem onto LibraryDir.
func (l Layout) LibraryPath(elem ...string) string {
	return filepath.Join(append([]string{l.LibraryDir()}, elem...)...)
}

// ProjectDir returns the absolute project root.
func (l Layout) ProjectDir() string {
	if l.ProjectRoot != "" {
		return absPath(l.ProjectRoot)
	}
	return absPath(filepath.Join(l.ModuleRoot, "..", "..", "..", ".."))
}

// BinariesDir returns <project>/Binaries/<platform name>.
func (l Layout) BinariesDir(t platform.Target) string {
	return filepath.Join(l.ProjectDir(), BinariesDir, t.String())
}

// absPath makes p absolute, falling back to a cleaned path when the working
// directory cannot be determined.
func absPath(p string) string {
	abs, err := filepath.Abs(p)
	if err != nil {
		return filepath.Clean(p)
	}
	return abs
}
