// Package descriptor resolves the compiler and linker directives needed to
// consume the prebuilt MQTT client library on a target platform.
package descriptor

import (
	"github.com/mqtt-plugin/libstage/internal/layout"
	"github.com/mqtt-plugin/libstage/internal/platform"
)

// Descriptor is the resolved set of build directives for one target.
type Descriptor struct {
	// IncludePaths are public header directories.
	IncludePaths []string `yaml:"include_paths" json:"include_paths"`
	// LibraryPaths are linker search directories.
	LibraryPaths []string `yaml:"library_paths" json:"library_paths"`
	// Libraries are link library names, passed to the linker as-is.
	Libraries []string `yaml:"libraries" json:"libraries"`
	// DelayLoadLibraries are runtime libraries resolved lazily by the loader.
	DelayLoadLibraries []string `yaml:"delay_load,omitempty" json:"delay_load,omitempty"`
	// Artifacts are absolute source paths that must be staged next to the
	// project binaries before the target can run.
	Artifacts []string `yaml:"artifacts,omitempty" json:"artifacts,omitempty"`
}

// IsEmpty reports whether d carries no directives at all.
func (d Descriptor) IsEmpty() bool {
	return len(d.IncludePaths) == 0 &&
		len(d.LibraryPaths) == 0 &&
		len(d.Libraries) == 0 &&
		len(d.DelayLoadLibraries) == 0 &&
		len(d.Artifacts) == 0
}

// NeedsStaging reports whether any artifact must be copied for this target.
func (d Descriptor) NeedsStaging() bool {
	return len(d.Artifacts) > 0
}

// Win64 client library variants: asynchronous and synchronous.
var (
	win64ImportLibs = []string{"paho-mqtt3a.lib", "paho-mqtt3c.lib"}
	win64DLLs       = []string{"paho-mqtt3a.dll", "paho-mqtt3c.dll"}
)

// Linux links the shared objects directly: async/sync, plain and TLS.
var linuxLibs = []string{"paho-mqtt3a", "paho-mqtt3as", "paho-mqtt3c", "paho-mqtt3cs"}

// androidLib is the umbrella library built by ndk-build for every ABI.
const androidLib = "PahoMQTT"

// Resolve returns the descriptor for target t with paths rooted in l.
// Unsupported targets resolve to an empty descriptor.
func Resolve(t platform.Target, l layout.Layout) Descriptor {
	switch {
	case t == platform.Win64:
		return resolveWin64(l)
	case t == platform.Linux:
		return resolveLinux(l)
	case t.IsAndroid():
		return resolveAndroid(l)
	default:
		return Descriptor{}
	}
}

func includePaths(l layout.Layout) []string {
	return []string{l.LibraryPath("src")}
}

func resolveWin64(l layout.Layout) Descriptor {
	releaseDir := l.LibraryPath("build", "src", "Release")

	artifacts := make([]string, 0, len(win64DLLs))
	for _, dll := range win64DLLs {
		artifacts = append(artifacts, l.LibraryPath("build", "src", "Release", dll))
	}

	return Descriptor{
		IncludePaths:       includePaths(l),
		LibraryPaths:       []string{releaseDir},
		Libraries:          clone(win64ImportLibs),
		DelayLoadLibraries: clone(win64DLLs),
		Artifacts:          artifacts,
	}
}

func resolveLinux(l layout.Layout) Descriptor {
	return Descriptor{
		IncludePaths: includePaths(l),
		LibraryPaths: []string{l.LibraryPath("build", "output")},
		Libraries:    clone(linuxLibs),
	}
}

// resolveAndroid lists every ABI's search path; the packaging step picks the
// binary for each ABI later.
func resolveAndroid(l layout.Layout) Descriptor {
	abis := platform.AndroidABIs()
	paths := make([]string, 0, len(abis))
	for _, abi := range abis {
		paths = append(paths, l.LibraryPath("obj", "local", abi))
	}
	return Descriptor{
		IncludePaths: includePaths(l),
		LibraryPaths: paths,
		Libraries:    []string{androidLib},
	}
}

func clone(s []string) []string {
	return append([]string(nil), s...)
}
