package platform

import (
	"runtime"
	"strings"
)

// Target is a build target platform.
type Target int

const (
	Unknown Target = iota
	Win64
	Linux
	AndroidArmV7
	AndroidArm64
	AndroidX86
	AndroidX64
)

// Android ABI directory names, in the order the NDK lays them out.
const (
	ABIArmV7 = "armeabi-v7a"
	ABIArm64 = "arm64-v8a"
	ABIX86   = "x86"
	ABIX64   = "x86_64"
)

// All returns every supported target in a stable order.
func All() []Target {
	return []Target{Win64, Linux, AndroidArmV7, AndroidArm64, AndroidX86, AndroidX64}
}

// AndroidABIs returns the ABI directory names of every supported Android target.
func AndroidABIs() []string {
	return []string{ABIArmV7, ABIArm64, ABIX86, ABIX64}
}

// String returns the platform name the host build uses for per-platform
// output directories ("Win64", "Linux", "Android"). All Android ABIs share a
// name because they share a Binaries directory.
func (t Target) String() string {
	switch t {
	case Win64:
		return "Win64"
	case Linux:
		return "Linux"
	case AndroidArmV7, AndroidArm64, AndroidX86, AndroidX64:
		return "Android"
	default:
		return "Unknown"
	}
}

// Arch returns the Android ABI directory name, or "" for desktop targets.
func (t Target) Arch() string {
	switch t {
	case AndroidArmV7:
		return ABIArmV7
	case AndroidArm64:
		return ABIArm64
	case AndroidX86:
		return ABIX86
	case AndroidX64:
		return ABIX64
	default:
		return ""
	}
}

// ID returns a unique, parseable identifier (e.g., "win64", "android-arm64-v8a").
func (t Target) ID() string {
	if arch := t.Arch(); arch != "" {
		return "android-" + arch
	}
	return strings.ToLower(t.String())
}

// IsAndroid reports whether t is one of the Android ABIs.
func (t Target) IsAndroid() bool {
	return t.Arch() != ""
}

// Supported reports whether t is a known target.
func (t Target) Supported() bool {
	return t != Unknown
}

// MarshalText implements encoding.TextMarshaler using the ID form.
func (t Target) MarshalText() ([]byte, error) {
	return []byte(t.ID()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. Unrecognized names
// decode to Unknown rather than failing.
func (t *Target) UnmarshalText(text []byte) error {
	*t, _ = Parse(string(text))
	return nil
}

// Parse resolves a platform name. It accepts target IDs ("win64",
// "android-x86_64"), host names ("Win64", "Android"), and GOOS/GOARCH pairs
// ("windows/amd64", "android/arm64"). A bare "android" selects arm64-v8a.
// The second return value is false when the name is not recognized, in which
// case Unknown is returned.
func Parse(name string) (Target, bool) {
	s := strings.ToLower(strings.TrimSpace(name))
	switch s {
	case "win64", "windows":
		return Win64, true
	case "linux":
		return Linux, true
	case "android":
		return AndroidArm64, true
	}

	if goos, goarch, ok := strings.Cut(s, "/"); ok {
		t := FromGOOS(goos, goarch)
		return t, t != Unknown
	}

	if abi, ok := strings.CutPrefix(s, "android-"); ok {
		for _, t := range All() {
			if t.Arch() == abi {
				return t, true
			}
		}
	}
	return Unknown, false
}

// FromGOOS maps a Go GOOS/GOARCH pair to a target.
func FromGOOS(goos, goarch string) Target {
	switch goos {
	case "windows":
		if goarch == "amd64" {
			return Win64
		}
	case "linux":
		return Linux
	case "android":
		switch goarch {
		case "arm":
			return AndroidArmV7
		case "arm64":
			return AndroidArm64
		case "386":
			return AndroidX86
		case "amd64":
			return AndroidX64
		}
	}
	return Unknown
}

// Host returns the target matching the running process.
func Host() Target {
	return FromGOOS(runtime.GOOS, runtime.GOARCH)
}
