package rules

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mqtt-plugin/libstage/internal/platform"
)

func TestCheckWin64(t *testing.T) {
	l, _ := newProject(t)
	require.NoError(t, os.MkdirAll(filepath.Join(l.LibraryDir(), "src"), 0755))

	results := Check(platform.Win64, l)

	// library dir, include, libpath, two DLLs
	require.Len(t, results, 5)
	assert.Equal(t, 0, Failed(results))
	assert.Equal(t, CheckArtifact, results[4].Kind)
}

func TestCheckReportsMissingArtifact(t *testing.T) {
	l, _ := newProject(t)
	require.NoError(t, os.MkdirAll(filepath.Join(l.LibraryDir(), "src"), 0755))
	require.NoError(t, os.Remove(filepath.Join(l.LibraryDir(), "build", "src", "Release", "paho-mqtt3a.dll")))

	results := Check(platform.Win64, l)
	assert.Equal(t, 1, Failed(results))
	for _, r := range results {
		if !r.OK {
			assert.Equal(t, CheckArtifact, r.Kind)
			assert.Equal(t, "not found", r.Detail)
		}
	}
}

func TestCheckAndroidMissingABIs(t *testing.T) {
	l, _ := newProject(t)
	require.NoError(t, os.MkdirAll(filepath.Join(l.LibraryDir(), "src"), 0755))
	require.NoError(t, os.MkdirAll(filepath.Join(l.LibraryDir(), "obj", "local", "arm64-v8a"), 0755))

	results := Check(platform.AndroidArm64, l)
	assert.Equal(t, 3, Failed(results))
}

func TestCheckFileWhereDirectoryExpected(t *testing.T) {
	l, _ := newProject(t)
	require.NoError(t, os.WriteFile(filepath.Join(l.LibraryDir(), "src"), []byte("x"), 0644))

	results := Check(platform.Win64, l)
	require.Equal(t, 1, Failed(results))
	for _, r := range results {
		if !r.OK {
			assert.Equal(t, CheckIncludePath, r.Kind)
			assert.Equal(t, "not a directory", r.Detail)
		}
	}
}

func TestCheckUnknownPlatform(t *testing.T) {
	l, _ := newProject(t)
	assert.Empty(t, Check(platform.Unknown, l))
}
