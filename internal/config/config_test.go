package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/viper"
	"go.yaml.in/yaml/v3"

	"github.com/mqtt-plugin/libstage/internal/platform"
)

// setup isolates viper, HOME and the working directory for one test.
func setup(t *testing.T) string {
	t.Helper()
	viper.Reset()
	t.Cleanup(viper.Reset)

	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("USERPROFILE", home)
	for _, key := range []string{KeyPlatform, KeyModuleRoot, KeyProjectRoot, KeyThirdPartyRoot, KeyLibrary, KeyLogLevel} {
		name := "LIBSTAGE_" + strings.ToUpper(key)
		t.Setenv(name, "")
		os.Unsetenv(name)
	}

	work := t.TempDir()
	chdir(t, work)
	return work
}

func writeProject(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, "libstage.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadDefaults(t *testing.T) {
	setup(t)
	Load()

	s := Current()
	if s.Library != "PahoMQTT" {
		t.Errorf("Library = %q, want PahoMQTT", s.Library)
	}
	if s.LogLevel != "info" {
		t.Errorf("LogLevel = %q, want info", s.LogLevel)
	}
	if s.ModuleRoot != "." {
		t.Errorf("ModuleRoot = %q, want .", s.ModuleRoot)
	}
}

func TestSetWritesUserConfig(t *testing.T) {
	setup(t)
	Load()

	if err := Set(KeyLibrary, "Mosquitto"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if _, err := os.Stat(FilePath()); err != nil {
		t.Fatalf("config file not written: %v", err)
	}

	viper.Reset()
	Load()
	if got := Get(KeyLibrary); got != "Mosquitto" {
		t.Errorf("Get(library) after reload = %q, want Mosquitto", got)
	}
}

func TestEnvOverridesUserConfig(t *testing.T) {
	setup(t)
	Load()
	if err := Set(KeyPlatform, "linux"); err != nil {
		t.Fatalf("Set: %v", err)
	}

	viper.Reset()
	t.Setenv("LIBSTAGE_PLATFORM", "win64")
	Load()

	if got := Current().Platform; got != "win64" {
		t.Errorf("Platform = %q, want win64", got)
	}
}

func TestMergeProjectDefaultFile(t *testing.T) {
	work := setup(t)
	writeProject(t, work, "library:\n  name: PahoMQTT-1.3\nmodule_root: Source/MQTTPlugin\nplatform: android-x86\n")
	Load()

	path, err := MergeProject("")
	if err != nil {
		t.Fatalf("MergeProject: %v", err)
	}
	if path != "libstage.yaml" {
		t.Errorf("merged path = %q, want libstage.yaml", path)
	}

	s := Current()
	if s.Library != "PahoMQTT-1.3" {
		t.Errorf("Library = %q, want PahoMQTT-1.3", s.Library)
	}
	if s.ModuleRoot != filepath.Join("Source", "MQTTPlugin") {
		t.Errorf("ModuleRoot = %q", s.ModuleRoot)
	}
	target, ok := s.Target()
	if !ok || target != platform.AndroidX86 {
		t.Errorf("Target() = (%v, %v), want AndroidX86", target, ok)
	}
}

func TestMergeProjectAbsentDefaultIsNotAnError(t *testing.T) {
	setup(t)
	Load()

	path, err := MergeProject("")
	if err != nil {
		t.Fatalf("MergeProject: %v", err)
	}
	if path != "" {
		t.Errorf("merged path = %q, want empty", path)
	}
}

func TestMergeProjectExplicitMissing(t *testing.T) {
	work := setup(t)
	Load()

	if _, err := MergeProject(filepath.Join(work, "other.yaml")); err == nil {
		t.Error("expected error for missing explicit project file")
	}
}

func TestEnvOverridesProjectFile(t *testing.T) {
	work := setup(t)
	writeProject(t, work, "module_root: Source/MQTTPlugin\nplatform: linux\n")
	t.Setenv("LIBSTAGE_PLATFORM", "win64")
	Load()

	if _, err := MergeProject(""); err != nil {
		t.Fatalf("MergeProject: %v", err)
	}
	if got := Current().Platform; got != "win64" {
		t.Errorf("Platform = %q, want win64", got)
	}
}

func TestSettingsTarget(t *testing.T) {
	if got, ok := (Settings{}).Target(); !ok || got != platform.Host() {
		t.Errorf("empty platform = (%v, %v), want host", got, ok)
	}
	if got, ok := (Settings{Platform: "Linux"}).Target(); !ok || got != platform.Linux {
		t.Errorf("Linux = (%v, %v)", got, ok)
	}
	if got, ok := (Settings{Platform: "switch"}).Target(); ok || got != platform.Unknown {
		t.Errorf("switch = (%v, %v), want (Unknown, false)", got, ok)
	}
}

func TestSettingsLayout(t *testing.T) {
	s := Settings{ModuleRoot: "/m", ProjectRoot: "/p", ThirdPartyRoot: "/tp", Library: "Lib"}
	l := s.Layout()
	if l.ModuleRoot != "/m" || l.ProjectRoot != "/p" || l.ThirdPartyRoot != "/tp" || l.Library != "Lib" {
		t.Errorf("Layout() = %+v", l)
	}
}

func TestSetPersistsOnlyTheGivenKey(t *testing.T) {
	setup(t)
	if err := os.MkdirAll(Dir(), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(FilePath(), []byte("log_level: debug\n"), 0644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("LIBSTAGE_PLATFORM", "linux")
	Load()
	viper.Set(KeyModuleRoot, "/from/flag")

	if err := Set(KeyLibrary, "Foo"); err != nil {
		t.Fatalf("Set: %v", err)
	}

	data, err := os.ReadFile(FilePath())
	if err != nil {
		t.Fatal(err)
	}
	var saved map[string]any
	if err := yaml.Unmarshal(data, &saved); err != nil {
		t.Fatalf("decoding %s: %v", FilePath(), err)
	}
	want := map[string]any{"library": "Foo", "log_level": "debug"}
	if len(saved) != len(want) {
		t.Fatalf("saved keys = %v, want %v", saved, want)
	}
	for k, v := range want {
		if saved[k] != v {
			t.Errorf("saved[%s] = %v, want %v", k, saved[k], v)
		}
	}
}

func TestMergeProjectRejectsInvalidFile(t *testing.T) {
	work := setup(t)
	writeProject(t, work, "library:\n  name: ../../../etc\nmodule_root: Source/MQTTPlugin\nbogus: 1\n")
	Load()

	path, err := MergeProject("")
	if !errors.Is(err, ErrInvalidProject) {
		t.Fatalf("MergeProject error = %v, want ErrInvalidProject", err)
	}
	if path != "" {
		t.Errorf("merged path = %q, want empty", path)
	}
	for _, loc := range []string{"/library/name", "bogus"} {
		if !strings.Contains(err.Error(), loc) {
			t.Errorf("error %q does not mention %s", err, loc)
		}
	}
	if got := Current().Library; got != "PahoMQTT" {
		t.Errorf("Library = %q, want default PahoMQTT", got)
	}
}

func TestMergeProjectRejectsUnknownPlatform(t *testing.T) {
	work := setup(t)
	writeProject(t, work, "module_root: Source/MQTTPlugin\nplatform: ps5\n")
	Load()

	if _, err := MergeProject(""); !errors.Is(err, ErrInvalidProject) {
		t.Fatalf("MergeProject error = %v, want ErrInvalidProject", err)
	}
}
