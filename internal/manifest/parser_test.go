package manifest

import (
	"path/filepath"
	"testing"
)

const testdataDir = "testdata"

func testPath(name string) string {
	return filepath.Join(testdataDir, name)
}

func TestParseFile_Fields(t *testing.T) {
	p, err := ParseFile(testPath("valid-project.yaml"))
	if err != nil {
		t.Fatalf("ParseFile error: %v", err)
	}
	if p.Library.Name != "PahoMQTT" {
		t.Errorf("Library.Name = %q, want %q", p.Library.Name, "PahoMQTT")
	}
	if p.Library.Version != "1.3.13" {
		t.Errorf("Library.Version = %q, want %q", p.Library.Version, "1.3.13")
	}
	if p.Platform != "Win64" {
		t.Errorf("Platform = %q, want %q", p.Platform, "Win64")
	}
	if p.LogLevel != "info" {
		t.Errorf("LogLevel = %q, want %q", p.LogLevel, "info")
	}
}

func TestParseFile_ResolvesRelativeRoots(t *testing.T) {
	p, err := ParseFile(testPath("valid-project.yaml"))
	if err != nil {
		t.Fatalf("ParseFile error: %v", err)
	}
	wantModule := filepath.Join(testdataDir, "Plugins", "MQTT", "Source", "MQTTPlugin")
	if p.ModuleRoot != wantModule {
		t.Errorf("ModuleRoot = %q, want %q", p.ModuleRoot, wantModule)
	}
	if p.ProjectRoot != testdataDir {
		t.Errorf("ProjectRoot = %q, want %q", p.ProjectRoot, testdataDir)
	}
	if p.ThirdPartyRoot != "" {
		t.Errorf("ThirdPartyRoot = %q, want empty", p.ThirdPartyRoot)
	}
}

func TestParseFile_KeepsAbsoluteRoots(t *testing.T) {
	p, err := ParseFile(testPath("valid-minimal.yaml"))
	if err != nil {
		t.Fatalf("ParseFile error: %v", err)
	}
	if p.ModuleRoot != "/opt/game/Plugins/MQTT/Source/MQTTPlugin" && filepath.Separator == '/' {
		t.Errorf("ModuleRoot = %q, want absolute path unchanged", p.ModuleRoot)
	}
}

func TestParseFile_NotFound(t *testing.T) {
	_, err := ParseFile(testPath("nonexistent.yaml"))
	if err == nil {
		t.Fatal("expected error for nonexistent file, got nil")
	}
}

func TestParseFile_InvalidYAML(t *testing.T) {
	_, err := ParseFile(testPath("invalid-not-yaml.yaml"))
	if err == nil {
		t.Fatal("expected error for invalid YAML, got nil")
	}
}

func TestParse_Empty(t *testing.T) {
	p, err := Parse(nil)
	if err != nil {
		t.Fatalf("Parse(nil) error: %v", err)
	}
	if p.ModuleRoot != "" || p.Library.Name != "" {
		t.Errorf("expected zero project, got %+v", p)
	}
}
