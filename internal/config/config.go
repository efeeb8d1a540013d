package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/mqtt-plugin/libstage/internal/branding"
	"github.com/mqtt-plugin/libstage/internal/layout"
	"github.com/mqtt-plugin/libstage/internal/manifest"
	"github.com/mqtt-plugin/libstage/internal/platform"
)

const (
	fileName = "config"
	fileType = "yaml"
)

// Setting keys. They double as project file keys and, upper-cased with the
// env prefix, as environment variable names.
const (
	KeyPlatform       = "platform"
	KeyModuleRoot     = "module_root"
	KeyProjectRoot    = "project_root"
	KeyThirdPartyRoot = "third_party_root"
	KeyLibrary        = "library"
	KeyLogLevel       = "log_level"
)

// Settings is the resolved configuration for one run.
type Settings struct {
	Platform       string
	ModuleRoot     string
	ProjectRoot    string
	ThirdPartyRoot string
	Library        string
	LogLevel       string
}

// Dir returns the path to the config directory (~/.libstage/).
func Dir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", branding.HomeDir())
	}
	return filepath.Join(home, branding.HomeDir())
}

// FilePath returns the full path to the user config file.
func FilePath() string {
	return filepath.Join(Dir(), fileName+"."+fileType)
}

// EnsureDir creates the config directory if it does not exist.
func EnsureDir() error {
	dir := Dir()
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating config directory %s: %w", dir, err)
	}
	return nil
}

// Load initializes Viper to read from the user config file and environment.
func Load() {
	viper.SetConfigFile(FilePath())
	viper.SetConfigType(fileType)
	viper.SetEnvPrefix(branding.EnvPrefix())
	viper.AutomaticEnv()

	viper.SetDefault(KeyLibrary, branding.DefaultLibrary())
	viper.SetDefault(KeyLogLevel, "info")
	viper.SetDefault(KeyModuleRoot, ".")

	// Ignore error if config file doesn't exist yet.
	_ = viper.ReadInConfig()
}

// MergeProject layers a project file over the user config. An empty path
// looks for the default project file in the working directory and is not an
// error when it is absent; an explicit path must exist. It returns the path
// that was merged, or "" when none was.
func MergeProject(path string) (string, error) {
	explicit := path != ""
	if !explicit {
		path = branding.ProjectFile()
	}

	if _, err := os.Stat(path); err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return "", nil
		}
		return "", fmt.Errorf("reading project file %s: %w", path, err)
	}

	result, err := manifest.ValidateFile(path)
	if err != nil {
		return "", err
	}
	if !result.Valid {
		return "", invalidProject(path, result.Issues)
	}

	p, err := manifest.ParseFile(path)
	if err != nil {
		return "", err
	}

	values := map[string]any{}
	setIf := func(key, val string) {
		if val != "" {
			values[key] = val
		}
	}
	setIf(KeyPlatform, p.Platform)
	setIf(KeyModuleRoot, p.ModuleRoot)
	setIf(KeyProjectRoot, p.ProjectRoot)
	setIf(KeyThirdPartyRoot, p.ThirdPartyRoot)
	setIf(KeyLibrary, p.Library.Name)
	setIf(KeyLogLevel, p.LogLevel)

	if err := viper.MergeConfigMap(values); err != nil {
		return "", fmt.Errorf("merging project file %s: %w", path, err)
	}
	return path, nil
}

// ErrInvalidProject is returned when a project file fails validation.
var ErrInvalidProject = errors.New("invalid project file")

func invalidProject(path string, issues []manifest.ValidationIssue) error {
	msgs := make([]string, 0, len(issues))
	for _, issue := range issues {
		loc := issue.Path
		if loc == "" {
			loc = "/"
		}
		msgs = append(msgs, loc+": "+issue.Message)
	}
	return fmt.Errorf("%w %s: %s", ErrInvalidProject, path, strings.Join(msgs, "; "))
}

// Get returns a config value by key. Returns empty string if not set.
func Get(key string) string {
	return viper.GetString(key)
}

// Set writes a single key to the user config file. Only the keys already in
// that file plus key are persisted; flags, environment overrides and
// defaults never leak into it.
func Set(key, value string) error {
	if err := EnsureDir(); err != nil {
		return err
	}

	configFile := FilePath()

	user := viper.New()
	user.SetConfigFile(configFile)
	user.SetConfigType(fileType)
	if _, err := os.Stat(configFile); err == nil {
		if err := user.ReadInConfig(); err != nil {
			return fmt.Errorf("reading config file %s: %w", configFile, err)
		}
	}
	user.Set(key, value)

	if err := user.WriteConfigAs(configFile); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}

// Current returns the settings as resolved by Viper.
func Current() Settings {
	return Settings{
		Platform:       viper.GetString(KeyPlatform),
		ModuleRoot:     viper.GetString(KeyModuleRoot),
		ProjectRoot:    viper.GetString(KeyProjectRoot),
		ThirdPartyRoot: viper.GetString(KeyThirdPartyRoot),
		Library:        viper.GetString(KeyLibrary),
		LogLevel:       viper.GetString(KeyLogLevel),
	}
}

// Layout returns the filesystem layout described by s.
func (s Settings) Layout() layout.Layout {
	return layout.Layout{
		ModuleRoot:     s.ModuleRoot,
		ProjectRoot:    s.ProjectRoot,
		ThirdPartyRoot: s.ThirdPartyRoot,
		Library:        s.Library,
	}
}

// Target returns the configured platform, or the host platform when none is
// set. ok is false when a name was given but not recognized; the target is
// then platform.Unknown.
func (s Settings) Target() (t platform.Target, ok bool) {
	if s.Platform == "" {
		return platform.Host(), true
	}
	return platform.Parse(s.Platform)
}
