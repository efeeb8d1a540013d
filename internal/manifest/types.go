package manifest

// Project is the libstage.yaml project file.
type Project struct {
	Library        Library `yaml:"library" json:"library"`
	ModuleRoot     string  `yaml:"module_root" json:"module_root"`
	ProjectRoot    string  `yaml:"project_root,omitempty" json:"project_root,omitempty"`
	ThirdPartyRoot string  `yaml:"third_party_root,omitempty" json:"third_party_root,omitempty"`
	Platform       string  `yaml:"platform,omitempty" json:"platform,omitempty"`
	LogLevel       string  `yaml:"log_level,omitempty" json:"log_level,omitempty"`
}

// Library identifies the prebuilt third-party library.
type Library struct {
	Name string `yaml:"name" json:"name"`
	// Version is informational. It must be valid semver when present but is
	// never compared against anything.
	Version string `yaml:"version,omitempty" json:"version,omitempty"`
}
