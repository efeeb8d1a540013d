// Package config resolves libstage settings from, in decreasing precedence,
// command-line flags, LIBSTAGE_* environment variables, the libstage.yaml
// project file and the user config at ~/.libstage/config.yaml.
package config
