// Package manifest parses and validates the libstage.yaml project file, which
// records where a plugin module lives, which prebuilt library it consumes and
// the default target platform. Validation runs against an embedded JSON
// schema followed by semantic checks the schema cannot express (semver
// syntax of the library version, known platform names).
package manifest
