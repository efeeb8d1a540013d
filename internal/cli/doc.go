// Package cli defines the Cobra command tree for the libstage CLI. Each file
// in this package registers one top-level command with the root command.
// Commands delegate to internal packages for the resolution and staging logic
// and only handle flag parsing, settings and output formatting.
package cli
