package descriptor

import (
	"encoding/json"
	"fmt"
	"io"

	"go.yaml.in/yaml/v3"
)

// Output formats accepted by Write.
const (
	FormatYAML = "yaml"
	FormatJSON = "json"
)

// Write encodes d to w in the given format.
func Write(w io.Writer, d Descriptor, format string) error {
	switch format {
	case FormatYAML, "":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(d); err != nil {
			return fmt.Errorf("encoding descriptor as YAML: %w", err)
		}
		return enc.Close()
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(d); err != nil {
			return fmt.Errorf("encoding descriptor as JSON: %w", err)
		}
		return nil
	default:
		return fmt.Errorf("unknown output format %q (want %s or %s)", format, FormatYAML, FormatJSON)
	}
}
