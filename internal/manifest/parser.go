package manifest

import (
	"fmt"
	"os"
	"path/filepath"

	"go.yaml.in/yaml/v3"
)

// ParseFile reads a project file. Relative roots in the file are resolved
// against the file's directory.
func ParseFile(path string) (*Project, error) {
	data, err := readFile(path)
	if err != nil {
		return nil, err
	}

	p, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parsing project file %s: %w", path, err)
	}
	p.resolveRelative(filepath.Dir(path))
	return p, nil
}

// Parse decodes project file content without touching any paths.
func Parse(data []byte) (*Project, error) {
	var p Project
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// resolveRelative joins relative roots onto base.
func (p *Project) resolveRelative(base string) {
	for _, root := range []*string{&p.ModuleRoot, &p.ProjectRoot, &p.ThirdPartyRoot} {
		if *root != "" && !filepath.IsAbs(*root) {
			*root = filepath.Join(base, *root)
		}
	}
}

// readFile reads the contents of a file at the given path.
func readFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading file %s: %w", path, err)
	}
	return data, nil
}
