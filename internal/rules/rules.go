// Package rules runs one build-configuration pass: it resolves the library
// descriptor for a target, stages the runtime artifacts the target needs and
// returns the paths the host build must register as runtime dependencies.
package rules

import (
	"fmt"

	"github.com/mqtt-plugin/libstage/internal/descriptor"
	"github.com/mqtt-plugin/libstage/internal/layout"
	"github.com/mqtt-plugin/libstage/internal/logging"
	"github.com/mqtt-plugin/libstage/internal/platform"
	"github.com/mqtt-plugin/libstage/internal/staging"
)

// Stager copies artifacts into a destination directory.
type Stager interface {
	StageAll(srcs []string, destDir string) ([]*staging.Record, error)
}

// Result is what a configuration pass hands back to the host build.
type Result struct {
	Target              platform.Target       `json:"platform"`
	Descriptor          descriptor.Descriptor `json:"descriptor"`
	BinariesDir         string                `json:"binaries_dir,omitempty"`
	RuntimeDependencies []string              `json:"runtime_dependencies"`
	Records             []*staging.Record     `json:"records,omitempty"`
}

// Configure resolves t against l and stages its artifacts with s.
// Any staging failure aborts the pass.
func Configure(t platform.Target, l layout.Layout, s Stager) (*Result, error) {
	d := descriptor.Resolve(t, l)
	res := &Result{
		Target:              t,
		Descriptor:          d,
		RuntimeDependencies: []string{},
	}

	if !t.Supported() {
		logging.Debug("platform not supported, nothing to configure", "platform", t.ID())
		return res, nil
	}
	if !d.NeedsStaging() {
		logging.Debug("no artifacts to stage", "platform", t.ID())
		return res, nil
	}

	res.BinariesDir = l.BinariesDir(t)
	records, err := s.StageAll(d.Artifacts, res.BinariesDir)
	if err != nil {
		return nil, fmt.Errorf("staging %s artifacts: %w", t, err)
	}

	res.Records = records
	for _, rec := range records {
		res.RuntimeDependencies = append(res.RuntimeDependencies, rec.Destination)
	}
	return res, nil
}

// Copied returns how many records performed a copy.
func (r *Result) Copied() int {
	n := 0
	for _, rec := range r.Records {
		if rec.Copied {
			n++
		}
	}
	return n
}
