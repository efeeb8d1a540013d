package staging

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/mqtt-plugin/libstage/internal/logging"
	"github.com/mqtt-plugin/libstage/internal/platform"
)

// Outcome describes what Stage found at the destination.
type Outcome string

const (
	// OutcomeMissing means no staged copy existed; the artifact was copied.
	OutcomeMissing Outcome = "missing"
	// OutcomeMatch means the staged copy is identical; nothing was copied.
	OutcomeMatch Outcome = "match"
	// OutcomeStale means the staged copy differed and was overwritten.
	OutcomeStale Outcome = "stale"
)

// Record is the result of staging one artifact.
type Record struct {
	Source      string  `json:"source"`
	Destination string  `json:"destination"`
	Copied      bool    `json:"copied"`
	Outcome     Outcome `json:"outcome"`
	Size        int64   `json:"size"`
}

// Stager stages artifacts and reports what it did through a logger.
type Stager struct {
	log *slog.Logger
}

// New returns a Stager logging to log. A nil logger uses the global one.
func New(log *slog.Logger) *Stager {
	if log == nil {
		log = logging.Logger()
	}
	return &Stager{log: log}
}

// Stage makes destDir/<base name of src> identical to src.
//
// destDir is made absolute and created with any missing parents. If a file
// already exists at the destination and its fingerprint matches the source,
// nothing is copied. Otherwise the source is copied over the destination.
func (s *Stager) Stage(src, destDir string) (*Record, error) {
	dir, err := ensureDir(destDir)
	if err != nil {
		return nil, err
	}

	srcInfo, err := os.Stat(src)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrMissingSource, src)
		}
		return nil, fmt.Errorf("reading source artifact %s: %w", src, err)
	}
	if !srcInfo.Mode().IsRegular() {
		return nil, fmt.Errorf("source artifact %s is not a regular file", src)
	}

	rec := &Record{
		Source:      src,
		Destination: filepath.Join(dir, filepath.Base(src)),
		Outcome:     OutcomeMissing,
		Size:        srcInfo.Size(),
	}

	destInfo, err := os.Stat(rec.Destination)
	switch {
	case err == nil:
		if destInfo.IsDir() {
			return nil, fmt.Errorf("destination %s is a directory", rec.Destination)
		}
		same, err := sameContent(src, rec.Destination)
		if err != nil {
			return nil, err
		}
		if same {
			rec.Outcome = OutcomeMatch
			s.log.Debug("artifact up to date", "artifact", rec.Destination)
			return rec, nil
		}
		rec.Outcome = OutcomeStale
		s.log.Info("outdated artifact detected", "artifact", rec.Destination)
	case errors.Is(err, fs.ErrNotExist):
		// Nothing staged yet.
	default:
		return nil, fmt.Errorf("checking staged artifact %s: %w", rec.Destination, err)
	}

	if err := copyFile(src, rec.Destination); err != nil {
		return nil, fmt.Errorf("copying %s to %s: %w", src, rec.Destination, err)
	}
	rec.Copied = true
	s.log.Info("copied artifact", "from", src, "to", rec.Destination)

	return rec, nil
}

// StageAll stages every source into destDir in order and stops at the first
// error. Records for artifacts staged before the failure are returned with it.
func (s *Stager) StageAll(srcs []string, destDir string) ([]*Record, error) {
	records := make([]*Record, 0, len(srcs))
	for _, src := range srcs {
		rec, err := s.Stage(src, destDir)
		if err != nil {
			return records, err
		}
		records = append(records, rec)
	}
	return records, nil
}

// Stage stages src into destDir using the global logger.
func Stage(src, destDir string) (*Record, error) {
	return New(nil).Stage(src, destDir)
}

// ensureDir resolves dir to an absolute path and creates it if absent.
func ensureDir(dir string) (string, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("%w %s: %w", ErrCreateDir, dir, err)
	}
	if err := os.MkdirAll(abs, 0755); err != nil {
		return "", fmt.Errorf("%w %s: %w", ErrCreateDir, abs, err)
	}
	return abs, nil
}

// sameContent compares the fingerprints of two files.
func sameContent(a, b string) (bool, error) {
	fa, err := FingerprintFile(a)
	if err != nil {
		return false, fmt.Errorf("fingerprinting %s: %w", a, err)
	}
	fb, err := FingerprintFile(b)
	if err != nil {
		return false, fmt.Errorf("fingerprinting %s: %w", b, err)
	}
	return fa == fb, nil
}

// copyFile copies src over dst through a temporary file in dst's directory,
// preserving the source permissions.
func copyFile(src, dst string) (err error) {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	tmp, err := os.CreateTemp(filepath.Dir(dst), "."+filepath.Base(dst)+".tmp-*")
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			tmp.Close()
			os.Remove(tmp.Name())
		}
	}()

	if _, err = io.Copy(tmp, in); err != nil {
		return err
	}
	if err = tmp.Close(); err != nil {
		return err
	}
	if err = platform.CopyMode(src, tmp.Name()); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), dst)
}
