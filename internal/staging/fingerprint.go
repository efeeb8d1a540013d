package staging

import (
	"fmt"
	"io"
	"os"

	"github.com/cespare/xxhash/v2"
)

// Fingerprint is a comparable content signature of a file.
type Fingerprint struct {
	sum  uint64
	size int64
}

// FingerprintFile streams the file at path through xxHash64.
func FingerprintFile(path string) (Fingerprint, error) {
	f, err := os.Open(path)
	if err != nil {
		return Fingerprint{}, err
	}
	defer f.Close()

	return FingerprintReader(f)
}

// FingerprintReader fingerprints everything readable from r.
func FingerprintReader(r io.Reader) (Fingerprint, error) {
	h := xxhash.New()
	n, err := io.Copy(h, r)
	if err != nil {
		return Fingerprint{}, fmt.Errorf("hashing content: %w", err)
	}
	return Fingerprint{sum: h.Sum64(), size: n}, nil
}

// FingerprintBytes fingerprints an in-memory buffer.
func FingerprintBytes(b []byte) Fingerprint {
	return Fingerprint{sum: xxhash.Sum64(b), size: int64(len(b))}
}

// Size returns the byte length that went into the fingerprint.
func (f Fingerprint) Size() int64 {
	return f.size
}
