package fs

import (
	"fmt"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/tsload/internal/core/ports"
)

var _ ports.Hasher = (*Hasher)(nil)

// Hasher computes xxhash digests of string parts.
type Hasher struct{}

// NewHasher creates a new Hasher.
func NewHasher() *Hasher {
	return &Hasher{}
}

// Sum returns the 16 digit hex digest of parts, each followed by a zero byte.
func (h *Hasher) Sum(parts ...string) string {
	digest := xxhash.New()
	for _, p := range parts {
		_, _ = digest.WriteString(p)
		_, _ = digest.Write([]byte{0}) // Separator
	}
	return fmt.Sprintf("%016x", digest.Sum64())
}
