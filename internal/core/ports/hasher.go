package ports

// Hasher computes content digests.
//
//go:generate mockgen -source=hasher.go -destination=mocks/mock_hasher.go -package=mocks
type Hasher interface {
	// Sum returns a hex digest of parts. Part boundaries are significant.
	Sum(parts ...string) string
}
