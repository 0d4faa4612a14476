package hash

import "github.com/cespare/xxhash/v2"

// Fingerprint computes the xxHash64 of the given buffer.
//
// It is used to verify round-trips cheaply: comparing two fingerprints avoids
// holding both buffers when only equality matters.
func Fingerprint(data []byte) uint64 {
	return xxhash.Sum64(data)
}
