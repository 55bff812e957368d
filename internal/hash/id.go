package hash

import "github.com/cespare/xxhash/v2"

// Sum computes the xxHash64 of the given bytes. Used to fingerprint capture
// payloads for deduplication.
func Sum(data []byte) uint64 {
	return xxhash.Sum64(data)
}
