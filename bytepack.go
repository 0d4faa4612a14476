// Package bytepack provides a lossless, multi-strategy codec for byte
// buffers with structured content.
//
// Bytepack targets binary payloads where byte-level structure dominates:
// zero padding, counters and other arithmetic sequences, values below 16,
// repeating multi-byte units, and plain runs. Each region of the input is
// encoded with whichever strategy fits it best, record by record, so mixed
// buffers compress well without any configuration.
//
// # Core Features
//
//   - Seven encoding strategies selected per region (zero run, delta
//     sequence, nibble pack, repeating pattern, common-value run, plain RLE,
//     literal fallback)
//   - Bounded worst-case expansion (~1.6%) on incompressible input
//   - Stateless, allocation-pooled encoder and decoder safe for concurrent use
//   - A baseline single-mode RLE codec for comparison
//   - General-purpose codecs (LZ4, S2, Zstd) behind the same interface via
//     the compress package
//   - 64-bit xxHash64 fingerprints for cheap payload identity checks
//
// # Basic Usage
//
//	import "github.com/arloliu/bytepack"
//
//	encoded := bytepack.Encode(payload)
//	decoded, err := bytepack.Decode(encoded)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	// decoded is byte-for-byte identical to payload
//
// Comparing against the baseline codec:
//
//	multi := bytepack.Encode(payload)
//	rle := bytepack.EncodeRLE(payload)
//	fmt.Printf("multi=%d rle=%d raw=%d\n", len(multi), len(rle), len(payload))
//
// # Package Structure
//
// This package provides convenient top-level wrappers around the encoding
// package, simplifying the most common use cases. For codec selection by
// type, buffer pooling, and the general-purpose algorithms, use the compress
// package directly.
package bytepack

import (
	"github.com/arloliu/bytepack/encoding"
	"github.com/arloliu/bytepack/internal/hash"
)

// Encode encodes data with the multi-strategy codec.
//
// The returned slice is newly allocated and owned by the caller; the input
// is not modified. Encoding never fails: input without recognizable
// structure passes through as literal records with about 1.6% overhead. An
// empty input encodes to an empty stream.
func Encode(data []byte) []byte {
	return encoding.EncodeMulti(data)
}

// Decode decodes a stream produced by Encode and returns the original
// bytes.
//
// Returns an error wrapping encoding.ErrMalformedStream when the stream is
// truncated or carries an invalid record. Decoding a valid stream always
// reproduces the encoded input exactly.
func Decode(encoded []byte) ([]byte, error) {
	return encoding.DecodeMulti(encoded)
}

// EncodeRLE encodes data with the baseline single-mode run-length codec.
//
// The baseline codec only recognizes runs of identical bytes. It encodes
// faster than Encode but misses arithmetic sequences, nibble-packable
// values, and multi-byte patterns; it exists mainly as a comparison
// baseline.
func EncodeRLE(data []byte) []byte {
	return encoding.EncodeRLE(data)
}

// DecodeRLE decodes a stream produced by EncodeRLE.
func DecodeRLE(encoded []byte) ([]byte, error) {
	return encoding.DecodeRLE(encoded)
}

// Fingerprint returns the 64-bit xxHash64 fingerprint of data.
//
// Fingerprints identify payloads across encode/decode boundaries: equal
// buffers always produce equal fingerprints, so comparing the fingerprint
// of a decoded buffer against the original is a cheap integrity check.
//
// The hash is not cryptographic; do not use it where an adversary controls
// the input.
func Fingerprint(data []byte) uint64 {
	return hash.Fingerprint(data)
}
