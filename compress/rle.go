package compress

import (
	"fmt"

	"github.com/arloliu/bytepack/encoding"
)

// RLECodec adapts the baseline run-length encoder to the Codec interface.
//
// It only recognizes runs of identical bytes, which makes it cheaper to
// encode than MultiCodec but blind to arithmetic sequences, nibble-packable
// values and multi-byte patterns. It exists mainly as the comparison baseline
// for the multi-strategy codec.
type RLECodec struct{}

var _ Codec = (*RLECodec)(nil)

// NewRLECodec creates a new baseline run-length codec instance.
func NewRLECodec() RLECodec {
	return RLECodec{}
}

// Compress encodes the input data using the baseline run-length format.
func (c RLECodec) Compress(data []byte) ([]byte, error) {
	return encoding.EncodeRLE(data), nil
}

// Decompress decodes a baseline run-length stream.
func (c RLECodec) Decompress(data []byte) ([]byte, error) {
	decoded, err := encoding.DecodeRLE(data)
	if err != nil {
		return nil, fmt.Errorf("rle decode failed: %w", err)
	}

	return decoded, nil
}
