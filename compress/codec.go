package compress

import (
	"fmt"

	"github.com/arloliu/bytepack/format"
)

// Compressor compresses byte-buffer payloads.
//
// Implementations cover two families of codecs:
//   - Structural codecs (Multi, RLE): exploit byte-level structure such as
//     runs, arithmetic sequences and repeating units, and are always lossless
//     and self-contained
//   - General-purpose codecs (LZ4, S2, Zstd): entropy coders applied when the
//     payload has redundancy the structural codecs cannot see
type Compressor interface {
	// Compress compresses the input data and returns the compressed result.
	//
	// Memory management:
	//   - Returned slice is newly allocated and owned by the caller
	//   - Input slice is not modified
	//   - Internal buffers may be reused for efficiency
	Compress(data []byte) ([]byte, error)
}

// Decompressor restores payloads produced by the matching Compressor.
//
// Separate interfaces allow asymmetric implementations where compression and
// decompression have different performance characteristics or resource
// requirements.
//
// Thread Safety: Decompressor implementations must be safe for concurrent use
// or document their thread safety requirements clearly.
type Decompressor interface {
	// Decompress decompresses the input data and returns the original result.
	//
	// The input data must have been produced by the same codec. The
	// decompressor validates the stream and returns an error if the data is
	// corrupted or uses an incompatible format.
	//
	// Memory management:
	//   - Returned slice is newly allocated and owned by the caller
	//   - Input slice is not modified
	//   - Internal buffers may be reused for efficiency
	Decompress(data []byte) ([]byte, error)
}

// Codec combines both compression and decompression capabilities.
type Codec interface {
	Compressor
	Decompressor
}

// CodecStats provides detailed information about codec operations.
//
// This is useful for monitoring, profiling, and comparing codecs against each
// other on a given workload.
type CodecStats struct {
	// Codec identifies the codec used
	Codec format.CodecType

	// OriginalSize is the size of input data before encoding
	OriginalSize int64

	// EncodedSize is the size of data after encoding
	EncodedSize int64

	// EncodeTimeNs is the time taken to encode the data
	EncodeTimeNs int64

	// DecodeTimeNs is the time taken to decode the data (if applicable)
	DecodeTimeNs int64
}

// CompressionRatio returns the ratio of encoded size to original size.
//
// Values less than 1.0 indicate successful compression.
// Values greater than 1.0 indicate expansion, which structural codecs bound
// to roughly 1.6% of the input in the worst case.
//
// Returns:
//   - float64: Compression ratio (0.0 if original size is zero)
func (s CodecStats) CompressionRatio() float64 {
	if s.OriginalSize == 0 {
		return 0.0
	}

	return float64(s.EncodedSize) / float64(s.OriginalSize)
}

// SpaceSavings returns the space savings as a percentage (0-100%).
//
// Higher values indicate better compression.
func (s CodecStats) SpaceSavings() float64 {
	return (1.0 - s.CompressionRatio()) * 100.0
}

// CreateCodec is a factory function that creates a Codec based on the
// specified codec type.
//
// Parameters:
//   - codecType: Type of codec (None, Multi, RLE, LZ4, S2, or Zstd)
//   - target: Description of target usage (for error messages)
//
// Returns:
//   - Codec: Codec instance for the specified type
//   - error: Invalid codec type error
func CreateCodec(codecType format.CodecType, target string) (Codec, error) {
	switch codecType {
	case format.CodecNone:
		return NewNoOpCodec(), nil
	case format.CodecMulti:
		return NewMultiCodec(), nil
	case format.CodecRLE:
		return NewRLECodec(), nil
	case format.CodecLZ4:
		return NewLZ4Codec(), nil
	case format.CodecS2:
		return NewS2Codec(), nil
	case format.CodecZstd:
		return NewZstdCodec(), nil
	default:
		return nil, fmt.Errorf("invalid %s codec: %s", target, codecType)
	}
}

var builtinCodecs = map[format.CodecType]Codec{
	format.CodecNone:  NewNoOpCodec(),
	format.CodecMulti: NewMultiCodec(),
	format.CodecRLE:   NewRLECodec(),
	format.CodecLZ4:   NewLZ4Codec(),
	format.CodecS2:    NewS2Codec(),
	format.CodecZstd:  NewZstdCodec(),
}

// GetCodec retrieves a built-in Codec for the specified codec type.
//
// All built-in codecs are stateless and safe for concurrent use, so the
// returned instances are shared.
func GetCodec(codecType format.CodecType) (Codec, error) {
	if codec, ok := builtinCodecs[codecType]; ok {
		return codec, nil
	}

	return nil, fmt.Errorf("unsupported codec type: %s", codecType)
}
