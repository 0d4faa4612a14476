package main

import (
	"bytes"
	"fmt"
	"time"

	"github.com/arloliu/bytepack"
	"github.com/arloliu/bytepack/compress"
	"github.com/arloliu/bytepack/format"
)

// MeasuredCodecs lists the codecs the harness compares, in report order.
var MeasuredCodecs = []format.CodecType{
	format.CodecMulti,
	format.CodecRLE,
	format.CodecLZ4,
	format.CodecS2,
	format.CodecZstd,
}

// MeasurementResult holds the outcome of measuring one codec on one payload.
type MeasurementResult struct {
	Codec        format.CodecType
	Pattern      string
	OriginalSize int
	EncodedSize  int
	EncodeTime   time.Duration // Average over Config.Iterations
	DecodeTime   time.Duration // Average over Config.Iterations
	Verified     bool          // Round-trip matched the original payload
}

// CompressionRatio returns encoded size over original size.
func (r MeasurementResult) CompressionRatio() float64 {
	if r.OriginalSize == 0 {
		return 0.0
	}

	return float64(r.EncodedSize) / float64(r.OriginalSize)
}

// SavingsPercent returns the space savings as a percentage.
func (r MeasurementResult) SavingsPercent() float64 {
	return (1.0 - r.CompressionRatio()) * 100.0
}

// EncodeThroughput returns the encode throughput in MB/s.
func (r MeasurementResult) EncodeThroughput() float64 {
	if r.EncodeTime <= 0 {
		return 0.0
	}

	return float64(r.OriginalSize) / r.EncodeTime.Seconds() / (1024 * 1024)
}

// MeasureCodec runs one codec over one payload, timing encode and decode and
// verifying the round-trip both byte-for-byte and by fingerprint.
func MeasureCodec(codecType format.CodecType, pattern string, data []byte, iterations int) (MeasurementResult, error) {
	codec, err := compress.GetCodec(codecType)
	if err != nil {
		return MeasurementResult{}, err
	}

	result := MeasurementResult{
		Codec:        codecType,
		Pattern:      pattern,
		OriginalSize: len(data),
	}

	var encoded []byte
	start := time.Now()
	for i := 0; i < iterations; i++ {
		encoded, err = codec.Compress(data)
		if err != nil {
			return result, fmt.Errorf("%s encode failed: %w", codecType, err)
		}
	}
	result.EncodeTime = time.Since(start) / time.Duration(iterations)
	result.EncodedSize = len(encoded)

	var decoded []byte
	start = time.Now()
	for i := 0; i < iterations; i++ {
		decoded, err = codec.Decompress(encoded)
		if err != nil {
			return result, fmt.Errorf("%s decode failed: %w", codecType, err)
		}
	}
	result.DecodeTime = time.Since(start) / time.Duration(iterations)

	result.Verified = bytes.Equal(data, decoded) &&
		bytepack.Fingerprint(data) == bytepack.Fingerprint(decoded)
	if !result.Verified {
		return result, fmt.Errorf("%s round-trip mismatch on %s payload", codecType, pattern)
	}

	return result, nil
}

// MeasurePatternSuite measures every codec against every synthetic pattern
// at the given payload size.
func MeasurePatternSuite(size int, iterations int, seed int64) ([]MeasurementResult, error) {
	results := make([]MeasurementResult, 0, len(PatternNames)*len(MeasuredCodecs))

	for _, pattern := range PatternNames {
		data := GeneratePattern(pattern, size, seed)
		for _, ct := range MeasuredCodecs {
			result, err := MeasureCodec(ct, pattern, data, iterations)
			if err != nil {
				return nil, err
			}
			results = append(results, result)
		}
	}

	return results, nil
}

// MeasureSizeScaling measures the multi-strategy codec across payload sizes
// on the mixed pattern.
func MeasureSizeScaling(sizes []int, iterations int, seed int64) ([]MeasurementResult, error) {
	results := make([]MeasurementResult, 0, len(sizes))

	for _, size := range sizes {
		data := GeneratePattern("mixed", size, seed)
		result, err := MeasureCodec(format.CodecMulti, "mixed", data, iterations)
		if err != nil {
			return nil, err
		}
		results = append(results, result)
	}

	return results, nil
}
