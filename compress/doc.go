// Package compress provides the codec registry for byte-buffer payloads.
//
// The package unifies two codec families behind a single Codec interface:
//
//  1. Structural codecs built in this module: the multi-strategy codec
//     (Multi) and the baseline run-length codec (RLE). These exploit
//     byte-level structure such as zero padding, arithmetic sequences,
//     sub-16 values and repeating units.
//  2. General-purpose codecs from the compression ecosystem: LZ4, S2 and
//     Zstandard. These exploit statistical redundancy the structural codecs
//     cannot see.
//
// # Architecture
//
// The package defines three core interfaces:
//
//	type Compressor interface {
//	    Compress(data []byte) ([]byte, error)
//	}
//
//	type Decompressor interface {
//	    Decompress(data []byte) ([]byte, error)
//	}
//
//	type Codec interface {
//	    Compressor
//	    Decompressor
//	}
//
// Codecs are selected by format.CodecType, either through the CreateCodec
// factory or the shared instances returned by GetCodec:
//
//	codec, err := compress.GetCodec(format.CodecMulti)
//	if err != nil {
//	    return err
//	}
//	encoded, _ := codec.Compress(payload)
//	decoded, err := codec.Decompress(encoded)
//
// # Codec Selection Guide
//
// | Workload                           | Recommended | Reason                            |
// |------------------------------------|-------------|-----------------------------------|
// | Structured binary records          | Multi       | Detects runs, deltas, patterns    |
// | Simple run-heavy data              | RLE         | Cheapest encoder                  |
// | High-entropy or text payloads      | Zstd        | Best general-purpose ratio        |
// | Real-time ingestion                | S2          | Balanced speed and compression    |
// | Query-heavy, decode-dominated      | LZ4         | Fastest decompression             |
// | Already-compressed or tiny payloads| None        | No overhead                       |
//
// The structural codecs have bounded worst-case expansion (one tag byte per
// literal chunk, roughly 1.6% for Multi and 0.8% for RLE), so they are safe
// to apply unconditionally; the general-purpose codecs carry framing
// overhead that can dominate on very small payloads.
//
// # Thread Safety
//
// All built-in codecs are stateless and safe for concurrent use. Internal
// encoder and decoder state for LZ4 and Zstd is pooled per call.
//
// # Error Handling
//
// Compress never fails for the structural codecs. Decompress returns an
// error when the input is truncated, corrupted, or was produced by a
// different codec; structural codec errors wrap encoding.ErrMalformedStream.
package compress
