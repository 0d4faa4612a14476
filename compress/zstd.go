package compress

// ZstdCodec compresses payloads with Zstandard.
//
// This codec is designed for scenarios where compression ratio is more
// important than compression speed, making it ideal for:
//   - Cold storage and archival of encoded payloads
//   - Network transmission where bandwidth is limited
//   - Scenarios where decompression happens infrequently
//
// Two implementations exist behind build tags: the default pure-Go encoder,
// and a cgo binding selected with the gozstd build tag for maximum
// throughput.
type ZstdCodec struct{}

var _ Codec = (*ZstdCodec)(nil)

// NewZstdCodec creates a new Zstd codec with default settings.
//
// Example:
//
//	codec := NewZstdCodec()
//	compressed, err := codec.Compress(data)
//	if err != nil {
//		return err
//	}
func NewZstdCodec() ZstdCodec {
	return ZstdCodec{}
}
