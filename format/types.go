package format

// CodecType identifies one of the built-in byte codecs.
type CodecType uint8

const (
	CodecNone  CodecType = 0x1 // CodecNone represents a pass-through codec with no transformation.
	CodecMulti CodecType = 0x2 // CodecMulti represents the multi-strategy byte codec.
	CodecRLE   CodecType = 0x3 // CodecRLE represents the baseline single-mode run-length codec.
	CodecLZ4   CodecType = 0x4 // CodecLZ4 represents LZ4 block compression.
	CodecS2    CodecType = 0x5 // CodecS2 represents S2 compression.
	CodecZstd  CodecType = 0x6 // CodecZstd represents Zstandard compression.
)

func (c CodecType) String() string {
	switch c {
	case CodecNone:
		return "None"
	case CodecMulti:
		return "Multi"
	case CodecRLE:
		return "RLE"
	case CodecLZ4:
		return "LZ4"
	case CodecS2:
		return "S2"
	case CodecZstd:
		return "Zstd"
	default:
		return "Unknown"
	}
}
