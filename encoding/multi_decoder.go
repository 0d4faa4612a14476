package encoding

import (
	"errors"
	"fmt"

	"github.com/arloliu/bytepack/format"
	"github.com/arloliu/bytepack/internal/pool"
)

// ErrMalformedStream indicates that an encoded stream is truncated or
// corrupted: a record's declared length would read past the end of the
// buffer, or a control byte carries a value no encoder emits. The decoder
// fails deterministically instead of reading out of bounds.
var ErrMalformedStream = errors.New("malformed stream")

// DecodeMulti decodes a stream produced by EncodeMulti and returns the
// original bytes as a freshly allocated slice.
//
// The stream is walked record by record; every payload read is bounds-checked
// against the encoded buffer before it happens. A truncated or corrupted
// stream returns ErrMalformedStream (wrapped with the offending record's
// offset) and no output. An empty input decodes to an empty buffer.
func DecodeMulti(encoded []byte) ([]byte, error) {
	if len(encoded) == 0 {
		return nil, nil
	}

	out := pool.GetScratchBuffer()
	defer pool.PutScratchBuffer(out)

	pos := 0
	for pos < len(encoded) {
		n, err := decodeRecord(out, encoded, pos)
		if err != nil {
			return nil, fmt.Errorf("record at offset %d: %w", pos, err)
		}
		pos += n
	}

	return out.CopyBytes(), nil
}

// decodeRecord expands the record starting at pos into out and returns the
// number of encoded bytes consumed. Sentinel bytes are matched by exact
// equality before the 2-bit mode field is inspected.
func decodeRecord(out *pool.ByteBuffer, encoded []byte, pos int) (int, error) {
	control := encoded[pos]

	switch control {
	case format.SentinelZeroRun:
		if pos+1 >= len(encoded) {
			return 0, ErrMalformedStream
		}
		out.MustWriteRepeat(0x00, int(encoded[pos+1]))

		return 2, nil

	case format.SentinelPattern:
		if pos+1 >= len(encoded) {
			return 0, ErrMalformedStream
		}
		info := encoded[pos+1]
		patLen := int(info >> 4)
		repeat := int(info & 0x0F)
		if pos+2+patLen > len(encoded) {
			return 0, ErrMalformedStream
		}
		unit := encoded[pos+2 : pos+2+patLen]
		for i := 0; i < repeat; i++ {
			out.MustWrite(unit)
		}

		return 2 + patLen, nil

	case format.SentinelCommonValue:
		if pos+1 >= len(encoded) {
			return 0, ErrMalformedStream
		}
		info := encoded[pos+1]
		idx := int(info & 0x0F)
		if idx >= len(format.CommonValues) {
			return 0, ErrMalformedStream
		}
		out.MustWriteRepeat(format.CommonValues[idx], int(info>>4))

		return 2, nil

	case format.SentinelReserved:
		// Declared in the format but never emitted by any encoder.
		return 0, ErrMalformedStream
	}

	length := int(control & format.LengthMask)

	switch control & format.ModeMask {
	case format.ModeRLE:
		if pos+1 >= len(encoded) {
			return 0, ErrMalformedStream
		}
		out.MustWriteRepeat(encoded[pos+1], length)

		return 2, nil

	case format.ModeDelta:
		if pos+2 >= len(encoded) {
			return 0, ErrMalformedStream
		}
		start := int(encoded[pos+1])
		delta := int(encoded[pos+2]) - format.DeltaBias
		out.Grow(length)
		for i := 0; i < length; i++ {
			out.MustWriteByte(byte((start + i*delta) & (format.DeltaModulus - 1)))
		}

		return 3, nil

	case format.ModeNibble:
		packed := (length + 1) / 2
		if pos+1+packed > len(encoded) {
			return 0, ErrMalformedStream
		}
		out.Grow(length)
		for i := 0; i < length/2; i++ {
			b := encoded[pos+1+i]
			out.MustWriteByte(b >> 4)
			out.MustWriteByte(b & 0x0F)
		}
		if length%2 == 1 {
			out.MustWriteByte(encoded[pos+packed] >> 4)
		}

		return 1 + packed, nil

	default: // format.ModeLiteral
		if pos+1+length > len(encoded) {
			return 0, ErrMalformedStream
		}
		out.MustWrite(encoded[pos+1 : pos+1+length])

		return 1 + length, nil
	}
}
