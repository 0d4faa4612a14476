package encoding

import (
	"fmt"

	"github.com/arloliu/bytepack/internal/pool"
)

// Baseline run-length wire format: one control byte per record. The high bit
// selects run mode with a 7-bit run length (2-127) followed by the value
// byte; otherwise the control byte is a literal count (1-127) followed by
// that many raw bytes.
const (
	rleFlag       = 0x80
	rleLengthMask = 0x7F
	rleMinRun     = 2
	rleMaxRun     = 127
)

// EncodeRLE encodes data with the baseline single-mode run-length codec.
//
// Any run of at least 2 identical bytes becomes a 2-byte run record; other
// bytes accumulate into literal records, with a lookahead so an upcoming run
// is never swallowed into a literal. This is the comparison baseline for the
// multi-strategy codec: cheaper to encode, but blind to deltas, nibbles, and
// multi-byte patterns.
func EncodeRLE(data []byte) []byte {
	if len(data) == 0 {
		return nil
	}

	buf := pool.GetPacketBuffer()
	defer pool.PutPacketBuffer(buf)
	buf.Grow(len(data) + len(data)/rleMaxRun + 1)

	pos := 0
	for pos < len(data) {
		runLen := rleRunLength(data, pos)
		if runLen >= rleMinRun {
			buf.MustWrite([]byte{rleFlag | byte(runLen), data[pos]})
			pos += runLen

			continue
		}

		n := 1
		for pos+n < len(data) && n < rleMaxRun && rleRunLength(data, pos+n) < rleMinRun {
			n++
		}
		buf.Grow(1 + n)
		buf.MustWriteByte(byte(n))
		buf.MustWrite(data[pos : pos+n])
		pos += n
	}

	return buf.CopyBytes()
}

// DecodeRLE decodes a stream produced by EncodeRLE.
//
// Returns ErrMalformedStream when a record's declared length would read past
// the end of the encoded buffer.
func DecodeRLE(encoded []byte) ([]byte, error) {
	if len(encoded) == 0 {
		return nil, nil
	}

	out := pool.GetScratchBuffer()
	defer pool.PutScratchBuffer(out)

	pos := 0
	for pos < len(encoded) {
		control := encoded[pos]
		if control&rleFlag != 0 {
			if pos+1 >= len(encoded) {
				return nil, fmt.Errorf("record at offset %d: %w", pos, ErrMalformedStream)
			}
			out.MustWriteRepeat(encoded[pos+1], int(control&rleLengthMask))
			pos += 2

			continue
		}

		count := int(control)
		if pos+1+count > len(encoded) {
			return nil, fmt.Errorf("record at offset %d: %w", pos, ErrMalformedStream)
		}
		out.MustWrite(encoded[pos+1 : pos+1+count])
		pos += 1 + count
	}

	return out.CopyBytes(), nil
}

// rleRunLength counts consecutive bytes equal to data[pos], capped at the
// 7-bit run length field.
func rleRunLength(data []byte, pos int) int {
	n := 1
	for pos+n < len(data) && n < rleMaxRun && data[pos+n] == data[pos] {
		n++
	}

	return n
}
