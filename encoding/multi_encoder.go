package encoding

import (
	"github.com/arloliu/bytepack/format"
	"github.com/arloliu/bytepack/internal/pool"
)

// EncodeMulti encodes data with the multi-strategy codec and returns the
// encoded stream as a freshly allocated slice.
//
// At each position the encoder queries the strategy detectors in priority
// order and emits one record for the first applicable strategy:
//
//  1. Zero run (>=3 zero bytes)
//  2. Delta sequence (>=3 bytes, step in [-15, 15])
//  3. Nibble pack (>=4 bytes below 16)
//  4. Repeating pattern, when it beats the run record covering the same span
//  5. Plain run (>=3 identical bytes), using the shorter common-value form
//     when the byte is in format.CommonValues and the run fits 4 bits
//  6. Literal fallback, stopping before any span a higher strategy could
//     compress
//
// Encoding never fails. Worst-case expansion is one tag byte per 63-byte
// literal chunk, roughly len(data)/63 bytes of overhead; callers must not
// assume the output is smaller than the input. An empty input encodes to an
// empty stream.
func EncodeMulti(data []byte) []byte {
	if len(data) == 0 {
		return nil
	}

	buf := pool.GetPacketBuffer()
	defer pool.PutPacketBuffer(buf)

	// Worst case is literal records back to back: 1 tag byte per chunk.
	buf.Grow(len(data) + len(data)/format.MaxBaseLength + 1)

	pos := 0
	for pos < len(data) {
		pos += encodeRecord(buf, data, pos)
	}

	return buf.CopyBytes()
}

// encodeRecord emits one record for the span starting at pos and returns the
// number of input bytes consumed. It always consumes at least one byte.
func encodeRecord(buf *pool.ByteBuffer, data []byte, pos int) int {
	if data[pos] == 0x00 {
		if n := zeroRunLength(data, pos); n >= format.MinZeroRun {
			buf.MustWrite([]byte{format.SentinelZeroRun, byte(n)})
			return n
		}
	}

	if delta, n, ok := deltaSequence(data, pos); ok {
		n = clampDeltaLength(n)
		buf.MustWrite([]byte{
			format.ModeDelta | byte(n),
			data[pos],
			byte(delta + format.DeltaBias),
		})

		return n
	}

	if n := nibbleRunLength(data, pos); n >= format.MinNibbleCount {
		buf.Grow(1 + (n+1)/2)
		buf.MustWriteByte(format.ModeNibble | byte(n))
		for i := 0; i+1 < n; i += 2 {
			buf.MustWriteByte(data[pos+i]<<4 | data[pos+i+1])
		}
		if n%2 == 1 {
			// Odd count: final nibble rides the high half, low half zero.
			buf.MustWriteByte(data[pos+n-1] << 4)
		}

		return n
	}

	runLen := plainRunLength(data, pos)

	// A uniform run also looks like a repeating pattern, so the two compete
	// on bytes saved; the run record wins ties because it is cheaper to
	// decode.
	if pat, ok := findPattern(data, pos); ok && pat.Saved() > runSaved(runLen) {
		buf.MustWrite([]byte{format.SentinelPattern, byte(pat.Length<<4 | pat.Count)})
		buf.MustWrite(pat.Unit)

		return pat.Length * pat.Count
	}

	if runLen >= format.MinRunLength {
		if idx := format.CommonValueIndex(data[pos]); idx >= 0 && runLen <= format.MaxCommonRun {
			buf.MustWrite([]byte{format.SentinelCommonValue, byte(runLen<<4 | idx)})
		} else {
			buf.MustWrite([]byte{format.ModeRLE | byte(runLen), data[pos]})
		}

		return runLen
	}

	// Literal fallback: accumulate until a compressible span starts or the
	// 6-bit count field fills up.
	n := 1
	for pos+n < len(data) && n < format.MaxBaseLength && !literalBreakAt(data, pos+n) {
		n++
	}

	buf.Grow(1 + n)
	buf.MustWriteByte(format.ModeLiteral | byte(n))
	buf.MustWrite(data[pos : pos+n])

	return n
}

// clampDeltaLength keeps delta control bytes off the sentinel values.
//
// Delta tags occupy 0xC0-0xFF, the same space the sentinels live in, so
// lengths 32, 48, 49 and 50 would produce control bytes equal to 0xE0, 0xF0,
// 0xF1 or 0xF2 and desynchronize the decoder. Those sequences are cut short
// and the remainder re-encoded at the next position.
func clampDeltaLength(n int) int {
	switch {
	case n == 32:
		return 31
	case n >= 48 && n <= 50:
		return 47
	default:
		return n
	}
}

// runSaved returns the bytes a run record would save for a run of runLen, or
// -1 when the run is too short for a record. Both the generic and the
// common-value form cost 2 bytes on the wire.
func runSaved(runLen int) int {
	if runLen < format.MinRunLength {
		return -1
	}

	return runLen - 2
}
