package encoding

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func requireMultiRoundTrip(t *testing.T, data []byte) {
	t.Helper()

	encoded := EncodeMulti(data)
	decoded, err := DecodeMulti(encoded)
	require.NoError(t, err)
	require.Equal(t, data, decoded)
}

func TestMultiRoundTrip_Empty(t *testing.T) {
	encoded := EncodeMulti(nil)
	decoded, err := DecodeMulti(encoded)
	require.NoError(t, err)
	require.Empty(t, decoded)
}

func TestMultiRoundTrip_SingleByte(t *testing.T) {
	// Every possible single-byte buffer, including values that collide with
	// sentinel and mode tag values.
	for v := 0; v < 256; v++ {
		requireMultiRoundTrip(t, []byte{byte(v)})
	}
}

func TestMultiRoundTrip_ConcreteScenario(t *testing.T) {
	requireMultiRoundTrip(t, []byte{
		0x03, 0x74, 0x04, 0x04, 0x04, 0x35, 0x35, 0x64,
		0x64, 0x64, 0x64, 0x00, 0x00, 0x00, 0x00, 0x00,
		0x56, 0x45, 0x56, 0x56, 0x56, 0x09, 0x09, 0x09,
	})
}

func TestMultiRoundTrip_BoundaryRunLengths(t *testing.T) {
	// Runs exactly at the 6-bit cap and one unit beyond, which must split
	// into two records.
	for _, runLen := range []int{62, 63, 64, 126, 127} {
		data := make([]byte, runLen)
		for i := range data {
			data[i] = 0x96
		}
		requireMultiRoundTrip(t, data)
	}
}

func TestMultiRoundTrip_BoundaryZeroRuns(t *testing.T) {
	for _, runLen := range []int{3, 254, 255, 256, 258, 510, 511} {
		requireMultiRoundTrip(t, make([]byte, runLen))
	}

	// A maximum-length zero run is a single 2-byte record.
	require.Len(t, EncodeMulti(make([]byte, 255)), 2)
}

func TestMultiRoundTrip_BoundaryCommonRuns(t *testing.T) {
	// Common-value runs cap at 15; length 16 falls back to generic RLE.
	for _, runLen := range []int{3, 15, 16, 17} {
		data := make([]byte, runLen)
		for i := range data {
			data[i] = 0xFF
		}
		requireMultiRoundTrip(t, data)
	}
}

func TestMultiRoundTrip_BoundaryDeltaLengths(t *testing.T) {
	// Arithmetic ramps around every interesting length: the minimum, the
	// sentinel-alias splits, the 6-bit cap, and one beyond.
	for _, seqLen := range []int{3, 31, 32, 33, 47, 48, 49, 50, 51, 62, 63, 64, 128, 130} {
		data := make([]byte, seqLen)
		for i := range data {
			data[i] = byte(i % 128)
		}
		requireMultiRoundTrip(t, data)
	}
}

func TestMultiRoundTrip_BoundaryNibbleSpans(t *testing.T) {
	// Sub-16 values arranged so no three consecutive bytes form an
	// arithmetic sequence, keeping the delta strategy out of the way.
	vals := []byte{7, 2, 11, 5, 14, 3, 9, 0, 12, 6, 13, 1, 8, 4, 10, 15}
	for _, spanLen := range []int{4, 61, 62, 63, 124, 125} {
		data := make([]byte, spanLen)
		for i := range data {
			data[i] = vals[i%len(vals)]
		}
		requireMultiRoundTrip(t, data)
	}
}

func TestMultiRoundTrip_PatternRepeatBeyondCap(t *testing.T) {
	// 20 repeats of a 2-byte unit exceed the 4-bit repeat field; the encoder
	// must emit multiple pattern records instead of overflowing it.
	data := make([]byte, 0, 40)
	for i := 0; i < 20; i++ {
		data = append(data, 0xAB, 0xCD)
	}
	requireMultiRoundTrip(t, data)
}

func TestMultiRoundTrip_NonCompressible(t *testing.T) {
	// 64 distinct high bytes: no runs, no arithmetic steps, no repeating
	// units, nothing below 16. Literal mode dominates, with one tag byte per
	// 63-byte chunk of overhead.
	data := make([]byte, 64)
	for i := range data {
		data[i] = byte(0x80 | (i*37)&0x7F)
	}
	encoded := EncodeMulti(data)
	require.LessOrEqual(t, len(encoded), len(data)+2)

	decoded, err := DecodeMulti(encoded)
	require.NoError(t, err)
	require.Equal(t, data, decoded)
}

func TestMultiRoundTrip_FullRangeRandom(t *testing.T) {
	// Arbitrary 8-bit input must round-trip even though the delta and nibble
	// strategies only understand 7-bit and 4-bit payloads.
	rng := rand.New(rand.NewSource(42))
	for _, size := range []int{1, 7, 16, 64, 256, 1024, 4096} {
		data := make([]byte, size)
		for i := range data {
			data[i] = byte(rng.Intn(256))
		}
		requireMultiRoundTrip(t, data)
	}
}

func TestMultiRoundTrip_MixedChunks(t *testing.T) {
	// Mirrors the mixed workload the codec targets: alternating stretches of
	// zero padding, counters, slowly-changing values and noise.
	rng := rand.New(rand.NewSource(7))
	for iter := 0; iter < 50; iter++ {
		size := 16 + rng.Intn(2048)
		data := make([]byte, 0, size)
		for len(data) < size {
			chunk := 5 + rng.Intn(20)
			switch rng.Intn(4) {
			case 0:
				for i := 0; i < chunk; i++ {
					data = append(data, 0x00)
				}
			case 1:
				start := rng.Intn(128)
				for i := 0; i < chunk; i++ {
					data = append(data, byte((start+i)&0x7F))
				}
			case 2:
				v := byte(rng.Intn(256))
				for i := 0; i < chunk; i++ {
					data = append(data, v)
				}
			default:
				for i := 0; i < chunk; i++ {
					data = append(data, byte(rng.Intn(256)))
				}
			}
		}
		requireMultiRoundTrip(t, data[:size])
	}
}

func TestMultiRoundTrip_CommonValueShortcut(t *testing.T) {
	// Short runs of table values always beat the equivalent literal record.
	encoded := EncodeMulti([]byte{0x00, 0x00, 0x00})
	require.Len(t, encoded, 2) // zero-run form wins the priority order
	requireMultiRoundTrip(t, []byte{0x00, 0x00, 0x00})
}
