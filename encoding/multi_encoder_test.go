package encoding

import (
	"testing"

	"github.com/arloliu/bytepack/format"
	"github.com/stretchr/testify/require"
)

func TestEncodeMulti_Empty(t *testing.T) {
	require.Empty(t, EncodeMulti(nil))
	require.Empty(t, EncodeMulti([]byte{}))
}

func TestEncodeMulti_ZeroRun(t *testing.T) {
	encoded := EncodeMulti([]byte{0x00, 0x00, 0x00, 0x00, 0x00})
	require.Equal(t, []byte{format.SentinelZeroRun, 0x05}, encoded)
}

func TestEncodeMulti_ShortZeroRunIsNotZeroRecord(t *testing.T) {
	// Two zeros are below the zero-run threshold; delta with step 0 picks
	// them up only at length >= 3, so they fall through to a literal.
	encoded := EncodeMulti([]byte{0x00, 0x00})
	require.Equal(t, []byte{format.ModeLiteral | 2, 0x00, 0x00}, encoded)
}

func TestEncodeMulti_DeltaSequence(t *testing.T) {
	encoded := EncodeMulti([]byte{0x10, 0x11, 0x12, 0x13, 0x14})
	require.Equal(t, []byte{
		format.ModeDelta | 5,
		0x10,
		byte(1 + format.DeltaBias),
	}, encoded)
}

func TestEncodeMulti_DeltaDescending(t *testing.T) {
	encoded := EncodeMulti([]byte{0x40, 0x3D, 0x3A, 0x37})
	require.Equal(t, []byte{
		format.ModeDelta | 4,
		0x40,
		byte(-3 + format.DeltaBias),
	}, encoded)
}

func TestEncodeMulti_SubByteRunUsesDelta(t *testing.T) {
	// A run of a 7-bit byte is an arithmetic sequence with step 0 and delta
	// sits above the run strategies in the priority order.
	encoded := EncodeMulti([]byte{0x64, 0x64, 0x64, 0x64})
	require.Equal(t, []byte{
		format.ModeDelta | 4,
		0x64,
		byte(format.DeltaBias),
	}, encoded)
}

func TestEncodeMulti_NibblePack(t *testing.T) {
	encoded := EncodeMulti([]byte{0x01, 0x05, 0x02, 0x0A})
	require.Equal(t, []byte{
		format.ModeNibble | 4,
		0x15, 0x2A,
	}, encoded)
}

func TestEncodeMulti_NibblePack_OddCount(t *testing.T) {
	encoded := EncodeMulti([]byte{0x01, 0x05, 0x02, 0x0A, 0x03})
	require.Equal(t, []byte{
		format.ModeNibble | 5,
		0x15, 0x2A, 0x30, // final nibble high-shifted, low half zero
	}, encoded)
}

func TestEncodeMulti_Pattern(t *testing.T) {
	encoded := EncodeMulti([]byte{0x92, 0xB4, 0x92, 0xB4, 0x92, 0xB4})
	require.Equal(t, []byte{
		format.SentinelPattern,
		0x23, // unit length 2, repeat count 3
		0x92, 0xB4,
	}, encoded)
}

func TestEncodeMulti_RunBeatsPattern(t *testing.T) {
	// A run of six identical high bytes matches both the pattern and the run
	// detectors; the run record saves more and must win.
	encoded := EncodeMulti([]byte{0x96, 0x96, 0x96, 0x96, 0x96, 0x96})
	require.Equal(t, []byte{format.ModeRLE | 6, 0x96}, encoded)
}

func TestEncodeMulti_CommonValueRun(t *testing.T) {
	// 0xFF is in the common-value table and, being an 8-bit value, is not
	// captured by the delta strategy first.
	encoded := EncodeMulti([]byte{0xFF, 0xFF, 0xFF, 0xFF})
	idx := format.CommonValueIndex(0xFF)
	require.Equal(t, []byte{
		format.SentinelCommonValue,
		byte(4<<4 | idx),
	}, encoded)
}

func TestEncodeMulti_LongCommonRunFallsBackToRLE(t *testing.T) {
	// Common-value runs cap at 15; longer runs use the generic RLE record.
	data := make([]byte, 20)
	for i := range data {
		data[i] = 0xFF
	}
	encoded := EncodeMulti(data)
	require.Equal(t, []byte{format.ModeRLE | 20, 0xFF}, encoded)
}

func TestEncodeMulti_GenericRLERun(t *testing.T) {
	encoded := EncodeMulti([]byte{0x96, 0x96, 0x96})
	require.Equal(t, []byte{format.ModeRLE | 3, 0x96}, encoded)
}

func TestEncodeMulti_LiteralFallback(t *testing.T) {
	data := []byte{0x03, 0x74}
	encoded := EncodeMulti(data)
	require.Equal(t, []byte{format.ModeLiteral | 2, 0x03, 0x74}, encoded)
}

func TestEncodeMulti_LiteralStopsBeforeRun(t *testing.T) {
	data := []byte{0x03, 0x74, 0x96, 0x96, 0x96, 0x96}
	encoded := EncodeMulti(data)
	require.Equal(t, []byte{
		format.ModeLiteral | 2, 0x03, 0x74,
		format.ModeRLE | 4, 0x96,
	}, encoded)
}

func TestEncodeMulti_LiteralStopsBeforeDelta(t *testing.T) {
	data := []byte{0xF3, 0x99, 0x10, 0x11, 0x12, 0x13}
	encoded := EncodeMulti(data)
	require.Equal(t, []byte{
		format.ModeLiteral | 2, 0xF3, 0x99,
		format.ModeDelta | 4, 0x10, byte(1 + format.DeltaBias),
	}, encoded)
}

func TestEncodeMulti_DeltaAvoidsSentinelAliases(t *testing.T) {
	// Arithmetic sequences whose length would put the delta control byte on a
	// sentinel value (lengths 32, 48, 49, 50 alias 0xE0, 0xF0, 0xF1, 0xF2)
	// must be split short of the alias.
	for _, seqLen := range []int{32, 48, 49, 50} {
		data := make([]byte, seqLen)
		for i := range data {
			data[i] = byte(i % 128)
		}
		encoded := EncodeMulti(data)

		for _, forbidden := range []byte{
			format.SentinelPattern,
			format.SentinelZeroRun,
			format.SentinelReserved,
			format.SentinelCommonValue,
		} {
			require.NotEqual(t, forbidden, encoded[0],
				"sequence of length %d must not emit control byte 0x%02X", seqLen, forbidden)
		}

		decoded, err := DecodeMulti(encoded)
		require.NoError(t, err)
		require.Equal(t, data, decoded)
	}
}

func TestEncodeMulti_ConcreteScenario(t *testing.T) {
	data := []byte{
		0x03, 0x74, 0x04, 0x04, 0x04, 0x35, 0x35, 0x64,
		0x64, 0x64, 0x64, 0x00, 0x00, 0x00, 0x00, 0x00,
		0x56, 0x45, 0x56, 0x56, 0x56, 0x09, 0x09, 0x09,
	}
	encoded := EncodeMulti(data)
	require.Equal(t, []byte{
		format.ModeLiteral | 2, 0x03, 0x74,
		format.ModeDelta | 3, 0x04, byte(format.DeltaBias),
		format.ModeLiteral | 2, 0x35, 0x35,
		format.ModeDelta | 4, 0x64, byte(format.DeltaBias),
		format.SentinelZeroRun, 0x05, // the zero-run span of 5 is a 2-byte record
		format.ModeLiteral | 2, 0x56, 0x45,
		format.ModeDelta | 3, 0x56, byte(format.DeltaBias),
		format.ModeDelta | 3, 0x09, byte(format.DeltaBias),
	}, encoded)
	require.Less(t, len(encoded), len(data))
}

func BenchmarkEncodeMulti(b *testing.B) {
	data := make([]byte, 256)
	for i := range data {
		switch {
		case i < 64:
			data[i] = 0x00
		case i < 128:
			data[i] = byte(i % 128)
		case i < 192:
			data[i] = byte(i % 16)
		default:
			data[i] = byte(i * 31)
		}
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		EncodeMulti(data)
	}
}
