package format

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCodecType_String(t *testing.T) {
	tests := []struct {
		codec CodecType
		want  string
	}{
		{CodecNone, "None"},
		{CodecMulti, "Multi"},
		{CodecRLE, "RLE"},
		{CodecLZ4, "LZ4"},
		{CodecS2, "S2"},
		{CodecZstd, "Zstd"},
		{CodecType(0xFF), "Unknown"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			require.Equal(t, tt.want, tt.codec.String())
		})
	}
}

func TestCommonValueIndex(t *testing.T) {
	for i, v := range CommonValues {
		require.Equal(t, i, CommonValueIndex(v))
	}

	// Values outside the table
	require.Equal(t, -1, CommonValueIndex(0x05))
	require.Equal(t, -1, CommonValueIndex(0x42))
	require.Equal(t, -1, CommonValueIndex(0xFE))
}

func TestSentinels_DoNotCollideWithModeTags(t *testing.T) {
	// All three sentinels decode as delta-mode tags if matched by mode bits,
	// which is why the decoder must compare them by full-byte equality first.
	for _, s := range []byte{SentinelPattern, SentinelZeroRun, SentinelCommonValue} {
		require.Equal(t, byte(ModeDelta), s&ModeMask)
	}
}
