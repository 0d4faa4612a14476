package format

// Control byte layout for the multi-strategy wire format.
//
// Each record starts with one control byte. The two high bits select one of
// four base modes and the low six bits carry a length or count. Three full
// byte values are reserved as sentinels for the extended modes; they are
// unambiguous because they fall inside the delta mode's value space but are
// matched by exact equality before the mode bits are inspected.
const (
	// Base mode tags (bits 7-6)
	ModeLiteral = 0x00 // ModeLiteral is followed by length raw bytes.
	ModeNibble  = 0x40 // ModeNibble is followed by ceil(length/2) packed bytes.
	ModeRLE     = 0x80 // ModeRLE is followed by one value byte.
	ModeDelta   = 0xC0 // ModeDelta is followed by a start byte and a biased delta byte.

	ModeMask   = 0xC0 // Mask for the 2-bit mode field.
	LengthMask = 0x3F // Mask for the 6-bit length/count field.

	// Sentinel bytes (extended modes)
	SentinelPattern     = 0xE0 // SentinelPattern is followed by an info byte and the raw pattern unit.
	SentinelZeroRun     = 0xF0 // SentinelZeroRun is followed by one length byte.
	SentinelReserved    = 0xF1 // SentinelReserved is declared but never emitted; decoders reject it.
	SentinelCommonValue = 0xF2 // SentinelCommonValue is followed by one info byte (length<<4 | index).
)

// Field-width limits of the wire format. The encoder splits longer spans into
// multiple records; the decoder treats anything beyond these as malformed.
const (
	MaxBaseLength    = 63  // Maximum value of any 6-bit length/count field.
	MaxZeroRunLength = 255 // Maximum length of a zero-run record.
	MaxNibbleCount   = 62  // Maximum packed 4-bit values per nibble record.
	MaxPatternLength = 15  // Maximum pattern unit length (4-bit sub-field).
	MaxPatternRepeat = 15  // Maximum pattern repeat count (4-bit sub-field).
	MaxCommonRun     = 15  // Maximum run length of a common-value record.

	MinZeroRun     = 3 // Minimum zero-run length worth a zero-run record.
	MinDeltaLength = 3 // Minimum sequence length worth a delta record.
	MinNibbleCount = 4 // Minimum span of sub-16 bytes worth a nibble record.
	MinRunLength   = 3 // Minimum identical-byte run worth an RLE record.
	MinPatternUnit = 2 // Minimum pattern unit length.

	// Biased delta encoding: a per-step delta in [-15, 15] is stored as
	// delta+DeltaBias so it fits an unsigned byte.
	DeltaBias = 16
	MaxDelta  = 15
	MinDelta  = -15

	// Delta sequences wrap modulo 128; only 7-bit payload bytes participate.
	DeltaModulus = 128
)
