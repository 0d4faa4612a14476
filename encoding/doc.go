// Package encoding implements the bytepack wire codecs.
//
// Two codecs live here:
//
//   - EncodeMulti/DecodeMulti: the multi-strategy codec. The encoder walks the
//     input left-to-right and, at each position, picks one of seven encoding
//     strategies (zero run, delta sequence, nibble pack, repeating pattern,
//     common-value run, plain run, literal) in a fixed priority order. Each
//     strategy emits one self-describing record; the decoder dispatches on the
//     record's control byte and reconstructs the original bytes exactly.
//
//   - EncodeRLE/DecodeRLE: the baseline single-mode run-length codec, a strict
//     subset of the multi-strategy codec's run handling. It exists as a
//     comparison baseline and for callers that want predictable, minimal
//     encoding cost.
//
// # Wire format (multi-strategy)
//
// The encoded stream is a sequence of records with no header, length prefix,
// or checksum. Each record starts with one control byte:
//
//	bits 7-6  mode      bits 5-0
//	00        literal   count of raw bytes that follow (0-63)
//	01        nibble    count of packed 4-bit values (0-62)
//	10        run       run length (0-63), followed by one value byte
//	11        delta     length (0-63), followed by start byte and biased delta
//
// Three full-byte values are reserved as sentinels for extended modes and are
// matched by exact equality before the mode bits are inspected:
//
//	0xF0  zero run      followed by one length byte (0-255)
//	0xE0  pattern       followed by (length<<4 | count) and the raw unit
//	0xF2  common value  followed by (run length<<4 | table index)
//
// Record fields never exceed their bit widths: the encoder splits longer
// spans into multiple records, so a run of 64 identical bytes becomes a
// 63-run record plus a literal, a zero run of 300 becomes two zero-run
// records, and so on.
//
// # Alphabet
//
// The format round-trips arbitrary 8-bit input. The delta strategy only
// triggers on spans of 7-bit bytes following mod-128 arithmetic, and the
// nibble strategy only on bytes below 16; input outside those ranges simply
// falls through to the pattern, run, or literal strategies.
//
// Both codecs are stateless and safe for concurrent use. Encode never fails;
// Decode returns ErrMalformedStream for truncated or corrupted input and
// never reads past the provided buffer.
package encoding
