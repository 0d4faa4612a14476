package encoding

import (
	"bytes"

	"github.com/arloliu/bytepack/format"
)

// Pattern describes the best repeating multi-byte unit found at a position.
//
// Length is the unit size in bytes (2-15) and Count the number of consecutive
// repeats (2-15), both bounded by the 4-bit sub-fields of the pattern record.
// Unit aliases the input buffer and is only valid while the input is.
type Pattern struct {
	Unit   []byte
	Length int
	Count  int
}

// Saved returns the number of bytes the pattern record saves over emitting
// the covered span raw: Count*Length input bytes collapse into a 2-byte
// header plus the Length-byte unit.
func (p Pattern) Saved() int {
	return p.Count*p.Length - (2 + p.Length)
}

// zeroRunLength counts consecutive 0x00 bytes starting at pos, capped at the
// zero-run record's one-byte length field.
func zeroRunLength(data []byte, pos int) int {
	n := 0
	for pos+n < len(data) && n < format.MaxZeroRunLength && data[pos+n] == 0x00 {
		n++
	}

	return n
}

// plainRunLength counts consecutive bytes equal to data[pos], capped at the
// 6-bit length field.
func plainRunLength(data []byte, pos int) int {
	n := 1
	for pos+n < len(data) && n < format.MaxBaseLength && data[pos+n] == data[pos] {
		n++
	}

	return n
}

// deltaSequence tests whether an arithmetic byte sequence starts at pos.
//
// The per-step delta is taken from the first two bytes and the sequence
// extends while each byte equals (prev+delta) mod 128, up to 63 steps. The
// sequence is applicable when it spans at least 3 bytes and the delta fits
// the biased-delta byte ([-15, 15]).
//
// Only 7-bit bytes participate: the decoder reconstructs every byte of the
// span as (start + i*delta) mod 128, so a span containing any byte >= 0x80
// would not round-trip and is rejected up front.
func deltaSequence(data []byte, pos int) (delta int, length int, ok bool) {
	if pos+1 >= len(data) {
		return 0, 0, false
	}
	if data[pos] >= format.DeltaModulus || data[pos+1] >= format.DeltaModulus {
		return 0, 0, false
	}

	delta = int(data[pos+1]) - int(data[pos])
	if delta < format.MinDelta || delta > format.MaxDelta {
		return 0, 0, false
	}

	length = 2
	for i := pos + 2; i < len(data) && length < format.MaxBaseLength; i++ {
		expected := byte((int(data[i-1]) + delta) & (format.DeltaModulus - 1))
		if data[i] != expected {
			break
		}
		length++
	}

	if length < format.MinDeltaLength {
		return 0, 0, false
	}

	return delta, length, true
}

// nibbleRunLength counts consecutive bytes below 16 starting at pos, capped
// at the nibble record's maximum count.
func nibbleRunLength(data []byte, pos int) int {
	n := 0
	for pos+n < len(data) && n < format.MaxNibbleCount && data[pos+n] < 16 {
		n++
	}

	return n
}

// findPattern searches for the repeating unit starting at pos that saves the
// most bytes, testing unit lengths 2..15 and counting full consecutive
// repeats of each. Repeats are capped at the record's 4-bit count field; a
// longer repetition is handled by the encoder re-examining the remainder.
//
// Reports false when no unit repeats at least twice.
func findPattern(data []byte, pos int) (Pattern, bool) {
	var best Pattern
	bestSaved := -1

	for unitLen := format.MinPatternUnit; unitLen <= format.MaxPatternLength && pos+unitLen*2 <= len(data); unitLen++ {
		unit := data[pos : pos+unitLen]
		count := 1
		for i := pos + unitLen; i+unitLen <= len(data) && count < format.MaxPatternRepeat; i += unitLen {
			if !bytes.Equal(unit, data[i:i+unitLen]) {
				break
			}
			count++
		}

		if count < 2 {
			continue
		}

		candidate := Pattern{Unit: unit, Length: unitLen, Count: count}
		if saved := candidate.Saved(); saved > bestSaved {
			best = candidate
			bestSaved = saved
		}
	}

	return best, bestSaved >= 0
}

// literalBreakAt reports whether literal accumulation should stop before the
// byte at pos because a compressible span starts there: a run of at least 3
// identical bytes or a detectable delta sequence. Without this lookahead the
// encoder would swallow compressible spans into literal records.
func literalBreakAt(data []byte, pos int) bool {
	if plainRunLength(data, pos) >= format.MinRunLength {
		return true
	}
	if _, _, ok := deltaSequence(data, pos); ok {
		return true
	}

	return false
}
