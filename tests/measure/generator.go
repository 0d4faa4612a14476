package main

import (
	"fmt"
	"math/rand"
)

// Config holds the configuration parameters for test data generation.
type Config struct {
	Sizes      []int // Payload sizes to measure
	Iterations int   // Repetitions per timing measurement
	Seed       int64 // Random seed for reproducibility
}

// PatternNames lists the synthetic payload patterns in report order.
var PatternNames = []string{
	"zeros",
	"runs",
	"sequence",
	"nibbles",
	"pattern",
	"mixed",
	"random",
}

// GeneratePattern creates a payload of the given size and pattern kind.
//
// Patterns exercise each encoding strategy in isolation plus two composite
// workloads:
//   - zeros: all zero bytes (zero-run records)
//   - runs: long runs of identical bytes (RLE and common-value records)
//   - sequence: incrementing 7-bit counters (delta records)
//   - nibbles: values below 16 with no arithmetic structure (nibble records)
//   - pattern: repeating multi-byte units (pattern records)
//   - mixed: alternating chunks of all the above (strategy dispatch)
//   - random: full-range random bytes (literal fallback, expansion bound)
//
// Generation is deterministic for a given seed so measurements are
// reproducible across runs.
func GeneratePattern(kind string, size int, seed int64) []byte {
	rng := rand.New(rand.NewSource(seed))
	data := make([]byte, size)

	switch kind {
	case "zeros":
		// Already zero-initialized
	case "runs":
		for i := range data {
			data[i] = byte(0x80 + (i/24)%64)
		}
	case "sequence":
		for i := range data {
			data[i] = byte(i % 128)
		}
	case "nibbles":
		vals := []byte{7, 2, 11, 5, 14, 3, 9, 0, 12, 6, 13, 1, 8, 4, 10, 15}
		for i := range data {
			data[i] = vals[i%len(vals)]
		}
	case "pattern":
		unit := []byte{0x92, 0xB4, 0xD6}
		for i := range data {
			data[i] = unit[i%len(unit)]
		}
	case "mixed":
		pos := 0
		for pos < size {
			chunk := 8 + rng.Intn(24)
			if pos+chunk > size {
				chunk = size - pos
			}
			switch rng.Intn(5) {
			case 0:
				// zero padding, already zeroed
			case 1:
				v := byte(rng.Intn(256))
				for i := 0; i < chunk; i++ {
					data[pos+i] = v
				}
			case 2:
				start := rng.Intn(128)
				for i := 0; i < chunk; i++ {
					data[pos+i] = byte((start + i) & 0x7F)
				}
			case 3:
				for i := 0; i < chunk; i++ {
					data[pos+i] = byte(rng.Intn(16))
				}
			default:
				for i := 0; i < chunk; i++ {
					data[pos+i] = byte(rng.Intn(256))
				}
			}
			pos += chunk
		}
	case "random":
		for i := range data {
			data[i] = byte(rng.Intn(256))
		}
	default:
		panic(fmt.Sprintf("unknown pattern kind: %s", kind))
	}

	return data
}

// DemoVector returns the canonical 24-byte mixed buffer used by the
// walkthrough output: literals, short counter runs, repeated values and zero
// padding.
func DemoVector() []byte {
	return []byte{
		0x03, 0x74, 0x04, 0x04, 0x04, 0x35, 0x35, 0x64,
		0x64, 0x64, 0x64, 0x00, 0x00, 0x00, 0x00, 0x00,
		0x56, 0x45, 0x56, 0x56, 0x56, 0x09, 0x09, 0x09,
	}
}
