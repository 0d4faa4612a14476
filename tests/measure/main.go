package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/arloliu/bytepack"
)

func main() {
	size := flag.Int("size", 4096, "Payload size for the pattern suite")
	iterations := flag.Int("iterations", 100, "Repetitions per timing measurement")
	seed := flag.Int64("seed", 42, "Random seed for payload generation")

	flag.Parse()

	if *size <= 0 {
		fmt.Fprintf(os.Stderr, "Error: -size must be positive\n")
		os.Exit(1)
	}
	if *iterations <= 0 {
		fmt.Fprintf(os.Stderr, "Error: -iterations must be positive\n")
		os.Exit(1)
	}

	fmt.Println("=== Bytepack Codec Comparison ===")
	fmt.Println()

	config := Config{
		Sizes:      []int{16, 64, 256, 1024, 4096},
		Iterations: *iterations,
		Seed:       *seed,
	}
	PrintConfig(config)

	// Walk through the canonical demo vector first so the record structure
	// is visible before the aggregate numbers.
	demo := DemoVector()
	encoded := bytepack.Encode(demo)
	decoded, err := bytepack.Decode(encoded)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: demo vector decode failed: %v\n", err)
		os.Exit(1)
	}
	if bytepack.Fingerprint(decoded) != bytepack.Fingerprint(demo) {
		fmt.Fprintf(os.Stderr, "Error: demo vector round-trip mismatch\n")
		os.Exit(1)
	}
	PrintDemoWalkthrough(demo, encoded)

	results, err := MeasurePatternSuite(*size, config.Iterations, config.Seed)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	PrintPatternResults(results)

	scaling, err := MeasureSizeScaling(config.Sizes, config.Iterations, config.Seed)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	PrintSizeScaling(scaling)
}
