package main

import (
	"fmt"
	"strings"
)

// PrintConfig prints the configuration summary.
func PrintConfig(config Config) {
	fmt.Println("Configuration:")
	fmt.Printf("  Payload sizes:  %v\n", config.Sizes)
	fmt.Printf("  Iterations:     %d\n", config.Iterations)
	fmt.Printf("  Seed:           %d\n", config.Seed)
	fmt.Println()
}

// PrintPatternResults prints the per-pattern comparison table with the
// winning codec for each pattern.
func PrintPatternResults(results []MeasurementResult) {
	fmt.Println("=== Pattern Suite Results ===")
	fmt.Println()
	fmt.Printf("%-10s | %-6s | %9s | %9s | %8s | %10s | %10s\n",
		"Pattern", "Codec", "Original", "Encoded", "Savings", "Encode", "Decode")
	fmt.Println(strings.Repeat("-", 80))

	var lastPattern string
	best := map[string]MeasurementResult{}
	for _, r := range results {
		if b, ok := best[r.Pattern]; !ok || r.EncodedSize < b.EncodedSize {
			best[r.Pattern] = r
		}
	}

	for _, r := range results {
		if r.Pattern != lastPattern && lastPattern != "" {
			fmt.Println(strings.Repeat("-", 80))
		}
		lastPattern = r.Pattern

		marker := ""
		if best[r.Pattern].Codec == r.Codec {
			marker = " *"
		}
		fmt.Printf("%-10s | %-6s | %9d | %9d | %7.1f%% | %10v | %10v%s\n",
			r.Pattern, r.Codec, r.OriginalSize, r.EncodedSize,
			r.SavingsPercent(), r.EncodeTime, r.DecodeTime, marker)
	}
	fmt.Println()
	fmt.Println("* smallest encoded size for the pattern")
	fmt.Println()
}

// PrintSizeScaling prints how the multi-strategy codec behaves as payload
// size grows.
func PrintSizeScaling(results []MeasurementResult) {
	fmt.Println("=== Size Scaling (multi-strategy, mixed pattern) ===")
	fmt.Println()
	fmt.Printf("%9s | %9s | %8s | %12s\n",
		"Original", "Encoded", "Savings", "Encode MB/s")
	fmt.Println(strings.Repeat("-", 48))

	for _, r := range results {
		fmt.Printf("%9d | %9d | %7.1f%% | %12.1f\n",
			r.OriginalSize, r.EncodedSize, r.SavingsPercent(), r.EncodeThroughput())
	}
	fmt.Println()
}

// PrintDemoWalkthrough encodes the canonical demo vector and prints the raw
// and encoded bytes side by side.
func PrintDemoWalkthrough(data []byte, encoded []byte) {
	fmt.Println("=== Demo Vector ===")
	fmt.Println()
	fmt.Printf("  Input  (%2d bytes): %s\n", len(data), hexBytes(data))
	fmt.Printf("  Output (%2d bytes): %s\n", len(encoded), hexBytes(encoded))
	fmt.Printf("  Savings: %.1f%%\n", (1.0-float64(len(encoded))/float64(len(data)))*100.0)
	fmt.Println()
}

func hexBytes(data []byte) string {
	var sb strings.Builder
	for i, b := range data {
		if i > 0 {
			sb.WriteByte(' ')
		}
		fmt.Fprintf(&sb, "%02X", b)
	}

	return sb.String()
}
