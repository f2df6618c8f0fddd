// Command scan runs the detector against a file (or stdin) from the command
// line and reports matches plus timing, for ad-hoc checks and benchmarking.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"WordWatch/internal/automaton"
	"WordWatch/internal/detect"
)

func main() {
	dictDir := flag.String("dict", "dictionaries", "directory of word-list files")
	file := flag.String("file", "", "text file to scan (default stdin)")
	fuzzy := flag.Bool("fuzzy", false, "use the fuzzy scanner")
	maxSkip := flag.Int("max-skip", detect.DefaultMaxSkip, "fuzzy skip budget")
	repeat := flag.Int("repeat", 1, "number of timed scan repetitions")
	caseFold := flag.Bool("fold", true, "case-insensitive matching")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	}))

	text, err := readInput(*file)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to read input: %v\n", err)
		os.Exit(1)
	}

	buildStart := time.Now()
	det, err := detect.FromDirectory(*dictDir, detect.Options{CaseFold: *caseFold}, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load dictionary: %v\n", err)
		os.Exit(1)
	}
	buildTook := time.Since(buildStart)

	if *repeat < 1 {
		*repeat = 1
	}

	var matches []automaton.Match
	scanStart := time.Now()
	for i := 0; i < *repeat; i++ {
		if *fuzzy {
			matches, err = det.ScanFuzzy(text, *maxSkip)
		} else {
			matches, err = det.ScanExact(text)
		}
		if err != nil {
			fmt.Fprintf(os.Stderr, "scan failed: %v\n", err)
			os.Exit(1)
		}
	}
	scanTook := time.Since(scanStart)

	report := struct {
		Matches []automaton.Match `json:"matches"`
		Words   int               `json:"dictionary_words"`
		Bytes   int               `json:"input_bytes"`
		Repeat  int               `json:"repeat"`
		BuildMS float64           `json:"build_ms"`
		ScanMS  float64           `json:"scan_ms"`
		PerScan float64           `json:"per_scan_ms"`
	}{
		Matches: matches,
		Words:   det.Stats().Words,
		Bytes:   len(text),
		Repeat:  *repeat,
		BuildMS: float64(buildTook.Microseconds()) / 1000,
		ScanMS:  float64(scanTook.Microseconds()) / 1000,
		PerScan: float64(scanTook.Microseconds()) / 1000 / float64(*repeat),
	}
	if report.Matches == nil {
		report.Matches = []automaton.Match{}
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(report); err != nil {
		fmt.Fprintf(os.Stderr, "failed to encode report: %v\n", err)
		os.Exit(1)
	}
}

func readInput(path string) (string, error) {
	if path == "" {
		raw, err := io.ReadAll(os.Stdin)
		return string(raw), err
	}
	raw, err := os.ReadFile(path)
	return string(raw), err
}
