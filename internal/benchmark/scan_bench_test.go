package benchmark

import (
	"fmt"
	"strings"
	"testing"

	"WordWatch/internal/automaton"
)

// syntheticDictionary returns n distinct lowercase words.
func syntheticDictionary(n int) []string {
	words := make([]string, 0, n)
	for i := 0; i < n; i++ {
		words = append(words, fmt.Sprintf("word%04dx", i))
	}
	return words
}

func buildAutomaton(b *testing.B, words []string) *automaton.Automaton {
	b.Helper()
	a := automaton.New()
	for _, w := range words {
		if err := a.Insert(w); err != nil {
			b.Fatal(err)
		}
	}
	if err := a.Build(); err != nil {
		b.Fatal(err)
	}
	return a
}

func BenchmarkBuild_SmallDictionary(b *testing.B) {
	words := syntheticDictionary(100)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		a := automaton.New()
		for _, w := range words {
			_ = a.Insert(w)
		}
		_ = a.Build()
	}
}

func BenchmarkBuild_LargeDictionary(b *testing.B) {
	words := syntheticDictionary(10000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		a := automaton.New()
		for _, w := range words {
			_ = a.Insert(w)
		}
		_ = a.Build()
	}
}

func BenchmarkScanExact_NoMatches(b *testing.B) {
	a := buildAutomaton(b, syntheticDictionary(1000))
	text := strings.Repeat("the quick brown fox jumps over the lazy dog ", 100)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := a.ScanExact(text); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkScanExact_DenseMatches(b *testing.B) {
	a := buildAutomaton(b, []string{"he", "she", "his", "hers"})
	text := strings.Repeat("ushers ", 1000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := a.ScanExact(text); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkScanFuzzy_NoMatches(b *testing.B) {
	a := buildAutomaton(b, syntheticDictionary(1000))
	text := strings.Repeat("the quick brown fox jumps over the lazy dog ", 100)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := a.ScanFuzzy(text, 2); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkScanFuzzy_Obfuscated(b *testing.B) {
	a := buildAutomaton(b, []string{"kill", "bomb", "attack"})
	text := strings.Repeat("k1i2l3l and b-o-m-b threats ", 500)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := a.ScanFuzzy(text, 2); err != nil {
			b.Fatal(err)
		}
	}
}
