package automaton

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildAutomaton(t *testing.T, words ...string) *Automaton {
	t.Helper()
	a := New()
	for _, w := range words {
		require.NoError(t, a.Insert(w))
	}
	require.NoError(t, a.Build())
	return a
}

func TestInsert_RejectsEmptyWord(t *testing.T) {
	a := New()
	assert.ErrorIs(t, a.Insert(""), ErrInvalidWord)

	// A rejected word must not leave any trace in the trie.
	assert.Equal(t, 0, a.WordCount())
	assert.Equal(t, 1, a.NodeCount())
}

func TestInsert_AfterBuildFails(t *testing.T) {
	a := buildAutomaton(t, "foo")
	assert.ErrorIs(t, a.Insert("bar"), ErrAlreadyBuilt)
}

func TestInsert_DuplicateCountsOnce(t *testing.T) {
	a := New()
	require.NoError(t, a.Insert("foo"))
	require.NoError(t, a.Insert("foo"))
	assert.Equal(t, 1, a.WordCount())
}

func TestBuild_Twice(t *testing.T) {
	a := New()
	require.NoError(t, a.Insert("foo"))
	require.NoError(t, a.Build())
	assert.ErrorIs(t, a.Build(), ErrAlreadyBuilt)
}

func TestScan_BeforeBuild(t *testing.T) {
	a := New()
	require.NoError(t, a.Insert("foo"))

	_, err := a.ScanExact("foo")
	assert.ErrorIs(t, err, ErrNotBuilt)

	_, err = a.ScanFuzzy("foo", 1)
	assert.ErrorIs(t, err, ErrNotBuilt)
}

func TestScanExact(t *testing.T) {
	tests := []struct {
		name  string
		words []string
		text  string
		want  []Match
	}{
		{
			name:  "single word",
			words: []string{"foo"},
			text:  "xxfooyy",
			want:  []Match{{Word: "foo", Start: 2, End: 4}},
		},
		{
			name:  "overlapping words",
			words: []string{"abc", "bcd"},
			text:  "xabcdy",
			want: []Match{
				{Word: "abc", Start: 1, End: 3},
				{Word: "bcd", Start: 2, End: 4},
			},
		},
		{
			name:  "nested suffix words at same end",
			words: []string{"he", "she"},
			text:  "she",
			want: []Match{
				{Word: "she", Start: 0, End: 2},
				{Word: "he", Start: 1, End: 2},
			},
		},
		{
			name:  "repeated occurrences",
			words: []string{"aa"},
			text:  "aaaa",
			want: []Match{
				{Word: "aa", Start: 0, End: 1},
				{Word: "aa", Start: 1, End: 2},
				{Word: "aa", Start: 2, End: 3},
			},
		},
		{
			name:  "no match",
			words: []string{"foo", "bar"},
			text:  "qux",
			want:  nil,
		},
		{
			name:  "empty text",
			words: []string{"foo"},
			text:  "",
			want:  nil,
		},
		{
			name:  "text shorter than every word",
			words: []string{"longword"},
			text:  "long",
			want:  nil,
		},
		{
			name:  "unicode offsets are rune offsets",
			words: []string{"拼音"},
			text:  "测试拼音匹配",
			want:  []Match{{Word: "拼音", Start: 2, End: 3}},
		},
		{
			name:  "whole text is a word",
			words: []string{"foo"},
			text:  "foo",
			want:  []Match{{Word: "foo", Start: 0, End: 2}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := buildAutomaton(t, tt.words...)
			got, err := a.ScanExact(tt.text)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestScanExact_EmptyDictionary(t *testing.T) {
	a := New()
	require.NoError(t, a.Build())

	got, err := a.ScanExact("any text at all")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestScanExact_Idempotent(t *testing.T) {
	a := buildAutomaton(t, "he", "she", "his", "hers")
	first, err := a.ScanExact("ushers")
	require.NoError(t, err)
	second, err := a.ScanExact("ushers")
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestScanExact_ClassicAhoCorasick(t *testing.T) {
	a := buildAutomaton(t, "he", "she", "his", "hers")
	got, err := a.ScanExact("ushers")
	require.NoError(t, err)
	assert.Equal(t, []Match{
		{Word: "she", Start: 1, End: 3},
		{Word: "he", Start: 2, End: 3},
		{Word: "hers", Start: 2, End: 5},
	}, got)
}

func TestScanExact_MatchTextEqualsSpan(t *testing.T) {
	a := buildAutomaton(t, "abc", "bcd", "cde")
	text := "xxabcdexx"
	got, err := a.ScanExact(text)
	require.NoError(t, err)
	require.NotEmpty(t, got)

	runes := []rune(text)
	for _, m := range got {
		assert.Equal(t, string(runes[m.Start:m.End+1]), m.Word)
	}
}

func TestScanFuzzy(t *testing.T) {
	tests := []struct {
		name    string
		words   []string
		text    string
		maxSkip int
		want    []Match
	}{
		{
			name:    "obfuscated word within budget",
			words:   []string{"kill"},
			text:    "k1i2l3l",
			maxSkip: 1,
			want:    []Match{{Word: "k1i2l3l", Start: 0, End: 6}},
		},
		{
			name:    "zero budget finds nothing obfuscated",
			words:   []string{"kill"},
			text:    "k1i2l3l",
			maxSkip: 0,
			want:    nil,
		},
		{
			name:    "zero budget still finds contiguous",
			words:   []string{"kill"},
			text:    "xxkillyy",
			maxSkip: 0,
			want:    []Match{{Word: "kill", Start: 2, End: 5}},
		},
		{
			name:    "noise run over budget aborts",
			words:   []string{"abc"},
			text:    "a12b3c",
			maxSkip: 1,
			want:    nil,
		},
		{
			name:    "noise run exactly at budget",
			words:   []string{"abc"},
			text:    "a12b3c",
			maxSkip: 2,
			want:    []Match{{Word: "a12b3c", Start: 0, End: 5}},
		},
		{
			name:    "skips only apply off root",
			words:   []string{"ab"},
			text:    "zzab",
			maxSkip: 3,
			want:    []Match{{Word: "ab", Start: 2, End: 3}},
		},
		{
			name:    "first terminal wins over longer word",
			words:   []string{"ab", "abc"},
			text:    "abc",
			maxSkip: 0,
			want:    []Match{{Word: "ab", Start: 0, End: 1}},
		},
		{
			name:    "consumed spans suppress overlap",
			words:   []string{"aa"},
			text:    "aaaa",
			maxSkip: 0,
			want: []Match{
				{Word: "aa", Start: 0, End: 1},
				{Word: "aa", Start: 2, End: 3},
			},
		},
		{
			name:    "empty text",
			words:   []string{"foo"},
			text:    "",
			maxSkip: 5,
			want:    nil,
		},
		{
			name:    "trailing noise not part of span",
			words:   []string{"ab"},
			text:    "a1b22",
			maxSkip: 1,
			want:    []Match{{Word: "a1b", Start: 0, End: 2}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := buildAutomaton(t, tt.words...)
			got, err := a.ScanFuzzy(tt.text, tt.maxSkip)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestScanFuzzy_NegativeSkip(t *testing.T) {
	a := buildAutomaton(t, "foo")
	_, err := a.ScanFuzzy("foo", -1)
	assert.ErrorIs(t, err, ErrNegativeSkip)
}

func TestScanFuzzy_SpansNeverOverlap(t *testing.T) {
	a := buildAutomaton(t, "ab", "ba", "aba")
	got, err := a.ScanFuzzy("abababab", 2)
	require.NoError(t, err)

	for i := 1; i < len(got); i++ {
		assert.Greater(t, got[i].Start, got[i-1].End,
			"spans %v and %v overlap", got[i-1], got[i])
	}
}

func TestScanFuzzy_WordIsLiteralSpan(t *testing.T) {
	a := buildAutomaton(t, "bomb")
	text := "a b-o.m_b c"
	got, err := a.ScanFuzzy(text, 1)
	require.NoError(t, err)
	require.Len(t, got, 1)

	runes := []rune(text)
	assert.Equal(t, string(runes[got[0].Start:got[0].End+1]), got[0].Word)
}

func TestConcurrentScans(t *testing.T) {
	a := buildAutomaton(t, "he", "she", "his", "hers")
	want, err := a.ScanExact("ushers and fishers")
	require.NoError(t, err)

	done := make(chan []Match)
	for i := 0; i < 8; i++ {
		go func() {
			got, err := a.ScanExact("ushers and fishers")
			assert.NoError(t, err)
			done <- got
		}()
	}
	for i := 0; i < 8; i++ {
		assert.Equal(t, want, <-done)
	}
}
