package controller

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/require"
)

func TestNormalizeQueryTrimsAndAccepts(t *testing.T) {
	q, ok := normalizeQuery("  belajar go  ")
	require.True(t, ok)
	require.Equal(t, "belajar go", q)
}

func TestNormalizeQueryRejectsTooShort(t *testing.T) {
	_, ok := normalizeQuery(" a ")
	require.False(t, ok)

	_, ok = normalizeQuery("")
	require.False(t, ok)
}

func TestNormalizeQueryTruncatesOnRuneBoundary(t *testing.T) {
	// query multi-byte lebih panjang dari batas; potongan harus tetap
	// UTF-8 valid supaya pattern ILIKE tidak ditolak Postgres
	long := strings.Repeat("拼", maxQueryLength+5)
	q, ok := normalizeQuery(long)

	require.True(t, ok)
	require.True(t, utf8.ValidString(q))
	require.Equal(t, maxQueryLength, utf8.RuneCountInString(q))
}

func TestNormalizeQueryKeepsShortMultiByte(t *testing.T) {
	q, ok := normalizeQuery("программирование")
	require.True(t, ok)
	require.Equal(t, "программирование", q)
}
