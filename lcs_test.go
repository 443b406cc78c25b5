package coincidence_test

import (
	"strings"
	"testing"

	"github.com/mkohler/coincidence"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLongestCommonSubstrings(t *testing.T) {
	t.Parallel()

	t.Run("finds the single longest substring", func(t *testing.T) {
		t.Parallel()

		got := coincidence.LongestCommonSubstrings("xydxyaa", "abcdxyz")
		assert.ElementsMatch(t, []string{"dxy"}, got)

		got = coincidence.LongestCommonSubstrings("aaaaaasubstringxxxxxx", "absubstringzzz")
		assert.ElementsMatch(t, []string{"substring"}, got)
	})

	t.Run("returns a fully contained string whole", func(t *testing.T) {
		t.Parallel()

		got := coincidence.LongestCommonSubstrings("shorter", "shorterlonger")
		assert.ElementsMatch(t, []string{"shorter"}, got)

		got = coincidence.LongestCommonSubstrings("shorter", "longershorter")
		assert.ElementsMatch(t, []string{"shorter"}, got)
	})

	t.Run("keeps every substring that ties for the maximum", func(t *testing.T) {
		t.Parallel()

		got := coincidence.LongestCommonSubstrings("xxx123yyyy456zzz", "789zzz012xxx345yyy")
		assert.ElementsMatch(t, []string{"xxx", "yyy", "zzz"}, got)
	})

	t.Run("returns empty when no character is shared", func(t *testing.T) {
		t.Parallel()

		got := coincidence.LongestCommonSubstrings("123456", "abcdef")
		assert.Empty(t, got)
	})

	t.Run("returns empty when either input is empty", func(t *testing.T) {
		t.Parallel()

		assert.Empty(t, coincidence.LongestCommonSubstrings("somestring", ""))
		assert.Empty(t, coincidence.LongestCommonSubstrings("", "somestring"))
		assert.Empty(t, coincidence.LongestCommonSubstrings("", ""))
	})

	t.Run("collapses duplicate substring values", func(t *testing.T) {
		t.Parallel()

		// "ab" occurs twice in each input but must appear once in the
		// result.
		got := coincidence.LongestCommonSubstrings("ab1ab", "ab2ab")
		assert.ElementsMatch(t, []string{"ab"}, got)
	})

	t.Run("is case sensitive and preserves whitespace", func(t *testing.T) {
		t.Parallel()

		got := coincidence.LongestCommonSubstrings("Hello World", "hello world")
		assert.ElementsMatch(t, []string{"ello "}, got)
	})

	t.Run("compares runes, not bytes", func(t *testing.T) {
		t.Parallel()

		got := coincidence.LongestCommonSubstrings("caffè latte", "latte caffè")
		assert.ElementsMatch(t, []string{"caffè", "latte"}, got)
	})

	t.Run("handles identical inputs", func(t *testing.T) {
		t.Parallel()

		got := coincidence.LongestCommonSubstrings("same", "same")
		assert.ElementsMatch(t, []string{"same"}, got)
	})
}

func TestLongestCommonSubstrings_Properties(t *testing.T) {
	t.Parallel()

	pairs := [][2]string{
		{"xydxyaa", "abcdxyz"},
		{"xxx123yyyy456zzz", "789zzz012xxx345yyy"},
		{"the quick brown fox", "a quick brown dog"},
		{"mississippi", "missouri"},
		{"abab", "baba"},
	}

	t.Run("every result is a common substring of maximal length", func(t *testing.T) {
		t.Parallel()

		for _, pair := range pairs {
			a, b := pair[0], pair[1]
			got := coincidence.LongestCommonSubstrings(a, b)
			require.NotEmpty(t, got)

			length := len([]rune(got[0]))
			for _, s := range got {
				assert.True(t, strings.Contains(a, s), "%q not in %q", s, a)
				assert.True(t, strings.Contains(b, s), "%q not in %q", s, b)
				assert.Equal(t, length, len([]rune(s)), "co-maximality violated for %q", s)
			}

			// No common substring one longer than the reported
			// maximum may exist.
			assert.False(t, hasCommonSubstringOfLength(a, b, length+1),
				"found a common substring longer than the result for (%q, %q)", a, b)
		}
	})

	t.Run("is symmetric in its arguments", func(t *testing.T) {
		t.Parallel()

		for _, pair := range pairs {
			forward := coincidence.LongestCommonSubstrings(pair[0], pair[1])
			backward := coincidence.LongestCommonSubstrings(pair[1], pair[0])
			assert.ElementsMatch(t, forward, backward)
		}
	})

	t.Run("is deterministic across calls", func(t *testing.T) {
		t.Parallel()

		for _, pair := range pairs {
			first := coincidence.LongestCommonSubstrings(pair[0], pair[1])
			second := coincidence.LongestCommonSubstrings(pair[0], pair[1])
			assert.ElementsMatch(t, first, second)
		}
	})
}

// hasCommonSubstringOfLength brute-forces whether a and b share any
// contiguous substring of exactly n runes.
func hasCommonSubstringOfLength(a, b string, n int) bool {
	ra := []rune(a)
	for i := 0; i+n <= len(ra); i++ {
		if strings.Contains(b, string(ra[i:i+n])) {
			return true
		}
	}
	return false
}
