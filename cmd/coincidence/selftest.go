package main

import (
	"fmt"

	"github.com/mkohler/coincidence"
)

// selftestCases is the fixed fixture suite the original program shipped
// with; it exercises the tie-breaking, containment, and empty-result
// behavior of the engine against literal strings.
var selftestCases = []struct {
	a, b string
	want []string
}{
	{"xydxyaa", "abcdxyz", []string{"dxy"}},
	{"aaaaaasubstringxxxxxx", "absubstringzzz", []string{"substring"}},
	{"shorter", "shorterlonger", []string{"shorter"}},
	{"shorter", "longershorter", []string{"shorter"}},
	{"xxx123yyyy456zzz", "789zzz012xxx345yyy", []string{"xxx", "yyy", "zzz"}},
	{"123456", "abcdef", nil},
	{"somestring", "", nil},
}

// Run executes the selftest command: the engine against its fixtures.
func (c *SelfTestCmd) Run(deps *Dependencies) error {
	failures := 0
	for _, tc := range selftestCases {
		got := coincidence.LongestCommonSubstrings(tc.a, tc.b)
		if sameValues(got, tc.want) {
			fmt.Fprintf(deps.Stdout, "ok   LCS(%q, %q) = %q\n", tc.a, tc.b, tc.want)
			continue
		}
		failures++
		fmt.Fprintf(deps.Stdout, "FAIL LCS(%q, %q) = %q, want %q\n", tc.a, tc.b, got, tc.want)
	}

	if failures > 0 {
		return coincidence.Errorf(coincidence.EINTERNAL, "%d of %d self-test cases failed", failures, len(selftestCases))
	}

	fmt.Fprintf(deps.Stdout, "%d cases passed\n", len(selftestCases))
	return nil
}

// sameValues reports whether two slices hold the same set of values,
// ignoring order.
func sameValues(got, want []string) bool {
	if len(got) != len(want) {
		return false
	}
	seen := make(map[string]bool, len(got))
	for _, s := range got {
		seen[s] = true
	}
	for _, s := range want {
		if !seen[s] {
			return false
		}
	}
	return true
}
