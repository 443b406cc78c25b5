package coincidence

// This engine uses a dynamic programming sweep, checking each character of
// one string against each character of the other, so its runtime is
// O(len(a) * len(b)).
//
// To save memory, only the non-zero values of the current and previous rows
// of the dynamic programming matrix are kept. In the worst case, where the
// strings are of similar length and share a long common substring, memory
// use is roughly twice the combined length of the strings.
//
// A generalized suffix tree would bring the runtime down to
// O(len(a) + len(b)) at the cost of much higher memory use and a more
// complicated algorithm. See Gusfield 1999.

// LongestCommonSubstrings returns every substring of maximal length that
// occurs contiguously in both a and b. The result contains each substring
// value once, in unspecified order. If either input is empty, or the two
// inputs share no character at all, the result is empty.
//
// Inputs are compared rune by rune with no normalization: case,
// whitespace, and every other character distinction are preserved exactly
// as given. The function is pure and safe for concurrent use.
func LongestCommonSubstrings(a, b string) []string {
	// Use the shorter string for the inner loop so a sparse row never
	// holds more than min(len(a), len(b)) entries.
	h, v := []rune(a), []rune(b)
	if len(v) < len(h) {
		h, v = v, h
	}

	// Absent keys read as zero, so only matched positions are stored.
	prev := make(map[int]int)
	row := make(map[int]int)
	longest := make(map[string]struct{})
	maxLen := 0

	for _, vc := range v {
		for i, hc := range h {
			if hc != vc {
				continue
			}

			// A match extends the run ending diagonally up-left.
			// The lookup at i-1 yields zero for any unset key,
			// including i == 0, which is exactly the boundary
			// the first column needs.
			runLen := prev[i-1] + 1
			row[i] = runLen

			// Runs shorter than the record can never contribute.
			if runLen < maxLen {
				continue
			}

			common := string(h[i-runLen+1 : i+1])
			if runLen == maxLen {
				longest[common] = struct{}{}
			} else {
				maxLen = runLen
				longest = map[string]struct{}{common: {}}
			}
		}

		// The just-computed row is all the next sweep needs; the
		// older row is discarded.
		prev = row
		row = make(map[int]int)
	}

	result := make([]string, 0, len(longest))
	for s := range longest {
		result = append(result, s)
	}
	return result
}
