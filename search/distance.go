package search

// window is one bounded-edit substring hit: an inclusive-start,
// exclusive-end index range into the reference stream.
type window struct {
	start, end int
}

// boundedSubstringMatches finds every substring of ref within maxEdits
// Levenshtein edits of query, using the classic end-anchored DP where the
// first row is all zeros (a match may start anywhere in ref): this is the
// standard k-differences approximate-matching recurrence over two rolling
// rows (plain Levenshtein, no transpositions), adapted from the row-DP
// package spell's damerauLevenshtein uses to score single candidate words,
// generalized here to report every matching end column instead of one
// whole-string distance.
func boundedSubstringMatches(query, ref []rune, maxEdits int) []window {
	m := len(query)
	if m == 0 || maxEdits < 0 {
		return nil
	}

	// prevRow[j] holds the edit distance between query[:i] and some
	// substring of ref ending at column j; prevRow[0] is seeded to 0 for
	// every column so any column may begin a match for free.
	prevRow := make([]int, len(ref)+1)
	curRow := make([]int, len(ref)+1)
	// curStart[j] tracks, for the current row, the start column of the
	// alignment achieving curRow[j]; prevStart holds the previous row's.
	prevStart := make([]int, len(ref)+1)
	curStart := make([]int, len(ref)+1)
	for j := range prevStart {
		prevStart[j] = j
	}

	for i := 1; i <= m; i++ {
		curRow[0] = i
		curStart[0] = 0
		for j := 1; j <= len(ref); j++ {
			cost := 1
			if query[i-1] == ref[j-1] {
				cost = 0
			}

			del := prevRow[j] + 1
			ins := curRow[j-1] + 1
			sub := prevRow[j-1] + cost

			best := del
			start := prevStart[j]
			if ins < best {
				best, start = ins, curStart[j-1]
			}
			if sub < best {
				best, start = sub, prevStart[j-1]
			}
			curRow[j] = best
			curStart[j] = start
		}
		prevRow, curRow = curRow, prevRow
		prevStart, curStart = curStart, prevStart
	}

	var matches []window
	for j := 1; j <= len(ref); j++ {
		if prevRow[j] > maxEdits {
			continue
		}
		start := prevStart[j]
		if n := len(matches); n > 0 && matches[n-1].start == start && matches[n-1].end == j-1 {
			// Same starting alignment, contiguous end column: widen
			// in place instead of reporting overlapping sub-windows.
			matches[n-1].end = j
			continue
		}
		matches = append(matches, window{start: start, end: j})
	}

	return matches
}
