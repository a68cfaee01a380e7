package input

// expansionDistance returns the minimum number of single-byte deletions
// from haystack needed to leave needle as a (contiguous-after-deletion,
// in-order) subsequence, or -1 if needle is longer than haystack or
// contains a byte haystack can't supply in order. This is
// byte_expansion_distance from the original tab-completion scorer.
func expansionDistance(haystack, needle []byte) int {
	return expansionDistanceImpl(haystack, needle, false)
}

// expansionDistanceFold is expansionDistance with ASCII case folded via the
// same "|0x20" comparison the original's icase variant uses.
func expansionDistanceFold(haystack, needle []byte) int {
	return expansionDistanceImpl(haystack, needle, true)
}

func expansionDistanceImpl(haystack, needle []byte, fold bool) int {
	eq := func(a, b byte) bool { return a == b }
	if fold {
		eq = func(a, b byte) bool { return a|0x20 == b|0x20 }
	}
	difference := 0
	for {
		if len(needle) > len(haystack) {
			return -1
		}
		if len(needle) == 0 {
			return difference + len(haystack)
		}
		for {
			if len(needle) == 0 {
				return difference + len(haystack)
			}
			if len(haystack) == 0 {
				return -1
			}
			if eq(haystack[0], needle[0]) {
				haystack = haystack[1:]
				needle = needle[1:]
				continue
			}
			break
		}
		for {
			if len(haystack) == 0 {
				return -1
			}
			if eq(haystack[0], needle[0]) {
				break
			}
			difference++
			haystack = haystack[1:]
		}
	}
}
