package library

import "strings"

// similarityRatio computes the Ratcliff/Obershelp similarity of two
// strings: 2*M / (len(a)+len(b)), where M is the total length of the
// longest common contiguous blocks, applied recursively to the pieces
// left and right of each block. Comparison is case-insensitive and
// rune-based. Two empty strings are fully similar.
func similarityRatio(a, b string) float64 {
	ra := []rune(strings.ToLower(a))
	rb := []rune(strings.ToLower(b))
	total := len(ra) + len(rb)
	if total == 0 {
		return 1
	}
	return 2 * float64(matchingRunes(ra, rb)) / float64(total)
}

func matchingRunes(a, b []rune) int {
	ai, bi, size := longestMatch(a, b)
	if size == 0 {
		return 0
	}
	return size +
		matchingRunes(a[:ai], b[:bi]) +
		matchingRunes(a[ai+size:], b[bi+size:])
}

// longestMatch finds the longest common contiguous block, preferring the
// earliest position in a, then in b, when several blocks tie.
func longestMatch(a, b []rune) (ai, bi, size int) {
	// lengths[j] holds the match length ending at a[i-1], b[j-1]; prev
	// carries the value from the previous row so the single row can be
	// updated in place.
	lengths := make([]int, len(b)+1)
	for i := 1; i <= len(a); i++ {
		prev := 0
		for j := 1; j <= len(b); j++ {
			cur := lengths[j]
			if a[i-1] == b[j-1] {
				lengths[j] = prev + 1
				if lengths[j] > size {
					size = lengths[j]
					ai = i - size
					bi = j - size
				}
			} else {
				lengths[j] = 0
			}
			prev = cur
		}
	}
	return ai, bi, size
}
