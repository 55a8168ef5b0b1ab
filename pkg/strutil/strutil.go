// Package strutil indexes strings by user-perceived character rather than by
// byte or rune.
//
// A character is an extended grapheme cluster: "é", a flag made of two
// regional indicators and an emoji joined with zero-width joiners each count
// as one.
package strutil

import (
	"fmt"

	"github.com/rivo/uniseg"
	"golang.org/x/text/unicode/norm"
)

// End selects the last character as the inclusive upper bound of Substring.
const End = -1

// Len returns the number of characters in s.
func Len(s string) int {
	return uniseg.GraphemeClusterCount(s)
}

// Substring returns the characters of s from index from through index to,
// both inclusive. Pass End as to for everything after from.
//
// It panics if the range does not fit in s. to may be from-1, which yields "".
func Substring(s string, from, to int) string {
	bounds := boundaries(s)
	count := len(bounds) - 1

	if to == End {
		to = count - 1
	}
	if from < 0 || from > count || to+1 < from || to+1 > count {
		panic(fmt.Sprintf("strutil: substring [%d, %d] out of range for length %d", from, to, count))
	}

	return s[bounds[from]:bounds[to+1]]
}

// Equal reports whether a and b are canonically equivalent, so a precomposed
// "\u00e9" equals "e\u0301".
func Equal(a, b string) bool {
	return norm.NFC.String(a) == norm.NFC.String(b)
}

// boundaries returns the byte offset of every character start plus len(s).
func boundaries(s string) []int {
	offsets := []int{0}
	pos, state := 0, -1
	for rest := s; len(rest) > 0; {
		var cluster string
		cluster, rest, _, state = uniseg.FirstGraphemeClusterInString(rest, state)
		pos += len(cluster)
		offsets = append(offsets, pos)
	}
	return offsets
}
