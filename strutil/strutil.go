// Package strutil holds small stateless helpers used by parameter-tree
// producers and consumers. Nothing here depends on the tree.
package strutil

import (
	"fmt"
	"strings"
)

// Whitespace is the cutset trimmed by LTrim, RTrim and Trim.
const Whitespace = " \n\r\t\f\v"

// LTrim trims whitespace from the front of a string.
func LTrim(s string) string {
	return strings.TrimLeft(s, Whitespace)
}

// RTrim trims whitespace from the back of a string.
func RTrim(s string) string {
	return strings.TrimRight(s, Whitespace)
}

// Trim trims whitespace from the front and back of a string.
func Trim(s string) string {
	return strings.Trim(s, Whitespace)
}

// Split splits a string using the given delimiter.
// Consecutive delimiters are treated as one.
func Split(input, delim string) (ret []string) {
	for _, part := range strings.Split(input, delim) {
		if part != "" {
			ret = append(ret, part)
		}
	}
	return ret
}

// UpToFirstReverse returns the portion of input after the last occurrence of
// search. If search does not occur, the whole input is returned.
func UpToFirstReverse(input, search string) string {
	i := strings.LastIndex(input, search)
	if i < 0 {
		return input
	}
	return input[i+len(search):]
}

// SubSetInfo describes one contiguous partition produced by MakeSubSets.
type SubSetInfo struct {
	Begin int
	End   int
	Size  int
}

// MakeSubSets subdivides numItems into numSubSets contiguous partitions whose
// sizes differ by at most one, the remainder going to the leading partitions.
func MakeSubSets(numItems, numSubSets int) []SubSetInfo {
	if numSubSets <= 0 {
		return nil
	}
	base := numItems / numSubSets
	rem := numItems % numSubSets
	out := make([]SubSetInfo, 0, numSubSets)
	begin := 0
	for i := 0; i < numSubSets; i++ {
		size := base
		if i < rem {
			size++
		}
		out = append(out, SubSetInfo{Begin: begin, End: begin + size, Size: size})
		begin += size
	}
	return out
}

// PrintIterationProgress divides the iteration space into numIntervals and
// returns the cumulative percentage when current crosses an interval
// boundary, otherwise the empty string.
func PrintIterationProgress(current, total, numIntervals int) string {
	if total <= 0 || numIntervals <= 0 {
		return ""
	}
	// interval index reached after this iteration vs the previous one
	reached := (current + 1) * numIntervals / total
	prev := current * numIntervals / total
	if reached == prev {
		return ""
	}
	return fmt.Sprintf("%d%%", reached*100/numIntervals)
}

// DJB2a is the djb2a string hash.
func DJB2a(s string) uint32 {
	var hash uint32 = 5381
	for i := 0; i < len(s); i++ {
		hash = ((hash << 5) + hash) ^ uint32(s[i])
	}
	return hash
}
