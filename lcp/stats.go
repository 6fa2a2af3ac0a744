// Copyright 2026, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package lcp

import "sort"

// Stats summarizes the distribution of values in an LCP array.
type Stats struct {
	Count    int     // Number of elements
	Max      int     // Largest value
	Mean     float64 // Average value
	Median   int     // Smallest value v such that at least Count/2 values are <= v
	Mode     int     // Most frequent value, the smallest one on ties
	ModeFreq int     // Number of occurrences of Mode

	EncodedSize int64 // Size in bytes of the binary encoding
}

// ModeShare reports the percentage of elements equal to the mode.
func (s Stats) ModeShare() float64 {
	if s.Count == 0 {
		return 0
	}
	return 100 * float64(s.ModeFreq) / float64(s.Count)
}

// Summarize computes statistics over lcp, which must hold no negative values.
func Summarize(lcp []int32) Stats {
	s := Stats{Count: len(lcp), EncodedSize: EncodedSize(len(lcp))}
	if len(lcp) == 0 {
		return s
	}

	var sum int64
	for _, v := range lcp {
		sum += int64(v)
		if int(v) > s.Max {
			s.Max = int(v)
		}
	}
	s.Mean = float64(sum) / float64(len(lcp))

	// Values below len(lcp) are counted densely. Larger values are rare in a
	// valid LCP array and are counted sparsely.
	freq := make([]int, len(lcp))
	large := make(map[int]int)
	for _, v := range lcp {
		if int(v) < len(freq) {
			freq[v]++
		} else {
			large[int(v)]++
		}
	}
	var cnt int
	median := -1
	visit := func(v, f int) {
		cnt += f
		if median < 0 && cnt >= len(lcp)/2 {
			median = v
		}
		if f > s.ModeFreq {
			s.Mode, s.ModeFreq = v, f
		}
	}
	for v, f := range freq {
		visit(v, f)
	}
	keys := make([]int, 0, len(large))
	for v := range large {
		keys = append(keys, v)
	}
	sort.Ints(keys)
	for _, v := range keys {
		visit(v, large[v])
	}
	s.Median = median
	return s
}
