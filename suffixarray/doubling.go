// Copyright 2026, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package suffixarray

import "sort"

// Both doubling methods share the same recurrence. At the start of a round,
// rank[i] is the dense rank of the first h bytes of suffix i. Sorting all
// suffixes by the pair (rank[i], rank[i+h]) and re-deriving dense ranks from
// the sorted order yields the ranks of the first 2h bytes. Once 2h >= n, all
// suffixes are distinct and the sorted order is the suffix array.
//
// The methods only differ in how a round is sorted.
//
// References:
//	Manber and Myers, "Suffix arrays: a new method for on-line string searches"
//	https://en.wikipedia.org/wiki/Suffix_array#Construction_algorithms

// suffixKey is the rank pair of a suffix for a single round.
type suffixKey struct {
	primary   int32 // Rank of the first h bytes
	secondary int32 // Rank of the h bytes that follow, or -1 past the text end
}

func (k suffixKey) less(o suffixKey) bool {
	if k.primary != o.primary {
		return k.primary < o.primary
	}
	return k.secondary < o.secondary
}

// keyOf returns the key of suffix i when ranks describe blocks of length h.
func keyOf(rank []int32, i int32, h int) suffixKey {
	k := suffixKey{primary: rank[i], secondary: -1}
	if j := int(i) + h; j < len(rank) {
		k.secondary = rank[j]
	}
	return k
}

// roundSorter orders sa by key for a round with block length h.
// All primary and secondary ranks lie in [-1, sigma).
type roundSorter interface {
	sortRound(sa, rank []int32, h, sigma int)
}

func (c *construction) doubling() []int32 {
	n := len(c.text)
	sa := c.budget.Int32s(n)
	if n == 0 {
		return sa
	}
	rank := c.budget.Int32s(n)
	next := c.budget.Int32s(n)
	for i, b := range c.text {
		sa[i] = int32(i)
		rank[i] = int32(b)
	}

	var rs roundSorter
	earlyExit := c.method == DoublingCountingSort
	if earlyExit {
		rs = &countingSorter{c: c, tmp: c.budget.Int32s(n)}
	} else {
		rs = comparisonSorter{}
	}

	sigma := 256
	for h := 1; ; h *= 2 {
		rs.sortRound(sa, rank, h, sigma)
		top := rerank(sa, rank, next, h)
		if h >= n-h || (earlyExit && top == n-1) {
			break
		}
		sigma = top + 1
	}
	return sa
}

// rerank assigns dense ranks to the suffixes in sa, which must be sorted by
// key. Equal keys receive equal ranks. It returns the highest rank assigned.
func rerank(sa, rank, next []int32, h int) int {
	var r int32
	prev := keyOf(rank, sa[0], h)
	next[sa[0]] = 0
	for _, i := range sa[1:] {
		if k := keyOf(rank, i, h); k != prev {
			prev = k
			r++
		}
		next[i] = r
	}
	copy(rank, next)
	return int(r)
}

// comparisonSorter sorts each round with a general comparison sort.
type comparisonSorter struct{}

func (comparisonSorter) sortRound(sa, rank []int32, h, _ int) {
	sort.Slice(sa, func(i, j int) bool {
		return keyOf(rank, sa[i], h).less(keyOf(rank, sa[j], h))
	})
}

// countingSorter sorts each round with a least-significant-digit radix sort:
// a stable counting sort by secondary rank followed by one by primary rank.
type countingSorter struct {
	c     *construction
	tmp   []int32 // Suffixes ordered by secondary rank
	count []int32 // Bucket offsets, shifted by one to make room for -1
}

func (s *countingSorter) sortRound(sa, rank []int32, h, sigma int) {
	if len(s.count) < sigma+1 {
		s.count = s.c.budget.Int32s(sigma + 1)
	}
	count := s.count[:sigma+1]
	n := len(sa)

	// Stable sort of all suffixes by secondary rank.
	resetCounts(count)
	for i := 0; i < n; i++ {
		count[keyOf(rank, int32(i), h).secondary+1]++
	}
	prefixSum(count)
	for i := 0; i < n; i++ {
		b := keyOf(rank, int32(i), h).secondary + 1
		s.tmp[count[b]] = int32(i)
		count[b]++
	}

	// Stable sort by primary rank, which preserves the secondary order
	// within each primary bucket.
	resetCounts(count)
	for _, i := range s.tmp {
		count[rank[i]+1]++
	}
	prefixSum(count)
	for _, i := range s.tmp {
		b := rank[i] + 1
		sa[count[b]] = i
		count[b]++
	}
}

func resetCounts(count []int32) {
	for i := range count {
		count[i] = 0
	}
}

// prefixSum converts bucket sizes into the starting offset of each bucket.
func prefixSum(count []int32) {
	var sum int32
	for i, v := range count {
		count[i] = sum
		sum += v
	}
}
