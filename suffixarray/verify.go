// Copyright 2026, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package suffixarray

import (
	"github.com/dsnet/golib/errs"
	"github.com/dsnet/lcparray/internal"
)

// Inverse computes the rank array of sa, such that rank[sa[i]] == i.
// It reports ErrInvariant if sa is not a permutation of [0, len(sa)).
func Inverse(sa []int32) (_ []int32, err error) {
	defer errs.Recover(&err)
	rank := make([]int32, len(sa))
	inverse(sa, rank)
	return rank, nil
}

// inverse fills rank with the inverse permutation of sa and panics with
// ErrInvariant if sa is not a permutation.
func inverse(sa, rank []int32) {
	for i := range rank {
		rank[i] = -1
	}
	for i, p := range sa {
		if p < 0 || int(p) >= len(sa) {
			panic(internal.Invariantf("offset %d at rank %d is out of range", p, i))
		}
		if rank[p] >= 0 {
			panic(internal.Invariantf("offset %d appears at ranks %d and %d", p, rank[p], i))
		}
		rank[p] = int32(i)
	}
}

// Verify checks that sa is the suffix array of text in O(n) time.
//
// Adjacent suffixes a and b are correctly ordered if and only if the first
// byte of a is less than that of b, or the bytes are equal and the suffix
// after a is ranked before the suffix after b. The empty suffix has rank -1.
func Verify(text []byte, sa []int32) (err error) {
	defer errs.Recover(&err)
	n := len(text)
	if len(sa) != n {
		return internal.Invariantf("suffix array has %d entries for %d bytes of text", len(sa), n)
	}
	rank := make([]int32, n)
	inverse(sa, rank)

	rankAt := func(i int32) int32 {
		if int(i) == n {
			return -1
		}
		return rank[i]
	}
	for i := 1; i < n; i++ {
		a, b := sa[i-1], sa[i]
		c0, c1 := text[a], text[b]
		if c0 > c1 || (c0 == c1 && rankAt(a+1) > rankAt(b+1)) {
			return internal.Invariantf("suffix %d sorts after suffix %d at rank %d", a, b, i)
		}
	}
	return nil
}
