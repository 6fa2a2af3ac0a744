// Copyright 2026, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Package lcp computes the longest-common-prefix array of a suffix array and
// encodes it as a flat sequence of 32-bit integers.
//
// For a text with suffix array sa, lcp[0] is always zero and lcp[i] is the
// number of leading bytes shared by the suffixes starting at sa[i-1] and sa[i].
//
// The binary encoding has no header, length prefix, or padding. Each element is
// written as a 4-byte unsigned integer in the selected byte order, which is the
// input format expected by directly addressable code (DACs) builders.
package lcp

import (
	"github.com/dsnet/golib/errs"
	"github.com/dsnet/lcparray/internal"
	"github.com/dsnet/lcparray/suffixarray"
)

var (
	ErrAllocation = internal.ErrAllocation
	ErrInvariant  = internal.ErrInvariant
	ErrCorrupt    = internal.ErrCorrupt
)

// Computer computes LCP arrays.
// The zero value has no memory limit and trusts the suffix array it is given.
type Computer struct {
	// MemoryLimit bounds the number of bytes of working buffers, including
	// the returned LCP array. Zero means unlimited.
	MemoryLimit int64

	// Verify checks that the suffix array is correctly ordered before
	// computing the LCP array. This is always done in debug builds.
	Verify bool
}

// Compute computes the LCP array of text given its suffix array sa using
// Kasai's algorithm.
//
// The suffix array must be a permutation of [0, len(text)); otherwise
// ErrInvariant is reported. Unless verification is enabled, the order of the
// suffix array is trusted and an incorrectly ordered one produces
// meaningless values. On failure, the returned slice is nil.
func (c Computer) Compute(text []byte, sa []int32) (_ []int32, err error) {
	defer errs.Recover(&err)
	n := len(text)
	if len(sa) != n {
		return nil, internal.Invariantf("suffix array has %d entries for %d bytes of text", len(sa), n)
	}

	b := internal.Budget{Limit: c.MemoryLimit}
	if c.Verify || internal.Debug {
		b.Reserve(n, 4) // Rank array used by Verify
		if err := suffixarray.Verify(text, sa); err != nil {
			return nil, err
		}
	}
	lcp := b.Int32s(n)
	b.Reserve(n, 4)
	rank, err := suffixarray.Inverse(sa)
	if err != nil {
		return nil, err
	}

	// Scan the suffixes in text order. If suffix i shares k bytes with its
	// predecessor in sorted order, then suffix i+1 shares at least k-1 bytes
	// with its own predecessor, so k never needs to restart from zero.
	var k int
	for i := 0; i < n; i++ {
		r := rank[i]
		if r == 0 {
			k = 0
			continue
		}
		j := int(sa[r-1])
		for i+k < n && j+k < n && text[i+k] == text[j+k] {
			k++
		}
		if internal.Debug {
			errs.Assert(k <= n-i && k <= n-j, ErrInvariant)
		}
		lcp[r] = int32(k)
		if k > 0 {
			k--
		}
	}
	return lcp, nil
}

// Compute computes the LCP array of text given its suffix array sa.
func Compute(text []byte, sa []int32) ([]int32, error) {
	return Computer{}.Compute(text, sa)
}
