// Copyright 2026, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Package internal is a collection of helpers shared by the suffix array,
// LCP, and pipeline packages.
//
// For performance reasons, the algorithm steps lack strong error checking and
// signal failures by panicking with an error value. Exported entry points
// must recover those panics and return them as ordinary errors.
package internal

import (
	"fmt"
	"math"
)

// Error is the wrapper type for errors specific to this library.
type Error string

func (e Error) Error() string { return "lcparray: " + string(e) }

var (
	// ErrAllocation reports that a working buffer could not be obtained.
	ErrAllocation error = Error("working buffer allocation failed")

	// ErrInvariant reports a suffix array that is not a sorted permutation.
	ErrInvariant error = Error("suffix array invariant violated")

	// ErrCorrupt reports an encoded LCP stream with a truncated element.
	ErrCorrupt error = Error("encoded stream is corrupted")
)

// MaxLen is the longest text that can be indexed. Offsets and LCP values are
// stored as 32-bit integers.
const MaxLen = math.MaxInt32

// Invariantf returns an ErrInvariant annotated with the given detail.
func Invariantf(format string, args ...interface{}) error {
	return fmt.Errorf("%w: "+format, append([]interface{}{ErrInvariant}, args...)...)
}

// Budget tracks the bytes of working buffers handed out during a single
// construction. A zero Limit means unlimited.
//
// A Budget is not safe for concurrent use; each construction owns its own.
type Budget struct {
	Limit int64 // Maximum number of bytes to hand out
	Used  int64 // Number of bytes handed out so far
}

// Int32s returns a zeroed slice of n elements or panics with ErrAllocation if
// doing so would exceed the limit.
func (b *Budget) Int32s(n int) []int32 {
	b.reserve(n, 4)
	return make([]int32, n)
}

// Reserve accounts for n elements of the given size allocated by the caller.
func (b *Budget) Reserve(n, size int) {
	b.reserve(n, size)
}

func (b *Budget) reserve(n, size int) {
	if n < 0 || n > MaxLen {
		panic(fmt.Errorf("%w: %d elements exceeds the %d element maximum", ErrAllocation, n, MaxLen))
	}
	sz := int64(n) * int64(size)
	if b.Limit > 0 && b.Used+sz > b.Limit {
		panic(fmt.Errorf("%w: need %d bytes, %d of %d in use", ErrAllocation, sz, b.Used, b.Limit))
	}
	b.Used += sz
}
