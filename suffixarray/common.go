// Copyright 2026, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Package suffixarray constructs the suffix array of an arbitrary byte text.
//
// Suffixes are ordered byte-wise, where the end of the text acts as a
// sentinel that sorts before every real byte. Thus, a suffix that is a prefix
// of another suffix always sorts first.
//
// Three interchangeable construction methods are provided. They all produce
// identical output for the same text and differ only in time complexity:
//
//	NaiveCompare:         O(n² log n), full byte comparison of every suffix
//	DoublingSort:         O(n log² n), prefix doubling with a comparison sort
//	DoublingCountingSort: O(n log n),  prefix doubling with two counting sorts
//
// Choosing a method based on the input size is left to the caller.
package suffixarray

import (
	"strings"

	"github.com/dsnet/golib/errs"
	"github.com/dsnet/lcparray/internal"
)

var (
	ErrAllocation = internal.ErrAllocation
	ErrInvariant  = internal.ErrInvariant

	errUnknownMethod error = internal.Error("unknown suffix array method")
)

// Method selects the suffix array construction algorithm.
type Method int

const (
	NaiveCompare Method = iota
	DoublingSort
	DoublingCountingSort
)

var methodNames = [...]string{
	NaiveCompare:         "naive",
	DoublingSort:         "doubling",
	DoublingCountingSort: "counting",
}

func (m Method) String() string {
	if m < 0 || int(m) >= len(methodNames) {
		return "Method(invalid)"
	}
	return methodNames[m]
}

// ParseMethod parses the name reported by Method.String.
func ParseMethod(s string) (Method, error) {
	for m, name := range methodNames {
		if strings.EqualFold(s, name) {
			return Method(m), nil
		}
	}
	return 0, errUnknownMethod
}

// Methods reports every construction method in declaration order.
func Methods() []Method {
	return []Method{NaiveCompare, DoublingSort, DoublingCountingSort}
}

// Builder constructs suffix arrays using a fixed method.
//
// The zero value builds with NaiveCompare and no memory limit. A Builder holds
// no buffers between calls, so a single Builder may be used from multiple
// goroutines at once.
type Builder struct {
	Method Method

	// MemoryLimit bounds the number of bytes of working buffers, including
	// the returned suffix array. Zero means unlimited.
	MemoryLimit int64
}

// Build computes the suffix array of text.
//
// On failure, the returned slice is nil. ErrAllocation is reported if a
// working buffer would exceed the MemoryLimit or the text is too long to be
// addressed by 32-bit offsets.
func (b Builder) Build(text []byte) (sa []int32, err error) {
	defer errs.Recover(&err)
	if b.Method < 0 || int(b.Method) >= len(methodNames) {
		return nil, errUnknownMethod
	}

	c := &construction{text: text, method: b.Method}
	c.budget.Limit = b.MemoryLimit
	c.budget.Reserve(len(text), 0) // Reject texts beyond 32-bit offsets

	switch b.Method {
	case NaiveCompare:
		return c.naive(), nil
	default:
		return c.doubling(), nil
	}
}

// Build computes the suffix array of text using the given method.
func Build(text []byte, m Method) ([]int32, error) {
	return Builder{Method: m}.Build(text)
}

// construction is the state owned by a single call to Build.
type construction struct {
	text   []byte
	method Method
	budget internal.Budget
}
