// Copyright 2026, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Package lcparray builds the suffix array and longest-common-prefix array of
// a byte text and encodes the LCP array for compressed full-text indexes.
//
// The pipeline has three stages:
//
//	text -> suffixarray.Builder -> lcp.Computer -> lcp.Writer -> byte stream
//
// Each stage either completes or fails as a whole. A failure aborts the
// remaining stages and is reported as an *Error naming the stage.
package lcparray

import (
	"encoding/binary"
	"io"

	"github.com/dsnet/lcparray/internal"
	"github.com/dsnet/lcparray/lcp"
	"github.com/dsnet/lcparray/suffixarray"
)

var (
	ErrAllocation = internal.ErrAllocation
	ErrInvariant  = internal.ErrInvariant
)

// DefaultThreshold is the text size above which the default policy stops
// using the naive comparison sort.
const DefaultThreshold = 1000000

// Policy chooses the suffix array construction method for a text of n bytes.
type Policy func(n int) suffixarray.Method

// SizeThreshold returns a policy that uses NaiveCompare for texts of at most
// t bytes and DoublingCountingSort for anything larger.
func SizeThreshold(t int) Policy {
	return func(n int) suffixarray.Method {
		if n <= t {
			return suffixarray.NaiveCompare
		}
		return suffixarray.DoublingCountingSort
	}
}

// Fixed returns a policy that always chooses m.
func Fixed(m suffixarray.Method) Policy {
	return func(int) suffixarray.Method { return m }
}

// Config configures the pipeline. The zero value is valid.
type Config struct {
	// Policy selects the construction method.
	// If nil, SizeThreshold(DefaultThreshold) is used.
	Policy Policy

	// ByteOrder of the encoded output. If nil, little-endian is used.
	ByteOrder binary.ByteOrder

	// MemoryLimit bounds the working buffers of each stage in bytes.
	// Zero means unlimited.
	MemoryLimit int64

	// Verify checks the suffix array before computing the LCP array.
	Verify bool
}

func (c *Config) policy() Policy {
	if c == nil || c.Policy == nil {
		return SizeThreshold(DefaultThreshold)
	}
	return c.Policy
}

// Result holds the arrays computed for a single text.
type Result struct {
	Method      suffixarray.Method // Method used to build the suffix array
	SuffixArray []int32
	LCP         []int32
}

// Build computes the suffix array and LCP array of text.
// A nil config is equivalent to the zero Config.
func Build(text []byte, cfg *Config) (*Result, error) {
	if cfg == nil {
		cfg = new(Config)
	}
	m := cfg.policy()(len(text))
	sb := suffixarray.Builder{Method: m, MemoryLimit: cfg.MemoryLimit}
	sa, err := sb.Build(text)
	if err != nil {
		return nil, &Error{Stage: StageSuffixArray, Err: err}
	}

	lc := lcp.Computer{MemoryLimit: cfg.MemoryLimit, Verify: cfg.Verify}
	lcpArr, err := lc.Compute(text, sa)
	if err != nil {
		return nil, &Error{Stage: StageLCP, Err: err}
	}
	return &Result{Method: m, SuffixArray: sa, LCP: lcpArr}, nil
}

// Encode writes the LCP array to w using the configured byte order.
func (r *Result) Encode(w io.Writer, cfg *Config) error {
	var order binary.ByteOrder
	if cfg != nil {
		order = cfg.ByteOrder
	}
	if err := lcp.Encode(w, r.LCP, order); err != nil {
		return &Error{Stage: StageEncode, Err: err}
	}
	return nil
}

// Run builds the LCP array of text and writes its encoding to w.
func Run(w io.Writer, text []byte, cfg *Config) (*Result, error) {
	r, err := Build(text, cfg)
	if err != nil {
		return nil, err
	}
	if err := r.Encode(w, cfg); err != nil {
		return nil, err
	}
	return r, nil
}
