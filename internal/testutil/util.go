// Copyright 2026, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Package testutil is a collection of testing helper methods.
package testutil

import (
	"bytes"
	"io"
	"io/ioutil"
	"sort"
)

// ResizeData resizes the input. If n < 0, then the original input will be
// returned as is. If n <= len(input), then the input slice will be truncated.
// However, if n > len(input), then the input will be replicated to fill in
// the missing bytes, but each replicated string will be XORed by some byte
// mask so that the copies are not identical suffixes of one another.
//
// If n > len(input), then len(input) must be > 0.
func ResizeData(input []byte, n int) []byte {
	if n < 0 {
		return input
	}
	if len(input) >= n {
		return input[:n]
	}
	if len(input) == 0 {
		panic("unable to replicate an empty string")
	}

	var mask byte
	output := make([]byte, n)
	for i := range output {
		idx := i % len(input)
		output[i] = input[idx] ^ mask
		if idx == len(input)-1 {
			mask++
		}
	}
	return output
}

// MustLoadFile must load the first n bytes of a file or else panics.
// The file is replicated with ResizeData if it is shorter than n.
// If n < 0, then the whole file is returned.
func MustLoadFile(file string, n int) []byte {
	b, err := ioutil.ReadFile(file)
	if err != nil {
		panic(err)
	}
	return ResizeData(b, n)
}

// NaiveSuffixArray computes the suffix array of text by directly sorting all
// suffixes. It serves as the reference for the construction methods.
func NaiveSuffixArray(text []byte) []int32 {
	sa := make([]int32, len(text))
	for i := range sa {
		sa[i] = int32(i)
	}
	sort.SliceStable(sa, func(i, j int) bool {
		return bytes.Compare(text[sa[i]:], text[sa[j]:]) < 0
	})
	return sa
}

// NaiveLCP computes the LCP array of text from sa by comparing every pair of
// adjacent suffixes from their first byte.
func NaiveLCP(text []byte, sa []int32) []int32 {
	lcp := make([]int32, len(sa))
	for i := 1; i < len(sa); i++ {
		a, b := text[sa[i-1]:], text[sa[i]:]
		var k int
		for k < len(a) && k < len(b) && a[k] == b[k] {
			k++
		}
		lcp[i] = int32(k)
	}
	return lcp
}

// BuggyWriter returns Err after N bytes have been written to W.
type BuggyWriter struct {
	W   io.Writer
	N   int64 // Number of valid bytes to write
	Err error // Return this error after N bytes
}

func (bw *BuggyWriter) Write(buf []byte) (int, error) {
	if int64(len(buf)) > bw.N {
		buf = buf[:bw.N]
	}
	n, err := bw.W.Write(buf)
	bw.N -= int64(n)
	if err == nil && bw.N <= 0 {
		return n, bw.Err
	}
	return n, err
}

// ShortWriter accepts at most N bytes per call without reporting an error,
// violating the io.Writer contract.
type ShortWriter struct {
	W io.Writer
	N int
}

func (sw *ShortWriter) Write(buf []byte) (int, error) {
	if len(buf) > sw.N {
		buf = buf[:sw.N]
	}
	return sw.W.Write(buf)
}
