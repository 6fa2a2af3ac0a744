// Copyright 2026, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// +build gofuzz

package lcparray

import (
	"bytes"
	"encoding/binary"

	"github.com/dsnet/lcparray/lcp"
	"github.com/dsnet/lcparray/suffixarray"
)

func Fuzz(data []byte) int {
	sa := testMethods(data)
	lcps := testLCP(data, sa)
	testEncoding(lcps)
	if len(data) > 1 {
		return 1 // Favor inputs with some structure
	}
	return 0
}

// testMethods checks that every construction method produces the same
// suffix array and that the result passes verification.
func testMethods(data []byte) []int32 {
	var want []int32
	for i, m := range suffixarray.Methods() {
		sa, err := suffixarray.Build(data, m)
		if err != nil {
			panic(err)
		}
		if err := suffixarray.Verify(data, sa); err != nil {
			panic(err)
		}
		if i == 0 {
			want = sa
			continue
		}
		for j := range sa {
			if sa[j] != want[j] {
				panic("mismatching suffix arrays")
			}
		}
	}
	return want
}

// testLCP checks every LCP value against a direct comparison of the
// adjacent suffixes.
func testLCP(data []byte, sa []int32) []int32 {
	lcps, err := lcp.Compute(data, sa)
	if err != nil {
		panic(err)
	}
	for i, v := range lcps {
		if i == 0 {
			if v != 0 {
				panic("non-zero first value")
			}
			continue
		}
		a, b := data[sa[i-1]:], data[sa[i]:]
		var k int32
		for int(k) < len(a) && int(k) < len(b) && a[k] == b[k] {
			k++
		}
		if v != k {
			panic("mismatching lcp value")
		}
	}
	return lcps
}

// testEncoding checks that both byte orders round-trip.
func testEncoding(lcps []int32) {
	for _, order := range []binary.ByteOrder{binary.LittleEndian, binary.BigEndian} {
		var bb bytes.Buffer
		if err := lcp.Encode(&bb, lcps, order); err != nil {
			panic(err)
		}
		if int64(bb.Len()) != lcp.EncodedSize(len(lcps)) {
			panic("mismatching encoded size")
		}
		got, err := lcp.Decode(&bb, order)
		if err != nil {
			panic(err)
		}
		if len(got) != len(lcps) {
			panic("mismatching decoded length")
		}
		for i := range got {
			if got[i] != lcps[i] {
				panic("mismatching decoded values")
			}
		}
	}
}
