// Copyright 2026, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package suffixarray

import (
	"bytes"
	"sort"
)

// Compare reports the order of the suffixes of text starting at i and j.
// The result is -1, 0, or +1. The end of the text sorts before any byte.
func Compare(text []byte, i, j int) int {
	return bytes.Compare(text[i:], text[j:])
}

// naive sorts all suffix offsets by comparing the suffixes byte by byte.
// Each comparison may scan up to n bytes.
func (c *construction) naive() []int32 {
	text := c.text
	sa := c.budget.Int32s(len(text))
	for i := range sa {
		sa[i] = int32(i)
	}
	sort.Slice(sa, func(i, j int) bool {
		return Compare(text, int(sa[i]), int(sa[j])) < 0
	})
	return sa
}
