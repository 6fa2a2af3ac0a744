// Copyright 2026, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package lcp

import (
	"encoding/binary"
	"fmt"
	"io"
	"strings"

	"github.com/dsnet/lcparray/internal"
)

// ElementSize is the number of bytes used to encode each LCP value.
const ElementSize = 4

var errUnknownOrder error = internal.Error("unknown byte order")

// ParseByteOrder parses "little" (or "le") and "big" (or "be").
func ParseByteOrder(s string) (binary.ByteOrder, error) {
	switch strings.ToLower(s) {
	case "little", "le":
		return binary.LittleEndian, nil
	case "big", "be":
		return binary.BigEndian, nil
	}
	return nil, errUnknownOrder
}

// Writer encodes LCP values as fixed-width integers.
type Writer struct {
	wr    io.Writer        // Underlying writer
	order binary.ByteOrder // Byte order of each element
	cnt   int64            // Total number of bytes written
	err   error            // Persistent error

	buf [4096]byte
}

// NewWriter creates a new Writer. A nil order selects little-endian.
func NewWriter(wr io.Writer, order binary.ByteOrder) *Writer {
	w := new(Writer)
	w.Reset(wr, order)
	return w
}

// Reset discards the Writer's state and makes it equivalent to the result
// of NewWriter, but writing to wr instead.
func (w *Writer) Reset(wr io.Writer, order binary.ByteOrder) {
	if order == nil {
		order = binary.LittleEndian
	}
	*w = Writer{wr: wr, order: order}
}

// WriteCount reports the number of bytes written to the underlying writer.
func (w *Writer) WriteCount() int64 { return w.cnt }

// WriteValues encodes and writes all values. Nothing is buffered between
// calls. Once a write fails, every later call reports the same error.
func (w *Writer) WriteValues(vals []int32) error {
	for len(vals) > 0 && w.err == nil {
		m := len(vals)
		if m > len(w.buf)/ElementSize {
			m = len(w.buf) / ElementSize
		}
		for i, v := range vals[:m] {
			if v < 0 {
				w.err = internal.Invariantf("negative LCP value %d", v)
				return w.err
			}
			w.order.PutUint32(w.buf[i*ElementSize:], uint32(v))
		}
		vals = vals[m:]

		n, err := w.wr.Write(w.buf[:m*ElementSize])
		w.cnt += int64(n)
		if err == nil && n < m*ElementSize {
			err = io.ErrShortWrite
		}
		if err != nil {
			w.err = fmt.Errorf("lcparray: write failed after %d bytes: %w", w.cnt, err)
		}
	}
	return w.err
}

// Encode writes lcp to wr as 4-byte integers in the given byte order.
// Exactly 4*len(lcp) bytes are written on success.
func Encode(wr io.Writer, lcp []int32, order binary.ByteOrder) error {
	return NewWriter(wr, order).WriteValues(lcp)
}

// EncodedSize reports the number of bytes Encode writes for n values.
func EncodedSize(n int) int64 { return int64(n) * ElementSize }
