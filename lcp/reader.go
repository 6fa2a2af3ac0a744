// Copyright 2026, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package lcp

import (
	"encoding/binary"
	"io"
	"math"
)

// Reader decodes LCP values produced by Writer.
type Reader struct {
	rd    io.Reader        // Underlying reader
	order binary.ByteOrder // Byte order of each element
	cnt   int64            // Total number of bytes read
	err   error            // Persistent error

	buf [4096]byte
}

// NewReader creates a new Reader. A nil order selects little-endian.
func NewReader(rd io.Reader, order binary.ByteOrder) *Reader {
	r := new(Reader)
	r.Reset(rd, order)
	return r
}

// Reset discards the Reader's state and makes it equivalent to the result
// of NewReader, but reading from rd instead.
func (r *Reader) Reset(rd io.Reader, order binary.ByteOrder) {
	if order == nil {
		order = binary.LittleEndian
	}
	*r = Reader{rd: rd, order: order}
}

// ReadCount reports the number of bytes read from the underlying reader.
func (r *Reader) ReadCount() int64 { return r.cnt }

// ReadValues decodes up to len(vals) values into vals and reports how many
// were decoded. At the end of the stream it returns io.EOF.
// A stream that ends in the middle of an element, or holds a value that
// does not fit in an int32, reports ErrCorrupt.
func (r *Reader) ReadValues(vals []int32) (int, error) {
	var cnt int
	for cnt < len(vals) && r.err == nil {
		m := len(vals) - cnt
		if m > len(r.buf)/ElementSize {
			m = len(r.buf) / ElementSize
		}
		n, err := io.ReadFull(r.rd, r.buf[:m*ElementSize])
		r.cnt += int64(n)
		for i := 0; i+ElementSize <= n; i += ElementSize {
			v := r.order.Uint32(r.buf[i:])
			if v > math.MaxInt32 {
				r.err = ErrCorrupt
				return cnt, r.err
			}
			vals[cnt] = int32(v)
			cnt++
		}
		switch {
		case err == io.ErrUnexpectedEOF && n%ElementSize != 0:
			r.err = ErrCorrupt
		case err == io.ErrUnexpectedEOF || err == io.EOF:
			r.err = io.EOF
		case err != nil:
			r.err = err
		}
	}
	if cnt > 0 && r.err == io.EOF {
		return cnt, nil
	}
	if cnt == len(vals) {
		return cnt, nil
	}
	return cnt, r.err
}

// Decode reads the entire stream and returns the decoded values.
func Decode(rd io.Reader, order binary.ByteOrder) ([]int32, error) {
	r := NewReader(rd, order)
	var lcp []int32
	chunk := make([]int32, 1024)
	for {
		n, err := r.ReadValues(chunk)
		lcp = append(lcp, chunk[:n]...)
		if err == io.EOF {
			if lcp == nil {
				lcp = []int32{}
			}
			return lcp, nil
		}
		if err != nil {
			return nil, err
		}
	}
}
