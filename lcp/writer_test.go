// Copyright 2026, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package lcp

import (
	"bytes"
	"encoding/binary"
	"encoding/hex"
	"errors"
	"io"
	"io/ioutil"
	"math"
	"testing"

	"github.com/dsnet/lcparray/internal/testutil"
	"github.com/google/go-cmp/cmp"
)

func TestEncode(t *testing.T) {
	var vectors = []struct {
		input  []int32
		order  binary.ByteOrder
		output string // Hex-encoded output
	}{{
		input:  []int32{},
		order:  binary.LittleEndian,
		output: "",
	}, {
		input:  []int32{0, 1, 3, 0, 0, 2},
		order:  binary.LittleEndian,
		output: "00000000" + "01000000" + "03000000" + "00000000" + "00000000" + "02000000",
	}, {
		input:  []int32{0, 1, 3, 0, 0, 2},
		order:  binary.BigEndian,
		output: "00000000" + "00000001" + "00000003" + "00000000" + "00000000" + "00000002",
	}, {
		input:  []int32{0x01020304, math.MaxInt32},
		order:  binary.LittleEndian,
		output: "04030201" + "ffffff7f",
	}, {
		input:  []int32{0x01020304, math.MaxInt32},
		order:  binary.BigEndian,
		output: "01020304" + "7fffffff",
	}, {
		input:  []int32{258},
		order:  nil, // Defaults to little-endian
		output: "02010000",
	}}

	for i, v := range vectors {
		var buf bytes.Buffer
		if err := Encode(&buf, v.input, v.order); err != nil {
			t.Errorf("test %d, unexpected error: %v", i, err)
			continue
		}
		if got := hex.EncodeToString(buf.Bytes()); got != v.output {
			t.Errorf("test %d, output mismatch:\ngot  %s\nwant %s", i, got, v.output)
		}
		if int64(buf.Len()) != EncodedSize(len(v.input)) {
			t.Errorf("test %d, size mismatch: got %d, want %d", i, buf.Len(), EncodedSize(len(v.input)))
		}
	}
}

func TestRoundTrip(t *testing.T) {
	r := testutil.NewRand(0)
	for _, n := range []int{0, 1, 1023, 1024, 1025, 5000} {
		lcp := make([]int32, n)
		for i := range lcp {
			lcp[i] = int32(r.Intn(math.MaxInt32))
		}
		for _, order := range []binary.ByteOrder{binary.LittleEndian, binary.BigEndian} {
			var buf bytes.Buffer
			wr := NewWriter(&buf, order)
			if err := wr.WriteValues(lcp); err != nil {
				t.Fatalf("n=%d, %v: unexpected error: %v", n, order, err)
			}
			if wr.WriteCount() != int64(4*n) {
				t.Errorf("n=%d, %v: write count mismatch: got %d, want %d", n, order, wr.WriteCount(), 4*n)
			}
			got, err := Decode(&buf, order)
			if err != nil {
				t.Fatalf("n=%d, %v: unexpected error: %v", n, order, err)
			}
			if diff := cmp.Diff(lcp, got); diff != "" {
				t.Errorf("n=%d, %v: round-trip mismatch (-want +got):\n%s", n, order, diff)
			}
		}
	}
}

func TestWriterErrors(t *testing.T) {
	errFail := errors.New("device full")
	lcp := make([]int32, 3000)

	// The underlying writer fails after some bytes.
	bw := &testutil.BuggyWriter{W: ioutil.Discard, N: 5000, Err: errFail}
	wr := NewWriter(bw, binary.LittleEndian)
	if err := wr.WriteValues(lcp); !errors.Is(err, errFail) {
		t.Errorf("error mismatch: got %v, want %v", err, errFail)
	}
	if wr.WriteCount() != 5000 {
		t.Errorf("write count mismatch: got %d, want %d", wr.WriteCount(), 5000)
	}
	if err := wr.WriteValues(lcp[:1]); !errors.Is(err, errFail) {
		t.Errorf("error is not persistent: got %v, want %v", err, errFail)
	}

	// The underlying writer silently drops bytes.
	sw := &testutil.ShortWriter{W: ioutil.Discard, N: 10}
	if err := Encode(sw, lcp, nil); !errors.Is(err, io.ErrShortWrite) {
		t.Errorf("error mismatch: got %v, want %v", err, io.ErrShortWrite)
	}

	// Negative values are not representable.
	if err := Encode(ioutil.Discard, []int32{0, -1}, nil); !errors.Is(err, ErrInvariant) {
		t.Errorf("error mismatch: got %v, want %v", err, ErrInvariant)
	}
}

func TestDecodeCorrupt(t *testing.T) {
	var vectors = []struct {
		input string // Hex-encoded input
		order binary.ByteOrder
		want  []int32
		err   error
	}{
		{input: "", order: binary.LittleEndian, want: []int32{}},
		{input: "01000000", order: binary.LittleEndian, want: []int32{1}},
		{input: "01000000", order: binary.BigEndian, want: []int32{0x01000000}},
		{input: "010000", order: binary.LittleEndian, err: ErrCorrupt},
		{input: "0100000002", order: binary.LittleEndian, err: ErrCorrupt},
		{input: "ffffffff", order: binary.LittleEndian, err: ErrCorrupt},
		{input: "00000080", order: binary.BigEndian, want: []int32{128}},
	}

	for i, v := range vectors {
		b, _ := hex.DecodeString(v.input)
		got, err := Decode(bytes.NewReader(b), v.order)
		if err != v.err {
			t.Errorf("test %d, error mismatch: got %v, want %v", i, err, v.err)
		}
		if diff := cmp.Diff(v.want, got); diff != "" {
			t.Errorf("test %d, output mismatch (-want +got):\n%s", i, diff)
		}
	}
}

func TestParseByteOrder(t *testing.T) {
	var vectors = []struct {
		input string
		want  binary.ByteOrder
		err   error
	}{
		{"little", binary.LittleEndian, nil},
		{"LE", binary.LittleEndian, nil},
		{"big", binary.BigEndian, nil},
		{"be", binary.BigEndian, nil},
		{"native", nil, errUnknownOrder},
	}
	for i, v := range vectors {
		got, err := ParseByteOrder(v.input)
		if got != v.want || err != v.err {
			t.Errorf("test %d, ParseByteOrder(%q) = (%v, %v), want (%v, %v)", i, v.input, got, err, v.want, v.err)
		}
	}
}
