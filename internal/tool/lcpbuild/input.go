// Copyright 2026, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package main

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"io/ioutil"
	"os"

	"github.com/klauspost/compress/gzip"
	"github.com/ulikunitz/xz"
)

var (
	magicGzip = []byte{0x1f, 0x8b}
	magicXZ   = []byte{0xfd, '7', 'z', 'X', 'Z', 0x00}
)

// readInput reads the entire named file into memory. If decompress is set,
// files starting with a gzip or xz header are decompressed. Otherwise the
// content is returned as is.
func readInput(name string, decompress bool) ([]byte, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var rd io.Reader = f
	if decompress {
		if rd, err = newInputReader(f); err != nil {
			return nil, fmt.Errorf("%s: %v", name, err)
		}
	}
	b, err := ioutil.ReadAll(rd)
	if err != nil {
		return nil, fmt.Errorf("%s: %v", name, err)
	}
	return b, nil
}

func newInputReader(r io.Reader) (io.Reader, error) {
	br := bufio.NewReader(r)
	hdr, _ := br.Peek(len(magicXZ))
	switch {
	case bytes.HasPrefix(hdr, magicXZ):
		return xz.NewReader(br)
	case bytes.HasPrefix(hdr, magicGzip):
		return gzip.NewReader(br)
	default:
		return br, nil
	}
}
