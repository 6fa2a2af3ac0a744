// Copyright 2026, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package main

import (
	"bytes"
	"encoding/binary"
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/dsnet/lcparray/lcp"
	"github.com/dsnet/lcparray/suffixarray"
	"github.com/klauspost/compress/gzip"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ulikunitz/xz"
)

func writeFile(t *testing.T, dir, name string, data []byte) string {
	t.Helper()
	p := filepath.Join(dir, name)
	require.NoError(t, ioutil.WriteFile(p, data, 0664))
	return p
}

func gzipData(t *testing.T, data []byte) []byte {
	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	_, err := zw.Write(data)
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	return buf.Bytes()
}

func xzData(t *testing.T, data []byte) []byte {
	var buf bytes.Buffer
	zw, err := xz.NewWriter(&buf)
	require.NoError(t, err)
	_, err = zw.Write(data)
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	return buf.Bytes()
}

func TestRun(t *testing.T) {
	banana := []byte("banana")
	want := []int32{0, 1, 3, 0, 0, 2}

	tests := map[string]struct {
		input []byte
		args  []string
		order binary.ByteOrder
	}{
		"default":     {banana, nil, binary.LittleEndian},
		"big":         {banana, []string{"-order", "big"}, binary.BigEndian},
		"naive":       {banana, []string{"-method", "naive"}, binary.LittleEndian},
		"doubling":    {banana, []string{"-method", "doubling", "-verify"}, binary.LittleEndian},
		"counting":    {banana, []string{"-method", "counting"}, binary.LittleEndian},
		"threshold":   {banana, []string{"-threshold", "2"}, binary.LittleEndian},
		"memory":      {banana, []string{"-mem", "1Ki"}, binary.LittleEndian},
		"gzip":        {gzipData(t, banana), []string{"-decompress"}, binary.LittleEndian},
		"xz":          {xzData(t, banana), []string{"-decompress", "-order", "be"}, binary.BigEndian},
		"plain text":  {banana, []string{"-decompress"}, binary.LittleEndian},
		"no stats":    {banana, []string{"-stats=false"}, binary.LittleEndian},
		"no progress": {banana, []string{"-progress=false"}, binary.LittleEndian},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			dir := t.TempDir()
			in := writeFile(t, dir, "input", tc.input)
			out := filepath.Join(dir, "output.bin")

			var stdout bytes.Buffer
			args := append(append([]string{}, tc.args...), in, out)
			require.Equal(t, exitOK, run(args, &stdout, ioutil.Discard))

			b, err := ioutil.ReadFile(out)
			require.NoError(t, err)
			assert.Len(t, b, 4*len(want))
			got, err := lcp.Decode(bytes.NewReader(b), tc.order)
			require.NoError(t, err)
			assert.Equal(t, want, got)
			assert.Contains(t, stdout.String(), "LCP array successfully written")
		})
	}
}

func TestRunStats(t *testing.T) {
	dir := t.TempDir()
	in := writeFile(t, dir, "input", []byte("banana"))
	out := filepath.Join(dir, "output.bin")

	var stdout bytes.Buffer
	require.Equal(t, exitOK, run([]string{"-progress=false", in, out}, &stdout, ioutil.Discard))
	s := stdout.String()
	assert.Contains(t, s, "using the naive method")
	assert.Contains(t, s, "Number of elements: 6\n")
	assert.Contains(t, s, "Maximum value: 3\n")
	assert.Contains(t, s, "Average value: 1.00\n")
	assert.Contains(t, s, "Median value: 0\n")
	assert.Contains(t, s, "Most frequent value: 0 (50.00%)\n")
	assert.Contains(t, s, "Binary file size: 24 bytes\n")
}

func TestRunEmpty(t *testing.T) {
	dir := t.TempDir()
	in := writeFile(t, dir, "input", nil)
	out := filepath.Join(dir, "output.bin")

	require.Equal(t, exitOK, run([]string{in, out}, ioutil.Discard, ioutil.Discard))
	b, err := ioutil.ReadFile(out)
	require.NoError(t, err)
	assert.Empty(t, b)
}

func TestRunErrors(t *testing.T) {
	dir := t.TempDir()
	in := writeFile(t, dir, "input", []byte("mississippi"))
	out := filepath.Join(dir, "output.bin")

	noDir := filepath.Join(dir, "nodir", "out.bin")
	tests := map[string]struct {
		args []string
		out  string // Output path that must not be created
		code int
	}{
		"no args":        {nil, out, exitUsage},
		"one arg":        {[]string{in}, out, exitUsage},
		"bad flag":       {[]string{"-nope", in, out}, out, exitUsage},
		"bad method":     {[]string{"-method", "sais", in, out}, out, exitUsage},
		"bad order":      {[]string{"-order", "middle", in, out}, out, exitUsage},
		"bad threshold":  {[]string{"-threshold", "lots", in, out}, out, exitUsage},
		"bad mem":        {[]string{"-mem", "-5", in, out}, out, exitUsage},
		"missing input":  {[]string{filepath.Join(dir, "missing"), out}, out, exitError},
		"bad gzip":       {[]string{"-decompress", writeFile(t, dir, "bad.gz", []byte{0x1f, 0x8b, 0, 0}), out}, out, exitError},
		"memory limit":   {[]string{"-mem", "16", in, out}, out, exitError},
		"missing outdir": {[]string{in, noDir}, noDir, exitError},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			var stderr bytes.Buffer
			assert.Equal(t, tc.code, run(tc.args, ioutil.Discard, &stderr))
			assert.NotEmpty(t, stderr.String())
			_, err := os.Stat(tc.out)
			assert.True(t, os.IsNotExist(err), "output file must not exist")
		})
	}
}

func TestRunRawMagic(t *testing.T) {
	// Inputs that happen to start with a compression header are indexed
	// byte for byte unless decompression is requested.
	for _, input := range [][]byte{
		{0x1f, 0x8b, 'A', 'A'},
		{0xfd, '7', 'z', 'X', 'Z', 0x00, 'A'},
	} {
		dir := t.TempDir()
		in := writeFile(t, dir, "input", input)
		out := filepath.Join(dir, "output.bin")

		var stderr bytes.Buffer
		require.Equal(t, exitOK, run([]string{"-progress=false", in, out}, ioutil.Discard, &stderr), stderr.String())
		b, err := ioutil.ReadFile(out)
		require.NoError(t, err)
		assert.Len(t, b, 4*len(input))

		sa, err := suffixarray.Build(input, suffixarray.NaiveCompare)
		require.NoError(t, err)
		want, err := lcp.Compute(input, sa)
		require.NoError(t, err)
		got, err := lcp.Decode(bytes.NewReader(b), binary.LittleEndian)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
}
