// Copyright 2026, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Tool to construct the LCP array of a file and write it as a flat binary
// file of 4-byte integers, suitable as input for DACs.
//
// Example usage:
//	$ go build -o lcpbuild .
//	$ ./lcpbuild -order little -threshold 1e6 dna.100MB dna_lcp.bin
//
// With -decompress, inputs compressed with gzip or xz are decompressed before
// indexing. Otherwise the input is indexed byte for byte.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	strconv "github.com/dsnet/golib/unitconv"
	"github.com/dsnet/lcparray"
	"github.com/dsnet/lcparray/lcp"
	"github.com/dsnet/lcparray/suffixarray"
	"github.com/schollz/progressbar/v3"
)

const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("lcpbuild", flag.ContinueOnError)
	fs.SetOutput(stderr)
	f0 := fs.String("method", "auto", "Suffix array method: auto, naive, doubling, or counting")
	f1 := fs.String("threshold", "1e6", "Largest input for which auto uses the naive method")
	f2 := fs.String("order", "little", "Byte order of the output: little or big")
	f3 := fs.String("mem", "0", "Limit on working buffers per stage in bytes (0 is unlimited)")
	f4 := fs.Bool("stats", true, "Print statistics about the LCP array")
	f5 := fs.Bool("verify", false, "Verify the suffix array before computing the LCP array")
	f6 := fs.Bool("progress", true, "Show a progress bar while writing the output")
	f7 := fs.Bool("decompress", false, "Decompress gzip or xz input before indexing")
	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: lcpbuild [flags] <input_text_file> <output_binary_file>\n\n")
		fmt.Fprintf(stderr, "Constructs the LCP array of the input file and writes it\n")
		fmt.Fprintf(stderr, "as a binary file compatible with DACs.\n\n")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return exitUsage
	}
	if fs.NArg() != 2 {
		fs.Usage()
		return exitUsage
	}
	input, output := fs.Arg(0), fs.Arg(1)

	// Parse the flag arguments.
	cfg := new(lcparray.Config)
	threshold, err := strconv.ParsePrefix(*f1, strconv.AutoParse)
	if err != nil || threshold < 0 {
		fmt.Fprintf(stderr, "invalid threshold: %q\n", *f1)
		return exitUsage
	}
	if *f0 == "auto" {
		cfg.Policy = lcparray.SizeThreshold(int(threshold))
	} else {
		m, err := suffixarray.ParseMethod(*f0)
		if err != nil {
			fmt.Fprintf(stderr, "invalid method: %q\n", *f0)
			return exitUsage
		}
		cfg.Policy = lcparray.Fixed(m)
	}
	if cfg.ByteOrder, err = lcp.ParseByteOrder(*f2); err != nil {
		fmt.Fprintf(stderr, "invalid byte order: %q\n", *f2)
		return exitUsage
	}
	mem, err := strconv.ParsePrefix(*f3, strconv.AutoParse)
	if err != nil || mem < 0 {
		fmt.Fprintf(stderr, "invalid memory limit: %q\n", *f3)
		return exitUsage
	}
	cfg.MemoryLimit = int64(mem)
	cfg.Verify = *f5

	fmt.Fprintf(stdout, "LCP Array Constructor\n")
	fmt.Fprintf(stdout, "Input file: %s\n", input)
	fmt.Fprintf(stdout, "Output file: %s\n", output)

	fmt.Fprintf(stdout, "\nReading input file...\n")
	text, err := readInput(input, *f7)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitError
	}
	fmt.Fprintf(stdout, "File size: %s\n", formatSize(int64(len(text))))

	ts := time.Now()
	fmt.Fprintf(stdout, "\nConstructing suffix array using the %v method...\n", cfg.Policy(len(text)))
	res, err := lcparray.Build(text, cfg)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitError
	}
	fmt.Fprintf(stdout, "Suffix array and LCP construction time: %.2f seconds\n", time.Since(ts).Seconds())

	fmt.Fprintf(stdout, "\nWriting LCP array to binary file...\n")
	if err := writeOutput(output, res, cfg, *f6, stderr); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitError
	}

	if *f4 {
		printStats(stdout, lcp.Summarize(res.LCP))
	}
	fmt.Fprintf(stdout, "\nTotal processing time: %.2f seconds\n", time.Since(ts).Seconds())
	fmt.Fprintf(stdout, "LCP array successfully written to '%s'\n", output)
	return exitOK
}

// writeOutput encodes the LCP array into the named file.
// The file is removed if it could not be written completely.
func writeOutput(name string, res *lcparray.Result, cfg *lcparray.Config, progress bool, stderr io.Writer) (err error) {
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
		if err != nil {
			os.Remove(name)
		}
	}()

	bw := bufio.NewWriterSize(f, 1<<16)
	var w io.Writer = bw
	if progress && len(res.LCP) > 0 {
		bar := progressbar.NewOptions64(lcp.EncodedSize(len(res.LCP)),
			progressbar.OptionSetWriter(stderr),
			progressbar.OptionSetDescription("writing"),
			progressbar.OptionShowBytes(true),
			progressbar.OptionThrottle(100*time.Millisecond),
			progressbar.OptionClearOnFinish(),
		)
		defer bar.Finish()
		w = io.MultiWriter(bw, bar)
	}
	if err := res.Encode(w, cfg); err != nil {
		return err
	}
	return bw.Flush()
}

func printStats(w io.Writer, s lcp.Stats) {
	fmt.Fprintf(w, "\nLCP Array Statistics:\n")
	fmt.Fprintf(w, "====================\n")
	fmt.Fprintf(w, "Number of elements: %d\n", s.Count)
	fmt.Fprintf(w, "Maximum value: %d\n", s.Max)
	fmt.Fprintf(w, "Average value: %.2f\n", s.Mean)
	fmt.Fprintf(w, "Median value: %d\n", s.Median)
	fmt.Fprintf(w, "Most frequent value: %d (%.2f%%)\n", s.Mode, s.ModeShare())
	fmt.Fprintf(w, "Binary file size: %s\n", formatSize(s.EncodedSize))
}

func formatSize(n int64) string {
	if n < 1024 {
		return fmt.Sprintf("%d bytes", n)
	}
	return fmt.Sprintf("%d bytes (%sB)", n, strconv.FormatPrefix(float64(n), strconv.Base1024, 2))
}
