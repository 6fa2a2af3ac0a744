// Copyright 2026, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// +build ignore

// Benchmark tool to compare performance between the suffix array
// construction methods.
//
// Example usage:
//	$ go build -o benchmark main.go
//	$ ./benchmark \
//		-tests   saRate,lcpRate    \
//		-methods naive,doubling,counting \
//		-files   dna,repeats       \
//		-sizes   1e4,1e5
//
//
// For each test, the tool prints a table with one row per input and size,
// and a rate and delta column per method. The delta is relative to the
// first method listed:
//
//	BENCHMARK: saRate
//		benchmark      naive MB/s  delta      doubling MB/s  delta      counting MB/s  delta
//		dna:1e4               ...    ...                ...    ...                ...    ...
//
//	RUNTIME: ...
package main

import (
	"flag"
	"fmt"
	"math"
	"regexp"
	"sort"
	"strings"
	"time"

	strconv "github.com/dsnet/golib/unitconv"
	"github.com/dsnet/lcparray/internal/tool/bench"
	"github.com/dsnet/lcparray/suffixarray"
)

const defaultSizes = "1e4,1e5"

var (
	testToEnum = map[string]int{
		"saRate":  bench.TestBuildRate,
		"lcpRate": bench.TestLCPRate,
		"memory":  bench.TestMemory,
	}
	enumToTest = map[int]string{
		bench.TestBuildRate: "saRate",
		bench.TestLCPRate:   "lcpRate",
		bench.TestMemory:    "memory",
	}
)

func defaultTests() string {
	var d []int
	for k := range enumToTest {
		d = append(d, k)
	}
	sort.Ints(d)
	var s []string
	for _, v := range d {
		s = append(s, enumToTest[v])
	}
	return strings.Join(s, ",")
}

func defaultMethods() string {
	var s []string
	for _, m := range suffixarray.Methods() {
		s = append(s, m.String())
	}
	return strings.Join(s, ",")
}

func main() {
	// Setup flag arguments.
	f0 := flag.String("tests", defaultTests(), "List of different benchmark tests")
	f1 := flag.String("methods", defaultMethods(), "List of construction methods to benchmark")
	f2 := flag.String("paths", ".", "List of paths to search for test files")
	f3 := flag.String("files", strings.Join(bench.Generated, ","), "List of inputs to benchmark")
	f4 := flag.String("sizes", defaultSizes, "List of input sizes to benchmark")
	flag.Parse()

	// Parse the flag arguments.
	var sep = regexp.MustCompile("[,:]")
	var paths, files []string
	var methods []suffixarray.Method
	var tests, sizes []int
	paths = sep.Split(*f2, -1)
	files = sep.Split(*f3, -1)
	for _, s := range sep.Split(*f0, -1) {
		if _, ok := testToEnum[s]; !ok {
			panic("invalid test")
		}
		tests = append(tests, testToEnum[s])
	}
	for _, s := range sep.Split(*f1, -1) {
		m, err := suffixarray.ParseMethod(s)
		if err != nil {
			panic("invalid method")
		}
		methods = append(methods, m)
	}
	for _, s := range sep.Split(*f4, -1) {
		var size int
		if nf, err := strconv.ParsePrefix(s, strconv.AutoParse); err == nil {
			size = int(nf)
		}
		sizes = append(sizes, size)
	}

	ts := time.Now()
	bench.Paths = paths
	runBenchmarks(files, methods, tests, sizes)
	te := time.Now()
	fmt.Printf("RUNTIME: %v\n", te.Sub(ts))
}

func runBenchmarks(files []string, methods []suffixarray.Method, tests, sizes []int) {
	for _, t := range tests {
		fmt.Printf("BENCHMARK: %s\n", enumToTest[t])
		if len(methods) == 0 {
			fmt.Println("\tSKIP: There are no methods selected.")
			fmt.Println()
			continue
		}

		// Progress ticker.
		var cnt int
		tick := func() {
			total := len(methods) * len(files) * len(sizes)
			pct := 100.0 * float64(cnt) / float64(total)
			fmt.Printf("\t[%6.2f%%] %d of %d\r", pct, cnt, total)
			cnt++
		}

		// Perform the bench. This may take some time.
		var title, suffix string
		switch t {
		case bench.TestBuildRate, bench.TestLCPRate:
			title, suffix = "MB/s", ""
		case bench.TestMemory:
			title, suffix = "B/byte", ""
		default:
			panic("unknown test")
		}
		results, names := bench.BenchmarkSuite(t, methods, files, sizes, tick)

		// Print all of the results.
		printResults(results, names, methods, title, suffix)
		fmt.Println()
	}
	fmt.Println()
}

func printResults(results [][]bench.Result, names []string, methods []suffixarray.Method, title, suffix string) {
	// Allocate result table.
	cells := make([][]string, 1+len(names))
	for i := range cells {
		cells[i] = make([]string, 1+2*len(methods))
	}

	// Label the first row.
	cells[0][0] = "benchmark"
	for i, m := range methods {
		cells[0][1+2*i] = m.String() + " " + title
		cells[0][2+2*i] = "delta"
	}

	// Insert all rows.
	for j, row := range results {
		cells[1+j][0] = names[j]
		for i, r := range row {
			if r.R != 0 && !math.IsNaN(r.R) && !math.IsInf(r.R, 0) {
				cells[1+j][1+2*i] = fmt.Sprintf("%.2f", r.R) + suffix
			}
			if r.D != 0 && !math.IsNaN(r.D) && !math.IsInf(r.D, 0) {
				cells[1+j][2+2*i] = fmt.Sprintf("%.2f", r.D) + "x"
			}
		}
	}

	// Compute the maximum lengths.
	maxLens := make([]int, 1+2*len(methods))
	for _, row := range cells {
		for i, s := range row {
			if maxLens[i] < len(s) {
				maxLens[i] = len(s)
			}
		}
	}

	// Print padded versions of all cells.
	for _, row := range cells {
		fmt.Print("\t")
		for i, s := range row {
			switch {
			case i == 0: // Column 0
				row[i] = s + strings.Repeat(" ", maxLens[i]-len(s))
			case i%2 == 1: // Column 1, 3, 5, 7, ...
				row[i] = strings.Repeat(" ", 6+maxLens[i]-len(s)) + s
			case i%2 == 0: // Column 2, 4, 6, 8, ...
				row[i] = strings.Repeat(" ", 2+maxLens[i]-len(s)) + s
			}
			fmt.Print(row[i])
		}
		fmt.Println()
	}
}
