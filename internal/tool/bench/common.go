// Copyright 2026, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Package bench compares the performance of the suffix array construction
// methods with respect to construction speed, LCP speed, and memory use.
package bench

import (
	"fmt"
	"os"
	"path"
	"regexp"
	"runtime"
	"strings"
	"testing"

	strconv "github.com/dsnet/golib/unitconv"
	"github.com/dsnet/lcparray/internal/testutil"
	"github.com/dsnet/lcparray/lcp"
	"github.com/dsnet/lcparray/suffixarray"
)

const (
	TestBuildRate = iota
	TestLCPRate
	TestMemory
)

var (
	// List of search paths for input files.
	Paths []string

	// Inputs that are generated instead of loaded from a file.
	Generated = []string{"zeros", "random", "dna", "text", "repeats"}
)

type Result struct {
	R float64 // Rate (MB/s) or working bytes per input byte
	D float64 // Delta ratio relative to primary benchmark
}

// BenchmarkBuild benchmarks suffix array construction of input with method m.
func BenchmarkBuild(input []byte, m suffixarray.Method) testing.BenchmarkResult {
	return testing.Benchmark(func(b *testing.B) {
		b.StopTimer()
		runtime.GC()
		b.ReportAllocs()
		b.StartTimer()
		for i := 0; i < b.N; i++ {
			if _, err := suffixarray.Build(input, m); err != nil {
				b.Fatalf("unexpected error: %v", err)
			}
			b.SetBytes(int64(len(input)))
		}
	})
}

// BenchmarkLCP benchmarks the LCP computation of input given a suffix array
// built with method m.
func BenchmarkLCP(input []byte, m suffixarray.Method) testing.BenchmarkResult {
	sa, err := suffixarray.Build(input, m)
	if err != nil {
		return testing.BenchmarkResult{}
	}
	return testing.Benchmark(func(b *testing.B) {
		b.StopTimer()
		runtime.GC()
		b.StartTimer()
		for i := 0; i < b.N; i++ {
			if _, err := lcp.Compute(input, sa); err != nil {
				b.Fatalf("unexpected error: %v", err)
			}
			b.SetBytes(int64(len(input)))
		}
	})
}

func rate(result testing.BenchmarkResult) Result {
	if result.N == 0 {
		return Result{}
	}
	us := (float64(result.T.Nanoseconds()) / 1e3) / float64(result.N)
	return Result{R: float64(result.Bytes) / us}
}

// BenchmarkSuite runs the given test across all methods, files, and sizes.
//
// The values returned have the following structure:
//	results: [len(files)*len(sizes)][len(methods)]Result
//	names:   [len(files)*len(sizes)]string
func BenchmarkSuite(test int, methods []suffixarray.Method, files []string, sizes []int, tick func()) (results [][]Result, names []string) {
	return benchmarkSuite(methods, files, sizes, tick,
		func(input []byte, m suffixarray.Method) Result {
			switch test {
			case TestBuildRate:
				return rate(BenchmarkBuild(input, m))
			case TestLCPRate:
				return rate(BenchmarkLCP(input, m))
			case TestMemory:
				res := BenchmarkBuild(input, m)
				if res.N == 0 || len(input) == 0 {
					return Result{}
				}
				return Result{R: float64(res.AllocedBytesPerOp()) / float64(len(input))}
			default:
				panic("unknown test")
			}
		})
}

type benchFunc func(input []byte, m suffixarray.Method) Result

func benchmarkSuite(methods []suffixarray.Method, files []string, sizes []int, tick func(), run benchFunc) ([][]Result, []string) {
	// Allocate buffers for the result.
	d0 := len(files) * len(sizes)
	d1 := len(methods)
	results := make([][]Result, d0)
	for i := range results {
		results[i] = make([]Result, d1)
	}
	names := make([]string, d0)

	// Run the benchmark for every method, file, and size.
	var i int
	for _, f := range files {
		for _, n := range sizes {
			b, err := LoadInput(f, n)
			name := getName(f, len(b))
			for j, m := range methods {
				if tick != nil {
					tick()
				}
				names[i] = name
				if err == nil {
					results[i][j] = run(b, m)
				}
				results[i][j].D = results[i][j].R / results[i][0].R
			}
			i++
		}
	}
	return results, names
}

// LoadInput returns n bytes of the named input. Generated inputs are
// synthesized; anything else is loaded from the search paths.
func LoadInput(name string, n int) (b []byte, err error) {
	for _, g := range Generated {
		if name == g {
			return testutil.Generate(name, 0, n), nil
		}
	}
	defer func() {
		if ex := recover(); ex != nil {
			err = fmt.Errorf("%v", ex)
		}
	}()
	return testutil.MustLoadFile(getPath(name), n), nil
}

func getPath(file string) string {
	if path.IsAbs(file) {
		return file
	}
	for _, p := range Paths {
		p = path.Join(p, file)
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	return file
}

func getName(f string, n int) string {
	var sn string
	switch n {
	case 1e3, 1e4, 1e5, 1e6, 1e7, 1e8, 1e9:
		s := fmt.Sprintf("%e", float64(n))
		re := regexp.MustCompile("\\.0*e\\+0*")
		sn = re.ReplaceAllString(s, "e")
	default:
		s := strconv.FormatPrefix(float64(n), strconv.Base1024, 2)
		sn = strings.Replace(s, ".00", "", -1)
	}
	return fmt.Sprintf("%s:%s", path.Base(f), sn)
}
