// Copyright 2026, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package bench

import (
	"testing"

	"github.com/dsnet/lcparray/suffixarray"
)

func TestGetName(t *testing.T) {
	var vectors = []struct {
		file string
		size int
		want string
	}{
		{"dna", 1e4, "dna:1e4"},
		{"/data/twain.txt", 1e6, "twain.txt:1e6"},
		{"repeats", 1e3, "repeats:1e3"},
	}
	for i, v := range vectors {
		if got := getName(v.file, v.size); got != v.want {
			t.Errorf("test %d, getName(%q, %d) = %q, want %q", i, v.file, v.size, got, v.want)
		}
	}
}

func TestLoadInput(t *testing.T) {
	for _, g := range Generated {
		b, err := LoadInput(g, 1000)
		if err != nil {
			t.Errorf("%s: unexpected error: %v", g, err)
		}
		if len(b) != 1000 {
			t.Errorf("%s: length mismatch: got %d, want %d", g, len(b), 1000)
		}
	}
	if _, err := LoadInput("does-not-exist.bin", 1000); err == nil {
		t.Errorf("unexpected success loading a missing file")
	}
}

func TestBenchmarkSuite(t *testing.T) {
	if testing.Short() {
		t.SkipNow()
	}
	methods := suffixarray.Methods()
	var ticks int
	results, names := BenchmarkSuite(TestBuildRate, methods, []string{"dna"}, []int{1e3}, func() { ticks++ })
	if ticks != len(methods) {
		t.Errorf("tick count mismatch: got %d, want %d", ticks, len(methods))
	}
	if len(results) != 1 || len(names) != 1 || names[0] != "dna:1e3" {
		t.Fatalf("unexpected shape: %v %v", results, names)
	}
	for j, r := range results[0] {
		if r.R <= 0 {
			t.Errorf("%v: rate is not positive: %v", methods[j], r.R)
		}
	}
	if results[0][0].D != 1 {
		t.Errorf("primary delta mismatch: got %v, want 1", results[0][0].D)
	}
}
