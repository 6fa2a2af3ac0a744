// Copyright 2026, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package testutil

// Repeats generates n bytes where most of the data is a copy of some earlier
// data. Since the source data is mostly random, the text has long common
// prefixes between suffixes at irregular intervals, which is the case
// where the LCP scan does most of its work.
func Repeats(r *Rand, n int) []byte {
	randLen := func() (l int) {
		p := r.Float64()
		switch {
		case p <= 0.15: // 4..8
			l = 4 + r.Intn(4)
		case p <= 0.30: // 8..16
			l = 8 + r.Intn(8)
		case p <= 0.45: // 16..32
			l = 16 + r.Intn(16)
		case p <= 0.60: // 32..64
			l = 32 + r.Intn(32)
		case p <= 0.75: // 64..128
			l = 64 + r.Intn(64)
		case p <= 0.90: // 128..256
			l = 128 + r.Intn(128)
		default: // 256..512
			l = 256 + r.Intn(256)
		}
		return l
	}

	var b []byte
	randDist := func() (d int) {
		for d == 0 || d > len(b) {
			p := r.Float64()
			switch {
			case p <= 0.2: // 1..4
				d = 1 + r.Intn(3)
			case p <= 0.4: // 4..64
				d = 4 + r.Intn(60)
			case p <= 0.7: // 64..1024
				d = 64 + r.Intn(960)
			default: // 1024..32768
				d = 1024 + r.Intn(31744)
			}
		}
		return d
	}

	writeRand := func(l int) {
		b = append(b, r.Bytes(l)...)
	}
	writeCopy := func(d, l int) {
		for i := 0; i < l; i++ {
			b = append(b, b[len(b)-d])
		}
	}

	writeRand(randLen())
	for len(b) < n {
		p := r.Float64()
		switch {
		case p <= 0.1:
			writeRand(randLen())
		default:
			writeCopy(randDist(), randLen())
		}
	}
	return b[:n]
}

// Generate returns n bytes of the named synthetic input. Known names are
// "zeros", "random", "dna", "text", and "repeats". It returns nil for any
// other name.
func Generate(name string, seed, n int) []byte {
	r := NewRand(seed)
	switch name {
	case "zeros":
		return make([]byte, n)
	case "random":
		return r.Bytes(n)
	case "dna":
		return r.Text(n, "ACGT")
	case "text":
		return r.Text(n, "etaoin shrdlu")
	case "repeats":
		return Repeats(r, n)
	}
	return nil
}
