// rand/rand_test.go
// Copyright(c) 2024-2025 meshkit contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package rand

import (
	"testing"
)

func TestPermutationElement(t *testing.T) {
	for _, n := range []int{8, 31, 10523} {
		for _, h := range []uint32{0, 0xff, 0xfeedface} {
			m := make(map[int]int)

			for i := 0; i < n; i++ {
				perm := PermutationElement(i, n, h)
				if _, ok := m[perm]; ok {
					t.Errorf("%d: appeared multiple times", perm)
				}
				m[perm] = i
			}
		}
	}
}

func TestRandomPermute(t *testing.T) {
	r := Make()
	for _, n := range []int{0, 1, 5, 11, 42} {
		s := make([]int, n)
		for i := range n {
			s[i] = i
		}
		got := make([]bool, n)

		for i, v := range PermuteSlice(s, r.Uint32()) {
			if i != v {
				t.Errorf("mismatch index/value: %d/%d slice %+v", i, v, s)
			}
			if got[i] {
				t.Errorf("got %d repeatedly, slice %+v", i, s)
			}
			got[i] = true
		}
		for i, g := range got {
			if !g {
				t.Errorf("never got index %d", i)
			}
		}
	}
}

func TestFloat64Range(t *testing.T) {
	r := Make()
	var sum float64
	const n = 10000
	for range n {
		f := r.Float64()
		if f < 0 || f >= 1 {
			t.Fatalf("Float64 returned %g, outside [0,1)", f)
		}
		sum += f
	}
	if mean := sum / n; mean < 0.45 || mean > 0.55 {
		t.Errorf("mean of %d samples is %g, expected about 0.5", n, mean)
	}

	for range 100 {
		if u := r.Uniform(-3, 5); u < -3 || u >= 5 {
			t.Errorf("Uniform(-3, 5) returned %g", u)
		}
	}
}

func TestSeedReproducible(t *testing.T) {
	a, b := New(), New()
	a.Seed(1234)
	b.Seed(1234)
	for i := range 16 {
		if x, y := a.Uint32(), b.Uint32(); x != y {
			t.Errorf("draw %d: got %d and %d from identically seeded generators", i, x, y)
		}
	}
}
