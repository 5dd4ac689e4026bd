// rand/rand.go
// Copyright(c) 2024-2025 meshkit contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package rand

import (
	"iter"

	"github.com/MichaelTJones/pcg"
)

///////////////////////////////////////////////////////////////////////////
// Random numbers.

// Rand is a small PCG-based generator. Its sequence depends only on the
// seed, so tests that draw random geometry are reproducible.
type Rand struct {
	r *pcg.PCG32
}

const defaultSequence = 0xda3e39cb94b95bdb

func New() Rand {
	return Rand{r: pcg.NewPCG32()}
}

// Make returns a generator with a fixed seed.
func Make() Rand {
	r := New()
	r.Seed(0)
	return r
}

func (r *Rand) Seed(s int64) {
	r.r.Seed(uint64(s), defaultSequence)
}

func (r *Rand) Intn(n int) int {
	return int(r.r.Bounded(uint32(n)))
}

func (r *Rand) Uint32() uint32 {
	return r.r.Random()
}

// Float64 returns a value in [0,1) with 53 random bits.
func (r *Rand) Float64() float64 {
	hi, lo := uint64(r.r.Random()>>5), uint64(r.r.Random()>>6)
	return float64(hi<<26|lo) / (1 << 53)
}

// Uniform returns a value in [a,b).
func (r *Rand) Uniform(a, b float64) float64 {
	return a + (b-a)*r.Float64()
}

// Point2 returns a point uniformly distributed in the square [a,b)^2.
func (r *Rand) Point2(a, b float64) [2]float64 {
	return [2]float64{r.Uniform(a, b), r.Uniform(a, b)}
}

// PermutationElement returns the ith element of a random permutation of the
// set of integers [0...,n-1].
// i/n, p is hash, via Andrew Kensler
func PermutationElement(i int, n int, p uint32) int {
	ui, l := uint32(i), uint32(n)
	w := l - 1
	w |= w >> 1
	w |= w >> 2
	w |= w >> 4
	w |= w >> 8
	w |= w >> 16
	for {
		ui ^= p
		ui *= 0xe170893d
		ui ^= p >> 16
		ui ^= (ui & w) >> 4
		ui ^= p >> 8
		ui *= 0x0929eb3f
		ui ^= p >> 23
		ui ^= (ui & w) >> 1
		ui *= 1 | p>>27
		ui *= 0x6935fa69
		ui ^= (ui & w) >> 11
		ui *= 0x74dcb303
		ui ^= (ui & w) >> 2
		ui *= 0x9e501cc3
		ui ^= (ui & w) >> 2
		ui *= 0xc860a3df
		ui &= w
		ui ^= ui >> 5
		if ui < l {
			break
		}
	}
	return int((ui + p) % l)
}

// PermuteSlice iterates over s in the order given by the permutation
// selected by seed, yielding each original index with its element.
func PermuteSlice[Slice ~[]E, E any](s Slice, seed uint32) iter.Seq2[int, E] {
	return func(yield func(int, E) bool) {
		for i := range len(s) {
			ip := PermutationElement(i, len(s), seed)
			if !yield(ip, s[ip]) {
				break
			}
		}
	}
}
