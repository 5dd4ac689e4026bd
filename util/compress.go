// util/compress.go
// Copyright(c) 2024-2025 meshkit contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package util

import (
	"golang.org/x/exp/constraints"
)

// DeltaEncode returns the differences between successive values of d,
// with the first value stored as is. Slowly varying sequences turn into
// runs of small values that compress well.
func DeltaEncode[T constraints.Integer](d []T) []T {
	if len(d) == 0 {
		return nil
	}
	r := make([]T, len(d))

	var prev T
	for i, v := range d {
		r[i] = v - prev
		prev = v
	}
	return r
}

func DeltaDecode[T constraints.Integer](d []T) []T {
	if len(d) == 0 {
		return nil
	}
	r := make([]T, len(d))

	var prev T
	for i, delta := range d {
		r[i] = prev + delta
		prev = r[i]
	}
	return r
}

// PackBits packs the Booleans into bytes, eight to a byte, with the first
// value in the low bit of the first byte.
func PackBits(b []bool) []uint8 {
	p := make([]uint8, (len(b)+7)/8)
	for i, v := range b {
		if v {
			p[i/8] |= 1 << (i % 8)
		}
	}
	return p
}

// UnpackBits returns the first n Booleans packed by PackBits. It returns
// false if p is too short to hold them.
func UnpackBits(p []uint8, n int) ([]bool, bool) {
	if n < 0 || len(p) < (n+7)/8 {
		return nil, false
	}
	b := make([]bool, n)
	for i := range b {
		b[i] = p[i/8]&(1<<(i%8)) != 0
	}
	return b, true
}
