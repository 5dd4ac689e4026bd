// math/extent.go
// Copyright(c) 2024-2025 meshkit contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package math

///////////////////////////////////////////////////////////////////////////
// Extent2D

// Extent2D represents a 2D bounding box with the two vertices at its
// opposite minimum and maximum corners. P0 holds (xmin, ymin) and P1
// holds (xmax, ymax).
type Extent2D struct {
	P0, P1 [2]float64
}

// EmptyExtent2D returns an Extent2D representing an empty bounding box.
func EmptyExtent2D() Extent2D {
	// Degenerate bounds
	return Extent2D{P0: [2]float64{1e300, 1e300}, P1: [2]float64{-1e300, -1e300}}
}

// MakeExtent2D returns the extent [xmin,xmax] x [ymin,ymax].
func MakeExtent2D(xmin, xmax, ymin, ymax float64) Extent2D {
	return Extent2D{P0: [2]float64{xmin, ymin}, P1: [2]float64{xmax, ymax}}
}

// Extent2DFromPoints returns an Extent2D that bounds all of the provided
// points.
func Extent2DFromPoints(pts [][2]float64) Extent2D {
	e := EmptyExtent2D()
	for _, p := range pts {
		for d := 0; d < 2; d++ {
			if p[d] < e.P0[d] {
				e.P0[d] = p[d]
			}
			if p[d] > e.P1[d] {
				e.P1[d] = p[d]
			}
		}
	}
	return e
}

func (e Extent2D) Width() float64 {
	return e.P1[0] - e.P0[0]
}

func (e Extent2D) Height() float64 {
	return e.P1[1] - e.P0[1]
}

func (e Extent2D) Inside(p [2]float64) bool {
	return p[0] >= e.P0[0] && p[0] <= e.P1[0] && p[1] >= e.P0[1] && p[1] <= e.P1[1]
}

// Corners returns the four corners of the extent in counter-clockwise
// order starting from (xmin, ymin).
func (e Extent2D) Corners() [4][2]float64 {
	return [4][2]float64{
		e.P0,
		{e.P1[0], e.P0[1]},
		e.P1,
		{e.P0[0], e.P1[1]},
	}
}

// Borders returns the four sides of the extent as segments, in the same
// order as Corners: south, east, north, west.
func (e Extent2D) Borders() [4][2][2]float64 {
	c := e.Corners()
	return [4][2][2]float64{
		{c[0], c[1]},
		{c[1], c[2]},
		{c[2], c[3]},
		{c[3], c[0]},
	}
}
