// math/interp.go
// Copyright(c) 2024-2025 meshkit contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package math

import (
	"fmt"
	"slices"
)

// InterpolateInTriangle returns the field value at p given its values fa,
// fb, and fc at the vertices pa, pb, and pc. The fields may have any
// length as long as all three match.
//
// If p is within tol of a vertex, that vertex's value is returned
// unchanged; if it lies on an edge, the value is interpolated linearly
// along the edge; otherwise the vertex values are weighted by the areas of
// the sub-triangles opposite them.
//
// p must be inside the triangle or on its boundary. That is only checked
// in builds with the meshdebug tag; otherwise the result for an outside
// point is meaningless.
func InterpolateInTriangle(pa, pb, pc [2]float64, fa, fb, fc []float64, p [2]float64, tol float64) []float64 {
	if len(fa) != len(fb) || len(fa) != len(fc) {
		panic(fmt.Sprintf("mismatched field lengths %d, %d, %d", len(fa), len(fb), len(fc)))
	}
	if DebugChecks && !PointInTriangle(pa, pb, pc, p, tol) {
		panic(fmt.Sprintf("%v is not in triangle %v %v %v", p, pa, pb, pc))
	}

	switch {
	case Distance2(p, pa) <= tol:
		return slices.Clone(fa)
	case Distance2(p, pb) <= tol:
		return slices.Clone(fb)
	case Distance2(p, pc) <= tol:
		return slices.Clone(fc)
	}

	type edge struct {
		p0, p1 [2]float64
		f0, f1 []float64
	}
	for _, e := range [3]edge{{pa, pb, fa, fb}, {pb, pc, fb, fc}, {pc, pa, fc, fa}} {
		if PointOnSegment(e.p0, e.p1, p, tol) {
			t := Clamp(Distance2(p, e.p0)/Distance2(e.p1, e.p0), 0, 1)
			f := make([]float64, len(e.f0))
			for i := range f {
				f[i] = Lerp(t, e.f0[i], e.f1[i])
			}
			return f
		}
	}

	wa := TriangleArea(pb, pc, p)
	wb := TriangleArea(pc, pa, p)
	wc := TriangleArea(pa, pb, p)
	sum := wa + wb + wc
	wa, wb, wc = wa/sum, wb/sum, wc/sum

	f := make([]float64, len(fa))
	for i := range f {
		f[i] = wa*fa[i] + wb*fb[i] + wc*fc[i]
	}
	return f
}

// InterpolateScalarInTriangle is the single-valued form of
// InterpolateInTriangle.
func InterpolateScalarInTriangle(pa, pb, pc [2]float64, fa, fb, fc float64, p [2]float64, tol float64) float64 {
	return InterpolateInTriangle(pa, pb, pc, []float64{fa}, []float64{fb}, []float64{fc}, p, tol)[0]
}
