// math/geom.go
// Copyright(c) 2024-2025 meshkit contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package math

import (
	gomath "math"
)

///////////////////////////////////////////////////////////////////////////
// Line integrals

// The following evaluate line integrals along the straight segment from
// p to q. Summed over the edges of a closed polygon they give its area
// and first moments by Green's theorem. Each one is zero when the segment
// is within tol of being perpendicular to the integration variable.

// LineIntegralXdy returns the integral of x dy from p to q.
func LineIntegralXdy(p, q [2]float64, tol float64) float64 {
	dy := q[1] - p[1]
	if gomath.Abs(dy) < tol {
		return 0
	}
	return (p[0] + q[0]) / 2 * dy
}

// LineIntegralMxydx returns the integral of -x*y dx from p to q.
func LineIntegralMxydx(p, q [2]float64, tol float64) float64 {
	dx := q[0] - p[0]
	if gomath.Abs(dx) < tol {
		return 0
	}
	return -dx * xyMean(p, q)
}

// LineIntegralXydy returns the integral of x*y dy from p to q.
func LineIntegralXydy(p, q [2]float64, tol float64) float64 {
	dy := q[1] - p[1]
	if gomath.Abs(dy) < tol {
		return 0
	}
	return dy * xyMean(p, q)
}

// xyMean is the mean value of x*y along the segment pq.
func xyMean(p, q [2]float64) float64 {
	return (2*p[0]*p[1] + p[0]*q[1] + q[0]*p[1] + 2*q[0]*q[1]) / 6
}

///////////////////////////////////////////////////////////////////////////
// Segments

// SegmentIntersection returns the intersection point of the lines through
// the segments pq and rs. The returned Boolean value is true only if the
// intersection lies strictly inside both segments: touching at an
// endpoint doesn't count as a crossing, which is what keeps ray-casting
// parity correct in PointInPolygon. Segments whose directions have a
// cross product smaller than tol are treated as colinear and never
// intersect.
func SegmentIntersection(p, q, r, s [2]float64, tol float64) ([2]float64, bool) {
	if c := Cross2(Sub2(q, p), Sub2(s, r)); gomath.Abs(c) < max(tol, SingularThreshold) {
		return [2]float64{}, false
	}

	// Solve b0*(p-q) + b1*(s-r) = s-q; the point is then q + b0*(p-q).
	a := Matrix2{
		{p[0] - q[0], s[0] - r[0]},
		{p[1] - q[1], s[1] - r[1]},
	}
	b, err := Solve2(a, Sub2(s, q))
	if err != nil {
		// Excluded by the colinearity check above.
		return [2]float64{}, false
	}

	pt := Lerp2(b[0], q, p)
	return pt, b[0] > 0 && b[0] < 1 && b[1] > 0 && b[1] < 1
}

// PointOnSegment reports whether pc lies on the segment from pa to pb:
// its distance from the line through pa and pb must be at most tol, and
// its projection onto that line must fall between pa and pb. There is no
// slack behind pa but tol of slack beyond pb.
func PointOnSegment(pa, pb, pc [2]float64, tol float64) bool {
	d := Sub2(pb, pa)
	e := Sub2(pc, pa)

	ld := Length2(d)
	if ld == 0 {
		return Length2(e) <= tol
	}

	dn := Normalize2(d)
	epar := Scale2(dn, Dot2(e, dn))
	eort := Sub2(e, epar)
	if Length2(eort) > tol {
		return false
	}

	if Dot2(e, d) > 0 {
		return Length2(epar) <= ld+tol
	}
	return Length2(epar) <= 0
}

///////////////////////////////////////////////////////////////////////////
// Containment

// PointInPolygon checks whether the given point is inside the given
// polygon by casting a ray in +x to beyond its bounding box and counting
// crossings. It assumes that the last vertex does not repeat the first
// one, and so includes the edge from pts[len(pts)-1] to pts[0] in its
// test. The result for points that lie on an edge, or whose ray passes
// exactly through a vertex, is undefined.
func PointInPolygon(pts [][2]float64, p [2]float64, tol float64) bool {
	if len(pts) < 3 {
		return false
	}

	e := Extent2DFromPoints(pts)
	if !e.Inside(p) {
		return false
	}

	far := [2]float64{e.P1[0] + 2*max(e.Width(), e.Height()), p[1]}

	n := 0
	for i := range pts {
		p0, p1 := pts[i], pts[(i+1)%len(pts)]
		if (p0[1] > p[1] && p1[1] > p[1]) || (p0[1] < p[1] && p1[1] < p[1]) {
			continue
		}
		if _, ok := SegmentIntersection(p, far, p0, p1, tol); ok {
			n++
		}
	}
	return n%2 == 1
}

// PointInMultiPolygon returns true if p is inside any of the polygons.
func PointInMultiPolygon(polys [][][2]float64, p [2]float64, tol float64) bool {
	for _, poly := range polys {
		if PointInPolygon(poly, p, tol) {
			return true
		}
	}
	return false
}

// PointInTriangle reports whether p is inside the triangle abc or within
// tol of its boundary. The vertex order may be either clockwise or
// counter-clockwise.
func PointInTriangle(a, b, c, p [2]float64, tol float64) bool {
	onBoundary := func() bool {
		return PointOnSegment(a, b, p, tol) || PointOnSegment(b, c, p, tol) ||
			PointOnSegment(c, a, p, tol)
	}

	if Cross2(Sub2(b, a), Sub2(c, a)) == 0 {
		// Degenerate; only the edges themselves can hold p.
		return onBoundary()
	}

	d0 := Cross2(Sub2(b, a), Sub2(p, a))
	d1 := Cross2(Sub2(c, b), Sub2(p, b))
	d2 := Cross2(Sub2(a, c), Sub2(p, c))
	neg := d0 < 0 || d1 < 0 || d2 < 0
	pos := d0 > 0 || d1 > 0 || d2 > 0
	if !(neg && pos) {
		return true
	}
	return onBoundary()
}
