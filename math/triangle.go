// math/triangle.go
// Copyright(c) 2024-2025 meshkit contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package math

// TriangleArea returns the (unsigned) area of the triangle pqr.
func TriangleArea(p, q, r [2]float64) float64 {
	return Abs(Cross2(Sub2(q, p), Sub2(r, p))) / 2
}

// Circumcenter returns the center of the circle through p, q, and r,
// found as the intersection of the perpendicular bisectors of pq and qr.
// The returned Boolean value is false if the points are colinear, in which
// case there is no circumcenter; mesh builders are expected to check it.
func Circumcenter(p, q, r [2]float64) ([2]float64, bool) {
	return LineLineIntersection(PerpendicularBisector(p, q), PerpendicularBisector(q, r))
}

func Centroid(p, q, r [2]float64) [2]float64 {
	return [2]float64{(p[0] + q[0] + r[0]) / 3, (p[1] + q[1] + r[1]) / 3}
}

func LongestEdge(p, q, r [2]float64) float64 {
	return max(Distance2(p, q), Distance2(q, r), Distance2(r, p))
}

// triangleAngles returns the interior angles at p, q, and r, in radians.
func triangleAngles(p, q, r [2]float64) [3]float64 {
	return [3]float64{
		AngleBetween(Sub2(q, p), Sub2(r, p)),
		AngleBetween(Sub2(r, q), Sub2(p, q)),
		AngleBetween(Sub2(p, r), Sub2(q, r)),
	}
}

// SmallestAngle returns the smallest interior angle of pqr in radians.
func SmallestAngle(p, q, r [2]float64) float64 {
	a := triangleAngles(p, q, r)
	return min(a[0], a[1], a[2])
}

// LargestAngle returns the largest interior angle of pqr in radians.
func LargestAngle(p, q, r [2]float64) float64 {
	a := triangleAngles(p, q, r)
	return max(a[0], a[1], a[2])
}

// EquiangularSkewness measures how far pqr is from equilateral, given the
// reference angle in degrees (60 for triangles):
//
//	max((θmax-ref)/(90-ref), (ref-θmin)/ref)
//
// It is 0 for an equilateral triangle and 1 for a right triangle; obtuse
// triangles score above 1.
func EquiangularSkewness(p, q, r [2]float64, refDegrees float64) float64 {
	a := triangleAngles(p, q, r)
	tmin := Degrees(min(a[0], a[1], a[2]))
	tmax := Degrees(max(a[0], a[1], a[2]))
	return max((tmax-refDegrees)/(90-refDegrees), (refDegrees-tmin)/refDegrees)
}

// TriangleMetrics collects the quality measures of a single triangle.
type TriangleMetrics struct {
	Area            float64
	Centroid        [2]float64
	Circumcenter    [2]float64
	HasCircumcenter bool
	LongestEdge     float64
	SmallestAngle   float64 // radians
	LargestAngle    float64 // radians
	Skewness        float64
}

func MeasureTriangle(p, q, r [2]float64, tols Tolerances) TriangleMetrics {
	cc, ok := Circumcenter(p, q, r)
	a := triangleAngles(p, q, r)
	return TriangleMetrics{
		Area:            TriangleArea(p, q, r),
		Centroid:        Centroid(p, q, r),
		Circumcenter:    cc,
		HasCircumcenter: ok,
		LongestEdge:     LongestEdge(p, q, r),
		SmallestAngle:   min(a[0], a[1], a[2]),
		LargestAngle:    max(a[0], a[1], a[2]),
		Skewness:        EquiangularSkewness(p, q, r, tols.EquiangularDegrees),
	}
}
