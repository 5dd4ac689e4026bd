// math/line.go
// Copyright(c) 2024-2025 meshkit contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package math

// Line is the implicit line A*x + B*y = C.
type Line struct {
	A, B, C float64
}

// LineFromPoints returns the line through p and q.
func LineFromPoints(p, q [2]float64) Line {
	a, b := q[1]-p[1], p[0]-q[0]
	return Line{A: a, B: b, C: a*p[0] + b*p[1]}
}

// PerpendicularBisector returns the line of points equidistant from p and q.
func PerpendicularBisector(p, q [2]float64) Line {
	m := Mid2(p, q)
	a, b := q[0]-p[0], q[1]-p[1]
	return Line{A: a, B: b, C: a*m[0] + b*m[1]}
}

// LineLineIntersection returns the point where the two lines cross. The
// returned Boolean value is false if the lines are parallel.
func LineLineIntersection(l0, l1 Line) ([2]float64, bool) {
	p, err := Solve2(Matrix2{{l0.A, l0.B}, {l1.A, l1.B}}, [2]float64{l0.C, l1.C})
	return p, err == nil
}

// Contains reports whether p is within tol of the line.
func (l Line) Contains(p [2]float64, tol float64) bool {
	n := Length2([2]float64{l.A, l.B})
	if n == 0 {
		return false
	}
	return Abs(l.A*p[0]+l.B*p[1]-l.C)/n <= tol
}
