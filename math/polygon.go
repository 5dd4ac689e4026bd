// math/polygon.go
// Copyright(c) 2024-2025 meshkit contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package math

import (
	"fmt"
	gomath "math"
)

// PolygonArea returns the signed area of the polygon: positive for
// counter-clockwise vertex order, negative for clockwise.
func PolygonArea(pts [][2]float64, tol float64) float64 {
	var a float64
	for i := range pts {
		a += LineIntegralXdy(pts[i], pts[(i+1)%len(pts)], tol)
	}
	return a
}

// PolygonCentroid returns the area centroid of the polygon. The second
// return value is false if the polygon has (nearly) zero area.
func PolygonCentroid(pts [][2]float64, tol float64) ([2]float64, bool) {
	var a, mx, my float64
	for i := range pts {
		p, q := pts[i], pts[(i+1)%len(pts)]
		a += LineIntegralXdy(p, q, tol)
		mx += LineIntegralMxydx(p, q, tol)
		my += LineIntegralXydy(p, q, tol)
	}
	if gomath.Abs(a) < SingularThreshold {
		return [2]float64{}, false
	}
	return [2]float64{mx / a, my / a}, true
}

// DecodeMultiPolygon unpacks the flat multipolygon encoding used by mesh
// and mask files: each polygon is preceded by a row whose first component
// holds its vertex count, followed by that many vertex rows.
func DecodeMultiPolygon(rows [][2]float64) ([][][2]float64, error) {
	var polys [][][2]float64
	for i := 0; i < len(rows); {
		c := rows[i][0]
		n := int(c)
		if float64(n) != c {
			return nil, fmt.Errorf("%w: row %d: vertex count %g is not an integer", ErrInvalidMultiPolygon, i, c)
		}
		if n < 3 {
			return nil, fmt.Errorf("%w: row %d: polygon has %d vertices", ErrInvalidMultiPolygon, i, n)
		}
		if i+1+n > len(rows) {
			return nil, fmt.Errorf("%w: row %d: %d vertices requested but only %d rows remain",
				ErrInvalidMultiPolygon, i, n, len(rows)-i-1)
		}

		poly := make([][2]float64, n)
		copy(poly, rows[i+1:i+1+n])
		polys = append(polys, poly)
		i += 1 + n
	}
	return polys, nil
}
