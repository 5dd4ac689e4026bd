// math/geom_test.go
// Copyright(c) 2024-2025 meshkit contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package math

import (
	gomath "math"
	"slices"
	"testing"

	"github.com/iceflow/meshkit/rand"
)

const testTol = 1e-9

func TestCross2(t *testing.T) {
	if c := Cross2([2]float64{1, 0}, [2]float64{0, 1}); c != 1 {
		t.Errorf("x cross y: got %g, expected 1", c)
	}
	if c := Cross2([2]float64{0, 1}, [2]float64{1, 0}); c != -1 {
		t.Errorf("y cross x: got %g, expected -1", c)
	}
	if c := Cross2([2]float64{2, 4}, [2]float64{1, 2}); c != 0 {
		t.Errorf("parallel vectors: got %g, expected 0", c)
	}
}

func TestLineIntegrals(t *testing.T) {
	type testCase struct {
		name  string
		p, q  [2]float64
		xdy   float64
		mxydx float64
		xydy  float64
	}

	testCases := []testCase{
		{
			name:  "Vertical",
			p:     [2]float64{1, 0},
			q:     [2]float64{1, 1},
			xdy:   1,
			mxydx: 0,
			xydy:  0.5,
		},
		{
			name:  "HorizontalReversed",
			p:     [2]float64{1, 1},
			q:     [2]float64{0, 1},
			xdy:   0,
			mxydx: 0.5,
			xydy:  0,
		},
		{
			name:  "Diagonal",
			p:     [2]float64{0, 0},
			q:     [2]float64{2, 2},
			xdy:   2,
			mxydx: -8. / 3,
			xydy:  8. / 3,
		},
		{
			name:  "NearlyVertical",
			p:     [2]float64{1, 0},
			q:     [2]float64{1 + 1e-12, 3},
			xdy:   3 + 1.5e-12,
			mxydx: 0,
			xydy:  4.5 + 3e-12,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if v := LineIntegralXdy(tc.p, tc.q, testTol); Abs(v-tc.xdy) > 1e-12 {
				t.Errorf("x dy: got %.17g, expected %.17g", v, tc.xdy)
			}
			if v := LineIntegralMxydx(tc.p, tc.q, testTol); Abs(v-tc.mxydx) > 1e-12 {
				t.Errorf("-xy dx: got %.17g, expected %.17g", v, tc.mxydx)
			}
			if v := LineIntegralXydy(tc.p, tc.q, testTol); Abs(v-tc.xydy) > 1e-12 {
				t.Errorf("xy dy: got %.17g, expected %.17g", v, tc.xydy)
			}
		})
	}
}

func TestSegmentIntersection(t *testing.T) {
	type Test struct {
		name     string
		p1, p2   [2]float64
		p3, p4   [2]float64
		expected bool
		point    [2]float64 // expected intersection point of the lines
	}

	tests := []Test{
		{
			name:     "intersecting segments",
			p1:       [2]float64{0, 0},
			p2:       [2]float64{4, 4},
			p3:       [2]float64{0, 4},
			p4:       [2]float64{4, 0},
			expected: true,
			point:    [2]float64{2, 2},
		},
		{
			name:     "lines cross beyond both segments",
			p1:       [2]float64{0, 0},
			p2:       [2]float64{1, 1},
			p3:       [2]float64{3, 0},
			p4:       [2]float64{2, 1},
			expected: false,
			point:    [2]float64{1.5, 1.5},
		},
		{
			name:     "crossing beyond one segment",
			p1:       [2]float64{0, 0},
			p2:       [2]float64{4, 0},
			p3:       [2]float64{2, 1},
			p4:       [2]float64{2, 3},
			expected: false,
			point:    [2]float64{2, 0},
		},
		{
			name:     "shared endpoint",
			p1:       [2]float64{0, 0},
			p2:       [2]float64{1, 1},
			p3:       [2]float64{1, 1},
			p4:       [2]float64{2, 0},
			expected: false,
			point:    [2]float64{1, 1},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			pt, ok := SegmentIntersection(tc.p1, tc.p2, tc.p3, tc.p4, testTol)
			if ok != tc.expected {
				t.Errorf("expected intersection %v, got %v", tc.expected, ok)
			}
			if Distance2(pt, tc.point) > 1e-12 {
				t.Errorf("expected lines to meet at %v, got %v", tc.point, pt)
			}
		})
	}

	for _, parallel := range [][4][2]float64{
		{{0, 0}, {1, 0}, {0, 1}, {1, 1}},
		{{0, 0}, {2, 2}, {1, 1}, {3, 3}}, // colinear and overlapping
		{{0, 0}, {1, 0}, {0, 1}, {1, 1 + 1e-9}},
	} {
		if _, ok := SegmentIntersection(parallel[0], parallel[1], parallel[2], parallel[3], 1e-6); ok {
			t.Errorf("%v: segments treated as colinear should not intersect", parallel)
		}
	}

	// Without a tolerance only exactly parallel segments are excluded.
	if _, ok := SegmentIntersection([2]float64{0, 0}, [2]float64{1, 0}, [2]float64{0.5, -1}, [2]float64{0.5, 1}, 0); !ok {
		t.Errorf("perpendicular segments should intersect with zero tolerance")
	}
}

func TestPointOnSegment(t *testing.T) {
	a, b := [2]float64{0, 0}, [2]float64{2, 0}
	type testCase struct {
		name     string
		p        [2]float64
		expected bool
	}
	testCases := []testCase{
		{name: "Interior", p: [2]float64{1, 0}, expected: true},
		{name: "Start", p: a, expected: true},
		{name: "End", p: b, expected: true},
		{name: "WithinTolOfLine", p: [2]float64{1, 1e-10}, expected: true},
		{name: "OffLine", p: [2]float64{1, 1e-3}, expected: false},
		{name: "SlackBeyondEnd", p: [2]float64{2 + 5e-10, 0}, expected: true},
		{name: "BeyondEnd", p: [2]float64{2.1, 0}, expected: false},
		{name: "NoSlackBehindStart", p: [2]float64{-1e-10, 0}, expected: false},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := PointOnSegment(a, b, tc.p, testTol); got != tc.expected {
				t.Errorf("PointOnSegment(%v, %v, %v) = %v, expected %v", a, b, tc.p, got, tc.expected)
			}
		})
	}

	t.Run("Degenerate", func(t *testing.T) {
		if !PointOnSegment(a, a, [2]float64{1e-10, 0}, testTol) {
			t.Errorf("point within tol of a degenerate segment should be on it")
		}
		if PointOnSegment(a, a, [2]float64{1, 0}, testTol) {
			t.Errorf("point away from a degenerate segment should not be on it")
		}
	})
}

func TestPointInPolygon(t *testing.T) {
	type testCase struct {
		name     string
		point    [2]float64
		polygon  [][2]float64
		expected bool
	}

	square := [][2]float64{{0, 0}, {0, 2}, {2, 2}, {2, 0}}
	notched := [][2]float64{{0, 0}, {0, 6}, {6, 6}, {6, 0}, {3, 3}}

	testCases := []testCase{
		{
			name:     "PointInsideSimpleSquare",
			point:    [2]float64{1, 1},
			polygon:  square,
			expected: true,
		},
		{
			name:     "PointToLeftOfQuad",
			point:    [2]float64{-.2, 0.2},
			polygon:  [][2]float64{{.01, 1}, {20, 2}, {20, -2}, {.01, -1}},
			expected: false,
		},
		{
			name:     "PointInsideQuad",
			point:    [2]float64{10, 0.3},
			polygon:  [][2]float64{{.01, 1}, {20, 2}, {20, -2}, {.01, -1}},
			expected: true,
		},
		{
			name:     "PointOutsideSimpleSquare",
			point:    [2]float64{3, 3},
			polygon:  square,
			expected: false,
		},
		{
			name:     "PointByEdge",
			point:    [2]float64{-0.001, 0.5},
			polygon:  square,
			expected: false,
		},
		{
			name:     "PointBelowEdge",
			point:    [2]float64{1, -.001},
			polygon:  square,
			expected: false,
		},
		{
			name:     "PointInsideNonConvexPolygon",
			point:    [2]float64{3, 4.5},
			polygon:  notched,
			expected: true,
		},
		{
			name:     "PointInsideNonConvexArm",
			point:    [2]float64{1, 2},
			polygon:  notched,
			expected: true,
		},
		{
			name:     "PointInNotch",
			point:    [2]float64{3, 1.5},
			polygon:  notched,
			expected: false,
		},
		{
			name:     "PointOutsideNonConvexPolygon",
			point:    [2]float64{7, 7},
			polygon:  notched,
			expected: false,
		},
		{
			name:     "TooFewVertices",
			point:    [2]float64{0.5, 0.25},
			polygon:  [][2]float64{{0, 0}, {1, 1}},
			expected: false,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			result := PointInPolygon(tc.polygon, tc.point, testTol)
			if result != tc.expected {
				t.Errorf("Expected %v, got %v for point %v and polygon %v",
					tc.expected, result, tc.point, tc.polygon)
			}

			// Orientation doesn't matter.
			rev := slices.Clone(tc.polygon)
			slices.Reverse(rev)
			if result := PointInPolygon(rev, tc.point, testTol); result != tc.expected {
				t.Errorf("Reversed: expected %v, got %v for point %v and polygon %v",
					tc.expected, result, tc.point, rev)
			}
		})
	}
}

func TestPointInPolygonRandom(t *testing.T) {
	r := rand.Make()
	for range 200 {
		// A regular n-gon; points well inside the inscribed circle are
		// inside and points outside the circumscribed circle are outside.
		n := 3 + r.Intn(10)
		c := r.Point2(-10, 10)
		radius := r.Uniform(0.5, 5)
		phase := r.Uniform(0, 2*gomath.Pi)
		poly := make([][2]float64, n)
		for i := range poly {
			theta := phase + 2*gomath.Pi*float64(i)/float64(n)
			poly[i] = Add2(c, [2]float64{radius * gomath.Cos(theta), radius * gomath.Sin(theta)})
		}

		inner := radius * gomath.Cos(gomath.Pi/float64(n))
		theta := r.Uniform(0, 2*gomath.Pi)
		dir := [2]float64{gomath.Cos(theta), gomath.Sin(theta)}

		pin := Add2(c, Scale2(dir, r.Uniform(0, 0.99)*inner))
		if !PointInPolygon(poly, pin, testTol) {
			t.Errorf("%v: expected inside polygon %v", pin, poly)
		}
		pout := Add2(c, Scale2(dir, radius*r.Uniform(1.01, 3)))
		if PointInPolygon(poly, pout, testTol) {
			t.Errorf("%v: expected outside polygon %v", pout, poly)
		}
	}
}

func TestPointInMultiPolygon(t *testing.T) {
	mp := [][][2]float64{
		{{0, 0}, {0, 2}, {2, 2}, {2, 0}},
		{{5, 5}, {8, 5}, {8, 9}},
	}

	for _, c := range []struct {
		p        [2]float64
		expected bool
	}{
		{p: [2]float64{1, 1}, expected: true},
		{p: [2]float64{7, 6}, expected: true},
		{p: [2]float64{3.5, 3.5}, expected: false},
		{p: [2]float64{5.5, 8}, expected: false},
	} {
		if got := PointInMultiPolygon(mp, c.p, testTol); got != c.expected {
			t.Errorf("%v: got %v, expected %v", c.p, got, c.expected)
		}
	}

	if PointInMultiPolygon(nil, [2]float64{0, 0}, testTol) {
		t.Errorf("empty multipolygon should contain nothing")
	}
}

func TestPointInTriangle(t *testing.T) {
	a, b, c := [2]float64{0, 0}, [2]float64{1, 0}, [2]float64{0, 1}
	type testCase struct {
		name     string
		p        [2]float64
		expected bool
	}
	testCases := []testCase{
		{name: "Inside", p: [2]float64{0.2, 0.2}, expected: true},
		{name: "Outside", p: [2]float64{1, 1}, expected: false},
		{name: "OutsideNegative", p: [2]float64{-0.1, 0.5}, expected: false},
		{name: "OnEdge", p: [2]float64{0.5, 0}, expected: true},
		{name: "OnHypotenuse", p: [2]float64{0.5, 0.5}, expected: true},
		{name: "Vertex", p: c, expected: true},
		{name: "WithinTolOutside", p: [2]float64{0.5, -1e-10}, expected: true},
		{name: "BeyondTolOutside", p: [2]float64{0.5, -1e-6}, expected: false},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := PointInTriangle(a, b, c, tc.p, testTol); got != tc.expected {
				t.Errorf("counter-clockwise: got %v, expected %v for %v", got, tc.expected, tc.p)
			}
			if got := PointInTriangle(a, c, b, tc.p, testTol); got != tc.expected {
				t.Errorf("clockwise: got %v, expected %v for %v", got, tc.expected, tc.p)
			}
		})
	}

	t.Run("Degenerate", func(t *testing.T) {
		d0, d1, d2 := [2]float64{0, 0}, [2]float64{1, 0}, [2]float64{2, 0}
		if !PointInTriangle(d0, d1, d2, [2]float64{1.5, 0}, testTol) {
			t.Errorf("point on a colinear triangle's edge should be inside")
		}
		if PointInTriangle(d0, d1, d2, [2]float64{1, 1}, testTol) {
			t.Errorf("point off a colinear triangle should be outside")
		}
	})
}
