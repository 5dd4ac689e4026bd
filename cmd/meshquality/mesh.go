// cmd/meshquality/mesh.go
// Copyright(c) 2024-2025 meshkit contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package main

import (
	"fmt"
	gomath "math"

	"github.com/iceflow/meshkit/math"
	"github.com/iceflow/meshkit/util"

	"gonum.org/v1/gonum/floats"
)

// Mesh is a triangle mesh as read from a mesh file. Values, if present,
// holds one scalar per vertex.
type Mesh struct {
	Vertices  [][2]float64 `json:"vertices"`
	Triangles [][3]int     `json:"triangles"`
	Values    []float64    `json:"values,omitempty"`
}

func (m *Mesh) Validate(e *util.ErrorLogger) {
	if len(m.Triangles) == 0 {
		e.ErrorString("no triangles provided")
	}
	for i, v := range m.Vertices {
		if !isFinite(v[0]) || !isFinite(v[1]) {
			e.ErrorString("vertex %d: non-finite coordinate %v", i, v)
		}
	}
	for i, tri := range m.Triangles {
		for _, idx := range tri {
			if idx < 0 || idx >= len(m.Vertices) {
				e.ErrorString("triangle %d: vertex index %d out of range [0,%d)", i, idx, len(m.Vertices))
			}
		}
		if tri[0] == tri[1] || tri[1] == tri[2] || tri[2] == tri[0] {
			e.ErrorString("triangle %d: repeated vertex in %v", i, tri)
		}
	}
	if m.Values != nil && len(m.Values) != len(m.Vertices) {
		e.ErrorString("%d values provided for %d vertices", len(m.Values), len(m.Vertices))
	}
}

func isFinite(v float64) bool {
	return !gomath.IsNaN(v) && !gomath.IsInf(v, 0)
}

func (m *Mesh) corners(i int) (p, q, r [2]float64) {
	t := m.Triangles[i]
	return m.Vertices[t[0]], m.Vertices[t[1]], m.Vertices[t[2]]
}

// Report summarizes the quality of a mesh's triangles. Angles are in
// degrees.
type Report struct {
	Triangles     int
	Area          float64
	MinArea       float64
	MinAngle      float64
	MaxAngle      float64
	MinSkewness   float64
	MaxSkewness   float64
	MeanSkewness  float64
	Degenerate    []int // no circumcenter or area within tolerance
	Clockwise     int
	OverThreshold []int // skewness above the -maxskew threshold
}

// Measure computes the metrics of every triangle and summarizes them.
func (m *Mesh) Measure(tols math.Tolerances, maxSkew float64) Report {
	n := len(m.Triangles)
	area := make([]float64, n)
	minAngle := make([]float64, n)
	maxAngle := make([]float64, n)
	skew := make([]float64, n)

	r := Report{Triangles: n}
	for i := range n {
		p, q, s := m.corners(i)
		tm := math.MeasureTriangle(p, q, s, tols)
		area[i] = tm.Area
		minAngle[i] = math.Degrees(tm.SmallestAngle)
		maxAngle[i] = math.Degrees(tm.LargestAngle)
		skew[i] = tm.Skewness

		if !tm.HasCircumcenter || tm.Area <= tols.Dist {
			r.Degenerate = append(r.Degenerate, i)
		}
		if math.Cross2(math.Sub2(q, p), math.Sub2(s, p)) < 0 {
			r.Clockwise++
		}
		if maxSkew > 0 && tm.Skewness > maxSkew {
			r.OverThreshold = append(r.OverThreshold, i)
		}
	}
	if n == 0 {
		return r
	}

	r.Area = floats.Sum(area)
	r.MinArea = floats.Min(area)
	r.MinAngle = floats.Min(minAngle)
	r.MaxAngle = floats.Max(maxAngle)
	r.MinSkewness = floats.Min(skew)
	r.MaxSkewness = floats.Max(skew)
	r.MeanSkewness = floats.Sum(skew) / float64(n)
	return r
}

// Locate returns the index of the first triangle containing p, or -1 if
// no triangle does.
func (m *Mesh) Locate(p [2]float64, tol float64) int {
	for i := range m.Triangles {
		a, b, c := m.corners(i)
		if math.PointInTriangle(a, b, c, p, tol) {
			return i
		}
	}
	return -1
}

// Probe interpolates the per-vertex values at p.
func (m *Mesh) Probe(p [2]float64, tol float64) (float64, error) {
	if m.Values == nil {
		return 0, fmt.Errorf("mesh has no vertex values")
	}
	i := m.Locate(p, tol)
	if i == -1 {
		return 0, fmt.Errorf("%v is not inside the mesh", p)
	}
	a, b, c := m.corners(i)
	t := m.Triangles[i]
	return math.InterpolateScalarInTriangle(a, b, c, m.Values[t[0]], m.Values[t[1]], m.Values[t[2]], p, tol), nil
}
