// remap/column.go
// Copyright(c) 2024-2025 meshkit contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package remap

import (
	"errors"
	"fmt"
	gomath "math"

	"github.com/iceflow/meshkit/util"

	"github.com/brunoga/deep"
	"gonum.org/v1/gonum/floats"
)

var ErrInvalidColumn = errors.New("invalid column")

// Levels is the vertical grid of a column: level heights Z, strictly
// increasing, and Mask, which is true for the levels that hold valid data.
type Levels struct {
	Z    []float64 `json:"z"`
	Mask []bool    `json:"mask"`
}

// Column is a field sampled on a vertical grid.
type Column struct {
	Name string `json:"name,omitempty"`
	Levels
	D []float64 `json:"d"`
}

// MakeLevels returns levels at the given heights with every level valid.
func MakeLevels(z ...float64) Levels {
	mask := make([]bool, len(z))
	for i := range mask {
		mask[i] = true
	}
	return Levels{Z: z, Mask: mask}
}

func (l Levels) Len() int {
	return len(l.Z)
}

// NumValid returns the number of levels whose mask is set.
func (l Levels) NumValid() int {
	n := 0
	for _, m := range l.Mask {
		if m {
			n++
		}
	}
	return n
}

// Extents returns the lower and upper bounds of each level's cell. Cell
// boundaries are the midpoints between neighboring levels; the first and
// last cells extend beyond their level by half the adjacent spacing. A
// single level has an empty cell.
func (l Levels) Extents() (lo, hi []float64) {
	n := len(l.Z)
	lo, hi = make([]float64, n), make([]float64, n)
	if n == 0 {
		return
	}
	if n == 1 {
		lo[0], hi[0] = l.Z[0], l.Z[0]
		return
	}

	for k := range n - 1 {
		hi[k] = (l.Z[k] + l.Z[k+1]) / 2
		lo[k+1] = hi[k]
	}
	lo[0] = l.Z[0] - (l.Z[1]-l.Z[0])/2
	hi[n-1] = l.Z[n-1] + (l.Z[n-1]-l.Z[n-2])/2
	return
}

// Validate reports any structural problems with the levels to e.
func (l Levels) Validate(e *util.ErrorLogger) {
	if len(l.Z) == 0 {
		e.ErrorString("no levels")
	}
	if len(l.Mask) != len(l.Z) {
		e.ErrorString("%d mask entries for %d levels", len(l.Mask), len(l.Z))
	}
	for k, z := range l.Z {
		if gomath.IsNaN(z) || gomath.IsInf(z, 0) {
			e.ErrorString("level %d: height %g is not finite", k, z)
		} else if k > 0 && z <= l.Z[k-1] {
			e.ErrorString("level %d: height %g is not above previous level's %g", k, z, l.Z[k-1])
		}
	}
}

// Validate reports any structural problems with the column to e.
func (c Column) Validate(e *util.ErrorLogger) {
	if c.Name != "" {
		e.Push(c.Name)
		defer e.Pop()
	}

	c.Levels.Validate(e)
	if len(c.D) != len(c.Z) {
		e.ErrorString("%d values for %d levels", len(c.D), len(c.Z))
	}
}

// Clone returns a deep copy of the column.
func (c Column) Clone() Column {
	return deep.MustCopy(c)
}

// Integral returns the integral of the column's field over its valid
// cells, treating the field as constant within each cell. The column
// must be valid.
func Integral(c Column) float64 {
	lo, hi := c.Extents()
	w := make([]float64, len(c.D))
	d := make([]float64, len(c.D))
	for k := range c.D {
		if c.Mask[k] {
			w[k], d[k] = hi[k]-lo[k], c.D[k]
		}
	}
	return floats.Dot(w, d)
}

func validate(src Column, dst Levels) error {
	var e util.ErrorLogger

	e.Push("source")
	src.Validate(&e)
	e.Pop()

	e.Push("destination")
	dst.Validate(&e)
	e.Pop()

	if err := e.Err(ErrInvalidColumn); err != nil {
		return fmt.Errorf("remap: %w", err)
	}
	return nil
}
