// math/matrix.go
// Copyright(c) 2024-2025 meshkit contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package math

import (
	"fmt"
	gomath "math"
)

// SingularThreshold is the determinant magnitude below which a matrix is
// considered singular: the smallest normal float64.
const SingularThreshold = 0x1p-1022

// The small fixed-size matrices are inverted with explicit cofactor
// formulas rather than by elimination; at these sizes that avoids any
// pivoting decisions.

func singular(det float64) error {
	if gomath.Abs(det) < SingularThreshold || gomath.IsNaN(det) {
		return fmt.Errorf("%w: |det| = %g", ErrSingularMatrix, gomath.Abs(det))
	}
	return nil
}

///////////////////////////////////////////////////////////////////////////
// 2x2 matrix

type Matrix2 [2][2]float64

func Identity2() Matrix2 {
	return Matrix2{{1, 0}, {0, 1}}
}

func (m Matrix2) Determinant() float64 {
	return m[0][0]*m[1][1] - m[0][1]*m[1][0]
}

func (m Matrix2) Inverse() (Matrix2, error) {
	det := m.Determinant()
	if err := singular(det); err != nil {
		return Matrix2{}, err
	}
	invDet := 1 / det
	return Matrix2{
		{invDet * m[1][1], -invDet * m[0][1]},
		{-invDet * m[1][0], invDet * m[0][0]},
	}, nil
}

func (m Matrix2) Mul(m2 Matrix2) Matrix2 {
	var r Matrix2
	for i := range 2 {
		for j := range 2 {
			r[i][j] = m[i][0]*m2[0][j] + m[i][1]*m2[1][j]
		}
	}
	return r
}

func (m Matrix2) MulVec(v [2]float64) [2]float64 {
	return [2]float64{
		m[0][0]*v[0] + m[0][1]*v[1],
		m[1][0]*v[0] + m[1][1]*v[1],
	}
}

// Solve2 returns x such that a x = b, computed as inverse(a) b.
func Solve2(a Matrix2, b [2]float64) ([2]float64, error) {
	inv, err := a.Inverse()
	if err != nil {
		return [2]float64{}, err
	}
	return inv.MulVec(b), nil
}

///////////////////////////////////////////////////////////////////////////
// 3x3 matrix

type Matrix3 [3][3]float64

func MakeMatrix3(m00, m01, m02, m10, m11, m12, m20, m21, m22 float64) Matrix3 {
	return [3][3]float64{
		[3]float64{m00, m01, m02},
		[3]float64{m10, m11, m12},
		[3]float64{m20, m21, m22}}
}

func Identity3() Matrix3 {
	var m Matrix3
	m[0][0] = 1
	m[1][1] = 1
	m[2][2] = 1
	return m
}

func (m Matrix3) Mul(m2 Matrix3) Matrix3 {
	var result Matrix3
	for i := range 3 {
		for j := range 3 {
			result[i][j] = m[i][0]*m2[0][j] + m[i][1]*m2[1][j] + m[i][2]*m2[2][j]
		}
	}
	return result
}

func (m Matrix3) Determinant() float64 {
	minor12 := m[1][1]*m[2][2] - m[1][2]*m[2][1]
	minor02 := m[1][0]*m[2][2] - m[1][2]*m[2][0]
	minor01 := m[1][0]*m[2][1] - m[1][1]*m[2][0]
	return m[0][2]*minor01 + (m[0][0]*minor12 - m[0][1]*minor02)
}

func (m Matrix3) Inverse() (Matrix3, error) {
	det := m.Determinant()
	if err := singular(det); err != nil {
		return Matrix3{}, err
	}
	invDet := 1 / det
	var r Matrix3
	r[0][0] = invDet * (m[1][1]*m[2][2] - m[1][2]*m[2][1])
	r[1][0] = invDet * (m[1][2]*m[2][0] - m[1][0]*m[2][2])
	r[2][0] = invDet * (m[1][0]*m[2][1] - m[1][1]*m[2][0])
	r[0][1] = invDet * (m[0][2]*m[2][1] - m[0][1]*m[2][2])
	r[1][1] = invDet * (m[0][0]*m[2][2] - m[0][2]*m[2][0])
	r[2][1] = invDet * (m[0][1]*m[2][0] - m[0][0]*m[2][1])
	r[0][2] = invDet * (m[0][1]*m[1][2] - m[0][2]*m[1][1])
	r[1][2] = invDet * (m[0][2]*m[1][0] - m[0][0]*m[1][2])
	r[2][2] = invDet * (m[0][0]*m[1][1] - m[0][1]*m[1][0])
	return r, nil
}

///////////////////////////////////////////////////////////////////////////
// 5x5 matrix

type Matrix5 [5][5]float64

func Identity5() Matrix5 {
	var m Matrix5
	for i := range 5 {
		m[i][i] = 1
	}
	return m
}

func (m Matrix5) Mul(m2 Matrix5) Matrix5 {
	var r Matrix5
	for i := range 5 {
		for j := range 5 {
			for k := range 5 {
				r[i][j] += m[i][k] * m2[k][j]
			}
		}
	}
	return r
}

// minor returns the 4x4 matrix left after deleting row r and column c.
func (m Matrix5) minor(r, c int) [4][4]float64 {
	var s [4][4]float64
	si := 0
	for i := range 5 {
		if i == r {
			continue
		}
		sj := 0
		for j := range 5 {
			if j == c {
				continue
			}
			s[si][sj] = m[i][j]
			sj++
		}
		si++
	}
	return s
}

// cofactor returns (-1)^(r+c) times the determinant of the (r,c) minor.
func (m Matrix5) cofactor(r, c int) float64 {
	d := det4(m.minor(r, c))
	if (r+c)%2 == 1 {
		return -d
	}
	return d
}

// Determinant expands along the first row.
func (m Matrix5) Determinant() float64 {
	var det float64
	for j := range 5 {
		det += m[0][j] * m.cofactor(0, j)
	}
	return det
}

// Inverse returns the adjugate divided by the determinant.
func (m Matrix5) Inverse() (Matrix5, error) {
	var cof Matrix5
	for i := range 5 {
		for j := range 5 {
			cof[i][j] = m.cofactor(i, j)
		}
	}

	var det float64
	for j := range 5 {
		det += m[0][j] * cof[0][j]
	}
	if err := singular(det); err != nil {
		return Matrix5{}, err
	}

	invDet := 1 / det
	var r Matrix5
	for i := range 5 {
		for j := range 5 {
			r[j][i] = invDet * cof[i][j]
		}
	}
	return r, nil
}

// det4 evaluates a 4x4 determinant from the 2x2 sub-determinants of its
// top and bottom row pairs.
func det4(a [4][4]float64) float64 {
	s0 := a[0][0]*a[1][1] - a[1][0]*a[0][1]
	s1 := a[0][0]*a[1][2] - a[1][0]*a[0][2]
	s2 := a[0][0]*a[1][3] - a[1][0]*a[0][3]
	s3 := a[0][1]*a[1][2] - a[1][1]*a[0][2]
	s4 := a[0][1]*a[1][3] - a[1][1]*a[0][3]
	s5 := a[0][2]*a[1][3] - a[1][2]*a[0][3]

	c5 := a[2][2]*a[3][3] - a[3][2]*a[2][3]
	c4 := a[2][1]*a[3][3] - a[3][1]*a[2][3]
	c3 := a[2][1]*a[3][2] - a[3][1]*a[2][2]
	c2 := a[2][0]*a[3][3] - a[3][0]*a[2][3]
	c1 := a[2][0]*a[3][2] - a[3][0]*a[2][2]
	c0 := a[2][0]*a[3][1] - a[3][0]*a[2][1]

	return s0*c5 - s1*c4 + s2*c3 + s3*c2 - s4*c1 + s5*c0
}

// cofactorDeterminant is a general recursive Laplace expansion over the
// first row of an n x n matrix; it is far too slow for anything but the
// small sizes used here and serves as the reference the fixed-size
// formulas are checked against.
func cofactorDeterminant(rows [][]float64) float64 {
	n := len(rows)
	switch n {
	case 0:
		return 1
	case 1:
		return rows[0][0]
	}

	var det float64
	sub := make([][]float64, n-1)
	for j := range n {
		for i := 1; i < n; i++ {
			row := make([]float64, 0, n-1)
			row = append(row, rows[i][:j]...)
			sub[i-1] = append(row, rows[i][j+1:]...)
		}
		term := rows[0][j] * cofactorDeterminant(sub)
		if j%2 == 1 {
			term = -term
		}
		det += term
	}
	return det
}
