// colio/soa.go
// Copyright(c) 2024-2025 meshkit contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package colio

import (
	"fmt"
	gomath "math"

	"github.com/iceflow/meshkit/remap"
	"github.com/iceflow/meshkit/util"
)

// For storage, column sets are encoded in structure-of-arrays format,
// which makes them more compressible: all columns' heights, masks, and
// values are concatenated.
type ColumnSetSOA struct {
	Names  []string
	Counts []int32 // levels per column, delta encoded
	Z      []float64
	Mask   []uint8 // bit-packed
	D      []float64
}

func (cs ColumnSet) ToSOA() (ColumnSetSOA, error) {
	var soa ColumnSetSOA
	var mask []bool
	counts := make([]int32, len(cs.Columns))

	for i, c := range cs.Columns {
		n := len(c.Z)
		if len(c.Mask) != n || len(c.D) != n {
			return ColumnSetSOA{}, fmt.Errorf("column %d: %d levels, %d mask entries, %d values",
				i, n, len(c.Mask), len(c.D))
		}
		if n > gomath.MaxInt32 {
			return ColumnSetSOA{}, fmt.Errorf("column %d: too many levels (%d)", i, n)
		}

		soa.Names = append(soa.Names, c.Name)
		counts[i] = int32(n)
		soa.Z = append(soa.Z, c.Z...)
		mask = append(mask, c.Mask...)
		soa.D = append(soa.D, c.D...)
	}

	soa.Counts = util.DeltaEncode(counts)
	soa.Mask = util.PackBits(mask)
	return soa, nil
}

func (soa ColumnSetSOA) ToAOS() (ColumnSet, error) {
	if len(soa.Names) != len(soa.Counts) {
		return ColumnSet{}, fmt.Errorf("%w: %d names for %d columns", ErrInvalidFile, len(soa.Names), len(soa.Counts))
	}

	counts := util.DeltaDecode(soa.Counts)
	total := 0
	for i, n := range counts {
		if n < 0 {
			return ColumnSet{}, fmt.Errorf("%w: column %d: negative level count %d", ErrInvalidFile, i, n)
		}
		total += int(n)
	}
	if len(soa.Z) != total || len(soa.D) != total {
		return ColumnSet{}, fmt.Errorf("%w: %d heights and %d values for %d levels", ErrInvalidFile,
			len(soa.Z), len(soa.D), total)
	}
	mask, ok := util.UnpackBits(soa.Mask, total)
	if !ok {
		return ColumnSet{}, fmt.Errorf("%w: %d mask bytes for %d levels", ErrInvalidFile, len(soa.Mask), total)
	}

	cs := ColumnSet{Columns: make([]remap.Column, len(counts))}
	offset := 0
	for i, n := range counts {
		end := offset + int(n)
		cs.Columns[i] = remap.Column{
			Name: soa.Names[i],
			Levels: remap.Levels{
				Z:    soa.Z[offset:end:end],
				Mask: mask[offset:end:end],
			},
			D: soa.D[offset:end:end],
		}
		offset = end
	}
	return cs, nil
}
