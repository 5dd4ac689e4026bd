// remap/remap.go
// Copyright(c) 2024-2025 meshkit contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package remap

import (
	"fmt"

	"github.com/iceflow/meshkit/math"

	"github.com/brunoga/deep"
)

// Conservative1D remaps the field of src onto the levels dst so that the
// integral of the field over the overlap of the two columns is preserved.
//
// Each destination value is the average, over the part of its cell
// covered by valid source cells, of a piecewise-linear reconstruction of
// the source field. The reconstruction's slope at a level is centered
// between its neighbors, one-sided where only one neighbor is valid, and
// zero for an isolated level. Masked levels count as missing neighbors,
// so a valid level next to a masked one gets a one-sided slope even in
// the interior of the column.
//
// A destination cell that no valid source cell overlaps takes the value
// of the valid source level nearest to it. Masked destination levels are
// set to zero, as is the entire result if either column has no valid
// levels.
//
// An error wrapping ErrInvalidColumn is returned if either column is
// malformed.
func Conservative1D(src Column, dst Levels) ([]float64, error) {
	if err := validate(src, dst); err != nil {
		return nil, err
	}

	out := make([]float64, len(dst.Z))
	if src.NumValid() == 0 || dst.NumValid() == 0 {
		return out, nil
	}

	srcLo, srcHi := src.Extents()
	dstLo, dstHi := dst.Extents()
	slopes := src.slopes()
	span := max(srcHi[len(srcHi)-1], dstHi[len(dstHi)-1]) - min(srcLo[0], dstLo[0])

	for k := range dst.Z {
		if !dst.Mask[k] {
			continue
		}

		var integral, overlap float64
		var last float64
		n := 0
		for j := range src.Z {
			if !src.Mask[j] {
				continue
			}

			lo, hi := max(srcLo[j], dstLo[k]), min(srcHi[j], dstHi[k])
			if hi <= lo {
				continue
			}

			v := src.D[j] + slopes[j]*((lo+hi)/2-src.Z[j])
			integral += v * (hi - lo)
			overlap += hi - lo
			last = v
			n++
		}

		switch n {
		case 0:
			j, err := src.nearestValid(dst.Z[k], span)
			if err != nil {
				return nil, fmt.Errorf("remap: destination level %d: %w", k, err)
			}
			out[k] = src.D[j]
		case 1:
			// A single overlap needs no averaging.
			out[k] = last
		default:
			out[k] = integral / overlap
		}
	}

	return out, nil
}

// Remap is a convenience wrapper around Conservative1D that returns the
// remapped field as a new column on a copy of dst.
func Remap(src Column, dst Levels) (Column, error) {
	d, err := Conservative1D(src, dst)
	if err != nil {
		return Column{}, err
	}
	return Column{Name: src.Name, Levels: deep.MustCopy(dst), D: d}, nil
}

// slopes returns the gradient of the piecewise-linear reconstruction at
// each valid level: centered when both neighbors are valid, one-sided
// when only one is, and zero for an isolated level. Masked levels don't
// contribute to their neighbors' gradients.
func (c Column) slopes() []float64 {
	n := len(c.Z)
	s := make([]float64, n)
	for k := range n {
		if !c.Mask[k] {
			continue
		}

		below := k > 0 && c.Mask[k-1]
		above := k < n-1 && c.Mask[k+1]
		switch {
		case below && above:
			s[k] = (c.D[k+1] - c.D[k-1]) / (c.Z[k+1] - c.Z[k-1])
		case below:
			s[k] = (c.D[k] - c.D[k-1]) / (c.Z[k] - c.Z[k-1])
		case above:
			s[k] = (c.D[k+1] - c.D[k]) / (c.Z[k+1] - c.Z[k])
		}
	}
	return s
}

// nearestValid returns the index of the valid level closest to z. Levels
// farther than maxDist are not considered; of equally close levels the
// lowest is returned.
func (c Column) nearestValid(z, maxDist float64) (int, error) {
	best, bestDist := -1, maxDist
	for j := range c.Z {
		if !c.Mask[j] {
			continue
		}
		if d := math.Abs(c.Z[j] - z); d < bestDist || (best == -1 && d <= bestDist) {
			best, bestDist = j, d
		}
	}
	if best == -1 {
		return -1, fmt.Errorf("%w: no valid source level within %g of %g", math.ErrUnreachable, maxDist, z)
	}
	return best, nil
}
