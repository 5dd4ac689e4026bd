// math/clip.go
// Copyright(c) 2024-2025 meshkit contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package math

import (
	"fmt"
	"slices"
)

type extentRegion int

const (
	regionInside extentRegion = iota
	regionBorder
	regionOutside
)

// region classifies p as strictly inside e, within tol of its border, or
// outside it.
func (e Extent2D) region(p [2]float64, tol float64) extentRegion {
	if p[0] < e.P0[0]-tol || p[0] > e.P1[0]+tol || p[1] < e.P0[1]-tol || p[1] > e.P1[1]+tol {
		return regionOutside
	}
	if p[0] <= e.P0[0]+tol || p[0] >= e.P1[0]-tol || p[1] <= e.P0[1]+tol || p[1] >= e.P1[1]-tol {
		return regionBorder
	}
	return regionInside
}

type borderCrossing struct {
	p      [2]float64
	corner bool
}

// borderCrossings returns the points where the segment pq meets the
// border of e. Corners that lie on pq are found first; crossings through
// the interior of the four sides follow, skipping any within tol of a
// point already found.
func (e Extent2D) borderCrossings(p, q [2]float64, tol float64) []borderCrossing {
	var xs []borderCrossing
	add := func(pt [2]float64, corner bool) {
		for _, x := range xs {
			if Distance2(x.p, pt) <= tol {
				return
			}
		}
		xs = append(xs, borderCrossing{p: pt, corner: corner})
	}

	for _, c := range e.Corners() {
		if PointOnSegment(p, q, c, tol) {
			add(c, true)
		}
	}
	for _, b := range e.Borders() {
		if pt, ok := SegmentIntersection(p, q, b[0], b[1], tol); ok {
			add(pt, false)
		}
	}
	return xs
}

// closestCrossing returns the crossing nearest to p.
func closestCrossing(xs []borderCrossing, p [2]float64) [2]float64 {
	return slices.MinFunc(xs, func(a, b borderCrossing) int {
		da, db := Distance2(a.p, p), Distance2(b.p, p)
		if da < db {
			return -1
		} else if da > db {
			return 1
		}
		return 0
	}).p
}

// farthestPair returns the two crossings farthest apart. A segment that
// passes just inside a corner may be recorded as crossing both the corner
// and the two sides next to it; the side crossings are the true ones.
func farthestPair(xs []borderCrossing) ([2]float64, [2]float64) {
	a, b := xs[0].p, xs[1].p
	for i := range xs {
		for j := i + 1; j < len(xs); j++ {
			if Distance2(xs[i].p, xs[j].p) > Distance2(a, b) {
				a, b = xs[i].p, xs[j].p
			}
		}
	}
	return a, b
}

// ClipSegmentToExtent crops the segment pq to the rectangle e. The
// returned segment keeps the direction of pq. The Boolean result is false
// if no part of the segment lies in e.
//
// An endpoint within tol of the border counts as on the border. A segment
// with one endpoint on the border and the other outside is always
// reported as not clipped, even though it may in fact cut through a
// corner region of e. A segment that only grazes a corner is not clipped
// either.
//
// A segment that cuts a corner closer than tol may meet the corner as
// well as both adjacent sides; the two crossings farthest apart bound the
// clipped segment.
//
// ErrUnreachable is returned if the crossings found are inconsistent with
// the endpoint classification, which should only happen with corrupt
// (e.g., NaN) input.
func ClipSegmentToExtent(p, q [2]float64, e Extent2D, tol float64) ([2][2]float64, bool, error) {
	rp, rq := e.region(p, tol), e.region(q, tol)

	switch {
	case rp != regionOutside && rq != regionOutside:
		// inside-inside, border-border, inside-border, border-inside:
		// the extent is convex so the whole segment is in it.
		return [2][2]float64{p, q}, true, nil

	case rp == regionBorder || rq == regionBorder:
		// border-outside, outside-border
		return [2][2]float64{}, false, nil

	case rp == regionInside:
		xs := e.borderCrossings(p, q, tol)
		if len(xs) == 0 {
			return [2][2]float64{}, false, fmt.Errorf("%w: segment %v-%v leaves extent without crossing its border",
				ErrUnreachable, p, q)
		}
		return [2][2]float64{p, closestCrossing(xs, p)}, true, nil

	case rq == regionInside:
		xs := e.borderCrossings(p, q, tol)
		if len(xs) == 0 {
			return [2][2]float64{}, false, fmt.Errorf("%w: segment %v-%v enters extent without crossing its border",
				ErrUnreachable, p, q)
		}
		return [2][2]float64{closestCrossing(xs, q), q}, true, nil

	default:
		// outside-outside
		xs := e.borderCrossings(p, q, tol)
		switch len(xs) {
		case 0:
			return [2][2]float64{}, false, nil
		case 1:
			if xs[0].corner {
				return [2][2]float64{}, false, nil
			}
		default:
			a, b := farthestPair(xs)
			if Distance2(a, p) > Distance2(b, p) {
				a, b = b, a
			}
			return [2][2]float64{a, b}, true, nil
		}
		return [2][2]float64{}, false, fmt.Errorf("%w: segment %v-%v crosses extent border %d times",
			ErrUnreachable, p, q, len(xs))
	}
}
