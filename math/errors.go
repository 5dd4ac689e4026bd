// math/errors.go
// Copyright(c) 2024-2025 meshkit contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package math

import "errors"

var (
	// ErrSingularMatrix is returned when a matrix determinant is too close
	// to zero to invert; it indicates degenerate input geometry.
	ErrSingularMatrix = errors.New("singular matrix")
	// ErrUnreachable indicates that an internal invariant of an algorithm
	// was violated; it signals a logic error or corrupt input data.
	ErrUnreachable = errors.New("unreachable state")
	// ErrInvalidMultiPolygon is returned when a flat multipolygon encoding
	// can't be decoded.
	ErrInvalidMultiPolygon = errors.New("invalid multipolygon encoding")
)
