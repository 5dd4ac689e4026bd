// math/tolerance.go
// Copyright(c) 2024-2025 meshkit contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package math

import "fmt"

// Tolerances collects the configuration the geometric predicates accept.
// Dist is the coincidence/colinearity threshold, in the units of the mesh
// coordinates; EquiangularDegrees is the reference angle for the
// equiangular skewness metric.
type Tolerances struct {
	Dist               float64 `json:"dist"`
	EquiangularDegrees float64 `json:"equiangular_degrees"`
}

func DefaultTolerances() Tolerances {
	return Tolerances{Dist: 1e-9, EquiangularDegrees: 60}
}

func (t Tolerances) Validate() error {
	if t.Dist < 0 {
		return fmt.Errorf("distance tolerance %g must be non-negative", t.Dist)
	}
	if t.EquiangularDegrees <= 0 || t.EquiangularDegrees >= 90 {
		return fmt.Errorf("equiangular reference %g must be in (0, 90) degrees", t.EquiangularDegrees)
	}
	return nil
}
