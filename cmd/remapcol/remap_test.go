// cmd/remapcol/remap_test.go
// Copyright(c) 2024-2025 meshkit contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package main

import (
	"context"
	"errors"
	"math"
	"slices"
	"strings"
	"testing"

	"github.com/iceflow/meshkit/colio"
	"github.com/iceflow/meshkit/remap"
)

func uniformColumn(name string, n int, f func(z float64) float64) remap.Column {
	z := make([]float64, n)
	d := make([]float64, n)
	for i := range n {
		z[i] = 0.5 + float64(i)
		d[i] = f(z[i])
	}
	return remap.Column{Name: name, Levels: remap.MakeLevels(z...), D: d}
}

func TestRemapColumnsShared(t *testing.T) {
	var src colio.ColumnSet
	for i := range 20 {
		c := float64(i)
		src.Columns = append(src.Columns, uniformColumn("", 10, func(float64) float64 { return c }))
	}
	dst := colio.ColumnSet{Columns: []remap.Column{{Levels: remap.MakeLevels(1, 3, 5, 7, 9)}}}

	for _, nw := range []int{0, 1, 4, 64} {
		out, err := remapColumns(context.Background(), src, dst, nw, nil)
		if err != nil {
			t.Fatalf("%d workers: %v", nw, err)
		}
		if len(out.Columns) != len(src.Columns) {
			t.Fatalf("%d workers: got %d columns, expected %d", nw, len(out.Columns), len(src.Columns))
		}
		for i, col := range out.Columns {
			if !slices.Equal(col.Z, dst.Columns[0].Z) {
				t.Errorf("column %d: levels %v, expected %v", i, col.Z, dst.Columns[0].Z)
			}
			for k, v := range col.D {
				if math.Abs(v-float64(i)) > 1e-12 {
					t.Errorf("column %d level %d: got %g, expected %d", i, k, v, i)
				}
			}
		}
	}

	// The output must not share storage with the destination grid.
	out, _ := remapColumns(context.Background(), src, dst, 2, nil)
	out.Columns[0].Z[0] = -1
	if out.Columns[1].Z[0] == -1 || dst.Columns[0].Z[0] == -1 {
		t.Errorf("remapped columns alias the destination levels")
	}
}

func TestRemapColumnsPerColumn(t *testing.T) {
	src := colio.ColumnSet{Columns: []remap.Column{
		uniformColumn("a", 4, func(float64) float64 { return 10 }),
		uniformColumn("b", 6, func(z float64) float64 { return 2 * z }),
	}}
	dst := colio.ColumnSet{Columns: []remap.Column{
		{Levels: remap.MakeLevels(1, 3)},
		{Levels: remap.MakeLevels(0.5, 1.5, 2.5, 3.5, 4.5, 5.5)},
	}}

	out, err := remapColumns(context.Background(), src, dst, 2, nil)
	if err != nil {
		t.Fatal(err)
	}
	if out.Columns[0].Name != "a" || !slices.Equal(out.Columns[0].D, []float64{10, 10}) {
		t.Errorf("column a: got %+v", out.Columns[0])
	}
	if out.Columns[1].Name != "b" || !slices.Equal(out.Columns[1].D, src.Columns[1].D) {
		t.Errorf("column b: got %+v, expected values %v", out.Columns[1], src.Columns[1].D)
	}
}

func TestRemapColumnsErrors(t *testing.T) {
	src := colio.ColumnSet{Columns: []remap.Column{
		uniformColumn("good", 3, func(float64) float64 { return 1 }),
		{Name: "bad", Levels: remap.MakeLevels(3, 2, 1), D: []float64{1, 2, 3}},
	}}

	dst := colio.ColumnSet{Columns: []remap.Column{{Levels: remap.MakeLevels(1, 2)}}}
	_, err := remapColumns(context.Background(), src, dst, 4, nil)
	if !errors.Is(err, remap.ErrInvalidColumn) || !strings.Contains(err.Error(), "column 1 (bad)") {
		t.Errorf("expected invalid column error naming column 1, got %v", err)
	}

	src.Columns = slices.Delete(src.Columns, 1, 2)
	dst.Columns = append(dst.Columns, dst.Columns[0], dst.Columns[0])
	if _, err := remapColumns(context.Background(), src, dst, 4, nil); err == nil {
		t.Errorf("expected error for mismatched column counts")
	}
}

func TestRemapColumnsCanceled(t *testing.T) {
	src := colio.ColumnSet{Columns: []remap.Column{
		uniformColumn("a", 4, func(float64) float64 { return 1 }),
		uniformColumn("b", 4, func(float64) float64 { return 2 }),
	}}
	dst := colio.ColumnSet{Columns: []remap.Column{{Levels: remap.MakeLevels(1, 3)}}}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := remapColumns(ctx, src, dst, 1, nil); !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}

func TestRemapColumnsStopsAfterFailure(t *testing.T) {
	// With a single worker the columns run in order, so the invalid first
	// column cancels all that follow and its error is the one reported.
	src := colio.ColumnSet{Columns: []remap.Column{
		{Name: "bad", Levels: remap.MakeLevels(3, 2, 1), D: []float64{1, 2, 3}},
	}}
	for range 50 {
		src.Columns = append(src.Columns, uniformColumn("", 4, func(float64) float64 { return 1 }))
	}
	dst := colio.ColumnSet{Columns: []remap.Column{{Levels: remap.MakeLevels(1, 3)}}}

	_, err := remapColumns(context.Background(), src, dst, 1, nil)
	if !errors.Is(err, remap.ErrInvalidColumn) || errors.Is(err, context.Canceled) {
		t.Errorf("expected the invalid column's error, got %v", err)
	}
}
