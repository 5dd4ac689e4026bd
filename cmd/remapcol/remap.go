// cmd/remapcol/remap.go
// Copyright(c) 2024-2025 meshkit contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package main

import (
	"context"
	"fmt"

	"github.com/iceflow/meshkit/colio"
	"github.com/iceflow/meshkit/log"
	"github.com/iceflow/meshkit/math"
	"github.com/iceflow/meshkit/remap"

	"golang.org/x/sync/errgroup"
)

// remapColumns remaps each column of src onto a destination grid. If dst
// holds a single column, its levels are used for every source column;
// otherwise dst must hold one column per source column. The first failure
// cancels ctx for the remaining columns, which are then skipped, and is
// returned.
func remapColumns(ctx context.Context, src, dst colio.ColumnSet, nWorkers int, lg *log.Logger) (colio.ColumnSet, error) {
	levels := func(i int) remap.Levels { return dst.Columns[i].Levels }
	switch len(dst.Columns) {
	case len(src.Columns):
	case 1:
		levels = func(int) remap.Levels { return dst.Columns[0].Levels }
	default:
		return colio.ColumnSet{}, fmt.Errorf("%d destination columns for %d source columns",
			len(dst.Columns), len(src.Columns))
	}

	out := colio.ColumnSet{Columns: make([]remap.Column, len(src.Columns))}

	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(max(1, nWorkers))
	for i, col := range src.Columns {
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			r, err := remap.Remap(col, levels(i))
			if err != nil {
				return fmt.Errorf("column %d (%s): %w", i, col.Name, err)
			}

			before, after := remap.Integral(col), remap.Integral(r)
			lg.Debug("remapped column", "index", i, "name", col.Name, "src_levels", col.Len(),
				"dst_levels", r.Len(), "integral_src", before, "integral_dst", after)
			if d := math.Abs(after - before); d > 1e-6*max(1, math.Abs(before)) {
				// Expected when the grids do not cover the same range.
				lg.Warn("column integral changed", "index", i, "name", col.Name,
					"integral_src", before, "integral_dst", after)
			}

			// Each goroutine writes only its own slot.
			out.Columns[i] = r
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return colio.ColumnSet{}, err
	}
	return out, nil
}
