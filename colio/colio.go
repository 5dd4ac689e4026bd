// colio/colio.go
// Copyright(c) 2024-2025 meshkit contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

// Package colio reads and writes sets of columns, either as JSON or in a
// compact binary format: the columns in structure-of-arrays form, encoded
// with msgpack and compressed with zstd.
package colio

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	gomath "math"
	"os"
	"strings"

	"github.com/iceflow/meshkit/remap"
	"github.com/iceflow/meshkit/util"

	"github.com/klauspost/compress/zstd"
	"github.com/vmihailenco/msgpack/v5"
)

var ErrInvalidFile = errors.New("invalid column set file")

type ColumnSet struct {
	Columns []remap.Column `json:"columns"`
}

type Format int

const (
	FormatBinary Format = iota // msgpack + zstd
	FormatJSON
)

const BinaryExtension = ".msgpack.zst"

// FormatForPath chooses the format from the file name's extension.
func FormatForPath(path string) (Format, error) {
	switch {
	case strings.HasSuffix(path, BinaryExtension):
		return FormatBinary, nil
	case strings.HasSuffix(path, ".json"):
		return FormatJSON, nil
	default:
		return 0, fmt.Errorf("%s: unknown column set extension; expected %s or .json", path, BinaryExtension)
	}
}

// Validate reports problems with any of the columns to e.
func (cs ColumnSet) Validate(e *util.ErrorLogger) {
	defer e.CheckDepth(e.CurrentDepth())

	for i, c := range cs.Columns {
		e.Push(fmt.Sprintf("column %d", i))
		c.Validate(e)
		e.Pop()
	}
}

// Load reads a column set in the given format.
func Load(r io.Reader, format Format) (ColumnSet, error) {
	switch format {
	case FormatBinary:
		zr, err := zstd.NewReader(r)
		if err != nil {
			return ColumnSet{}, fmt.Errorf("failed to create zstd reader: %w", err)
		}
		defer zr.Close()

		var soa ColumnSetSOA
		if err := msgpack.NewDecoder(zr).Decode(&soa); err != nil {
			return ColumnSet{}, fmt.Errorf("failed to decode column set: %w", err)
		}
		return soa.ToAOS()

	case FormatJSON:
		var cs ColumnSet
		if err := util.UnmarshalJSON(r, &cs); err != nil {
			return ColumnSet{}, err
		}
		return cs, nil

	default:
		return ColumnSet{}, fmt.Errorf("unknown format %d", format)
	}
}

// Save writes the column set in the given format. JSON can't represent
// non-finite numbers, so masked values are written as zero there.
func (cs ColumnSet) Save(w io.Writer, format Format) error {
	switch format {
	case FormatBinary:
		zw, err := zstd.NewWriter(w, zstd.WithEncoderLevel(zstd.SpeedBestCompression))
		if err != nil {
			return fmt.Errorf("failed to create zstd writer: %w", err)
		}
		defer zw.Close()

		soa, err := cs.ToSOA()
		if err != nil {
			return err
		}
		if err := msgpack.NewEncoder(zw).Encode(soa); err != nil {
			return fmt.Errorf("failed to encode column set: %w", err)
		}

		if err := zw.Close(); err != nil {
			return fmt.Errorf("failed to close zstd writer: %w", err)
		}
		return nil

	case FormatJSON:
		out := ColumnSet{Columns: make([]remap.Column, len(cs.Columns))}
		for i, c := range cs.Columns {
			c = c.Clone()
			for k := range c.D {
				if k < len(c.Mask) && !c.Mask[k] && (gomath.IsNaN(c.D[k]) || gomath.IsInf(c.D[k], 0)) {
					c.D[k] = 0
				}
			}
			out.Columns[i] = c
		}

		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(out)

	default:
		return fmt.Errorf("unknown format %d", format)
	}
}

// ReadFile loads the column set stored at path, choosing the format by
// its extension, and validates its columns.
func ReadFile(path string) (ColumnSet, error) {
	format, err := FormatForPath(path)
	if err != nil {
		return ColumnSet{}, err
	}

	if format == FormatJSON {
		var e util.ErrorLogger
		var cs ColumnSet
		if !util.LoadJSONFile(path, &cs, &e) {
			return ColumnSet{}, e.Err(ErrInvalidFile)
		}
		return cs, validate(path, cs)
	}

	f, err := os.Open(path)
	if err != nil {
		return ColumnSet{}, err
	}
	defer f.Close()

	cs, err := Load(f, format)
	if err != nil {
		return ColumnSet{}, fmt.Errorf("%s: %w", path, err)
	}
	return cs, validate(path, cs)
}

func validate(path string, cs ColumnSet) error {
	var e util.ErrorLogger
	e.Push(path)
	cs.Validate(&e)
	e.Pop()
	return e.Err(ErrInvalidFile)
}

// WriteFile saves the column set to path in the format given by its
// extension. The file is written to a temporary file first and renamed
// into place so that a failed write doesn't leave a partial file.
func WriteFile(path string, cs ColumnSet) error {
	format, err := FormatForPath(path)
	if err != nil {
		return err
	}

	tmp := path + ".tmp"
	f, err := os.Create(tmp)
	if err != nil {
		return err
	}

	if err := cs.Save(f, format); err != nil {
		f.Close()
		os.Remove(tmp)
		return fmt.Errorf("%s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		os.Remove(tmp)
		return err
	}
	return os.Rename(tmp, path)
}
