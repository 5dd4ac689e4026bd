// cmd/meshquality/main.go
// Copyright(c) 2024-2025 meshkit contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

// meshquality reports triangle quality metrics for a mesh file.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/iceflow/meshkit/log"
	"github.com/iceflow/meshkit/math"
	"github.com/iceflow/meshkit/util"
)

var meshPath = flag.String("mesh", "", "Mesh file (JSON)")
var configPath = flag.String("config", "", "Tolerance configuration (JSON); defaults are used if not given")
var maxSkew = flag.Float64("maxskew", 0.85, "List triangles with equiangular skewness above this value (0 to disable)")
var probe = flag.String("probe", "", "Interpolate the mesh's vertex values at the point \"x,y\"")
var logLevel = flag.String("loglevel", "info", "Logging level: debug, info, warn, error")
var logDir = flag.String("logdir", "", "Log file directory")

func main() {
	flag.Parse()

	if *meshPath == "" || len(flag.Args()) > 0 {
		fmt.Fprintf(os.Stderr, "usage: meshquality -mesh <file> [flags]\nwhere [flags] may be:\n")
		flag.PrintDefaults()
		os.Exit(1)
	}

	lg := log.New("meshquality", *logLevel, *logDir)
	defer lg.Close()
	defer lg.CatchAndReportCrash()

	var e util.ErrorLogger
	tols := math.DefaultTolerances()
	if *configPath != "" && util.LoadJSONFile(*configPath, &tols, &e) {
		if err := tols.Validate(); err != nil {
			e.Push(*configPath)
			e.Error(err)
			e.Pop()
		}
	}

	var mesh Mesh
	if util.LoadJSONFile(*meshPath, &mesh, &e) {
		e.Push(*meshPath)
		mesh.Validate(&e)
		e.Pop()
	}

	if e.HaveErrors() {
		e.PrintErrors(lg)
		lg.Close()
		os.Exit(1)
	}
	lg.Info("loaded mesh", "path", *meshPath, "vertices", len(mesh.Vertices),
		"triangles", len(mesh.Triangles), "tolerances", tols)

	r := mesh.Measure(tols, *maxSkew)
	writeReport(os.Stdout, r)
	if len(r.Degenerate) > 0 {
		lg.Warn("degenerate triangles", "count", len(r.Degenerate), "indices", r.Degenerate)
	}

	if *probe != "" {
		p, err := parsePoint(*probe)
		if err == nil {
			var v float64
			if v, err = mesh.Probe(p, tols.Dist); err == nil {
				fmt.Printf("value at %v: %g\n", p, v)
			}
		}
		if err != nil {
			lg.Errorf("-probe: %v", err)
			fmt.Fprintf(os.Stderr, "meshquality: -probe: %v\n", err)
			lg.Close()
			os.Exit(1)
		}
	}
}

func parsePoint(s string) ([2]float64, error) {
	x, y, ok := strings.Cut(s, ",")
	if !ok {
		return [2]float64{}, fmt.Errorf("%q: expected \"x,y\"", s)
	}
	var p [2]float64
	var err error
	if p[0], err = strconv.ParseFloat(strings.TrimSpace(x), 64); err != nil {
		return [2]float64{}, err
	}
	if p[1], err = strconv.ParseFloat(strings.TrimSpace(y), 64); err != nil {
		return [2]float64{}, err
	}
	return p, nil
}

func writeReport(w io.Writer, r Report) {
	fmt.Fprintf(w, "triangles:       %d (%d clockwise)\n", r.Triangles, r.Clockwise)
	fmt.Fprintf(w, "total area:      %g\n", r.Area)
	fmt.Fprintf(w, "smallest area:   %g\n", r.MinArea)
	fmt.Fprintf(w, "angles:          %.3f - %.3f degrees\n", r.MinAngle, r.MaxAngle)
	fmt.Fprintf(w, "skewness:        min %.4f mean %.4f max %.4f\n", r.MinSkewness, r.MeanSkewness, r.MaxSkewness)
	if len(r.Degenerate) > 0 {
		fmt.Fprintf(w, "degenerate:      %v\n", r.Degenerate)
	}
	if len(r.OverThreshold) > 0 {
		fmt.Fprintf(w, "over threshold:  %v\n", r.OverThreshold)
	}
}
