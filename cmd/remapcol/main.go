// cmd/remapcol/main.go
// Copyright(c) 2024-2025 meshkit contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

// remapcol conservatively remaps a set of vertical columns onto new level
// grids.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"runtime"

	"github.com/iceflow/meshkit/colio"
	"github.com/iceflow/meshkit/log"
)

var srcPath = flag.String("src", "", "Column set to remap (.json or "+colio.BinaryExtension+")")
var dstPath = flag.String("dst", "", "Column set whose levels give the destination grids")
var outPath = flag.String("out", "", "Output column set")
var nWorkers = flag.Int("nworkers", runtime.NumCPU(), "Number of worker goroutines")
var logLevel = flag.String("loglevel", "info", "Logging level: debug, info, warn, error")
var logDir = flag.String("logdir", "", "Log file directory")

func main() {
	flag.Parse()

	usage := func() {
		fmt.Fprintf(os.Stderr, "usage: remapcol -src <file> -dst <file> -out <file> [flags]\nwhere [flags] may be:\n")
		flag.PrintDefaults()
		os.Exit(1)
	}
	if *srcPath == "" || *dstPath == "" || *outPath == "" || len(flag.Args()) > 0 {
		usage()
	}
	if _, err := log.ParseLevel(*logLevel); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		usage()
	}

	lg := log.New("remapcol", *logLevel, *logDir)
	defer lg.Close()
	defer lg.CatchAndReportCrash()

	src, err := colio.ReadFile(*srcPath)
	if err != nil {
		fatal(lg, "%v", err)
	}
	dst, err := colio.ReadFile(*dstPath)
	if err != nil {
		fatal(lg, "%v", err)
	}
	lg.Info("loaded columns", "src", *srcPath, "src_columns", len(src.Columns),
		"dst", *dstPath, "dst_columns", len(dst.Columns))

	out, err := remapColumns(context.Background(), src, dst, *nWorkers, lg)
	if err != nil {
		fatal(lg, "%v", err)
	}

	if err := colio.WriteFile(*outPath, out); err != nil {
		fatal(lg, "%s: %v", *outPath, err)
	}
	lg.Infof("%s: wrote %d columns", *outPath, len(out.Columns))
}

func fatal(lg *log.Logger, msg string, args ...any) {
	lg.Errorf(msg, args...)
	fmt.Fprintf(os.Stderr, "remapcol: "+msg+"\n", args...)
	lg.Close()
	os.Exit(1)
}
