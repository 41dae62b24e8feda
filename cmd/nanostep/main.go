// Package main runs the NanoStep order, invoice, and custom workflows.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/micromdm/nanostep/engine"
	"github.com/micromdm/nanostep/log/logkeys"
	"github.com/micromdm/nanostep/report"
	"github.com/micromdm/nanostep/workflow"

	"github.com/micromdm/nanolib/envflag"
	"github.com/micromdm/nanolib/log"
	"github.com/micromdm/nanolib/log/stdlogfmt"
)

// overridden by -ldflags -X
var version = "unknown"

func main() {
	var (
		flDebug   = flag.Bool("debug", false, "log debug messages")
		flVersion = flag.Bool("version", false, "print version and exit")
	)
	envflag.Parse("NANOSTEP_", []string{"version"})

	if *flVersion {
		fmt.Println(version)
		return
	}

	logger := stdlogfmt.New(stdlogfmt.WithDebugFlag(*flDebug))

	run(context.Background(), os.Stdout, logger, *flDebug)

	// step failures are reported, never fatal: always exit 0
	logger.Debug(logkeys.Message, "workflows finished")
}

// run executes every workflow in order, reporting to w.
// In debug mode report lines are also logged.
func run(ctx context.Context, w io.Writer, logger log.Logger, debug bool) {
	out := report.NewWriter(w)

	var r workflow.Reporter = out
	if debug {
		r = report.NewMulti(out, report.NewLogger(logger.With("service", "report")))
	}

	for i, wf := range workflows() {
		if i > 0 {
			out.Report("")
		}
		out.Report(wf.header)
		p := engine.New(
			wf.factory,
			r,
			engine.WithLogger(logger.With("service", "engine")),
		)
		p.ExecuteWorkflow(ctx)
	}
}
