// Command lambdaed runs the structural lambda-term editor, either as a
// line-oriented REPL over stdin/stdout or as a glfw window, the way the
// teacher's main.go stood in for a trivial entrypoint ahead of
// ui.Start(console, width, height)'s real parameterization.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/golang/glog"

	"github.com/jyane/lambdaed/display"
	"github.com/jyane/lambdaed/lambda"
	"github.com/jyane/lambdaed/repl"
)

var (
	displayMode = flag.String("display", "repl", "display mode: repl or glfw")
	trace       = flag.Bool("trace", false, "log each executed command line through glog (also gated by -v=1)")
	width       = flag.Int("width", 512, "glfw window width in pixels")
	height      = flag.Int("height", 64, "glfw window height in pixels")
)

func main() {
	flag.Parse()
	defer glog.Flush()

	ed := lambda.NewEditor()
	glog.Infof("lambdaed: heap capacity %d pages x %d nodes", lambda.G1Pages, lambda.PageSize)

	switch *displayMode {
	case "repl":
		if err := repl.Run(os.Stdin, os.Stdout, ed, *trace); err != nil {
			glog.Fatalf("lambdaed: repl: %v", err)
		}
	case "glfw":
		win, err := display.New(ed, *width, *height)
		if err != nil {
			glog.Fatalf("lambdaed: display: %v", err)
		}
		defer win.Close()
		if err := win.Run(); err != nil {
			glog.Fatalf("lambdaed: display: %v", err)
		}
	default:
		fmt.Fprintf(os.Stderr, "lambdaed: unknown -display mode %q, want repl or glfw\n", *displayMode)
		os.Exit(2)
	}
}
