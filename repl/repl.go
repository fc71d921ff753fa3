// Package repl hosts the command interpreter over a plain io.Reader/
// io.Writer pair, reading one line of whitespace-separated command
// tokens at a time the way the teacher's nestest harness reads one
// disassembled instruction line at a time (nes/cpu_test.go's
// bufio.Scanner loop).
package repl

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/golang/glog"

	"github.com/jyane/lambdaed/lambda"
)

// Run reads lines from r until EOF, executing each as a command line
// against ed and writing any diagnostics followed by the post-command
// render to w — one rendering per line, matching ed.ExecuteLine's
// contract. When trace is true and glog verbosity is at least 1, each
// line is logged through glog.Infof before it is executed (nothing
// extra is written to w), mirroring the verbose/trace flag the original
// REPL carried, per the logging convention the rest of this module
// follows.
func Run(r io.Reader, w io.Writer, ed *lambda.Editor, trace bool) error {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		if trace && bool(glog.V(1)) {
			glog.Infof("repl: executing %q", line)
		}
		diags := ed.ExecuteLine(line)
		for _, d := range diags {
			if _, err := fmt.Fprintln(w, d); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(w, ed.Render()); err != nil {
			return err
		}
	}
	return scanner.Err()
}
