// Package diagnostics formats and, when configured, persists parser error
// output per spec.md §6.4/§7: one "<file>:<line>:<col>: <message>" line per
// distinct error, with the error count itself the authoritative PASS/FAIL
// signal rather than any boolean.
package diagnostics

import (
	"fmt"
	"io"
	"os"

	"github.com/xjslang/xjs-core/parser"
)

// Sink formats parser errors against a file name and, if configured,
// appends each formatted line to a log file.
type Sink struct {
	file string
	w    io.Writer
}

// NewSink builds a Sink for the given source file name. If the
// JS_PARSER_ERROR_LOG environment variable is set, every call to Report
// also appends its formatted lines to that path; a failure to open it is
// reported to stderr but is not itself a parse error.
func NewSink(sourceFile string) (*Sink, func() error) {
	s := &Sink{file: sourceFile}
	closer := func() error { return nil }

	logPath := os.Getenv("JS_PARSER_ERROR_LOG")
	if logPath == "" {
		return s, closer
	}
	f, err := os.OpenFile(logPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "diagnostics: cannot open %s: %v\n", logPath, err)
		return s, closer
	}
	s.w = f
	return s, f.Close
}

// Format renders one error line in the spec's canonical shape.
func (s *Sink) Format(e parser.ParserError) string {
	return fmt.Sprintf("%s:%d:%d: %s", s.file, e.Position.Line, e.Position.Column, e.Message)
}

// Report writes each error's formatted line to stderr and, if a log path
// was configured, appends the same lines there.
func (s *Sink) Report(errs []parser.ParserError) {
	for _, e := range errs {
		line := s.Format(e)
		fmt.Fprintln(os.Stderr, line)
		if s.w != nil {
			fmt.Fprintln(s.w, line)
		}
	}
}
