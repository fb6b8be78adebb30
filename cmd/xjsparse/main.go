// Command xjsparse checks a JavaScript source file for syntax errors and,
// optionally, prints its parsed AST.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/xjslang/xjs-core/ast"
	"github.com/xjslang/xjs-core/debug"
	"github.com/xjslang/xjs-core/diagnostics"
	"github.com/xjslang/xjs-core/parser"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	fs := flag.NewFlagSet("xjsparse", flag.ContinueOnError)
	dumpAST := fs.Bool("dump-ast", false, "print the AST dump to stdout on success")
	verbose := fs.Bool("verbose", false, "print a go-spew dump of the AST to stderr")
	moduleMode := fs.Bool("module", false, "parse in module mode (import/export are keywords)")
	scriptMode := fs.Bool("script", false, "parse in script mode (default)")
	tolerant := fs.Bool("tolerant", false, "recover at statement boundaries and report every error")
	if err := fs.Parse(args); err != nil {
		return 1
	}
	if fs.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: xjsparse [--dump-ast] [--verbose] [--module|--script] [--tolerant] <file>")
		return 1
	}
	if *moduleMode && *scriptMode {
		fmt.Fprintln(os.Stderr, "xjsparse: --module and --script are mutually exclusive")
		return 1
	}

	path := fs.Arg(0)
	src, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "xjsparse: %v\n", err)
		return 1
	}

	var prog *ast.Program
	var errs []parser.ParserError
	defer recoverOOM()()
	if *tolerant {
		p := parser.NewTolerant(string(src), *moduleMode)
		prog, _ = p.ParseProgram()
		errs = p.Errors()
	} else if *moduleMode {
		p := parser.NewModule(string(src))
		prog, _ = p.ParseProgram()
		errs = p.Errors()
	} else {
		p := parser.New(string(src))
		prog, _ = p.ParseProgram()
		errs = p.Errors()
	}

	sink, closeSink := diagnostics.NewSink(path)
	defer closeSink()
	sink.Report(errs)

	if *verbose {
		stats := debug.Stats{StatementCount: debug.CountStatements(prog), ErrorCount: len(errs)}
		fmt.Fprintf(os.Stderr, "%d statement(s), %d error(s)\n", stats.StatementCount, stats.ErrorCount)
		fmt.Fprint(os.Stderr, debug.Sdump(prog))
	}

	if len(errs) > 0 {
		fmt.Fprintf(os.Stderr, "[FAIL] %d error(s)\n", len(errs))
		return 2
	}

	if *dumpAST {
		if err := ast.Dump(os.Stdout, prog); err != nil {
			fmt.Fprintf(os.Stderr, "xjsparse: writing AST dump: %v\n", err)
			return 1
		}
	}
	fmt.Println("[PASS]")
	return 0
}

// recoverOOM returns a deferred handler that recovers any panic escaping
// the parse (for example an asi.QueueOverflowError), prints it, and exits
// with the parse-failure code 2 rather than crashing with no diagnostic.
func recoverOOM() func() {
	return func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "xjsparse: fatal: %v\n", r)
			fmt.Fprintln(os.Stderr, "[FAIL] 1 error(s)")
			os.Exit(2)
		}
	}
}
