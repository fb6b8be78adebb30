// Package debug provides ad-hoc, developer-facing AST inspection backed by
// go-spew. For the stable, byte-for-byte dump format used by the CLI's
// --dump-ast flag, use ast.Dump instead.
package debug

import (
	"github.com/davecgh/go-spew/spew"
	"github.com/xjslang/xjs-core/ast"
)

var cfg = &spew.ConfigState{
	Indent:                  "  ",
	DisableMethods:          true,
	DisablePointerAddresses: true,
	ContinueOnMethod:        false,
}

// Sdump renders the full field-by-field structure of an AST node (or any
// other value reachable during parsing — a token, an error slice) as a
// string, for use behind the CLI's --verbose flag.
func Sdump(v any) string {
	return cfg.Sdump(v)
}

// Stats summarizes a parse result for a one-line --verbose banner.
type Stats struct {
	StatementCount int
	ErrorCount     int
}

// CountStatements reports the number of top-level statements in prog,
// without walking into nested blocks.
func CountStatements(prog *ast.Program) int {
	if prog == nil {
		return 0
	}
	return len(prog.Statements)
}
