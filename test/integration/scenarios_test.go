// Package integration exercises the parser exactly as the xjsparse CLI
// drives it: a bare input string in, a *ast.Program and error list out. It
// covers the end-to-end scenarios a full source file has to get right, as
// opposed to the parser package's own unit tests, which target individual
// grammar productions.
package integration

import (
	"strings"
	"testing"

	"github.com/xjslang/xjs-core/ast"
	"github.com/xjslang/xjs-core/parser"
)

func mustParse(t *testing.T, input string) *ast.Program {
	t.Helper()
	p := parser.New(input)
	prog, errCount := p.ParseProgram()
	if errCount != 0 {
		t.Fatalf("unexpected parse errors for %q: %v", input, p.Errors())
	}
	return prog
}

// TestScenarioVarDeclaration covers "var x = 1;".
func TestScenarioVarDeclaration(t *testing.T) {
	prog := mustParse(t, "var x = 1;")
	if len(prog.Statements) != 1 {
		t.Fatalf("expected 1 statement, got %d", len(prog.Statements))
	}
	var b strings.Builder
	if err := ast.Dump(&b, prog); err != nil {
		t.Fatalf("Dump: %v", err)
	}
	for _, want := range []string{"VarStmt [kind=var]", "Identifier [name=x]"} {
		if !strings.Contains(b.String(), want) {
			t.Errorf("dump missing %q:\n%s", want, b.String())
		}
	}
}

// TestScenarioFunctionDeclaration covers "function f(a,b){ return a+b }".
func TestScenarioFunctionDeclaration(t *testing.T) {
	prog := mustParse(t, "function f(a,b){ return a+b }")
	decl, ok := prog.Statements[0].(*ast.FunctionDeclaration)
	if !ok {
		t.Fatalf("expected function declaration, got %T", prog.Statements[0])
	}
	if decl.Name.Name != "f" || len(decl.Params) != 2 {
		t.Fatalf("unexpected function shape: %+v", decl)
	}
}

// TestScenarioForLoop covers the classic numeric for loop.
func TestScenarioForLoop(t *testing.T) {
	prog := mustParse(t, "for (var i = 0; i < 10; i = i + 1) { sum = sum + i; }")
	stmt, ok := prog.Statements[0].(*ast.ForStatement)
	if !ok {
		t.Fatalf("expected for statement, got %T", prog.Statements[0])
	}
	if stmt.Init == nil || stmt.Test == nil || stmt.Update == nil || stmt.Body == nil {
		t.Fatalf("expected all four for-loop clauses populated: %+v", stmt)
	}
}

// TestScenarioDestructuring covers "const {x, y: z = 5, ...rest} = obj;".
func TestScenarioDestructuring(t *testing.T) {
	prog := mustParse(t, "const {x, y: z = 5, ...rest} = obj;")
	stmt, ok := prog.Statements[0].(*ast.VarStatement)
	if !ok || stmt.Kind != ast.VarKindConst {
		t.Fatalf("expected const declaration, got %+v", prog.Statements[0])
	}
	pat, ok := stmt.Declarations[0].Target.(*ast.ObjectBindingPattern)
	if !ok || len(pat.Properties) != 3 {
		t.Fatalf("expected a 3-property object pattern, got %+v", stmt.Declarations[0].Target)
	}
}

// TestScenarioTryCatchFinally covers "try { ... } catch (e) { ... } finally { ... }".
func TestScenarioTryCatchFinally(t *testing.T) {
	prog := mustParse(t, `
		try {
			risky();
		} catch (e) {
			log(e);
		} finally {
			cleanup();
		}
	`)
	stmt, ok := prog.Statements[0].(*ast.TryStatement)
	if !ok {
		t.Fatalf("expected try statement, got %T", prog.Statements[0])
	}
	if stmt.Handler == nil {
		t.Fatalf("expected a catch handler")
	}
	if stmt.Finalizer == nil {
		t.Fatalf("expected a finally block")
	}
}

// TestScenarioFullProgram exercises every construct above in a single
// source file, the way a real file under test would combine them.
func TestScenarioFullProgram(t *testing.T) {
	input := `
		var total = 0;
		function add(a, b) { return a + b; }
		for (var i = 0; i < 10; i = i + 1) {
			total = add(total, i);
		}
		const { x, y: z = 5, ...rest } = { x: 1, y: 2, w: 3 };
		try {
			total = add(total, z);
		} catch (e) {
			total = 0;
		} finally {
			report(total, rest);
		}
	`
	prog := mustParse(t, input)
	if len(prog.Statements) != 5 {
		t.Fatalf("expected 5 top-level statements, got %d", len(prog.Statements))
	}
}
