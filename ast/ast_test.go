package ast

import (
	"strings"
	"testing"

	"github.com/xjslang/xjs-core/token"
)

func ident(name string) *Identifier {
	return &Identifier{Name: name}
}

func TestDumpBasicProgram(t *testing.T) {
	// var x = 1;
	prog := &Program{
		Statements: []Statement{
			&VarStatement{
				Kind: VarKindVar,
				Declarations: []*VarDeclarator{
					{Target: ident("x"), Init: &NumberLiteral{Raw: "1"}},
				},
			},
		},
	}

	var b strings.Builder
	if err := Dump(&b, prog); err != nil {
		t.Fatalf("Dump: %v", err)
	}
	out := b.String()

	for _, want := range []string{"Program", "VarStmt [kind=var]", "Identifier [name=x]", "Literal [kind=Number raw=1]"} {
		if !strings.Contains(out, want) {
			t.Errorf("dump output missing %q:\n%s", want, out)
		}
	}
}

func TestDumpHandlesNilTypedPointers(t *testing.T) {
	// try { f() } finally { g() } -- no catch handler.
	tryStmt := &TryStatement{
		Block: &BlockStatement{Statements: []Statement{
			&ExpressionStatement{Expression: &CallExpression{Callee: ident("f")}},
		}},
		Handler: nil,
		Finalizer: &BlockStatement{Statements: []Statement{
			&ExpressionStatement{Expression: &CallExpression{Callee: ident("g")}},
		}},
	}

	var b strings.Builder
	if err := Dump(&b, tryStmt); err != nil {
		t.Fatalf("Dump: %v", err)
	}
	if !strings.Contains(b.String(), "Handler: <nil>") {
		t.Errorf("expected nil handler to render as <nil>:\n%s", b.String())
	}
}

func TestDumpHandlesNilTypedSourceField(t *testing.T) {
	// import { a } from "mod" has a Source; a bare specifier list built
	// by hand without one exercises the typed-nil-pointer trap: Source
	// is declared as *StringLiteral, and a nil *StringLiteral boxed into
	// the Node interface is not == nil.
	decl := &ImportDeclaration{
		Specifiers: []*ImportSpecifier{{Local: "a", Imported: "a"}},
		Source:     nil,
	}

	var b strings.Builder
	if err := Dump(&b, decl); err != nil {
		t.Fatalf("Dump: %v", err)
	}
	if !strings.Contains(b.String(), "Source: <nil>") {
		t.Errorf("expected nil source to render as <nil>:\n%s", b.String())
	}
}

func TestTraverseVisitsEveryNodeOnce(t *testing.T) {
	prog := &Program{
		Statements: []Statement{
			&ExpressionStatement{Expression: &BinaryExpression{
				Operator: "+",
				Left:     ident("a"),
				Right:    ident("b"),
			}},
		},
	}

	var visited []string
	Traverse(prog, func(n Node) {
		visited = append(visited, n.Tok().Type.String())
	})

	// Program, ExpressionStmt, Binary, Identifier(a), Identifier(b) = 5 nodes.
	if len(visited) != 5 {
		t.Fatalf("visited %d nodes, want 5: %v", len(visited), visited)
	}
}

func TestTraverseSkipsNilChildren(t *testing.T) {
	ifStmt := &IfStatement{
		Test:       ident("cond"),
		Consequent: &EmptyStatement{},
		Alternate:  nil,
	}

	count := 0
	Traverse(ifStmt, func(n Node) { count++ })
	if count != 3 {
		t.Fatalf("visited %d nodes, want 3 (If, Identifier, EmptyStmt)", count)
	}
}

func TestVarKindString(t *testing.T) {
	tests := map[VarKind]string{VarKindVar: "var", VarKindLet: "let", VarKindConst: "const"}
	for kind, want := range tests {
		if got := kind.String(); got != want {
			t.Errorf("VarKind(%d).String() = %q, want %q", kind, got, want)
		}
	}
}

func TestNodeTokPosition(t *testing.T) {
	n := &Identifier{pos: pos{Token: token.Token{Line: 3, Column: 7}}, Name: "x"}
	if n.Tok().Line != 3 || n.Tok().Column != 7 {
		t.Fatalf("Tok() = %+v, want line 3 col 7", n.Tok())
	}
}
