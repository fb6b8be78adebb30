package integration

import (
	"testing"

	"github.com/xjslang/xjs-core/parser"
)

func TestTolerantMode(t *testing.T) {
	tests := []struct {
		name                string
		input               string
		strictShouldPass    bool
		tolerantShouldParse bool
	}{
		{
			name:                "valid code with semicolons",
			input:               "let x = 42;",
			strictShouldPass:    true,
			tolerantShouldParse: true,
		},
		{
			name:                "valid code without semicolons (ASI)",
			input:               "let x = 42\nlet y = 10",
			strictShouldPass:    true,
			tolerantShouldParse: true,
		},
		{
			name:                "invalid code - missing semicolon on same line",
			input:               "let x = 1 let y = 2",
			strictShouldPass:    false,
			tolerantShouldParse: true,
		},
		{
			name:                "incomplete expression",
			input:               "let x = ",
			strictShouldPass:    false,
			tolerantShouldParse: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Run("strict", func(t *testing.T) {
				p := parser.New(tt.input)
				_, errCount := p.ParseProgram()
				if tt.strictShouldPass && errCount != 0 {
					t.Errorf("strict mode: expected no error, got %v", p.Errors())
				}
				if !tt.strictShouldPass && errCount == 0 {
					t.Errorf("strict mode: expected an error, got none")
				}
			})

			t.Run("tolerant", func(t *testing.T) {
				p := parser.NewTolerant(tt.input, false)
				program, _ := p.ParseProgram()
				if tt.tolerantShouldParse && program == nil {
					t.Errorf("tolerant mode: expected to parse something, got nil")
				}
			})
		})
	}
}

func TestTolerantModeContinuesParsing(t *testing.T) {
	input := `
		let a = 1 let b = 2
		let c = 3
		let d = 4 let e = 5
	`

	t.Run("strict_stops_early", func(t *testing.T) {
		p := parser.New(input)
		_, errCount := p.ParseProgram()
		if errCount == 0 {
			t.Error("expected an error in strict mode")
		}
	})

	t.Run("tolerant_continues", func(t *testing.T) {
		p := parser.NewTolerant(input, false)
		program, errCount := p.ParseProgram()
		if program == nil {
			t.Fatal("expected a program in tolerant mode")
		}
		if errCount == 0 {
			t.Error("expected the embedded errors to still be reported")
		}
		if len(program.Statements) < 3 {
			t.Errorf("expected tolerant mode to keep parsing past each error, got %d statements", len(program.Statements))
		}
	})
}

func TestTolerantModeForLSPScenarios(t *testing.T) {
	scenarios := []struct {
		name        string
		input       string
		description string
	}{
		{
			name:        "incomplete_function",
			input:       "function foo() { let x = ",
			description: "user is mid-way through typing a function body",
		},
		{
			name:        "missing_closing_brace",
			input:       "function foo() { return 42",
			description: "user hasn't closed the function yet",
		},
		{
			name:        "multiple_statements_no_semicolons",
			input:       "let a = 1\nlet b = 2\nlet c",
			description: "user is typing multiple statements relying on ASI",
		},
	}

	for _, scenario := range scenarios {
		t.Run(scenario.name, func(t *testing.T) {
			p := parser.NewTolerant(scenario.input, false)
			program, _ := p.ParseProgram()
			if program == nil {
				t.Fatalf("%s: expected a program despite errors", scenario.description)
			}
			t.Logf("%s: parsed %d statements", scenario.description, len(program.Statements))
		})
	}
}
