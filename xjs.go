// Package xjs is the top-level convenience entry point: Parse a source
// string and get back an AST plus the list of errors found, without
// touching package parser's constructors directly.
package xjs

import (
	"github.com/xjslang/xjs-core/ast"
	"github.com/xjslang/xjs-core/parser"
)

// Version identifies this module for diagnostic banners.
const Version = "0.1.0"

// Parse parses input in script mode (the default CLI mode — import/export
// degrade to plain identifiers) and stops after the first top-level
// statement that contains a syntax error. Use
// ParseModule or ParseTolerant for the other combinations.
func Parse(input string) (*ast.Program, []parser.ParserError) {
	p := parser.New(input)
	prog, _ := p.ParseProgram()
	return prog, p.Errors()
}

// ParseModule parses input with import/export recognized as keywords.
func ParseModule(input string) (*ast.Program, []parser.ParserError) {
	p := parser.NewModule(input)
	prog, _ := p.ParseProgram()
	return prog, p.Errors()
}

// ParseTolerant parses input with statement-level error recovery, so a
// single call reports every syntax error the file contains.
func ParseTolerant(input string, moduleMode bool) (*ast.Program, []parser.ParserError) {
	p := parser.NewTolerant(input, moduleMode)
	prog, _ := p.ParseProgram()
	return prog, p.Errors()
}
