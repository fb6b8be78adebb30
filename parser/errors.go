package parser

import "fmt"

// Position is a 1-based line/column pair, matching the lexer's own
// accounting.
type Position struct {
	Line   int
	Column int
}

// ParserError is one syntactic or restricted-production diagnostic. Lexical
// errors surface the same way: the ASI engine wraps them as a
// *asi.LexicalError and the parser folds that into a ParserError too, so
// callers only ever need to look in one place.
type ParserError struct {
	Message  string
	Position Position
}

func (e ParserError) Error() string {
	return fmt.Sprintf("%d:%d: %s", e.Position.Line, e.Position.Column, e.Message)
}
