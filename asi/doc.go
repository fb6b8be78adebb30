/*
Package asi implements the lexical adapter that sits between package
lexer and package parser: automatic semicolon insertion, FUNCTION_DECL
versus FUNCTION classification, arrow-function-head lookahead, and
module-mode import/export degradation. It is the direct Go counterpart of
a hand-written Bison yylex() adapter — the bracket/brace stacks, one-shot
"last token closed X" flags, and bounded pending-token queue all mirror
that design, translated from global state into Engine fields.
*/
package asi
