/*
Package lexer tokenizes XJS source text into the terminal alphabet defined
by package token. It resolves the two ambiguities that cannot be pushed
downstream: whether a '/' begins a regex literal or a division operator,
and how a template literal re-enters template-chunk scanning after a
"${...}" substitution closes.

The lexer produces raw tokens only; it does not perform automatic
semicolon insertion, function-declaration classification, or arrow-head
lookahead — those live in package asi, one layer up.
*/
package lexer
