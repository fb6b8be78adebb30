/*
Package token defines the terminal alphabet shared by the xjs lexer, ASI
engine, and parser: keywords, literals, operators/punctuators, the template
literal chunk kinds, and the two synthetic terminals (FUNCTION_DECL,
ARROW_HEAD) the ASI engine produces that never come directly off the raw
character stream.
*/
package token
