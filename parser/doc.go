/*
Package parser builds an Abstract Syntax Tree from the token stream produced
by package asi. It is a Pratt parser (top-down operator precedence): a
prefix/infix function table keyed by token.Type plus a per-operator
precedence map, the same architecture as the teacher's hand-written
recursive-descent-with-precedence-climbing parser, generalized to the full
expression and statement grammar of a common ECMAScript subset.

The parser never looks more than one token ahead itself — arrow-function
heads and declaration-vs-expression FUNCTION classification are already
resolved by package asi's ARROW_HEAD and FUNCTION_DECL synthetic terminals,
so the grammar here stays a straightforward one-token-lookahead design.

A parser from New or NewModule stops after the first top-level statement
in which it records an error. A parser from NewTolerant keeps going to the
end of the input, so a single file reports every syntax error it meets
rather than only the first. Tolerant mode does not skip tokens up to a
statement boundary: a statement parser that fails returns the node built
so far, and parsing resumes at the token after the one where it stopped.
The error count, not whether recovery "succeeded", is what PASS/FAIL is
based on.
*/
package parser
