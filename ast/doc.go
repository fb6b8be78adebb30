/*
Package ast defines the parse tree produced by package parser: one Go type
per grammar production, linked by the Node/Statement/Expression/
BindingTarget marker interfaces instead of a single tagged-union node.
There is no explicit free — a node's children are released exactly when
the garbage collector determines nothing still references them, and
parent pointers are intentionally absent so every subtree remains a
self-contained, acyclic value.

Dump implements the indented text form used as an external, byte-stable
contract; Traverse implements the pre-order walk used by callers (tests,
future semantic passes) that need to visit every
node without caring about its concrete type.
*/
package ast
