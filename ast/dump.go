package ast

import (
	"fmt"
	"io"
	"reflect"
	"strings"
)

// Dump writes the canonical indented text form of a tree rooted at n to w:
// two spaces per level, one node per line as "<NodeName> [<key>=<value>
// ...]", with children grouped under labelled sub-sections ("Test:",
// "Body:", "Params:", ...). The format is a stable external contract, not
// a debugging convenience — for ad-hoc inspection use package debug
// instead.
func Dump(w io.Writer, n Node) error {
	d := &dumper{w: w}
	d.dump(n)
	return d.err
}

type dumper struct {
	w      io.Writer
	indent int
	err    error
}

func (d *dumper) writeln(s string) {
	if d.err != nil {
		return
	}
	_, d.err = fmt.Fprintf(d.w, "%s%s\n", strings.Repeat("  ", d.indent), s)
}

func (d *dumper) header(name string, attrs ...string) {
	if len(attrs) == 0 {
		d.writeln(name)
		return
	}
	d.writeln(fmt.Sprintf("%s [%s]", name, strings.Join(attrs, " ")))
}

func attr(key string, value any) string {
	return fmt.Sprintf("%s=%v", key, value)
}

// isNilNode reports whether n is either an untyped nil interface or an
// interface wrapping a nil pointer (e.g. a nil *ast.StringLiteral stored
// in a field typed as the Node interface) — a classic Go trap that would
// otherwise reach dump's type switch and panic on the nil receiver.
func isNilNode(n Node) bool {
	if n == nil {
		return true
	}
	v := reflect.ValueOf(n)
	if v.Kind() == reflect.Ptr {
		return v.IsNil()
	}
	return false
}

// section prints a label, then dumps each node under it one level deeper.
func (d *dumper) section(label string, nodes ...Node) {
	d.writeln(label + ":")
	d.indent++
	for _, n := range nodes {
		if isNilNode(n) {
			d.writeln("<nil>")
			continue
		}
		d.dump(n)
	}
	d.indent--
}

// child prints a label followed by a single optional node.
func (d *dumper) child(label string, n Node) {
	if isNilNode(n) {
		d.writeln(label + ": <nil>")
		return
	}
	d.writeln(label + ":")
	d.indent++
	d.dump(n)
	d.indent--
}

func (d *dumper) dump(n Node) {
	switch v := n.(type) {
	case *Program:
		d.header("Program")
		d.indent++
		d.section("Body", toNodes(v.Statements)...)
		d.indent--

	case *BlockStatement:
		d.header("Block")
		d.indent++
		d.section("Body", toNodes(v.Statements)...)
		d.indent--

	case *VarStatement:
		d.header("VarStmt", attr("kind", v.Kind))
		d.indent++
		decls := make([]Node, len(v.Declarations))
		for i, decl := range v.Declarations {
			decls[i] = decl
		}
		d.section("Decls", decls...)
		d.indent--

	case *VarDeclarator:
		d.header("VarDecl")
		d.indent++
		d.child("Target", v.Target)
		d.child("Init", v.Init)
		d.indent--

	case *Param:
		d.header("Param")
		d.indent++
		d.child("Target", v.Target)
		d.child("Default", v.Default)
		d.indent--

	case *FunctionDeclaration:
		name := "<anonymous>"
		if v.Name != nil {
			name = v.Name.Name
		}
		d.header("FunctionDecl", attr("name", name), attr("generator", v.Generator), attr("async", v.Async))
		d.indent++
		d.section("Params", v.Params...)
		d.child("Body", v.Body)
		d.indent--

	case *FunctionExpression:
		name := "<anonymous>"
		if v.Name != nil {
			name = v.Name.Name
		}
		d.header("FunctionExpr", attr("name", name), attr("generator", v.Generator), attr("async", v.Async))
		d.indent++
		d.section("Params", v.Params...)
		d.child("Body", v.Body)
		d.indent--

	case *ArrowFunctionExpression:
		d.header("ArrowFunction", attr("expressionBody", v.ExpressionBody), attr("async", v.Async))
		d.indent++
		d.section("Params", v.Params...)
		d.child("Body", v.Body)
		d.indent--

	case *ReturnStatement:
		d.header("Return")
		d.indent++
		d.child("Argument", v.Argument)
		d.indent--

	case *IfStatement:
		d.header("If")
		d.indent++
		d.child("Test", v.Test)
		d.child("Consequent", v.Consequent)
		d.child("Alternate", v.Alternate)
		d.indent--

	case *ForStatement:
		d.header("For")
		d.indent++
		d.child("Init", v.Init)
		d.child("Test", v.Test)
		d.child("Update", v.Update)
		d.child("Body", v.Body)
		d.indent--

	case *ForInStatement:
		d.header("ForIn")
		d.indent++
		d.child("Left", v.Left)
		d.child("Right", v.Right)
		d.child("Body", v.Body)
		d.indent--

	case *ForOfStatement:
		d.header("ForOf", attr("await", v.Await))
		d.indent++
		d.child("Left", v.Left)
		d.child("Right", v.Right)
		d.child("Body", v.Body)
		d.indent--

	case *WhileStatement:
		d.header("While")
		d.indent++
		d.child("Test", v.Test)
		d.child("Body", v.Body)
		d.indent--

	case *DoWhileStatement:
		d.header("DoWhile")
		d.indent++
		d.child("Body", v.Body)
		d.child("Test", v.Test)
		d.indent--

	case *SwitchStatement:
		d.header("Switch")
		d.indent++
		d.child("Discriminant", v.Discriminant)
		cases := make([]Node, len(v.Cases))
		for i, c := range v.Cases {
			cases[i] = c
		}
		d.section("Cases", cases...)
		d.indent--

	case *SwitchCase:
		d.header("SwitchCase", attr("default", v.Test == nil))
		d.indent++
		d.child("Test", v.Test)
		d.section("Consequent", toNodes(v.Consequent)...)
		d.indent--

	case *TryStatement:
		d.header("Try")
		d.indent++
		d.child("Block", v.Block)
		d.child("Handler", v.Handler)
		d.child("Finalizer", v.Finalizer)
		d.indent--

	case *CatchClause:
		d.header("Catch")
		d.indent++
		d.child("Param", v.Param)
		d.child("Body", v.Body)
		d.indent--

	case *WithStatement:
		d.header("With")
		d.indent++
		d.child("Object", v.Object)
		d.child("Body", v.Body)
		d.indent--

	case *LabeledStatement:
		d.header("Labeled", attr("label", v.Label))
		d.indent++
		d.child("Body", v.Body)
		d.indent--

	case *BreakStatement:
		d.header("Break", attr("label", v.Label))

	case *ContinueStatement:
		d.header("Continue", attr("label", v.Label))

	case *ThrowStatement:
		d.header("Throw")
		d.indent++
		d.child("Argument", v.Argument)
		d.indent--

	case *ExpressionStatement:
		d.header("ExpressionStmt")
		d.indent++
		d.child("Expression", v.Expression)
		d.indent--

	case *EmptyStatement:
		d.header("EmptyStmt")

	case *DebuggerStatement:
		d.header("DebuggerStmt")

	case *Identifier:
		d.header("Identifier", attr("name", v.Name))

	case *ThisExpression:
		d.header("This")

	case *SuperExpression:
		d.header("Super")

	case *NumberLiteral:
		d.header("Literal", attr("kind", "Number"), attr("raw", v.Raw))

	case *StringLiteral:
		d.header("Literal", attr("kind", "String"), attr("raw", v.Raw))

	case *RegexLiteral:
		d.header("Literal", attr("kind", "Regex"), attr("raw", v.Raw))

	case *BooleanLiteral:
		d.header("Literal", attr("kind", "Boolean"), attr("value", v.Value))

	case *NullLiteral:
		d.header("Literal", attr("kind", "Null"))

	case *TemplateElement:
		d.header("TemplateElement", attr("tail", v.Tail), attr("raw", v.Raw))

	case *TemplateLiteral:
		d.header("TemplateLiteral")
		d.indent++
		d.section("Quasis", toNodes(v.Quasis)...)
		d.section("Expressions", toNodes(v.Expressions)...)
		d.indent--

	case *TaggedTemplateExpression:
		d.header("TaggedTemplate")
		d.indent++
		d.child("Tag", v.Tag)
		d.child("Quasi", v.Quasi)
		d.indent--

	case *AssignmentExpression:
		d.header("Assign", attr("op", v.Operator))
		d.indent++
		d.child("Left", v.Left)
		d.child("Right", v.Right)
		d.indent--

	case *BinaryExpression:
		d.header("Binary", attr("op", v.Operator))
		d.indent++
		d.child("Left", v.Left)
		d.child("Right", v.Right)
		d.indent--

	case *ConditionalExpression:
		d.header("Conditional")
		d.indent++
		d.child("Test", v.Test)
		d.child("Consequent", v.Consequent)
		d.child("Alternate", v.Alternate)
		d.indent--

	case *SequenceExpression:
		d.header("Sequence")
		d.indent++
		d.section("Expressions", toNodes(v.Expressions)...)
		d.indent--

	case *UnaryExpression:
		d.header("Unary", attr("op", v.Operator))
		d.indent++
		d.child("Argument", v.Argument)
		d.indent--

	case *NewExpression:
		d.header("New")
		d.indent++
		d.child("Callee", v.Callee)
		d.section("Arguments", toNodes(v.Arguments)...)
		d.indent--

	case *UpdateExpression:
		d.header("Update", attr("op", v.Operator), attr("prefix", v.Prefix))
		d.indent++
		d.child("Argument", v.Argument)
		d.indent--

	case *CallExpression:
		d.header("Call", attr("optional", v.Optional))
		d.indent++
		d.child("Callee", v.Callee)
		d.section("Arguments", toNodes(v.Arguments)...)
		d.indent--

	case *MemberExpression:
		d.header("Member", attr("computed", v.Computed), attr("optional", v.Optional))
		d.indent++
		d.child("Object", v.Object)
		d.child("Property", v.Property)
		d.indent--

	case *YieldExpression:
		d.header("Yield", attr("delegate", v.Delegate))
		d.indent++
		d.child("Argument", v.Argument)
		d.indent--

	case *AwaitExpression:
		d.header("Await")
		d.indent++
		d.child("Argument", v.Argument)
		d.indent--

	case *SpreadElement:
		d.header("SpreadElement")
		d.indent++
		d.child("Argument", v.Argument)
		d.indent--

	case *ArrayHole:
		d.header("ArrayHole")

	case *ArrayLiteral:
		d.header("ArrayLiteral")
		d.indent++
		d.section("Elements", v.Elements...)
		d.indent--

	case *Property:
		d.header("Property", attr("computed", v.Computed), attr("shorthand", v.Shorthand), attr("method", v.Method), attr("kind", v.Kind))
		d.indent++
		d.child("Key", v.Key)
		d.child("Value", v.Value)
		d.indent--

	case *ObjectLiteral:
		d.header("ObjectLiteral")
		d.indent++
		d.section("Properties", v.Properties...)
		d.indent--

	case *RestElement:
		d.header("RestElement")
		d.indent++
		d.child("Argument", v.Argument)
		d.indent--

	case *BindingProperty:
		d.header("BindingProperty", attr("computed", v.Computed), attr("shorthand", v.Shorthand))
		d.indent++
		d.child("Key", v.Key)
		d.child("Value", v.Value)
		d.indent--

	case *ObjectBindingPattern:
		d.header("ObjectBinding")
		d.indent++
		d.section("Properties", toNodes(v.Properties)...)
		d.indent--

	case *ArrayBindingPattern:
		d.header("ArrayBinding")
		d.indent++
		d.section("Elements", v.Elements...)
		d.indent--

	case *MethodDefinition:
		d.header("MethodDef", attr("computed", v.Computed), attr("static", v.Static),
			attr("generator", v.Generator), attr("async", v.Async), attr("kind", v.Kind))
		d.indent++
		d.child("Key", v.Key)
		d.child("Function", v.Function)
		d.indent--

	case *ClassDeclaration:
		name := "<anonymous>"
		if v.Name != nil {
			name = v.Name.Name
		}
		d.header("ClassDecl", attr("name", name))
		d.indent++
		d.child("SuperClass", v.SuperClass)
		d.section("Body", toNodes(v.Body)...)
		d.indent--

	case *ClassExpression:
		name := "<anonymous>"
		if v.Name != nil {
			name = v.Name.Name
		}
		d.header("ClassExpr", attr("name", name))
		d.indent++
		d.child("SuperClass", v.SuperClass)
		d.section("Body", toNodes(v.Body)...)
		d.indent--

	case *ImportSpecifier:
		d.header("ImportSpecifier", attr("local", v.Local), attr("imported", v.Imported),
			attr("namespace", v.Namespace), attr("default", v.Default))

	case *ImportDeclaration:
		d.header("ImportDecl")
		d.indent++
		d.section("Specifiers", toNodes(v.Specifiers)...)
		d.child("Source", v.Source)
		d.indent--

	case *ExportSpecifier:
		d.header("ExportSpecifier", attr("local", v.Local), attr("exported", v.Exported), attr("namespace", v.Namespace))

	case *ExportDeclaration:
		d.header("ExportDecl", attr("default", v.Default), attr("exportAll", v.ExportAll), attr("exportAllAlias", v.ExportAllAlias))
		d.indent++
		d.child("Declaration", v.Declaration)
		d.section("Specifiers", toNodes(v.Specifiers)...)
		d.child("Source", v.Source)
		d.indent--

	default:
		d.header(fmt.Sprintf("Unknown(%T)", n))
	}
}

func toNodes[T Node](in []T) []Node {
	out := make([]Node, len(in))
	for i, n := range in {
		out[i] = n
	}
	return out
}
