// Package ast defines the Abstract Syntax Tree produced by the parser: the
// node kinds, their fields, and the small set of marker interfaces
// (Statement, Expression, BindingTarget) that let a single parse tree hold
// every construct in the grammar.
package ast

import "github.com/xjslang/xjs-core/token"

// pos is embedded by every concrete node to carry its leading token
// (position plus, for literals/identifiers, the raw lexeme) without
// repeating a Token field declaration 60-odd times.
type pos struct {
	Token token.Token
}

func (p pos) Tok() token.Token { return p.Token }

// SetTok assigns the node's leading token. It exists so constructors living
// outside this package (the parser) can stamp position information on a
// freshly built node without needing to name the unexported pos field
// directly in a composite literal.
func (p *pos) SetTok(t token.Token) { p.Token = t }

// Node is implemented by every AST node.
type Node interface {
	Tok() token.Token
}

// Statement is implemented by every node valid in statement position.
type Statement interface {
	Node
	statementNode()
}

// Expression is implemented by every node valid in expression position.
type Expression interface {
	Node
	expressionNode()
}

// BindingTarget is implemented by nodes that can appear on the left of a
// var/let/const declarator, a function parameter, or a catch clause:
// plain identifiers and the two destructuring pattern shapes.
type BindingTarget interface {
	Node
	bindingTargetNode()
}

// VarKind distinguishes var/let/const declarations.
type VarKind int

const (
	VarKindVar VarKind = iota
	VarKindLet
	VarKindConst
)

func (k VarKind) String() string {
	switch k {
	case VarKindVar:
		return "var"
	case VarKindLet:
		return "let"
	case VarKindConst:
		return "const"
	default:
		return "var?"
	}
}

// MethodKind distinguishes ordinary methods from accessors and the
// constructor.
type MethodKind int

const (
	MethodNormal MethodKind = iota
	MethodGet
	MethodSet
	MethodConstructor
)

func (k MethodKind) String() string {
	switch k {
	case MethodGet:
		return "get"
	case MethodSet:
		return "set"
	case MethodConstructor:
		return "constructor"
	default:
		return "method"
	}
}

// Program is the root of every parse tree.
type Program struct {
	pos
	Statements []Statement
}

// BlockStatement is a brace-delimited statement list.
type BlockStatement struct {
	pos
	Statements []Statement
}

func (*BlockStatement) statementNode() {}

// VarDeclarator pairs a single binding target with its optional
// initializer, one per comma-separated entry in a var/let/const statement.
type VarDeclarator struct {
	pos
	Target BindingTarget
	Init   Expression
}

// VarStatement is a var/let/const declaration, possibly declaring several
// bindings at once.
type VarStatement struct {
	pos
	Kind         VarKind
	Declarations []*VarDeclarator
}

func (*VarStatement) statementNode() {}

// Param is a function parameter: a binding target with an optional default
// value. A rest parameter is instead represented by *RestElement.
type Param struct {
	pos
	Target  BindingTarget
	Default Expression
}

// FunctionDeclaration binds a name in the enclosing scope; the ASI engine
// is responsible for only ever handing the parser a FUNCTION_DECL token
// where one is syntactically legal.
type FunctionDeclaration struct {
	pos
	Name      *Identifier
	Params    []Node // a BindingTarget (no default), *Param (has a default), or *RestElement
	Body      *BlockStatement
	Generator bool
	Async     bool
}

func (*FunctionDeclaration) statementNode() {}

// FunctionExpression is a (possibly anonymous) function value.
type FunctionExpression struct {
	pos
	Name      *Identifier // nil if anonymous
	Params    []Node
	Body      *BlockStatement
	Generator bool
	Async     bool
}

func (*FunctionExpression) expressionNode() {}

// ArrowFunctionExpression's Body is either an Expression (concise body) or
// a *BlockStatement, selected by ExpressionBody.
type ArrowFunctionExpression struct {
	pos
	Params         []Node
	Body           Node
	ExpressionBody bool
	Async          bool
}

func (*ArrowFunctionExpression) expressionNode() {}

type ReturnStatement struct {
	pos
	Argument Expression // nil for bare "return;"
}

func (*ReturnStatement) statementNode() {}

type IfStatement struct {
	pos
	Test       Expression
	Consequent Statement
	Alternate  Statement // nil if there is no else
}

func (*IfStatement) statementNode() {}

// ForStatement is the classic C-style for loop. Init is nil, a
// *VarStatement, or an Expression.
type ForStatement struct {
	pos
	Init   Node
	Test   Expression
	Update Expression
	Body   Statement
}

func (*ForStatement) statementNode() {}

// ForInStatement's Left is a *VarStatement (with exactly one declarator) or
// an assignment-target Expression.
type ForInStatement struct {
	pos
	Left  Node
	Right Expression
	Body  Statement
}

func (*ForInStatement) statementNode() {}

type ForOfStatement struct {
	pos
	Left  Node
	Right Expression
	Body  Statement
	Await bool
}

func (*ForOfStatement) statementNode() {}

type WhileStatement struct {
	pos
	Test Expression
	Body Statement
}

func (*WhileStatement) statementNode() {}

type DoWhileStatement struct {
	pos
	Body Statement
	Test Expression
}

func (*DoWhileStatement) statementNode() {}

type SwitchCase struct {
	pos
	Test       Expression // nil for the default case
	Consequent []Statement
}

type SwitchStatement struct {
	pos
	Discriminant Expression
	Cases        []*SwitchCase
}

func (*SwitchStatement) statementNode() {}

type CatchClause struct {
	pos
	Param BindingTarget // nil for a parameterless catch
	Body  *BlockStatement
}

type TryStatement struct {
	pos
	Block     *BlockStatement
	Handler   *CatchClause // nil if there is no catch
	Finalizer *BlockStatement // nil if there is no finally
}

func (*TryStatement) statementNode() {}

type WithStatement struct {
	pos
	Object Expression
	Body   Statement
}

func (*WithStatement) statementNode() {}

type LabeledStatement struct {
	pos
	Label string
	Body  Statement
}

func (*LabeledStatement) statementNode() {}

type BreakStatement struct {
	pos
	Label string // "" if unlabeled
}

func (*BreakStatement) statementNode() {}

type ContinueStatement struct {
	pos
	Label string // "" if unlabeled
}

func (*ContinueStatement) statementNode() {}

type ThrowStatement struct {
	pos
	Argument Expression
}

func (*ThrowStatement) statementNode() {}

type ExpressionStatement struct {
	pos
	Expression Expression
}

func (*ExpressionStatement) statementNode() {}

// EmptyStatement is a bare ";".
type EmptyStatement struct {
	pos
}

func (*EmptyStatement) statementNode() {}

// DebuggerStatement is a bare "debugger;"; it carries no semantics in a
// parse-only front end beyond being a recognized statement.
type DebuggerStatement struct {
	pos
}

func (*DebuggerStatement) statementNode() {}

// Identifier is simultaneously an expression and, in a declaration or
// parameter position, a binding target.
type Identifier struct {
	pos
	Name string
}

func (*Identifier) expressionNode()    {}
func (*Identifier) bindingTargetNode() {}

type ThisExpression struct{ pos }

func (*ThisExpression) expressionNode() {}

type SuperExpression struct{ pos }

func (*SuperExpression) expressionNode() {}

// NumberLiteral stores the lexeme verbatim; numeric conversion is a
// downstream concern.
type NumberLiteral struct {
	pos
	Raw string
}

func (*NumberLiteral) expressionNode() {}

// StringLiteral stores the lexeme with its surrounding quotes and escapes
// preserved verbatim.
type StringLiteral struct {
	pos
	Raw string
}

func (*StringLiteral) expressionNode() {}

// RegexLiteral stores the full source, delimiters and flags included.
type RegexLiteral struct {
	pos
	Raw string
}

func (*RegexLiteral) expressionNode() {}

type BooleanLiteral struct {
	pos
	Value bool
}

func (*BooleanLiteral) expressionNode() {}

type NullLiteral struct{ pos }

func (*NullLiteral) expressionNode() {}

// TemplateElement is one literal chunk of a template literal; Tail marks
// the final chunk (the one with no following substitution).
type TemplateElement struct {
	pos
	Raw  string
	Tail bool
}

// TemplateLiteral always holds len(Expressions)+1 quasis.
type TemplateLiteral struct {
	pos
	Quasis      []*TemplateElement
	Expressions []Expression
}

func (*TemplateLiteral) expressionNode() {}

type TaggedTemplateExpression struct {
	pos
	Tag   Expression
	Quasi *TemplateLiteral
}

func (*TaggedTemplateExpression) expressionNode() {}

// AssignmentExpression's Operator is "=" or a compound form ("+=", "&&=",
// ...); Left may be a destructuring pattern.
type AssignmentExpression struct {
	pos
	Operator string
	Left     Expression
	Right    Expression
}

func (*AssignmentExpression) expressionNode() {}

type BinaryExpression struct {
	pos
	Operator string
	Left     Expression
	Right    Expression
}

func (*BinaryExpression) expressionNode() {}

type ConditionalExpression struct {
	pos
	Test       Expression
	Consequent Expression
	Alternate  Expression
}

func (*ConditionalExpression) expressionNode() {}

// SequenceExpression is the comma operator: "a, b, c".
type SequenceExpression struct {
	pos
	Expressions []Expression
}

func (*SequenceExpression) expressionNode() {}

type UnaryExpression struct {
	pos
	Operator string
	Argument Expression
}

func (*UnaryExpression) expressionNode() {}

type NewExpression struct {
	pos
	Callee    Expression
	Arguments []Expression
}

func (*NewExpression) expressionNode() {}

type UpdateExpression struct {
	pos
	Operator string // "++" or "--"
	Argument Expression
	Prefix   bool
}

func (*UpdateExpression) expressionNode() {}

type CallExpression struct {
	pos
	Callee    Expression
	Arguments []Expression
	Optional  bool // true for a ?.() call; the parser does not parse ?.( and leaves it false
}

func (*CallExpression) expressionNode() {}

// MemberExpression's Property is an *Identifier when Computed is false and
// an arbitrary Expression (the bracketed key) when it is true. It also
// implements BindingTarget, so an assignment pattern can target a member
// ("[obj.a] = arr").
type MemberExpression struct {
	pos
	Object   Expression
	Property Node
	Computed bool
	Optional bool // true for ?.name access; the parser does not parse ?.[
}

func (*MemberExpression) expressionNode()    {}
func (*MemberExpression) bindingTargetNode() {}

type YieldExpression struct {
	pos
	Argument Expression // nil for a bare "yield"
	Delegate bool       // true for "yield*"
}

func (*YieldExpression) expressionNode() {}

type AwaitExpression struct {
	pos
	Argument Expression
}

func (*AwaitExpression) expressionNode() {}

// SpreadElement appears inside array literals and call arguments.
type SpreadElement struct {
	pos
	Argument Expression
}

func (*SpreadElement) expressionNode() {}

// ArrayHole is an explicit elided element, e.g. the middle slot of
// "[1, , 3]". Kept as its own node (rather than a nil slice entry) so a
// traversal can't silently mistake "not yet populated" for "intentionally
// empty".
type ArrayHole struct{ pos }

func (*ArrayHole) expressionNode() {}

// ArrayLiteral elements are Expression, *SpreadElement, or *ArrayHole.
type ArrayLiteral struct {
	pos
	Elements []Node
}

func (*ArrayLiteral) expressionNode() {}

// Property is an object literal member. Key is a *Identifier,
// *StringLiteral or *NumberLiteral when Computed is false, and an arbitrary Expression (the
// bracketed key) when it is true.
type Property struct {
	pos
	Key       Node
	Value     Expression
	Computed  bool
	Shorthand bool
	Method    bool
	Kind      MethodKind
}

// ObjectLiteral properties are *Property or *SpreadElement.
type ObjectLiteral struct {
	pos
	Properties []Node
}

func (*ObjectLiteral) expressionNode() {}

// RestElement is a "...x" binding (in a parameter list or a destructuring
// pattern) or, inside a call's argument list, a spread captured instead as
// *SpreadElement. Argument is a BindingTarget in binding position.
type RestElement struct {
	pos
	Argument Node
}

func (*RestElement) bindingTargetNode() {}

// BindingProperty is one "key: target" (or shorthand "key") entry of an
// object destructuring pattern. Value is a BindingTarget, *Param (when it
// carries a default), or *RestElement.
type BindingProperty struct {
	pos
	Key       Node // *Identifier, *StringLiteral or *NumberLiteral; the bracketed Expression if Computed; nil for a rest entry
	Computed  bool
	Value     Node
	Shorthand bool
}

// ObjectBindingPattern is "{ a, b: c }" used as a binding target or, with
// Expression also implemented, as an assignment-expression target.
type ObjectBindingPattern struct {
	pos
	Properties []*BindingProperty
}

func (*ObjectBindingPattern) bindingTargetNode() {}
func (*ObjectBindingPattern) expressionNode()    {}

// ArrayBindingPattern elements are a BindingTarget, *Param (default value),
// *RestElement, or *ArrayHole.
type ArrayBindingPattern struct {
	pos
	Elements []Node
}

func (*ArrayBindingPattern) bindingTargetNode() {}
func (*ArrayBindingPattern) expressionNode()    {}

// MethodDefinition is one member of a class body.
type MethodDefinition struct {
	pos
	Key       Node // *Identifier, *StringLiteral, or an Expression if Computed
	Computed  bool
	Static    bool
	Generator bool
	Async     bool
	Kind      MethodKind
	Function  *FunctionExpression
}

type ClassDeclaration struct {
	pos
	Name       *Identifier
	SuperClass Expression // nil if there is no "extends"
	Body       []*MethodDefinition
}

func (*ClassDeclaration) statementNode() {}

type ClassExpression struct {
	pos
	Name       *Identifier // nil if anonymous
	SuperClass Expression
	Body       []*MethodDefinition
}

func (*ClassExpression) expressionNode() {}

// ImportSpecifier describes one imported binding. Default and Namespace
// are mutually exclusive with each other and with a named import.
type ImportSpecifier struct {
	pos
	Local     string
	Imported  string
	Namespace bool
	Default   bool
}

type ImportDeclaration struct {
	pos
	Specifiers []*ImportSpecifier
	Source     *StringLiteral
}

func (*ImportDeclaration) statementNode() {}

// ExportSpecifier describes one re-exported binding in "export { a as b }".
type ExportSpecifier struct {
	pos
	Local     string
	Exported  string
	Namespace bool
}

// ExportDeclaration covers every export form: default exports
// (Declaration set, Default true), declaration exports ("export function
// f(){}", Declaration set), named-list exports (Specifiers set), and
// re-export-all ("export * from 'mod'" / "export * as ns from 'mod'",
// ExportAll true).
type ExportDeclaration struct {
	pos
	Default        bool
	ExportAll      bool
	ExportAllAlias string // "" unless export-all carries "as ns"
	Declaration    Node
	Specifiers     []*ExportSpecifier
	Source         *StringLiteral // nil unless a "from" clause is present
}

func (*ExportDeclaration) statementNode() {}
