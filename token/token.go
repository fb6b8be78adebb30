// Package token defines the token types and structures shared by the xjs
// lexer, ASI engine, and parser.
package token

import "fmt"

// Type represents the different kinds of lexical tokens.
type Type int

const (
	// Special tokens
	ILLEGAL Type = iota
	EOF

	// Identifiers and literals
	IDENT  // foo, $bar, _baz
	NUMBER // 123, 0x1A, 0o17, 0b101, 3.14, 1e10
	STRING // "hello", 'hello'
	REGEX  // /ab+c/gi

	// Template literal pieces
	TEMPLATE_NO_SUB // `hello`
	TEMPLATE_HEAD   // `hello ${
	TEMPLATE_MIDDLE // } world ${
	TEMPLATE_TAIL   // } !`

	// Keywords
	VAR
	LET
	CONST
	FUNCTION
	IF
	ELSE
	FOR
	WHILE
	DO
	RETURN
	BREAK
	CONTINUE
	SWITCH
	CASE
	DEFAULT
	TRY
	CATCH
	FINALLY
	THROW
	NEW
	THIS
	TYPEOF
	DELETE
	IN
	INSTANCEOF
	VOID
	WITH
	DEBUGGER
	CLASS
	EXTENDS
	SUPER
	IMPORT
	EXPORT
	YIELD
	ASYNC
	AWAIT
	TRUE
	FALSE
	NULL

	// Operators and punctuators
	ASSIGN          // =
	PLUS            // +
	MINUS           // -
	MULTIPLY        // *
	DIVIDE          // /
	MODULO          // %
	EXPONENT        // **
	PLUS_PLUS       // ++
	MINUS_MINUS     // --
	EQ              // ==
	NOT_EQ          // !=
	EQ_STRICT       // ===
	NOT_EQ_STRICT   // !==
	LT              // <
	GT              // >
	LTE             // <=
	GTE             // >=
	AND             // &&
	OR              // ||
	NOT             // !
	BIT_AND         // &
	BIT_OR          // |
	BIT_XOR         // ^
	BIT_NOT         // ~
	LSHIFT          // <<
	RSHIFT          // >>
	URSHIFT         // >>>
	PLUS_ASSIGN     // +=
	MINUS_ASSIGN    // -=
	MULTIPLY_ASSIGN // *=
	DIVIDE_ASSIGN   // /=
	MODULO_ASSIGN   // %=
	EXPONENT_ASSIGN // **=
	AND_ASSIGN      // &=
	OR_ASSIGN       // |=
	XOR_ASSIGN      // ^=
	LSHIFT_ASSIGN   // <<=
	RSHIFT_ASSIGN   // >>=
	URSHIFT_ASSIGN  // >>>=
	QUESTION        // ?
	COLON           // :
	ARROW           // =>
	ELLIPSIS        // ...
	COMMA           // ,
	SEMICOLON       // ;
	DOT             // .
	OPTIONAL_CHAIN  // ?.
	LPAREN          // (
	RPAREN          // )
	LBRACE          // {
	RBRACE          // }
	LBRACKET        // [
	RBRACKET        // ]

	// Synthetic terminals produced by the ASI engine, never by the lexer.
	FUNCTION_DECL
	ARROW_HEAD
)

// Token is a single lexical unit with its source position.
//
// Literal holds the source text of every token scanned from the input,
// keywords and punctuators included (the parser reads operator spellings
// from it). It is empty for EOF and for the ASI engine's ARROW_HEAD.
type Token struct {
	Type    Type
	Literal string
	Line    int
	Column  int
}

func (t Token) String() string {
	return fmt.Sprintf("{%s %q %d:%d}", t.Type, t.Literal, t.Line, t.Column)
}

var names = map[Type]string{
	ILLEGAL:         "ILLEGAL",
	EOF:             "EOF",
	IDENT:           "IDENT",
	NUMBER:          "NUMBER",
	STRING:          "STRING",
	REGEX:           "REGEX",
	TEMPLATE_NO_SUB: "TEMPLATE_NO_SUB",
	TEMPLATE_HEAD:   "TEMPLATE_HEAD",
	TEMPLATE_MIDDLE: "TEMPLATE_MIDDLE",
	TEMPLATE_TAIL:   "TEMPLATE_TAIL",
	VAR:             "var",
	LET:             "let",
	CONST:           "const",
	FUNCTION:        "function",
	IF:              "if",
	ELSE:            "else",
	FOR:             "for",
	WHILE:           "while",
	DO:              "do",
	RETURN:          "return",
	BREAK:           "break",
	CONTINUE:        "continue",
	SWITCH:          "switch",
	CASE:            "case",
	DEFAULT:         "default",
	TRY:             "try",
	CATCH:           "catch",
	FINALLY:         "finally",
	THROW:           "throw",
	NEW:             "new",
	THIS:            "this",
	TYPEOF:          "typeof",
	DELETE:          "delete",
	IN:              "in",
	INSTANCEOF:      "instanceof",
	VOID:            "void",
	WITH:            "with",
	DEBUGGER:        "debugger",
	CLASS:           "class",
	EXTENDS:         "extends",
	SUPER:           "super",
	IMPORT:          "import",
	EXPORT:          "export",
	YIELD:           "yield",
	ASYNC:           "async",
	AWAIT:           "await",
	TRUE:            "true",
	FALSE:           "false",
	NULL:            "null",
	ASSIGN:          "=",
	PLUS:            "+",
	MINUS:           "-",
	MULTIPLY:        "*",
	DIVIDE:          "/",
	MODULO:          "%",
	EXPONENT:        "**",
	PLUS_PLUS:       "++",
	MINUS_MINUS:     "--",
	EQ:              "==",
	NOT_EQ:          "!=",
	EQ_STRICT:       "===",
	NOT_EQ_STRICT:   "!==",
	LT:              "<",
	GT:              ">",
	LTE:             "<=",
	GTE:             ">=",
	AND:             "&&",
	OR:              "||",
	NOT:             "!",
	BIT_AND:         "&",
	BIT_OR:          "|",
	BIT_XOR:         "^",
	BIT_NOT:         "~",
	LSHIFT:          "<<",
	RSHIFT:          ">>",
	URSHIFT:         ">>>",
	PLUS_ASSIGN:     "+=",
	MINUS_ASSIGN:    "-=",
	MULTIPLY_ASSIGN: "*=",
	DIVIDE_ASSIGN:   "/=",
	MODULO_ASSIGN:   "%=",
	EXPONENT_ASSIGN: "**=",
	AND_ASSIGN:      "&=",
	OR_ASSIGN:       "|=",
	XOR_ASSIGN:      "^=",
	LSHIFT_ASSIGN:   "<<=",
	RSHIFT_ASSIGN:   ">>=",
	URSHIFT_ASSIGN:  ">>>=",
	QUESTION:        "?",
	COLON:           ":",
	ARROW:           "=>",
	ELLIPSIS:        "...",
	COMMA:           ",",
	SEMICOLON:       ";",
	DOT:             ".",
	OPTIONAL_CHAIN:  "?.",
	LPAREN:          "(",
	RPAREN:          ")",
	LBRACE:          "{",
	RBRACE:          "}",
	LBRACKET:        "[",
	RBRACKET:        "]",
	FUNCTION_DECL:   "FUNCTION_DECL",
	ARROW_HEAD:      "ARROW_HEAD",
}

// String returns the token type's canonical name; for punctuators and
// keywords this is the literal text.
func (tt Type) String() string {
	if s, ok := names[tt]; ok {
		return s
	}
	return "UNKNOWN"
}

// Keywords maps reserved words to their token types. Identifiers not found
// here lex as IDENT.
var Keywords = map[string]Type{
	"var":        VAR,
	"let":        LET,
	"const":      CONST,
	"function":   FUNCTION,
	"if":         IF,
	"else":       ELSE,
	"for":        FOR,
	"while":      WHILE,
	"do":         DO,
	"return":     RETURN,
	"break":      BREAK,
	"continue":   CONTINUE,
	"switch":     SWITCH,
	"case":       CASE,
	"default":    DEFAULT,
	"try":        TRY,
	"catch":      CATCH,
	"finally":    FINALLY,
	"throw":      THROW,
	"new":        NEW,
	"this":       THIS,
	"typeof":     TYPEOF,
	"delete":     DELETE,
	"in":         IN,
	"instanceof": INSTANCEOF,
	"void":       VOID,
	"with":       WITH,
	"debugger":   DEBUGGER,
	"class":      CLASS,
	"extends":    EXTENDS,
	"super":      SUPER,
	"import":     IMPORT,
	"export":     EXPORT,
	"yield":      YIELD,
	"async":      ASYNC,
	"await":      AWAIT,
	"true":       TRUE,
	"false":      FALSE,
	"null":       NULL,
}

// LookupIdent classifies a scanned identifier as a keyword or plain IDENT.
// "undefined" is deliberately absent: per the reference implementation it
// is syntactically an ordinary identifier (see SPEC_FULL.md §9a).
func LookupIdent(ident string) Type {
	if tok, ok := Keywords[ident]; ok {
		return tok
	}
	return IDENT
}

// IsIdentifierName reports whether tt is legal after a '.' or as an object
// property key without quoting: a plain identifier, or any reserved word
// used as a property name ("obj.class", "{ default: 1 }").
func IsIdentifierName(tt Type) bool {
	return tt == IDENT || (tt >= VAR && tt <= NULL)
}

// IsControlKeyword reports whether tt introduces a control-statement
// parenthesised header (if/for/while/with/switch/catch), used by the ASI
// engine to classify '(' and to decide brace kind.
func IsControlKeyword(tt Type) bool {
	switch tt {
	case IF, FOR, WHILE, WITH, SWITCH, CATCH:
		return true
	default:
		return false
	}
}
