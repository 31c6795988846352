package token

import "fmt"

type Kind int

const (
	// End of input
	EOI Kind = iota
	UNKNOWN

	// Keywords
	LET
	PASS
	BREAK
	CONTINUE
	IF
	ELIF
	ELSE
	WHILE
	NONE
	TRUE
	FALSE
	DEF
	RETURN

	// Operators
	OR
	AND
	NOT
	// <
	LT
	// >
	GT
	// ==
	EQ
	// >=
	GT_EQ
	// <=
	LT_EQ
	// !=
	NOT_EQ
	// +
	PLUS
	// -
	MINUS
	// *
	MULTIPLY
	// /
	DIVIDE
	// %
	MODULUS
	// //
	INT_DIVIDE
	// =
	ASSIGN
	// **
	POWER

	// ;
	SEMICOLON
	// (
	PAREN_L
	// )
	PAREN_R
	// [
	BRACKET_L
	// ]
	BRACKET_R
	// {
	CURLY_L
	// }
	CURLY_R
	// ,
	COMMA
	// .
	PERIOD
	// :
	COLON

	// Literals
	INTEGER_LITERAL
	FLOAT_LITERAL
	STRING_LITERAL
	IDENTIFIER

	// Synthesized by the lexer, never spelled in source
	INDENT
	DEDENT
	NEWLINE
)

var KEYWORDS map[string]Kind = map[string]Kind{
	"let":      LET,
	"pass":     PASS,
	"break":    BREAK,
	"continue": CONTINUE,
	"if":       IF,
	"elif":     ELIF,
	"else":     ELSE,
	"while":    WHILE,
	"None":     NONE,
	"True":     TRUE,
	"False":    FALSE,
	"def":      DEF,
	"return":   RETURN,
	"or":       OR,
	"and":      AND,
	"not":      NOT,
}

var BRACKET_OPEN map[Kind]bool = map[Kind]bool{
	PAREN_L:   true,
	BRACKET_L: true,
	CURLY_L:   true,
}

var BRACKET_CLOSE map[Kind]bool = map[Kind]bool{
	PAREN_R:   true,
	BRACKET_R: true,
	CURLY_R:   true,
}

func (kind Kind) IsKeyword() bool {
	return kind >= LET && kind <= RETURN
}

func (kind Kind) IsOperator() bool {
	return kind >= OR && kind <= POWER
}

func (kind Kind) IsLiteral() bool {
	switch kind {
	case INTEGER_LITERAL, FLOAT_LITERAL, STRING_LITERAL, TRUE, FALSE, NONE:
		return true
	}
	return false
}

// Name is the upper-case identifier of the kind, as used in token dumps.
func (kind Kind) Name() string {
	if int(kind) < len(kindNames) && kindNames[kind] != "" {
		return kindNames[kind]
	}
	return fmt.Sprintf("Kind(%d)", int(kind))
}

var kindNames = [...]string{
	EOI:             "EOI",
	UNKNOWN:         "UNKNOWN",
	LET:             "LET",
	PASS:            "PASS",
	BREAK:           "BREAK",
	CONTINUE:        "CONTINUE",
	IF:              "IF",
	ELIF:            "ELIF",
	ELSE:            "ELSE",
	WHILE:           "WHILE",
	NONE:            "NONE",
	TRUE:            "TRUE",
	FALSE:           "FALSE",
	DEF:             "DEF",
	RETURN:          "RETURN",
	OR:              "OR",
	AND:             "AND",
	NOT:             "NOT",
	LT:              "LT",
	GT:              "GT",
	EQ:              "EQ",
	GT_EQ:           "GT_EQ",
	LT_EQ:           "LT_EQ",
	NOT_EQ:          "NOT_EQ",
	PLUS:            "PLUS",
	MINUS:           "MINUS",
	MULTIPLY:        "MULTIPLY",
	DIVIDE:          "DIVIDE",
	MODULUS:         "MODULUS",
	INT_DIVIDE:      "INT_DIVIDE",
	ASSIGN:          "ASSIGN",
	POWER:           "POWER",
	SEMICOLON:       "SEMICOLON",
	PAREN_L:         "PAREN_L",
	PAREN_R:         "PAREN_R",
	BRACKET_L:       "BRACKET_L",
	BRACKET_R:       "BRACKET_R",
	CURLY_L:         "CURLY_L",
	CURLY_R:         "CURLY_R",
	COMMA:           "COMMA",
	PERIOD:          "PERIOD",
	COLON:           "COLON",
	INTEGER_LITERAL: "INTEGER_LITERAL",
	FLOAT_LITERAL:   "FLOAT_LITERAL",
	STRING_LITERAL:  "STRING_LITERAL",
	IDENTIFIER:      "IDENTIFIER",
	INDENT:          "INDENT",
	DEDENT:          "DEDENT",
	NEWLINE:         "NEWLINE",
}

func (kind Kind) String() string {
	switch kind {
	case EOI:
		return "end of input"
	case UNKNOWN:
		return "unknown"
	case LET:
		return "let"
	case PASS:
		return "pass"
	case BREAK:
		return "break"
	case CONTINUE:
		return "continue"
	case IF:
		return "if"
	case ELIF:
		return "elif"
	case ELSE:
		return "else"
	case WHILE:
		return "while"
	case NONE:
		return "None"
	case TRUE:
		return "True"
	case FALSE:
		return "False"
	case DEF:
		return "def"
	case RETURN:
		return "return"
	case OR:
		return "or"
	case AND:
		return "and"
	case NOT:
		return "not"
	case LT:
		return "<"
	case GT:
		return ">"
	case EQ:
		return "=="
	case GT_EQ:
		return ">="
	case LT_EQ:
		return "<="
	case NOT_EQ:
		return "!="
	case PLUS:
		return "+"
	case MINUS:
		return "-"
	case MULTIPLY:
		return "*"
	case DIVIDE:
		return "/"
	case MODULUS:
		return "%"
	case INT_DIVIDE:
		return "//"
	case ASSIGN:
		return "="
	case POWER:
		return "**"
	case SEMICOLON:
		return ";"
	case PAREN_L:
		return "("
	case PAREN_R:
		return ")"
	case BRACKET_L:
		return "["
	case BRACKET_R:
		return "]"
	case CURLY_L:
		return "{"
	case CURLY_R:
		return "}"
	case COMMA:
		return ","
	case PERIOD:
		return "."
	case COLON:
		return ":"
	case INTEGER_LITERAL:
		return "integer literal"
	case FLOAT_LITERAL:
		return "float literal"
	case STRING_LITERAL:
		return "string literal"
	case IDENTIFIER:
		return "identifier"
	case INDENT:
		return "indent"
	case DEDENT:
		return "dedent"
	case NEWLINE:
		return "newline"
	}
	return kind.Name()
}
