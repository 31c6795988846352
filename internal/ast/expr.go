package ast

import (
	"github.com/hon-lang/hon/internal/lexer/token"
)

var COMPARISON map[token.Kind]bool = map[token.Kind]bool{
	token.LT:     true,
	token.GT:     true,
	token.EQ:     true,
	token.GT_EQ:  true,
	token.LT_EQ:  true,
	token.NOT_EQ: true,
}

var ADDITIVE map[token.Kind]bool = map[token.Kind]bool{
	token.PLUS:  true,
	token.MINUS: true,
}

var MULTIPLICATIVE map[token.Kind]bool = map[token.Kind]bool{
	token.MULTIPLY:   true,
	token.DIVIDE:     true,
	token.MODULUS:    true,
	token.INT_DIVIDE: true,
}

var UNARY map[token.Kind]bool = map[token.Kind]bool{
	token.PLUS:  true,
	token.MINUS: true,
}

// OperatorExpr is a binary operation, or a unary one when Right is nil.
type OperatorExpr struct {
	Op    token.Kind
	Left  Expr
	Right Expr
}

func (e *OperatorExpr) Kind() NodeKind         { return KIND_OPERATOR_EXPR }
func (e *OperatorExpr) Accept(v Visitor) error { return v.VisitOperator(e) }
func (e *OperatorExpr) astNode()               {}
func (e *OperatorExpr) exprNode()              {}

func (e *OperatorExpr) IsUnary() bool { return e.Right == nil }

type VariableRef struct {
	Name    string
	Indices []Expr
}

func (e *VariableRef) Kind() NodeKind         { return KIND_VARIABLE_REF }
func (e *VariableRef) Accept(v Visitor) error { return v.VisitVariableRef(e) }
func (e *VariableRef) astNode()               {}
func (e *VariableRef) exprNode()              {}

type LiteralKind int

const (
	LITERAL_INT LiteralKind = iota
	LITERAL_FLOAT
	LITERAL_STRING
	LITERAL_BOOL
	LITERAL_NONE
)

func (k LiteralKind) String() string {
	switch k {
	case LITERAL_INT:
		return "int"
	case LITERAL_FLOAT:
		return "float"
	case LITERAL_STRING:
		return "str"
	case LITERAL_BOOL:
		return "bool"
	case LITERAL_NONE:
		return "NoneType"
	}
	return "unknown"
}

// Literal holds one constant; only the field matching LitKind is meaningful.
type Literal struct {
	LitKind LiteralKind
	Int     int64
	Float   float64
	Str     string
	Bool    bool
}

func (e *Literal) Kind() NodeKind         { return KIND_LITERAL_EXPR }
func (e *Literal) Accept(v Visitor) error { return v.VisitLiteral(e) }
func (e *Literal) astNode()               {}
func (e *Literal) exprNode()              {}

func Int(n int64) *Literal     { return &Literal{LitKind: LITERAL_INT, Int: n} }
func Float(f float64) *Literal { return &Literal{LitKind: LITERAL_FLOAT, Float: f} }
func String(s string) *Literal { return &Literal{LitKind: LITERAL_STRING, Str: s} }
func Bool(b bool) *Literal     { return &Literal{LitKind: LITERAL_BOOL, Bool: b} }
func True() *Literal           { return Bool(true) }
func False() *Literal          { return Bool(false) }
func None() *Literal           { return &Literal{LitKind: LITERAL_NONE} }

// IsBoolLiteral reports whether expr is the boolean literal want.
func IsBoolLiteral(expr Expr, want bool) bool {
	lit, ok := expr.(*Literal)
	return ok && lit.LitKind == LITERAL_BOOL && lit.Bool == want
}

type ListExpr struct {
	Elems []Expr
}

func (e *ListExpr) Kind() NodeKind         { return KIND_LIST_EXPR }
func (e *ListExpr) Accept(v Visitor) error { return v.VisitList(e) }
func (e *ListExpr) astNode()               {}
func (e *ListExpr) exprNode()              {}

type CallExpr struct {
	Name string
	Args []Expr
}

func (e *CallExpr) Kind() NodeKind         { return KIND_CALL_EXPR }
func (e *CallExpr) Accept(v Visitor) error { return v.VisitCall(e) }
func (e *CallExpr) astNode()               {}
func (e *CallExpr) exprNode()              {}
func (e *CallExpr) stmtNode()              {}

type MethodCallExpr struct {
	Receiver string
	Method   string
	Args     []Expr
}

func (e *MethodCallExpr) Kind() NodeKind         { return KIND_METHOD_CALL_EXPR }
func (e *MethodCallExpr) Accept(v Visitor) error { return v.VisitMethodCall(e) }
func (e *MethodCallExpr) astNode()               {}
func (e *MethodCallExpr) exprNode()              {}
func (e *MethodCallExpr) stmtNode()              {}

// VariableTarget is the left-hand side of an assignment. It mirrors
// VariableRef but marks a binding occurrence.
type VariableTarget struct {
	Name    string
	Indices []Expr
}

func (t *VariableTarget) Kind() NodeKind         { return KIND_VARIABLE_TARGET }
func (t *VariableTarget) Accept(v Visitor) error { return v.VisitVariableTarget(t) }
func (t *VariableTarget) astNode()               {}
