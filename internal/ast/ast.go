// Package ast defines the abstract syntax tree of HON programs.
package ast

import "fmt"

type NodeKind int

const (
	STMT_START NodeKind = iota // statement node start delimiter
	KIND_PASS_STMT
	KIND_BREAK_STMT
	KIND_CONTINUE_STMT
	KIND_IF_STMT
	KIND_WHILE_STMT
	KIND_ASSIGN_STMT
	KIND_BLOCK_STMT
	KIND_FUNCTION_DEF
	KIND_RETURN_STMT

	EXPR_START // expression node start delimiter

	KIND_CALL_EXPR        // expression and statement
	KIND_METHOD_CALL_EXPR // expression and statement

	STMT_END // statement node end delimiter
	KIND_OPERATOR_EXPR
	KIND_VARIABLE_REF
	KIND_LITERAL_EXPR
	KIND_LIST_EXPR
	EXPR_END // expression node end delimiter

	KIND_VARIABLE_TARGET
)

func (k NodeKind) IsStmt() bool {
	return k > STMT_START && k < STMT_END && k != EXPR_START
}

func (k NodeKind) IsExpr() bool {
	return k > EXPR_START && k < EXPR_END && k != STMT_END
}

func (k NodeKind) String() string {
	switch k {
	case KIND_PASS_STMT:
		return "pass"
	case KIND_BREAK_STMT:
		return "break"
	case KIND_CONTINUE_STMT:
		return "continue"
	case KIND_IF_STMT:
		return "if"
	case KIND_WHILE_STMT:
		return "while"
	case KIND_ASSIGN_STMT:
		return "assign"
	case KIND_BLOCK_STMT:
		return "block"
	case KIND_FUNCTION_DEF:
		return "def"
	case KIND_RETURN_STMT:
		return "return"
	case KIND_CALL_EXPR:
		return "call"
	case KIND_METHOD_CALL_EXPR:
		return "method_call"
	case KIND_OPERATOR_EXPR:
		return "operator"
	case KIND_VARIABLE_REF:
		return "variable"
	case KIND_LITERAL_EXPR:
		return "literal"
	case KIND_LIST_EXPR:
		return "list"
	case KIND_VARIABLE_TARGET:
		return "target"
	default:
		return fmt.Sprintf("Unknown Node Kind: %d", int(k))
	}
}

// Node is implemented only by the types of this package.
type Node interface {
	Kind() NodeKind
	Accept(v Visitor) error
	astNode()
}

type Stmt interface {
	Node
	stmtNode()
}

type Expr interface {
	Node
	exprNode()
}

// Visitor has one method per node type. Adding a node type adds a method
// here, so every traversal has to handle it before it compiles again.
type Visitor interface {
	VisitPass(*PassStmt) error
	VisitBreak(*BreakStmt) error
	VisitContinue(*ContinueStmt) error
	VisitIf(*IfStmt) error
	VisitWhile(*WhileStmt) error
	VisitAssign(*AssignStmt) error
	VisitBlock(*BlockStmt) error
	VisitFunctionDef(*FunctionDef) error
	VisitReturn(*ReturnStmt) error

	VisitOperator(*OperatorExpr) error
	VisitVariableRef(*VariableRef) error
	VisitLiteral(*Literal) error
	VisitList(*ListExpr) error
	VisitCall(*CallExpr) error
	VisitMethodCall(*MethodCallExpr) error

	VisitVariableTarget(*VariableTarget) error
}

// Walk visits node when it is not nil. Optional children (an else-less if
// branch block, a bare return value, the right operand of a unary
// operator) are nil interfaces or nil pointers.
func Walk(v Visitor, node Node) error {
	if isNil(node) {
		return nil
	}
	return node.Accept(v)
}

func isNil(node Node) bool {
	switch n := node.(type) {
	case nil:
		return true
	case *BlockStmt:
		return n == nil
	case *VariableTarget:
		return n == nil
	}
	return false
}
