package ast

type PassStmt struct{}

func (s *PassStmt) Kind() NodeKind         { return KIND_PASS_STMT }
func (s *PassStmt) Accept(v Visitor) error { return v.VisitPass(s) }
func (s *PassStmt) astNode()               {}
func (s *PassStmt) stmtNode()              {}

type BreakStmt struct{}

func (s *BreakStmt) Kind() NodeKind         { return KIND_BREAK_STMT }
func (s *BreakStmt) Accept(v Visitor) error { return v.VisitBreak(s) }
func (s *BreakStmt) astNode()               {}
func (s *BreakStmt) stmtNode()              {}

type ContinueStmt struct{}

func (s *ContinueStmt) Kind() NodeKind         { return KIND_CONTINUE_STMT }
func (s *ContinueStmt) Accept(v Visitor) error { return v.VisitContinue(s) }
func (s *ContinueStmt) astNode()               {}
func (s *ContinueStmt) stmtNode()              {}

// IfBranch is one arm of an if/elif/else chain. A nil Block is a branch
// that does nothing.
type IfBranch struct {
	Cond  Expr
	Block *BlockStmt
}

// IfStmt keeps its arms in source order. The last arm always has a
// literal condition: True with the else block, or False with a nil block
// when the chain has no else.
type IfStmt struct {
	Branches []*IfBranch
}

func (s *IfStmt) Kind() NodeKind         { return KIND_IF_STMT }
func (s *IfStmt) Accept(v Visitor) error { return v.VisitIf(s) }
func (s *IfStmt) astNode()               {}
func (s *IfStmt) stmtNode()              {}

// HasElse reports whether the chain ends with an else arm.
func (s *IfStmt) HasElse() bool {
	if len(s.Branches) == 0 {
		return false
	}
	return s.Branches[len(s.Branches)-1].Block != nil &&
		IsBoolLiteral(s.Branches[len(s.Branches)-1].Cond, true)
}

type WhileStmt struct {
	Cond  Expr
	Block *BlockStmt
}

func (s *WhileStmt) Kind() NodeKind         { return KIND_WHILE_STMT }
func (s *WhileStmt) Accept(v Visitor) error { return v.VisitWhile(s) }
func (s *WhileStmt) astNode()               {}
func (s *WhileStmt) stmtNode()              {}

type AssignStmt struct {
	Target *VariableTarget
	Value  Expr
}

func (s *AssignStmt) Kind() NodeKind         { return KIND_ASSIGN_STMT }
func (s *AssignStmt) Accept(v Visitor) error { return v.VisitAssign(s) }
func (s *AssignStmt) astNode()               {}
func (s *AssignStmt) stmtNode()              {}

type BlockStmt struct {
	Stmts []Stmt
}

func (s *BlockStmt) Kind() NodeKind         { return KIND_BLOCK_STMT }
func (s *BlockStmt) Accept(v Visitor) error { return v.VisitBlock(s) }
func (s *BlockStmt) astNode()               {}
func (s *BlockStmt) stmtNode()              {}

type FunctionDef struct {
	Name   string
	Params []string
	Block  *BlockStmt
}

func (s *FunctionDef) Kind() NodeKind         { return KIND_FUNCTION_DEF }
func (s *FunctionDef) Accept(v Visitor) error { return v.VisitFunctionDef(s) }
func (s *FunctionDef) astNode()               {}
func (s *FunctionDef) stmtNode()              {}

// ReturnStmt.Value is nil for a bare return.
type ReturnStmt struct {
	Value Expr
}

func (s *ReturnStmt) Kind() NodeKind         { return KIND_RETURN_STMT }
func (s *ReturnStmt) Accept(v Visitor) error { return v.VisitReturn(s) }
func (s *ReturnStmt) astNode()               {}
func (s *ReturnStmt) stmtNode()              {}
