package sema

import (
	"github.com/hon-lang/hon/internal/ast"
	"github.com/hon-lang/hon/internal/symtab"
)

// Sema builds the scope tree of a program in one pass over the AST.
type Sema struct {
	top     *symtab.Scope
	current *symtab.Scope
}

var _ ast.Visitor = (*Sema)(nil)

func New() *Sema {
	return new(Sema)
}

// CreateSymtable returns the module scope of program. Every function body
// becomes a child of the scope it is written in.
func (s *Sema) CreateSymtable(program *ast.BlockStmt) (*symtab.Scope, error) {
	s.top = symtab.NewModule()
	s.current = s.top

	if err := ast.Walk(s, program); err != nil {
		return nil, err
	}
	return s.top, nil
}

// bind records a binding occurrence of name in the current scope.
func (s *Sema) bind(name string) {
	if s.current.Kind == symtab.SCOPE_MODULE {
		s.current.Add(name, symtab.FLAG_GLOBAL)
	} else {
		s.current.Add(name, symtab.FLAG_LOCAL)
	}
}

func (s *Sema) reference(name string) {
	s.current.Add(name, symtab.FLAG_REFERENCED)
}

func (s *Sema) walkExprs(exprs []ast.Expr) error {
	for _, expr := range exprs {
		if err := ast.Walk(s, expr); err != nil {
			return err
		}
	}
	return nil
}

func (s *Sema) VisitPass(*ast.PassStmt) error         { return nil }
func (s *Sema) VisitBreak(*ast.BreakStmt) error       { return nil }
func (s *Sema) VisitContinue(*ast.ContinueStmt) error { return nil }
func (s *Sema) VisitLiteral(*ast.Literal) error       { return nil }

func (s *Sema) VisitIf(stmt *ast.IfStmt) error {
	for _, branch := range stmt.Branches {
		if err := ast.Walk(s, branch.Cond); err != nil {
			return err
		}
		if err := ast.Walk(s, branch.Block); err != nil {
			return err
		}
	}
	return nil
}

func (s *Sema) VisitWhile(stmt *ast.WhileStmt) error {
	if err := ast.Walk(s, stmt.Cond); err != nil {
		return err
	}
	return ast.Walk(s, stmt.Block)
}

func (s *Sema) VisitAssign(stmt *ast.AssignStmt) error {
	if err := ast.Walk(s, stmt.Target); err != nil {
		return err
	}
	return ast.Walk(s, stmt.Value)
}

func (s *Sema) VisitBlock(block *ast.BlockStmt) error {
	for _, stmt := range block.Stmts {
		if err := ast.Walk(s, stmt); err != nil {
			return err
		}
	}
	return nil
}

func (s *Sema) VisitFunctionDef(fn *ast.FunctionDef) error {
	s.bind(fn.Name)

	enclosing := s.current
	scope := symtab.NewFunction(fn.Name, enclosing)
	for _, param := range fn.Params {
		scope.AddParameter(param)
	}

	s.current = scope
	err := ast.Walk(s, fn.Block)
	s.current = enclosing
	if err != nil {
		return err
	}

	enclosing.AddChild(scope)
	return nil
}

func (s *Sema) VisitReturn(stmt *ast.ReturnStmt) error {
	return ast.Walk(s, stmt.Value)
}

func (s *Sema) VisitOperator(expr *ast.OperatorExpr) error {
	if err := ast.Walk(s, expr.Left); err != nil {
		return err
	}
	return ast.Walk(s, expr.Right)
}

func (s *Sema) VisitVariableRef(ref *ast.VariableRef) error {
	s.reference(ref.Name)
	return s.walkExprs(ref.Indices)
}

func (s *Sema) VisitList(list *ast.ListExpr) error {
	return s.walkExprs(list.Elems)
}

func (s *Sema) VisitCall(call *ast.CallExpr) error {
	s.reference(call.Name)
	return s.walkExprs(call.Args)
}

func (s *Sema) VisitMethodCall(call *ast.MethodCallExpr) error {
	s.reference(call.Receiver)
	return s.walkExprs(call.Args)
}

func (s *Sema) VisitVariableTarget(target *ast.VariableTarget) error {
	s.bind(target.Name)
	return s.walkExprs(target.Indices)
}
