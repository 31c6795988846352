// Package dump renders tokens, syntax trees and scopes for humans and tools.
package dump

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/hon-lang/hon/internal/ast"
)

const INDENT = "   "

// Printer writes one line per node, children indented below their parent.
type Printer struct {
	w      io.Writer
	indent int
	err    error
}

var _ ast.Visitor = (*Printer)(nil)

func NewPrinter(w io.Writer) *Printer {
	return &Printer{w: w}
}

func AST(w io.Writer, node ast.Node) error {
	p := NewPrinter(w)
	if err := ast.Walk(p, node); err != nil {
		return err
	}
	return p.err
}

func (p *Printer) println(format string, args ...any) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(p.w, "%s%s\n", strings.Repeat(INDENT, p.indent), fmt.Sprintf(format, args...))
}

// nested visits nodes one level deeper than the current line.
func (p *Printer) nested(nodes ...ast.Node) error {
	p.indent++
	defer func() { p.indent-- }()
	for _, node := range nodes {
		if err := ast.Walk(p, node); err != nil {
			return err
		}
	}
	return nil
}

func exprNodes(exprs []ast.Expr) []ast.Node {
	nodes := make([]ast.Node, 0, len(exprs))
	for _, expr := range exprs {
		nodes = append(nodes, expr)
	}
	return nodes
}

func (p *Printer) VisitPass(*ast.PassStmt) error {
	p.println("(pass)")
	return nil
}

func (p *Printer) VisitBreak(*ast.BreakStmt) error {
	p.println("(break)")
	return nil
}

func (p *Printer) VisitContinue(*ast.ContinueStmt) error {
	p.println("(continue)")
	return nil
}

func (p *Printer) VisitIf(stmt *ast.IfStmt) error {
	p.println("(if)")
	var nodes []ast.Node
	for _, branch := range stmt.Branches {
		nodes = append(nodes, branch.Cond, branch.Block)
	}
	return p.nested(nodes...)
}

func (p *Printer) VisitWhile(stmt *ast.WhileStmt) error {
	p.println("(while)")
	return p.nested(stmt.Cond, stmt.Block)
}

func (p *Printer) VisitAssign(stmt *ast.AssignStmt) error {
	p.println("=")
	return p.nested(stmt.Target, stmt.Value)
}

func (p *Printer) VisitBlock(block *ast.BlockStmt) error {
	p.println("(block)")
	nodes := make([]ast.Node, 0, len(block.Stmts))
	for _, stmt := range block.Stmts {
		nodes = append(nodes, stmt)
	}
	return p.nested(nodes...)
}

func (p *Printer) VisitFunctionDef(fn *ast.FunctionDef) error {
	p.println("def %s(%s):", fn.Name, strings.Join(fn.Params, ", "))
	return p.nested(fn.Block)
}

func (p *Printer) VisitReturn(stmt *ast.ReturnStmt) error {
	p.println("return")
	return p.nested(stmt.Value)
}

func (p *Printer) VisitOperator(expr *ast.OperatorExpr) error {
	p.println("op = %s", expr.Op)
	if expr.IsUnary() {
		return p.nested(expr.Left)
	}
	return p.nested(expr.Left, expr.Right)
}

func (p *Printer) VisitVariableRef(ref *ast.VariableRef) error {
	p.println("(variable %s)", ref.Name)
	return p.nested(exprNodes(ref.Indices)...)
}

func (p *Printer) VisitLiteral(lit *ast.Literal) error {
	p.println("(%s %s)", LiteralText(lit), lit.LitKind)
	return nil
}

func (p *Printer) VisitList(list *ast.ListExpr) error {
	p.println("[")
	if err := p.nested(exprNodes(list.Elems)...); err != nil {
		return err
	}
	p.println("]")
	return nil
}

func (p *Printer) VisitCall(call *ast.CallExpr) error {
	p.println("%s(", call.Name)
	if err := p.nested(exprNodes(call.Args)...); err != nil {
		return err
	}
	p.println(")")
	return nil
}

func (p *Printer) VisitMethodCall(call *ast.MethodCallExpr) error {
	p.println("%s.%s(", call.Receiver, call.Method)
	if err := p.nested(exprNodes(call.Args)...); err != nil {
		return err
	}
	p.println(")")
	return nil
}

func (p *Printer) VisitVariableTarget(target *ast.VariableTarget) error {
	p.println("(variable %s)", target.Name)
	return p.nested(exprNodes(target.Indices)...)
}

// LiteralText renders a literal the way it would be spelled in source,
// strings unquoted.
func LiteralText(lit *ast.Literal) string {
	switch lit.LitKind {
	case ast.LITERAL_INT:
		return strconv.FormatInt(lit.Int, 10)
	case ast.LITERAL_FLOAT:
		return strconv.FormatFloat(lit.Float, 'g', -1, 64)
	case ast.LITERAL_STRING:
		return lit.Str
	case ast.LITERAL_BOOL:
		if lit.Bool {
			return "True"
		}
		return "False"
	}
	return "None"
}
