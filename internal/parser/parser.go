package parser

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/hon-lang/hon/internal/ast"
	"github.com/hon-lang/hon/internal/diagnostics"
	"github.com/hon-lang/hon/internal/lexer"
	"github.com/hon-lang/hon/internal/lexer/token"
)

const DEFAULT_MAX_DEPTH = 200

type Parser struct {
	lex *lexer.Lexer

	tok    *token.Token // current token, nil until the first call to advance
	peeked *token.Token // one-token pushback buffer

	depth    int
	maxDepth int
}

type Option func(*Parser)

// WithMaxDepth bounds the nesting of expressions, prefix operators,
// brackets and blocks. Values below 1 select DEFAULT_MAX_DEPTH.
func WithMaxDepth(n int) Option {
	return func(p *Parser) {
		if n < 1 {
			n = DEFAULT_MAX_DEPTH
		}
		p.maxDepth = n
	}
}

func New(lex *lexer.Lexer, opts ...Option) *Parser {
	parser := new(Parser)
	parser.lex = lex
	parser.maxDepth = DEFAULT_MAX_DEPTH
	for _, opt := range opts {
		opt(parser)
	}
	return parser
}

// Parse consumes the whole token stream and returns the program as a single
// block. The first lexical or syntax error aborts the parse.
func (p *Parser) Parse() (*ast.BlockStmt, error) {
	if err := p.advance(); err != nil {
		return nil, err
	}

	var statements []ast.Stmt
	for p.tok.Kind != token.EOI {
		if p.tok.Kind == token.NEWLINE {
			if err := p.advance(); err != nil {
				return nil, err
			}
			continue
		}
		stmts, err := p.parseStmt()
		if err != nil {
			return nil, err
		}
		statements = append(statements, stmts...)
	}

	return &ast.BlockStmt{Stmts: statements}, nil
}

func (p *Parser) advance() error {
	if p.peeked != nil {
		p.tok = p.peeked
		p.peeked = nil
		return nil
	}
	if p.tok != nil && p.tok.Kind == token.EOI {
		return nil
	}
	tok, err := p.lex.Next()
	if err != nil {
		return err
	}
	p.tok = tok
	return nil
}

func (p *Parser) peek() (*token.Token, error) {
	if p.peeked != nil {
		return p.peeked, nil
	}
	if p.tok.Kind == token.EOI {
		p.peeked = p.tok
		return p.peeked, nil
	}
	tok, err := p.lex.Next()
	if err != nil {
		return nil, err
	}
	p.peeked = tok
	return tok, nil
}

func (p *Parser) expect(expectedKind token.Kind) (*token.Token, error) {
	tok := p.tok
	if tok.Kind != expectedKind {
		return nil, diagnostics.NewSyntaxError(
			tok.Loc,
			"expected %s, got %s",
			describeKind(expectedKind),
			describe(tok),
		)
	}
	if err := p.advance(); err != nil {
		return nil, err
	}
	return tok, nil
}

func (p *Parser) unexpected(what string) error {
	return diagnostics.NewSyntaxError(p.tok.Loc, "expected %s, got %s", what, describe(p.tok))
}

func (p *Parser) enter() error {
	p.depth++
	if p.depth > p.maxDepth {
		return diagnostics.NewSyntaxError(p.tok.Loc, "maximum nesting depth of %d exceeded", p.maxDepth)
	}
	return nil
}

func (p *Parser) leave() { p.depth-- }

func (p *Parser) parseStmt() ([]ast.Stmt, error) {
	var stmt ast.Stmt
	var err error

	switch p.tok.Kind {
	case token.IF:
		stmt, err = p.parseIfStmt()
	case token.WHILE:
		stmt, err = p.parseWhileStmt()
	case token.DEF:
		stmt, err = p.parseFunctionDef()
	default:
		return p.parseSimpleStmt()
	}

	if err != nil {
		return nil, err
	}
	return []ast.Stmt{stmt}, nil
}

// parseSimpleStmt parses one line of ';'-separated statements, including
// the terminating newline.
func (p *Parser) parseSimpleStmt() ([]ast.Stmt, error) {
	stmt, err := p.parseSmallStmt()
	if err != nil {
		return nil, err
	}
	stmts := []ast.Stmt{stmt}

	for p.tok.Kind == token.SEMICOLON {
		if err := p.advance(); err != nil {
			return nil, err
		}
		if p.tok.Kind == token.NEWLINE || p.tok.Kind == token.EOI {
			break
		}
		stmt, err := p.parseSmallStmt()
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, stmt)
	}

	if _, err := p.expect(token.NEWLINE); err != nil {
		return nil, err
	}
	return stmts, nil
}

func (p *Parser) parseSmallStmt() (ast.Stmt, error) {
	switch p.tok.Kind {
	case token.PASS:
		return &ast.PassStmt{}, p.advance()
	case token.BREAK:
		return &ast.BreakStmt{}, p.advance()
	case token.CONTINUE:
		return &ast.ContinueStmt{}, p.advance()
	case token.RETURN:
		return p.parseReturnStmt()
	case token.IDENTIFIER:
		return p.parseIdStmt()
	default:
		return nil, p.unexpected("statement")
	}
}

// parseIdStmt tells a call, a method call and an assignment apart by the
// token that follows the leading identifier.
func (p *Parser) parseIdStmt() (ast.Stmt, error) {
	next, err := p.peek()
	if err != nil {
		return nil, err
	}
	switch next.Kind {
	case token.PAREN_L:
		return p.parseCall()
	case token.PERIOD:
		return p.parseMethodCall()
	default:
		return p.parseAssignStmt()
	}
}

func (p *Parser) parseReturnStmt() (*ast.ReturnStmt, error) {
	if _, err := p.expect(token.RETURN); err != nil {
		return nil, err
	}

	returnStmt := new(ast.ReturnStmt)
	switch p.tok.Kind {
	case token.NEWLINE, token.SEMICOLON, token.EOI:
		return returnStmt, nil
	}

	value, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	returnStmt.Value = value
	return returnStmt, nil
}

func (p *Parser) parseAssignStmt() (*ast.AssignStmt, error) {
	name, err := p.expect(token.IDENTIFIER)
	if err != nil {
		return nil, err
	}
	indices, err := p.parseIndices()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.ASSIGN); err != nil {
		return nil, err
	}
	value, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	return &ast.AssignStmt{
		Target: &ast.VariableTarget{Name: name.Lexeme, Indices: indices},
		Value:  value,
	}, nil
}

func (p *Parser) parseIfStmt() (*ast.IfStmt, error) {
	var branches []*ast.IfBranch

	if _, err := p.expect(token.IF); err != nil {
		return nil, err
	}
	branch, err := p.parseCondBlock()
	if err != nil {
		return nil, err
	}
	branches = append(branches, branch)

	for p.tok.Kind == token.ELIF {
		if err := p.advance(); err != nil {
			return nil, err
		}
		branch, err := p.parseCondBlock()
		if err != nil {
			return nil, err
		}
		branches = append(branches, branch)
	}

	if p.tok.Kind == token.ELSE {
		if err := p.advance(); err != nil {
			return nil, err
		}
		if _, err := p.expect(token.COLON); err != nil {
			return nil, err
		}
		block, err := p.parseBlock()
		if err != nil {
			return nil, err
		}
		branches = append(branches, &ast.IfBranch{Cond: ast.True(), Block: block})
	} else {
		branches = append(branches, &ast.IfBranch{Cond: ast.False(), Block: nil})
	}

	return &ast.IfStmt{Branches: branches}, nil
}

func (p *Parser) parseCondBlock() (*ast.IfBranch, error) {
	cond, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.COLON); err != nil {
		return nil, err
	}
	block, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	return &ast.IfBranch{Cond: cond, Block: block}, nil
}

func (p *Parser) parseWhileStmt() (*ast.WhileStmt, error) {
	if _, err := p.expect(token.WHILE); err != nil {
		return nil, err
	}
	branch, err := p.parseCondBlock()
	if err != nil {
		return nil, err
	}
	return &ast.WhileStmt{Cond: branch.Cond, Block: branch.Block}, nil
}

func (p *Parser) parseFunctionDef() (*ast.FunctionDef, error) {
	if _, err := p.expect(token.DEF); err != nil {
		return nil, err
	}
	name, err := p.expect(token.IDENTIFIER)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.PAREN_L); err != nil {
		return nil, err
	}
	params, err := p.parseParams()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.PAREN_R); err != nil {
		return nil, err
	}
	if _, err := p.expect(token.COLON); err != nil {
		return nil, err
	}
	block, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	return &ast.FunctionDef{Name: name.Lexeme, Params: params, Block: block}, nil
}

func (p *Parser) parseParams() ([]string, error) {
	var params []string
	if p.tok.Kind == token.PAREN_R {
		return params, nil
	}
	for {
		param, err := p.expect(token.IDENTIFIER)
		if err != nil {
			return nil, err
		}
		params = append(params, param.Lexeme)
		if p.tok.Kind != token.COMMA {
			return params, nil
		}
		if err := p.advance(); err != nil {
			return nil, err
		}
	}
}

// parseBlock parses the body after a ':'. It is either an indented suite
// or the rest of the current line.
func (p *Parser) parseBlock() (*ast.BlockStmt, error) {
	if err := p.enter(); err != nil {
		return nil, err
	}
	defer p.leave()

	if p.tok.Kind != token.NEWLINE {
		stmts, err := p.parseSimpleStmt()
		if err != nil {
			return nil, err
		}
		return &ast.BlockStmt{Stmts: stmts}, nil
	}

	if err := p.advance(); err != nil {
		return nil, err
	}
	if _, err := p.expect(token.INDENT); err != nil {
		return nil, err
	}

	var statements []ast.Stmt
	for p.tok.Kind != token.DEDENT {
		stmts, err := p.parseStmt()
		if err != nil {
			return nil, err
		}
		statements = append(statements, stmts...)
	}
	if _, err := p.expect(token.DEDENT); err != nil {
		return nil, err
	}

	return &ast.BlockStmt{Stmts: statements}, nil
}

func (p *Parser) parseExpr() (ast.Expr, error) {
	if err := p.enter(); err != nil {
		return nil, err
	}
	defer p.leave()

	return p.parseOr()
}

func (p *Parser) parseOr() (ast.Expr, error) {
	lhs, err := p.parseAnd()
	if err != nil {
		return nil, err
	}
	for p.tok.Kind == token.OR {
		if err := p.advance(); err != nil {
			return nil, err
		}
		rhs, err := p.parseAnd()
		if err != nil {
			return nil, err
		}
		lhs = &ast.OperatorExpr{Op: token.OR, Left: lhs, Right: rhs}
	}
	return lhs, nil
}

func (p *Parser) parseAnd() (ast.Expr, error) {
	lhs, err := p.parseNot()
	if err != nil {
		return nil, err
	}
	for p.tok.Kind == token.AND {
		if err := p.advance(); err != nil {
			return nil, err
		}
		rhs, err := p.parseNot()
		if err != nil {
			return nil, err
		}
		lhs = &ast.OperatorExpr{Op: token.AND, Left: lhs, Right: rhs}
	}
	return lhs, nil
}

func (p *Parser) parseNot() (ast.Expr, error) {
	if p.tok.Kind != token.NOT {
		return p.parseComparison()
	}

	if err := p.enter(); err != nil {
		return nil, err
	}
	defer p.leave()

	if err := p.advance(); err != nil {
		return nil, err
	}
	operand, err := p.parseNot()
	if err != nil {
		return nil, err
	}
	return &ast.OperatorExpr{Op: token.NOT, Left: operand}, nil
}

// parseComparison accepts at most one comparison operator. A second one is
// left for the caller, which then fails on it.
func (p *Parser) parseComparison() (ast.Expr, error) {
	lhs, err := p.parseAdditive()
	if err != nil {
		return nil, err
	}
	if !ast.COMPARISON[p.tok.Kind] {
		return lhs, nil
	}

	op := p.tok.Kind
	if err := p.advance(); err != nil {
		return nil, err
	}
	rhs, err := p.parseAdditive()
	if err != nil {
		return nil, err
	}
	return &ast.OperatorExpr{Op: op, Left: lhs, Right: rhs}, nil
}

func (p *Parser) parseAdditive() (ast.Expr, error) {
	lhs, err := p.parseMultiplicative()
	if err != nil {
		return nil, err
	}
	for ast.ADDITIVE[p.tok.Kind] {
		op := p.tok.Kind
		if err := p.advance(); err != nil {
			return nil, err
		}
		rhs, err := p.parseMultiplicative()
		if err != nil {
			return nil, err
		}
		lhs = &ast.OperatorExpr{Op: op, Left: lhs, Right: rhs}
	}
	return lhs, nil
}

func (p *Parser) parseMultiplicative() (ast.Expr, error) {
	lhs, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	for ast.MULTIPLICATIVE[p.tok.Kind] {
		op := p.tok.Kind
		if err := p.advance(); err != nil {
			return nil, err
		}
		rhs, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		lhs = &ast.OperatorExpr{Op: op, Left: lhs, Right: rhs}
	}
	return lhs, nil
}

func (p *Parser) parseUnary() (ast.Expr, error) {
	if !ast.UNARY[p.tok.Kind] {
		return p.parsePower()
	}

	if err := p.enter(); err != nil {
		return nil, err
	}
	defer p.leave()

	op := p.tok.Kind
	if err := p.advance(); err != nil {
		return nil, err
	}
	operand, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	return &ast.OperatorExpr{Op: op, Left: operand}, nil
}

// parsePower binds tighter than the prefix operators on its left and
// parses its exponent at unary level, so -x**2 is -(x**2) and x**-1 is
// accepted. Chained powers associate to the right.
func (p *Parser) parsePower() (ast.Expr, error) {
	base, err := p.parseAtom()
	if err != nil {
		return nil, err
	}
	if p.tok.Kind != token.POWER {
		return base, nil
	}
	// the exponent is right-recursive
	if err := p.enter(); err != nil {
		return nil, err
	}
	defer p.leave()

	if err := p.advance(); err != nil {
		return nil, err
	}
	exponent, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	return &ast.OperatorExpr{Op: token.POWER, Left: base, Right: exponent}, nil
}

func (p *Parser) parseAtom() (ast.Expr, error) {
	tok := p.tok
	switch tok.Kind {
	case token.PAREN_L:
		if err := p.advance(); err != nil {
			return nil, err
		}
		expr, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(token.PAREN_R); err != nil {
			return nil, err
		}
		return expr, nil
	case token.BRACKET_L:
		if err := p.advance(); err != nil {
			return nil, err
		}
		elems, err := p.parseExprList(token.BRACKET_R)
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(token.BRACKET_R); err != nil {
			return nil, err
		}
		return &ast.ListExpr{Elems: elems}, nil
	case token.TRUE:
		return ast.True(), p.advance()
	case token.FALSE:
		return ast.False(), p.advance()
	case token.NONE:
		return ast.None(), p.advance()
	case token.INTEGER_LITERAL:
		n, err := strconv.ParseInt(tok.Lexeme, 10, 64)
		if err != nil {
			return nil, diagnostics.NewSyntaxError(tok.Loc, "integer literal %s out of range", tok.Lexeme)
		}
		return ast.Int(n), p.advance()
	case token.FLOAT_LITERAL:
		f, err := strconv.ParseFloat(tok.Lexeme, 64)
		if err != nil && !errors.Is(err, strconv.ErrRange) {
			return nil, diagnostics.NewSyntaxError(tok.Loc, "invalid float literal %s", tok.Lexeme)
		}
		return ast.Float(f), p.advance()
	case token.STRING_LITERAL:
		return ast.String(tok.Lexeme), p.advance()
	case token.IDENTIFIER:
		next, err := p.peek()
		if err != nil {
			return nil, err
		}
		switch next.Kind {
		case token.PAREN_L:
			return p.parseCall()
		case token.PERIOD:
			return p.parseMethodCall()
		default:
			return p.parseVariableRef()
		}
	default:
		return nil, p.unexpected("expression")
	}
}

func (p *Parser) parseVariableRef() (*ast.VariableRef, error) {
	name, err := p.expect(token.IDENTIFIER)
	if err != nil {
		return nil, err
	}
	indices, err := p.parseIndices()
	if err != nil {
		return nil, err
	}
	return &ast.VariableRef{Name: name.Lexeme, Indices: indices}, nil
}

func (p *Parser) parseIndices() ([]ast.Expr, error) {
	var indices []ast.Expr
	for p.tok.Kind == token.BRACKET_L {
		if err := p.advance(); err != nil {
			return nil, err
		}
		index, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(token.BRACKET_R); err != nil {
			return nil, err
		}
		indices = append(indices, index)
	}
	return indices, nil
}

func (p *Parser) parseCall() (*ast.CallExpr, error) {
	name, err := p.expect(token.IDENTIFIER)
	if err != nil {
		return nil, err
	}
	args, err := p.parseArgs()
	if err != nil {
		return nil, err
	}
	return &ast.CallExpr{Name: name.Lexeme, Args: args}, nil
}

func (p *Parser) parseMethodCall() (*ast.MethodCallExpr, error) {
	receiver, err := p.expect(token.IDENTIFIER)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.PERIOD); err != nil {
		return nil, err
	}
	method, err := p.expect(token.IDENTIFIER)
	if err != nil {
		return nil, err
	}
	args, err := p.parseArgs()
	if err != nil {
		return nil, err
	}
	return &ast.MethodCallExpr{Receiver: receiver.Lexeme, Method: method.Lexeme, Args: args}, nil
}

func (p *Parser) parseArgs() ([]ast.Expr, error) {
	if _, err := p.expect(token.PAREN_L); err != nil {
		return nil, err
	}
	args, err := p.parseExprList(token.PAREN_R)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.PAREN_R); err != nil {
		return nil, err
	}
	return args, nil
}

// parseExprList parses comma-separated expressions up to, but not
// including, end. The list may be empty.
func (p *Parser) parseExprList(end token.Kind) ([]ast.Expr, error) {
	var exprs []ast.Expr
	if p.tok.Kind == end {
		return exprs, nil
	}
	for {
		expr, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		exprs = append(exprs, expr)
		if p.tok.Kind != token.COMMA {
			return exprs, nil
		}
		if err := p.advance(); err != nil {
			return nil, err
		}
	}
}

func describeKind(kind token.Kind) string {
	if kind.IsKeyword() || kind.IsOperator() || (kind >= token.SEMICOLON && kind <= token.COLON) {
		return fmt.Sprintf("'%s'", kind)
	}
	return kind.String()
}

func describe(tok *token.Token) string {
	switch tok.Kind {
	case token.IDENTIFIER, token.INTEGER_LITERAL, token.FLOAT_LITERAL, token.STRING_LITERAL, token.UNKNOWN:
		return fmt.Sprintf("%s %q", tok.Kind, tok.Lexeme)
	}
	return describeKind(tok.Kind)
}
