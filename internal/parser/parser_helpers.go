package parser

import (
	"io"

	"github.com/hon-lang/hon/internal/ast"
	"github.com/hon-lang/hon/internal/lexer"
	"github.com/hon-lang/hon/internal/lexer/token"
)

func ParseFrom(src string, opts ...Option) (*ast.BlockStmt, error) {
	return New(lexer.NewFromString(src), opts...).Parse()
}

// ParseFile parses everything readable from r into a File located at loc.
func ParseFile(loc *ast.Loc, r io.Reader, opts ...Option) (*ast.File, error) {
	body, err := New(lexer.New(r), opts...).Parse()
	if err != nil {
		return nil, err
	}
	return &ast.File{Loc: loc, Body: body}, nil
}

// ParseExprFrom parses src as a single expression. Only a newline may
// follow it.
func ParseExprFrom(src string, opts ...Option) (ast.Expr, error) {
	p := New(lexer.NewFromString(src), opts...)
	if err := p.advance(); err != nil {
		return nil, err
	}
	expr, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if p.tok.Kind == token.NEWLINE {
		if err := p.advance(); err != nil {
			return nil, err
		}
	}
	if _, err := p.expect(token.EOI); err != nil {
		return nil, err
	}
	return expr, nil
}
