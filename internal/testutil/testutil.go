package testutil

import (
	"strings"
	"testing"

	"github.com/hon-lang/hon/internal/ast"
	"github.com/hon-lang/hon/internal/lexer"
	"github.com/hon-lang/hon/internal/lexer/token"
	"github.com/hon-lang/hon/internal/parser"
	"github.com/hon-lang/hon/internal/sema"
	"github.com/hon-lang/hon/internal/symtab"
)

const DefaultFilename = "test.hon"

func FakeLoc(filename string) *ast.Loc {
	if filename == "" {
		filename = DefaultFilename
	}
	return &ast.Loc{Name: filename, Path: filename}
}

func MustTokenize(t testing.TB, src string) []*token.Token {
	t.Helper()
	tokens, err := lexer.NewFromString(src).Tokenize()
	if err != nil {
		t.Fatalf("tokenize %q: %v", src, err)
	}
	return tokens
}

func Kinds(tokens []*token.Token) []token.Kind {
	kinds := make([]token.Kind, 0, len(tokens))
	for _, tok := range tokens {
		kinds = append(kinds, tok.Kind)
	}
	return kinds
}

func MustParse(t testing.TB, src string) *ast.BlockStmt {
	t.Helper()
	program, err := parser.ParseFrom(src)
	if err != nil {
		t.Fatalf("parse %q: %v", src, err)
	}
	return program
}

func MustBuildScopes(t testing.TB, src string) *symtab.Scope {
	t.Helper()
	top, err := sema.New().CreateSymtable(MustParse(t, src))
	if err != nil {
		t.Fatalf("build scopes for %q: %v", src, err)
	}
	return top
}

// FindScope follows a dotted path of function names below top, e.g.
// "outer.inner". The empty path is top itself.
func FindScope(t testing.TB, top *symtab.Scope, path string) *symtab.Scope {
	t.Helper()
	scope := top
	if path == "" {
		return scope
	}
next:
	for _, name := range strings.Split(path, ".") {
		for _, child := range scope.Children() {
			if child.Name == name {
				scope = child
				continue next
			}
		}
		t.Fatalf("no scope %q below %q", name, scope.Name)
	}
	return scope
}

// Flags returns the flags of name in scope, failing the test when the name
// is not recorded there.
func Flags(t testing.TB, scope *symtab.Scope, name string) symtab.Flag {
	t.Helper()
	sym, err := scope.Lookup(name)
	if err != nil {
		t.Fatal(err)
	}
	return sym.Flags
}
