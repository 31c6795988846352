package frontend

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/hon-lang/hon/internal/ast"
	"github.com/hon-lang/hon/internal/diagnostics"
	"github.com/hon-lang/hon/internal/lexer/token"
	"github.com/hon-lang/hon/internal/logs"
	"github.com/hon-lang/hon/internal/symtab"
	"github.com/hon-lang/hon/internal/testutil"
)

func runFile(t *testing.T, path string, opts Options) (*Result, error) {
	t.Helper()
	loc, err := ast.LocFromPath(path)
	if err != nil {
		t.Fatal(err)
	}
	return RunFile(context.Background(), loc, opts)
}

func TestRunPrime(t *testing.T) {
	result, err := runFile(t, "testdata/prime.hon", Options{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Tokens != nil {
		t.Fatalf("tokens kept without KeepTokens")
	}
	if len(result.File.Body.Stmts) != 4 {
		t.Fatalf("expected 4 top-level statements, got %d", len(result.File.Body.Stmts))
	}

	top := result.Scope
	if got := top.Identifiers(); !reflect.DeepEqual(got, []string{"is_prime", "count", "k", "print"}) {
		t.Errorf("module identifiers: %v", got)
	}
	if flags := testutil.Flags(t, top, "print"); flags != symtab.FLAG_REFERENCED {
		t.Errorf("print: %v", flags)
	}

	isPrime := testutil.FindScope(t, top, "is_prime")
	if got := isPrime.Parameters(); !reflect.DeepEqual(got, []string{"n"}) {
		t.Errorf("parameters: %v", got)
	}
	if got := isPrime.Locals(); !reflect.DeepEqual(got, []string{"n", "i"}) {
		t.Errorf("locals: %v", got)
	}
	if got := isPrime.Frees(); got != nil {
		t.Errorf("frees: %v", got)
	}
}

func TestRunMatrix(t *testing.T) {
	result, err := runFile(t, "testdata/matrix.hon", Options{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	add := testutil.FindScope(t, result.Scope, "add")
	if got := add.Locals(); !reflect.DeepEqual(got, []string{"a", "b", "rows", "result", "r", "row", "c"}) {
		t.Errorf("locals: %v", got)
	}
	if got := add.Frees(); !reflect.DeepEqual(got, []string{"len"}) {
		t.Errorf("frees: %v", got)
	}

	// the bracketed continuation line does not produce an INDENT
	assign, ok := result.File.Body.Stmts[1].(*ast.AssignStmt)
	if !ok {
		t.Fatalf("expected an assignment, got %T", result.File.Body.Stmts[1])
	}
	if list, ok := assign.Value.(*ast.ListExpr); !ok || len(list.Elems) != 2 {
		t.Fatalf("expected a two-row list, got %#v", assign.Value)
	}
}

func TestRunNestedFunctions(t *testing.T) {
	result, err := runFile(t, "testdata/nested/counter.hon", Options{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	step := testutil.FindScope(t, result.Scope, "make_counter.step")
	if got := step.Frees(); !reflect.DeepEqual(got, []string{"start"}) {
		t.Errorf("frees: %v", got)
	}
	if step.Parent.Name != "make_counter" {
		t.Errorf("parent: %s", step.Parent.Name)
	}

	sym, scope, err := step.LookupAcrossScopes("make_counter")
	if err != nil {
		t.Fatal(err)
	}
	if scope != result.Scope || !sym.IsGlobal() {
		t.Errorf("make_counter resolved to %s in %s", sym, scope.Name)
	}
}

func TestRunErrors(t *testing.T) {
	tests := []struct {
		path string
		kind diagnostics.Kind
		loc  token.Location
		msg  string
	}{
		{"testdata/errors/unterminated.hon", diagnostics.KIND_LEXICAL, token.NewLocation(1, 5), "unterminated string"},
		{"testdata/errors/dedent.hon", diagnostics.KIND_LEXICAL, token.NewLocation(3, 5), "dedent does not match any outer indentation level"},
		{"testdata/errors/missing_colon.hon", diagnostics.KIND_SYNTAX, token.NewLocation(1, 8), "expected ':', got newline"},
	}

	for _, test := range tests {
		t.Run(filepath.Base(test.path), func(t *testing.T) {
			result, err := runFile(t, test.path, Options{KeepTokens: true})
			if err == nil {
				t.Fatalf("expected an error, got result %v", result)
			}
			diag := diagnostics.AsDiag(test.path, err)
			if diag.Kind != test.kind || diag.Loc != test.loc || diag.Msg != test.msg {
				t.Fatalf("expected %s %s %q, got %s", test.kind, test.loc, test.msg, diag)
			}
		})
	}
}

func TestRunKeepTokens(t *testing.T) {
	loc := testutil.FakeLoc("")
	result, err := Run(context.Background(), loc, strings.NewReader("x = 1"), Options{KeepTokens: true, SkipScopes: true})
	if err != nil {
		t.Fatal(err)
	}

	expected := []token.Kind{token.IDENTIFIER, token.ASSIGN, token.INTEGER_LITERAL, token.NEWLINE, token.EOI}
	if got := testutil.Kinds(result.Tokens); !reflect.DeepEqual(got, expected) {
		t.Fatalf("expected %v, got %v", expected, got)
	}
	if result.Scope != nil {
		t.Fatalf("scopes built with SkipScopes")
	}
	if result.File.Loc != loc || string(result.Source) != "x = 1" {
		t.Fatalf("unexpected result %+v", result)
	}
}

func TestRunMaxDepth(t *testing.T) {
	src := strings.Repeat("(", 10) + "1" + strings.Repeat(")", 10) + "\n"

	_, err := Run(context.Background(), testutil.FakeLoc(""), strings.NewReader(src), Options{MaxDepth: 5})
	var synErr *diagnostics.SyntaxError
	if !errors.As(err, &synErr) || synErr.Msg != "maximum nesting depth of 5 exceeded" {
		t.Fatalf("expected a depth error, got %v", err)
	}

	if _, err := Run(context.Background(), testutil.FakeLoc(""), strings.NewReader(src), Options{}); err != nil {
		t.Fatalf("default depth rejected %q: %v", src, err)
	}
}

func TestRunCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Run(ctx, testutil.FakeLoc(""), strings.NewReader("x = 1\n"), Options{})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestRunLogsStages(t *testing.T) {
	buf := new(bytes.Buffer)
	logger, _, err := logs.New(logs.Options{Level: slog.LevelDebug, Writer: buf})
	if err != nil {
		t.Fatal(err)
	}

	_, err = Run(context.Background(), testutil.FakeLoc("a.hon"), strings.NewReader("pass\n"), Options{Logger: logger})
	if err != nil {
		t.Fatal(err)
	}

	out := buf.String()
	for _, want := range []string{"file=a.hon", "stage=parse", "stage=scopes", "stage finished", "span="} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %q in log output:\n%s", want, out)
		}
	}
	if strings.Contains(out, "stage=tokenize") {
		t.Errorf("tokenize stage ran without KeepTokens")
	}
}

func TestInputs(t *testing.T) {
	locs, err := Inputs([]string{"testdata", "testdata/nested/notes.txt"})
	if err != nil {
		t.Fatal(err)
	}

	var got []string
	for _, loc := range locs {
		got = append(got, filepath.ToSlash(loc.Path))
	}
	expected := []string{
		"testdata/errors/dedent.hon",
		"testdata/errors/missing_colon.hon",
		"testdata/errors/unterminated.hon",
		"testdata/matrix.hon",
		"testdata/nested/counter.hon",
		"testdata/prime.hon",
		"testdata/nested/notes.txt",
	}
	if !reflect.DeepEqual(got, expected) {
		t.Fatalf("expected %v, got %v", expected, got)
	}

	if _, err := Inputs([]string{"testdata/missing.hon"}); err == nil {
		t.Fatalf("expected an error for a missing input")
	}
}

func TestRunAll(t *testing.T) {
	locs, err := Inputs([]string{"testdata"})
	if err != nil {
		t.Fatal(err)
	}

	collector := diagnostics.New(logs.Discard())
	var parsed []string
	err = RunAll(context.Background(), locs, Options{}, collector, func(result *Result) error {
		parsed = append(parsed, result.Loc.Name)
		return nil
	})
	if !errors.Is(err, diagnostics.COMPILER_ERROR_FOUND) {
		t.Fatalf("expected COMPILER_ERROR_FOUND, got %v", err)
	}

	if !reflect.DeepEqual(parsed, []string{"matrix.hon", "counter.hon", "prime.hon"}) {
		t.Errorf("parsed %v", parsed)
	}
	if len(collector.Diags) != 3 {
		t.Fatalf("expected 3 diagnostics, got %v", collector.Diags)
	}
	for _, diag := range collector.Diags {
		if !strings.Contains(filepath.ToSlash(diag.Filename), "testdata/errors/") {
			t.Errorf("unexpected diagnostic for %s", diag.Filename)
		}
	}
}

func TestRunAllStopsOnCallbackError(t *testing.T) {
	locs, err := Inputs([]string{"testdata/prime.hon", "testdata/matrix.hon"})
	if err != nil {
		t.Fatal(err)
	}

	stop := errors.New("stop")
	calls := 0
	err = RunAll(context.Background(), locs, Options{}, diagnostics.New(logs.Discard()), func(*Result) error {
		calls++
		return stop
	})
	if !errors.Is(err, stop) || calls != 1 {
		t.Fatalf("expected a single call and the callback error, got %d calls and %v", calls, err)
	}
}
