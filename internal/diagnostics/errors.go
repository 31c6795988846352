package diagnostics

import (
	"errors"
	"fmt"

	"github.com/hon-lang/hon/internal/lexer/token"
)

// LexicalError is raised by the lexer: an unterminated string, a malformed
// float literal or a dedent that matches no enclosing indentation level.
type LexicalError struct {
	Msg string
	Loc token.Location
}

func NewLexicalError(loc token.Location, format string, args ...any) *LexicalError {
	return &LexicalError{Msg: fmt.Sprintf(format, args...), Loc: loc}
}

func (e *LexicalError) Error() string {
	return fmt.Sprintf("%s: lexical error: %s", e.Loc, e.Msg)
}

// SyntaxError is raised by the parser when the current token does not fit
// the grammar.
type SyntaxError struct {
	Msg string
	Loc token.Location
}

func NewSyntaxError(loc token.Location, format string, args ...any) *SyntaxError {
	return &SyntaxError{Msg: fmt.Sprintf(format, args...), Loc: loc}
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%s: syntax error: %s", e.Loc, e.Msg)
}

type Kind int

const (
	KIND_OTHER Kind = iota
	KIND_LEXICAL
	KIND_SYNTAX
)

func (k Kind) String() string {
	switch k {
	case KIND_LEXICAL:
		return "lexical error"
	case KIND_SYNTAX:
		return "syntax error"
	}
	return "error"
}

// Diag is the flattened form of an error reported for one input.
type Diag struct {
	Kind     Kind
	Filename string
	Msg      string
	Loc      token.Location
}

func (d Diag) HasLoc() bool { return d.Loc.Line > 0 }

func (d Diag) String() string {
	switch {
	case d.Filename != "" && d.HasLoc():
		return fmt.Sprintf("%s:%s: %s: %s", d.Filename, d.Loc, d.Kind, d.Msg)
	case d.HasLoc():
		return fmt.Sprintf("%s: %s: %s", d.Loc, d.Kind, d.Msg)
	case d.Filename != "":
		return fmt.Sprintf("%s: %s: %s", d.Filename, d.Kind, d.Msg)
	}
	return fmt.Sprintf("%s: %s", d.Kind, d.Msg)
}

// AsDiag converts any error into a Diag, keeping the location of lexical
// and syntax errors found anywhere in the chain.
func AsDiag(filename string, err error) Diag {
	var lexErr *LexicalError
	if errors.As(err, &lexErr) {
		return Diag{Kind: KIND_LEXICAL, Filename: filename, Msg: lexErr.Msg, Loc: lexErr.Loc}
	}
	var synErr *SyntaxError
	if errors.As(err, &synErr) {
		return Diag{Kind: KIND_SYNTAX, Filename: filename, Msg: synErr.Msg, Loc: synErr.Loc}
	}
	return Diag{Kind: KIND_OTHER, Filename: filename, Msg: err.Error()}
}
