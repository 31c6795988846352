package token

import "fmt"

type Token struct {
	Kind   Kind
	Lexeme string
	Loc    Location
}

func New(kind Kind, lexeme string, loc Location) *Token {
	return &Token{Kind: kind, Lexeme: lexeme, Loc: loc}
}

// IsStructural reports whether the token was synthesized by the lexer to
// describe line structure rather than matched from source text.
func (token *Token) IsStructural() bool {
	return token.Kind == INDENT || token.Kind == DEDENT || token.Kind == NEWLINE
}

func (token *Token) String() string {
	return fmt.Sprintf("%s | %s | %q", token.Loc, token.Kind, token.Lexeme)
}
