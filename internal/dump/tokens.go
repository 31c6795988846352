package dump

import (
	"fmt"
	"io"

	"github.com/hon-lang/hon/internal/lexer/token"
)

// Tokens writes one token per line as "line:col KIND lexeme". Lexemes are
// quoted so that whitespace and empty lexemes stay visible.
func Tokens(w io.Writer, tokens []*token.Token) error {
	for _, tok := range tokens {
		if _, err := fmt.Fprintf(w, "%-7s %-15s %q\n", tok.Loc, tok.Kind.Name(), tok.Lexeme); err != nil {
			return err
		}
	}
	return nil
}
