package lexer

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/hon-lang/hon/internal/diagnostics"
	"github.com/hon-lang/hon/internal/lexer/token"
)

const eof rune = -1

const (
	INDENT_LEXEME = "<INDENT>"
	DEDENT_LEXEME = "<DEDENT>"
)

type Lexer struct {
	src *bufio.Reader
	err error

	ch  rune
	pos token.Location

	openBrackets int
	indentLevels []int

	emitted  bool
	lastKind token.Kind
}

func New(r io.Reader) *Lexer {
	lexer := new(Lexer)

	lexer.src = bufio.NewReader(r)
	lexer.pos = token.NewLocation(1, 0)
	lexer.indentLevels = []int{1}
	lexer.nextChar()

	return lexer
}

func NewFromString(src string) *Lexer {
	return New(strings.NewReader(src))
}

// BracketDepth is the number of currently open (, [ and { tokens.
func (lex *Lexer) BracketDepth() int { return lex.openBrackets }

// IndentLevels returns a copy of the stack of legal indentation columns.
func (lex *Lexer) IndentLevels() []int {
	levels := make([]int, len(lex.indentLevels))
	copy(levels, lex.indentLevels)
	return levels
}

// Next returns the next token. Once the input is exhausted every call
// returns an EOI token.
func (lex *Lexer) Next() (*token.Token, error) {
	tok, err := lex.next()
	if err != nil {
		return nil, err
	}
	if lex.err != nil {
		return nil, fmt.Errorf("read source: %w", lex.err)
	}
	lex.emitted = true
	lex.lastKind = tok.Kind
	return tok, nil
}

// Tokenize collects every token up to and including the first EOI.
func (lex *Lexer) Tokenize() ([]*token.Token, error) {
	var tokens []*token.Token
	for {
		tok, err := lex.Next()
		if err != nil {
			return nil, err
		}
		tokens = append(tokens, tok)
		if tok.Kind == token.EOI {
			break
		}
	}
	return tokens, nil
}

func (lex *Lexer) next() (*token.Token, error) {
	lex.skipWhitespace(lex.pos.Column == 1)

	loc := lex.pos

	if lex.ch == eof {
		return lex.endOfInput(loc), nil
	}

	if lex.atLogicalLineStart() {
		tok, err := lex.indentation(loc)
		if tok != nil || err != nil {
			return tok, err
		}
	}

	return lex.getToken(loc)
}

func (lex *Lexer) atLogicalLineStart() bool {
	return !lex.emitted || lex.lastKind == token.NEWLINE || lex.lastKind == token.DEDENT
}

func (lex *Lexer) indentation(loc token.Location) (*token.Token, error) {
	top := lex.indentLevels[len(lex.indentLevels)-1]
	switch {
	case loc.Column > top:
		lex.indentLevels = append(lex.indentLevels, loc.Column)
		return token.New(token.INDENT, INDENT_LEXEME, loc), nil
	case loc.Column < top:
		lex.indentLevels = lex.indentLevels[:len(lex.indentLevels)-1]
		if lex.indentLevels[len(lex.indentLevels)-1] < loc.Column {
			return nil, diagnostics.NewLexicalError(loc, "dedent does not match any outer indentation level")
		}
		return token.New(token.DEDENT, DEDENT_LEXEME, loc), nil
	}
	return nil, nil
}

// endOfInput terminates the last logical line and closes every open
// indentation level before settling on EOI.
func (lex *Lexer) endOfInput(loc token.Location) *token.Token {
	if lex.emitted && lex.lastKind != token.NEWLINE && lex.lastKind != token.DEDENT && lex.lastKind != token.EOI {
		return token.New(token.NEWLINE, "\n", loc)
	}
	if len(lex.indentLevels) > 1 {
		lex.indentLevels = lex.indentLevels[:len(lex.indentLevels)-1]
		return token.New(token.DEDENT, DEDENT_LEXEME, loc)
	}
	return token.New(token.EOI, "", loc)
}

func (lex *Lexer) getToken(loc token.Location) (*token.Token, error) {
	ch := lex.ch
	switch ch {
	case '\n':
		lex.nextChar()
		return token.New(token.NEWLINE, "\n", loc), nil
	case '<':
		return lex.twoCharOp(loc, token.LT, '=', token.LT_EQ), nil
	case '>':
		return lex.twoCharOp(loc, token.GT, '=', token.GT_EQ), nil
	case '=':
		return lex.twoCharOp(loc, token.ASSIGN, '=', token.EQ), nil
	case '!':
		return lex.twoCharOp(loc, token.UNKNOWN, '=', token.NOT_EQ), nil
	case '*':
		return lex.twoCharOp(loc, token.MULTIPLY, '*', token.POWER), nil
	case '/':
		return lex.twoCharOp(loc, token.DIVIDE, '/', token.INT_DIVIDE), nil
	case '+':
		return lex.singleChar(loc, token.PLUS), nil
	case '-':
		return lex.singleChar(loc, token.MINUS), nil
	case '%':
		return lex.singleChar(loc, token.MODULUS), nil
	case ';':
		return lex.singleChar(loc, token.SEMICOLON), nil
	case ',':
		return lex.singleChar(loc, token.COMMA), nil
	case ':':
		return lex.singleChar(loc, token.COLON), nil
	case '(':
		return lex.bracket(loc, token.PAREN_L), nil
	case ')':
		return lex.bracket(loc, token.PAREN_R), nil
	case '[':
		return lex.bracket(loc, token.BRACKET_L), nil
	case ']':
		return lex.bracket(loc, token.BRACKET_R), nil
	case '{':
		return lex.bracket(loc, token.CURLY_L), nil
	case '}':
		return lex.bracket(loc, token.CURLY_R), nil
	case '.':
		lex.nextChar() // .
		if !isDigit(lex.ch) {
			return token.New(token.PERIOD, ".", loc), nil
		}
		var sb strings.Builder
		sb.WriteRune('.')
		lex.readDigits(&sb)
		return lex.getFloatRest(loc, &sb)
	case '"', '\'':
		return lex.getStringLit(loc)
	default:
		if isLetter(ch) || ch == '_' {
			return lex.getIdOrKeyword(loc), nil
		}
		if isDigit(ch) {
			return lex.getNumberLit(loc)
		}
		lex.nextChar()
		return token.New(token.UNKNOWN, string(ch), loc), nil
	}
}

func (lex *Lexer) singleChar(loc token.Location, kind token.Kind) *token.Token {
	ch := lex.ch
	lex.nextChar()
	return token.New(kind, string(ch), loc)
}

// twoCharOp consumes the first character and looks at exactly one more. The
// look-ahead character is only consumed when it completes the operator.
func (lex *Lexer) twoCharOp(loc token.Location, single token.Kind, second rune, double token.Kind) *token.Token {
	first := lex.ch
	lex.nextChar()
	if lex.ch != second {
		return token.New(single, string(first), loc)
	}
	lex.nextChar()
	return token.New(double, string([]rune{first, second}), loc)
}

func (lex *Lexer) bracket(loc token.Location, kind token.Kind) *token.Token {
	if token.BRACKET_OPEN[kind] {
		lex.openBrackets++
	} else if token.BRACKET_CLOSE[kind] && lex.openBrackets > 0 {
		lex.openBrackets--
	}
	return lex.singleChar(loc, kind)
}

func (lex *Lexer) getStringLit(loc token.Location) (*token.Token, error) {
	quote := lex.ch
	lex.nextChar() // opening quote

	var sb strings.Builder
	for lex.ch != quote {
		if lex.ch == '\n' || lex.ch == eof {
			return nil, diagnostics.NewLexicalError(loc, "unterminated string")
		}
		sb.WriteRune(lex.ch)
		lex.nextChar()
	}
	lex.nextChar() // closing quote

	return token.New(token.STRING_LITERAL, sb.String(), loc), nil
}

func (lex *Lexer) getNumberLit(loc token.Location) (*token.Token, error) {
	var sb strings.Builder
	lex.readDigits(&sb)

	if lex.ch != '.' && lex.ch != 'e' && lex.ch != 'E' {
		return token.New(token.INTEGER_LITERAL, sb.String(), loc), nil
	}

	if lex.ch == '.' {
		sb.WriteRune('.')
		lex.nextChar()
		lex.readDigits(&sb)
	}
	return lex.getFloatRest(loc, &sb)
}

// getFloatRest matches the optional exponent of a float whose integer and
// fraction parts are already in sb.
func (lex *Lexer) getFloatRest(loc token.Location, sb *strings.Builder) (*token.Token, error) {
	if lex.ch == 'e' || lex.ch == 'E' {
		marker := lex.pos
		sb.WriteRune(lex.ch)
		lex.nextChar()
		if lex.ch == '+' || lex.ch == '-' {
			sb.WriteRune(lex.ch)
			lex.nextChar()
		}
		if !isDigit(lex.ch) {
			return nil, diagnostics.NewLexicalError(marker, "invalid floating-point literal")
		}
		lex.readDigits(sb)
	}

	if lex.ch == '.' || lex.ch == 'e' || lex.ch == 'E' {
		return nil, diagnostics.NewLexicalError(loc, "invalid floating-point literal")
	}

	return token.New(token.FLOAT_LITERAL, sb.String(), loc), nil
}

func (lex *Lexer) getIdOrKeyword(loc token.Location) *token.Token {
	var sb strings.Builder
	for isLetter(lex.ch) || isDigit(lex.ch) || lex.ch == '_' {
		sb.WriteRune(lex.ch)
		lex.nextChar()
	}
	name := sb.String()
	kind, ok := token.KEYWORDS[name]
	if !ok {
		kind = token.IDENTIFIER
	}
	return token.New(kind, name, loc)
}

func (lex *Lexer) readDigits(sb *strings.Builder) {
	for isDigit(lex.ch) {
		sb.WriteRune(lex.ch)
		lex.nextChar()
	}
}

// skipWhitespace drops insignificant characters and comments. When the
// cursor started at column 1, a line holding nothing but blanks and a
// comment is swallowed together with its newline.
func (lex *Lexer) skipWhitespace(atLineStart bool) {
	for {
		switch {
		case lex.ch == ' ' || lex.ch == '\t' || lex.ch == '\r':
			lex.nextChar()
		case lex.ch == '#':
			for lex.ch != '\n' && lex.ch != eof {
				lex.nextChar()
			}
		case lex.ch == '\n' && (lex.openBrackets > 0 || atLineStart):
			lex.nextChar()
		default:
			return
		}
	}
}

func (lex *Lexer) nextChar() {
	if lex.ch == eof {
		return
	}
	lex.pos.Move(lex.ch)

	r, _, err := lex.src.ReadRune()
	if err != nil {
		if err != io.EOF {
			lex.err = err
		}
		lex.ch = eof
		return
	}
	lex.ch = r
}

func isLetter(ch rune) bool {
	return (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z')
}

func isDigit(ch rune) bool {
	return ch >= '0' && ch <= '9'
}
