package rpncalc

import (
	"errors"
	"io"
	"strconv"
	"strings"
	"unicode"

	"github.com/shopspring/decimal"
)

// Separators contains the runes which end a token and are tokens themselves.
// Whitespace also ends a token but is otherwise discarded.
const Separators = "()+-*/"

// Token is a classified piece of an expression.
type Token struct {
	// Text is the source text of the token.
	Text string
	// Col is the 1-based rune position of the start of the token.
	Col int
	// Op is the operation the token denotes.
	Op Op
}

func (t Token) String() string {
	return t.Op.Kind().String() + ":" + t.Text + "@" + strconv.Itoa(t.Col)
}

type lexer struct {
	src  io.RuneScanner
	tab  *Table
	buf  strings.Builder
	rune int
}

func lex(src io.RuneScanner, tab *Table) *lexer {
	return &lexer{
		src:  src,
		tab:  tab,
		rune: 1,
	}
}

// readRune reads a rune from the src and updates the lexer's position info.
func (l *lexer) readRune() (r rune, err error) {
	r, sz, err := l.src.ReadRune()
	if sz > 0 {
		l.rune++
	}
	return r, err
}

// unreadRune unreads a rune from the src and updates the lexer's position
// info. Panics if unreading returns an error.
func (l *lexer) unreadRune() {
	if err := l.src.UnreadRune(); err != nil {
		panic(err)
	}
	l.rune--
}

// next scans the next token from the input. At the end of the input, the
// result is an empty token with io.EOF.
func (l *lexer) next() (Token, error) {
	defer l.buf.Reset()
	tok := Token{Col: l.rune}
	for {
		r, err := l.readRune()
		if err != nil {
			if errors.Is(err, io.EOF) && l.buf.Len() > 0 {
				return l.classify(tok)
			}
			return Token{}, err
		}
		switch {
		case unicode.IsSpace(r):
			if l.buf.Len() > 0 {
				return l.classify(tok)
			}
			tok.Col++
		case strings.ContainsRune(Separators, r):
			if l.buf.Len() > 0 {
				// The separator is its own token.
				l.unreadRune()
				return l.classify(tok)
			}
			l.buf.WriteRune(r)
			return l.classify(tok)
		default:
			l.buf.WriteRune(r)
		}
	}
}

// classify resolves the scanned text to a symbol from the table or else a
// number.
func (l *lexer) classify(tok Token) (Token, error) {
	tok.Text = l.buf.String()
	if op, ok := l.tab.Lookup(tok.Text); ok {
		tok.Op = op
		return tok, nil
	}
	v, ok := parseNum(tok.Text)
	if !ok {
		return tok, &TokenError{Col: tok.Col, Token: tok.Text}
	}
	tok.Op = Operand(v)
	return tok, nil
}

// parseNum parses a decimal number using . as the decimal separator. There
// are no grouping separators, infinities, or NaNs. Literals beyond the range
// of float64 become infinities or zeros.
func parseNum(s string) (float64, bool) {
	// decimal decides the syntax; strconv rounds without expanding the
	// exponent, which may be as large as an int32.
	if _, err := decimal.NewFromString(s); err != nil {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0, false
	}
	return v, true
}

// Tokenize splits an expression into tokens using the default table. The
// first unrecognized token is returned as a *TokenError.
func Tokenize(src string) ([]Token, error) {
	return defaultTable.Tokenize(src)
}

// Tokenize splits an expression into tokens using symbols from t.
func (t *Table) Tokenize(src string) ([]Token, error) {
	scan := lex(strings.NewReader(src), t)
	var toks []Token
	for {
		tok, err := scan.next()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return toks, nil
			}
			return nil, err
		}
		toks = append(toks, tok)
	}
}
