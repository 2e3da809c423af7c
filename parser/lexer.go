package parser

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/congo-tactic/congo/congoerr"
)

type tokenType int

const (
	tokEOF tokenType = iota
	tokLParen
	tokRParen
	tokSymbol
	tokNat
	tokWord
	tokFloat
	tokString
	tokChar
)

func (t tokenType) String() string {
	switch t {
	case tokEOF:
		return "end of input"
	case tokLParen:
		return "'('"
	case tokRParen:
		return "')'"
	case tokSymbol:
		return "symbol"
	case tokNat:
		return "natural number"
	case tokWord:
		return "word literal"
	case tokFloat:
		return "float literal"
	case tokString:
		return "string literal"
	case tokChar:
		return "character literal"
	}
	return "unknown token"
}

// token keeps the raw lexeme alongside the decoded payload, so positions
// that read names can reuse tokens the classifier took for numbers.
type token struct {
	Type tokenType
	Text string
	Nat  uint64
	F    float64
	S    string
	R    rune
	Line int
	Col  int
}

type lexer struct {
	src  string
	cur  int
	line int
	col  int
}

func newLexer(src string) *lexer {
	return &lexer{src: src, line: 1, col: 1}
}

func (l *lexer) atEnd() bool { return l.cur >= len(l.src) }

func (l *lexer) peek() byte {
	if l.atEnd() {
		return 0
	}
	return l.src[l.cur]
}

// advance consumes one rune, keeping line and column (both 1-based, column
// counted in runes) in step.
func (l *lexer) advance() rune {
	r, size := utf8.DecodeRuneInString(l.src[l.cur:])
	l.cur += size
	if r == '\n' {
		l.line++
		l.col = 1
	} else {
		l.col++
	}
	return r
}

func (l *lexer) skipWhitespace() {
	for !l.atEnd() {
		switch l.peek() {
		case ' ', '\t', '\r', '\n':
			l.advance()
		default:
			return
		}
	}
}

// isDelimiter ends an atom. Multi-byte runes are never delimiters, which is
// what lets names like _+_ and ℕ.suc lex as single atoms.
func isDelimiter(b byte) bool {
	switch b {
	case ' ', '\t', '\r', '\n', '(', ')', '"', '\'':
		return true
	}
	return false
}

func isAllDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

func (l *lexer) err(line, col int, msg, hint string) error {
	return congoerr.New(congoerr.NewParse{Line: line, Col: col, ParserMessage: msg, Hint: hint})
}

// scan returns the next token. EOF is a token, not an error.
func (l *lexer) scan() (token, error) {
	l.skipWhitespace()
	tok := token{Line: l.line, Col: l.col}
	if l.atEnd() {
		tok.Type = tokEOF
		return tok, nil
	}

	switch l.peek() {
	case '(':
		l.advance()
		tok.Type, tok.Text = tokLParen, "("
		return tok, nil
	case ')':
		l.advance()
		tok.Type, tok.Text = tokRParen, ")"
		return tok, nil
	case '"':
		lexeme, err := l.scanQuoted('"')
		if err != nil {
			return token{}, err
		}
		s, uerr := strconv.Unquote(lexeme)
		if uerr != nil {
			return token{}, l.err(tok.Line, tok.Col, fmt.Sprintf("invalid string literal %s", lexeme),
				"strings use Go escape syntax")
		}
		tok.Type, tok.Text, tok.S = tokString, lexeme, s
		return tok, nil
	case '\'':
		lexeme, err := l.scanQuoted('\'')
		if err != nil {
			return token{}, err
		}
		s, uerr := strconv.Unquote(lexeme)
		if uerr != nil {
			return token{}, l.err(tok.Line, tok.Col, fmt.Sprintf("invalid character literal %s", lexeme),
				"characters use Go escape syntax")
		}
		r, size := utf8.DecodeRuneInString(s)
		if size != len(s) || (r == utf8.RuneError && size == 1) {
			return token{}, l.err(tok.Line, tok.Col, fmt.Sprintf("character literal %s must hold exactly one rune", lexeme), "")
		}
		tok.Type, tok.Text, tok.R = tokChar, lexeme, r
		return tok, nil
	}

	start := l.cur
	for !l.atEnd() && !isDelimiter(l.peek()) {
		l.advance()
	}
	tok.Text = l.src[start:l.cur]
	return classify(tok), nil
}

// scanQuoted reads from the opening quote to the matching close, escapes
// included, and returns the raw lexeme for strconv.Unquote.
func (l *lexer) scanQuoted(quote byte) (string, error) {
	line, col := l.line, l.col
	start := l.cur
	l.advance()
	for !l.atEnd() {
		switch l.peek() {
		case '\\':
			l.advance()
			if !l.atEnd() {
				l.advance()
			}
		case quote:
			l.advance()
			return l.src[start:l.cur], nil
		case '\n':
			return "", l.err(line, col, "literal not closed before end of line", fmt.Sprintf("expected closing %c", quote))
		default:
			l.advance()
		}
	}
	return "", l.err(line, col, "literal not closed before end of input", fmt.Sprintf("expected closing %c", quote))
}

// classify decides what shape an atom has. Only the exact printed float
// forms count as floats: a mark among . e E, or NaN, +Inf, -Inf. Everything
// else stays a symbol, so names like -5- or 1≡2 remain usable.
func classify(tok token) token {
	text := tok.Text
	if isAllDigits(text) {
		if n, err := strconv.ParseUint(text, 10, 64); err == nil {
			tok.Type, tok.Nat = tokNat, n
			return tok
		}
	}
	if len(text) > 1 && text[len(text)-1] == 'w' && isAllDigits(text[:len(text)-1]) {
		if n, err := strconv.ParseUint(text[:len(text)-1], 10, 64); err == nil {
			tok.Type, tok.Nat = tokWord, n
			return tok
		}
	}
	if strings.ContainsAny(text, ".eE") || text == "NaN" || text == "+Inf" || text == "-Inf" {
		if f, err := strconv.ParseFloat(text, 64); err == nil {
			tok.Type, tok.F = tokFloat, f
			return tok
		}
	}
	tok.Type = tokSymbol
	return tok
}
