// lexer.go: source text to tokens.
package topogi

import (
	"fmt"
	"strconv"
	"unicode"
)

// TokenType represents the kind of token.
type TokenType int

const (
	EOF TokenType = iota

	LPAREN    // "("
	RPAREN    // ")"
	QUOTE     // "'"
	BACKSLASH // "\", the lambda keyword

	INT
	STRING
	SYMBOL
)

// Token carries a lexeme and its 1-based source position. Text holds the
// symbol name or the decoded string contents; Int holds the integer value.
type Token struct {
	Type TokenType
	Text string
	Int  int64
	Line int
	Col  int
}

// Lex tokenizes src. The returned slice always ends with an EOF token
// positioned just past the input. Comments run from ';' to end of line.
func Lex(src string) ([]Token, error) {
	lx := &lexer{src: []rune(src), line: 1, col: 1}
	var toks []Token
	for {
		t, err := lx.next()
		if err != nil {
			return nil, err
		}
		toks = append(toks, t)
		if t.Type == EOF {
			return toks, nil
		}
	}
}

type lexer struct {
	src  []rune
	pos  int
	line int
	col  int
}

func (lx *lexer) eof() bool { return lx.pos >= len(lx.src) }

func (lx *lexer) peek() rune { return lx.src[lx.pos] }

func (lx *lexer) advance() rune {
	r := lx.src[lx.pos]
	lx.pos++
	if r == '\n' {
		lx.line++
		lx.col = 1
	} else {
		lx.col++
	}
	return r
}

func (lx *lexer) errf(line, col int, format string, args ...any) *LexError {
	return &LexError{Line: line, Col: col, Msg: fmt.Sprintf(format, args...)}
}

func (lx *lexer) next() (Token, error) {
	lx.skipBlank()
	line, col := lx.line, lx.col
	if lx.eof() {
		return Token{Type: EOF, Line: line, Col: col}, nil
	}

	switch r := lx.peek(); {
	case r == '(':
		lx.advance()
		return Token{Type: LPAREN, Line: line, Col: col}, nil
	case r == ')':
		lx.advance()
		return Token{Type: RPAREN, Line: line, Col: col}, nil
	case r == '\'':
		lx.advance()
		return Token{Type: QUOTE, Line: line, Col: col}, nil
	case r == '\\':
		lx.advance()
		return Token{Type: BACKSLASH, Line: line, Col: col}, nil
	case r == '"':
		return lx.lexString(line, col)
	case r == '#':
		return Token{}, lx.errf(line, col, "'#' is reserved for generated names")
	default:
		return lx.lexAtom(line, col)
	}
}

func (lx *lexer) skipBlank() {
	for !lx.eof() {
		switch r := lx.peek(); {
		case unicode.IsSpace(r):
			lx.advance()
		case r == ';':
			for !lx.eof() && lx.peek() != '\n' {
				lx.advance()
			}
		default:
			return
		}
	}
}

func (lx *lexer) lexString(line, col int) (Token, error) {
	lx.advance() // opening quote
	var out []rune
	for {
		if lx.eof() {
			return Token{}, &LexError{Line: line, Col: col, Msg: "unterminated string literal", Incomplete: true}
		}
		r := lx.advance()
		if r == '"' {
			return Token{Type: STRING, Text: string(out), Line: line, Col: col}, nil
		}
		if r != '\\' {
			out = append(out, r)
			continue
		}
		if lx.eof() {
			return Token{}, &LexError{Line: line, Col: col, Msg: "unterminated string literal", Incomplete: true}
		}
		eLine, eCol := lx.line, lx.col
		switch esc := lx.advance(); esc {
		case 'n':
			out = append(out, '\n')
		case 't':
			out = append(out, '\t')
		case '\\':
			out = append(out, '\\')
		case '"':
			out = append(out, '"')
		default:
			return Token{}, lx.errf(eLine, eCol, "unknown escape '\\%c'", esc)
		}
	}
}

// lexAtom scans a run of non-delimiter characters and classifies it as an
// integer or a symbol. Runs that look numeric must parse as int64.
func (lx *lexer) lexAtom(line, col int) (Token, error) {
	var out []rune
	for !lx.eof() && !isDelimiter(lx.peek()) {
		if lx.peek() == '#' {
			return Token{}, lx.errf(lx.line, lx.col, "'#' is reserved for generated names")
		}
		out = append(out, lx.advance())
	}
	text := string(out)

	numeric := unicode.IsDigit(out[0]) ||
		(out[0] == '-' && len(out) > 1 && unicode.IsDigit(out[1]))
	if numeric {
		n, err := strconv.ParseInt(text, 10, 64)
		if err != nil {
			return Token{}, lx.errf(line, col, "malformed integer literal %q", text)
		}
		return Token{Type: INT, Int: n, Line: line, Col: col}, nil
	}
	return Token{Type: SYMBOL, Text: text, Line: line, Col: col}, nil
}

func isDelimiter(r rune) bool {
	return unicode.IsSpace(r) || r == '(' || r == ')' || r == '\'' || r == '"' || r == ';' || r == '\\'
}
