package topogi

import (
	"reflect"
	"testing"
)

func toks(t *testing.T, src string) []Token {
	t.Helper()
	ts, err := Lex(src)
	if err != nil {
		t.Fatalf("lex error for %q: %v", src, err)
	}
	return ts
}

func wantTypes(t *testing.T, src string, want []TokenType) []Token {
	t.Helper()
	got := toks(t, src)
	gotTypes := make([]TokenType, 0, len(got))
	for _, tok := range got {
		if tok.Type == EOF {
			break
		}
		gotTypes = append(gotTypes, tok.Type)
	}
	if !reflect.DeepEqual(gotTypes, want) {
		t.Fatalf("\nsource:\n%s\nwant types:\n%v\ngot types:\n%v\n", src, want, gotTypes)
	}
	return got
}

func Test_Lexer_Tokens(t *testing.T) {
	got := wantTypes(t, `(+ 1 'x)`,
		[]TokenType{LPAREN, SYMBOL, INT, QUOTE, SYMBOL, RPAREN})
	if got[1].Text != "+" || got[2].Int != 1 || got[4].Text != "x" {
		t.Fatalf("unexpected lexemes: %v", got)
	}
}

func Test_Lexer_Lambda_And_Strings(t *testing.T) {
	wantTypes(t, `(\ (x) "hi")`,
		[]TokenType{LPAREN, BACKSLASH, LPAREN, SYMBOL, RPAREN, STRING, RPAREN})

	// the backslash delimits an atom on its own
	wantTypes(t, `\x`, []TokenType{BACKSLASH, SYMBOL})
}

func Test_Lexer_Positions(t *testing.T) {
	got := toks(t, "(foo\n  bar)")
	want := []struct{ line, col int }{
		{1, 1}, // (
		{1, 2}, // foo
		{2, 3}, // bar
		{2, 6}, // )
		{2, 7}, // eof
	}
	if len(got) != len(want) {
		t.Fatalf("want %d tokens, got %v", len(want), got)
	}
	for i, w := range want {
		if got[i].Line != w.line || got[i].Col != w.col {
			t.Fatalf("token %d: want %d:%d, got %d:%d", i, w.line, w.col, got[i].Line, got[i].Col)
		}
	}
}

func Test_Lexer_Comments(t *testing.T) {
	got := wantTypes(t, "1 ; the rest is ignored (even parens\n2",
		[]TokenType{INT, INT})
	if got[0].Int != 1 || got[1].Int != 2 {
		t.Fatalf("want 1 and 2, got %v", got)
	}
}

func Test_Lexer_Integers(t *testing.T) {
	got := toks(t, "0 -5 123")
	for i, n := range []int64{0, -5, 123} {
		if got[i].Type != INT || got[i].Int != n {
			t.Fatalf("token %d: want int %d, got %v", i, n, got[i])
		}
	}

	// a bare minus is the subtraction symbol
	got = toks(t, "-")
	if got[0].Type != SYMBOL || got[0].Text != "-" {
		t.Fatalf("want symbol -, got %v", got[0])
	}

	if _, err := Lex("12x"); err == nil {
		t.Fatalf("want an error for a malformed integer")
	}
	if _, err := Lex("99999999999999999999"); err == nil {
		t.Fatalf("want an error for an out-of-range integer")
	}
}

func Test_Lexer_StringEscapes(t *testing.T) {
	got := toks(t, `"a\nb\t\"\\"`)
	if got[0].Type != STRING || got[0].Text != "a\nb\t\"\\" {
		t.Fatalf("bad decode: %q", got[0].Text)
	}

	if _, err := Lex(`"a\qb"`); err == nil {
		t.Fatalf("want an error for an unknown escape")
	}
}

func Test_Lexer_UnterminatedString(t *testing.T) {
	_, err := Lex(`"abc`)
	if err == nil {
		t.Fatalf("want an error for an unterminated string")
	}
	if !IsIncomplete(err) {
		t.Fatalf("want the error flagged incomplete, got %v", err)
	}

	// an open paren is fine at the lexer level
	wantTypes(t, "(foo", []TokenType{LPAREN, SYMBOL})
}

func Test_Lexer_ReservedPrefix(t *testing.T) {
	for _, src := range []string{"#0", "a#b", "(# 1)"} {
		if _, err := Lex(src); err == nil {
			t.Fatalf("want an error for %q", src)
		}
	}
}
