package topogi

import (
	"strconv"
	"strings"
)

/* ---------- rendering ---------- */

// String renders the expression in surface syntax. The output is meant for
// display (REPL echo, print builtins, error messages): text renders as its
// raw contents without quotes, so rendered trees containing text are not
// guaranteed to re-parse. SourceString is the re-parseable variant.
func (e Expr) String() string {
	var b strings.Builder
	writeExpr(&b, e, false)
	return b.String()
}

// SourceString renders the expression as source text: identical to String
// except that text renders as a quoted, escaped literal. For trees that came
// out of the parser the result parses back to an equal tree; the formatter
// relies on this.
func SourceString(e Expr) string {
	var b strings.Builder
	writeExpr(&b, e, true)
	return b.String()
}

func writeExpr(b *strings.Builder, e Expr, src bool) {
	switch e.Kind {
	case KindNil:
		b.WriteString("nil")
	case KindBool:
		if e.Bool {
			b.WriteString("true")
		} else {
			b.WriteString("false")
		}
	case KindInt:
		b.WriteString(strconv.FormatInt(e.Int, 10))
	case KindStr:
		if src {
			b.WriteString(quoteString(e.Str))
		} else {
			b.WriteString(e.Str)
		}
	case KindSym:
		b.WriteString(e.Str)
	case KindLambda:
		b.WriteString("(\\ (")
		b.WriteString(e.Str)
		b.WriteString(") ")
		writeExpr(b, *e.Body, src)
		b.WriteString(")")
	case KindApply:
		b.WriteString("(")
		writeExpr(b, *e.Fn, src)
		b.WriteString(" ")
		writeExpr(b, *e.Arg, src)
		b.WriteString(")")
	case KindList:
		b.WriteString("(")
		writeItems(b, e.Items, src)
		b.WriteString(")")
	case KindIf:
		b.WriteString("(if ")
		writeExpr(b, *e.Cond, src)
		b.WriteString(" ")
		writeExpr(b, *e.Then, src)
		b.WriteString(" ")
		writeExpr(b, *e.Else, src)
		b.WriteString(")")
	case KindQuote:
		b.WriteString("'")
		writeExpr(b, *e.Val, src)
	case KindLet:
		b.WriteString("(let (")
		b.WriteString(e.Str)
		b.WriteString(" ")
		writeExpr(b, *e.Val, src)
		b.WriteString(") ")
		writeExpr(b, *e.Body, src)
		b.WriteString(")")
	case KindCase:
		b.WriteString("(case ")
		writeExpr(b, *e.Val, src)
		b.WriteString(" (")
		for i, c := range e.Clauses {
			if i > 0 {
				b.WriteString(" ")
			}
			b.WriteString("(")
			writeExpr(b, c.Pattern, src)
			b.WriteString(" ")
			writeExpr(b, c.Result, src)
			b.WriteString(")")
		}
		b.WriteString("))")
	case KindBuiltin:
		if len(e.Items) == 0 {
			writeNative(b, e.Native)
			return
		}
		b.WriteString("(")
		writeNative(b, e.Native)
		b.WriteString(" ")
		writeItems(b, e.Items, src)
		b.WriteString(")")
	}
}

func writeItems(b *strings.Builder, items []Expr, src bool) {
	for i, it := range items {
		if i > 0 {
			b.WriteString(" ")
		}
		writeExpr(b, it, src)
	}
}

func writeNative(b *strings.Builder, n *Native) {
	b.WriteString("#<builtin:")
	b.WriteString(n.Name)
	b.WriteString(">")
}

/* ---------- source text helpers ---------- */

// quoteString renders s as a double-quoted source literal with the escapes
// the lexer understands. The REPL uses it when echoing text results so that
// `"a\nb"` stays distinguishable from two lines of output.
func quoteString(s string) string {
	var b strings.Builder
	b.WriteByte('"')
	for _, r := range s {
		switch r {
		case '"':
			b.WriteString(`\"`)
		case '\\':
			b.WriteString(`\\`)
		case '\n':
			b.WriteString(`\n`)
		case '\t':
			b.WriteString(`\t`)
		default:
			b.WriteRune(r)
		}
	}
	b.WriteByte('"')
	return b.String()
}

// FormatValue renders a reduced expression for interactive echo: text is
// shown as a quoted literal, everything else exactly as String.
func FormatValue(e Expr) string {
	if e.Kind == KindStr {
		return quoteString(e.Str)
	}
	return e.String()
}

// FormatProgram renders parsed top-level forms as canonical source text, one
// form per line, definitions in their (define name expr) shape. Comments do
// not survive: the canonical text is rebuilt from the trees.
func FormatProgram(forms []Form) string {
	var b strings.Builder
	for _, f := range forms {
		if f.Name != "" {
			b.WriteString("(define ")
			b.WriteString(f.Name)
			b.WriteString(" ")
			b.WriteString(SourceString(f.Expr))
			b.WriteString(")")
		} else {
			b.WriteString(SourceString(f.Expr))
		}
		b.WriteByte('\n')
	}
	return b.String()
}
