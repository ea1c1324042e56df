package topogi

import "testing"

func Test_Printer_Forms(t *testing.T) {
	cases := []struct {
		in   Expr
		want string
	}{
		{Nil, "nil"},
		{Bool(true), "true"},
		{Bool(false), "false"},
		{Int(42), "42"},
		{Int(-7), "-7"},
		{Str("a b"), "a b"}, // text prints raw
		{Sym("foo"), "foo"},
		{Lambda("x", Sym("x")), `(\ (x) x)`},
		{Apply(Sym("f"), Int(1)), "(f 1)"},
		{Apply(Apply(Sym("f"), Sym("a")), Sym("b")), "((f a) b)"},
		{List(), "()"},
		{List(Int(1), Int(2), Int(3)), "(1 2 3)"},
		{List(List(Int(1)), Nil), "((1) nil)"},
		{If(Sym("c"), Int(1), Int(2)), "(if c 1 2)"},
		{Quote(Sym("x")), "'x"},
		{Quote(Quote(Sym("x"))), "''x"},
		{Quote(List(Int(1), Int(2))), "'(1 2)"},
		{Let("x", Int(1), Sym("x")), "(let (x 1) x)"},
		{Case(Sym("x"),
			Clause{Pattern: Int(1), Result: Int(2)},
			Clause{Pattern: Int(3), Result: Int(4)}), "(case x ((1 2) (3 4)))"},
	}
	for _, tc := range cases {
		if got := tc.in.String(); got != tc.want {
			t.Fatalf("print mismatch\nwant: %q\ngot:  %q", tc.want, got)
		}
	}
}

func Test_Printer_Builtins(t *testing.T) {
	n := &Native{Name: "+", Arity: 2}
	bare := Expr{Kind: KindBuiltin, Native: n}
	if got := bare.String(); got != "#<builtin:+>" {
		t.Fatalf("want bare builtin form, got %q", got)
	}

	partial := Expr{Kind: KindBuiltin, Native: n, Items: []Expr{Int(1)}}
	if got := partial.String(); got != "(#<builtin:+> 1)" {
		t.Fatalf("want partial builtin form, got %q", got)
	}
}

func Test_Printer_RoundTrip(t *testing.T) {
	// canonical source forms survive a parse and print unchanged
	for _, src := range []string{
		"nil",
		"true",
		"42",
		"foo",
		`(\ (x) x)`,
		"(f x)",
		"(if a b c)",
		"(let (x 1) x)",
		"'x",
		"'(1 2)",
		"(case x ((1 2)))",
	} {
		if got := mustParse(t, src).String(); got != src {
			t.Fatalf("round trip mismatch\nin:  %q\ngot: %q", src, got)
		}
	}
}

func Test_Printer_SourceString(t *testing.T) {
	e := List(Str("a b"), Int(1))
	if got := SourceString(e); got != `("a b" 1)` {
		t.Fatalf("want quoted text in source form, got %q", got)
	}
	if got := e.String(); got != "(a b 1)" {
		t.Fatalf("want raw text in display form, got %q", got)
	}

	// source output parses back to an equal tree
	src := `(let (x "a\nb") (string-append x "c"))`
	parsed := mustParse(t, src)
	back := mustParse(t, SourceString(parsed))
	if !Equal(parsed, back) {
		t.Fatalf("source render did not round trip: %q", SourceString(parsed))
	}

	// application chains canonicalize to their nested shape
	if got := SourceString(mustParse(t, "(+ 1 2)")); got != "((+ 1) 2)" {
		t.Fatalf("want canonical nesting, got %q", got)
	}
}

func Test_Printer_FormatProgram(t *testing.T) {
	forms, err := ParseProgram(`(define greeting "hi there")  (println greeting)`)
	if err != nil {
		t.Fatalf("parse program: %v", err)
	}
	want := "(define greeting \"hi there\")\n(println greeting)\n"
	if got := FormatProgram(forms); got != want {
		t.Fatalf("format mismatch\nwant: %q\ngot:  %q", want, got)
	}

	// canonical output is a fixed point
	again, err := ParseProgram(want)
	if err != nil {
		t.Fatalf("reparse canonical text: %v", err)
	}
	if got := FormatProgram(again); got != want {
		t.Fatalf("canonical text not stable\nwant: %q\ngot:  %q", want, got)
	}
}

func Test_Printer_FormatValue(t *testing.T) {
	cases := []struct {
		in   Expr
		want string
	}{
		{Int(42), "42"},
		{Nil, "nil"},
		{Str("hi"), `"hi"`},
		{Str(`a"b`), `"a\"b"`},
		{Str("a\nb"), `"a\nb"`},
		{Str("a\tb"), `"a\tb"`},
		{Str(`a\b`), `"a\\b"`},
		{List(Str("a")), "(a)"}, // only top-level text is quoted
	}
	for _, tc := range cases {
		if got := FormatValue(tc.in); got != tc.want {
			t.Fatalf("format mismatch\nwant: %q\ngot:  %q", tc.want, got)
		}
	}
}
