package topogi

import (
	"bytes"
	"testing"
)

// captureOutput redirects builtin printing to a buffer for one call.
func captureOutput(t *testing.T, f func()) string {
	t.Helper()
	old := Output
	var buf bytes.Buffer
	Output = &buf
	defer func() { Output = old }()
	f()
	return buf.String()
}

func Test_Builtin_IO_Print(t *testing.T) {
	var v Expr
	out := captureOutput(t, func() { v = evalSrc(t, "(print 5)") })
	if out != "5 " {
		t.Fatalf("want %q, got %q", "5 ", out)
	}
	wantNil(t, v)
}

func Test_Builtin_IO_Println(t *testing.T) {
	var v Expr
	out := captureOutput(t, func() { v = evalSrc(t, "(println 5)") })
	if out != "5\n" {
		t.Fatalf("want %q, got %q", "5\n", out)
	}
	wantNil(t, v)

	// text prints raw, without quotes
	out = captureOutput(t, func() { evalSrc(t, `(println "a b")`) })
	if out != "a b\n" {
		t.Fatalf("want %q, got %q", "a b\n", out)
	}

	out = captureOutput(t, func() { evalSrc(t, "(println '(1 2))") })
	if out != "(1 2)\n" {
		t.Fatalf("want %q, got %q", "(1 2)\n", out)
	}
}

func Test_Builtin_IO_SequenceOrder(t *testing.T) {
	var v Expr
	out := captureOutput(t, func() { v = evalSrc(t, "(list (print 1) (print 2))") })
	if out != "1 2 " {
		t.Fatalf("want %q, got %q", "1 2 ", out)
	}
	wantExpr(t, v, List(Nil, Nil))
}

func Test_Builtin_IO_UntakenBranchIsSilent(t *testing.T) {
	var v Expr
	out := captureOutput(t, func() { v = evalSrc(t, `(if true 1 (println "side"))`) })
	if out != "" {
		t.Fatalf("want no output, got %q", out)
	}
	wantInt(t, v, 1)
}
