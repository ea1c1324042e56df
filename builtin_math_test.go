package topogi

import (
	"math"
	"testing"
)

func Test_Builtin_Math_Arithmetic(t *testing.T) {
	wantInt(t, evalSrc(t, "(+ 1 2)"), 3)
	wantInt(t, evalSrc(t, "(- 1 2)"), -1)
	wantInt(t, evalSrc(t, "(* -3 -4)"), 12)
	wantInt(t, evalSrc(t, "(+ (* 2 20) 2)"), 42)

	// division truncates toward zero
	wantInt(t, evalSrc(t, "(/ 7 2)"), 3)
	wantInt(t, evalSrc(t, "(/ -7 2)"), -3)

	// overflow wraps
	wantInt(t, evalSrc(t, "(+ 9223372036854775807 1)"), math.MinInt64)
}

func Test_Builtin_Math_Currying(t *testing.T) {
	if v := evalSrc(t, "(+ 1)"); v.Kind != KindLambda {
		t.Fatalf("want a procedure value from (+ 1), got %s", v)
	}
	wantInt(t, evalSrc(t, "((+ 1) 2)"), 3)

	// a partial application is reusable
	wantInt(t, evalSrc(t, "(let (p (+ 1)) (+ (p 10) (p 100)))"), 112)
}

func Test_Builtin_Math_DivideByZero(t *testing.T) {
	ee := evalErr(t, "(/ 1 0)")
	if ee.Kind != ErrDivideByZero {
		t.Fatalf("want divide-by-zero, got %v", ee)
	}
	// the payload is the application of the two operands
	wantExpr(t, ee.Expr, Apply(Int(1), Int(0)))

	wantInt(t, evalSrc(t, "(/ 0 5)"), 0)
}

func Test_Builtin_Math_InvalidArgs(t *testing.T) {
	ee := evalErr(t, `(+ "a" 1)`)
	if ee.Kind != ErrInvalidArgs || ee.Name != "+" {
		t.Fatalf("want invalid arguments to +, got %v", ee)
	}
	if len(ee.Args) != 2 {
		t.Fatalf("want the raw argument list, got %v", ee.Args)
	}
	wantExpr(t, ee.Args[0], Str("a"))
	wantExpr(t, ee.Args[1], Int(1))

	// an argument that fails to evaluate surfaces its own error first
	if ee := evalErr(t, "(+ nope 1)"); ee.Kind != ErrUnboundName {
		t.Fatalf("want unbound name from the argument, got %v", ee)
	}
}
