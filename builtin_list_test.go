package topogi

import "testing"

func Test_Builtin_List_Cons(t *testing.T) {
	wantExpr(t, evalSrc(t, "(cons 1 '(2 3))"), List(Int(1), Int(2), Int(3)))
	wantExpr(t, evalSrc(t, "(cons 1 (list))"), List(Int(1)))
	wantExpr(t, evalSrc(t, "(cons '(1) '(2))"), List(List(Int(1)), Int(2)))

	// a non-list tail pairs up with the head
	wantExpr(t, evalSrc(t, "(cons 1 2)"), List(Int(1), Int(2)))
	wantExpr(t, evalSrc(t, "(cons 1 nil)"), List(Int(1), Nil))

	// the tail list is not shared with the result
	wantExpr(t, evalSrc(t, "(let (xs '(2 3)) (list (cons 1 xs) xs))"),
		List(List(Int(1), Int(2), Int(3)), List(Int(2), Int(3))))
}

func Test_Builtin_List_Constructor(t *testing.T) {
	// in source, list is a variadic literal
	wantExpr(t, evalSrc(t, "(list 1 2 3)"), List(Int(1), Int(2), Int(3)))
	wantExpr(t, evalSrc(t, "(list '(1 2))"), List(List(Int(1), Int(2))))

	// as a value, list wraps its single argument
	wantExpr(t, evalSrc(t, "(let (f list) (f 3))"), List(Int(3)))
}

func Test_Builtin_List_Accessors(t *testing.T) {
	wantInt(t, evalSrc(t, "(first '(1 2))"), 1)
	wantInt(t, evalSrc(t, "(second '(1 2))"), 2)
	wantInt(t, evalSrc(t, "(third '(7 8 9))"), 9)

	ee := evalErr(t, "(third '(1 2))")
	if ee.Kind != ErrInvalidArgs || ee.Name != "third" {
		t.Fatalf("want invalid arguments to third, got %v", ee)
	}
	if len(ee.Args) != 1 {
		t.Fatalf("want the raw argument list, got %v", ee.Args)
	}
	wantExpr(t, ee.Args[0], List(Int(1), Int(2)))

	if ee := evalErr(t, "(first 5)"); ee.Kind != ErrInvalidArgs {
		t.Fatalf("want invalid arguments for a non-list, got %v", ee)
	}
}

func Test_Builtin_List_Nth(t *testing.T) {
	// indexing is zero-based
	wantInt(t, evalSrc(t, "(nth 0 '(5))"), 5)
	wantInt(t, evalSrc(t, "(nth 5 '(1 2 3 4 5 6 7))"), 6)

	for _, src := range []string{
		"(nth 3 '(1 2 3))",
		"(nth -1 '(1))",
		"(nth 0 5)",
	} {
		if ee := evalErr(t, src); ee.Kind != ErrInvalidArgs {
			t.Fatalf("want invalid arguments for %q, got %v", src, ee)
		}
	}
}

func Test_Builtin_List_Atom(t *testing.T) {
	wantBool(t, evalSrc(t, "(atom? 1)"), true)
	wantBool(t, evalSrc(t, `(atom? "s")`), true)
	wantBool(t, evalSrc(t, "(atom? 'a)"), true)
	wantBool(t, evalSrc(t, "(atom? nil)"), true)
	wantBool(t, evalSrc(t, `(atom? (\ (x) x))`), true)

	wantBool(t, evalSrc(t, "(atom? '(1 2))"), false)
	wantBool(t, evalSrc(t, "(atom? (list))"), false)
}
