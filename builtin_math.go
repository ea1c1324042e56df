package topogi

// registerMathBuiltins: 64-bit signed integer arithmetic. Overflow wraps.
// Division truncates toward zero and rejects a zero divisor.
func registerMathBuiltins(m *Module) {
	registerCurried(m, "+", add)
	registerCurried(m, "-", sub)
	registerCurried(m, "*", mul)
	registerCurried(m, "/", div)
}

func add(args []Expr, _ *Module) (Expr, error) {
	a, b, err := twoInts("+", args)
	if err != nil {
		return Nil, err
	}
	return Int(a + b), nil
}

func sub(args []Expr, _ *Module) (Expr, error) {
	a, b, err := twoInts("-", args)
	if err != nil {
		return Nil, err
	}
	return Int(a - b), nil
}

func mul(args []Expr, _ *Module) (Expr, error) {
	a, b, err := twoInts("*", args)
	if err != nil {
		return Nil, err
	}
	return Int(a * b), nil
}

func div(args []Expr, _ *Module) (Expr, error) {
	a, b, err := twoInts("/", args)
	if err != nil {
		return Nil, err
	}
	if b == 0 {
		return Nil, errDivideByZero(args[0], args[1])
	}
	return Int(a / b), nil
}

func twoInts(name string, args []Expr) (int64, int64, error) {
	a, err := intArg(name, args, 0)
	if err != nil {
		return 0, 0, err
	}
	b, err := intArg(name, args, 1)
	if err != nil {
		return 0, 0, err
	}
	return a, b, nil
}
