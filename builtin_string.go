package topogi

// registerStringBuiltins: text procedures. All indexing is rune-based, so a
// multi-byte character counts as one.
func registerStringBuiltins(m *Module) {
	registerCurried(m, "string-append", stringAppend)
	register(m, "string-head", 1, stringHead)
	register(m, "string-tail", 1, stringTail)
	register(m, "string-init", 1, stringInit)
	register(m, "string-last", 1, stringLast)
	register(m, "symbol->string", 1, symbolToString)
}

func stringAppend(args []Expr, _ *Module) (Expr, error) {
	a, err := strArg("string-append", args, 0)
	if err != nil {
		return Nil, err
	}
	b, err := strArg("string-append", args, 1)
	if err != nil {
		return Nil, err
	}
	return Str(a + b), nil
}

// stringHead returns the first character; empty in, empty out.
func stringHead(args []Expr, _ *Module) (Expr, error) {
	s, err := strArg("string-head", args, 0)
	if err != nil {
		return Nil, err
	}
	r := []rune(s)
	if len(r) == 0 {
		return Str(""), nil
	}
	return Str(string(r[0])), nil
}

// stringTail drops the first character; empty in, empty out.
func stringTail(args []Expr, _ *Module) (Expr, error) {
	s, err := strArg("string-tail", args, 0)
	if err != nil {
		return Nil, err
	}
	r := []rune(s)
	if len(r) == 0 {
		return Str(""), nil
	}
	return Str(string(r[1:])), nil
}

// stringInit drops the last character. The empty string has no last
// character to drop, so it is rejected.
func stringInit(args []Expr, _ *Module) (Expr, error) {
	s, err := strArg("string-init", args, 0)
	if err != nil {
		return Nil, err
	}
	r := []rune(s)
	if len(r) == 0 {
		return Nil, errInvalidArgs("string-init", args)
	}
	return Str(string(r[:len(r)-1])), nil
}

// stringLast returns the last character; empty in, empty out.
func stringLast(args []Expr, _ *Module) (Expr, error) {
	s, err := strArg("string-last", args, 0)
	if err != nil {
		return Nil, err
	}
	r := []rune(s)
	if len(r) == 0 {
		return Str(""), nil
	}
	return Str(string(r[len(r)-1])), nil
}

func symbolToString(args []Expr, _ *Module) (Expr, error) {
	name, err := symArg("symbol->string", args, 0)
	if err != nil {
		return Nil, err
	}
	return Str(name), nil
}
