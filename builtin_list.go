package topogi

// registerListBuiltins: list construction and access. Lists are immutable;
// construction returns fresh lists and never touches the argument's backing
// storage.
func registerListBuiltins(m *Module) {
	registerCurried(m, "cons", cons)
	registerCurried(m, "nth", nth)
	register(m, "list", 1, listWrap)
	register(m, "atom?", 1, isAtom)
	register(m, "first", 1, first)
	register(m, "second", 1, second)
	register(m, "third", 1, third)
}

// cons prepends onto a list; a non-list tail yields the two-element list
// (head tail).
func cons(args []Expr, _ *Module) (Expr, error) {
	head, rest := args[0], args[1]
	if rest.Kind == KindList {
		items := make([]Expr, 0, len(rest.Items)+1)
		items = append(items, head)
		items = append(items, rest.Items...)
		return List(items...), nil
	}
	return List(head, rest), nil
}

// nth indexes zero-based.
func nth(args []Expr, _ *Module) (Expr, error) {
	n, err := intArg("nth", args, 0)
	if err != nil {
		return Nil, err
	}
	items, err := listArg("nth", args, 1)
	if err != nil {
		return Nil, err
	}
	if n < 0 || n >= int64(len(items)) {
		return Nil, errInvalidArgs("nth", args)
	}
	return items[n], nil
}

// listWrap builds a one-element list around its argument. Variadic
// (list a b c) source forms are a parser-level list literal; the builtin
// covers first-class uses of the name.
func listWrap(args []Expr, _ *Module) (Expr, error) {
	return List(args[0]), nil
}

func isAtom(args []Expr, _ *Module) (Expr, error) {
	return Bool(args[0].Kind != KindList), nil
}

func first(args []Expr, _ *Module) (Expr, error)  { return listIndex("first", args, 0) }
func second(args []Expr, _ *Module) (Expr, error) { return listIndex("second", args, 1) }
func third(args []Expr, _ *Module) (Expr, error)  { return listIndex("third", args, 2) }

func listIndex(name string, args []Expr, i int) (Expr, error) {
	items, err := listArg(name, args, 0)
	if err != nil {
		return Nil, err
	}
	if i >= len(items) {
		return Nil, errInvalidArgs(name, args)
	}
	return items[i], nil
}
