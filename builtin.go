// builtin.go: the native procedure registry and the helpers shared by the
// builtin_*.go catalog files.
package topogi

// NativeFn is the implementation contract for builtin procedures. It
// receives a fixed-length list of already-evaluated arguments plus the
// read-only definition table. Implementations validate their own arguments
// and fail with InvalidArgs carrying the exact list they received.
type NativeFn func(args []Expr, m *Module) (Expr, error)

// Native is one entry of the builtin table. Arity is at least 1:
// application accumulates evaluated arguments on the builtin value and
// invokes Fn exactly when the count reaches Arity, so partial applications
// are ordinary values.
type Native struct {
	Name  string
	Arity int
	Fn    NativeFn
}

// DefaultModule builds the standard definition table: arithmetic,
// comparison, list and string procedures, and printing.
func DefaultModule() *Module {
	m := NewModule(DefaultModuleName)
	registerCoreBuiltins(m)
	registerMathBuiltins(m)
	registerListBuiltins(m)
	registerStringBuiltins(m)
	registerIOBuiltins(m)
	return m
}

// register binds name to a bare builtin value of the given arity.
func register(m *Module, name string, arity int, fn NativeFn) {
	m.Define(name, Expr{Kind: KindBuiltin, Native: &Native{Name: name, Arity: arity, Fn: fn}})
}

// registerCurried binds a binary native wrapped as
// (\ (x) (\ (y) ((#builtin x) y))), so a partial application like (+ 1)
// reduces to an ordinary one-parameter procedure value.
func registerCurried(m *Module, name string, fn NativeFn) {
	n := &Native{Name: name, Arity: 2, Fn: fn}
	inner := ApplyN(Expr{Kind: KindBuiltin, Native: n}, Sym("x"), Sym("y"))
	m.Define(name, Lambda("x", Lambda("y", inner)))
}

// registerCoreBuiltins: structural comparison over every value shape.
func registerCoreBuiltins(m *Module) {
	registerCurried(m, "==", eq)
	registerCurried(m, "/=", notEq)
}

func eq(args []Expr, _ *Module) (Expr, error) {
	return Bool(Equal(args[0], args[1])), nil
}

func notEq(args []Expr, _ *Module) (Expr, error) {
	return Bool(!Equal(args[0], args[1])), nil
}

/* ---------- argument accessors ---------- */

func intArg(name string, args []Expr, i int) (int64, error) {
	if args[i].Kind != KindInt {
		return 0, errInvalidArgs(name, args)
	}
	return args[i].Int, nil
}

func strArg(name string, args []Expr, i int) (string, error) {
	if args[i].Kind != KindStr {
		return "", errInvalidArgs(name, args)
	}
	return args[i].Str, nil
}

func listArg(name string, args []Expr, i int) ([]Expr, error) {
	if args[i].Kind != KindList {
		return nil, errInvalidArgs(name, args)
	}
	return args[i].Items, nil
}

func symArg(name string, args []Expr, i int) (string, error) {
	if args[i].Kind != KindSym {
		return "", errInvalidArgs(name, args)
	}
	return args[i].Str, nil
}
