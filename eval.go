// eval.go: the reduction engine.
//
// OVERVIEW
// ========
// Package topogi implements a small lisp in which every procedure takes
// exactly one parameter. Multi-argument procedures are curried chains of
// single-parameter lambdas, and application reduces by capture-avoiding
// substitution: there is no environment or closure structure at run time.
// A value is simply an expression in normal form, so evaluation is a
// function from trees to trees.
//
// The canonical entry points:
//
//	Eval(e, m, g)        reduce a tree against a definition table
//	EvalSource(src, m)   parse one expression, then reduce it
//	EvalDefault(e)       reduce against a fresh DefaultModule
//
// Reduction is eager (call-by-value) and deterministic: the function
// position evaluates before the argument, list literals evaluate
// left-to-right, and the first error aborts the evaluation with no partial
// result. Conditionals evaluate exactly one branch. Quotation returns its
// inner tree untouched.
//
// SUBSTITUTION
// ------------
// Applying (\ (x) body) to a value substitutes the value for free
// occurrences of x in body. Binders shadow: substitution never enters a
// subtree whose binder rebinds the same name. When a binder's parameter
// occurs free in the substituted value, the binder is alpha-renamed to a
// generated name first, so a free name can never be captured by an
// unrelated lambda. Generated names use the '#' prefix, which the lexer
// reserves; see gensym.go.
//
// ERRORS
// ------
// Eval returns (Nil, *EvalError) on failure. The error carries a Kind plus
// the offending expression or argument list; see errors.go.
//
// Evaluation is pure except for the print builtins, and a single Module may
// serve any number of concurrent Eval calls as long as each call gets its
// own Gen.
package topogi

// Eval reduces e to normal form against the definitions in m, drawing fresh
// names from g when substitution needs to rename a binder.
func Eval(e Expr, m *Module, g *Gen) (Expr, error) {
	switch e.Kind {
	case KindSym:
		v, ok := m.Lookup(e.Str)
		if !ok {
			return Nil, errUnbound(e.Str)
		}
		return v, nil

	case KindApply:
		fn, err := Eval(*e.Fn, m, g)
		if err != nil {
			return Nil, err
		}
		switch fn.Kind {
		case KindLambda:
			arg, err := Eval(*e.Arg, m, g)
			if err != nil {
				return Nil, err
			}
			return Eval(substitute(*fn.Body, fn.Str, arg, g), m, g)
		case KindBuiltin:
			arg, err := Eval(*e.Arg, m, g)
			if err != nil {
				return Nil, err
			}
			return applyBuiltin(fn, arg, m)
		default:
			return Nil, errNotApplicable(fn)
		}

	case KindList:
		items := make([]Expr, len(e.Items))
		for i, it := range e.Items {
			v, err := Eval(it, m, g)
			if err != nil {
				return Nil, err
			}
			items[i] = v
		}
		return List(items...), nil

	case KindIf:
		c, err := Eval(*e.Cond, m, g)
		if err != nil {
			return Nil, err
		}
		if c.Kind != KindBool {
			return Nil, errTypeMismatch("if condition must be a boolean", c)
		}
		if c.Bool {
			return Eval(*e.Then, m, g)
		}
		return Eval(*e.Else, m, g)

	case KindQuote:
		return *e.Val, nil

	case KindLet:
		v, err := Eval(*e.Val, m, g)
		if err != nil {
			return Nil, err
		}
		return Eval(substitute(*e.Body, e.Str, v, g), m, g)

	case KindCase:
		scrut, err := Eval(*e.Val, m, g)
		if err != nil {
			return Nil, err
		}
		for _, c := range e.Clauses {
			if Equal(c.Pattern, scrut) {
				return Eval(c.Result, m, g)
			}
		}
		return Nil, errNoMatch(scrut)

	default:
		// literals, lambdas and builtins are already values
		return e, nil
	}
}

// EvalSource parses src as a single expression and reduces it against m.
func EvalSource(src string, m *Module) (Expr, error) {
	e, err := Parse(src)
	if err != nil {
		return Nil, err
	}
	return Eval(e, m, NewGen())
}

// EvalDefault reduces e against a fresh DefaultModule.
func EvalDefault(e Expr) (Expr, error) {
	return Eval(e, DefaultModule(), NewGen())
}

// applyBuiltin extends fn's accumulated argument list with arg and invokes
// the native once the list reaches its arity. The slice is copied, never
// grown in place: a partially applied builtin value may be shared between
// call sites.
func applyBuiltin(fn Expr, arg Expr, m *Module) (Expr, error) {
	args := make([]Expr, len(fn.Items)+1)
	copy(args, fn.Items)
	args[len(args)-1] = arg
	if len(args) < fn.Native.Arity {
		return Expr{Kind: KindBuiltin, Native: fn.Native, Items: args}, nil
	}
	return fn.Native.Fn(args, m)
}

// substitute replaces free occurrences of name in e with v. Binders that
// rebind name shadow it; a binder whose own parameter occurs free in v is
// alpha-renamed before substitution descends past it. The fresh name is
// drawn clear of the body, of v, and of name itself: the renamed binder
// must not hand its occurrences to the substitution in flight.
func substitute(e Expr, name string, v Expr, g *Gen) Expr {
	switch e.Kind {
	case KindSym:
		if e.Str == name {
			return v
		}
		return e

	case KindLambda:
		if e.Str == name {
			return e
		}
		if occursFree(v, e.Str) {
			fresh := freshName(g, *e.Body, v, Sym(name))
			body := substitute(*e.Body, e.Str, Sym(fresh), g)
			return Lambda(fresh, substitute(body, name, v, g))
		}
		return Lambda(e.Str, substitute(*e.Body, name, v, g))

	case KindApply:
		return Apply(substitute(*e.Fn, name, v, g), substitute(*e.Arg, name, v, g))

	case KindList:
		items := make([]Expr, len(e.Items))
		for i, it := range e.Items {
			items[i] = substitute(it, name, v, g)
		}
		return List(items...)

	case KindIf:
		return If(
			substitute(*e.Cond, name, v, g),
			substitute(*e.Then, name, v, g),
			substitute(*e.Else, name, v, g),
		)

	case KindLet:
		// the bound value sits outside the binder's scope
		val := substitute(*e.Val, name, v, g)
		if e.Str == name {
			return Let(e.Str, val, *e.Body)
		}
		if occursFree(v, e.Str) {
			fresh := freshName(g, *e.Body, v, Sym(name))
			body := substitute(*e.Body, e.Str, Sym(fresh), g)
			return Let(fresh, val, substitute(body, name, v, g))
		}
		return Let(e.Str, val, substitute(*e.Body, name, v, g))

	case KindCase:
		scrut := substitute(*e.Val, name, v, g)
		clauses := make([]Clause, len(e.Clauses))
		for i, c := range e.Clauses {
			if occursSym(c.Pattern, name) {
				// pattern symbols shadow the clause result; the pattern
				// itself is literal data and stays untouched
				clauses[i] = c
				continue
			}
			clauses[i] = Clause{Pattern: c.Pattern, Result: substitute(c.Result, name, v, g)}
		}
		return Case(scrut, clauses...)

	case KindBuiltin:
		// accumulated arguments are values, but a lambda value among them
		// can still hold free names
		if len(e.Items) == 0 {
			return e
		}
		items := make([]Expr, len(e.Items))
		for i, it := range e.Items {
			items[i] = substitute(it, name, v, g)
		}
		return Expr{Kind: KindBuiltin, Native: e.Native, Items: items}

	default:
		// literals and quotations are inert
		return e
	}
}

// occursFree reports whether name occurs free in e. Quoted trees and case
// patterns count as occurrences: they survive into results verbatim, so
// renaming stays conservative about names appearing there.
func occursFree(e Expr, name string) bool {
	switch e.Kind {
	case KindSym:
		return e.Str == name
	case KindLambda:
		return e.Str != name && occursFree(*e.Body, name)
	case KindApply:
		return occursFree(*e.Fn, name) || occursFree(*e.Arg, name)
	case KindList, KindBuiltin:
		for _, it := range e.Items {
			if occursFree(it, name) {
				return true
			}
		}
		return false
	case KindIf:
		return occursFree(*e.Cond, name) || occursFree(*e.Then, name) || occursFree(*e.Else, name)
	case KindQuote:
		return occursSym(*e.Val, name)
	case KindLet:
		if occursFree(*e.Val, name) {
			return true
		}
		return e.Str != name && occursFree(*e.Body, name)
	case KindCase:
		if occursFree(*e.Val, name) {
			return true
		}
		for _, c := range e.Clauses {
			if occursSym(c.Pattern, name) {
				return true
			}
			if occursFree(c.Result, name) {
				return true
			}
		}
		return false
	}
	return false
}

// occursSym reports whether name appears anywhere in e: as a symbol, as a
// binder parameter, or inside quoted data.
func occursSym(e Expr, name string) bool {
	switch e.Kind {
	case KindSym:
		return e.Str == name
	case KindLambda:
		return e.Str == name || occursSym(*e.Body, name)
	case KindApply:
		return occursSym(*e.Fn, name) || occursSym(*e.Arg, name)
	case KindList, KindBuiltin:
		for _, it := range e.Items {
			if occursSym(it, name) {
				return true
			}
		}
		return false
	case KindIf:
		return occursSym(*e.Cond, name) || occursSym(*e.Then, name) || occursSym(*e.Else, name)
	case KindQuote:
		return occursSym(*e.Val, name)
	case KindLet:
		return e.Str == name || occursSym(*e.Val, name) || occursSym(*e.Body, name)
	case KindCase:
		if occursSym(*e.Val, name) {
			return true
		}
		for _, c := range e.Clauses {
			if occursSym(c.Pattern, name) || occursSym(c.Result, name) {
				return true
			}
		}
		return false
	}
	return false
}

// freshName draws generated names until one is unused across the given
// trees. The '#' prefix already keeps generated names apart from anything
// the lexer accepts; the occurs check additionally protects callers that
// re-feed a previous result, which may itself contain generated names.
func freshName(g *Gen, avoid ...Expr) string {
	for {
		n := g.Next()
		clean := true
		for _, e := range avoid {
			if occursSym(e, n) {
				clean = false
				break
			}
		}
		if clean {
			return n
		}
	}
}
