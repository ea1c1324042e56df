// ast.go: the expression tree shared by the parser, the evaluator and the
// printer. Evaluation rewrites trees into trees, so there is no separate
// runtime value type: a value is an expression in normal form.
//
// Trees are treated as immutable everywhere. Reduction and substitution build
// new nodes and may share untouched subtrees; nothing in this package mutates
// a node after construction. The one place where sharing would bite, hidden
// slice capacity when a native call accumulates arguments, copies explicitly
// (see eval.go).
package topogi

// ExprKind discriminates the variants of Expr.
type ExprKind uint8

const (
	KindNil ExprKind = iota // unit value, also the zero Expr
	KindBool
	KindInt
	KindStr
	KindSym
	KindLambda
	KindApply
	KindList
	KindIf
	KindQuote
	KindLet
	KindCase
	KindBuiltin
)

// Expr is a tagged union. Which fields are meaningful depends on Kind:
//
//	KindNil      (no fields)
//	KindBool     Bool
//	KindInt      Int
//	KindStr      Str (text contents)
//	KindSym      Str (identifier)
//	KindLambda   Str (parameter), Body
//	KindApply    Fn, Arg
//	KindList     Items
//	KindIf       Cond, Then, Else
//	KindQuote    Val (inner tree, never reduced)
//	KindLet      Str (binder), Val (bound value), Body
//	KindCase     Val (scrutinee), Clauses
//	KindBuiltin  Native, Items (arguments accumulated so far)
//
// Every procedure takes exactly one parameter; multi-argument application is
// a chain of nested KindApply nodes and multi-parameter lambdas are nested
// KindLambda nodes (the parser provides the sugar).
type Expr struct {
	Kind ExprKind

	Bool bool
	Int  int64
	Str  string

	Fn   *Expr
	Arg  *Expr
	Val  *Expr
	Body *Expr

	Cond *Expr
	Then *Expr
	Else *Expr

	Items   []Expr
	Clauses []Clause

	Native *Native
}

// Clause is one (pattern, result) pair of a case expression. Patterns are
// literal trees compared structurally against the scrutinee; they are never
// evaluated and never rewritten by substitution.
type Clause struct {
	Pattern Expr
	Result  Expr
}

// Nil is the unit value.
var Nil = Expr{Kind: KindNil}

func Bool(b bool) Expr { return Expr{Kind: KindBool, Bool: b} }
func Int(n int64) Expr { return Expr{Kind: KindInt, Int: n} }
func Str(s string) Expr { return Expr{Kind: KindStr, Str: s} }
func Sym(name string) Expr { return Expr{Kind: KindSym, Str: name} }

func Lambda(param string, body Expr) Expr {
	return Expr{Kind: KindLambda, Str: param, Body: &body}
}

func Apply(fn, arg Expr) Expr {
	return Expr{Kind: KindApply, Fn: &fn, Arg: &arg}
}

// ApplyN folds a curried application chain: ApplyN(f, a, b) is ((f a) b).
func ApplyN(fn Expr, args ...Expr) Expr {
	for _, a := range args {
		fn = Apply(fn, a)
	}
	return fn
}

func List(items ...Expr) Expr { return Expr{Kind: KindList, Items: items} }

func If(cond, then, els Expr) Expr {
	return Expr{Kind: KindIf, Cond: &cond, Then: &then, Else: &els}
}

func Quote(inner Expr) Expr { return Expr{Kind: KindQuote, Val: &inner} }

func Let(name string, val, body Expr) Expr {
	return Expr{Kind: KindLet, Str: name, Val: &val, Body: &body}
}

func Case(scrutinee Expr, clauses ...Clause) Expr {
	return Expr{Kind: KindCase, Val: &scrutinee, Clauses: clauses}
}

// Equal reports deep structural equality. Symbols compare by name, so two
// lambdas with different parameter names are unequal even when they are
// alpha-equivalent. Builtin values compare by native identity plus their
// accumulated arguments.
func Equal(a, b Expr) bool {
	if a.Kind != b.Kind {
		return false
	}
	switch a.Kind {
	case KindNil:
		return true
	case KindBool:
		return a.Bool == b.Bool
	case KindInt:
		return a.Int == b.Int
	case KindStr, KindSym:
		return a.Str == b.Str
	case KindLambda:
		return a.Str == b.Str && Equal(*a.Body, *b.Body)
	case KindApply:
		return Equal(*a.Fn, *b.Fn) && Equal(*a.Arg, *b.Arg)
	case KindList:
		return equalSlices(a.Items, b.Items)
	case KindIf:
		return Equal(*a.Cond, *b.Cond) && Equal(*a.Then, *b.Then) && Equal(*a.Else, *b.Else)
	case KindQuote:
		return Equal(*a.Val, *b.Val)
	case KindLet:
		return a.Str == b.Str && Equal(*a.Val, *b.Val) && Equal(*a.Body, *b.Body)
	case KindCase:
		if !Equal(*a.Val, *b.Val) || len(a.Clauses) != len(b.Clauses) {
			return false
		}
		for i := range a.Clauses {
			if !Equal(a.Clauses[i].Pattern, b.Clauses[i].Pattern) ||
				!Equal(a.Clauses[i].Result, b.Clauses[i].Result) {
				return false
			}
		}
		return true
	case KindBuiltin:
		return a.Native == b.Native && equalSlices(a.Items, b.Items)
	}
	return false
}

func equalSlices(a, b []Expr) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !Equal(a[i], b[i]) {
			return false
		}
	}
	return true
}
