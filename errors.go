// errors.go: the evaluation error taxonomy plus user-facing wrapping of
// lex/parse errors into caret-annotated snippets.
//
// Evaluation errors carry the offending expression (or argument list) so
// embedders can inspect exactly what failed instead of string-matching the
// message. Lex and parse errors carry 1-based line/column coordinates;
// `WrapErrorWithSource` renders those as a multi-line snippet:
//
//	PARSE ERROR at 2:14: expected ')'
//
//	   1 | (let (x 1)
//	   2 |   (+ x 1
//	     |              ^
//
// Errors of any other type pass through the wrapper unchanged.
package topogi

import (
	"fmt"
	"strings"
)

// ErrKind discriminates evaluation failures.
type ErrKind int

const (
	// ErrUnboundName: a symbol has no binding in the definition table.
	ErrUnboundName ErrKind = iota
	// ErrTypeMismatch: a special form received a value of the wrong shape,
	// for example a non-boolean condition.
	ErrTypeMismatch
	// ErrNotApplicable: the function position reduced to something that is
	// neither a lambda nor a builtin.
	ErrNotApplicable
	// ErrNonExhaustiveMatch: no case clause pattern equalled the scrutinee.
	ErrNonExhaustiveMatch
	// ErrInvalidArgs: a builtin rejected its argument list (wrong type or,
	// for list accessors, too short a list). Args holds the list exactly as
	// the builtin received it.
	ErrInvalidArgs
	// ErrDivideByZero: integer division by zero. Expr holds the offending
	// application of the two operands.
	ErrDivideByZero
)

// EvalError is the error type returned by Eval. Which fields are populated
// depends on Kind: Name for ErrUnboundName and ErrInvalidArgs (the builtin's
// name), Expr for the kinds that capture an offending expression, Args for
// ErrInvalidArgs, Msg for the detail text of ErrTypeMismatch.
type EvalError struct {
	Kind ErrKind
	Name string
	Expr Expr
	Args []Expr
	Msg  string
}

func (e *EvalError) Error() string {
	switch e.Kind {
	case ErrUnboundName:
		return "unbound name: " + e.Name
	case ErrTypeMismatch:
		return fmt.Sprintf("type mismatch: %s, got %s", e.Msg, e.Expr.String())
	case ErrNotApplicable:
		return fmt.Sprintf("cannot apply: %s is not a procedure", e.Expr.String())
	case ErrNonExhaustiveMatch:
		return "no matching case for: " + e.Expr.String()
	case ErrInvalidArgs:
		parts := make([]string, len(e.Args))
		for i, a := range e.Args {
			parts[i] = a.String()
		}
		return fmt.Sprintf("invalid arguments to %s: (%s)", e.Name, strings.Join(parts, " "))
	case ErrDivideByZero:
		return "division by zero: " + e.Expr.String()
	}
	return "evaluation error"
}

func errUnbound(name string) *EvalError {
	return &EvalError{Kind: ErrUnboundName, Name: name}
}

func errTypeMismatch(msg string, e Expr) *EvalError {
	return &EvalError{Kind: ErrTypeMismatch, Msg: msg, Expr: e}
}

func errNotApplicable(e Expr) *EvalError {
	return &EvalError{Kind: ErrNotApplicable, Expr: e}
}

func errNoMatch(scrutinee Expr) *EvalError {
	return &EvalError{Kind: ErrNonExhaustiveMatch, Expr: scrutinee}
}

func errInvalidArgs(name string, args []Expr) *EvalError {
	return &EvalError{Kind: ErrInvalidArgs, Name: name, Args: args}
}

func errDivideByZero(lhs, rhs Expr) *EvalError {
	return &EvalError{Kind: ErrDivideByZero, Expr: Apply(lhs, rhs)}
}

// LexError reports a tokenization failure at a 1-based source position.
// Incomplete marks errors that more input could repair (an unterminated
// string), which the REPL uses to keep reading.
type LexError struct {
	Line, Col  int
	Msg        string
	Incomplete bool
}

func (e *LexError) Error() string {
	return fmt.Sprintf("lex error (line %d, col %d): %s", e.Line, e.Col, e.Msg)
}

// ParseError reports a structural failure at a 1-based source position.
// Incomplete marks errors caused by running out of input (an unclosed
// paren), which the REPL uses to keep reading.
type ParseError struct {
	Line, Col  int
	Msg        string
	Incomplete bool
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error (line %d, col %d): %s", e.Line, e.Col, e.Msg)
}

// IsIncomplete reports whether err is a lex or parse error that further
// input could repair. Interactive frontends probe with this to decide
// between a continuation prompt and reporting the error.
func IsIncomplete(err error) bool {
	switch e := err.(type) {
	case *LexError:
		return e.Incomplete
	case *ParseError:
		return e.Incomplete
	}
	return false
}

// WrapErrorWithSource returns err augmented with a caret-annotated snippet of
// src. It recognizes *LexError and *ParseError; any other error is returned
// unchanged.
func WrapErrorWithSource(err error, src string) error {
	return WrapErrorWithName(err, "", src)
}

// WrapErrorWithName is WrapErrorWithSource with a source label (for example
// a file name) included in the header.
func WrapErrorWithName(err error, srcName, src string) error {
	switch e := err.(type) {
	case *LexError:
		return fmt.Errorf("%s", prettySnippet(src, "LEX ERROR", srcName, e.Line, e.Col, e.Msg))
	case *ParseError:
		return fmt.Errorf("%s", prettySnippet(src, "PARSE ERROR", srcName, e.Line, e.Col, e.Msg))
	default:
		return err
	}
}

// prettySnippet builds the snippet: a header, up to one line of context
// before and after, and a caret under the 1-based column. Coordinates out of
// range are clamped so rendering never fails.
func prettySnippet(src, header, name string, line, col int, msg string) string {
	lines := strings.Split(src, "\n")
	if len(lines) == 0 {
		lines = []string{""}
	}
	if line < 1 {
		line = 1
	}
	if line > len(lines) {
		line = len(lines)
	}
	if col < 1 {
		col = 1
	}

	var b strings.Builder
	if name != "" {
		fmt.Fprintf(&b, "%s in %s at %d:%d: %s\n\n", header, name, line, col, msg)
	} else {
		fmt.Fprintf(&b, "%s at %d:%d: %s\n\n", header, line, col, msg)
	}
	if line > 1 {
		fmt.Fprintf(&b, "%4d | %s\n", line-1, lines[line-2])
	}
	fmt.Fprintf(&b, "%4d | %s\n", line, lines[line-1])
	fmt.Fprintf(&b, "     | %s^\n", strings.Repeat(" ", col-1))
	if line < len(lines) {
		fmt.Fprintf(&b, "%4d | %s\n", line+1, lines[line])
	}
	return b.String()
}
