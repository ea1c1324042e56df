// parser.go: tokens to expression trees.
//
// The grammar is parenthesized prefix syntax. In code position a form is a
// special form when its head is one of the keywords below, and a curried
// application chain otherwise:
//
//	()                      unit
//	(\ (p1 .. pn) body)     lambda, nested per parameter
//	(if c t e)              conditional
//	(let (x v) body)        local binding
//	(case e ((p r) ...))    match, patterns are data
//	(list e1 .. en)         list literal, elements evaluated eagerly
//	(f a b)                 application chain ((f a) b)
//	(e)                     grouping
//	'e                      quotation, e parsed as data
//
// In data position (inside quotes and case patterns) there are no keywords:
// parens build lists, atoms stand for themselves, and ' nests quotation.
// The literals nil, true and false are recognized in both positions.
//
// ParseProgram additionally accepts (define name expr) at the top level and
// returns it as a Form for the driver to install in a definition table.
package topogi

import "fmt"

// Form is one top-level item of a program: a definition to install (Name
// non-empty) or a bare expression to evaluate.
type Form struct {
	Name string
	Expr Expr
}

// Parse reads src as a single expression.
func Parse(src string) (Expr, error) {
	toks, err := Lex(src)
	if err != nil {
		return Nil, err
	}
	p := &parser{toks: toks}
	e, err := p.parseExpr()
	if err != nil {
		return Nil, err
	}
	if t := p.peek(); t.Type != EOF {
		return Nil, p.errAt(t, "unexpected trailing input")
	}
	return e, nil
}

// ParseProgram reads src as a sequence of top-level forms.
func ParseProgram(src string) ([]Form, error) {
	toks, err := Lex(src)
	if err != nil {
		return nil, err
	}
	p := &parser{toks: toks}
	var forms []Form
	for p.peek().Type != EOF {
		f, err := p.parseForm()
		if err != nil {
			return nil, err
		}
		forms = append(forms, f)
	}
	return forms, nil
}

type parser struct {
	toks []Token
	pos  int
}

func (p *parser) peek() Token { return p.toks[p.pos] }

func (p *parser) peekAt(n int) Token {
	i := p.pos + n
	if i >= len(p.toks) {
		i = len(p.toks) - 1 // the trailing EOF token
	}
	return p.toks[i]
}

func (p *parser) next() Token {
	t := p.toks[p.pos]
	if t.Type != EOF {
		p.pos++
	}
	return t
}

func (p *parser) errAt(t Token, format string, args ...any) *ParseError {
	return &ParseError{
		Line:       t.Line,
		Col:        t.Col,
		Msg:        fmt.Sprintf(format, args...),
		Incomplete: t.Type == EOF,
	}
}

func (p *parser) expectRParen(what string) error {
	t := p.next()
	if t.Type != RPAREN {
		return p.errAt(t, "expected ')' to close %s", what)
	}
	return nil
}

// parseForm handles the top-level grammar, where define is legal.
func (p *parser) parseForm() (Form, error) {
	if p.peek().Type == LPAREN && p.peekAt(1).Type == SYMBOL && p.peekAt(1).Text == "define" {
		p.next() // (
		p.next() // define
		name, err := p.binder("definition")
		if err != nil {
			return Form{}, err
		}
		e, err := p.parseExpr()
		if err != nil {
			return Form{}, err
		}
		if err := p.expectRParen("define"); err != nil {
			return Form{}, err
		}
		return Form{Name: name, Expr: e}, nil
	}
	e, err := p.parseExpr()
	if err != nil {
		return Form{}, err
	}
	return Form{Expr: e}, nil
}

func (p *parser) parseExpr() (Expr, error) {
	t := p.next()
	switch t.Type {
	case INT:
		return Int(t.Int), nil
	case STRING:
		return Str(t.Text), nil
	case SYMBOL:
		return atomBySymbol(t.Text), nil
	case QUOTE:
		inner, err := p.parseData()
		if err != nil {
			return Nil, err
		}
		return Quote(inner), nil
	case LPAREN:
		return p.parseParen()
	case RPAREN:
		return Nil, p.errAt(t, "unexpected ')'")
	case BACKSLASH:
		return Nil, p.errAt(t, `'\' belongs inside a lambda form`)
	default:
		return Nil, p.errAt(t, "unexpected end of input")
	}
}

// parseParen dispatches a code-position form after its '(' was consumed.
func (p *parser) parseParen() (Expr, error) {
	switch head := p.peek(); head.Type {
	case RPAREN:
		p.next()
		return Nil, nil
	case BACKSLASH:
		p.next()
		return p.parseLambda()
	case SYMBOL:
		switch head.Text {
		case "if":
			p.next()
			return p.parseIf()
		case "let":
			p.next()
			return p.parseLet()
		case "case":
			p.next()
			return p.parseCase()
		case "list":
			p.next()
			return p.parseList()
		case "define":
			return Nil, p.errAt(head, "define is only allowed at the top level")
		}
	}
	return p.parseApplication()
}

// parseLambda reads (p1 .. pn) body after the '\' and folds the parameters
// into nested single-parameter lambdas.
func (p *parser) parseLambda() (Expr, error) {
	if t := p.next(); t.Type != LPAREN {
		return Nil, p.errAt(t, "expected parameter list after '\\'")
	}
	var params []string
	for p.peek().Type != RPAREN {
		name, err := p.binder("lambda")
		if err != nil {
			return Nil, err
		}
		params = append(params, name)
	}
	rp := p.next()
	if len(params) == 0 {
		return Nil, p.errAt(rp, "lambda needs at least one parameter")
	}
	body, err := p.parseExpr()
	if err != nil {
		return Nil, err
	}
	if err := p.expectRParen("lambda"); err != nil {
		return Nil, err
	}
	for i := len(params) - 1; i >= 0; i-- {
		body = Lambda(params[i], body)
	}
	return body, nil
}

func (p *parser) parseIf() (Expr, error) {
	cond, err := p.parseExpr()
	if err != nil {
		return Nil, err
	}
	then, err := p.parseExpr()
	if err != nil {
		return Nil, err
	}
	els, err := p.parseExpr()
	if err != nil {
		return Nil, err
	}
	if err := p.expectRParen("if"); err != nil {
		return Nil, err
	}
	return If(cond, then, els), nil
}

func (p *parser) parseLet() (Expr, error) {
	if t := p.next(); t.Type != LPAREN {
		return Nil, p.errAt(t, "expected (name value) after 'let'")
	}
	name, err := p.binder("let")
	if err != nil {
		return Nil, err
	}
	val, err := p.parseExpr()
	if err != nil {
		return Nil, err
	}
	if err := p.expectRParen("let binding"); err != nil {
		return Nil, err
	}
	body, err := p.parseExpr()
	if err != nil {
		return Nil, err
	}
	if err := p.expectRParen("let"); err != nil {
		return Nil, err
	}
	return Let(name, val, body), nil
}

func (p *parser) parseCase() (Expr, error) {
	scrut, err := p.parseExpr()
	if err != nil {
		return Nil, err
	}
	if t := p.next(); t.Type != LPAREN {
		return Nil, p.errAt(t, "expected clause list after the case scrutinee")
	}
	var clauses []Clause
	for p.peek().Type == LPAREN {
		p.next()
		pat, err := p.parseData()
		if err != nil {
			return Nil, err
		}
		res, err := p.parseExpr()
		if err != nil {
			return Nil, err
		}
		if err := p.expectRParen("case clause"); err != nil {
			return Nil, err
		}
		clauses = append(clauses, Clause{Pattern: pat, Result: res})
	}
	if err := p.expectRParen("clause list"); err != nil {
		return Nil, err
	}
	if err := p.expectRParen("case"); err != nil {
		return Nil, err
	}
	return Case(scrut, clauses...), nil
}

func (p *parser) parseList() (Expr, error) {
	var items []Expr
	for p.peek().Type != RPAREN && p.peek().Type != EOF {
		e, err := p.parseExpr()
		if err != nil {
			return Nil, err
		}
		items = append(items, e)
	}
	if err := p.expectRParen("list"); err != nil {
		return Nil, err
	}
	return List(items...), nil
}

// parseApplication folds (f a b ..) into a curried chain; a single
// parenthesized expression is plain grouping.
func (p *parser) parseApplication() (Expr, error) {
	fn, err := p.parseExpr()
	if err != nil {
		return Nil, err
	}
	var args []Expr
	for p.peek().Type != RPAREN && p.peek().Type != EOF {
		a, err := p.parseExpr()
		if err != nil {
			return Nil, err
		}
		args = append(args, a)
	}
	if err := p.expectRParen("application"); err != nil {
		return Nil, err
	}
	return ApplyN(fn, args...), nil
}

// parseData reads a tree in data position: no keywords, parens build lists.
func (p *parser) parseData() (Expr, error) {
	t := p.next()
	switch t.Type {
	case INT:
		return Int(t.Int), nil
	case STRING:
		return Str(t.Text), nil
	case SYMBOL:
		return atomBySymbol(t.Text), nil
	case BACKSLASH:
		return Sym(`\`), nil
	case QUOTE:
		inner, err := p.parseData()
		if err != nil {
			return Nil, err
		}
		return Quote(inner), nil
	case LPAREN:
		var items []Expr
		for p.peek().Type != RPAREN && p.peek().Type != EOF {
			e, err := p.parseData()
			if err != nil {
				return Nil, err
			}
			items = append(items, e)
		}
		if err := p.expectRParen("list"); err != nil {
			return Nil, err
		}
		return List(items...), nil
	case RPAREN:
		return Nil, p.errAt(t, "unexpected ')'")
	default:
		return Nil, p.errAt(t, "unexpected end of input")
	}
}

// binder reads a name token that may legally bind: a symbol other than the
// three literal words.
func (p *parser) binder(where string) (string, error) {
	t := p.next()
	if t.Type != SYMBOL {
		return "", p.errAt(t, "expected a name in %s", where)
	}
	switch t.Text {
	case "nil", "true", "false":
		return "", p.errAt(t, "cannot bind literal %q", t.Text)
	}
	return t.Text, nil
}

func atomBySymbol(text string) Expr {
	switch text {
	case "nil":
		return Nil
	case "true":
		return Bool(true)
	case "false":
		return Bool(false)
	}
	return Sym(text)
}
