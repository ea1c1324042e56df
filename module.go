package topogi

import "sort"

// DefaultModuleName names the module produced by DefaultModule.
const DefaultModuleName = "##default##"

// Module is a definition table: a name plus a map from identifiers to the
// expressions bound to them. Evaluation only ever reads a Module, so a single
// table may back any number of concurrent Eval calls. Definition happens on
// the caller's side, before or between evaluations (module setup, REPL
// definitions); bindings hold already-reduced values, which Eval returns
// from name lookups as-is.
type Module struct {
	name string
	defs map[string]Expr
}

func NewModule(name string) *Module {
	return &Module{name: name, defs: make(map[string]Expr)}
}

func (m *Module) Name() string { return m.name }

// Define binds name to e, replacing any previous binding.
func (m *Module) Define(name string, e Expr) {
	m.defs[name] = e
}

// Lookup returns the expression bound to name.
func (m *Module) Lookup(name string) (Expr, bool) {
	e, ok := m.defs[name]
	return e, ok
}

// Names returns all bound identifiers in sorted order.
func (m *Module) Names() []string {
	out := make([]string, 0, len(m.defs))
	for k := range m.defs {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
