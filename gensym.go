package topogi

import "strconv"

// genPrefix starts every generated name. The lexer rejects '#' in symbols,
// so source programs can never collide with a generated name.
const genPrefix = "#"

// Gen issues fresh names for alpha-renaming during substitution. It is plain
// counter state threaded explicitly through an evaluation; callers that need
// isolated evaluations (a REPL loop, parallel evaluators over one shared
// module) give each one its own Gen and never share it across goroutines.
type Gen struct {
	n uint64
}

func NewGen() *Gen { return &Gen{} }

// Next returns the next generated name: "#0", "#1", ...
func (g *Gen) Next() string {
	s := genPrefix + strconv.FormatUint(g.n, 10)
	g.n++
	return s
}
