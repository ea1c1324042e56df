package topogi

import (
	"fmt"
	"io"
	"os"
)

// Output receives everything the print builtins write. Tests and embedders
// swap it; the default is standard out.
var Output io.Writer = os.Stdout

// registerIOBuiltins: print and println render with the display rules in
// printer.go (text unquoted) and reduce to nil.
func registerIOBuiltins(m *Module) {
	register(m, "print", 1, printVal)
	register(m, "println", 1, printlnVal)
}

// printVal writes the value followed by a single space, so consecutive
// prints land on one line.
func printVal(args []Expr, _ *Module) (Expr, error) {
	fmt.Fprintf(Output, "%s ", args[0].String())
	return Nil, nil
}

func printlnVal(args []Expr, _ *Module) (Expr, error) {
	fmt.Fprintf(Output, "%s\n", args[0].String())
	return Nil, nil
}
