package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/peterh/liner"

	topogi "github.com/topogi-org/topogi-lang"
)

const (
	appName     = "topogi"
	historyFile = ".topogi_history"
	promptMain  = "==> "
	promptCont  = "... "
)

var banner = fmt.Sprintf("topogi %s REPL\nCtrl+C cancels input, Ctrl+D exits. Type :quit to exit.", topogi.Version)

func red(s string) string   { return "\x1b[31m" + s + "\x1b[0m" }
func green(s string) string { return "\x1b[32m" + s + "\x1b[0m" }
func blue(s string) string  { return "\x1b[94m" + s + "\x1b[0m" }

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	switch cmd := os.Args[1]; cmd {
	case "run":
		os.Exit(cmdRun(os.Args[2:]))
	case "repl":
		os.Exit(cmdRepl(os.Args[2:]))
	case "fmt":
		os.Exit(cmdFmt(os.Args[2:]))
	case "version":
		fmt.Println(topogi.Version)
	case "-h", "--help", "help":
		usage()
	default:
		fmt.Fprintf(os.Stderr, "%s: unknown command %q\n", appName, cmd)
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Printf(`topogi %s (built %s)

Usage:
  %s run <file.tp>        Run a program.
  %s repl                 Start the REPL.
  %s fmt [-check] <files> Rewrite programs in canonical form.
  %s version              Print the version.

`, topogi.Version, topogi.BuildDate, appName, appName, appName, appName)
}

// -----------------------------------------------------------------------------
// run
// -----------------------------------------------------------------------------

func cmdRun(args []string) int {
	if len(args) != 1 {
		fmt.Fprintf(os.Stderr, "usage: %s run <file.tp>\n", appName)
		return 2
	}
	file := args[0]

	src, err := os.ReadFile(file)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: cannot read %s: %v\n", appName, file, err)
		return 1
	}

	forms, perr := topogi.ParseProgram(string(src))
	if perr != nil {
		fmt.Fprintln(os.Stderr, topogi.WrapErrorWithName(perr, file, string(src)).Error())
		return 1
	}

	m := topogi.DefaultModule()
	for _, f := range forms {
		v, err := topogi.Eval(f.Expr, m, topogi.NewGen())
		if err != nil {
			fmt.Fprintln(os.Stderr, red(err.Error()))
			return 1
		}
		if f.Name != "" {
			m.Define(f.Name, v)
		}
	}
	return 0
}

// -----------------------------------------------------------------------------
// fmt
// -----------------------------------------------------------------------------

func cmdFmt(args []string) int {
	fs := flag.NewFlagSet("fmt", flag.ContinueOnError)
	check := fs.Bool("check", false, "check format; exit 1 if any file would change")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	files := fs.Args()
	if len(files) == 0 {
		fmt.Fprintf(os.Stderr, "usage: %s fmt [-check] <file.tp> ...\n", appName)
		return 2
	}

	var changed int
	for _, file := range files {
		src, err := os.ReadFile(file)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s: cannot read %s: %v\n", appName, file, err)
			return 1
		}

		forms, perr := topogi.ParseProgram(string(src))
		if perr != nil {
			fmt.Fprintln(os.Stderr, topogi.WrapErrorWithName(perr, file, string(src)).Error())
			return 1
		}

		canon := topogi.FormatProgram(forms)
		if canon == string(src) {
			continue
		}
		changed++
		if *check {
			fmt.Println(file)
			continue
		}
		if err := os.WriteFile(file, []byte(canon), 0o644); err != nil {
			fmt.Fprintf(os.Stderr, "%s: cannot write %s: %v\n", appName, file, err)
			return 1
		}
	}

	if *check && changed > 0 {
		return 1
	}
	return 0
}

// -----------------------------------------------------------------------------
// repl
// -----------------------------------------------------------------------------

func cmdRepl(_ []string) int {
	fmt.Println(banner)

	home, _ := os.UserHomeDir()
	histPath := filepath.Join(home, historyFile)

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	defer func() {
		if f, err := os.Create(histPath); err == nil {
			_, _ = ln.WriteHistory(f)
			_ = f.Close()
		}
	}()

	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc, os.Interrupt, syscall.SIGTERM, syscall.SIGHUP)
	defer signal.Stop(sigc)
	go func() {
		<-sigc
		ln.Close()
		os.Exit(130)
	}()

	if f, err := os.Open(histPath); err == nil {
		_, _ = ln.ReadHistory(f)
		_ = f.Close()
	}

	m := topogi.DefaultModule()

	for {
		code, ok := readByParseProbe(ln, promptMain, promptCont)
		if !ok {
			fmt.Println()
			break
		}

		if strings.HasPrefix(strings.TrimSpace(code), ":") {
			switch strings.TrimSpace(strings.ToLower(code)) {
			case ":quit":
				return 0
			default:
				fmt.Printf("unknown command. Type :quit to exit.\n")
			}
			continue
		}

		if strings.TrimSpace(code) == "" {
			continue
		}

		forms, perr := topogi.ParseProgram(code)
		if perr != nil {
			fmt.Fprintln(os.Stderr, red(topogi.WrapErrorWithSource(perr, code).Error()))
			continue
		}

		for _, f := range forms {
			v, err := topogi.Eval(f.Expr, m, topogi.NewGen())
			if err != nil {
				fmt.Fprintln(os.Stderr, red(err.Error()))
				break
			}
			if f.Name != "" {
				m.Define(f.Name, v)
				fmt.Println(green(f.Name))
				continue
			}
			fmt.Println(blue(topogi.FormatValue(v)))
		}
		ln.AppendHistory(strings.ReplaceAll(code, "\n", " "))
	}

	return 0
}

// readByParseProbe keeps prompting with the continuation prompt while the
// accumulated input still parses as incomplete (unclosed paren or string).
func readByParseProbe(ln *liner.State, prompt, cont string) (string, bool) {
	var b strings.Builder

	for {
		var line string
		var err error
		if b.Len() == 0 {
			line, err = ln.Prompt(prompt)
		} else {
			line, err = ln.Prompt(cont)
		}
		if errors.Is(err, io.EOF) {
			return "", false
		}
		if err != nil {
			return "", true
		}

		if b.Len() > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(line)

		src := b.String()
		if _, perr := topogi.ParseProgram(src); perr != nil && topogi.IsIncomplete(perr) {
			continue
		}
		return src, true
	}
}
