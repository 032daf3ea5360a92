/*
File    : plasma/repl/repl.go

Package repl implements the interactive Read-Eval-Print Loop:
readline for line editing and history, fatih/color for visual
feedback, one Environment held across the whole session so a binding
made on one line is visible on the next.
*/
package repl

import (
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/fatih/color"

	"github.com/plasma-lang/plasma/environment"
	"github.com/plasma-lang/plasma/eval"
	"github.com/plasma-lang/plasma/lexer"
	"github.com/plasma-lang/plasma/objects"
	"github.com/plasma-lang/plasma/parser"
)

var (
	blueColor   = color.New(color.FgBlue)
	yellowColor = color.New(color.FgYellow)
	redColor    = color.New(color.FgRed)
	greenColor  = color.New(color.FgGreen)
	cyanColor   = color.New(color.FgCyan)
)

const defaultPrompt = ">>> "

// Repl holds the settings of an interactive session: the banner text
// shown at startup, the version, and the prompt. Start creates the
// readline instance and the persistent Environment.
type Repl struct {
	Banner  string
	Version string
	Prompt  string
}

// New creates a Repl with the standard ">>> " prompt.
func New(banner, version string) *Repl {
	return &Repl{Banner: banner, Version: version, Prompt: defaultPrompt}
}

func (r *Repl) printBanner(w io.Writer) {
	line := strings.Repeat("-", 48)
	blueColor.Fprintf(w, "%s\n", line)
	greenColor.Fprintf(w, "%s\n", r.Banner)
	blueColor.Fprintf(w, "%s\n", line)
	yellowColor.Fprintf(w, "plasma %s\n", r.Version)
	blueColor.Fprintf(w, "%s\n", line)
	cyanColor.Fprintln(w, "Type an expression and press enter.")
	cyanColor.Fprintln(w, "Type 'exit' or press Ctrl+D to quit.")
	blueColor.Fprintf(w, "%s\n", line)
}

// Start runs the loop until the user exits or input ends. The same
// Environment backs every line evaluated, so closures and bindings
// from earlier input remain live for later input.
func (r *Repl) Start(w io.Writer) {
	r.printBanner(w)

	rl, err := readline.New(r.Prompt)
	if err != nil {
		panic(err)
	}
	defer rl.Close()

	env := environment.New()

	for {
		line, err := rl.Readline()
		if err != nil {
			w.Write([]byte("Good Bye!\n"))
			return
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if line == "exit" {
			w.Write([]byte("Good Bye!\n"))
			return
		}

		rl.SaveHistory(line)
		Evaluate(w, line, env)
	}
}

// Evaluate parses and evaluates one line against env, printing parse
// errors or the evaluated result's rendered form to w. Split out of
// Start so it can be exercised directly by tests without going through
// readline.
func Evaluate(w io.Writer, line string, env *environment.Environment) {
	l := lexer.New(line)
	p := parser.New(l)
	program := p.ParseProgram()

	if errs := p.Errors(); len(errs) > 0 {
		for _, msg := range errs {
			redColor.Fprintf(w, "parse error: %s\n", msg)
		}
		return
	}

	result := eval.Eval(program, env, w)
	if result == nil {
		return
	}
	if result.Type() == objects.ERROR_OBJ {
		redColor.Fprintf(w, "%s\n", result.Inspect())
		return
	}
	yellowColor.Fprintf(w, "%s\n", result.Inspect())
}
