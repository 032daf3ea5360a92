/*
File    : plasma/cmd/plasma/run.go

`plasma run <file>` executes a source file once and prints the
rendered value of its last statement. Exit code is 0 on successful
execution even if the program itself yielded an Error value (the error
is printed, not raised), and 0 for a file that cannot be read, with a
"[Error]" line printed.
*/
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/plasma-lang/plasma/environment"
	"github.com/plasma-lang/plasma/eval"
	"github.com/plasma-lang/plasma/lexer"
	"github.com/plasma-lang/plasma/parser"
)

var runCmd = &cobra.Command{
	Use:   "run <file>",
	Short: "Execute a Plasma source file and print its rendered result",
	Long: `Read a Plasma source file, execute it once, and print the rendered
form of the last value it produces. Parse errors and evaluation errors
are both printed to standard output and do not fail the process.`,
	Args: cobra.ExactArgs(1),
	RunE: runFile,
}

func init() {
	rootCmd.AddCommand(runCmd)
}

func runFile(_ *cobra.Command, args []string) error {
	filename := args[0]

	content, err := os.ReadFile(filename)
	if err != nil {
		fmt.Printf("[Error] could not read file %q: %v\n", filename, err)
		return nil
	}

	l := lexer.New(string(content))
	p := parser.New(l)
	program := p.ParseProgram()

	if errs := p.Errors(); len(errs) > 0 {
		for _, msg := range errs {
			fmt.Printf("[Error] %s\n", msg)
		}
		return nil
	}

	env := environment.New()
	result := eval.Eval(program, env, os.Stdout)
	if result == nil {
		return nil
	}
	fmt.Println(result.Inspect())
	return nil
}
