/*
File    : plasma/cmd/plasma/root.go

Package cmd wires the cobra command tree. Running plasma with no
arguments starts the REPL, and `plasma <file>` runs the file like
`plasma run <file>`; run/lex/ast are the file-oriented subcommands.
*/
package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/plasma-lang/plasma/repl"
)

// Version is the interpreter version string, not tied to any VCS
// tagging scheme here since this is a standalone interpreter, not a
// released product.
var Version = "0.1.0"

const banner = "" +
	"  ___  _\n" +
	" | _ \\| | __ _  ___ _ __  __ _\n" +
	" |  _/| |/ _` |/ __| '_ \\/ _` |\n" +
	" |_|  |_|\\__,_|\\___| .__/\\__,_|\n" +
	"                    |_|"

var rootCmd = &cobra.Command{
	Use:     "plasma [file]",
	Short:   "Plasma expression-language interpreter",
	Long:    "Plasma is a small C-like expression language: lexer, Pratt parser, and tree-walking evaluator.",
	Version: Version,
	Args:    cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		// `plasma somefile` behaves like `plasma run somefile`; with no
		// argument the REPL starts.
		if len(args) == 1 {
			return runFile(cmd, args)
		}
		repl.New(banner, Version).Start(os.Stdout)
		return nil
	},
}

// Execute runs the root command, dispatching to whichever subcommand
// the arguments select (or, with none, to the root's own file-or-REPL
// RunE).
func Execute() error {
	return rootCmd.Execute()
}
