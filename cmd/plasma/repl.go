/*
File    : plasma/cmd/plasma/repl.go

`plasma repl` is the explicit spelling of the interactive loop that
root.go's bare RunE also launches when no subcommand is given.
*/
package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/plasma-lang/plasma/repl"
)

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Start the interactive Plasma REPL",
	RunE: func(cmd *cobra.Command, args []string) error {
		repl.New(banner, Version).Start(os.Stdout)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(replCmd)
}
