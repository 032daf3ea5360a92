/*
File    : plasma/main.go

Entry point. Delegates all argument parsing and subcommand dispatch to
cmd.Execute (the cobra root).
*/
package main

import (
	"fmt"
	"os"

	"github.com/plasma-lang/plasma/cmd/plasma"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
