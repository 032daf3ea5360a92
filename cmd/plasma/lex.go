/*
File    : plasma/cmd/plasma/lex.go

`plasma lex <file>` dumps the token stream the lexer produces. Useful
for debugging the lexer in isolation from the parser.
*/
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/plasma-lang/plasma/lexer"
	"github.com/plasma-lang/plasma/token"
)

var lexCmd = &cobra.Command{
	Use:   "lex <file>",
	Short: "Tokenize a Plasma file and print the resulting tokens",
	Args:  cobra.ExactArgs(1),
	RunE:  runLex,
}

func init() {
	rootCmd.AddCommand(lexCmd)
}

func runLex(_ *cobra.Command, args []string) error {
	content, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("reading %s: %w", args[0], err)
	}

	l := lexer.New(string(content))
	for {
		tok := l.NextToken()
		printToken(tok)
		if tok.Type == token.EOF {
			break
		}
	}
	return nil
}

func printToken(tok token.Token) {
	if tok.Literal == "" {
		fmt.Printf("%-10s\n", tok.Type)
		return
	}
	fmt.Printf("%-10s %q\n", tok.Type, tok.Literal)
}
