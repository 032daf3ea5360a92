/*
File    : plasma/cmd/plasma/ast.go

`plasma ast <file>` dumps the parsed tree. Default output is the
source rendering every ast.Node already carries through String();
--dump-ast instead prints an indented node-by-node structural form.
*/
package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/plasma-lang/plasma/ast"
	"github.com/plasma-lang/plasma/lexer"
	"github.com/plasma-lang/plasma/parser"
)

var astDumpStructural bool

var astCmd = &cobra.Command{
	Use:   "ast <file>",
	Short: "Parse a Plasma file and print its AST",
	Args:  cobra.ExactArgs(1),
	RunE:  runAST,
}

func init() {
	rootCmd.AddCommand(astCmd)
	astCmd.Flags().BoolVar(&astDumpStructural, "dump-ast", false, "print an indented node-by-node structural dump instead of the source rendering")
}

func runAST(_ *cobra.Command, args []string) error {
	content, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("reading %s: %w", args[0], err)
	}

	l := lexer.New(string(content))
	p := parser.New(l)
	program := p.ParseProgram()

	if errs := p.Errors(); len(errs) > 0 {
		for _, msg := range errs {
			fmt.Fprintf(os.Stderr, "parse error: %s\n", msg)
		}
		return fmt.Errorf("parsing failed with %d error(s)", len(errs))
	}

	if astDumpStructural {
		dumpASTNode(program, 0)
		return nil
	}
	for _, stmt := range program.Statements {
		fmt.Println(stmt.String())
	}
	return nil
}

// dumpASTNode prints node and its children, one per line, indented two
// spaces per depth level.
func dumpASTNode(node ast.Node, depth int) {
	pad := strings.Repeat("  ", depth)

	switch n := node.(type) {
	case *ast.Program:
		fmt.Printf("%sProgram (%d statements)\n", pad, len(n.Statements))
		for _, s := range n.Statements {
			dumpASTNode(s, depth+1)
		}
	case *ast.VarStatement:
		fmt.Printf("%sVarStatement %s\n", pad, n.Name.Value)
		dumpASTNode(n.Value, depth+1)
	case *ast.ReturnStatement:
		fmt.Printf("%sReturnStatement\n", pad)
		dumpASTNode(n.ReturnValue, depth+1)
	case *ast.ExpressionStatement:
		dumpASTNode(n.Expression, depth)
	case *ast.BlockStatement:
		fmt.Printf("%sBlockStatement (%d statements)\n", pad, len(n.Statements))
		for _, s := range n.Statements {
			dumpASTNode(s, depth+1)
		}
	case *ast.Identifier:
		fmt.Printf("%sIdentifier: %s\n", pad, n.Value)
	case *ast.IntegerLiteral:
		fmt.Printf("%sIntegerLiteral: %d\n", pad, n.Value)
	case *ast.StringLiteral:
		fmt.Printf("%sStringLiteral: %q\n", pad, n.Value)
	case *ast.Boolean:
		fmt.Printf("%sBoolean: %v\n", pad, n.Value)
	case *ast.ArrayLiteral:
		fmt.Printf("%sArrayLiteral (%d elements)\n", pad, len(n.Elements))
		for _, e := range n.Elements {
			dumpASTNode(e, depth+1)
		}
	case *ast.PrefixExpression:
		fmt.Printf("%sPrefixExpression (%s)\n", pad, n.Operator)
		dumpASTNode(n.Right, depth+1)
	case *ast.InfixExpression:
		fmt.Printf("%sInfixExpression (%s)\n", pad, n.Operator)
		dumpASTNode(n.Left, depth+1)
		dumpASTNode(n.Right, depth+1)
	case *ast.IfExpression:
		fmt.Printf("%sIfExpression\n", pad)
		fmt.Printf("%s  Condition:\n", pad)
		dumpASTNode(n.Condition, depth+2)
		fmt.Printf("%s  Consequence:\n", pad)
		dumpASTNode(n.Consequence, depth+2)
		if n.Alternative != nil {
			fmt.Printf("%s  Alternative:\n", pad)
			dumpASTNode(n.Alternative, depth+2)
		}
	case *ast.FunctionLiteral:
		params := make([]string, 0, len(n.Parameters))
		for _, p := range n.Parameters {
			params = append(params, p.Value)
		}
		fmt.Printf("%sFunctionLiteral(%s)\n", pad, strings.Join(params, ", "))
		dumpASTNode(n.Body, depth+1)
	case *ast.CallExpression:
		fmt.Printf("%sCallExpression\n", pad)
		dumpASTNode(n.Function, depth+1)
		for _, a := range n.Arguments {
			dumpASTNode(a, depth+1)
		}
	default:
		fmt.Printf("%s%T: %s\n", pad, node, node.String())
	}
}
