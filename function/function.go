/*
File    : plasma/function/function.go

Package function holds the Function object, split out of package
objects to avoid an import cycle: a Function needs
environment.Environment, and environment needs objects.Object.
*/
package function

import (
	"strings"

	"github.com/plasma-lang/plasma/ast"
	"github.com/plasma-lang/plasma/environment"
	"github.com/plasma-lang/plasma/objects"
)

// Function is a closure: a function literal's parameters and body
// together with the environment in which it was defined. Capturing
// Env by pointer (not by value) is what lets the closure observe
// bindings made in its defining scope after the closure itself was
// created.
type Function struct {
	Parameters []*ast.Identifier
	Body       *ast.BlockStatement
	Env        *environment.Environment
}

func (f *Function) Type() objects.Type { return objects.FUNCTION_OBJ }

// Inspect renders "function(p1, p2, ...) { <body text> }".
func (f *Function) Inspect() string {
	var out strings.Builder
	params := make([]string, 0, len(f.Parameters))
	for _, p := range f.Parameters {
		params = append(params, p.String())
	}
	out.WriteString("function(")
	out.WriteString(strings.Join(params, ", "))
	out.WriteString(") { ")
	out.WriteString(f.Body.String())
	out.WriteString(" }")
	return out.String()
}
