/*
File    : plasma/objects/builtins.go

Package objects - builtins.go holds the builtin-function extension
point. It is deliberately small: `len` and `puts`. Builtins are looked
up only when identifier resolution misses every environment frame, so
user bindings shadow them.
*/
package objects

import (
	"fmt"
	"io"
)

// BuiltinFunction is the signature every builtin implements: it
// receives the writer the evaluator is configured with (for output,
// e.g. puts) and the already-evaluated arguments, and returns a value
// or an Error.
type BuiltinFunction func(w io.Writer, args ...Object) Object

// Builtin wraps a BuiltinFunction as a first-class value so it can be
// bound in an Environment and called like any other function.
type Builtin struct {
	Name string
	Fn   BuiltinFunction
}

func (b *Builtin) Type() Type      { return BUILTIN_OBJ }
func (b *Builtin) Inspect() string { return "builtin function: " + b.Name }

// Builtins is the fixed table of builtin bindings. Adding an entry
// here is the whole extension point; nothing elsewhere needs to
// change.
var Builtins = []*Builtin{
	{Name: "len", Fn: builtinLen},
	{Name: "puts", Fn: builtinPuts},
}

func newError(format string, a ...interface{}) *Error {
	return &Error{Message: fmt.Sprintf(format, a...)}
}

// builtinLen returns the length of a String or Array argument.
func builtinLen(_ io.Writer, args ...Object) Object {
	if len(args) != 1 {
		return newError("wrong number of arguments for len: got=%d, want=1", len(args))
	}
	switch arg := args[0].(type) {
	case *String:
		return &Integer{Value: int64(len(arg.Value))}
	case *Array:
		return &Integer{Value: int64(len(arg.Elements))}
	default:
		return newError("argument to len not supported, got %s", arg.Type())
	}
}

// builtinPuts writes the rendered form of each argument to w,
// newline-separated, and returns Null. It is the only builtin with an
// observable effect, and that effect is confined to the writer the
// evaluator was configured with, not bare stdout.
func builtinPuts(w io.Writer, args ...Object) Object {
	for _, arg := range args {
		fmt.Fprintln(w, arg.Inspect())
	}
	return &Null{}
}
