/*
File    : plasma/environment/environment.go

Package environment implements the chained name -> value table the
evaluator resolves identifiers against. Frames are created once for
the top-level program and once per function call,
with the new frame's outer link set to the function's captured
environment. This is what gives closures lexical scoping.
*/
package environment

import "github.com/plasma-lang/plasma/objects"

// Environment is one frame of the scope chain: a map from names to
// values plus an optional outer frame. The outer-link graph is always
// a tree; frames do not disappear while any Function value captures
// them (they are ordinary Go heap objects kept alive by that
// reference).
type Environment struct {
	store map[string]objects.Object
	outer *Environment
}

// New creates a top-level environment with no outer scope.
func New() *Environment {
	return &Environment{store: make(map[string]objects.Object)}
}

// NewEnclosed builds a new, empty frame whose outer link is outer.
// Called on function entry: the new call frame's outer is the
// function's captured defining environment, not the caller's
// environment, which is what makes scoping lexical rather than
// dynamic.
func NewEnclosed(outer *Environment) *Environment {
	return &Environment{store: make(map[string]objects.Object), outer: outer}
}

// Get searches this frame, then recurses into the outer frame, until
// the name is found or the chain is exhausted.
func (e *Environment) Get(name string) (objects.Object, bool) {
	obj, ok := e.store[name]
	if !ok && e.outer != nil {
		return e.outer.Get(name)
	}
	return obj, ok
}

// Set binds name unconditionally in this frame, shadowing (but not
// touching) any binding of the same name in an outer frame.
//
// Environment is shared by pointer, never copied on capture: a
// Function closure holds a *Environment, so a later Set here is
// visible through every closure that captured this frame. Snapshotting
// bindings at capture time would break that contract.
func (e *Environment) Set(name string, val objects.Object) objects.Object {
	e.store[name] = val
	return val
}
