package eval

import (
	"os"
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"
)

// TestMain lets go-snaps clean up obsolete snapshot entries after the
// whole package's tests have run, matching its documented convention.
func TestMain(m *testing.M) {
	v := m.Run()
	snaps.Clean(m)
	os.Exit(v)
}

// TestRenderedScenarios snapshot-tests "source in, rendered value out"
// for end-to-end scenarios exercising arithmetic, functions, strings,
// arrays, closures, and builtins. One rendered string is the natural
// snapshot unit for an interpreter whose whole contract is "text in,
// single value out".
func TestRenderedScenarios(t *testing.T) {
	scenarios := map[string]string{
		"arithmetic_binding":    `var a = 5 + 5; a;`,
		"integer_division_eq":   `var ten = 5 + 5; var res = ten * 5 / 2; res == ten;`,
		"function_application":  `var square = function(n) { n * 2 }; square(13);`,
		"nested_calls":          `var add = function(a, b) { a + b }; add(add(1,2), add(3,4));`,
		"if_else_string":        `if (1 < 2) { "yes" } else { "no" }`,
		"early_return":          `var f = function(x) { return x + 1; x + 2; }; f(10);`,
		"unbound_identifier":    `foo + 1;`,
		"power_precedence":      `2 + 3 ^ 2;`,
		"string_concatenation":  `"x" + ("y" + "z");`,
		"array_literal_render":  `[1, 2 * 2, 3 + 3];`,
		"closure_later_binding": "var c = function() { x }; var x = 10; c();",
		"division_by_zero":      `10 / 0;`,
		"builtin_len_array":     `len([1, 2, 3]);`,
	}

	for name, src := range scenarios {
		t.Run(name, func(t *testing.T) {
			result, _ := testEval(t, src)
			snaps.MatchSnapshot(t, result.Inspect())
		})
	}
}
