package repl

import (
	"bytes"
	"testing"

	"github.com/plasma-lang/plasma/environment"

	"github.com/stretchr/testify/require"
)

func TestEvaluatePrintsResult(t *testing.T) {
	var buf bytes.Buffer
	env := environment.New()
	Evaluate(&buf, "5 + 5;", env)
	require.Contains(t, buf.String(), "10")
}

func TestEvaluatePersistsBindingsAcrossCalls(t *testing.T) {
	var buf bytes.Buffer
	env := environment.New()
	Evaluate(&buf, "var x = 40;", env)
	buf.Reset()
	Evaluate(&buf, "x + 2;", env)
	require.Contains(t, buf.String(), "42")
}

func TestEvaluatePrintsParseError(t *testing.T) {
	var buf bytes.Buffer
	env := environment.New()
	Evaluate(&buf, "var = 5;", env)
	require.Contains(t, buf.String(), "parse error")
}

func TestEvaluatePrintsEvalError(t *testing.T) {
	var buf bytes.Buffer
	env := environment.New()
	Evaluate(&buf, "undefinedName;", env)
	require.Contains(t, buf.String(), "ERROR: identifier not found")
}
