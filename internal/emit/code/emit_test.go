package code

import (
	"testing"

	"github.com/dekarrin/compiledfa/internal/automaton"
	"github.com/stretchr/testify/assert"
)

func buildAB() *automaton.Automaton {
	a := automaton.New("AcceptsAB")
	s0 := a.AddState("s0", false)
	s1 := a.AddState("s1", true)
	a.DeclareSymbol('a')
	a.DeclareSymbol('b')
	a.SetInitial(s0)
	a.AddTransition(s0, s1, 'a')
	a.AddTransition(s1, s1, 'b')
	return a
}

func TestEmitContainsFunctionSignature(t *testing.T) {
	out := Emit(buildAB())
	assert.Contains(t, out, "int AcceptsAB(const char* str)")
}

func TestEmitGotoInitialState(t *testing.T) {
	out := Emit(buildAB())
	assert.Contains(t, out, "goto s0;")
}

func TestEmitLabelsEveryState(t *testing.T) {
	out := Emit(buildAB())
	assert.Contains(t, out, "s0: c = *str++;")
	assert.Contains(t, out, "s1: c = *str++;")
}

func TestEmitAcceptReturnsOne(t *testing.T) {
	out := Emit(buildAB())
	assert.Contains(t, out, "return 1;")
}

func TestEmitUndeclaredTransitionReturnsZero(t *testing.T) {
	// s0 has no transition declared on 'b'.
	out := Emit(buildAB())
	assert.Contains(t, out, "} else if (c == 'b') {\n\t\treturn 0;\n\t}")
}

func TestEmitFinalElseReturnsZero(t *testing.T) {
	out := Emit(buildAB())
	assert.Contains(t, out, "else {\n\t\treturn 0;\n\t}\n")
}
