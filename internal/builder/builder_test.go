package builder

import (
	"testing"

	"github.com/dekarrin/compiledfa/internal/dfaxml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleDoc = `<dfa name="Sample">
	<states>
		<accept><s1/></accept>
		<reject><s0/></reject>
	</states>
	<initialState><s0/></initialState>
	<transitions>
		<s0><s1>a</s1><s0>b</s0></s0>
		<s1><s1>ab</s1></s1>
	</transitions>
</dfa>`

func mustParse(t *testing.T, src string) *dfaxml.Document {
	t.Helper()
	doc, err := dfaxml.ParseString(src)
	require.NoError(t, err)
	return doc
}

func TestBuildProducesExpectedAutomaton(t *testing.T) {
	doc := mustParse(t, sampleDoc)
	a, err := Build(doc, Limits{})
	require.NoError(t, err)

	assert.Equal(t, "Sample", a.Name)
	assert.Equal(t, 2, a.NumStates())
	assert.Equal(t, []byte{'a', 'b'}, a.Alphabet)

	states := a.States()
	var s0, s1 int = -1, -1
	for _, s := range states {
		switch s.Name {
		case "s0":
			s0 = s.ID
			assert.False(t, s.Accept)
		case "s1":
			s1 = s.ID
			assert.True(t, s.Accept)
		}
	}
	require.NotEqual(t, -1, s0)
	require.NotEqual(t, -1, s1)
	assert.Equal(t, s0, a.Initial())

	target, ok := a.Next(s0, 'a')
	require.True(t, ok)
	assert.Equal(t, s1, target)

	target, ok = a.Next(s0, 'b')
	require.True(t, ok)
	assert.Equal(t, s0, target)
}

func TestBuildRejectsWrongRootTag(t *testing.T) {
	doc := mustParse(t, `<notdfa><states/><initialState/><transitions/></notdfa>`)
	_, err := Build(doc, Limits{})
	require.Error(t, err)
}

func TestBuildRejectsWrongChildCount(t *testing.T) {
	doc := mustParse(t, `<dfa><states/><initialState/></dfa>`)
	_, err := Build(doc, Limits{})
	require.Error(t, err)
}

func TestBuildRejectsMultipleInitialStates(t *testing.T) {
	doc := mustParse(t, `<dfa>
		<states><accept><s0/><s1/></accept></states>
		<initialState><s0/><s1/></initialState>
		<transitions></transitions>
	</dfa>`)
	_, err := Build(doc, Limits{})
	require.Error(t, err)
}

func TestBuildRejectsSymbolOutsidePredeclaredAlphabet(t *testing.T) {
	doc := mustParse(t, `<dfa alphabet="a">
		<states><accept><s0/></accept></states>
		<initialState><s0/></initialState>
		<transitions><s0><s0>b</s0></s0></transitions>
	</dfa>`)
	_, err := Build(doc, Limits{})
	require.Error(t, err)
}

func TestBuildInfersAlphabetInFirstOccurrenceOrder(t *testing.T) {
	doc := mustParse(t, `<dfa>
		<states><accept><s0/></accept></states>
		<initialState><s0/></initialState>
		<transitions><s0><s0>cab</s0></s0></transitions>
	</dfa>`)
	a, err := Build(doc, Limits{})
	require.NoError(t, err)
	assert.Equal(t, []byte{'c', 'a', 'b'}, a.Alphabet)
}

func TestBuildRejectsDuplicateStateName(t *testing.T) {
	doc := mustParse(t, `<dfa>
		<states>
			<accept><s0/></accept>
			<reject><s0/></reject>
		</states>
		<initialState><s0/></initialState>
		<transitions></transitions>
	</dfa>`)
	_, err := Build(doc, Limits{})
	require.Error(t, err)
}

func TestBuildLastTransitionWins(t *testing.T) {
	doc := mustParse(t, `<dfa>
		<states><accept><s0/><s1/></accept></states>
		<initialState><s0/></initialState>
		<transitions>
			<s0><s0>a</s0><s1>a</s1></s0>
		</transitions>
	</dfa>`)
	a, err := Build(doc, Limits{})
	require.NoError(t, err)

	var s1 int
	for _, s := range a.States() {
		if s.Name == "s1" {
			s1 = s.ID
		}
	}
	target, ok := a.Next(a.Initial(), 'a')
	require.True(t, ok)
	assert.Equal(t, s1, target)
}
