// Package automaton implements the DFA model described in spec.md
// [MODULE] Automaton Model: states, an ordered alphabet, and a dense
// state×symbol transition table, with explicit per-cell declared-ness so
// an undeclared transition is distinguishable from one that legitimately
// targets state 0 (spec.md §3, §9 "Transition totality").
//
// The public method shapes (AddState, AddTransition, String) are grounded
// on dekarrin-tunaq's internal/ictiobus/automaton.DFA[E]/DFAState[E], generalized
// away from that type's generic LR-item payload down to the plain
// (name, accepting) state value this compiler needs, and adapted from a
// map-keyed representation to the dense array-of-states plus
// state×byte transition matrix that original_source/include/dfa.h
// specifies.
package automaton

import (
	"fmt"
	"strings"
)

// State is one node of the automaton.
type State struct {
	ID       int
	Name     string
	Accept   bool
}

type cell struct {
	target  int
	defined bool
}

// Automaton is a deterministic finite automaton over a byte alphabet.
// States are dense integer ids in creation order; Alphabet preserves the
// order symbols were first declared or first encountered (spec.md §3:
// "the alphabet... order of first declaration or first occurrence").
type Automaton struct {
	Name       string
	states     []State
	Alphabet   []byte
	alphaIndex map[byte]bool
	initial    int
	hasInitial bool

	// transitions[sourceID] holds one cell per byte value 0-255; only
	// cells for symbols in Alphabet are ever consulted, but indexing by
	// raw byte value keeps lookups O(1) without a nested map.
	transitions [][256]cell
}

// New creates an empty automaton with the given name (spec.md §3's
// DFA_DEFAULT_NAME "DFA" is the caller's responsibility to supply when the
// document omits a name attribute).
func New(name string) *Automaton {
	return &Automaton{
		Name:       name,
		alphaIndex: make(map[byte]bool),
	}
}

// AddState appends a new state and returns its id.
func (a *Automaton) AddState(name string, accept bool) int {
	id := len(a.states)
	a.states = append(a.states, State{ID: id, Name: name, Accept: accept})
	a.transitions = append(a.transitions, [256]cell{})
	return id
}

// States returns every state in creation (id) order.
func (a *Automaton) States() []State {
	return a.states
}

// NumStates returns the number of states.
func (a *Automaton) NumStates() int {
	return len(a.states)
}

// SetInitial designates the initial state. Returns an error if id is out
// of range.
func (a *Automaton) SetInitial(id int) error {
	if id < 0 || id >= len(a.states) {
		return fmt.Errorf("automaton: initial state id %d out of range", id)
	}
	a.initial = id
	a.hasInitial = true
	return nil
}

// Initial returns the initial state id. Panics if none was ever set, since
// every automaton the builder produces must have exactly one (spec.md
// §4.4 step 5).
func (a *Automaton) Initial() int {
	if !a.hasInitial {
		panic("automaton: initial state was never set")
	}
	return a.initial
}

// DeclareSymbol appends a symbol to the alphabet if it is not already
// present, preserving first-occurrence order. Used both when the
// alphabet is predeclared from the root element's attribute and when it
// is inferred lazily from transitions (spec.md §3, §4.4 step 6).
func (a *Automaton) DeclareSymbol(sym byte) {
	if a.alphaIndex[sym] {
		return
	}
	a.alphaIndex[sym] = true
	a.Alphabet = append(a.Alphabet, sym)
}

// HasSymbol reports whether sym is in the alphabet.
func (a *Automaton) HasSymbol(sym byte) bool {
	return a.alphaIndex[sym]
}

// AddTransition declares that source transitions to target on sym,
// overwriting any prior transition declared for the same (source, sym)
// pair — spec.md §4.4's Open Question on duplicate transitions is
// resolved as "last one wins, no warning", matching the only grounded
// behavior available in original_source/src/dfa.c's insertTransition_dfa
// (a bare array write with no duplicate check).
func (a *Automaton) AddTransition(source, target int, sym byte) error {
	if source < 0 || source >= len(a.states) {
		return fmt.Errorf("automaton: source state id %d out of range", source)
	}
	if target < 0 || target >= len(a.states) {
		return fmt.Errorf("automaton: target state id %d out of range", target)
	}
	a.transitions[source][sym] = cell{target: target, defined: true}
	return nil
}

// Next returns the state sym transitions to from source, and whether that
// cell was ever declared. An undeclared cell is reported as !ok rather
// than silently resolving to state 0, the deliberate departure from
// original_source's implicit zero-initialized transition array recorded
// in DESIGN.md.
func (a *Automaton) Next(source int, sym byte) (target int, ok bool) {
	c := a.transitions[source][sym]
	return c.target, c.defined
}

// IsAccept reports whether the given state id accepts.
func (a *Automaton) IsAccept(id int) bool {
	return a.states[id].Accept
}

// String renders the automaton as a human-readable summary, grounded on
// the teacher's DFA[E].String (internal/ictiobus/automaton/dfa.go), which
// similarly lists every state and its outgoing transitions in a stable
// order.
func (a *Automaton) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s (alphabet: %s)\n", a.Name, string(a.Alphabet))
	for _, s := range a.states {
		marker := " "
		if s.ID == a.initial {
			marker = ">"
		}
		accept := ""
		if s.Accept {
			accept = " [accept]"
		}
		fmt.Fprintf(&sb, "%s%s%s\n", marker, s.Name, accept)

		for _, sym := range a.Alphabet {
			if target, ok := a.Next(s.ID, sym); ok {
				fmt.Fprintf(&sb, "    %q -> %s\n", string(sym), a.states[target].Name)
			}
		}
	}
	return sb.String()
}
