// Package builder implements the DFA builder described in spec.md
// [MODULE] DFA Builder: it walks a parsed document and produces an
// automaton, resolving state names to ids through the name table and
// enforcing every syntax/semantic invariant spec.md §4.4 names.
//
// Grounded directly on original_source/src/dfa.c's fromXml_dfa, which
// this package follows step for step: read the root element's attributes,
// require exactly the three expected children, walk <states> populating
// the name table, require exactly one <initialState> child, then walk
// <transitions> growing or validating the alphabet as it goes.
package builder

import (
	"fmt"

	"github.com/dekarrin/compiledfa/internal/automaton"
	"github.com/dekarrin/compiledfa/internal/dfaxml"
	"github.com/dekarrin/compiledfa/internal/diag"
	"github.com/dekarrin/compiledfa/internal/hashtable"
)

// DefaultName is used when the root element has no "name" attribute,
// matching original_source's DFA_DEFAULT_NAME.
const DefaultName = "DFA"

// Limits bundles the name table's fixed-capacity knobs so callers (the
// CLI front-end, in particular) can override them, per SPEC_FULL.md §3.4.
type Limits struct {
	RowCount      int
	MaxSameHashes int
	MaxKeys       int
}

// Error wraps a builder-stage failure with the element tag that triggered
// it, for diagnostics in the teacher's wrap-with-context style
// (internal/tqerrors.interpreterError in dekarrin-tunaq).
type Error struct {
	Context string
	Cause   error
}

func (e *Error) Error() string {
	return fmt.Sprintf("builder: %s: %v", e.Context, e.Cause)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

func wrap(context string, err error) error {
	if err == nil {
		return nil
	}
	return &Error{Context: context, Cause: err}
}

// Build compiles a parsed document's root element into an automaton.
func Build(doc *dfaxml.Document, limits Limits) (*automaton.Automaton, error) {
	root := doc.Root
	if root == nil {
		return nil, wrap("document", fmt.Errorf("document has no root element"))
	}
	if root.Tag != "dfa" {
		return nil, wrap("root", fmt.Errorf("expected root element <dfa>, found <%s>", root.Tag))
	}

	a := automaton.New(DefaultName)
	names := hashtable.New(limits.RowCount, limits.MaxSameHashes, limits.MaxKeys)

	alphabetPredeclared := false
	if alpha, ok := root.Attr("alphabet"); ok {
		alphabetPredeclared = true
		for i := 0; i < len(alpha); i++ {
			a.DeclareSymbol(alpha[i])
		}
	}
	if name, ok := root.Attr("name"); ok {
		a.Name = name
	}
	diag.Report("dfa name: %s", a.Name)

	if len(root.Children) != 3 {
		return nil, wrap("root", fmt.Errorf("<dfa> must have exactly 3 children: <states>, <initialState>, <transitions>; found %d", len(root.Children)))
	}

	var statesEl, initialEl, transitionsEl *dfaxml.Element
	for _, child := range root.Children {
		switch child.Tag {
		case "states":
			statesEl = child
		case "initialState":
			initialEl = child
		case "transitions":
			transitionsEl = child
		default:
			diag.Warn("unrecognized DFA child: %s", child.Tag)
		}
	}
	if statesEl == nil || initialEl == nil || transitionsEl == nil {
		return nil, wrap("root", fmt.Errorf("<dfa> must have <states>, <initialState>, and <transitions> children"))
	}

	if err := buildStates(a, names, statesEl); err != nil {
		return nil, err
	}
	if err := buildInitialState(a, names, initialEl); err != nil {
		return nil, err
	}
	if err := buildTransitions(a, names, transitionsEl, alphabetPredeclared); err != nil {
		return nil, err
	}

	return a, nil
}

func buildStates(a *automaton.Automaton, names *hashtable.Table, statesEl *dfaxml.Element) error {
	for _, group := range statesEl.Children {
		isAccept := group.Tag == "accept"
		isReject := group.Tag == "reject"
		if !isAccept && !isReject {
			diag.Warn("skipping unrecognized state group: %s", group.Tag)
			continue
		}

		for _, stateEl := range group.Children {
			if _, exists := names.Get(stateEl.Tag); exists {
				return wrap("states", fmt.Errorf("state %q is declared more than once", stateEl.Tag))
			}

			id := a.AddState(stateEl.Tag, isAccept)
			if err := names.Insert(stateEl.Tag, id); err != nil {
				return wrap("states", err)
			}
			if isAccept {
				diag.Report("accept state: %s", stateEl.Tag)
			} else {
				diag.Report("reject state: %s", stateEl.Tag)
			}
		}
	}
	return nil
}

func buildInitialState(a *automaton.Automaton, names *hashtable.Table, initialEl *dfaxml.Element) error {
	if len(initialEl.Children) != 1 {
		return wrap("initialState", fmt.Errorf("there must be exactly one initial state, found %d", len(initialEl.Children)))
	}
	name := initialEl.Children[0].Tag
	id, ok := names.Get(name)
	if !ok {
		return wrap("initialState", fmt.Errorf("initial state %q is not a declared state", name))
	}
	return wrap("initialState", a.SetInitial(id))
}

func buildTransitions(a *automaton.Automaton, names *hashtable.Table, transitionsEl *dfaxml.Element, alphabetPredeclared bool) error {
	diag.Report("processing transitions")
	for _, fromEl := range transitionsEl.Children {
		sourceID, ok := names.Get(fromEl.Tag)
		if !ok {
			return wrap("transitions", fmt.Errorf("transition source %q is not a declared state", fromEl.Tag))
		}

		for _, toEl := range fromEl.Children {
			sinkID, ok := names.Get(toEl.Tag)
			if !ok {
				return wrap("transitions", fmt.Errorf("transition target %q is not a declared state", toEl.Tag))
			}

			symbols := toEl.Text()
			for i := 0; i < len(symbols); i++ {
				sym := symbols[i]
				if !a.HasSymbol(sym) {
					if alphabetPredeclared {
						return wrap("transitions", fmt.Errorf("symbol %q outside the predeclared alphabet", string(sym)))
					}
					a.DeclareSymbol(sym)
				}
				if err := a.AddTransition(sourceID, sinkID, sym); err != nil {
					return wrap("transitions", err)
				}
			}
		}
	}
	return nil
}
