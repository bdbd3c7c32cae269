// Package dfaxml implements the structured-document parser described in
// spec.md [MODULE] Document Parser: a small XML-like grammar (single root
// element, quote-symmetric attributes, five-entity escaping, no CDATA or
// namespaces) parsed into a tree whose nodes carry a parent back-pointer so
// that every subsequent walk over the tree can be iterative.
//
// It is grounded on original_source/src/xml.c's fromString_xml, adapted
// from a fixed-capacity C array-of-nodes into growable Go slices per
// spec.md's Design Notes ("a reimplementation may use growable containers
// throughout").
package dfaxml

import (
	"fmt"
	"strings"
)

// Attribute is a single name/value pair on an Element. Values are stored
// already unescaped.
type Attribute struct {
	Name  string
	Value string
}

// Element is one tagged node in the document tree. Content holds the
// interleaved text fragments surrounding Children: the invariant is that
// len(Content) == len(Children)+1, with Content[i] the text immediately
// before Children[i] and Content[len(Children)] the trailing text after
// the last child (spec.md §3).
type Element struct {
	Parent     *Element
	Tag        string
	Attributes []Attribute
	Children   []*Element
	Content    []string
}

// Attr returns the value of the named attribute and whether it was
// present.
func (e *Element) Attr(name string) (string, bool) {
	for _, a := range e.Attributes {
		if a.Name == name {
			return a.Value, true
		}
	}
	return "", false
}

// Text returns the concatenation of every text fragment in Content,
// discarding the Children that separate them. Grounded on
// original_source's toContent_xmln, which performs this same flattening
// recursively; here it is a plain loop since Content is already linear.
func (e *Element) Text() string {
	var sb strings.Builder
	for _, c := range e.Content {
		sb.WriteString(c)
	}
	return sb.String()
}

// String renders the element and its subtree back into document syntax,
// re-escaping text and attribute values. Grounded on original_source's
// toString_xmln, but walked iteratively via each node's Parent
// back-pointer rather than toString_xmln's direct recursion, per spec.md
// §9's requirement that tree walks be iterative so stack usage doesn't
// grow with document depth. The per-node "next child to visit" index is
// the only extra state carried alongside the Parent-pointer walk,
// mirroring parseElementTree's node/parent pointer pair.
func (e *Element) String() string {
	var sb strings.Builder
	nextChild := make(map[*Element]int)

	writeOpenTag(&sb, e)
	node := e
	for node != nil {
		i := nextChild[node]
		sb.WriteString(escape(node.Content[i]))

		if i < len(node.Children) {
			child := node.Children[i]
			nextChild[node] = i + 1
			writeOpenTag(&sb, child)
			node = child
			continue
		}

		writeCloseTag(&sb, node)
		if node == e {
			break
		}
		node = node.Parent
	}

	return sb.String()
}

func writeOpenTag(sb *strings.Builder, e *Element) {
	sb.WriteByte('<')
	sb.WriteString(e.Tag)
	for _, a := range e.Attributes {
		fmt.Fprintf(sb, ` %s="%s"`, a.Name, escape(a.Value))
	}
	sb.WriteByte('>')
}

func writeCloseTag(sb *strings.Builder, e *Element) {
	sb.WriteString("</")
	sb.WriteString(e.Tag)
	sb.WriteByte('>')
}

// Equal reports whether two elements have identical tag, attributes,
// content, and (recursively) children. Parent back-pointers are not
// compared, matching original_source's tree-shape-only equality. Grounded
// on the teacher's ParseTree.Equal (internal/ictiobus/types/tree.go in
// dekarrin-tunaq), adapted to this tree's richer (attribute + content)
// node shape.
func (e *Element) Equal(o *Element) bool {
	if e == nil || o == nil {
		return e == o
	}
	if e.Tag != o.Tag || len(e.Attributes) != len(o.Attributes) || len(e.Content) != len(o.Content) || len(e.Children) != len(o.Children) {
		return false
	}
	for i := range e.Attributes {
		if e.Attributes[i] != o.Attributes[i] {
			return false
		}
	}
	for i := range e.Content {
		if e.Content[i] != o.Content[i] {
			return false
		}
	}
	for i := range e.Children {
		if !e.Children[i].Equal(o.Children[i]) {
			return false
		}
	}
	return true
}

// Document is a fully-parsed structured document: an optional verbatim
// prolog (only the first `<?...?>` declaration, per spec.md §4.2) plus the
// single root Element.
type Document struct {
	Meta string
	Root *Element
}
