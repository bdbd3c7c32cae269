package graphviz

import (
	"golang.org/x/text/transform"
)

// labelTransformer rewrites a raw label into a DOT-safe one: a literal
// quote is escaped so it doesn't close the surrounding string, a tab is
// dropped entirely, a newline becomes Graphviz's own left-justified line
// break "\l", and a literal backslash is doubled. Grounded verbatim on
// original_source/src/dot.c's toLabel_dot, implemented as a
// golang.org/x/text/transform.Transformer (the teacher's go.sum already
// carries golang.org/x/text) rather than a hand-rolled byte loop.
type labelTransformer struct{ transform.NopResetter }

func (labelTransformer) Transform(dst, src []byte, atEOF bool) (nDst, nSrc int, err error) {
	for nSrc < len(src) {
		b := src[nSrc]

		var rep []byte
		switch b {
		case '"':
			rep = []byte(`\"`)
		case '\t':
			rep = nil
		case '\n':
			rep = []byte(`\l`)
		case '\\':
			rep = []byte(`\\`)
		default:
			rep = []byte{b}
		}

		if len(dst)-nDst < len(rep) {
			return nDst, nSrc, transform.ErrShortDst
		}
		copy(dst[nDst:], rep)
		nDst += len(rep)
		nSrc++
	}
	return nDst, nSrc, nil
}

// toLabel applies labelTransformer to a complete in-memory string.
func toLabel(raw string) string {
	out, _, err := transform.String(labelTransformer{}, raw)
	if err != nil {
		// transform.String only surfaces a non-nil error if the
		// Transformer itself reports one other than ErrShortDst/Src,
		// which labelTransformer never does.
		panic(err)
	}
	return out
}
