// Package encode renders a parsed collection back to SGF text.
//
// The output is canonical: identifiers are uppercase, ']' and '\' are
// escaped in value payloads, ':' additionally inside composed halves,
// and each game tree starts on its own line. Parsing the output yields
// the same collection.
package encode

import (
	"io"
	"strings"

	"github.com/sgf-format/go-sgf/schema"
	"github.com/sgf-format/go-sgf/sgf"
)

type EncState struct {
	depth   int
	indent  int
	compact bool

	Color func(ColorAttr, string) string
}

func Encode(c sgf.Collection, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{indent: 2}
	for _, opt := range opts {
		opt(es)
	}
	for i, gt := range c {
		if i > 0 && !es.compact {
			if err := writeString(w, "\n"); err != nil {
				return err
			}
		}
		if err := encodeTree(gt, w, es); err != nil {
			return err
		}
	}
	if es.compact {
		return nil
	}
	return writeString(w, "\n")
}

func encodeTree(gt *sgf.GameTree, w io.Writer, es *EncState) error {
	if err := es.color(w, ParenColor, "("); err != nil {
		return err
	}
	for _, n := range gt.Nodes {
		if err := encodeNode(n, w, es); err != nil {
			return err
		}
	}
	es.depth++
	for _, sub := range gt.Subtrees {
		if !es.compact {
			if err := writeString(w, "\n"+strings.Repeat(" ", es.depth*es.indent)); err != nil {
				return err
			}
		}
		if err := encodeTree(sub, w, es); err != nil {
			return err
		}
	}
	es.depth--
	return es.color(w, ParenColor, ")")
}

func encodeNode(n *sgf.Node, w io.Writer, es *EncState) error {
	if err := es.color(w, NodeColor, ";"); err != nil {
		return err
	}
	for _, p := range n.Props {
		if err := es.color(w, IdentColor, p.Ident); err != nil {
			return err
		}
		for _, v := range p.Values {
			if err := es.color(w, BracketColor, "["); err != nil {
				return err
			}
			if err := es.color(w, ValueColor, valueText(v)); err != nil {
				return err
			}
			if err := es.color(w, BracketColor, "]"); err != nil {
				return err
			}
		}
	}
	return nil
}

func valueText(v *sgf.Value) string {
	if len(v.Compose) == 2 {
		return halfText(v.Compose[0]) + ":" + halfText(v.Compose[1])
	}
	switch v.Kind {
	case schema.SimpleText, schema.Text, schema.Point, schema.Move, schema.Stone:
		return escapeValue(v.Str, false)
	default:
		return v.Text()
	}
}

func halfText(v *sgf.Value) string {
	switch v.Kind {
	case schema.SimpleText, schema.Text, schema.Point, schema.Move, schema.Stone:
		return escapeValue(v.Str, true)
	default:
		return v.Text()
	}
}

// escapeValue escapes ']' and '\', and ':' inside composed halves.
func escapeValue(s string, half bool) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c == ']' || c == '\\' || (half && c == ':') {
			b.WriteByte('\\')
		}
		b.WriteByte(c)
	}
	return b.String()
}

func (es *EncState) color(w io.Writer, attr ColorAttr, s string) error {
	if es.Color != nil {
		s = es.Color(attr, s)
	}
	return writeString(w, s)
}

func writeString(w io.Writer, s string) error {
	_, err := io.WriteString(w, s)
	return err
}
