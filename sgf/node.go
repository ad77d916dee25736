package sgf

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/sgf-format/go-sgf/schema"
)

// Collection is an ordered list of game trees. A valid collection has
// at least one entry; empty input is a syntax error, not an empty
// collection.
type Collection []*GameTree

// GameTree is a non-empty node sequence plus zero or more subtrees
// holding alternative continuations.
type GameTree struct {
	Nodes    []*Node
	Subtrees []*GameTree
}

// Node holds the properties of one game step, in parse order.
// Identifiers are unique within a node.
type Node struct {
	Props []*Property
}

// Prop returns the property with the given identifier, or nil.
func (n *Node) Prop(ident string) *Property {
	for _, p := range n.Props {
		if p.Ident == ident {
			return p
		}
	}
	return nil
}

// Has reports whether the node carries ident.
func (n *Node) Has(ident string) bool {
	return n.Prop(ident) != nil
}

// Property is one identifier with its typed values.
type Property struct {
	Ident  string
	Values []*Value
}

// Value is one typed SGF value. Exactly the fields implied by Kind are
// set; Compose holds the two halves of a composed value.
type Value struct {
	Kind    schema.Kind
	Str     string
	Int64   *int64
	Float64 *float64
	Color   string
	Compose []*Value
}

func FromNumber(v int64) *Value {
	return &Value{Kind: schema.Number, Int64: &v}
}

func FromReal(v float64) *Value {
	return &Value{Kind: schema.Real, Float64: &v}
}

func FromDouble(v int64) *Value {
	return &Value{Kind: schema.Double, Int64: &v}
}

func FromColor(c string) *Value {
	return &Value{Kind: schema.Color, Color: c}
}

// FromText builds a textual value; kind is one of SimpleText, Text,
// Point, Move or Stone.
func FromText(kind schema.Kind, s string) *Value {
	return &Value{Kind: kind, Str: s}
}

func NoValue() *Value {
	return &Value{Kind: schema.None}
}

func Composed(a, b *Value) *Value {
	return &Value{Compose: []*Value{a, b}}
}

// Text returns the decoded textual payload of the value. For scalar
// kinds it is a display rendering.
func (v *Value) Text() string {
	if len(v.Compose) == 2 {
		return v.Compose[0].Text() + ":" + v.Compose[1].Text()
	}
	switch v.Kind {
	case schema.None:
		return ""
	case schema.Number, schema.Double:
		if v.Int64 == nil {
			return ""
		}
		return strconv.FormatInt(*v.Int64, 10)
	case schema.Real:
		if v.Float64 == nil {
			return ""
		}
		return strconv.FormatFloat(*v.Float64, 'g', -1, 64)
	case schema.Color:
		return v.Color
	default:
		return v.Str
	}
}

func (v *Value) String() string {
	if len(v.Compose) == 2 {
		return fmt.Sprintf("%s:%s", v.Compose[0], v.Compose[1])
	}
	return fmt.Sprintf("%s(%s)", v.Kind, v.Text())
}

func (p *Property) String() string {
	texts := make([]string, len(p.Values))
	for i, v := range p.Values {
		texts[i] = "[" + v.Text() + "]"
	}
	return p.Ident + strings.Join(texts, "")
}
