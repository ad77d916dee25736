// Package schema holds the static SGF property table: for each
// property identifier, where it may appear, which value kinds it
// accepts, and whether it takes a value list.
package schema

// Kind is one SGF value kind. The declaration order is the precedence
// order the value interpreter tries kinds in.
type Kind int

const (
	None Kind = iota
	Number
	Real
	Double
	Color
	SimpleText
	Text
	Point
	Move
	Stone
)

func (k Kind) String() string {
	switch k {
	case None:
		return "none"
	case Number:
		return "number"
	case Real:
		return "real"
	case Double:
		return "double"
	case Color:
		return "color"
	case SimpleText:
		return "simpletext"
	case Text:
		return "text"
	case Point:
		return "point"
	case Move:
		return "move"
	case Stone:
		return "stone"
	default:
		return "unknown kind"
	}
}

// Scope restricts where a property may appear within a collection
// entry.
type Scope int

const (
	// AnyScope properties may appear on any node.
	AnyScope Scope = iota
	// RootScope properties are legal only on the first node of the
	// outermost game tree.
	RootScope
	// GameInfoScope properties describe the game as a whole. Under
	// strict validation they may appear at most once per game tree.
	GameInfoScope
)

// Entry describes one property identifier.
type Entry struct {
	Scope Scope
	// Kinds are the accepted scalar kinds, in interpreter precedence
	// order.
	Kinds []Kind
	// Compose lists accepted composed pairs, tried after Kinds.
	Compose [][2]Kind
	// List marks identifiers accepting more than one value.
	List bool
}

func kinds(ks ...Kind) []Kind { return ks }

func pair(a, b Kind) [2]Kind { return [2]Kind{a, b} }

// table is the FF[4] property set.
var table = map[string]Entry{
	// Move properties.
	"B":  {Kinds: kinds(Move)},
	"W":  {Kinds: kinds(Move)},
	"KO": {Kinds: kinds(None)},
	"MN": {Kinds: kinds(Number)},

	// Setup properties.
	"AB": {Kinds: kinds(Stone), List: true},
	"AE": {Kinds: kinds(Point), List: true},
	"AW": {Kinds: kinds(Stone), List: true},
	"PL": {Kinds: kinds(Color)},

	// Node annotation.
	"C":  {Kinds: kinds(Text)},
	"DM": {Kinds: kinds(Double)},
	"GB": {Kinds: kinds(Double)},
	"GW": {Kinds: kinds(Double)},
	"HO": {Kinds: kinds(Double)},
	"N":  {Kinds: kinds(SimpleText)},
	"UC": {Kinds: kinds(Double)},
	"V":  {Kinds: kinds(Real)},

	// Move annotation.
	"BM": {Kinds: kinds(Double)},
	"DO": {Kinds: kinds(None)},
	"IT": {Kinds: kinds(None)},
	"TE": {Kinds: kinds(Double)},

	// Markup.
	"AR": {Compose: [][2]Kind{pair(Point, Point)}, List: true},
	"CR": {Kinds: kinds(Point), List: true},
	"DD": {Kinds: kinds(None, Point), List: true},
	"LB": {Compose: [][2]Kind{pair(Point, SimpleText)}, List: true},
	"LN": {Compose: [][2]Kind{pair(Point, Point)}, List: true},
	"MA": {Kinds: kinds(Point), List: true},
	"SL": {Kinds: kinds(Point), List: true},
	"SQ": {Kinds: kinds(Point), List: true},
	"TR": {Kinds: kinds(Point), List: true},

	// Root properties.
	"AP": {Scope: RootScope, Compose: [][2]Kind{pair(SimpleText, SimpleText)}},
	"CA": {Scope: RootScope, Kinds: kinds(SimpleText)},
	"FF": {Scope: RootScope, Kinds: kinds(Number)},
	"GM": {Scope: RootScope, Kinds: kinds(Number)},
	"ST": {Scope: RootScope, Kinds: kinds(Number)},
	"SZ": {Scope: RootScope, Kinds: kinds(Number), Compose: [][2]Kind{pair(Number, Number)}},

	// Game info.
	"AN": {Scope: GameInfoScope, Kinds: kinds(SimpleText)},
	"BR": {Scope: GameInfoScope, Kinds: kinds(SimpleText)},
	"BT": {Scope: GameInfoScope, Kinds: kinds(SimpleText)},
	"CP": {Scope: GameInfoScope, Kinds: kinds(SimpleText)},
	"DT": {Scope: GameInfoScope, Kinds: kinds(SimpleText)},
	"EV": {Scope: GameInfoScope, Kinds: kinds(SimpleText)},
	"GC": {Scope: GameInfoScope, Kinds: kinds(Text)},
	"GN": {Scope: GameInfoScope, Kinds: kinds(SimpleText)},
	"ON": {Scope: GameInfoScope, Kinds: kinds(SimpleText)},
	"OT": {Scope: GameInfoScope, Kinds: kinds(SimpleText)},
	"PB": {Scope: GameInfoScope, Kinds: kinds(SimpleText)},
	"PC": {Scope: GameInfoScope, Kinds: kinds(SimpleText)},
	"PW": {Scope: GameInfoScope, Kinds: kinds(SimpleText)},
	"RE": {Scope: GameInfoScope, Kinds: kinds(SimpleText)},
	"RO": {Scope: GameInfoScope, Kinds: kinds(SimpleText)},
	"RU": {Scope: GameInfoScope, Kinds: kinds(SimpleText)},
	"SO": {Scope: GameInfoScope, Kinds: kinds(SimpleText)},
	"TM": {Scope: GameInfoScope, Kinds: kinds(Real)},
	"US": {Scope: GameInfoScope, Kinds: kinds(SimpleText)},
	"WR": {Scope: GameInfoScope, Kinds: kinds(SimpleText)},
	"WT": {Scope: GameInfoScope, Kinds: kinds(SimpleText)},

	// Timing.
	"BL": {Kinds: kinds(Real)},
	"OB": {Kinds: kinds(Number)},
	"OW": {Kinds: kinds(Number)},
	"WL": {Kinds: kinds(Real)},

	// Miscellaneous.
	"FG": {Kinds: kinds(None), Compose: [][2]Kind{pair(Number, SimpleText)}},
	"PM": {Kinds: kinds(Number)},
	"VW": {Kinds: kinds(None, Point), List: true},

	// Go specific. Payload interpretation is parameterized by GM and
	// is a collaborator's concern.
	"HA": {Kinds: kinds(Number)},
	"KM": {Kinds: kinds(Real)},
	"TB": {Kinds: kinds(None, Point), List: true},
	"TW": {Kinds: kinds(None, Point), List: true},
}

// unknown is the entry for identifiers absent from the table:
// repeatable opaque text.
var unknown = Entry{Kinds: kinds(Text), List: true}

// Lookup returns the entry for ident, falling back to repeatable free
// text for identifiers the table does not know.
func Lookup(ident string) Entry {
	if e, ok := table[ident]; ok {
		return e
	}
	return unknown
}

// Known reports whether ident is in the FF[4] table.
func Known(ident string) bool {
	_, ok := table[ident]
	return ok
}
