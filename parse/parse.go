// Package parse parses SGF text into sgf collections.
//
// # Usage
//
//	col, err := parse.Parse([]byte("(;FF[4]GM[1];B[aa])"))
//	if err != nil {
//	    return err
//	}
//
//	// Parse with options
//	col, err := parse.Parse(data, parse.Strict())
//
// Parsing is a single recursive descent pass fusing the grammar, the
// per-identifier value type system and inline semantic validation.
// The grammar is context sensitive: the FF property switches the legal
// identifier syntax for the remainder of its collection entry, and the
// CA property switches the charset used to decode later text values.
//
// # Related Packages
//
//   - github.com/sgf-format/go-sgf/sgf - data model
//   - github.com/sgf-format/go-sgf/schema - property table
//   - github.com/sgf-format/go-sgf/token - scanning
package parse

import (
	"fmt"

	"github.com/sgf-format/go-sgf/debug"
	"github.com/sgf-format/go-sgf/schema"
	"github.com/sgf-format/go-sgf/sgf"
	"github.com/sgf-format/go-sgf/token"
)

// Parse parses one SGF document into a collection of game trees. The
// first syntax or validation error anywhere inside a collection entry
// aborts the whole parse with no partial result.
func Parse(d []byte, opts ...ParseOption) (sgf.Collection, error) {
	pOpts := &parseOpts{maxDepth: DefaultMaxDepth}
	for _, f := range opts {
		f(pOpts)
	}
	p := &parser{
		src:  token.NewSource(d),
		opts: pOpts,
	}
	return p.collection()
}

// ParseString is Parse on a string.
func ParseString(s string, opts ...ParseOption) (sgf.Collection, error) {
	return Parse([]byte(s), opts...)
}

type parser struct {
	src  *token.Source
	opts *parseOpts

	// ss is reset at the start of each collection entry; the file
	// format, game type, charset and identifier lexing mode never
	// leak from one entry into the next.
	ss    *session
	depth int
}

func (p *parser) collection() (sgf.Collection, error) {
	var col sgf.Collection
	for {
		if len(col) > 0 {
			if _, ok := p.src.SkipAndPeek(); !ok {
				break
			}
		}
		p.ss = newSession()
		if p.opts.strict {
			p.ss.gameInfoSeen = map[string]bool{}
		}
		gt, err := p.gameTree(true)
		if err != nil {
			return nil, err
		}
		col = append(col, gt)
		if debug.Parse() {
			debug.Logf("parsed game tree %d (%d nodes, %d subtrees)\n",
				len(col), len(gt.Nodes), len(gt.Subtrees))
		}
	}
	return col, nil
}

func (p *parser) gameTree(root bool) (*sgf.GameTree, error) {
	if p.depth >= p.opts.maxDepth {
		return nil, &SyntaxError{
			Pos:      p.src.Pos(),
			Expected: fmt.Sprintf("variation nesting below %d", p.opts.maxDepth),
			Found:    "deeper nesting",
		}
	}
	p.depth++
	defer func() { p.depth-- }()

	c, ok := p.src.SkipAndPeek()
	if !ok || c != '(' {
		return nil, &SyntaxError{Pos: p.src.Pos(), Expected: "'('", Found: foundDesc(c, ok)}
	}
	p.src.Advance(1)

	nodes, err := p.sequence(root)
	if err != nil {
		return nil, err
	}
	gt := &sgf.GameTree{Nodes: nodes}
	for {
		c, ok := p.src.SkipAndPeek()
		if !ok {
			return nil, &SyntaxError{Pos: p.src.Pos(), Expected: "')'", Found: "end of input"}
		}
		if c == ')' {
			p.src.Advance(1)
			return gt, nil
		}
		sub, err := p.gameTree(false)
		if err != nil {
			return nil, err
		}
		gt.Subtrees = append(gt.Subtrees, sub)
	}
}

func (p *parser) sequence(root bool) ([]*sgf.Node, error) {
	var nodes []*sgf.Node
	for {
		// Only the first node of the outermost sequence may carry
		// root properties.
		n, err := p.node(root && len(nodes) == 0)
		if err != nil {
			return nil, err
		}
		nodes = append(nodes, n)
		if c, ok := p.src.SkipAndPeek(); !ok || c != ';' {
			return nodes, nil
		}
	}
}

func (p *parser) node(root bool) (*sgf.Node, error) {
	c, ok := p.src.SkipAndPeek()
	if !ok || c != ';' {
		return nil, &SyntaxError{Pos: p.src.Pos(), Expected: "';'", Found: foundDesc(c, ok)}
	}
	p.src.Advance(1)

	node := &sgf.Node{}
	for {
		c, ok := p.src.SkipAndPeek()
		if !ok || !p.ss.identClass().Has(c) {
			return node, nil
		}
		identOff := p.src.Cur()
		prop, err := p.property(root)
		if err != nil {
			return nil, err
		}
		if node.Has(prop.Ident) {
			return nil, &ValidationError{
				Pos:    p.src.PosAt(identOff),
				Reason: fmt.Sprintf("duplicate property %s in node", prop.Ident),
			}
		}
		if err := p.checkGameInfo(prop.Ident, identOff); err != nil {
			return nil, err
		}
		if err := p.applySession(prop, identOff); err != nil {
			return nil, err
		}
		node.Props = append(node.Props, prop)
	}
}

// checkGameInfo applies the strict rule that a game-info property
// appears at most once per collection entry.
func (p *parser) checkGameInfo(ident string, off int) error {
	if !p.opts.strict || schema.Lookup(ident).Scope != schema.GameInfoScope {
		return nil
	}
	if p.ss.gameInfoSeen[ident] {
		return &ValidationError{
			Pos:    p.src.PosAt(off),
			Reason: fmt.Sprintf("game-info property %s repeated in game tree", ident),
		}
	}
	p.ss.gameInfoSeen[ident] = true
	return nil
}

// applySession mutates the session for the metadata properties that
// parameterize the rest of the entry's parse.
func (p *parser) applySession(prop *sgf.Property, off int) error {
	switch prop.Ident {
	case "FF":
		if len(prop.Values) != 1 || prop.Values[0].Int64 == nil {
			return &ValidationError{
				Pos:    p.src.PosAt(off),
				Reason: "FF requires exactly one number value",
			}
		}
		ff := *prop.Values[0].Int64
		if ff < 1 || ff > 4 {
			return &ValidationError{
				Pos:    p.src.PosAt(off),
				Reason: fmt.Sprintf("FF value %d outside [1,4]", ff),
			}
		}
		p.ss.fileFormat = int(ff)
		if ff == 4 {
			p.ss.strictIdent = true
		}
	case "GM":
		if len(prop.Values) != 1 || prop.Values[0].Int64 == nil {
			return &ValidationError{
				Pos:    p.src.PosAt(off),
				Reason: "GM requires exactly one number value",
			}
		}
		gm := *prop.Values[0].Int64
		if p.opts.strict && (gm < 1 || gm > maxGameType) {
			return &ValidationError{
				Pos:    p.src.PosAt(off),
				Reason: fmt.Sprintf("GM value %d outside [1,%d]", gm, maxGameType),
			}
		}
		p.ss.gameType = int(gm)
	case "CA":
		if len(prop.Values) == 1 && prop.Values[0].Str != "" {
			// undecodable charsets leave the session unchanged
			p.ss.setCharset(prop.Values[0].Str)
		}
	}
	return nil
}

func (p *parser) property(root bool) (*sgf.Property, error) {
	p.src.SkipAndPeek()
	identOff := p.src.Cur()
	run := p.src.MatchRun(p.ss.identClass(), identOff)
	if len(run) == 0 {
		c, ok := p.src.Peek()
		return nil, &SyntaxError{
			Pos:      p.src.PosAt(identOff),
			Expected: "property identifier",
			Found:    foundDesc(c, ok),
		}
	}
	p.src.Advance(len(run))
	ident := canonIdent(run)
	if ident == "" {
		return nil, &SyntaxError{
			Pos:      p.src.PosAt(identOff),
			Expected: "property identifier",
			Found:    fmt.Sprintf("%q", string(run)),
		}
	}
	ent := schema.Lookup(ident)
	if ent.Scope == schema.RootScope && !root {
		return nil, &ValidationError{
			Pos:    p.src.PosAt(identOff),
			Reason: fmt.Sprintf("root property %s outside the first node of the outermost game tree", ident),
		}
	}

	var vals []*sgf.Value
	for {
		c, ok := p.src.SkipAndPeek()
		if !ok || c != '[' {
			if len(vals) == 0 {
				return nil, &SyntaxError{Pos: p.src.Pos(), Expected: "'['", Found: foundDesc(c, ok)}
			}
			break
		}
		valOff := p.src.Cur()
		raw, ok := p.src.BracketBody()
		if !ok {
			return nil, &SyntaxError{Pos: p.src.Pos(), Expected: "']'", Found: "end of input"}
		}
		v, err := p.interpret(raw, valOff, ident, ent)
		if err != nil {
			return nil, err
		}
		vals = append(vals, v)
	}
	if !ent.List && len(vals) > 1 {
		return nil, &ValidationError{
			Pos:    p.src.PosAt(identOff),
			Reason: fmt.Sprintf("property %s does not accept a value list", ident),
		}
	}
	return &sgf.Property{Ident: ident, Values: vals}, nil
}

// canonIdent canonicalizes a matched identifier run. In legacy mode
// the run may mix cases; non-uppercase bytes are stripped. In strict
// mode the run is already uppercase only.
func canonIdent(run []byte) string {
	out := make([]byte, 0, len(run))
	for _, c := range run {
		if c >= 'A' && c <= 'Z' {
			out = append(out, c)
		}
	}
	return string(out)
}
