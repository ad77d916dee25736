package parse

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/sgf-format/go-sgf/schema"
	"github.com/sgf-format/go-sgf/sgf"
)

// interpret resolves one raw bracketed value (brackets stripped,
// escapes unresolved) against the schema entry for ident. Declared
// scalar kinds are tried in fixed precedence, then composed pairs;
// first success wins. No match is a validation error.
func (p *parser) interpret(raw []byte, off int, ident string, ent schema.Entry) (*sgf.Value, error) {
	for _, k := range ent.Kinds {
		if v, ok := p.scalar(k, raw); ok {
			return v, nil
		}
	}
	if len(ent.Compose) > 0 {
		if a, b, ok := splitCompose(raw); ok {
			for _, pairKinds := range ent.Compose {
				va, okA := p.scalar(pairKinds[0], a)
				if !okA {
					continue
				}
				vb, okB := p.scalar(pairKinds[1], b)
				if !okB {
					continue
				}
				return sgf.Composed(va, vb), nil
			}
		}
	}
	return nil, &ValidationError{
		Pos: p.src.PosAt(off),
		Reason: fmt.Sprintf("value %q for %s matches no declared kind (%s)",
			raw, ident, kindList(ent)),
	}
}

// scalar tries one kind against raw text. The textual kinds cannot
// fail; the others accept exactly their lexical form.
func (p *parser) scalar(k schema.Kind, raw []byte) (*sgf.Value, bool) {
	switch k {
	case schema.None:
		if len(raw) != 0 {
			return nil, false
		}
		return sgf.NoValue(), true
	case schema.Number:
		n, ok := parseNumber(string(raw))
		if !ok {
			return nil, false
		}
		return sgf.FromNumber(n), true
	case schema.Real:
		f, ok := parseReal(string(raw))
		if !ok {
			return nil, false
		}
		return sgf.FromReal(f), true
	case schema.Double:
		if len(raw) != 1 || (raw[0] != '1' && raw[0] != '2') {
			return nil, false
		}
		return sgf.FromDouble(int64(raw[0] - '0')), true
	case schema.Color:
		if len(raw) != 1 || (raw[0] != 'B' && raw[0] != 'W') {
			return nil, false
		}
		return sgf.FromColor(string(raw)), true
	case schema.SimpleText:
		return sgf.FromText(k, normalize(p.ss.decode(raw), simpleMode)), true
	case schema.Text:
		return sgf.FromText(k, normalize(p.ss.decode(raw), textMode)), true
	case schema.Point, schema.Move, schema.Stone:
		// game-specific coordinate meaning is a collaborator's
		// concern, parameterized by the active game type
		return sgf.FromText(k, normalize(p.ss.decode(raw), rawMode)), true
	default:
		return nil, false
	}
}

// splitCompose splits raw on the first unescaped ':'.
func splitCompose(raw []byte) ([]byte, []byte, bool) {
	for i := 0; i < len(raw); i++ {
		switch raw[i] {
		case '\\':
			i++
		case ':':
			return raw[:i], raw[i+1:], true
		}
	}
	return nil, nil, false
}

func kindList(ent schema.Entry) string {
	parts := make([]string, 0, len(ent.Kinds)+len(ent.Compose))
	for _, k := range ent.Kinds {
		parts = append(parts, k.String())
	}
	for _, c := range ent.Compose {
		parts = append(parts, c[0].String()+":"+c[1].String())
	}
	return strings.Join(parts, ", ")
}

func parseNumber(s string) (int64, bool) {
	if !matchDigits(s, false) {
		return 0, false
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}

func parseReal(s string) (float64, bool) {
	if !matchDigits(s, true) {
		return 0, false
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

// matchDigits accepts an optional sign followed by digits, with an
// optional fractional part when frac is set.
func matchDigits(s string, frac bool) bool {
	if len(s) > 0 && (s[0] == '+' || s[0] == '-') {
		s = s[1:]
	}
	if len(s) == 0 {
		return false
	}
	i := 0
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
	}
	if i == 0 {
		return false
	}
	if i == len(s) {
		return true
	}
	if !frac || s[i] != '.' {
		return false
	}
	i++
	j := i
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
	}
	return i > j && i == len(s)
}

type normalizeMode int

const (
	// simpleMode collapses every whitespace run, hard line breaks
	// included, to a single space.
	simpleMode normalizeMode = iota
	// textMode keeps hard line breaks verbatim and collapses other
	// whitespace runs to a single space.
	textMode
	// rawMode only resolves escapes and soft line breaks; used for
	// the opaque point/move/stone payloads.
	rawMode
)

// normalize applies SGF text transformation to a charset-decoded
// value: soft line breaks (backslash + newline) are removed, remaining
// backslash escapes resolve to the escaped character, and whitespace
// is collapsed per mode.
func normalize(s string, mode normalizeMode) string {
	var b strings.Builder
	b.Grow(len(s))
	pendingSpace := false
	flush := func() {
		if pendingSpace {
			b.WriteByte(' ')
			pendingSpace = false
		}
	}
	for i := 0; i < len(s); {
		c := s[i]
		if c == '\\' && i+1 < len(s) {
			if n := newlineLen(s, i+1); n > 0 {
				// soft line break
				i += 1 + n
				continue
			}
			flush()
			b.WriteByte(s[i+1])
			i += 2
			continue
		}
		if n := newlineLen(s, i); n > 0 {
			switch mode {
			case textMode, rawMode:
				if mode == rawMode {
					flush()
				} else {
					pendingSpace = false
				}
				b.WriteByte('\n')
			default:
				pendingSpace = true
			}
			i += n
			continue
		}
		if c == ' ' || c == '\t' || c == '\v' || c == '\f' {
			if mode == rawMode {
				b.WriteByte(c)
			} else {
				pendingSpace = true
			}
			i++
			continue
		}
		flush()
		b.WriteByte(c)
		i++
	}
	flush()
	return b.String()
}

// newlineLen returns the byte length of the line break starting at i,
// treating \r\n and \n\r as one break, or 0.
func newlineLen(s string, i int) int {
	if i >= len(s) {
		return 0
	}
	switch s[i] {
	case '\n':
		if i+1 < len(s) && s[i+1] == '\r' {
			return 2
		}
		return 1
	case '\r':
		if i+1 < len(s) && s[i+1] == '\n' {
			return 2
		}
		return 1
	default:
		return 0
	}
}
