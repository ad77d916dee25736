package parse

import (
	"strings"

	"github.com/sgf-format/go-sgf/token"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
)

const (
	defaultFileFormat = 1
	defaultGameType   = 1
	defaultCharset    = "ISO-8859-1"

	// maxGameType is the highest game type FF[4] assigns a meaning,
	// checked only under Strict.
	maxGameType = 40
)

// session is the per-document mutable state threaded through one
// collection entry's parse: file format, game type, charset and the
// active identifier lexing mode. It is reset at the start of each
// entry and discarded after the parse call.
type session struct {
	fileFormat int
	gameType   int
	charset    string
	dec        *encoding.Decoder

	// strictIdent switches identifier lexing from the legacy
	// mixed-case syntax to uppercase-only. It is set permanently for
	// the remainder of the entry once FF[4] is seen.
	strictIdent bool

	gameInfoSeen map[string]bool
}

func newSession() *session {
	ss := &session{
		fileFormat: defaultFileFormat,
		gameType:   defaultGameType,
	}
	ss.setCharset(defaultCharset)
	return ss
}

// identClass is the active property identifier character class.
func (ss *session) identClass() token.Class {
	if ss.strictIdent {
		return token.UpperRun
	}
	return token.LetterRun
}

// setCharset resolves name against the IANA index and installs the
// decoder. Undecodable names leave the active charset unchanged.
func (ss *session) setCharset(name string) bool {
	enc, err := htmlindex.Get(strings.ToLower(strings.TrimSpace(name)))
	if err != nil {
		return false
	}
	ss.charset = name
	ss.dec = enc.NewDecoder()
	return true
}

// decode converts raw value bytes from the active charset.
func (ss *session) decode(d []byte) string {
	if ss.dec == nil {
		return string(d)
	}
	out, err := ss.dec.Bytes(d)
	if err != nil {
		return string(d)
	}
	return string(out)
}
