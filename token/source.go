package token

// Source is a cursor over one input document. It is owned by a single
// in-flight parse; concurrent parses need independent Sources.
type Source struct {
	doc *Doc
	cur int
}

func NewSource(d []byte) *Source {
	return &Source{doc: NewDoc(d)}
}

func (s *Source) Doc() *Doc {
	return s.doc
}

// Cur returns the current cursor offset.
func (s *Source) Cur() int {
	return s.cur
}

// Pos returns the position of the cursor.
func (s *Source) Pos() *Pos {
	return s.doc.Pos(s.cur)
}

// PosAt returns the position of an arbitrary offset.
func (s *Source) PosAt(off int) *Pos {
	return s.doc.Pos(off)
}

// End reports whether the cursor is at end of input.
func (s *Source) End() bool {
	return s.cur >= len(s.doc.d)
}

// Advance moves the cursor forward n bytes.
func (s *Source) Advance(n int) {
	s.cur += n
	if s.cur > len(s.doc.d) {
		s.cur = len(s.doc.d)
	}
}

// Peek returns the byte at the cursor without moving it.
func (s *Source) Peek() (byte, bool) {
	if s.End() {
		return 0, false
	}
	return s.doc.d[s.cur], true
}

// SkipAndPeek advances the cursor past a maximal whitespace run and
// returns the byte now under it, or ok=false at end of input. Grammar
// productions that are whitespace insensitive call this before testing
// the next token.
func (s *Source) SkipAndPeek() (byte, bool) {
	s.cur += len(s.MatchRun(Space, s.cur))
	return s.Peek()
}

// MatchRun returns the longest prefix at exactly off whose bytes all
// belong to class c. It does not skip whitespace and does not move the
// cursor.
func (s *Source) MatchRun(c Class, off int) []byte {
	if off < 0 || off >= len(s.doc.d) {
		return nil
	}
	i := off
	for i < len(s.doc.d) && c.Has(s.doc.d[i]) {
		i++
	}
	return s.doc.d[off:i]
}

// BracketBody consumes a bracketed property value. The cursor must be
// on '['. On success it returns the bytes strictly between '[' and the
// first unescaped ']' (escapes unresolved) and leaves the cursor just
// past ']'. A backslash removes special meaning from the following
// byte, ']' and '\' included. If no unescaped ']' occurs the cursor is
// left at end of input and ok is false.
func (s *Source) BracketBody() ([]byte, bool) {
	start := s.cur + 1
	i := start
	for i < len(s.doc.d) {
		switch s.doc.d[i] {
		case '\\':
			i += 2
		case ']':
			s.cur = i + 1
			return s.doc.d[start:i], true
		default:
			i++
		}
	}
	s.cur = len(s.doc.d)
	return nil, false
}
