package token

// Class is a character class the scanner can match runs of.
type Class int

const (
	// Space matches SGF whitespace.
	Space Class = iota
	// UpperRun matches uppercase ASCII letters, the strict FF[4]
	// property identifier syntax.
	UpperRun
	// LetterRun matches ASCII letters of either case, the legacy
	// (FF[1]-FF[3]) property identifier syntax.
	LetterRun
)

func (c Class) String() string {
	switch c {
	case Space:
		return "whitespace"
	case UpperRun:
		return "uppercase letters"
	case LetterRun:
		return "letters"
	default:
		return "unknown class"
	}
}

func (c Class) Has(b byte) bool {
	switch c {
	case Space:
		return b == ' ' || b == '\t' || b == '\n' || b == '\r' || b == '\v' || b == '\f'
	case UpperRun:
		return b >= 'A' && b <= 'Z'
	case LetterRun:
		return b >= 'A' && b <= 'Z' || b >= 'a' && b <= 'z'
	default:
		return false
	}
}
