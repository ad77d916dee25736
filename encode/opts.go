package encode

type EncodeOption func(*EncState)

// Indent sets the per-level indentation of variation subtrees.
func Indent(n int) EncodeOption {
	return func(es *EncState) { es.indent = n }
}

// Compact suppresses all inter-token whitespace.
func Compact(v bool) EncodeOption {
	return func(es *EncState) { es.compact = v }
}

func EncodeColors(c *Colors) EncodeOption {
	return func(es *EncState) { es.Color = c.Color }
}
