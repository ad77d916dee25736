package parse

// DefaultMaxDepth bounds variation nesting so adversarial input cannot
// exhaust the call stack.
const DefaultMaxDepth = 512

type parseOpts struct {
	strict   bool
	maxDepth int
}

type ParseOption func(*parseOpts)

// Strict enables the stricter validation rules: game-info properties
// may appear at most once per game tree and GM is range checked
// against the known game-type set.
func Strict() ParseOption {
	return func(o *parseOpts) { o.strict = true }
}

// MaxDepth overrides the variation nesting bound.
func MaxDepth(n int) ParseOption {
	return func(o *parseOpts) {
		if n > 0 {
			o.maxDepth = n
		}
	}
}
