// Package token provides position-tracked scanning over SGF input.
//
// # Usage
//
//	src := token.NewSource([]byte("(;FF[4])"))
//	c, ok := src.SkipAndPeek()
//	run := src.MatchRun(token.UpperRun, src.Cur())
//
// The scanner is a cursor over a fully materialized buffer. It knows
// nothing about the SGF grammar beyond character classes; the grammar
// lives in github.com/sgf-format/go-sgf/parse.
package token
