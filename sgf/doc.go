// Package sgf provides the data model for parsed SGF documents.
//
// # Overview
//
// A Collection is an ordered list of game trees; a GameTree is a
// non-empty node sequence plus sibling subtrees holding alternative
// continuations; a Node maps property identifiers to typed values.
//
// The model is a simple recursive structure readily representable in
// JSON and YAML. It carries no position information from input
// documents, making it purely semantic. Values are built bottom-up
// during one parse call and are not mutated afterwards.
//
// # Related Packages
//
//   - github.com/sgf-format/go-sgf/parse - Parse SGF text
//   - github.com/sgf-format/go-sgf/encode - Encode a collection to text
//   - github.com/sgf-format/go-sgf/schema - Property table
package sgf
