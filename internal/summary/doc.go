// Package summary extracts structure from raw LLM output.
//
// The enhance prompt asks the model to return the rewritten README in a
// fenced markdown block followed by a fenced json block holding a
// changes_made array. Models do not always comply, so parsing is layered:
// fenced blocks first (located through the markdown AST, not string
// slicing), then a plain-text "Changes:" section, and finally a fallback
// that treats the whole response as the README with no changes. Parsing
// never fails; it only degrades.
package summary
