// Package compiler implements the Eudoxus two-pass assembler: it turns a
// validated, deterministic, epsilon-free automaton.Automaton into a single
// self-contained binary image engine.Load can read back.
//
// What
//
//   - Detects PC (path-compressed) chains: runs of single-edge,
//     single-byte, in-degree-1 nodes collapsed into one node.
//   - Classifies every remaining node as Low or High by comparing their
//     exact encoded byte cost (the cost oracle in cost.go), biased by
//     Config.HighNodeWeight.
//   - Lays out nodes, outputs, and metadata in one pass (sizing), then
//     writes every field in a second pass once all offsets are final —
//     no relocation, because nothing is written before its target address
//     is known.
//   - Auto-selects the narrowest IDWidth (1/2/4/8 bytes) that addresses
//     the whole image, retrying wider widths only when narrower ones
//     overflow.
//
// Why
//
//	The streaming interpreter (engine) reads every offset-sized field at
//	the id width recorded in the image header, so that width is fixed and
//	self-describing; picking it automatically keeps small automata compact without
//	the caller needing to guess a size class up front.
//
// Usage
//
//	a := automaton.New()
//	root := a.AddNode()
//	_ = a.SetStart(root)
//	result, err := compiler.Compile(a, compiler.WithHighNodeWeight(1.1))
//
// Errors
//
//   - Validation failures surface automaton's own sentinels
//     (ErrNoStart, ErrDanglingTarget, ErrNotDeterministic, ...).
//   - format.ErrInsane if the assembler's own layout invariants are
//     violated — never expected, exists to fail loudly rather than emit a
//     silently-wrong image.
package compiler
