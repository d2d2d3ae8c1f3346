package format

import "errors"

// Error taxonomy shared by the compiler and the engine. Names follow the
// engine's per-step result codes from spec.md §4.5: every non-OK/END/STOP
// outcome maps to exactly one of these.
var (
	// ErrInvalid marks a malformed image: a truncated buffer,
	// an offset that lands outside the image, or a structurally
	// impossible node.
	ErrInvalid = errors.New("format: invalid image")

	// ErrIncompatible marks a well-formed image this build cannot read:
	// wrong version, or (reserved for future growth) an unsupported
	// feature bit.
	ErrIncompatible = errors.New("format: incompatible image")

	// ErrAlloc marks a host allocation failure while building decode-time
	// state (e.g. a capture buffer). Engine-side only; the compiler never
	// returns it.
	ErrAlloc = errors.New("format: allocation failed")

	// ErrInsane marks an internal self-check failure: a value that must
	// be impossible given the compiler's own invariants was observed
	// anyway. Never expected in practice; exists so a broken oracle
	// fails loudly instead of emitting a silently-wrong image.
	ErrInsane = errors.New("format: internal invariant violated")
)
