package nonadvance

import "errors"

// ErrUnknownMode is returned by Run for a Mode value outside the three
// defined variants.
var ErrUnknownMode = errors.New("nonadvance: unknown mode")

// Mode selects one of the three non-advancing translation variants
// described in spec.md §4.3.
type Mode int

const (
	// Aggressive retargets or drops non-advancing transitions and may
	// split a single transition into several, growing the node.
	Aggressive Mode = iota
	// Conservative is Aggressive except it leaves a transition unchanged
	// when the lookahead result is not a singleton, never growing the node.
	Conservative
	// Structural rewrites existing multi-edges and the default target in
	// place without ever splitting an edge; it never grows the automaton.
	Structural
)

// String renders the mode name for diagnostics.
func (m Mode) String() string {
	switch m {
	case Aggressive:
		return "aggressive"
	case Conservative:
		return "conservative"
	case Structural:
		return "structural"
	default:
		return "unknown"
	}
}
