// Package nonadvance implements the three non-advancing translator
// variants of spec.md §4.3: Aggressive, Conservative, Structural.
//
// What
//
//   - Aggressive/Conservative: per input byte, a non-advancing transition
//     A→B is resolved against B's own behavior on that byte; resolves to a
//     retarget, a drop, or (aggressive only) a split into several edges.
//   - Structural: rewrites existing multi-edges and the default target in
//     place, never splitting — so compiled image size never grows.
//
// Why
//
//   - Collapses one extra "look-ahead" hop the engine would otherwise take
//     at every match, at compile time instead of at every byte streamed.
//
// Fixed point
//
//	Run sweeps the whole automaton, breadth-first, repeatedly until a sweep
//	makes zero modifications. The modification count from the final Run
//	call is the only externally visible signal of convergence — it is 0
//	exactly when the automaton is already stable.
//
// Complexity: O(passes × nodes × 256) — each sweep rebuilds each node's
// per-input-byte view once.
package nonadvance
