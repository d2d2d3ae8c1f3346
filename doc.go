// Package eudoxus (IronAutomata) is a toolchain for building, optimizing,
// compiling, and executing finite-state automata for high-speed multi-pattern
// byte-stream matching (Aho–Corasick and friends).
//
// What is IronAutomata?
//
//	A layered automaton pipeline:
//
//	  • automaton/  — mutable intermediate graph (nodes, edges, outputs)
//	  • optimize/   — per-node edge representation optimizer
//	  • nonadvance/ — non-advancing transition eliminator (3 variants)
//	  • format/     — Eudoxus binary layout constants and header codec
//	  • compiler/   — two-pass assembler emitting a compact binary image
//	  • engine/     — streaming interpreter executing that image
//
// Why Eudoxus?
//
//   - Compact     — variable ID width (1/2/4/8 bytes), path compression,
//     bitmap-indexed dispatch for wide nodes.
//   - Fast        — single linear scan per byte, no backtracking, read-only
//     image shareable across goroutines.
//   - Composable  — optimizer and translator passes operate on the same
//     mutable graph a caller's own generator builds.
//
// Control flow:
//
//	generator (external) → automaton.Automaton
//	                          │
//	                optimize.Optimize (per node, breadth-first)
//	                          │
//	                nonadvance.Run (fixed point, breadth-first)
//	                          │
//	                compiler.Compile  → []byte image
//	                          │
//	                engine.Load → Engine → State → Execute
//
// See SPEC_FULL.md and DESIGN.md in this module's root for the full
// specification and the grounding ledger for each package.
//
//	go get github.com/ironautomata/eudoxus
package eudoxus
