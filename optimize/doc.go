// Package optimize rewrites a single automaton.Node's outgoing edges and
// default target into a minimal equivalent representation.
//
// What
//
//   - Inverts the node's per-input-byte target map into groups of
//     (target, advance) pairs sharing an input set.
//   - Promotes the group with the widest coverage to the default target
//     when doing so is free (every byte is covered, and either no group
//     already covers every byte or it is the only group).
//   - Picks epsilon/vector/bitmap per group under the fixed cost model:
//     a vector edge costs one byte per value, a bitmap costs 32 bytes
//     flat, an epsilon or default edge is always cheapest.
//
// Why
//
//   - A generator (e.g. an Aho–Corasick builder) produces edges
//     incrementally and may emit redundant or poorly-packed edge lists;
//     Optimize collapses them to what compiler.Compile actually needs to
//     pack efficiently, without touching node behavior.
//
// Determinism
//
//	Edge order in the rewritten list is the first-seen order of the
//	inverted map (input byte 0 upward), so calling Optimize twice on an
//	unmodified node produces byte-identical output.
//
// Complexity: O(256 × out_degree) per node (every edge is tested against
// each of the 256 input bytes).
package optimize
