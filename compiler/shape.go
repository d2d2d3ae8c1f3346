package compiler

import (
	"github.com/ironautomata/eudoxus/automaton"
	"github.com/ironautomata/eudoxus/internal/bitset"
)

// nodeShape is the canonical per-node view compiler encodes from: which of
// the 256 input bytes carry an explicit edge, what each resolves to, and
// the node's output/default. It is built once per node from
// automaton.EdgesFor (never TargetsFor, which would fold the default into
// bytes that have no edge of their own — exactly the distinction Low/High
// encoding needs to keep separate from the default field).
type nodeShape struct {
	hasOutput        bool
	firstOutput      automaton.OutputID
	hasDefault       bool
	defaultTarget    automaton.NodeID
	advanceOnDefault bool
	hasNonAdvancing  bool
	covered          bitset.Set256
	targetOf         [256]automaton.Target
}

func shapeOf(node *automaton.Node) nodeShape {
	var s nodeShape
	s.hasOutput = node.FirstOutput != automaton.NoOutput
	s.firstOutput = node.FirstOutput
	s.hasDefault = node.Default != automaton.NoNode
	s.defaultTarget = node.Default
	s.advanceOnDefault = node.AdvanceOnDefault

	for c := 0; c < 256; c++ {
		edges := automaton.EdgesFor(node, byte(c))
		if len(edges) == 0 {
			continue
		}
		s.covered.Set(byte(c))
		t := automaton.Target{Node: edges[0].Target, Advance: edges[0].Advance}
		s.targetOf[c] = t
		if !t.Advance {
			s.hasNonAdvancing = true
		}
	}
	return s
}

func (s nodeShape) outDegree() int { return s.covered.Count() }

// advanceSet returns, for a High node, the full 256-bit bitmap marking
// which covered bytes resolve to a non-advancing transition.
func (s nodeShape) advanceSet() bitset.Set256 {
	var b bitset.Set256
	for c := 0; c < 256; c++ {
		if s.covered.Test(byte(c)) && !s.targetOf[c].Advance {
			b.Set(byte(c))
		}
	}
	return b
}
