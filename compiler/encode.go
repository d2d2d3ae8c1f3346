package compiler

import (
	"encoding/binary"

	"github.com/ironautomata/eudoxus/automaton"
	"github.com/ironautomata/eudoxus/format"
)

// encodeLow writes a Low node at buf[off:off+lowCost(...)]. Order matches
// the engine's decode algorithm (spec.md §4.5): header, first_output,
// out_degree, default, advance bitmap, edge array.
func encodeLow(buf []byte, off int, w format.IDWidth, bo binary.ByteOrder, s nodeShape, outputOffset map[automaton.OutputID]uint64, nodeOffset map[automaton.NodeID]uint64) {
	od := s.outDegree()

	var flags byte
	if s.hasOutput {
		flags |= format.LowHasOutput
	}
	if s.hasNonAdvancing {
		flags |= format.LowHasNonAdvancing
	}
	if s.hasDefault {
		flags |= format.LowHasDefault
	}
	if s.hasDefault && s.advanceOnDefault {
		flags |= format.LowAdvanceOnDefault
	}
	if od > 0 {
		flags |= format.LowHasEdges
	}
	buf[off] = format.PackHeader(format.KindLow, flags)
	p := off + 1

	if s.hasOutput {
		format.PutOffset(buf[p:], w, bo, outputOffset[s.firstOutput])
		p += int(w)
	}
	if od > 0 {
		buf[p] = byte(od)
		p++
	}
	if s.hasDefault {
		format.PutOffset(buf[p:], w, bo, nodeOffset[s.defaultTarget])
		p += int(w)
	}
	if od == 0 {
		return
	}
	if s.hasNonAdvancing {
		bmLen := (od + 7) / 8
		bm := buf[p : p+bmLen]
		idx := 0
		for c := 0; c < 256; c++ {
			if !s.covered.Test(byte(c)) {
				continue
			}
			if !s.targetOf[c].Advance {
				bm[idx/8] |= 1 << uint(idx%8)
			}
			idx++
		}
		p += bmLen
	}
	for c := 0; c < 256; c++ {
		if !s.covered.Test(byte(c)) {
			continue
		}
		buf[p] = byte(c)
		p++
		format.PutOffset(buf[p:], w, bo, nodeOffset[s.targetOf[c].Node])
		p += int(w)
	}
}

// encodeHigh writes a High node: header, first_output, default, advance
// bitmap, target-presence bitmap, target array (one slot per covered byte,
// ascending order — located at decode time via Set256.RankBefore).
func encodeHigh(buf []byte, off int, w format.IDWidth, bo binary.ByteOrder, s nodeShape, outputOffset map[automaton.OutputID]uint64, nodeOffset map[automaton.NodeID]uint64) {
	od := s.outDegree()
	hasBitmap := od < 256

	var flags byte
	if s.hasOutput {
		flags |= format.HighHasOutput
	}
	if s.hasNonAdvancing {
		flags |= format.HighHasNonAdvancing
	}
	if s.hasDefault {
		flags |= format.HighHasDefault
	}
	if s.hasDefault && s.advanceOnDefault {
		flags |= format.HighAdvanceOnDefault
	}
	if hasBitmap {
		flags |= format.HighHasTargetBitmap
	}
	buf[off] = format.PackHeader(format.KindHigh, flags)
	p := off + 1

	if s.hasOutput {
		format.PutOffset(buf[p:], w, bo, outputOffset[s.firstOutput])
		p += int(w)
	}
	if s.hasDefault {
		format.PutOffset(buf[p:], w, bo, nodeOffset[s.defaultTarget])
		p += int(w)
	}
	if s.hasNonAdvancing {
		adv := s.advanceSet().Bytes()
		copy(buf[p:p+32], adv[:])
		p += 32
	}
	if hasBitmap {
		cov := s.covered.Bytes()
		copy(buf[p:p+32], cov[:])
		p += 32
	}
	for c := 0; c < 256; c++ {
		if !s.covered.Test(byte(c)) {
			continue
		}
		format.PutOffset(buf[p:], w, bo, nodeOffset[s.targetOf[c].Node])
		p += int(w)
	}
}

// encodePC writes a PC node: header (carrying the length code), optional
// first_output, optional default, an explicit length byte if the chain is
// longer than 4, final_target, then the literal path bytes.
func encodePC(buf []byte, off int, w format.IDWidth, bo binary.ByteOrder, c *chain, outputOffset map[automaton.OutputID]uint64, nodeOffset map[automaton.NodeID]uint64) {
	length := len(c.path)
	code, explicit := format.EncodePCLength(length)

	flags := code
	if c.hasOutput {
		flags |= format.PCHasOutput
	}
	if c.hasDefault {
		flags |= format.PCHasDefault
	}
	if c.hasDefault && c.advanceOnDefault {
		flags |= format.PCAdvanceOnDefault
	}
	flags |= format.PCAdvanceOnFinal
	buf[off] = format.PackHeader(format.KindPC, flags)
	p := off + 1

	if c.hasOutput {
		format.PutOffset(buf[p:], w, bo, outputOffset[c.firstOutput])
		p += int(w)
	}
	if c.hasDefault {
		format.PutOffset(buf[p:], w, bo, nodeOffset[c.defaultTarget])
		p += int(w)
	}
	if explicit {
		buf[p] = byte(length)
		p++
	}
	format.PutOffset(buf[p:], w, bo, nodeOffset[c.final.Node])
	p += int(w)
	copy(buf[p:p+length], c.path)
}
