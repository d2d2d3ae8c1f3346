package compiler

import (
	"errors"
	"fmt"

	"github.com/ironautomata/eudoxus/automaton"
	"github.com/ironautomata/eudoxus/format"
)

// errWidthOverflow signals that an image, laid out with the candidate
// width w, needs an offset larger than w can address. Compile catches it
// and retries with the next wider width.
var errWidthOverflow = errors.New("compiler: image exceeds id width")

// NodeKindStats counts how many nodes of each kind a compiled image uses,
// and how many bytes each kind occupies in total.
type NodeKindStats struct {
	Low       int
	High      int
	PC        int
	LowBytes  int
	HighBytes int
	PCBytes   int
}

// String renders a short table of counts and byte totals per node kind,
// in the order PC, Low, High, matching the order the compiler prefers
// them when a node qualifies for more than one kind.
func (s NodeKindStats) String() string {
	return fmt.Sprintf(
		"PC: %d nodes, %d bytes\nLow: %d nodes, %d bytes\nHigh: %d nodes, %d bytes",
		s.PC, s.PCBytes, s.Low, s.LowBytes, s.High, s.HighBytes,
	)
}

// assemble lays out and writes a complete image for automaton a at id
// width w. It is a true two-pass assembler: pass one (sizing) computes
// every node and output's exact byte length and therefore its absolute
// offset before a single byte is written; pass two writes every field
// using those now-fixed offsets. No pointer is ever written before its
// target's final address is known, so there is no fixup/relocation step.
func assemble(a *automaton.Automaton, nodes []automaton.NodeID, chains map[automaton.NodeID]*chain, w format.IDWidth, cfg Config) ([]byte, NodeKindStats, int, error) {
	bo := format.ByteOrder(cfg.BigEndian)
	var stats NodeKindStats

	shapes := make(map[automaton.NodeID]nodeShape, len(nodes))
	kinds := make(map[automaton.NodeID]format.Kind, len(nodes))
	sizes := make(map[automaton.NodeID]int, len(nodes))

	for _, id := range nodes {
		if c, ok := chains[id]; ok {
			kinds[id] = format.KindPC
			sizes[id] = pcCost(w, c.hasOutput, c.hasDefault, len(c.path))
			stats.PC++
			stats.PCBytes += sizes[id]
			continue
		}
		node := a.MustNode(id)
		s := shapeOf(node)
		shapes[id] = s
		od := s.outDegree()
		lc := lowCost(w, s.hasOutput, s.hasDefault, s.hasNonAdvancing, od)
		hc := highCost(w, s.hasOutput, s.hasDefault, s.hasNonAdvancing, od)
		if float64(hc) <= float64(lc)*cfg.HighNodeWeight {
			kinds[id] = format.KindHigh
			sizes[id] = hc
			stats.High++
			stats.HighBytes += hc
		} else {
			kinds[id] = format.KindLow
			sizes[id] = lc
			stats.Low++
			stats.LowBytes += lc
		}
	}

	align := uint64(cfg.AlignTo)
	if align < 1 {
		align = 1
	}

	nodeOffset := make(map[automaton.NodeID]uint64, len(nodes))
	type span struct{ start, end uint64 }
	var paddingSpans []span
	cur := uint64(format.HeaderSize)
	for _, id := range nodes {
		if align > 1 && cur%align != 0 {
			padStart := cur
			cur += align - cur%align
			paddingSpans = append(paddingSpans, span{padStart, cur})
		}
		nodeOffset[id] = cur
		cur += uint64(sizes[id])
	}
	nodeRegionEnd := cur

	paddingBytes := 0
	for _, sp := range paddingSpans {
		paddingBytes += int(sp.end - sp.start)
	}

	outputOffset := make([]uint64, a.OutputCount())
	cur = nodeRegionEnd
	firstOutput := uint64(0)
	if a.OutputCount() > 0 {
		firstOutput = cur
	}
	for i := 0; i < a.OutputCount(); i++ {
		out, err := a.Output(automaton.OutputID(i))
		if err != nil {
			return nil, stats, 0, err
		}
		outputOffset[i] = cur
		cur += 2 + uint64(len(out.Content)) + uint64(w)
	}
	outputRegionEnd := cur

	meta := a.Metadata()
	metaStart := uint64(0)
	cur = outputRegionEnd
	if len(meta) > 0 {
		metaStart = cur
		for _, e := range meta {
			cur += 2 + uint64(len(e.Key)) + 2 + uint64(len(e.Value))
		}
	}
	dataLength := cur

	if dataLength > 0 && dataLength-1 > w.Max() {
		return nil, stats, 0, errWidthOverflow
	}
	startOffset, ok := nodeOffset[a.Start()]
	if !ok {
		return nil, stats, 0, fmt.Errorf("%w: start node is not in the encodable node set", format.ErrInsane)
	}
	if startOffset >= 256 {
		return nil, stats, 0, fmt.Errorf("%w: start node offset %d does not fit the header's start_index range", format.ErrInsane, startOffset)
	}

	buf := make([]byte, dataLength)
	h := format.Header{
		Version:           format.Version,
		IDWidth:           w,
		BigEndian:         cfg.BigEndian,
		NoAdvanceNoOutput: a.NoAdvanceNoOutput(),
		NumNodes:          uint32(len(nodes)),
		NumOutputs:        uint32(a.OutputCount()),
		NumOutputLists:    uint32(a.OutputCount()),
		NumMetadata:       uint32(len(meta)),
		DataLength:        dataLength,
		StartIndex:        uint32(startOffset),
		FirstOutput:       firstOutput,
		FirstOutputList:   firstOutput,
		MetadataIndex:     metaStart,
	}
	copy(buf[:format.HeaderSize], h.Encode())

	for _, sp := range paddingSpans {
		for i := sp.start; i < sp.end; i++ {
			buf[i] = 0xAA
		}
	}

	outOff := make(map[automaton.OutputID]uint64, a.OutputCount())
	for i, off := range outputOffset {
		outOff[automaton.OutputID(i)] = off
	}
	for i := 0; i < a.OutputCount(); i++ {
		out, err := a.Output(automaton.OutputID(i))
		if err != nil {
			return nil, stats, 0, err
		}
		off := outputOffset[i]
		bo.PutUint16(buf[off:off+2], uint16(len(out.Content)))
		copy(buf[off+2:off+2+uint64(len(out.Content))], out.Content)
		next := uint64(format.NoOffset)
		if out.Next != automaton.NoOutput {
			next = outOff[out.Next]
		}
		format.PutOffset(buf[off+2+uint64(len(out.Content)):], w, bo, next)
	}

	cur = metaStart
	for _, e := range meta {
		bo.PutUint16(buf[cur:cur+2], uint16(len(e.Key)))
		cur += 2
		copy(buf[cur:cur+uint64(len(e.Key))], e.Key)
		cur += uint64(len(e.Key))
		bo.PutUint16(buf[cur:cur+2], uint16(len(e.Value)))
		cur += 2
		copy(buf[cur:cur+uint64(len(e.Value))], e.Value)
		cur += uint64(len(e.Value))
	}

	for _, id := range nodes {
		off := int(nodeOffset[id])
		if c, isChain := chains[id]; isChain {
			encodePC(buf, off, w, bo, c, outOff, nodeOffset)
			continue
		}
		switch kinds[id] {
		case format.KindLow:
			encodeLow(buf, off, w, bo, shapes[id], outOff, nodeOffset)
		case format.KindHigh:
			encodeHigh(buf, off, w, bo, shapes[id], outOff, nodeOffset)
		}
	}

	return buf, stats, paddingBytes, nil
}
