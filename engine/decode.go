package engine

import (
	"github.com/ironautomata/eudoxus/format"
	"github.com/ironautomata/eudoxus/internal/bitset"
)

// dispatchLow scans a Low node's edge array for byte c, folding in the
// node's default if nothing matches. found is false only when neither an
// edge nor a default applies — a genuine dead end.
func (e *Engine) dispatchLow(off uint64, c byte) (target uint64, advance, found bool) {
	flags := e.buf[off] & 0x3F
	p := off + 1

	hasOutput := flags&format.LowHasOutput != 0
	hasNonAdvancing := flags&format.LowHasNonAdvancing != 0
	hasDefault := flags&format.LowHasDefault != 0
	advanceOnDefault := flags&format.LowAdvanceOnDefault != 0
	hasEdges := flags&format.LowHasEdges != 0

	if hasOutput {
		p += uint64(e.w)
	}
	var outDegree int
	if hasEdges {
		outDegree = int(e.buf[p])
		p++
	}
	var defaultOff uint64
	if hasDefault {
		defaultOff = format.Offset(e.buf[p:], e.w, e.bo)
		p += uint64(e.w)
	}
	if !hasEdges {
		if hasDefault {
			return defaultOff, advanceOnDefault, true
		}
		return 0, false, false
	}

	var advBitmapStart uint64
	if hasNonAdvancing {
		advBitmapStart = p
		p += uint64((outDegree + 7) / 8)
	}
	for i := 0; i < outDegree; i++ {
		val := e.buf[p]
		if val == c {
			tOff := format.Offset(e.buf[p+1:], e.w, e.bo)
			adv := true
			if hasNonAdvancing {
				byteIdx := uint64(i / 8)
				bitIdx := uint(i % 8)
				if e.buf[advBitmapStart+byteIdx]&(1<<bitIdx) != 0 {
					adv = false
				}
			}
			return tOff, adv, true
		}
		p += 1 + uint64(e.w)
	}
	if hasDefault {
		return defaultOff, advanceOnDefault, true
	}
	return 0, false, false
}

// dispatchHigh locates byte c's target via a 256-bit presence bitmap
// (popcount-rank into the target array) or, if the node covers all 256
// bytes, direct indexing.
func (e *Engine) dispatchHigh(off uint64, c byte) (target uint64, advance, found bool) {
	flags := e.buf[off] & 0x3F
	p := off + 1

	hasOutput := flags&format.HighHasOutput != 0
	hasNonAdvancing := flags&format.HighHasNonAdvancing != 0
	hasDefault := flags&format.HighHasDefault != 0
	advanceOnDefault := flags&format.HighAdvanceOnDefault != 0
	hasBitmap := flags&format.HighHasTargetBitmap != 0

	if hasOutput {
		p += uint64(e.w)
	}
	var defaultOff uint64
	if hasDefault {
		defaultOff = format.Offset(e.buf[p:], e.w, e.bo)
		p += uint64(e.w)
	}
	var advBitmap bitset.Set256
	if hasNonAdvancing {
		advBitmap = bitset.FromBytes(e.buf[p : p+32])
		p += 32
	}
	var covered bitset.Set256
	if hasBitmap {
		covered = bitset.FromBytes(e.buf[p : p+32])
		p += 32
	}

	var idx int
	if hasBitmap {
		if !covered.Test(c) {
			if hasDefault {
				return defaultOff, advanceOnDefault, true
			}
			return 0, false, false
		}
		idx = covered.RankBefore(c)
	} else {
		idx = int(c)
	}

	tOff := format.Offset(e.buf[p+uint64(idx)*uint64(e.w):], e.w, e.bo)
	adv := true
	if hasNonAdvancing && advBitmap.Test(c) {
		adv = false
	}
	return tOff, adv, true
}

// pcDecoded is the fully-parsed view of a PC node, re-derived from the
// image on every visit (PC nodes hold no mutable engine-side cache).
type pcDecoded struct {
	hasOutput        bool
	outputOff        uint64
	hasDefault       bool
	defaultOff       uint64
	advanceOnDefault bool
	path             []byte
	finalOff         uint64
}

func (e *Engine) decodePC(off uint64) pcDecoded {
	flags := e.buf[off] & 0x3F
	p := off + 1

	var d pcDecoded
	d.hasOutput = flags&format.PCHasOutput != 0
	d.hasDefault = flags&format.PCHasDefault != 0
	d.advanceOnDefault = flags&format.PCAdvanceOnDefault != 0

	if d.hasOutput {
		d.outputOff = format.Offset(e.buf[p:], e.w, e.bo)
		p += uint64(e.w)
	}
	if d.hasDefault {
		d.defaultOff = format.Offset(e.buf[p:], e.w, e.bo)
		p += uint64(e.w)
	}
	code, explicit := format.DecodePCLength(flags)
	length := format.PCInlineLength(code)
	if explicit {
		length = int(e.buf[p])
		p++
	}
	d.finalOff = format.Offset(e.buf[p:], e.w, e.bo)
	p += uint64(e.w)
	d.path = e.buf[p : p+uint64(length)]
	return d
}

// nodeOutputOffset reads the first_output field of whatever node kind
// sits at off, or (false, 0) if that node carries no output. Every kind
// stores first_output, when present, immediately after the header byte —
// the one layout detail all three share.
func (e *Engine) nodeOutputOffset(off uint64) (uint64, bool) {
	kind, flags := format.UnpackHeader(e.buf[off])
	var hasOutput bool
	switch kind {
	case format.KindLow:
		hasOutput = flags&format.LowHasOutput != 0
	case format.KindHigh:
		hasOutput = flags&format.HighHasOutput != 0
	case format.KindPC:
		hasOutput = flags&format.PCHasOutput != 0
	}
	if !hasOutput {
		return 0, false
	}
	return format.Offset(e.buf[off+1:], e.w, e.bo), true
}
