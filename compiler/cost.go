package compiler

import "github.com/ironautomata/eudoxus/format"

const bitmapBytes = 32 // one bit per input byte value, 256 bits

// lowCost returns the exact encoded byte length of a Low node: header byte,
// optional first_output, an out_degree byte plus (value,target) pair per
// covered byte when outDegree > 0, an optional packed advance bitmap sized
// to the edge array (not to all 256 bytes — only covered entries need a
// bit), and an optional default.
//
// This must stay byte-for-byte identical to encodeLow's actual output:
// assemble lays out every node's offset from this size before encodeLow
// writes it. No check compares the bytes written against this cost.
func lowCost(w format.IDWidth, hasOutput, hasDefault, hasNonAdvancing bool, outDegree int) int {
	n := 1
	if hasOutput {
		n += int(w)
	}
	if outDegree > 0 {
		n++
		n += outDegree * (1 + int(w))
		if hasNonAdvancing {
			n += (outDegree + 7) / 8
		}
	}
	if hasDefault {
		n += int(w)
	}
	return n
}

// highCost returns the exact encoded byte length of a High node. Its
// target array always has outDegree slots (one per covered byte, located
// via popcount-rank through a 256-bit presence bitmap) — ALI run-length
// indirection is not implemented (see DESIGN.md), so consecutive targets
// are never folded.
func highCost(w format.IDWidth, hasOutput, hasDefault, hasNonAdvancing bool, outDegree int) int {
	n := 1
	if hasOutput {
		n += int(w)
	}
	if hasDefault {
		n += int(w)
	}
	if hasNonAdvancing {
		n += bitmapBytes
	}
	if outDegree < 256 {
		n += bitmapBytes
	}
	n += outDegree * int(w)
	return n
}

// pcCost returns the exact encoded byte length of a PC node compressing a
// chain of the given length.
func pcCost(w format.IDWidth, hasOutput, hasDefault bool, length int) int {
	n := 1
	if hasOutput {
		n += int(w)
	}
	if hasDefault {
		n += int(w)
	}
	if _, explicit := format.EncodePCLength(length); explicit {
		n++
	}
	n += int(w) // final_target
	n += length // path bytes
	return n
}
