package engine

import "github.com/ironautomata/eudoxus/format"

// Signal is a Callback's verdict: whether scanning should continue or
// stop immediately.
type Signal int

const (
	// SignalContinue resumes scanning after this output.
	SignalContinue Signal = iota
	// SignalStop halts Execute immediately; no further bytes are consumed.
	SignalStop
)

// Callback is invoked once per output reached during a scan, in chain
// order (each node's output list may chain several outputs together).
type Callback func(content []byte) Signal

// emitOutputs walks the output chain starting at off, calling cb for each
// entry's content until the chain ends (format.NoOffset) or cb returns
// SignalStop. It reports whether a stop was requested.
func (e *Engine) emitOutputs(off uint64, cb Callback) bool {
	for off != format.NoOffset {
		length := uint64(e.bo.Uint16(e.buf[off : off+2]))
		content := e.buf[off+2 : off+2+length]
		if cb(content) == SignalStop {
			return true
		}
		off = format.Offset(e.buf[off+2+length:], e.w, e.bo)
	}
	return false
}
