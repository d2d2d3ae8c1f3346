package engine

import (
	"fmt"

	"github.com/ironautomata/eudoxus/format"
)

// Result is the terminal condition Execute stopped for.
type Result int

const (
	// ResultOK means every byte of the input was consumed; the session
	// remains live and Execute may be called again with more input.
	ResultOK Result = iota
	// ResultEnd means the session reached a node with no edge, default,
	// or PC-mismatch fallback for the current byte — a true dead end.
	// The byte that dead-ended is not consumed and the session stays at
	// that node (a PC node's head); Reset returns it to the start node.
	ResultEnd
	// ResultStop means a Callback returned SignalStop.
	ResultStop
)

// stepResult describes the outcome of processing one input byte against
// the session's current node.
type stepResult struct {
	consumed bool // the input byte was consumed (Advance was true)
	dead     bool // no edge, default, or PC fallback applied
	stop     bool // a Callback returned SignalStop
}

// Execute feeds input to the session byte by byte, invoking cb once per
// output reached. It returns how many bytes of input were consumed (n)
// and why it stopped. A non-advancing transition consumes zero input
// bytes and is retried internally against the new node — bounded by the
// image's own node count, since a well-formed image can never cycle
// through non-advancing transitions without consuming input.
//
// A nil or empty input re-emits the current node's output through cb
// without advancing, and returns immediately: this is how a stream
// paused by a Callback returning SignalStop is resumed (spec.md's
// execute(state, null, 0)).
func (s *State) Execute(input []byte, cb Callback) (Result, int, error) {
	if len(input) == 0 {
		stop, err := s.emitCurrentOutput(cb)
		if err != nil {
			return ResultEnd, 0, err
		}
		if stop {
			return ResultStop, 0, nil
		}
		return ResultOK, 0, nil
	}

	i := 0
	retries := 0
	maxRetries := s.eng.NumNodes() + 1

	for i < len(input) {
		r, err := s.step(input[i], cb)
		if err != nil {
			return ResultEnd, i, err
		}
		if r.consumed {
			i++
		}
		if r.stop {
			return ResultStop, i, nil
		}
		if r.dead {
			return ResultEnd, i, nil
		}
		if !r.consumed {
			retries++
			if retries > maxRetries {
				return ResultEnd, i, fmt.Errorf("%w: non-advancing transition did not terminate", format.ErrInsane)
			}
		} else {
			retries = 0
		}
	}
	return ResultOK, i, nil
}

// ExecuteWithoutOutput scans input like Execute but discards every
// output, for callers that only need the terminal Result (e.g. a
// pure membership test).
func (s *State) ExecuteWithoutOutput(input []byte) (Result, int, error) {
	return s.Execute(input, func([]byte) Signal { return SignalContinue })
}

func (s *State) step(c byte, cb Callback) (stepResult, error) {
	if s.pcHop >= 0 {
		return s.matchPCHop(c, cb)
	}
	eng := s.eng
	kind, _ := format.UnpackHeader(eng.buf[s.pos])
	switch kind {
	case format.KindLow:
		target, advance, found := eng.dispatchLow(s.pos, c)
		return s.applyTransition(target, advance, found, cb)
	case format.KindHigh:
		target, advance, found := eng.dispatchHigh(s.pos, c)
		return s.applyTransition(target, advance, found, cb)
	case format.KindPC:
		s.pcHop = 0
		return s.matchPCHop(c, cb)
	default:
		return stepResult{}, fmt.Errorf("%w: unknown node kind at offset %d", format.ErrInvalid, s.pos)
	}
}

// applyTransition moves the session to target (if found) and emits
// whatever output target itself carries.
func (s *State) applyTransition(target uint64, advance, found bool, cb Callback) (stepResult, error) {
	if !found {
		return stepResult{dead: true}, nil
	}
	s.pos = target
	stop, err := s.emitArrivalOutput(advance, cb)
	if err != nil {
		return stepResult{}, err
	}
	return stepResult{consumed: advance, stop: stop}, nil
}

// emitArrivalOutput reports output for the node the session just moved
// to (s.pos), unless the image suppresses output on non-advancing
// arrivals and this one didn't advance.
func (s *State) emitArrivalOutput(advance bool, cb Callback) (bool, error) {
	eng := s.eng
	if eng.header.NoAdvanceNoOutput && !advance {
		return false, nil
	}
	outOff, ok := eng.nodeOutputOffset(s.pos)
	if !ok {
		return false, nil
	}
	return eng.emitOutputs(outOff, cb), nil
}

// emitCurrentOutput re-emits whatever output the session's current node
// carries, without moving the session or consuming input. While mid-hop
// inside a PC node's literal path (pcHop >= 0), there is no "current
// node" output to speak of — only a PC chain's head can carry output,
// and that was already emitted on entry — so this is a no-op there.
func (s *State) emitCurrentOutput(cb Callback) (bool, error) {
	if cb == nil || s.pcHop >= 0 {
		return false, nil
	}
	outOff, ok := s.eng.nodeOutputOffset(s.pos)
	if !ok {
		return false, nil
	}
	return s.eng.emitOutputs(outOff, cb), nil
}

// matchPCHop advances (or falls out of) the current PC node's literal
// path by one byte. It is called both on first entry (pcHop == 0, just
// set by step) and on every subsequent byte while pcHop >= 0.
func (s *State) matchPCHop(c byte, cb Callback) (stepResult, error) {
	pd := s.eng.decodePC(s.pos)
	if pd.path[s.pcHop] == c {
		s.pcHop++
		if s.pcHop < len(pd.path) {
			return stepResult{consumed: true}, nil
		}
		s.pos = pd.finalOff
		s.pcHop = -1
		stop, err := s.emitArrivalOutput(true, cb)
		if err != nil {
			return stepResult{}, err
		}
		return stepResult{consumed: true, stop: stop}, nil
	}

	s.pcHop = -1
	if !pd.hasDefault {
		return stepResult{dead: true}, nil
	}
	s.pos = pd.defaultOff
	stop, err := s.emitArrivalOutput(pd.advanceOnDefault, cb)
	if err != nil {
		return stepResult{}, err
	}
	return stepResult{consumed: pd.advanceOnDefault, stop: stop}, nil
}
