package engine

import "github.com/google/uuid"

// State is one scan session over an Engine's image: the current node
// offset and, while inside a PC node's literal path, how far the last
// byte matched. A State is not safe for concurrent use, but independent
// States over the same Engine never interfere with each other.
type State struct {
	eng *Engine
	pos uint64
	// pcHop is -1 outside a PC node; otherwise the index of the next
	// path byte to match.
	pcHop int

	// SessionID correlates this scan session across telemetry spans and
	// logs; it carries no meaning inside the engine itself.
	SessionID uuid.UUID
}

// CreateState starts a new scan session at the image's start node and
// immediately processes any outputs attached to it, through cb. cb may be
// nil if the caller has no interest in output reached before the first
// Execute call (the Go closure over cb stands in for the C API's separate
// callback_data parameter — there is nothing else to thread through).
func (e *Engine) CreateState(cb Callback) (*State, error) {
	id, err := uuid.NewRandom()
	if err != nil {
		return nil, err
	}
	s := &State{
		eng:       e,
		pos:       uint64(e.header.StartIndex),
		pcHop:     -1,
		SessionID: id,
	}
	if cb != nil {
		if outOff, ok := e.nodeOutputOffset(s.pos); ok {
			e.emitOutputs(outOff, cb)
		}
	}
	return s, nil
}

// Reset rewinds the session to the image's start node, as if freshly
// created, keeping the same SessionID.
func (s *State) Reset() {
	s.pos = uint64(s.eng.header.StartIndex)
	s.pcHop = -1
}

// AtStart reports whether the session is positioned at the image's start
// node with no partial PC match in progress.
func (s *State) AtStart() bool {
	return s.pos == uint64(s.eng.header.StartIndex) && s.pcHop == -1
}
