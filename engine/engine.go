package engine

import (
	"encoding/binary"
	"fmt"

	"github.com/ironautomata/eudoxus/format"
)

// Engine wraps a loaded Eudoxus image. It is immutable and safe for
// concurrent use by multiple States — every State carries its own
// position, and Engine itself holds no mutable scan state.
type Engine struct {
	buf    []byte
	bo     binary.ByteOrder
	w      format.IDWidth
	header format.Header
}

// Load validates buf's header and wraps it for scanning. It performs only
// the shallow checks the header itself makes possible (version, id width,
// declared length, start offset in range) — it does not walk the node
// graph, since the image is expected to have come from compiler.Compile.
func Load(buf []byte) (*Engine, error) {
	h, err := format.DecodeHeader(buf)
	if err != nil {
		return nil, err
	}
	if uint64(len(buf)) != h.DataLength {
		return nil, fmt.Errorf("%w: buffer length %d does not match header data_length %d", format.ErrInvalid, len(buf), h.DataLength)
	}
	if uint64(h.StartIndex) >= h.DataLength {
		return nil, fmt.Errorf("%w: start_index %d outside image", format.ErrInvalid, h.StartIndex)
	}
	return &Engine{
		buf:    buf,
		bo:     h.ByteOrder(),
		w:      h.IDWidth,
		header: h,
	}, nil
}

// IDWidth reports the offset width this image was compiled with.
func (e *Engine) IDWidth() format.IDWidth { return e.w }

// NumNodes reports the image's node count (post PC-compression — a
// collapsed chain counts as one node).
func (e *Engine) NumNodes() int { return int(e.header.NumNodes) }
