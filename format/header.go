package format

import (
	"encoding/binary"
	"fmt"
)

// HeaderSize is the fixed byte length of the image header, offset 0.
const HeaderSize = 58

// Header is the fixed preamble written at the start of every Eudoxus
// image. All numeric fields are encoded using Header.ByteOrder() — the
// header's own endianness flag is self-describing, so Decode never needs
// to be told which order to use.
type Header struct {
	Version           uint16
	IDWidth           IDWidth
	BigEndian         bool
	NoAdvanceNoOutput bool
	NumNodes          uint32
	NumOutputs        uint32
	NumOutputLists    uint32
	NumMetadata       uint32
	DataLength        uint64 // total image size in bytes, including this header
	StartIndex        uint32 // byte offset of the start node; always < 256
	FirstOutput       uint64 // byte offset of the output-content region
	FirstOutputList   uint64 // byte offset of the output-list region
	MetadataIndex     uint64 // byte offset of the metadata region, or 0 if absent
}

func boolByte(b bool) byte {
	if b {
		return 1
	}
	return 0
}

// ByteOrder returns the binary.ByteOrder this header's fields (and the
// rest of the image) were encoded with.
func (h Header) ByteOrder() binary.ByteOrder {
	return ByteOrder(h.BigEndian)
}

// Encode writes h into a HeaderSize-length buffer.
func (h Header) Encode() []byte {
	buf := make([]byte, HeaderSize)
	bo := h.ByteOrder()
	bo.PutUint16(buf[0:2], h.Version)
	buf[2] = byte(h.IDWidth)
	buf[3] = boolByte(h.BigEndian)
	buf[4] = boolByte(h.NoAdvanceNoOutput)
	buf[5] = 0 // reserved
	bo.PutUint32(buf[6:10], h.NumNodes)
	bo.PutUint32(buf[10:14], h.NumOutputs)
	bo.PutUint32(buf[14:18], h.NumOutputLists)
	bo.PutUint32(buf[18:22], h.NumMetadata)
	bo.PutUint64(buf[22:30], h.DataLength)
	bo.PutUint32(buf[30:34], h.StartIndex)
	bo.PutUint64(buf[34:42], h.FirstOutput)
	bo.PutUint64(buf[42:50], h.FirstOutputList)
	bo.PutUint64(buf[50:58], h.MetadataIndex)
	return buf
}

// DecodeHeader parses a Header from the start of buf. It validates Version
// and IDWidth but not cross-field consistency (NumNodes vs DataLength,
// etc.) — that is the engine's Load responsibility, since it alone knows
// the full image length to check offsets against.
func DecodeHeader(buf []byte) (Header, error) {
	if len(buf) < HeaderSize {
		return Header{}, fmt.Errorf("%w: buffer too short for header: %d bytes", ErrInvalid, len(buf))
	}
	bigEndian := buf[3] != 0
	bo := ByteOrder(bigEndian)

	h := Header{
		Version:           bo.Uint16(buf[0:2]),
		IDWidth:           IDWidth(buf[2]),
		BigEndian:         bigEndian,
		NoAdvanceNoOutput: buf[4] != 0,
		NumNodes:          bo.Uint32(buf[6:10]),
		NumOutputs:        bo.Uint32(buf[10:14]),
		NumOutputLists:    bo.Uint32(buf[14:18]),
		NumMetadata:       bo.Uint32(buf[18:22]),
		DataLength:        bo.Uint64(buf[22:30]),
		StartIndex:        bo.Uint32(buf[30:34]),
		FirstOutput:       bo.Uint64(buf[34:42]),
		FirstOutputList:   bo.Uint64(buf[42:50]),
		MetadataIndex:     bo.Uint64(buf[50:58]),
	}
	if h.Version != Version {
		return Header{}, fmt.Errorf("%w: image version %d, want %d", ErrIncompatible, h.Version, Version)
	}
	if !h.IDWidth.Valid() {
		return Header{}, fmt.Errorf("%w: invalid id width %d", ErrInvalid, h.IDWidth)
	}
	return h, nil
}
