package engine

// MetadataVisitor is called once per metadata key/value pair, in the
// automaton's insertion order. If it returns false, Metadata stops early.
type MetadataVisitor func(key, value []byte) bool

// Metadata walks the image's metadata region, calling visit for each
// key/value pair until the region is exhausted or visit returns false.
func (e *Engine) Metadata(visit MetadataVisitor) {
	off := e.header.MetadataIndex
	for i := uint32(0); i < e.header.NumMetadata; i++ {
		keyLen := uint64(e.bo.Uint16(e.buf[off : off+2]))
		off += 2
		key := e.buf[off : off+keyLen]
		off += keyLen

		valLen := uint64(e.bo.Uint16(e.buf[off : off+2]))
		off += 2
		value := e.buf[off : off+valLen]
		off += valLen

		if !visit(key, value) {
			return
		}
	}
}

// MetadataWithKey returns the value of the first metadata pair whose key
// equals key, and whether one was found.
func (e *Engine) MetadataWithKey(key []byte) ([]byte, bool) {
	var found []byte
	ok := false
	e.Metadata(func(k, v []byte) bool {
		if string(k) == string(key) {
			found = v
			ok = true
			return false
		}
		return true
	})
	return found, ok
}

// OutputVisitor is called once per output content entry in the image's
// output region, in on-disk order. If it returns false, AllOutputs stops
// early.
type OutputVisitor func(content []byte) bool

// AllOutputs walks every output content entry in the image, regardless of
// which nodes reference it, calling visit for each. This is a whole-image
// inspection tool (e.g. for dumping or auditing a compiled image) rather
// than a scan-time operation — Execute's Callback only ever sees outputs
// actually reached while matching.
func (e *Engine) AllOutputs(visit OutputVisitor) {
	off := e.header.FirstOutput
	for i := uint32(0); i < e.header.NumOutputs; i++ {
		length := uint64(e.bo.Uint16(e.buf[off : off+2]))
		content := e.buf[off+2 : off+2+length]
		if !visit(content) {
			return
		}
		off += 2 + length + uint64(e.w)
	}
}
