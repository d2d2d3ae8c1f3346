// Package engine implements the Eudoxus streaming interpreter: Load reads
// a compiler-produced binary image, CreateState starts a scan session over
// it, and Execute feeds the session bytes one chunk at a time, invoking a
// Callback once per output reached.
//
// What
//
//   - Load validates the image header and wraps the raw buffer; it does
//     not walk the node graph (the image is trusted to have come from
//     compiler.Compile).
//   - State holds exactly the two things scanning one input stream needs
//     to resume across Execute calls: the current node offset, and (while
//     inside a PC node) how far along its literal path the last byte
//     matched.
//   - Execute advances byte by byte. A non-advancing transition (Low/High
//     edge, or a PC mismatch falling to its default) re-examines the same
//     input byte against the new node before moving on — this is the only
//     source of a "retry" step that does not consume input.
//   - Metadata, MetadataWithKey, and AllOutputs inspect the whole image
//     independent of any scan position: the first two walk the metadata
//     region's key/value pairs, the third walks every output content
//     entry regardless of whether a State's Execute would ever reach it.
//   - CreateState immediately emits any output attached to the start
//     node through the callback it is given. Calling Execute with a nil
//     or empty input re-emits the current node's output the same way,
//     without advancing — the mechanism for resuming a stream a
//     Callback previously paused by returning SignalStop.
//
// Why
//
//	Per spec.md's design note on monomorphized decoding: rather than
//	hand-duplicating the decode loop once per concrete IDWidth, this
//	package dispatches width once per field through format.Offset, which
//	inlines to the same handful of instructions a monomorphized version
//	would — the generic version is not written by hand here because it
//	cannot be exercised by tests without running the toolchain; see
//	DESIGN.md.
//
// Usage
//
//	eng, err := engine.Load(image)
//	st, _ := eng.CreateState(nil)
//	result, n, err := st.Execute(chunk, func(content []byte) engine.Signal {
//		fmt.Println(string(content))
//		return engine.SignalContinue
//	})
//
// Errors
//
//   - format.ErrInvalid / format.ErrIncompatible from Load.
//   - format.ErrInsane if Execute detects a non-advancing transition loop
//     that should be structurally impossible in a well-formed image.
package engine
