package automaton

import "fmt"

// DedupOutputs collapses structurally-identical output chains: two outputs
// with equal content and the same (already-canonicalized) next pointer are
// merged into one. This is optional and off by default (see spec.md §9,
// Open Questions) — it never changes any node's emitted output sequence,
// it only reduces how many distinct Output entries the automaton (and
// later the compiler's output-content/output-list regions) must store.
//
// DedupOutputs rewrites the automaton in place and returns the number of
// outputs eliminated.
func DedupOutputs(a *Automaton) (int, error) {
	canon := make(map[OutputID]OutputID, len(a.outputs))
	key := make(map[string]OutputID, len(a.outputs))
	inProgress := make(map[OutputID]bool, len(a.outputs))

	var resolve func(id OutputID) (OutputID, error)
	resolve = func(id OutputID) (OutputID, error) {
		if id == NoOutput {
			return NoOutput, nil
		}
		if c, ok := canon[id]; ok {
			return c, nil
		}
		if inProgress[id] {
			return NoOutput, ErrOutputCycle
		}
		inProgress[id] = true
		out, err := a.Output(id)
		if err != nil {
			return NoOutput, err
		}
		nextCanon, err := resolve(out.Next)
		if err != nil {
			return NoOutput, err
		}
		inProgress[id] = false

		k := fmt.Sprintf("%d:%s", nextCanon, out.Content)
		if existing, ok := key[k]; ok {
			canon[id] = existing
			return existing, nil
		}
		key[k] = id
		canon[id] = id
		return id, nil
	}

	for id := range a.outputs {
		if _, err := resolve(OutputID(id)); err != nil {
			return 0, err
		}
	}

	removed := 0
	for id, c := range canon {
		if c != id {
			removed++
		}
	}
	if removed == 0 {
		return 0, nil
	}

	for _, n := range a.nodes {
		if n.FirstOutput != NoOutput {
			n.FirstOutput = canon[n.FirstOutput]
		}
	}
	for _, o := range a.outputs {
		if o.Next != NoOutput {
			o.Next = canon[o.Next]
		}
	}
	return removed, nil
}
