// Package nonadvance eliminates or shortens non-advancing transitions: an
// edge A→B that does not consume input lets the engine "look one step
// ahead" at compile time, so if B's behavior on the same byte is already
// known, A's transition can be retargeted or dropped without changing
// what the automaton accepts or emits. See spec.md §4.3.
package nonadvance

import "github.com/ironautomata/eudoxus/automaton"

// Run repeats a single-visit-per-node sweep in the mode's variant until a
// sweep makes zero modifications (a fixed point), and returns the total
// number of modifications made across all sweeps. Each sweep visits nodes
// in the breadth-first order computed at the start of that sweep.
func Run(a *automaton.Automaton, mode Mode) (int, error) {
	if a == nil {
		return 0, automaton.ErrAutomatonNil
	}

	total := 0
	for {
		order, err := automaton.Reachable(a)
		if err != nil {
			return total, err
		}

		sweep := 0
		for _, id := range order {
			node, err := a.Node(id)
			if err != nil {
				return total, err
			}

			var mods int
			switch mode {
			case Aggressive:
				mods, err = splitPass(a, node, true)
			case Conservative:
				mods, err = splitPass(a, node, false)
			case Structural:
				mods, err = structuralPass(a, node)
			default:
				return total, ErrUnknownMode
			}
			if err != nil {
				return total, err
			}
			sweep += mods
		}

		total += sweep
		if sweep == 0 {
			return total, nil
		}
	}
}

// eligibleLookahead reports whether it is safe to consult B's behavior in
// place of taking the non-advancing transition into it: either B emits no
// output at all, or the automaton suppresses output on non-advancing steps
// anyway (NoAdvanceNoOutput), in which case arriving at B without advancing
// can never have produced a visible output regardless.
func eligibleLookahead(a *automaton.Automaton, b *automaton.Node) bool {
	return b.FirstOutput == automaton.NoOutput || a.NoAdvanceNoOutput()
}

// uniformTarget reports whether every byte in s maps, via TargetsFor(b, c),
// to the exact same singleton (target, advance) pair, returning that pair
// if so.
func uniformTarget(b *automaton.Node, s []byte) (automaton.Target, bool) {
	var common automaton.Target
	seen := false
	for _, c := range s {
		targets := automaton.TargetsFor(b, c)
		if len(targets) != 1 {
			return automaton.Target{}, false
		}
		if !seen {
			common = targets[0]
			seen = true
			continue
		}
		if targets[0] != common {
			return automaton.Target{}, false
		}
	}
	if !seen {
		return automaton.Target{}, false
	}
	return common, true
}
