package compiler

import (
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/ironautomata/eudoxus/automaton"
	"github.com/ironautomata/eudoxus/format"
)

// Result is the output of a successful Compile.
type Result struct {
	// Image is the complete, self-contained Eudoxus binary image.
	Image []byte

	// BuildID uniquely identifies this compilation, stamped into
	// telemetry spans and metrics rather than into the image itself
	// (the image format has no room reserved for it).
	BuildID uuid.UUID

	// IDWidth is the offset width the image was compiled with.
	IDWidth format.IDWidth

	// NodeKinds counts how many nodes of each kind the image contains.
	NodeKinds NodeKindStats

	// PaddingBytes is the total number of 0xAA alignment padding bytes
	// written into the image's node region. Always 0 when Config.AlignTo
	// is 1 (the default, which packs nodes with no padding).
	PaddingBytes int

	// Config is the configuration actually used to produce Image,
	// including any auto-selected IDWidth already resolved to its
	// concrete value.
	Config Config
}

// Compile validates a and, if it passes (a start node, reachable-only
// consistency, no epsilon edges, fully deterministic), assembles it into a
// Eudoxus binary image per opts.
//
// Compile does not mutate a.
func Compile(a *automaton.Automaton, opts ...Option) (*Result, error) {
	if a == nil {
		return nil, automaton.ErrAutomatonNil
	}
	if err := automaton.Validate(a); err != nil {
		return nil, fmt.Errorf("compiler: %w", err)
	}
	if hasEps, err := automaton.HasEpsilonEdges(a); err != nil {
		return nil, err
	} else if hasEps {
		return nil, automaton.ErrEpsilonForbidden
	}
	if _, err := automaton.Deterministic(a); err != nil {
		return nil, err
	}

	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.HighNodeWeight <= 0 {
		return nil, fmt.Errorf("compiler: HighNodeWeight must be positive, got %v", cfg.HighNodeWeight)
	}

	chains, consumed, err := detectChains(a)
	if err != nil {
		return nil, err
	}

	order, err := automaton.Reachable(a)
	if err != nil {
		return nil, err
	}
	nodes := make([]automaton.NodeID, 0, len(order))
	for _, id := range order {
		if !consumed[id] {
			nodes = append(nodes, id)
		}
	}

	widths := format.Widths
	if cfg.IDWidth != 0 {
		if !cfg.IDWidth.Valid() {
			return nil, fmt.Errorf("%w: requested id width %d", format.ErrInvalid, cfg.IDWidth)
		}
		widths = []format.IDWidth{cfg.IDWidth}
	}

	var lastErr error
	for _, w := range widths {
		img, stats, padding, err := assemble(a, nodes, chains, w, cfg)
		if err == nil {
			id, uerr := uuid.NewRandom()
			if uerr != nil {
				return nil, fmt.Errorf("compiler: generating build id: %w", uerr)
			}
			usedCfg := cfg
			usedCfg.IDWidth = w
			return &Result{
				Image:        img,
				BuildID:      id,
				IDWidth:      w,
				NodeKinds:    stats,
				PaddingBytes: padding,
				Config:       usedCfg,
			}, nil
		}
		if !errors.Is(err, errWidthOverflow) {
			return nil, err
		}
		lastErr = err
	}
	return nil, fmt.Errorf("compiler: automaton does not fit any supported id width: %w", lastErr)
}
