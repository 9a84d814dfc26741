package queue

import (
	"fmt"
	"math/rand"
	"strings"
)

// Discipline names accepted by Spec.Kind.
const (
	KindFIFO     = "fifo"
	KindLIFO     = "lifo"
	KindPriority = "priority"
)

// Spec is a declarative queue description, suitable for YAML profiles.
type Spec struct {
	// Kind is one of fifo, lifo, priority (aliases: queue, stack, heap).
	Kind string `yaml:"kind" json:"kind"`
	// Tie is the priority tie-break policy; ignored for fifo/lifo.
	Tie string `yaml:"tie,omitempty" json:"tie,omitempty"`
	// Cache memoizes priority lookups; ignored for fifo/lifo.
	Cache bool `yaml:"cache,omitempty" json:"cache,omitempty"`
}

// Normalize returns the canonical Kind, or ErrUnknownDiscipline.
func (s Spec) Normalize() (string, error) {
	switch strings.ToLower(strings.TrimSpace(s.Kind)) {
	case "fifo", "queue", "bfs":
		return KindFIFO, nil
	case "lifo", "stack", "dfs":
		return KindLIFO, nil
	case "priority", "heap", "prim":
		return KindPriority, nil
	default:
		return "", fmt.Errorf("kind %q: %w", s.Kind, ErrUnknownDiscipline)
	}
}

// Validate checks Kind and Tie without building anything.
func (s Spec) Validate() error {
	kind, err := s.Normalize()
	if err != nil {
		return err
	}
	if kind == KindPriority {
		if _, err = ParseTiePolicy(s.Tie); err != nil {
			return err
		}
	}

	return nil
}

// FromSpec builds the Queue described by spec. src and r are only consulted
// for the priority discipline; src may be nil (all priorities random).
func FromSpec[T comparable](spec Spec, src Source[T], r *rand.Rand) (Queue[T], error) {
	kind, err := spec.Normalize()
	if err != nil {
		return nil, err
	}
	switch kind {
	case KindFIFO:
		return NewFIFO[T](), nil
	case KindLIFO:
		return NewLIFO[T](), nil
	default:
		tie, err := ParseTiePolicy(spec.Tie)
		if err != nil {
			return nil, err
		}

		return NewPriority(src, tie, WithRand(r), WithCache(spec.Cache))
	}
}
