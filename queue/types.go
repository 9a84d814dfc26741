package queue

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for queue construction.
var (
	// ErrUnknownTiePolicy is returned for a tie-break policy string that names no policy.
	ErrUnknownTiePolicy = errors.New("queue: unknown tie-break policy")

	// ErrUnknownDiscipline is returned when a Spec names no Queue implementation.
	ErrUnknownDiscipline = errors.New("queue: unknown discipline")
)

// Queue is the frontier contract shared by every traversal.
//
// Leave and Peek report ok=false on an empty queue; DiscardTop reports whether
// an item was removed.
type Queue[T any] interface {
	// Enter adds item to the queue.
	Enter(item T)
	// Leave removes and returns the front item.
	Leave() (item T, ok bool)
	// Peek returns the front item without removing it.
	Peek() (item T, ok bool)
	// DiscardTop removes the front item without returning it.
	DiscardTop() bool
	// Len returns the number of queued items.
	Len() int
	// IsEmpty reports Len() == 0.
	IsEmpty() bool
}

// TiePolicy orders items of equal priority.
type TiePolicy int

const (
	// Stable returns equal-priority items in insertion order.
	Stable TiePolicy = iota
	// Antistable returns equal-priority items in reverse insertion order.
	Antistable
	// Unstable leaves equal-priority order to the heap.
	Unstable
)

// String returns the canonical policy name.
func (p TiePolicy) String() string {
	switch p {
	case Stable:
		return "stable"
	case Antistable:
		return "antistable"
	case Unstable:
		return "unstable"
	default:
		return fmt.Sprintf("TiePolicy(%d)", int(p))
	}
}

// ParseTiePolicy maps a policy name (case-insensitive) onto a TiePolicy.
// The empty string selects Stable.
func ParseTiePolicy(s string) (TiePolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "stable":
		return Stable, nil
	case "antistable":
		return Antistable, nil
	case "unstable":
		return Unstable, nil
	default:
		return 0, fmt.Errorf("ParseTiePolicy(%q): %w", s, ErrUnknownTiePolicy)
	}
}

func (p TiePolicy) valid() bool { return p >= Stable && p <= Unstable }
