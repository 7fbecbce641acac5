package monitor

import (
	"errors"

	"github.com/rileyhilliard/senso/internal/sensor"
)

// ErrNoChipsAvailable is returned when an enumeration finds no chips.
var ErrNoChipsAvailable = errors.New("no sensor chips available")

// Navigator tracks the selected and pinned chips by identity.
// Every operation re-resolves identities against a fresh enumeration, so a
// chip that disappears is never returned as a stale snapshot.
type Navigator struct {
	registry *sensor.Registry
	selected sensor.ChipID
	pinned   sensor.ChipID
}

// Snapshot is one enumeration with the navigator's state resolved against it.
type Snapshot struct {
	Chips []sensor.Chip
	// Current indexes the selected chip, falling back to 0.
	Current int
	// Pinned indexes the pinned chip, or -1 when unset or vanished.
	Pinned int
}

// CurrentChip returns the selected chip of the snapshot.
func (s Snapshot) CurrentChip() sensor.Chip {
	return s.Chips[s.Current]
}

// PinnedChip returns the pinned chip of the snapshot, or nil.
func (s Snapshot) PinnedChip() *sensor.Chip {
	if s.Pinned < 0 {
		return nil
	}
	chip := s.Chips[s.Pinned]
	return &chip
}

// NewNavigator creates a navigator with nothing selected or pinned.
func NewNavigator(registry *sensor.Registry) *Navigator {
	return &Navigator{registry: registry}
}

// Selected returns the selected chip identity, or "" before the first move.
func (n *Navigator) Selected() sensor.ChipID {
	return n.selected
}

// Pinned returns the pinned chip identity, or "" when nothing is pinned.
func (n *Navigator) Pinned() sensor.ChipID {
	return n.pinned
}

// Resolve maps the navigator state onto chips without enumerating.
func (n *Navigator) Resolve(chips []sensor.Chip) (Snapshot, error) {
	if len(chips) == 0 {
		return Snapshot{Pinned: -1}, ErrNoChipsAvailable
	}
	snap := Snapshot{Chips: chips, Current: n.indexIn(chips), Pinned: -1}
	if n.pinned != "" {
		snap.Pinned = sensor.IndexOf(chips, n.pinned)
	}
	return snap, nil
}

// Snapshot enumerates chips and resolves the navigator state against them.
func (n *Navigator) Snapshot() (Snapshot, error) {
	chips, err := n.registry.Chips()
	if err != nil {
		return Snapshot{Pinned: -1}, err
	}
	return n.Resolve(chips)
}

// CurrentChip returns the selected chip, or the first chip when the
// selection is unset or no longer present.
func (n *Navigator) CurrentChip() (sensor.Chip, error) {
	snap, err := n.Snapshot()
	if err != nil {
		return sensor.Chip{}, err
	}
	return snap.CurrentChip(), nil
}

// SelectNext moves the selection down one chip, stopping at the last.
func (n *Navigator) SelectNext() error {
	return n.move(func(i, count int) int {
		if i < count-1 {
			return i + 1
		}
		return i
	})
}

// SelectPrevious moves the selection up one chip, stopping at the first.
func (n *Navigator) SelectPrevious() error {
	return n.move(func(i, _ int) int {
		if i > 0 {
			return i - 1
		}
		return i
	})
}

// SelectFirst selects the first chip.
func (n *Navigator) SelectFirst() error {
	return n.move(func(_, _ int) int { return 0 })
}

// SelectLast selects the last chip.
func (n *Navigator) SelectLast() error {
	return n.move(func(_, count int) int { return count - 1 })
}

// TogglePin clears the pin if one is set, otherwise pins the current chip.
// The selection is never changed.
func (n *Navigator) TogglePin() error {
	if n.pinned != "" {
		n.pinned = ""
		return nil
	}
	chip, err := n.CurrentChip()
	if err != nil {
		return err
	}
	n.pinned = chip.ID
	return nil
}

// PinnedChip returns a fresh snapshot of the pinned chip. It returns nil when
// nothing is pinned or the pinned chip is absent from the enumeration.
func (n *Navigator) PinnedChip() (*sensor.Chip, error) {
	if n.pinned == "" {
		return nil, nil
	}
	chip, ok, err := n.registry.Lookup(n.pinned)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}
	return &chip, nil
}

func (n *Navigator) indexIn(chips []sensor.Chip) int {
	if i := sensor.IndexOf(chips, n.selected); i >= 0 {
		return i
	}
	return 0
}

// move applies step to the current index and stores the identity found there.
func (n *Navigator) move(step func(i, count int) int) error {
	chips, err := n.registry.Chips()
	if err != nil {
		return err
	}
	if len(chips) == 0 {
		return ErrNoChipsAvailable
	}
	i := step(n.indexIn(chips), len(chips))
	n.selected = chips[i].ID
	return nil
}
