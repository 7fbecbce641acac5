package sensor

import (
	"errors"
	"fmt"
)

// Backend enumerates chips from one sensor source.
type Backend interface {
	// Name identifies the backend in logs and chip IDs.
	Name() string
	// Chips returns a fresh snapshot of every chip, in a stable order.
	Chips() ([]Chip, error)
	// Close releases backend resources.
	Close() error
}

// multiBackend concatenates the chips of several backends.
type multiBackend struct {
	backends []Backend
}

// Combine returns a Backend that lists the chips of each backend in argument
// order. A failing backend is skipped; Chips only fails if every backend does.
func Combine(backends ...Backend) Backend {
	return &multiBackend{backends: backends}
}

func (m *multiBackend) Name() string {
	return "combined"
}

func (m *multiBackend) Chips() ([]Chip, error) {
	var (
		chips []Chip
		errs  []error
	)
	for _, b := range m.backends {
		c, err := b.Chips()
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", b.Name(), err))
			continue
		}
		chips = append(chips, c...)
	}
	if len(m.backends) > 0 && len(errs) == len(m.backends) {
		return nil, errors.Join(errs...)
	}
	return chips, nil
}

func (m *multiBackend) Close() error {
	var errs []error
	for _, b := range m.backends {
		if err := b.Close(); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", b.Name(), err))
		}
	}
	return errors.Join(errs...)
}
