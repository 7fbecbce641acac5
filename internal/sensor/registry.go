package sensor

// Registry is the single entry point for chip enumeration.
// It keeps no snapshots; every call asks the backend again.
type Registry struct {
	backend Backend
}

// NewRegistry creates a registry over backend.
func NewRegistry(backend Backend) *Registry {
	return &Registry{backend: backend}
}

// Chips returns the currently present chips in a deterministic order.
func (r *Registry) Chips() ([]Chip, error) {
	return r.backend.Chips()
}

// Lookup resolves id against a fresh enumeration.
func (r *Registry) Lookup(id ChipID) (Chip, bool, error) {
	chips, err := r.Chips()
	if err != nil {
		return Chip{}, false, err
	}
	if i := IndexOf(chips, id); i >= 0 {
		return chips[i], true, nil
	}
	return Chip{}, false, nil
}

// Close releases the underlying backend.
func (r *Registry) Close() error {
	return r.backend.Close()
}

// IndexOf returns the position of id in chips, or -1.
func IndexOf(chips []Chip, id ChipID) int {
	for i, c := range chips {
		if c.ID == id {
			return i
		}
	}
	return -1
}
