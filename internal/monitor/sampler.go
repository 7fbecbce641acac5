package monitor

import (
	"github.com/rileyhilliard/senso/internal/history"
	"github.com/rileyhilliard/senso/internal/logger"
	"github.com/rileyhilliard/senso/internal/sensor"
)

// Sampler records the temperature of every chip into a history store.
//
// Series are keyed by the feature's display label alone, so two chips that
// expose the same label (e.g. "temp1") share one series.
type Sampler struct {
	registry *sensor.Registry
	store    *history.Store
	capacity int
	log      logger.Logger
}

// NewSampler creates a sampler. A capacity below 1 uses history.DefaultCapacity.
func NewSampler(registry *sensor.Registry, store *history.Store, capacity int, log logger.Logger) *Sampler {
	if capacity < 1 {
		capacity = history.DefaultCapacity
	}
	if log == nil {
		log = logger.Noop()
	}
	return &Sampler{registry: registry, store: store, capacity: capacity, log: log}
}

// Tick enumerates chips and samples them once.
// It returns the number of readings recorded.
func (s *Sampler) Tick() (int, error) {
	chips, err := s.registry.Chips()
	if err != nil {
		return 0, err
	}
	return s.Sample(chips), nil
}

// Sample records one reading per temperature feature of chips. A missing
// input reading is recorded as 0. A failed record is logged and skipped.
func (s *Sampler) Sample(chips []sensor.Chip) int {
	recorded := 0
	for _, chip := range chips {
		for _, f := range chip.Temperatures() {
			label := f.DisplayLabel()
			if err := s.store.Record(label, f.Current(), s.capacity); err != nil {
				s.log.Warn("sample %s on %s: %v", label, chip.ID, err)
				continue
			}
			recorded++
		}
	}
	s.log.Debug("sampled %d readings from %d chips", recorded, len(chips))
	return recorded
}
