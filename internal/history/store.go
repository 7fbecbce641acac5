package history

import (
	"sort"
	"sync"
)

// DefaultCapacity is the number of readings retained per label.
const DefaultCapacity = 100

// Store holds one Buffer per display label.
// It provides thread-safe access so the renderer may read while sampling.
type Store struct {
	mu     sync.RWMutex
	series map[string]*Buffer[float64]
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{series: make(map[string]*Buffer[float64])}
}

// Record appends value to the series for label. An unseen label gets a new
// buffer of the given capacity; the capacity of an existing series is kept.
func (s *Store) Record(label string, value float64, capacity int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	buf, ok := s.series[label]
	if !ok {
		var err error
		buf, err = NewBuffer[float64](capacity)
		if err != nil {
			return err
		}
		s.series[label] = buf
	}
	buf.Push(value)
	return nil
}

// Series returns the recorded values for label, oldest first.
// The second result is false if nothing was ever recorded for label.
func (s *Store) Series(label string) ([]float64, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	buf, ok := s.series[label]
	if !ok {
		return nil, false
	}
	return buf.Values(), true
}

// Tail returns at most the last n values for label, oldest first.
func (s *Store) Tail(label string, n int) []float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()

	buf, ok := s.series[label]
	if !ok {
		return nil
	}
	return buf.Tail(n)
}

// Labels returns every label that has a series, sorted.
func (s *Store) Labels() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	labels := make([]string, 0, len(s.series))
	for label := range s.series {
		labels = append(labels, label)
	}
	sort.Strings(labels)
	return labels
}

// Len returns the number of labels with a series.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.series)
}
