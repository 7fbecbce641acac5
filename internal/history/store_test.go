package history

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_SeriesBeforeAndAfterRecord(t *testing.T) {
	s := NewStore()

	_, ok := s.Series("Core 0")
	assert.False(t, ok)

	require.NoError(t, s.Record("Core 0", 45.0, DefaultCapacity))
	got, ok := s.Series("Core 0")
	require.True(t, ok)
	assert.Equal(t, []float64{45.0}, got)

	require.NoError(t, s.Record("Core 0", 46.0, DefaultCapacity))
	got, ok = s.Series("Core 0")
	require.True(t, ok)
	assert.Equal(t, []float64{45.0, 46.0}, got)
}

func TestStore_CapacityFixedAtCreation(t *testing.T) {
	s := NewStore()

	require.NoError(t, s.Record("Tctl", 1, 2))
	// A later, larger capacity does not resize the existing series.
	require.NoError(t, s.Record("Tctl", 2, 50))
	require.NoError(t, s.Record("Tctl", 3, 50))

	got, _ := s.Series("Tctl")
	assert.Equal(t, []float64{2, 3}, got)
}

func TestStore_InvalidCapacity(t *testing.T) {
	s := NewStore()

	err := s.Record("edge", 40, 0)
	assert.ErrorIs(t, err, ErrInvalidCapacity)

	_, ok := s.Series("edge")
	assert.False(t, ok, "failed record must not create a series")
	assert.Equal(t, 0, s.Len())
}

func TestStore_LabelsSorted(t *testing.T) {
	s := NewStore()
	for _, label := range []string{"temp2", "Core 1", "Core 0", "GPU"} {
		require.NoError(t, s.Record(label, 30, 5))
	}

	assert.Equal(t, []string{"Core 0", "Core 1", "GPU", "temp2"}, s.Labels())
	assert.Equal(t, 4, s.Len())
}

func TestStore_Tail(t *testing.T) {
	s := NewStore()
	assert.Nil(t, s.Tail("missing", 3))

	for i := 1; i <= 5; i++ {
		require.NoError(t, s.Record("Package id 0", float64(i), 10))
	}
	assert.Equal(t, []float64{3, 4, 5}, s.Tail("Package id 0", 3))
}

func TestStore_ConcurrentAccess(t *testing.T) {
	s := NewStore()
	var wg sync.WaitGroup

	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			label := fmt.Sprintf("Core %d", id%3)
			for j := 0; j < 100; j++ {
				_ = s.Record(label, float64(j), 20)
				s.Series(label)
				s.Labels()
			}
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 3, s.Len())
	for _, label := range s.Labels() {
		got, ok := s.Series(label)
		require.True(t, ok)
		assert.Len(t, got, 20)
	}
}
