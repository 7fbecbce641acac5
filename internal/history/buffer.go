package history

import "errors"

// ErrInvalidCapacity is returned when a buffer is created with capacity < 1.
var ErrInvalidCapacity = errors.New("history capacity must be at least 1")

// Buffer is a fixed-size circular buffer.
// It is not safe for concurrent use; Store serializes access to its buffers.
type Buffer[T any] struct {
	data  []T
	head  int
	count int
}

// NewBuffer creates a buffer that retains the last capacity values.
func NewBuffer[T any](capacity int) (*Buffer[T], error) {
	if capacity < 1 {
		return nil, ErrInvalidCapacity
	}
	return &Buffer[T]{data: make([]T, capacity)}, nil
}

// Push appends v, evicting the oldest value when the buffer is full.
func (b *Buffer[T]) Push(v T) {
	b.data[b.head] = v
	b.head = (b.head + 1) % len(b.data)
	if b.count < len(b.data) {
		b.count++
	}
}

// Len returns the number of retained values.
func (b *Buffer[T]) Len() int {
	return b.count
}

// Cap returns the maximum number of retained values.
func (b *Buffer[T]) Cap() int {
	return len(b.data)
}

// Values returns a copy of the retained values, oldest first.
func (b *Buffer[T]) Values() []T {
	return b.Tail(b.count)
}

// Tail returns the last n values in chronological order (oldest first).
// Returns fewer values if not enough history is available.
func (b *Buffer[T]) Tail(n int) []T {
	if n <= 0 || b.count == 0 {
		return nil
	}
	if n > b.count {
		n = b.count
	}

	size := len(b.data)
	result := make([]T, n)

	// head is the next write position, so the newest value sits at head-1.
	start := (b.head - n + size) % size
	for i := 0; i < n; i++ {
		result[i] = b.data[(start+i)%size]
	}
	return result
}

// Last returns the newest value.
func (b *Buffer[T]) Last() (T, bool) {
	var zero T
	if b.count == 0 {
		return zero, false
	}
	return b.data[(b.head-1+len(b.data))%len(b.data)], true
}
