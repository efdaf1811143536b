package utils

import "sync"

// RingBuffer is a fixed-size circular buffer storing up to `capacity` items of type T.
// When full, new pushes overwrite the oldest items.
type RingBuffer[T any] struct {
	data     []T
	start    int
	size     int
	capacity int
	mu       sync.RWMutex
}

// NewRingBuffer allocates a new ring buffer with the given capacity.
// A non-positive capacity is raised to 1.
func NewRingBuffer[T any](capacity int) *RingBuffer[T] {
	if capacity < 1 {
		capacity = 1
	}
	return &RingBuffer[T]{
		data:     make([]T, capacity),
		capacity: capacity,
	}
}

// PushEvict adds a new item and reports the item it displaced, if the ring was full.
// Sliding-window aggregates use the evicted value to keep running sums in O(1).
func (r *RingBuffer[T]) PushEvict(value T) (evicted T, ok bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.size < r.capacity {
		r.data[(r.start+r.size)%r.capacity] = value
		r.size++
		return evicted, false
	}

	evicted = r.data[r.start]
	r.data[r.start] = value
	r.start = (r.start + 1) % r.capacity
	return evicted, true
}

// Cap returns the total ring capacity.
func (r *RingBuffer[T]) Cap() int {
	return r.capacity
}

// Full reports whether the ring holds `capacity` items.
func (r *RingBuffer[T]) Full() bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.size == r.capacity
}

// Values returns a copy of all items in order from oldest to newest.
func (r *RingBuffer[T]) Values() []T {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]T, r.size)
	for i := 0; i < r.size; i++ {
		out[i] = r.data[(r.start+i)%r.capacity]
	}
	return out
}

// Reset empties the ring without releasing its storage.
func (r *RingBuffer[T]) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()

	var zero T
	for i := range r.data {
		r.data[i] = zero
	}
	r.start = 0
	r.size = 0
}
