package utils

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRingBuffer_PushEvict(t *testing.T) {
	tests := []struct {
		name        string
		capacity    int
		pushes      []int
		wantEvicted []int
		wantValues  []int
	}{
		{
			name:        "no eviction below capacity",
			capacity:    3,
			pushes:      []int{1, 2},
			wantEvicted: nil,
			wantValues:  []int{1, 2},
		},
		{
			name:        "evicts oldest when full",
			capacity:    3,
			pushes:      []int{1, 2, 3, 4, 5},
			wantEvicted: []int{1, 2},
			wantValues:  []int{3, 4, 5},
		},
		{
			name:        "capacity of one",
			capacity:    1,
			pushes:      []int{7, 8, 9},
			wantEvicted: []int{7, 8},
			wantValues:  []int{9},
		},
		{
			name:        "non-positive capacity is raised to one",
			capacity:    0,
			pushes:      []int{1, 2},
			wantEvicted: []int{1},
			wantValues:  []int{2},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rb := NewRingBuffer[int](tt.capacity)

			var evicted []int
			for _, v := range tt.pushes {
				if old, ok := rb.PushEvict(v); ok {
					evicted = append(evicted, old)
				}
			}

			assert.Equal(t, tt.wantEvicted, evicted)
			assert.Equal(t, tt.wantValues, rb.Values())
		})
	}
}

func TestRingBuffer_Full(t *testing.T) {
	rb := NewRingBuffer[float64](2)
	assert.False(t, rb.Full())

	rb.PushEvict(1.5)
	assert.False(t, rb.Full())
	rb.PushEvict(2.5)

	assert.True(t, rb.Full())
	assert.Equal(t, 2, rb.Cap())
	assert.Equal(t, []float64{1.5, 2.5}, rb.Values())
}

func TestRingBuffer_Reset(t *testing.T) {
	rb := NewRingBuffer[int](3)
	for _, v := range []int{1, 2, 3, 4} {
		rb.PushEvict(v)
	}

	rb.Reset()

	assert.False(t, rb.Full())
	assert.Empty(t, rb.Values())

	_, ok := rb.PushEvict(10)
	assert.False(t, ok, "a reset ring starts empty")
	assert.Equal(t, []int{10}, rb.Values())
}

func TestRingBuffer_Concurrent(t *testing.T) {
	rb := NewRingBuffer[int](100)
	var wg sync.WaitGroup

	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				rb.PushEvict(j)
				_ = rb.Values()
			}
		}()
	}

	wg.Wait()
	assert.True(t, rb.Full())
	assert.Len(t, rb.Values(), rb.Cap())
}
