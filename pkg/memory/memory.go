package memory

import (
	"fmt"
	"sync"
)

// Observation is one pull as seen by an agent
type Observation struct {
	Step   int
	Arm    int
	Reward float64
}

func (o Observation) String() string {
	return fmt.Sprintf("step %d: arm %d paid %.3f", o.Step, o.Arm, o.Reward)
}

// Memory is a bounded FIFO of the most recent observations. Once full, the
// oldest observation is evicted on every Store.
type Memory struct {
	stream   []Observation
	capacity int
	mu       sync.RWMutex
}

func NewMemory(capacity int) *Memory {
	if capacity <= 0 {
		capacity = 1
	}
	return &Memory{
		stream:   make([]Observation, 0, capacity),
		capacity: capacity,
	}
}

func (m *Memory) Store(obs Observation) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if len(m.stream) == m.capacity {
		copy(m.stream, m.stream[1:])
		m.stream = m.stream[:len(m.stream)-1]
	}
	m.stream = append(m.stream, obs)
}

// All returns a copy of every stored observation, oldest first
func (m *Memory) All() []Observation {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]Observation, len(m.stream))
	copy(out, m.stream)
	return out
}

// Recent returns a copy of at most n of the newest observations, oldest first
func (m *Memory) Recent(n int) []Observation {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if n <= 0 {
		return nil
	}
	if n > len(m.stream) {
		n = len(m.stream)
	}
	out := make([]Observation, n)
	copy(out, m.stream[len(m.stream)-n:])
	return out
}

func (m *Memory) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.stream)
}

func (m *Memory) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.stream = m.stream[:0]
}
