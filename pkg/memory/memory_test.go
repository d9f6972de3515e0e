package memory

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMemory(t *testing.T) {
	t.Run("stores in order", func(t *testing.T) {
		m := NewMemory(5)
		for i := 1; i <= 3; i++ {
			m.Store(Observation{Step: i, Arm: i % 2, Reward: float64(i)})
		}
		all := m.All()
		assert.Len(t, all, 3)
		assert.Equal(t, 1, all[0].Step)
		assert.Equal(t, 3, all[2].Step)
	})

	t.Run("evicts the oldest when full", func(t *testing.T) {
		m := NewMemory(2)
		for i := 1; i <= 4; i++ {
			m.Store(Observation{Step: i})
		}
		assert.Equal(t, 2, m.Len())
		assert.Equal(t, []Observation{{Step: 3}, {Step: 4}}, m.All())
	})

	t.Run("recent returns the newest", func(t *testing.T) {
		m := NewMemory(10)
		for i := 1; i <= 6; i++ {
			m.Store(Observation{Step: i})
		}
		assert.Equal(t, []Observation{{Step: 5}, {Step: 6}}, m.Recent(2))
		assert.Len(t, m.Recent(100), 6)
		assert.Nil(t, m.Recent(0))
	})

	t.Run("copies are detached", func(t *testing.T) {
		m := NewMemory(3)
		m.Store(Observation{Step: 1, Reward: 1})
		all := m.All()
		all[0].Reward = 99
		assert.Equal(t, 1.0, m.All()[0].Reward)
	})

	t.Run("reset empties the stream", func(t *testing.T) {
		m := NewMemory(3)
		m.Store(Observation{Step: 1})
		m.Reset()
		assert.Equal(t, 0, m.Len())
		assert.Empty(t, m.All())
	})

	t.Run("non-positive capacity keeps one", func(t *testing.T) {
		m := NewMemory(0)
		m.Store(Observation{Step: 1})
		m.Store(Observation{Step: 2})
		assert.Equal(t, []Observation{{Step: 2}}, m.All())
	})
}

func TestObservationString(t *testing.T) {
	o := Observation{Step: 3, Arm: 1, Reward: 0.5}
	assert.Equal(t, "step 3: arm 1 paid 0.500", o.String())
}
