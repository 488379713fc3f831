package system

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSchedulerRunsDueInOrder(t *testing.T) {
	s := NewScheduler()
	var got []string
	s.At(0.3, func() { got = append(got, "b") })
	s.At(0.1, func() { got = append(got, "a") })
	s.At(0.3, func() { got = append(got, "c") })
	s.At(1.0, func() { got = append(got, "late") })

	s.Update(0.05)
	assert.Empty(t, got)
	s.Update(0.5)
	assert.Equal(t, []string{"a", "b", "c"}, got)
	assert.Equal(t, 1, s.Pending())
}

func TestSchedulerClearCancels(t *testing.T) {
	s := NewScheduler()
	ran := 0
	s.At(0.1, func() { s.Clear() })
	s.At(0.2, func() { ran++ })
	s.At(5, func() { ran++ })

	s.Update(1)
	s.Update(10)
	assert.Zero(t, ran)
	assert.Zero(t, s.Pending())
}

func TestSchedulerTasksAddedDuringUpdateWait(t *testing.T) {
	s := NewScheduler()
	ran := 0
	s.At(0.1, func() { s.At(0.1, func() { ran++ }) })
	s.Update(1)
	assert.Zero(t, ran)
	s.Update(1)
	assert.Equal(t, 1, ran)
}
