package clock

import (
	"sync"
	"time"
)

type Clock interface {
	Now() time.Time
	Since(t time.Time) time.Duration
}

type RealClock struct{}

func NewRealClock() Clock {
	return &RealClock{}
}

func (c *RealClock) Now() time.Time {
	return time.Now().UTC()
}

func (c *RealClock) Since(t time.Time) time.Duration {
	return time.Since(t)
}

// MockClock is a settable clock for tests.
type MockClock struct {
	mu   sync.Mutex
	time time.Time
}

func NewMockClock(t time.Time) *MockClock {
	return &MockClock{time: t}
}

func (c *MockClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.time
}

func (c *MockClock) Since(t time.Time) time.Duration {
	return c.Now().Sub(t)
}

func (c *MockClock) SetTime(t time.Time) {
	c.mu.Lock()
	c.time = t
	c.mu.Unlock()
}

func (c *MockClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.time = c.time.Add(d)
	c.mu.Unlock()
}
