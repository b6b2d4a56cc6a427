package game

import (
	"sync"
	"time"
)

// TimeProvider supplies wall-clock readings to hosts that have no
// animation clock of their own.
type TimeProvider interface {
	Now() time.Time
}

// MonotonicTimeProvider reads time.Now, which carries a monotonic reading.
type MonotonicTimeProvider struct{}

func NewMonotonicTimeProvider() *MonotonicTimeProvider {
	return &MonotonicTimeProvider{}
}

func (p *MonotonicTimeProvider) Now() time.Time {
	return time.Now()
}

// MockTimeProvider is a manually driven clock for tests.
type MockTimeProvider struct {
	mu  sync.Mutex
	now time.Time
}

func NewMockTimeProvider(start time.Time) *MockTimeProvider {
	return &MockTimeProvider{now: start}
}

func (m *MockTimeProvider) Now() time.Time {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.now
}

func (m *MockTimeProvider) Advance(d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.now = m.now.Add(d)
}

// FrameClock turns a TimeProvider into frame timestamps measured from the
// first reading.
type FrameClock struct {
	provider TimeProvider
	origin   time.Time
}

func NewFrameClock(provider TimeProvider) *FrameClock {
	return &FrameClock{provider: provider, origin: provider.Now()}
}

// Elapsed returns the time since the clock was created.
func (c *FrameClock) Elapsed() time.Duration {
	return c.provider.Now().Sub(c.origin)
}
