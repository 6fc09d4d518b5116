package metrics

import "sync"

// MockMetrics is a mock implementation of the Metrics interface for testing.
// It is safe for concurrent use.
type MockMetrics struct {
	mu sync.Mutex

	RatingPassesCount     int
	MatchesAppliedCount   int
	TierComputationsCount int
	BookingSyncRunsCount  int
	NotifSentCount        int
	NotifFailedCount      int
	ProcessingDurations   []float64
	StartupTime           float64
}

var _ Metrics = (*MockMetrics)(nil)

// NewMock creates a new mock instance.
func NewMock() *MockMetrics {
	return &MockMetrics{}
}

func (m *MockMetrics) IncRatingPasses() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.RatingPassesCount++
}

func (m *MockMetrics) IncMatchesApplied() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.MatchesAppliedCount++
}

func (m *MockMetrics) IncTierComputations() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.TierComputationsCount++
}

func (m *MockMetrics) IncBookingSyncRuns() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.BookingSyncRunsCount++
}

func (m *MockMetrics) IncNotifSent() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.NotifSentCount++
}

func (m *MockMetrics) IncNotifFailed() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.NotifFailedCount++
}

func (m *MockMetrics) ObserveProcessingDuration(duration float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ProcessingDurations = append(m.ProcessingDurations, duration)
}

func (m *MockMetrics) SetStartupTime(duration float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.StartupTime = duration
}
