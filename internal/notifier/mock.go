package notifier

import (
	"sync"

	"github.com/midweekpadel/clubhouse/internal/club"
	"github.com/midweekpadel/clubhouse/internal/leaderboard"
	"github.com/midweekpadel/clubhouse/internal/loyalty"
	"github.com/midweekpadel/clubhouse/internal/rating"
)

// Mock is a mock implementation of the Notifier interface for testing.
// It is safe for concurrent use.
type Mock struct {
	mu sync.Mutex

	// Spies, set by tests to override the default nil-error behavior.
	SendPodiumNotificationFunc func(tournament *club.Tournament, placements []rating.Placement, names map[string]string, dryRun bool) error
	SendTierPromotionFunc      func(player club.PlayerInfo, status loyalty.TierStatus, dryRun bool) error
	SendLeaderboardFunc        func(entries []leaderboard.Entry, dryRun bool) error

	// Call records.
	SendPodiumNotificationCalls []struct {
		Tournament *club.Tournament
		Placements []rating.Placement
	}
	SendTierPromotionCalls []struct {
		Player club.PlayerInfo
		Status loyalty.TierStatus
	}
	SendLeaderboardCalls [][]leaderboard.Entry
}

// NewMock creates a new mock instance.
func NewMock() *Mock {
	return &Mock{}
}

// Reset clears all call records.
func (m *Mock) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SendPodiumNotificationCalls = nil
	m.SendTierPromotionCalls = nil
	m.SendLeaderboardCalls = nil
}

func (m *Mock) SendPodiumNotification(tournament *club.Tournament, placements []rating.Placement, names map[string]string, dryRun bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SendPodiumNotificationCalls = append(m.SendPodiumNotificationCalls, struct {
		Tournament *club.Tournament
		Placements []rating.Placement
	}{tournament, placements})
	if m.SendPodiumNotificationFunc != nil {
		return m.SendPodiumNotificationFunc(tournament, placements, names, dryRun)
	}
	return nil
}

func (m *Mock) SendTierPromotion(player club.PlayerInfo, status loyalty.TierStatus, dryRun bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SendTierPromotionCalls = append(m.SendTierPromotionCalls, struct {
		Player club.PlayerInfo
		Status loyalty.TierStatus
	}{player, status})
	if m.SendTierPromotionFunc != nil {
		return m.SendTierPromotionFunc(player, status, dryRun)
	}
	return nil
}

func (m *Mock) SendLeaderboard(entries []leaderboard.Entry, dryRun bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SendLeaderboardCalls = append(m.SendLeaderboardCalls, entries)
	if m.SendLeaderboardFunc != nil {
		return m.SendLeaderboardFunc(entries, dryRun)
	}
	return nil
}
