package notifier

import (
	"github.com/midweekpadel/clubhouse/internal/club"
	"github.com/midweekpadel/clubhouse/internal/leaderboard"
	"github.com/midweekpadel/clubhouse/internal/loyalty"
	"github.com/midweekpadel/clubhouse/internal/rating"
)

// Notifier defines a high-level interface for announcing club events.
// This decouples the rest of the application from the specific notification
// provider (e.g., Slack).
type Notifier interface {
	// For completed tournaments.
	SendPodiumNotification(tournament *club.Tournament, placements []rating.Placement, names map[string]string, dryRun bool) error
	// For loyalty tier promotions.
	SendTierPromotion(player club.PlayerInfo, status loyalty.TierStatus, dryRun bool) error
	// For scheduled and on-demand leaderboard posts.
	SendLeaderboard(entries []leaderboard.Entry, dryRun bool) error
}
