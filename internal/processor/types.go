package processor

import (
	"time"

	"github.com/midweekpadel/clubhouse/internal/loyalty"
	"github.com/midweekpadel/clubhouse/internal/metrics"
	"github.com/midweekpadel/clubhouse/internal/playtomic"
	"github.com/midweekpadel/clubhouse/internal/pubsub"
	"github.com/midweekpadel/clubhouse/internal/rating"
	"github.com/midweekpadel/clubhouse/internal/standings"
)

// Config holds the club identifiers the processor operates on.
type Config struct {
	// LeagueID is the league that match results are recorded against.
	LeagueID string
	// TenantID and SportID identify the club's venue at the booking provider.
	TenantID string
	SportID  string
}

// Processor drives tournaments, match results and bookings through their
// lifecycles.
type Processor struct {
	store    Store
	pubsub   pubsub.PubSubClient
	notifier Notifier
	metrics  metrics.Metrics
	bookings playtomic.PlaytomicClient
	cfg      Config

	propagator *rating.Propagator
	aggregator *standings.Aggregator
	loyalty    *loyalty.Calculator
	tiers      loyalty.Config

	// now is swappable so tests can pin the clock.
	now func() time.Time
}
