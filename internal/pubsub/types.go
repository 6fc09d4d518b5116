package pubsub

import (
	"cloud.google.com/go/pubsub"

	"github.com/midweekpadel/clubhouse/internal/club"
	"github.com/midweekpadel/clubhouse/internal/rating"
)

type client struct {
	client   *pubsub.Client
	teardown func()
}

// EventType represents the type of event/message sent via pubsub.
type EventType string

const (
	EventRatingUpdated       EventType = "rating-updated"
	EventBookingConfirmed    EventType = "booking-confirmed"
	EventTierPromoted        EventType = "tier-promoted"
	EventTournamentCompleted EventType = "tournament-completed"
)

// TournamentCompletedEvent delivers a finished tournament with its full
// bracket so the engine can ingest and process it.
type TournamentCompletedEvent struct {
	Tournament club.Tournament     `msgpack:"tournament"`
	Matches    []club.BracketMatch `msgpack:"matches"`
}

// RatingUpdatedEvent is published after a tournament's rating pass so other
// consumers can react to rating movement.
type RatingUpdatedEvent struct {
	TournamentID string          `msgpack:"tournament_id"`
	Changes      []rating.Change `msgpack:"changes"`
}

// BookingConfirmedEvent carries a confirmed court booking from the booking
// provider into the loyalty pipeline.
type BookingConfirmedEvent struct {
	Booking club.Booking `msgpack:"booking"`
}

// TierPromotedEvent is published when a player crosses into a higher loyalty
// tier.
type TierPromotedEvent struct {
	PlayerID string `msgpack:"player_id"`
	Tier     string `msgpack:"tier"`
}
