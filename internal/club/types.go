package club

import (
	"database/sql"
	"sync"
	"time"
)

// store handles all database operations for the club.
type store struct {
	db *sql.DB
	mu sync.RWMutex
}

// PlayerInfo represents a club member in the store. Rating and SkillLevel are
// nil until the player has been rated or has filed a self-assessment.
type PlayerInfo struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Sport         string   `json:"sport"`
	Rating        *float64 `json:"rating,omitempty"`
	SkillLevel    *float64 `json:"skill_level,omitempty"`
	AnnouncedTier *string  `json:"announced_tier,omitempty"`
}

// ProcessingStatus defines the internal processing state of a completed tournament.
type ProcessingStatus string

const (
	StatusNew            ProcessingStatus = "NEW"
	StatusRatingsApplied ProcessingStatus = "RATINGS_APPLIED"
	StatusPodiumNotified ProcessingStatus = "PODIUM_NOTIFIED"
	StatusCompleted      ProcessingStatus = "COMPLETED"
)

// Tournament is a single-elimination tournament. TotalRounds is the declared
// round count; the match(es) in the last round are the final(s).
type Tournament struct {
	ID               string           `json:"id"`
	Name             string           `json:"name"`
	Sport            string           `json:"sport"`
	TotalRounds      int              `json:"total_rounds"`
	CompletedAt      int64            `json:"completed_at"`
	ProcessingStatus ProcessingStatus `json:"processing_status"`
}

// Bracket is a tournament's ordered collection of matches. Matches are always
// returned ordered ascending by (round, match index).
type Bracket struct {
	TournamentID string         `json:"tournament_id"`
	Sport        string         `json:"sport"`
	TotalRounds  int            `json:"total_rounds"`
	Matches      []BracketMatch `json:"matches"`
}

// BracketMatch holds up to two participant references and an optional declared
// winner. Empty strings mean the slot is unfilled or the match is undecided.
type BracketMatch struct {
	ID         string `json:"id"`
	Round      int    `json:"round"`
	MatchIndex int    `json:"match_index"`
	PlayerA    string `json:"player_a"`
	PlayerB    string `json:"player_b"`
	WinnerID   string `json:"winner_id"`
}

// LeagueStanding is a player's cumulative counters within one league.
type LeagueStanding struct {
	LeagueID string `json:"league_id"`
	PlayerID string `json:"player_id"`
	Played   int    `json:"played"`
	Won      int    `json:"won"`
	Lost     int    `json:"lost"`
	Points   int    `json:"points"`
}

// StandingDelta is an additive update to a LeagueStanding.
type StandingDelta struct {
	Played int
	Won    int
	Lost   int
	Points int
}

// Participation is one player's side of a league match, carrying the
// performance rating used to decide the match. Nil means no rating was filed.
type Participation struct {
	MatchID           string   `json:"match_id"`
	PlayerID          string   `json:"player_id"`
	PerformanceRating *float64 `json:"performance_rating,omitempty"`
}

// BookingStatus is the lifecycle state of a court booking. Only confirmed
// bookings count toward loyalty attendance.
type BookingStatus string

const (
	BookingConfirmed BookingStatus = "CONFIRMED"
	BookingPending   BookingStatus = "PENDING"
	BookingCancelled BookingStatus = "CANCELLED"
)

// Booking is a (player, date, status) record. Immutable once created except
// for status transitions performed by the booking subsystem.
type Booking struct {
	ID        string        `json:"id"`
	PlayerID  string        `json:"player_id"`
	BookedFor time.Time     `json:"booked_for"`
	Status    BookingStatus `json:"status"`
	CreatedAt time.Time     `json:"created_at"`
}
