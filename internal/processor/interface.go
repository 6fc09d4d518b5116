package processor

import (
	"time"

	"github.com/midweekpadel/clubhouse/internal/club"
	"github.com/midweekpadel/clubhouse/internal/notifier"
)

// Store defines the database operations required by the processor.
type Store interface {
	// Tournaments
	UpsertTournament(t *club.Tournament) error
	UpsertBracketMatches(tournamentID string, matches []club.BracketMatch) error
	GetTournamentsForProcessing() ([]*club.Tournament, error)
	UpdateProcessingStatus(tournamentID string, status club.ProcessingStatus) error
	GetBracket(tournamentID string) (*club.Bracket, error)

	// Ratings
	GetPlayerRating(playerID string) (float64, bool, error)
	SetPlayerRating(playerID string, rating float64) error

	// Players
	GetPlayers(playerIDs []string) ([]club.PlayerInfo, error)
	GetAnnouncedTier(playerID string) (string, error)
	SetAnnouncedTier(playerID, tier string) error

	// League matches
	GetMatchParticipations(matchID string) ([]club.Participation, error)
	IncrementLeagueStanding(leagueID, playerID string, delta club.StandingDelta) error

	// Bookings
	UpsertBookings(bookings []club.Booking) error
	GetConfirmedBookings(playerID string, since time.Time) ([]club.Booking, error)
	CountConfirmedBookings(playerID string) (int, error)
}

// Notifier defines the notification operations required by the processor.
// This is now an alias for the main notifier interface for decoupling.
type Notifier interface {
	notifier.Notifier
}
