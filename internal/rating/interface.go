package rating

import "github.com/midweekpadel/clubhouse/internal/club"

// Store defines the store operations required by the propagator.
type Store interface {
	GetBracket(tournamentID string) (*club.Bracket, error)
	GetPlayerRating(playerID string) (float64, bool, error)
	SetPlayerRating(playerID string, rating float64) error
}
