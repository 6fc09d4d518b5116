package loyalty

import (
	"time"

	"github.com/midweekpadel/clubhouse/internal/club"
)

// Store is the slice of the club store the calculator reads from.
type Store interface {
	GetConfirmedBookings(playerID string, since time.Time) ([]club.Booking, error)
	CountConfirmedBookings(playerID string) (int, error)
}
