package loyalty

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/midweekpadel/clubhouse/internal/club"
)

func booking(playerID string, bookedFor time.Time) club.Booking {
	return club.Booking{
		ID:        playerID + bookedFor.Format("2006-01-02"),
		PlayerID:  playerID,
		BookedFor: bookedFor,
		Status:    club.BookingConfirmed,
		CreatedAt: bookedFor,
	}
}

func wed(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 18, 0, 0, 0, time.UTC)
}

func newCalculator(bookings []club.Booking) *Calculator {
	store := club.NewMock()
	store.GetConfirmedBookingsFunc = func(playerID string, since time.Time) ([]club.Booking, error) {
		return bookings, nil
	}
	store.CountConfirmedBookingsFunc = func(playerID string) (int, error) {
		return len(bookings), nil
	}
	return New(store, DefaultConfig())
}

func TestStatusConsecutiveWednesdays(t *testing.T) {
	calc := newCalculator([]club.Booking{
		booking("p1", wed(2024, time.January, 3)),
		booking("p1", wed(2024, time.January, 10)),
		booking("p1", wed(2024, time.January, 17)),
	})

	status := calc.Status("p1", wed(2024, time.January, 17))

	assert.Equal(t, 3, status.ThisMonth)
	assert.Equal(t, 3, status.Streak)
	assert.Equal(t, 1, status.MonthsActive)
	assert.Equal(t, 3, status.LifetimeVisits)
	assert.Equal(t, TierGold, status.Tier)
	// Toward platinum: 50*3/4 + 30*3/4 + flat 20.
	assert.Equal(t, 80, status.Progress)
}

func TestStatusStreakBrokenByMissedWeek(t *testing.T) {
	calc := newCalculator([]club.Booking{
		booking("p1", wed(2024, time.January, 3)),
		booking("p1", wed(2024, time.January, 17)),
	})

	status := calc.Status("p1", wed(2024, time.January, 17))

	assert.Equal(t, 1, status.Streak)
	assert.Equal(t, 2, status.ThisMonth)
	assert.Equal(t, TierBronze, status.Tier)
}

func TestStatusIgnoresOtherWeekdays(t *testing.T) {
	calc := newCalculator([]club.Booking{
		booking("p1", wed(2024, time.January, 10)),
		// Thursday and Saturday sessions do not count toward loyalty.
		booking("p1", time.Date(2024, time.January, 11, 18, 0, 0, 0, time.UTC)),
		booking("p1", time.Date(2024, time.January, 13, 10, 0, 0, 0, time.UTC)),
	})

	status := calc.Status("p1", wed(2024, time.January, 17))

	assert.Equal(t, 1, status.ThisMonth)
	assert.Equal(t, 1, status.Streak)
	assert.Equal(t, TierBronze, status.Tier)
}

func TestStatusLegendRequiresTenure(t *testing.T) {
	recent := []club.Booking{
		booking("p1", wed(2024, time.June, 19)),
		booking("p1", wed(2024, time.June, 26)),
		booking("p1", wed(2024, time.July, 3)),
		booking("p1", wed(2024, time.July, 10)),
		booking("p1", wed(2024, time.July, 17)),
		booking("p1", wed(2024, time.July, 24)),
	}
	now := wed(2024, time.July, 24)

	// Six months in: legend.
	calc := newCalculator(append([]club.Booking{booking("p1", wed(2024, time.February, 7))}, recent...))
	status := calc.Status("p1", now)
	assert.Equal(t, 4, status.ThisMonth)
	assert.Equal(t, 6, status.Streak)
	assert.Equal(t, 6, status.MonthsActive)
	assert.Equal(t, TierLegend, status.Tier)
	assert.Equal(t, 100, status.Progress)

	// Five months in: same activity stays platinum.
	calc = newCalculator(append([]club.Booking{booking("p1", wed(2024, time.March, 6))}, recent...))
	status = calc.Status("p1", now)
	assert.Equal(t, 5, status.MonthsActive)
	assert.Equal(t, TierPlatinum, status.Tier)
	// Toward legend: 50*4/4 + 30*6/6 + 20*5/6.
	assert.Equal(t, 97, status.Progress)
}

func TestStatusNoBookings(t *testing.T) {
	calc := newCalculator(nil)

	status := calc.Status("p1", wed(2024, time.January, 17))

	assert.Equal(t, TierBronze, status.Tier)
	assert.Equal(t, 0, status.Streak)
	assert.Equal(t, 0, status.ThisMonth)
	assert.Equal(t, 0, status.MonthsActive)
	assert.Equal(t, 20, status.Progress)
}

func TestStatusDegradesOnStoreFailure(t *testing.T) {
	store := club.NewMock()
	store.GetConfirmedBookingsFunc = func(playerID string, since time.Time) ([]club.Booking, error) {
		return nil, errors.New("db is down")
	}
	calc := New(store, DefaultConfig())

	now := wed(2024, time.January, 17)
	status := calc.Status("p1", now)

	assert.Equal(t, TierBronze, status.Tier)
	assert.Zero(t, status.Streak)
	assert.Zero(t, status.LifetimeVisits)
	assert.False(t, status.SeasonReset.IsZero())
}

func TestSeasonReset(t *testing.T) {
	now := time.Date(2024, time.January, 15, 12, 0, 0, 0, time.UTC)
	// Ninety days out lands in April, so the season closes end of April.
	reset := seasonReset(now)
	assert.Equal(t, time.Date(2024, time.April, 30, 0, 0, 0, 0, time.UTC), reset)
}

func TestStatusDedupesSameDayBookings(t *testing.T) {
	b := booking("p1", wed(2024, time.January, 10))
	b2 := b
	b2.ID = "other-court"
	calc := newCalculator([]club.Booking{b, b2, booking("p1", wed(2024, time.January, 17))})

	status := calc.Status("p1", wed(2024, time.January, 17))

	assert.Equal(t, 2, status.ThisMonth)
	assert.Equal(t, 2, status.Streak)
	assert.Equal(t, TierSilver, status.Tier)
}
