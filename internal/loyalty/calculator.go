package loyalty

import (
	"math"
	"sort"
	"time"

	"github.com/charmbracelet/log"

	"github.com/midweekpadel/clubhouse/internal/club"
)

// Calculator derives loyalty tier status from confirmed booking history.
type Calculator struct {
	store Store
	cfg   Config
}

func New(store Store, cfg Config) *Calculator {
	if len(cfg.Tiers) == 0 {
		cfg = DefaultConfig()
	}
	return &Calculator{store: store, cfg: cfg}
}

// Status computes a player's current tier standing as of now. Tier status is
// advisory: when booking history cannot be read the player is reported as a
// zeroed-out bottom tier rather than failing the caller.
func (c *Calculator) Status(playerID string, now time.Time) TierStatus {
	status := TierStatus{
		Tier:        c.cfg.Tiers[0].Tier,
		SeasonReset: seasonReset(now),
	}

	since := now.AddDate(0, 0, -c.cfg.HistoryDays)
	bookings, err := c.store.GetConfirmedBookings(playerID, since)
	if err != nil {
		log.Warn("Failed to load booking history, reporting default tier", "player_id", playerID, "error", err)
		return status
	}
	lifetime, err := c.store.CountConfirmedBookings(playerID)
	if err != nil {
		log.Warn("Failed to count lifetime visits, reporting default tier", "player_id", playerID, "error", err)
		return status
	}
	status.LifetimeVisits = lifetime

	days := qualifyingDays(bookings, c.cfg.Weekday)
	status.ThisMonth = countInMonth(days, now)
	status.Streak = weeklyStreak(days)
	status.MonthsActive = monthsActive(bookings, c.cfg.Weekday, now)
	status.Tier = c.assignTier(status)
	status.Progress = c.progress(status)
	return status
}

// assignTier returns the highest tier whose thresholds the status meets,
// falling back to the bottom tier.
func (c *Calculator) assignTier(s TierStatus) Tier {
	for i := len(c.cfg.Tiers) - 1; i >= 0; i-- {
		req := c.cfg.Tiers[i]
		if s.ThisMonth >= req.MinMonthlyVisits &&
			s.Streak >= req.MinStreak &&
			(req.MinMonthsActive == 0 || s.MonthsActive >= req.MinMonthsActive) {
			return req.Tier
		}
	}
	return c.cfg.Tiers[0].Tier
}

// progress reports percentage progress toward the next tier, weighted 50%
// monthly visits, 30% streak, 20% tenure. A tier without a tenure gate grants
// the tenure share outright. Top tier is always 100.
func (c *Calculator) progress(s TierStatus) int {
	rank := c.cfg.Rank(s.Tier)
	if rank < 0 || rank == len(c.cfg.Tiers)-1 {
		return 100
	}
	next := c.cfg.Tiers[rank+1]
	p := 50 * float64(s.ThisMonth) / float64(next.MinMonthlyVisits)
	p += 30 * float64(s.Streak) / float64(next.MinStreak)
	if next.MinMonthsActive > 0 {
		p += 20 * float64(s.MonthsActive) / float64(next.MinMonthsActive)
	} else {
		p += 20
	}
	if p > 100 {
		p = 100
	}
	return int(math.Round(p))
}

// qualifyingDays reduces bookings to the distinct calendar days that fall on
// the club weekday, sorted most recent first.
func qualifyingDays(bookings []club.Booking, weekday time.Weekday) []time.Time {
	seen := make(map[time.Time]bool)
	var days []time.Time
	for _, b := range bookings {
		if b.BookedFor.Weekday() != weekday {
			continue
		}
		day := truncateToDay(b.BookedFor)
		if !seen[day] {
			seen[day] = true
			days = append(days, day)
		}
	}
	sort.Slice(days, func(i, j int) bool { return days[i].After(days[j]) })
	return days
}

func countInMonth(days []time.Time, now time.Time) int {
	count := 0
	for _, d := range days {
		if d.Year() == now.Year() && d.Month() == now.Month() {
			count++
		}
	}
	return count
}

// weeklyStreak counts consecutive qualifying days exactly seven days apart,
// walking back from the most recent one. A single miss breaks the run.
func weeklyStreak(days []time.Time) int {
	if len(days) == 0 {
		return 0
	}
	streak := 1
	prev := days[0]
	for _, d := range days[1:] {
		if prev.Sub(d) != 7*24*time.Hour {
			break
		}
		streak++
		prev = d
	}
	return streak
}

// monthsActive is the whole months elapsed since the earliest qualifying
// booking was created, plus one. Zero when the player has no qualifying
// history.
func monthsActive(bookings []club.Booking, weekday time.Weekday, now time.Time) int {
	var earliest time.Time
	for _, b := range bookings {
		if b.BookedFor.Weekday() != weekday {
			continue
		}
		if earliest.IsZero() || b.CreatedAt.Before(earliest) {
			earliest = b.CreatedAt
		}
	}
	if earliest.IsZero() {
		return 0
	}
	months := (now.Year()-earliest.Year())*12 + int(now.Month()) - int(earliest.Month())
	if now.Day() < earliest.Day() {
		months--
	}
	if months < 0 {
		months = 0
	}
	return months + 1
}

// seasonReset is the last day of the calendar month ninety days out.
func seasonReset(now time.Time) time.Time {
	t := now.AddDate(0, 0, 90)
	firstOfNext := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location()).AddDate(0, 1, 0)
	return firstOfNext.AddDate(0, 0, -1)
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
