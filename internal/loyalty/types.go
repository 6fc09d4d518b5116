package loyalty

import "time"

// Tier is a ranked loyalty classification derived from recurring attendance
// on the club's designated weekday.
type Tier string

const (
	TierBronze   Tier = "bronze"
	TierSilver   Tier = "silver"
	TierGold     Tier = "gold"
	TierPlatinum Tier = "platinum"
	TierLegend   Tier = "legend"
)

// Requirement is the admission threshold for one tier. MinMonthsActive of
// zero means the tier has no tenure requirement.
type Requirement struct {
	Tier             Tier
	MinMonthlyVisits int
	MinStreak        int
	MinMonthsActive  int
}

// Config holds the tunable constants of the loyalty program. The weekday is
// wired to Wednesday for the club's midweek branding; tests override it.
type Config struct {
	Weekday     time.Weekday
	HistoryDays int
	// Tiers ordered lowest to highest. The first entry is the default
	// classification when nothing else matches.
	Tiers []Requirement
}

// DefaultConfig returns the club's standard loyalty program.
func DefaultConfig() Config {
	return Config{
		Weekday:     time.Wednesday,
		HistoryDays: 180,
		Tiers: []Requirement{
			{Tier: TierBronze, MinMonthlyVisits: 1, MinStreak: 1},
			{Tier: TierSilver, MinMonthlyVisits: 2, MinStreak: 2},
			{Tier: TierGold, MinMonthlyVisits: 3, MinStreak: 3},
			{Tier: TierPlatinum, MinMonthlyVisits: 4, MinStreak: 4},
			{Tier: TierLegend, MinMonthlyVisits: 4, MinStreak: 6, MinMonthsActive: 6},
		},
	}
}

// Rank returns a tier's position in the config's ordering, lowest first.
// Unknown tiers rank below bronze.
func (c Config) Rank(t Tier) int {
	for i, req := range c.Tiers {
		if req.Tier == t {
			return i
		}
	}
	return -1
}

// TierStatus is a player's derived loyalty state. It is recomputed on demand
// from booking history and never persisted.
type TierStatus struct {
	Tier           Tier      `json:"tier"`
	ThisMonth      int       `json:"this_month"`
	Streak         int       `json:"streak"`
	MonthsActive   int       `json:"months_active"`
	LifetimeVisits int       `json:"lifetime_visits"`
	Progress       int       `json:"progress"`
	SeasonReset    time.Time `json:"season_reset"`
}
