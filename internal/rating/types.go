package rating

// Config holds the tunable constants of the rating system. Tests override
// individual fields; production code uses DefaultConfig.
type Config struct {
	// DefaultRating seeds players who have never been rated.
	DefaultRating float64
	// K-factor for a match in round r is KBase + KPerRound*r, so later
	// rounds move ratings more.
	KBase     float64
	KPerRound float64
}

// DefaultConfig returns the club's standard rating constants.
func DefaultConfig() Config {
	return Config{
		DefaultRating: 1500,
		KBase:         16,
		KPerRound:     4,
	}
}

// Change records one player's rating movement from a propagation pass.
type Change struct {
	PlayerID string  `json:"player_id"`
	Before   float64 `json:"before"`
	After    float64 `json:"after"`
}

// Achievement classifies a participant's furthest progress in a tournament.
type Achievement string

const (
	AchievementWinner       Achievement = "winner"
	AchievementRunnerUp     Achievement = "runner_up"
	AchievementSemifinalist Achievement = "semifinalist"
)

// Placement pairs a participant with their achievement for one tournament.
type Placement struct {
	PlayerID    string      `json:"player_id"`
	Achievement Achievement `json:"achievement"`
}
