package leaderboard

// Entry is one player's row on the club leaderboard. It merges live rating,
// league record and tournament podium history into a single view.
type Entry struct {
	PlayerID string  `json:"player_id"`
	Name     string  `json:"name"`
	Rating   float64 `json:"rating"`
	Played   int     `json:"played"`
	Won      int     `json:"won"`
	Lost     int     `json:"lost"`
	Points   int     `json:"points"`
	WinPct   float64 `json:"win_pct"`
	Titles   int     `json:"titles"`
	Finals   int     `json:"finals"`
	Semis    int     `json:"semis"`
}
