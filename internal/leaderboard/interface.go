package leaderboard

import "github.com/midweekpadel/clubhouse/internal/club"

// Store is the read-only slice of the club store the projector needs.
type Store interface {
	GetAllPlayers() ([]club.PlayerInfo, error)
	GetLeagueStandings(leagueID string) ([]club.LeagueStanding, error)
	GetCompletedBrackets() ([]*club.Bracket, error)
}
