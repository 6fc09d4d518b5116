package leaderboard

import (
	"fmt"
	"math"
	"sort"

	"github.com/midweekpadel/clubhouse/internal/rating"
)

// Projector assembles the club leaderboard from stored state. It never
// writes; ratings, standings and podium history are produced elsewhere.
type Projector struct {
	store         Store
	defaultRating float64
}

func New(store Store) *Projector {
	return &Projector{store: store, defaultRating: rating.DefaultConfig().DefaultRating}
}

// Project builds the leaderboard for a league, ordered by rating, then win
// percentage, then name. Players without a rating are listed at the default.
func (p *Projector) Project(leagueID string) ([]Entry, error) {
	players, err := p.store.GetAllPlayers()
	if err != nil {
		return nil, fmt.Errorf("failed to load players: %w", err)
	}
	standings, err := p.store.GetLeagueStandings(leagueID)
	if err != nil {
		return nil, fmt.Errorf("failed to load standings: %w", err)
	}
	brackets, err := p.store.GetCompletedBrackets()
	if err != nil {
		return nil, fmt.Errorf("failed to load tournament history: %w", err)
	}

	byID := make(map[string]*Entry, len(players))
	entries := make([]*Entry, 0, len(players))
	for _, player := range players {
		e := &Entry{
			PlayerID: player.ID,
			Name:     player.Name,
			Rating:   p.defaultRating,
		}
		if player.Rating != nil {
			e.Rating = *player.Rating
		}
		byID[player.ID] = e
		entries = append(entries, e)
	}

	for _, s := range standings {
		e, ok := byID[s.PlayerID]
		if !ok {
			// Standing rows for players no longer on the roster are skipped.
			continue
		}
		e.Played = s.Played
		e.Won = s.Won
		e.Lost = s.Lost
		e.Points = s.Points
		if s.Played > 0 {
			e.WinPct = math.Round(float64(s.Won)/float64(s.Played)*1000) / 10
		}
	}

	for _, bracket := range brackets {
		for _, placement := range rating.ExtractPlacements(bracket) {
			e, ok := byID[placement.PlayerID]
			if !ok {
				continue
			}
			switch placement.Achievement {
			case rating.AchievementWinner:
				e.Titles++
			case rating.AchievementRunnerUp:
				e.Finals++
			case rating.AchievementSemifinalist:
				e.Semis++
			}
		}
	}

	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].Rating != entries[j].Rating {
			return entries[i].Rating > entries[j].Rating
		}
		if entries[i].WinPct != entries[j].WinPct {
			return entries[i].WinPct > entries[j].WinPct
		}
		return entries[i].Name < entries[j].Name
	})

	out := make([]Entry, len(entries))
	for i, e := range entries {
		out[i] = *e
	}
	return out, nil
}
