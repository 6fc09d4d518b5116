package standings

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/midweekpadel/clubhouse/internal/club"
)

// ErrInvalidMatchData is returned when a match does not carry exactly two
// participation records.
var ErrInvalidMatchData = errors.New("match does not have exactly two participation records")

// Store defines the store operations required by the aggregator.
type Store interface {
	GetMatchParticipations(matchID string) ([]club.Participation, error)
	IncrementLeagueStanding(leagueID, playerID string, delta club.StandingDelta) error
}

// Aggregator folds a completed league match into the league's cumulative
// win/loss/point table.
type Aggregator struct {
	store Store
}

// New creates a new Aggregator.
func New(store Store) *Aggregator {
	return &Aggregator{
		store: store,
	}
}

// ApplyMatch decides a match by comparing the two participants' performance
// ratings (higher wins) and applies the additive counter updates: both
// players get +1 played, the winner +1 won and +3 points, the loser +1 lost.
//
// When either performance rating is absent, or the ratings are equal (draws
// are not part of the scoring scheme), no winner is determined and the call
// is a no-op. The returned boolean reports whether standings were updated.
func (a *Aggregator) ApplyMatch(leagueID, matchID string) (bool, error) {
	participations, err := a.store.GetMatchParticipations(matchID)
	if err != nil {
		return false, fmt.Errorf("failed to load participations for match %s: %w", matchID, err)
	}
	if len(participations) != 2 {
		return false, fmt.Errorf("match %s has %d participations: %w", matchID, len(participations), ErrInvalidMatchData)
	}

	first, second := participations[0], participations[1]
	if first.PerformanceRating == nil || second.PerformanceRating == nil {
		log.Debug("Match has an unrated side, standings unchanged", "matchID", matchID, "leagueID", leagueID)
		return false, nil
	}
	if *first.PerformanceRating == *second.PerformanceRating {
		log.Debug("Match performance ratings are equal, standings unchanged", "matchID", matchID, "leagueID", leagueID)
		return false, nil
	}

	winner, loser := first, second
	if *second.PerformanceRating > *first.PerformanceRating {
		winner, loser = second, first
	}

	// Ratings already written stay written if the second increment fails;
	// callers see the error and may retry the match as a whole.
	if err := a.store.IncrementLeagueStanding(leagueID, winner.PlayerID, club.StandingDelta{Played: 1, Won: 1, Points: 3}); err != nil {
		return false, fmt.Errorf("failed to update winner standing: %w", err)
	}
	if err := a.store.IncrementLeagueStanding(leagueID, loser.PlayerID, club.StandingDelta{Played: 1, Lost: 1}); err != nil {
		return false, fmt.Errorf("failed to update loser standing: %w", err)
	}

	log.Info("Standings updated", "leagueID", leagueID, "matchID", matchID, "winner", winner.PlayerID, "loser", loser.PlayerID)
	return true, nil
}
