package rating

import (
	"fmt"
	"math"
	"sort"

	"github.com/charmbracelet/log"
	"github.com/midweekpadel/clubhouse/internal/club"
)

// Propagator walks a completed tournament bracket and updates each
// participant's skill rating from the decided matches.
type Propagator struct {
	store Store
	cfg   Config
}

// New creates a new Propagator.
func New(store Store, cfg Config) *Propagator {
	return &Propagator{
		store: store,
		cfg:   cfg,
	}
}

// PropagateBracket loads the bracket for tournamentID and applies a full
// propagation pass.
func (p *Propagator) PropagateBracket(tournamentID string) ([]Change, error) {
	bracket, err := p.store.GetBracket(tournamentID)
	if err != nil {
		return nil, fmt.Errorf("failed to load bracket: %w", err)
	}
	return p.Propagate(bracket)
}

// Propagate folds every decided match into an in-memory working map and
// writes back the ratings that changed. Matches are processed ascending by
// (round, match index); a player appearing in several decided matches
// accumulates sequential updates within the pass. This traversal order is
// part of the contract: re-reading the store mid-pass would change results.
//
// There is no rollback. If a write fails partway through, ratings already
// written stay written; the returned changes cover only the successful
// writes and the error reports the first failure.
func (p *Propagator) Propagate(bracket *club.Bracket) ([]Change, error) {
	participants := participantIDs(bracket)
	if len(participants) == 0 {
		return nil, nil
	}

	seed := make(map[string]float64, len(participants))
	for _, id := range participants {
		current, ok, err := p.store.GetPlayerRating(id)
		if err != nil {
			return nil, fmt.Errorf("failed to seed rating for %s: %w", id, err)
		}
		if !ok {
			current = p.cfg.DefaultRating
		}
		seed[id] = current
	}

	working := make(map[string]float64, len(participants))
	for id, r := range seed {
		working[id] = r
	}

	for _, m := range orderedMatches(bracket) {
		if m.PlayerA == "" || m.PlayerB == "" || m.WinnerID == "" {
			continue
		}
		if m.WinnerID != m.PlayerA && m.WinnerID != m.PlayerB {
			log.Warn("Bracket match winner is not a participant, skipping",
				"tournamentID", bracket.TournamentID, "matchID", m.ID, "winnerID", m.WinnerID)
			continue
		}

		loser := m.PlayerA
		if m.WinnerID == m.PlayerA {
			loser = m.PlayerB
		}

		k := p.cfg.KBase + p.cfg.KPerRound*float64(m.Round)
		expWinner := expectedScore(working[m.WinnerID], working[loser])
		expLoser := 1 - expWinner

		working[m.WinnerID] = math.Round(working[m.WinnerID] + k*(1-expWinner))
		working[loser] = math.Round(working[loser] + k*(0-expLoser))
	}

	var changes []Change
	for _, id := range participants {
		if working[id] == seed[id] {
			continue
		}
		if err := p.store.SetPlayerRating(id, working[id]); err != nil {
			return changes, fmt.Errorf("failed to write rating for %s: %w", id, err)
		}
		changes = append(changes, Change{PlayerID: id, Before: seed[id], After: working[id]})
		log.Debug("Rating updated", "playerID", id, "before", seed[id], "after", working[id])
	}
	return changes, nil
}

// expectedScore is the standard pairwise expectation: the probability that
// the first player beats the second given their current ratings.
func expectedScore(ratingA, ratingB float64) float64 {
	return 1.0 / (1.0 + math.Pow(10, (ratingB-ratingA)/400.0))
}

// participantIDs collects the distinct participant identities of a bracket,
// in first-appearance order so write-back is deterministic.
func participantIDs(bracket *club.Bracket) []string {
	var ids []string
	seen := make(map[string]bool)
	for _, m := range bracket.Matches {
		for _, id := range []string{m.PlayerA, m.PlayerB} {
			if id == "" || seen[id] {
				continue
			}
			seen[id] = true
			ids = append(ids, id)
		}
	}
	return ids
}

// orderedMatches returns the bracket's matches sorted ascending by round,
// then match index. The store already returns them ordered, but the
// propagation contract does not rely on that.
func orderedMatches(bracket *club.Bracket) []club.BracketMatch {
	matches := make([]club.BracketMatch, len(bracket.Matches))
	copy(matches, bracket.Matches)
	sort.SliceStable(matches, func(i, j int) bool {
		if matches[i].Round != matches[j].Round {
			return matches[i].Round < matches[j].Round
		}
		return matches[i].MatchIndex < matches[j].MatchIndex
	})
	return matches
}
