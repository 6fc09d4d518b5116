package rating

import "github.com/midweekpadel/clubhouse/internal/club"

// ExtractPlacements classifies each participant's furthest progress in a
// bracket: the winner of the final, the runner-up (the other slot of the
// final, whether or not a winner has been declared yet), and semifinalists
// (losers of the matches in the round before the final).
//
// Each participant receives at most one placement per tournament, the
// highest-precedence one: winner > runner-up > semifinalist.
func ExtractPlacements(bracket *club.Bracket) []Placement {
	var placements []Placement
	awarded := make(map[string]bool)

	award := func(playerID string, a Achievement) {
		if playerID == "" || awarded[playerID] {
			return
		}
		awarded[playerID] = true
		placements = append(placements, Placement{PlayerID: playerID, Achievement: a})
	}

	if final, ok := finalMatch(bracket); ok {
		award(final.WinnerID, AchievementWinner)
		if final.PlayerA != "" && final.PlayerB != "" {
			runnerUp := final.PlayerA
			if final.WinnerID == final.PlayerA {
				runnerUp = final.PlayerB
			}
			award(runnerUp, AchievementRunnerUp)
		}
	}

	for _, m := range bracket.Matches {
		if m.Round != bracket.TotalRounds-1 {
			continue
		}
		for _, id := range []string{m.PlayerA, m.PlayerB} {
			if id == m.WinnerID {
				continue
			}
			award(id, AchievementSemifinalist)
		}
	}

	return placements
}

func finalMatch(bracket *club.Bracket) (club.BracketMatch, bool) {
	for _, m := range bracket.Matches {
		if m.Round == bracket.TotalRounds {
			return m, true
		}
	}
	return club.BracketMatch{}, false
}
