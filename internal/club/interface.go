package club

import "time"

// ClubStore defines the interface for interacting with the club's data.
type ClubStore interface {
	// Players
	UpsertPlayers(players []PlayerInfo) error
	GetAllPlayers() ([]PlayerInfo, error)
	GetPlayers(playerIDs []string) ([]PlayerInfo, error)
	GetPlayerRating(playerID string) (float64, bool, error)
	SetPlayerRating(playerID string, rating float64) error
	GetAnnouncedTier(playerID string) (string, error)
	SetAnnouncedTier(playerID, tier string) error

	// Tournaments
	UpsertTournament(t *Tournament) error
	UpsertBracketMatches(tournamentID string, matches []BracketMatch) error
	GetBracket(tournamentID string) (*Bracket, error)
	GetCompletedBrackets() ([]*Bracket, error)
	GetTournamentsForProcessing() ([]*Tournament, error)
	UpdateProcessingStatus(tournamentID string, status ProcessingStatus) error

	// Leagues
	GetLeagueStanding(leagueID, playerID string) (LeagueStanding, error)
	IncrementLeagueStanding(leagueID, playerID string, delta StandingDelta) error
	GetLeagueStandings(leagueID string) ([]LeagueStanding, error)
	UpsertLeagueMatch(matchID, leagueID string, playedAt int64, participations []Participation) error
	GetMatchParticipations(matchID string) ([]Participation, error)

	// Bookings
	UpsertBookings(bookings []Booking) error
	GetConfirmedBookings(playerID string, since time.Time) ([]Booking, error)
	CountConfirmedBookings(playerID string) (int, error)

	// Admin
	Clear()
	ClearTournament(tournamentID string)
}
