package club

import (
	"sync"
	"time"
)

// MockStore is a mock implementation of the ClubStore interface for testing.
// It is safe for concurrent use.
type MockStore struct {
	mu sync.Mutex

	// Spies for method calls
	UpsertPlayersFunc               func(players []PlayerInfo) error
	GetAllPlayersFunc               func() ([]PlayerInfo, error)
	GetPlayersFunc                  func(playerIDs []string) ([]PlayerInfo, error)
	GetPlayerRatingFunc             func(playerID string) (float64, bool, error)
	SetPlayerRatingFunc             func(playerID string, rating float64) error
	GetAnnouncedTierFunc            func(playerID string) (string, error)
	SetAnnouncedTierFunc            func(playerID, tier string) error
	UpsertTournamentFunc            func(t *Tournament) error
	UpsertBracketMatchesFunc        func(tournamentID string, matches []BracketMatch) error
	GetBracketFunc                  func(tournamentID string) (*Bracket, error)
	GetCompletedBracketsFunc        func() ([]*Bracket, error)
	GetTournamentsForProcessingFunc func() ([]*Tournament, error)
	UpdateProcessingStatusFunc      func(tournamentID string, status ProcessingStatus) error
	GetLeagueStandingFunc           func(leagueID, playerID string) (LeagueStanding, error)
	IncrementLeagueStandingFunc     func(leagueID, playerID string, delta StandingDelta) error
	GetLeagueStandingsFunc          func(leagueID string) ([]LeagueStanding, error)
	UpsertLeagueMatchFunc           func(matchID, leagueID string, playedAt int64, participations []Participation) error
	GetMatchParticipationsFunc      func(matchID string) ([]Participation, error)
	UpsertBookingsFunc              func(bookings []Booking) error
	GetConfirmedBookingsFunc        func(playerID string, since time.Time) ([]Booking, error)
	CountConfirmedBookingsFunc      func(playerID string) (int, error)
	ClearFunc                       func()
	ClearTournamentFunc             func(tournamentID string)

	// Call records
	SetPlayerRatingCalls []struct {
		PlayerID string
		Rating   float64
	}
	SetAnnouncedTierCalls []struct {
		PlayerID string
		Tier     string
	}
	IncrementLeagueStandingCalls []struct {
		LeagueID string
		PlayerID string
		Delta    StandingDelta
	}
	UpdateProcessingStatusCalls []struct {
		TournamentID string
		Status       ProcessingStatus
	}
	UpsertBookingsCalls [][]Booking
}

// NewMock creates a new mock instance.
func NewMock() *MockStore {
	return &MockStore{}
}

// Reset clears all call records.
func (m *MockStore) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SetPlayerRatingCalls = nil
	m.SetAnnouncedTierCalls = nil
	m.IncrementLeagueStandingCalls = nil
	m.UpdateProcessingStatusCalls = nil
	m.UpsertBookingsCalls = nil
}

func (m *MockStore) UpsertPlayers(players []PlayerInfo) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.UpsertPlayersFunc != nil {
		return m.UpsertPlayersFunc(players)
	}
	return nil
}

func (m *MockStore) GetAllPlayers() ([]PlayerInfo, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.GetAllPlayersFunc != nil {
		return m.GetAllPlayersFunc()
	}
	return nil, nil
}

func (m *MockStore) GetPlayers(playerIDs []string) ([]PlayerInfo, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.GetPlayersFunc != nil {
		return m.GetPlayersFunc(playerIDs)
	}
	return nil, nil
}

func (m *MockStore) GetPlayerRating(playerID string) (float64, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.GetPlayerRatingFunc != nil {
		return m.GetPlayerRatingFunc(playerID)
	}
	return 0, false, nil
}

func (m *MockStore) SetPlayerRating(playerID string, rating float64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SetPlayerRatingCalls = append(m.SetPlayerRatingCalls, struct {
		PlayerID string
		Rating   float64
	}{playerID, rating})
	if m.SetPlayerRatingFunc != nil {
		return m.SetPlayerRatingFunc(playerID, rating)
	}
	return nil
}

func (m *MockStore) GetAnnouncedTier(playerID string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.GetAnnouncedTierFunc != nil {
		return m.GetAnnouncedTierFunc(playerID)
	}
	return "", nil
}

func (m *MockStore) SetAnnouncedTier(playerID, tier string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SetAnnouncedTierCalls = append(m.SetAnnouncedTierCalls, struct {
		PlayerID string
		Tier     string
	}{playerID, tier})
	if m.SetAnnouncedTierFunc != nil {
		return m.SetAnnouncedTierFunc(playerID, tier)
	}
	return nil
}

func (m *MockStore) UpsertTournament(t *Tournament) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.UpsertTournamentFunc != nil {
		return m.UpsertTournamentFunc(t)
	}
	return nil
}

func (m *MockStore) UpsertBracketMatches(tournamentID string, matches []BracketMatch) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.UpsertBracketMatchesFunc != nil {
		return m.UpsertBracketMatchesFunc(tournamentID, matches)
	}
	return nil
}

func (m *MockStore) GetBracket(tournamentID string) (*Bracket, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.GetBracketFunc != nil {
		return m.GetBracketFunc(tournamentID)
	}
	return nil, ErrNotFound
}

func (m *MockStore) GetCompletedBrackets() ([]*Bracket, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.GetCompletedBracketsFunc != nil {
		return m.GetCompletedBracketsFunc()
	}
	return nil, nil
}

func (m *MockStore) GetTournamentsForProcessing() ([]*Tournament, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.GetTournamentsForProcessingFunc != nil {
		return m.GetTournamentsForProcessingFunc()
	}
	return nil, nil
}

func (m *MockStore) UpdateProcessingStatus(tournamentID string, status ProcessingStatus) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.UpdateProcessingStatusCalls = append(m.UpdateProcessingStatusCalls, struct {
		TournamentID string
		Status       ProcessingStatus
	}{tournamentID, status})
	if m.UpdateProcessingStatusFunc != nil {
		return m.UpdateProcessingStatusFunc(tournamentID, status)
	}
	return nil
}

func (m *MockStore) GetLeagueStanding(leagueID, playerID string) (LeagueStanding, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.GetLeagueStandingFunc != nil {
		return m.GetLeagueStandingFunc(leagueID, playerID)
	}
	return LeagueStanding{LeagueID: leagueID, PlayerID: playerID}, nil
}

func (m *MockStore) IncrementLeagueStanding(leagueID, playerID string, delta StandingDelta) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.IncrementLeagueStandingCalls = append(m.IncrementLeagueStandingCalls, struct {
		LeagueID string
		PlayerID string
		Delta    StandingDelta
	}{leagueID, playerID, delta})
	if m.IncrementLeagueStandingFunc != nil {
		return m.IncrementLeagueStandingFunc(leagueID, playerID, delta)
	}
	return nil
}

func (m *MockStore) GetLeagueStandings(leagueID string) ([]LeagueStanding, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.GetLeagueStandingsFunc != nil {
		return m.GetLeagueStandingsFunc(leagueID)
	}
	return nil, nil
}

func (m *MockStore) UpsertLeagueMatch(matchID, leagueID string, playedAt int64, participations []Participation) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.UpsertLeagueMatchFunc != nil {
		return m.UpsertLeagueMatchFunc(matchID, leagueID, playedAt, participations)
	}
	return nil
}

func (m *MockStore) GetMatchParticipations(matchID string) ([]Participation, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.GetMatchParticipationsFunc != nil {
		return m.GetMatchParticipationsFunc(matchID)
	}
	return nil, nil
}

func (m *MockStore) UpsertBookings(bookings []Booking) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.UpsertBookingsCalls = append(m.UpsertBookingsCalls, bookings)
	if m.UpsertBookingsFunc != nil {
		return m.UpsertBookingsFunc(bookings)
	}
	return nil
}

func (m *MockStore) GetConfirmedBookings(playerID string, since time.Time) ([]Booking, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.GetConfirmedBookingsFunc != nil {
		return m.GetConfirmedBookingsFunc(playerID, since)
	}
	return nil, nil
}

func (m *MockStore) CountConfirmedBookings(playerID string) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.CountConfirmedBookingsFunc != nil {
		return m.CountConfirmedBookingsFunc(playerID)
	}
	return 0, nil
}

func (m *MockStore) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.ClearFunc != nil {
		m.ClearFunc()
	}
}

func (m *MockStore) ClearTournament(tournamentID string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.ClearTournamentFunc != nil {
		m.ClearTournamentFunc(tournamentID)
	}
}
