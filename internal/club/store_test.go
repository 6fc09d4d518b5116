package club_test

import (
	"database/sql"
	"testing"
	"time"

	"github.com/midweekpadel/clubhouse/internal/club"
	"github.com/midweekpadel/clubhouse/internal/database"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupTestDB creates a temporary in-memory SQLite database for testing.
func setupTestDB(t *testing.T) (club.ClubStore, *sql.DB, func()) {
	t.Helper()

	db, dbTeardown, err := database.InitDB(":memory:", "", "", "../../migrations")
	require.NoError(t, err)

	store := club.New(db)
	teardown := func() {
		dbTeardown()
		db.Close()
	}

	return store, db, teardown
}

func floatPtr(v float64) *float64 { return &v }

func TestUpsertAndGetPlayers(t *testing.T) {
	store, _, teardown := setupTestDB(t)
	defer teardown()

	err := store.UpsertPlayers([]club.PlayerInfo{
		{ID: "p1", Name: "Player One", Sport: "PADEL", Rating: floatPtr(1600)},
		{ID: "p2", Name: "Player Two", Sport: "PADEL"},
	})
	require.NoError(t, err)

	players, err := store.GetAllPlayers()
	require.NoError(t, err)
	require.Len(t, players, 2)

	t.Run("preserves rating on re-upsert without one", func(t *testing.T) {
		err := store.UpsertPlayers([]club.PlayerInfo{{ID: "p1", Name: "Player One Renamed", Sport: "PADEL"}})
		require.NoError(t, err)

		rating, ok, err := store.GetPlayerRating("p1")
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, 1600.0, rating)
	})

	t.Run("gets subset of players", func(t *testing.T) {
		players, err := store.GetPlayers([]string{"p2"})
		require.NoError(t, err)
		require.Len(t, players, 1)
		assert.Equal(t, "p2", players[0].ID)
	})

	t.Run("returns empty slice for empty id slice", func(t *testing.T) {
		players, err := store.GetPlayers([]string{})
		require.NoError(t, err)
		assert.Len(t, players, 0)
	})
}

func TestGetPlayerRating(t *testing.T) {
	store, _, teardown := setupTestDB(t)
	defer teardown()

	require.NoError(t, store.UpsertPlayers([]club.PlayerInfo{{ID: "p1", Name: "Unrated", Sport: "PADEL"}}))

	t.Run("absent for unrated player", func(t *testing.T) {
		_, ok, err := store.GetPlayerRating("p1")
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("absent for unknown player", func(t *testing.T) {
		_, ok, err := store.GetPlayerRating("ghost")
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("present after SetPlayerRating", func(t *testing.T) {
		require.NoError(t, store.SetPlayerRating("p1", 1512))
		rating, ok, err := store.GetPlayerRating("p1")
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, 1512.0, rating)
	})

	t.Run("SetPlayerRating creates missing player row", func(t *testing.T) {
		require.NoError(t, store.SetPlayerRating("newcomer", 1490))
		rating, ok, err := store.GetPlayerRating("newcomer")
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, 1490.0, rating)
	})
}

func TestBracketRoundTrip(t *testing.T) {
	store, _, teardown := setupTestDB(t)
	defer teardown()

	tournament := &club.Tournament{ID: "t1", Name: "Spring Open", Sport: "PADEL", TotalRounds: 2, CompletedAt: 1700000000}
	require.NoError(t, store.UpsertTournament(tournament))

	// Insert out of order; GetBracket must return ascending (round, index).
	matches := []club.BracketMatch{
		{ID: "m3", Round: 2, MatchIndex: 1, PlayerA: "a", PlayerB: "c", WinnerID: "a"},
		{ID: "m2", Round: 1, MatchIndex: 2, PlayerA: "c", PlayerB: "d", WinnerID: "c"},
		{ID: "m1", Round: 1, MatchIndex: 1, PlayerA: "a", PlayerB: "b", WinnerID: "a"},
	}
	require.NoError(t, store.UpsertBracketMatches("t1", matches))

	bracket, err := store.GetBracket("t1")
	require.NoError(t, err)
	assert.Equal(t, 2, bracket.TotalRounds)
	require.Len(t, bracket.Matches, 3)
	assert.Equal(t, "m1", bracket.Matches[0].ID)
	assert.Equal(t, "m2", bracket.Matches[1].ID)
	assert.Equal(t, "m3", bracket.Matches[2].ID)

	t.Run("unknown tournament yields ErrNotFound", func(t *testing.T) {
		_, err := store.GetBracket("nope")
		require.Error(t, err)
		assert.ErrorIs(t, err, club.ErrNotFound)
	})

	t.Run("undecided match scans with empty winner", func(t *testing.T) {
		require.NoError(t, store.UpsertBracketMatches("t1", []club.BracketMatch{
			{ID: "m4", Round: 1, MatchIndex: 3, PlayerA: "e"},
		}))
		bracket, err := store.GetBracket("t1")
		require.NoError(t, err)
		require.Len(t, bracket.Matches, 4)
		assert.Equal(t, "", bracket.Matches[2].WinnerID)
		assert.Equal(t, "", bracket.Matches[2].PlayerB)
	})
}

func TestTournamentProcessingLifecycle(t *testing.T) {
	store, _, teardown := setupTestDB(t)
	defer teardown()

	require.NoError(t, store.UpsertTournament(&club.Tournament{ID: "t1", Name: "Open", Sport: "PADEL", TotalRounds: 1}))

	pending, err := store.GetTournamentsForProcessing()
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, club.StatusNew, pending[0].ProcessingStatus)

	// Re-upsert must not reset the processing status.
	require.NoError(t, store.UpdateProcessingStatus("t1", club.StatusRatingsApplied))
	require.NoError(t, store.UpsertTournament(&club.Tournament{ID: "t1", Name: "Open", Sport: "PADEL", TotalRounds: 1}))

	pending, err = store.GetTournamentsForProcessing()
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, club.StatusRatingsApplied, pending[0].ProcessingStatus)

	require.NoError(t, store.UpdateProcessingStatus("t1", club.StatusCompleted))
	pending, err = store.GetTournamentsForProcessing()
	require.NoError(t, err)
	assert.Len(t, pending, 0)

	brackets, err := store.GetCompletedBrackets()
	require.NoError(t, err)
	assert.Len(t, brackets, 1)
}

func TestIncrementLeagueStanding(t *testing.T) {
	store, _, teardown := setupTestDB(t)
	defer teardown()

	require.NoError(t, store.UpsertPlayers([]club.PlayerInfo{{ID: "p1", Name: "One", Sport: "PADEL"}}))

	_, err := store.GetLeagueStanding("league-1", "p1")
	assert.ErrorIs(t, err, club.ErrNotFound)

	require.NoError(t, store.IncrementLeagueStanding("league-1", "p1", club.StandingDelta{Played: 1, Won: 1, Points: 3}))
	require.NoError(t, store.IncrementLeagueStanding("league-1", "p1", club.StandingDelta{Played: 1, Lost: 1}))

	standing, err := store.GetLeagueStanding("league-1", "p1")
	require.NoError(t, err)
	assert.Equal(t, 2, standing.Played)
	assert.Equal(t, 1, standing.Won)
	assert.Equal(t, 1, standing.Lost)
	assert.Equal(t, 3, standing.Points)

	standings, err := store.GetLeagueStandings("league-1")
	require.NoError(t, err)
	require.Len(t, standings, 1)
	assert.Equal(t, "p1", standings[0].PlayerID)
}

func TestMatchParticipations(t *testing.T) {
	store, _, teardown := setupTestDB(t)
	defer teardown()

	parts := []club.Participation{
		{PlayerID: "p1", PerformanceRating: floatPtr(4)},
		{PlayerID: "p2"},
	}
	require.NoError(t, store.UpsertLeagueMatch("match-1", "league-1", 1700000000, parts))

	got, err := store.GetMatchParticipations("match-1")
	require.NoError(t, err)
	require.Len(t, got, 2)
	require.NotNil(t, got[0].PerformanceRating)
	assert.Equal(t, 4.0, *got[0].PerformanceRating)
	assert.Nil(t, got[1].PerformanceRating)
}

func TestBookings(t *testing.T) {
	store, _, teardown := setupTestDB(t)
	defer teardown()

	day := time.Date(2024, 1, 3, 18, 0, 0, 0, time.UTC)
	bookings := []club.Booking{
		{ID: "b1", PlayerID: "p1", BookedFor: day, Status: club.BookingConfirmed, CreatedAt: day},
		{ID: "b2", PlayerID: "p1", BookedFor: day.AddDate(0, 0, 7), Status: club.BookingConfirmed, CreatedAt: day},
		{ID: "b3", PlayerID: "p1", BookedFor: day.AddDate(0, 0, 14), Status: club.BookingPending, CreatedAt: day},
		{ID: "b4", PlayerID: "p2", BookedFor: day, Status: club.BookingConfirmed, CreatedAt: day},
	}
	require.NoError(t, store.UpsertBookings(bookings))

	t.Run("only confirmed bookings for the player, most recent first", func(t *testing.T) {
		got, err := store.GetConfirmedBookings("p1", day.AddDate(0, 0, -1))
		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, "b2", got[0].ID)
		assert.Equal(t, "b1", got[1].ID)
	})

	t.Run("since cutoff excludes older bookings", func(t *testing.T) {
		got, err := store.GetConfirmedBookings("p1", day.AddDate(0, 0, 1))
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, "b2", got[0].ID)
	})

	t.Run("status transition via re-upsert", func(t *testing.T) {
		require.NoError(t, store.UpsertBookings([]club.Booking{
			{ID: "b3", PlayerID: "p1", BookedFor: day.AddDate(0, 0, 14), Status: club.BookingConfirmed, CreatedAt: day},
		}))
		count, err := store.CountConfirmedBookings("p1")
		require.NoError(t, err)
		assert.Equal(t, 3, count)
	})
}

func TestAnnouncedTier(t *testing.T) {
	store, _, teardown := setupTestDB(t)
	defer teardown()

	require.NoError(t, store.UpsertPlayers([]club.PlayerInfo{{ID: "p1", Name: "One", Sport: "PADEL"}}))

	tier, err := store.GetAnnouncedTier("p1")
	require.NoError(t, err)
	assert.Equal(t, "", tier)

	require.NoError(t, store.SetAnnouncedTier("p1", "silver"))
	tier, err = store.GetAnnouncedTier("p1")
	require.NoError(t, err)
	assert.Equal(t, "silver", tier)

	_, err = store.GetAnnouncedTier("ghost")
	assert.ErrorIs(t, err, club.ErrNotFound)
}

func TestClear(t *testing.T) {
	store, _, teardown := setupTestDB(t)
	defer teardown()

	require.NoError(t, store.UpsertPlayers([]club.PlayerInfo{{ID: "p1", Name: "One", Sport: "PADEL"}}))
	require.NoError(t, store.UpsertTournament(&club.Tournament{ID: "t1", Name: "Open", Sport: "PADEL", TotalRounds: 1}))

	store.Clear()

	players, err := store.GetAllPlayers()
	require.NoError(t, err)
	assert.Len(t, players, 0)

	pending, err := store.GetTournamentsForProcessing()
	require.NoError(t, err)
	assert.Len(t, pending, 0)
}
