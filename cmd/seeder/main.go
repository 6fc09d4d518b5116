package main

import (
	"math/rand"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/joho/godotenv"

	"github.com/midweekpadel/clubhouse/internal/club"
	"github.com/midweekpadel/clubhouse/internal/database"
)

// Simplified config loading for the script
func loadConfig() (dbName, primaryURL, authToken string) {
	if err := godotenv.Load(); err != nil {
		log.Warn("No .env file found, reading from environment variables")
	}
	dbName, ok := os.LookupEnv("DB_NAME")
	if !ok {
		log.Fatalf("Error: Required environment variable DB_NAME is not set.")
	}
	return dbName, os.Getenv("TURSO_PRIMARY_URL"), os.Getenv("TURSO_AUTH_TOKEN")
}

func main() {
	log.Info("Starting database seeder...")
	dbName, primaryURL, authToken := loadConfig()

	db, teardown, err := database.InitDB(dbName, primaryURL, authToken, "./migrations")
	if err != nil {
		log.Fatalf("Failed to initialize database: %s", err)
	}
	defer teardown()

	store := club.New(db)

	skill := func(v float64) *float64 { return &v }
	players := []club.PlayerInfo{
		{ID: "player-1", Name: "Seeder Player A", Sport: "PADEL", SkillLevel: skill(3.5)},
		{ID: "player-2", Name: "Seeder Player B", Sport: "PADEL", SkillLevel: skill(3.0)},
		{ID: "player-3", Name: "Seeder Player C", Sport: "PADEL", SkillLevel: skill(4.0)},
		{ID: "player-4", Name: "Seeder Player D", Sport: "PADEL", SkillLevel: skill(2.5)},
		{ID: "player-5", Name: "Seeder Player E", Sport: "PADEL", SkillLevel: skill(3.2)},
		{ID: "player-6", Name: "Seeder Player F", Sport: "PADEL", SkillLevel: skill(2.8)},
		{ID: "player-7", Name: "Seeder Player G", Sport: "PADEL", SkillLevel: skill(3.8)},
		{ID: "player-8", Name: "Seeder Player H", Sport: "PADEL", SkillLevel: skill(2.6)},
	}
	if err := store.UpsertPlayers(players); err != nil {
		log.Fatalf("Failed to seed players: %s", err)
	}
	log.Info("Seeded players.", "count", len(players))

	// A season of Wednesday bookings: each player attends a random subset of
	// the last twelve Wednesdays.
	now := time.Now().UTC()
	lastWednesday := now
	for lastWednesday.Weekday() != time.Wednesday {
		lastWednesday = lastWednesday.AddDate(0, 0, -1)
	}
	var bookings []club.Booking
	for _, p := range players {
		for week := 0; week < 12; week++ {
			if rand.Intn(100) < 70 {
				bookedFor := lastWednesday.AddDate(0, 0, -7*week)
				bookings = append(bookings, club.Booking{
					ID:        uuid.NewString(),
					PlayerID:  p.ID,
					BookedFor: bookedFor,
					Status:    club.BookingConfirmed,
					CreatedAt: bookedFor.AddDate(0, 0, -3),
				})
			}
		}
	}
	if err := store.UpsertBookings(bookings); err != nil {
		log.Fatalf("Failed to seed bookings: %s", err)
	}
	log.Info("Seeded Wednesday bookings.", "count", len(bookings))

	// A completed four-player tournament waiting for its rating pass.
	tournamentID := uuid.NewString()
	tournament := &club.Tournament{
		ID:               tournamentID,
		Name:             "Seeded Winter Open",
		Sport:            "PADEL",
		TotalRounds:      2,
		CompletedAt:      now.Add(-24 * time.Hour).Unix(),
		ProcessingStatus: club.StatusNew,
	}
	if err := store.UpsertTournament(tournament); err != nil {
		log.Fatalf("Failed to seed tournament: %s", err)
	}
	matches := []club.BracketMatch{
		{ID: uuid.NewString(), Round: 1, MatchIndex: 0, PlayerA: "player-1", PlayerB: "player-2", WinnerID: "player-1"},
		{ID: uuid.NewString(), Round: 1, MatchIndex: 1, PlayerA: "player-3", PlayerB: "player-4", WinnerID: "player-3"},
		{ID: uuid.NewString(), Round: 2, MatchIndex: 0, PlayerA: "player-1", PlayerB: "player-3", WinnerID: "player-3"},
	}
	if err := store.UpsertBracketMatches(tournamentID, matches); err != nil {
		log.Fatalf("Failed to seed bracket: %s", err)
	}
	log.Info("Seeded tournament bracket.", "tournamentID", tournamentID)

	// A league match with performance ratings, ready for /apply-match.
	matchID := uuid.NewString()
	perfA, perfB := 4.0, 2.0
	participations := []club.Participation{
		{MatchID: matchID, PlayerID: "player-5", PerformanceRating: &perfA},
		{MatchID: matchID, PlayerID: "player-6", PerformanceRating: &perfB},
	}
	if err := store.UpsertLeagueMatch(matchID, "wednesday", now.Add(-48*time.Hour).Unix(), participations); err != nil {
		log.Fatalf("Failed to seed league match: %s", err)
	}
	log.Info("Seeded league match.", "matchID", matchID)

	log.Info("Seeding complete.")
}
