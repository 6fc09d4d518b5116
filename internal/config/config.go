package config

import (
	"os"
	"strconv"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
)

// Load reads configuration from environment variables and .env file.
func Load() Config {
	err := godotenv.Load()
	if err != nil {
		log.Info("No .env file found, reading from environment variables")
	}

	// A helper function to get a required env var. It will fail if the env var is not set.
	getEnv := func(key string) string {
		if value, ok := os.LookupEnv(key); ok {
			return value
		}
		log.Fatalf("Error: Required environment variable %s is not set.", key)
		return "" // This line is never reached
	}
	getEnvOr := func(key, fallback string) string {
		if value, ok := os.LookupEnv(key); ok {
			return value
		}
		return fallback
	}

	syncInterval, err := strconv.Atoi(getEnvOr("SYNC_INTERVAL_HOURS", "0"))
	if err != nil {
		log.Warn("Invalid SYNC_INTERVAL_HOURS, booking sync schedule disabled", "value", os.Getenv("SYNC_INTERVAL_HOURS"))
		syncInterval = 0
	}

	cfg := Config{
		DBName:        getEnv("DB_NAME"),
		MigrationsDir: "./migrations",
		Port:          getEnv("PORT"),
		LeagueID:      getEnvOr("LEAGUE_ID", "wednesday"),
		Turso: TursoConfig{
			PrimaryURL: getEnvOr("TURSO_PRIMARY_URL", ""),
			AuthToken:  getEnvOr("TURSO_AUTH_TOKEN", ""),
		},
		Slack: SlackConfig{
			Token:     getEnv("SLACK_BOT_TOKEN"),
			ChannelID: getEnv("SLACK_CHANNEL_ID"),
		},
		Playtomic: PlaytomicConfig{
			TenantID:          getEnv("TENANT_ID"),
			SportID:           getEnvOr("SPORT_ID", "PADEL"),
			SyncIntervalHours: syncInterval,
		},
		ProjectID: getEnv("GCP_PROJECT"),
	}
	return cfg
}
