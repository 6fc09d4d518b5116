package config

// Config holds all configuration for the application.
type Config struct {
	DBName        string
	MigrationsDir string
	Port          string
	LeagueID      string
	Turso         TursoConfig
	Slack         SlackConfig
	Playtomic     PlaytomicConfig
	ProjectID     string
}

type TursoConfig struct {
	PrimaryURL string
	AuthToken  string
}

type SlackConfig struct {
	Token     string
	ChannelID string
}

// PlaytomicConfig controls the booking import from the club's booking platform.
type PlaytomicConfig struct {
	TenantID          string
	SportID           string
	SyncIntervalHours int
}
