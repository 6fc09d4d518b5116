package club

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/log"
)

// New creates a new ClubStore.
func New(db *sql.DB) ClubStore {
	return &store{
		db: db,
	}
}

// UpsertPlayers inserts or updates club members in a single transaction.
// Ratings and tiers already held by an existing row are preserved when the
// incoming record does not carry them.
func (s *store) UpsertPlayers(players []PlayerInfo) error {
	if len(players) == 0 {
		return nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	stmt, err := tx.Prepare(`
		INSERT INTO players (id, name, sport, rating, skill_level)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			name = excluded.name,
			sport = excluded.sport,
			rating = COALESCE(excluded.rating, players.rating),
			skill_level = COALESCE(excluded.skill_level, players.skill_level);
	`)
	if err != nil {
		tx.Rollback()
		return fmt.Errorf("failed to prepare player upsert: %w", err)
	}
	defer stmt.Close()

	for _, p := range players {
		if _, err := stmt.Exec(p.ID, p.Name, p.Sport, p.Rating, p.SkillLevel); err != nil {
			tx.Rollback()
			return fmt.Errorf("failed to upsert player %s: %w", p.ID, err)
		}
	}

	return tx.Commit()
}

func (s *store) GetAllPlayers() ([]PlayerInfo, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.Query("SELECT id, name, sport, rating, skill_level, announced_tier FROM players ORDER BY name")
	if err != nil {
		log.Error("Failed to query all players", "error", err)
		return nil, err
	}
	defer rows.Close()

	return scanPlayers(rows)
}

func (s *store) GetPlayers(playerIDs []string) ([]PlayerInfo, error) {
	if len(playerIDs) == 0 {
		return []PlayerInfo{}, nil
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	placeholders := strings.Repeat("?,", len(playerIDs))
	placeholders = placeholders[:len(placeholders)-1]
	query := fmt.Sprintf("SELECT id, name, sport, rating, skill_level, announced_tier FROM players WHERE id IN (%s)", placeholders)

	rows, err := s.db.Query(query, ToAnySlice(playerIDs)...)
	if err != nil {
		log.Error("Failed to query players", "error", err, "playerIDs", playerIDs)
		return nil, err
	}
	defer rows.Close()

	return scanPlayers(rows)
}

func scanPlayers(rows *sql.Rows) ([]PlayerInfo, error) {
	players := []PlayerInfo{}
	for rows.Next() {
		var p PlayerInfo
		var name, tier sql.NullString
		var rating, skill sql.NullFloat64
		if err := rows.Scan(&p.ID, &name, &p.Sport, &rating, &skill, &tier); err != nil {
			log.Error("Failed to scan player row", "error", err)
			continue
		}
		p.Name = name.String // handle NULL name from db
		if rating.Valid {
			v := rating.Float64
			p.Rating = &v
		}
		if skill.Valid {
			v := skill.Float64
			p.SkillLevel = &v
		}
		if tier.Valid {
			v := tier.String
			p.AnnouncedTier = &v
		}
		players = append(players, p)
	}
	return players, rows.Err()
}

// GetPlayerRating returns a player's current skill rating. The boolean is
// false when the player is unknown or has never been rated; callers are
// expected to substitute their configured default in that case.
func (s *store) GetPlayerRating(playerID string) (float64, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var rating sql.NullFloat64
	err := s.db.QueryRow("SELECT rating FROM players WHERE id = ?", playerID).Scan(&rating)
	if err == sql.ErrNoRows {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("failed to read rating for %s: %w", playerID, err)
	}
	if !rating.Valid {
		return 0, false, nil
	}
	return rating.Float64, true, nil
}

// SetPlayerRating writes a player's rating, creating the player row if the
// bracket referenced someone not yet registered.
func (s *store) SetPlayerRating(playerID string, rating float64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.Exec(`
		INSERT INTO players (id, rating) VALUES (?, ?)
		ON CONFLICT(id) DO UPDATE SET rating = excluded.rating;
	`, playerID, rating)
	if err != nil {
		return fmt.Errorf("failed to set rating for %s: %w", playerID, err)
	}
	return nil
}

func (s *store) GetAnnouncedTier(playerID string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var tier sql.NullString
	err := s.db.QueryRow("SELECT announced_tier FROM players WHERE id = ?", playerID).Scan(&tier)
	if err == sql.ErrNoRows {
		return "", ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("failed to read announced tier for %s: %w", playerID, err)
	}
	return tier.String, nil
}

func (s *store) SetAnnouncedTier(playerID, tier string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.Exec("UPDATE players SET announced_tier = ? WHERE id = ?", tier, playerID)
	if err != nil {
		return fmt.Errorf("failed to set announced tier for %s: %w", playerID, err)
	}
	return nil
}

// UpsertTournament inserts a new tournament or updates an existing one. It is
// "dumb" and does not change the processing status of an existing tournament.
func (s *store) UpsertTournament(t *Tournament) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.Exec(`
		INSERT INTO tournaments (id, name, sport, total_rounds, completed_at, processing_status)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			name = excluded.name,
			sport = excluded.sport,
			total_rounds = excluded.total_rounds,
			completed_at = excluded.completed_at;
	`, t.ID, t.Name, t.Sport, t.TotalRounds, t.CompletedAt, StatusNew)
	if err != nil {
		return fmt.Errorf("failed to upsert tournament %s: %w", t.ID, err)
	}
	return nil
}

func (s *store) UpsertBracketMatches(tournamentID string, matches []BracketMatch) error {
	if len(matches) == 0 {
		return nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	stmt, err := tx.Prepare(`
		INSERT INTO bracket_matches (id, tournament_id, round, match_index, player_a, player_b, winner_id)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			round = excluded.round,
			match_index = excluded.match_index,
			player_a = excluded.player_a,
			player_b = excluded.player_b,
			winner_id = excluded.winner_id;
	`)
	if err != nil {
		tx.Rollback()
		return fmt.Errorf("failed to prepare bracket match upsert: %w", err)
	}
	defer stmt.Close()

	for _, m := range matches {
		_, err := stmt.Exec(m.ID, tournamentID, m.Round, m.MatchIndex,
			nullable(m.PlayerA), nullable(m.PlayerB), nullable(m.WinnerID))
		if err != nil {
			tx.Rollback()
			return fmt.Errorf("failed to upsert bracket match %s: %w", m.ID, err)
		}
	}

	return tx.Commit()
}

// GetBracket loads a tournament's bracket with matches ordered ascending by
// round, then match index. The ordering is part of the rating contract.
func (s *store) GetBracket(tournamentID string) (*Bracket, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.getBracketLocked(tournamentID)
}

func (s *store) getBracketLocked(tournamentID string) (*Bracket, error) {
	b := &Bracket{TournamentID: tournamentID}
	err := s.db.QueryRow("SELECT sport, total_rounds FROM tournaments WHERE id = ?", tournamentID).
		Scan(&b.Sport, &b.TotalRounds)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("tournament %s: %w", tournamentID, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read tournament %s: %w", tournamentID, err)
	}

	rows, err := s.db.Query(`
		SELECT id, round, match_index, player_a, player_b, winner_id
		FROM bracket_matches
		WHERE tournament_id = ?
		ORDER BY round ASC, match_index ASC
	`, tournamentID)
	if err != nil {
		return nil, fmt.Errorf("failed to query bracket matches: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var m BracketMatch
		var playerA, playerB, winner sql.NullString
		if err := rows.Scan(&m.ID, &m.Round, &m.MatchIndex, &playerA, &playerB, &winner); err != nil {
			log.Error("Failed to scan bracket match row", "error", err, "tournamentID", tournamentID)
			continue
		}
		m.PlayerA = playerA.String
		m.PlayerB = playerB.String
		m.WinnerID = winner.String
		b.Matches = append(b.Matches, m)
	}
	return b, rows.Err()
}

// GetCompletedBrackets returns the brackets of every fully processed
// tournament, most recently completed first.
func (s *store) GetCompletedBrackets() ([]*Bracket, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.Query(`
		SELECT id FROM tournaments
		WHERE processing_status = ?
		ORDER BY completed_at DESC
	`, StatusCompleted)
	if err != nil {
		return nil, fmt.Errorf("failed to query completed tournaments: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			log.Error("Failed to scan tournament row", "error", err)
			continue
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	var brackets []*Bracket
	for _, id := range ids {
		b, err := s.getBracketLocked(id)
		if err != nil {
			return nil, err
		}
		brackets = append(brackets, b)
	}
	return brackets, nil
}

// GetTournamentsForProcessing retrieves all tournaments that are not yet in a
// completed state.
func (s *store) GetTournamentsForProcessing() ([]*Tournament, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.Query(`
		SELECT id, name, sport, total_rounds, completed_at, processing_status
		FROM tournaments
		WHERE processing_status != ?
	`, StatusCompleted)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tournaments []*Tournament
	for rows.Next() {
		var t Tournament
		var completedAt sql.NullInt64
		if err := rows.Scan(&t.ID, &t.Name, &t.Sport, &t.TotalRounds, &completedAt, &t.ProcessingStatus); err != nil {
			log.Error("Failed to scan tournament row", "error", err)
			continue
		}
		t.CompletedAt = completedAt.Int64
		tournaments = append(tournaments, &t)
	}
	return tournaments, rows.Err()
}

// UpdateProcessingStatus transitions a tournament to a new state.
func (s *store) UpdateProcessingStatus(tournamentID string, status ProcessingStatus) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.Exec("UPDATE tournaments SET processing_status = ? WHERE id = ?", status, tournamentID)
	return err
}

func (s *store) GetLeagueStanding(leagueID, playerID string) (LeagueStanding, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	standing := LeagueStanding{LeagueID: leagueID, PlayerID: playerID}
	err := s.db.QueryRow(`
		SELECT played, won, lost, points FROM league_players
		WHERE league_id = ? AND player_id = ?
	`, leagueID, playerID).Scan(&standing.Played, &standing.Won, &standing.Lost, &standing.Points)
	if err == sql.ErrNoRows {
		return standing, fmt.Errorf("standing for %s in league %s: %w", playerID, leagueID, ErrNotFound)
	}
	if err != nil {
		return standing, fmt.Errorf("failed to read standing: %w", err)
	}
	return standing, nil
}

// IncrementLeagueStanding applies an additive delta to a player's counters.
// The row is created on first touch; the read-modify-write happens inside the
// statement so each player update is atomic at the store level.
func (s *store) IncrementLeagueStanding(leagueID, playerID string, delta StandingDelta) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.Exec(`
		INSERT INTO league_players (league_id, player_id, played, won, lost, points)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(league_id, player_id) DO UPDATE SET
			played = played + excluded.played,
			won = won + excluded.won,
			lost = lost + excluded.lost,
			points = points + excluded.points;
	`, leagueID, playerID, delta.Played, delta.Won, delta.Lost, delta.Points)
	if err != nil {
		return fmt.Errorf("failed to increment standing for %s in league %s: %w", playerID, leagueID, err)
	}
	return nil
}

func (s *store) GetLeagueStandings(leagueID string) ([]LeagueStanding, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.Query(`
		SELECT league_id, player_id, played, won, lost, points
		FROM league_players
		WHERE league_id = ?
		ORDER BY points DESC, won DESC
	`, leagueID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var standings []LeagueStanding
	for rows.Next() {
		var st LeagueStanding
		if err := rows.Scan(&st.LeagueID, &st.PlayerID, &st.Played, &st.Won, &st.Lost, &st.Points); err != nil {
			log.Error("Failed to scan standing row", "error", err)
			continue
		}
		standings = append(standings, st)
	}
	return standings, rows.Err()
}

func (s *store) UpsertLeagueMatch(matchID, leagueID string, playedAt int64, participations []Participation) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	if _, err := tx.Exec(`
		INSERT INTO league_matches (id, league_id, played_at) VALUES (?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET league_id = excluded.league_id, played_at = excluded.played_at;
	`, matchID, leagueID, playedAt); err != nil {
		tx.Rollback()
		return fmt.Errorf("failed to upsert league match %s: %w", matchID, err)
	}

	for _, p := range participations {
		if _, err := tx.Exec(`
			INSERT INTO match_participations (match_id, player_id, performance_rating)
			VALUES (?, ?, ?)
			ON CONFLICT(match_id, player_id) DO UPDATE SET performance_rating = excluded.performance_rating;
		`, matchID, p.PlayerID, p.PerformanceRating); err != nil {
			tx.Rollback()
			return fmt.Errorf("failed to upsert participation for %s: %w", p.PlayerID, err)
		}
	}

	return tx.Commit()
}

func (s *store) GetMatchParticipations(matchID string) ([]Participation, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.Query(`
		SELECT match_id, player_id, performance_rating
		FROM match_participations
		WHERE match_id = ?
		ORDER BY player_id
	`, matchID)
	if err != nil {
		return nil, fmt.Errorf("failed to query participations for %s: %w", matchID, err)
	}
	defer rows.Close()

	var participations []Participation
	for rows.Next() {
		var p Participation
		var rating sql.NullFloat64
		if err := rows.Scan(&p.MatchID, &p.PlayerID, &rating); err != nil {
			log.Error("Failed to scan participation row", "error", err, "matchID", matchID)
			continue
		}
		if rating.Valid {
			v := rating.Float64
			p.PerformanceRating = &v
		}
		participations = append(participations, p)
	}
	return participations, rows.Err()
}

func (s *store) UpsertBookings(bookings []Booking) error {
	if len(bookings) == 0 {
		return nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	stmt, err := tx.Prepare(`
		INSERT INTO bookings (id, player_id, booked_for, status, created_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET status = excluded.status;
	`)
	if err != nil {
		tx.Rollback()
		return fmt.Errorf("failed to prepare booking upsert: %w", err)
	}
	defer stmt.Close()

	for _, b := range bookings {
		if _, err := stmt.Exec(b.ID, b.PlayerID, b.BookedFor.Unix(), b.Status, b.CreatedAt.Unix()); err != nil {
			tx.Rollback()
			return fmt.Errorf("failed to upsert booking %s: %w", b.ID, err)
		}
	}

	return tx.Commit()
}

// GetConfirmedBookings returns a player's confirmed bookings on or after
// since, most recent first.
func (s *store) GetConfirmedBookings(playerID string, since time.Time) ([]Booking, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.Query(`
		SELECT id, player_id, booked_for, status, created_at
		FROM bookings
		WHERE player_id = ? AND status = ? AND booked_for >= ?
		ORDER BY booked_for DESC
	`, playerID, BookingConfirmed, since.Unix())
	if err != nil {
		return nil, fmt.Errorf("failed to query bookings for %s: %w", playerID, err)
	}
	defer rows.Close()

	var bookings []Booking
	for rows.Next() {
		var b Booking
		var bookedFor, createdAt int64
		if err := rows.Scan(&b.ID, &b.PlayerID, &bookedFor, &b.Status, &createdAt); err != nil {
			log.Error("Failed to scan booking row", "error", err, "playerID", playerID)
			continue
		}
		b.BookedFor = time.Unix(bookedFor, 0).UTC()
		b.CreatedAt = time.Unix(createdAt, 0).UTC()
		bookings = append(bookings, b)
	}
	return bookings, rows.Err()
}

func (s *store) CountConfirmedBookings(playerID string) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var count int
	err := s.db.QueryRow(`
		SELECT COUNT(*) FROM bookings WHERE player_id = ? AND status = ?
	`, playerID, BookingConfirmed).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count bookings for %s: %w", playerID, err)
	}
	return count, nil
}

func (s *store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.Begin()
	if err != nil {
		log.Error("Failed to begin transaction for clearing store", "error", err)
		return
	}

	for _, table := range []string{"bookings", "match_participations", "league_matches", "league_players", "bracket_matches", "tournaments", "players"} {
		if _, err := tx.Exec("DELETE FROM " + table); err != nil {
			log.Error("Failed to clear table", "table", table, "error", err)
			tx.Rollback()
			return
		}
	}

	if err := tx.Commit(); err != nil {
		log.Error("Failed to commit transaction for clearing store", "error", err)
	}
}

func (s *store) ClearTournament(tournamentID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, err := s.db.Exec("DELETE FROM tournaments WHERE id = ?", tournamentID)
	if err != nil {
		log.Error("Failed to clear tournament", "error", err, "tournamentID", tournamentID)
	}
}

func nullable(s string) any {
	if s == "" {
		return nil
	}
	return s
}

func ToAnySlice[T any](s []T) []any {
	a := make([]any, len(s))
	for i, v := range s {
		a[i] = v
	}
	return a
}
