package http

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/charmbracelet/log"

	"github.com/midweekpadel/clubhouse/internal/pubsub"
	"github.com/midweekpadel/clubhouse/internal/standings"
)

func (s *Server) HealthCheckHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log.Debug("Received health check request")
		w.WriteHeader(http.StatusOK)
		fmt.Fprintf(w, "OK!")
	}
}

func (s *Server) ClearStoreHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		tournamentID := r.URL.Query().Get("tournamentID")
		if tournamentID != "" {
			log.Info("Received request to clear a specific tournament", "tournamentID", tournamentID)
			s.Store.ClearTournament(tournamentID)
			w.WriteHeader(http.StatusOK)
			fmt.Fprintf(w, "Cleared tournament %s from store!", tournamentID)
			log.Info("Successfully cleared tournament from store", "tournamentID", tournamentID)
		} else {
			log.Info("Received request to clear entire store")
			s.Store.Clear()
			w.WriteHeader(http.StatusOK)
			fmt.Fprint(w, "Store cleared!")
			log.Info("Store cleared successfully")
		}
	}
}

func (s *Server) ListPlayersHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		players, err := s.Store.GetAllPlayers()
		if err != nil {
			log.Error("Failed to list players", "error", err)
			http.Error(w, "Failed to list players", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(players); err != nil {
			log.Error("Failed to encode players", "error", err)
		}
	}
}

func (s *Server) LeaderboardHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		leagueID := r.URL.Query().Get("leagueID")
		if leagueID == "" {
			leagueID = s.Cfg.LeagueID
		}
		entries, err := s.Leaderboard.Project(leagueID)
		if err != nil {
			log.Error("Failed to build leaderboard", "error", err, "leagueID", leagueID)
			http.Error(w, "Failed to build leaderboard", http.StatusInternalServerError)
			return
		}

		// notify=true posts the board to the club channel as well.
		if r.URL.Query().Get("notify") == "true" {
			if err := s.Notifier.SendLeaderboard(entries, isDryRunFromContext(r)); err != nil {
				log.Error("Failed to post leaderboard", "error", err, "leagueID", leagueID)
			}
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(entries); err != nil {
			log.Error("Failed to encode leaderboard", "error", err)
		}
	}
}

func (s *Server) TierStatusHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		playerID := r.URL.Query().Get("playerID")
		if playerID == "" {
			http.Error(w, "Missing playerID parameter", http.StatusBadRequest)
			return
		}
		status := s.Processor.TierStatus(playerID)
		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(status); err != nil {
			log.Error("Failed to encode tier status", "error", err, "playerID", playerID)
		}
	}
}

func (s *Server) ProcessTournamentsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s.Processor.ProcessTournaments(isDryRunFromContext(r))
		w.WriteHeader(http.StatusOK)
		fmt.Fprintln(w, "Tournament processing completed.")
	}
}

func (s *Server) ApplyMatchHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		matchID := r.URL.Query().Get("matchID")
		if matchID == "" {
			http.Error(w, "Missing matchID parameter", http.StatusBadRequest)
			return
		}
		leagueID := r.URL.Query().Get("leagueID")

		applied, err := s.Processor.ApplyMatchResult(leagueID, matchID, isDryRunFromContext(r))
		if err != nil {
			if errors.Is(err, standings.ErrInvalidMatchData) {
				http.Error(w, err.Error(), http.StatusBadRequest)
				return
			}
			log.Error("Failed to apply match result", "error", err, "matchID", matchID)
			http.Error(w, "Failed to apply match result", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(map[string]bool{"applied": applied}); err != nil {
			log.Error("Failed to encode apply-match response", "error", err)
		}
	}
}

func (s *Server) SyncBookingsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := s.Processor.SyncBookings(isDryRunFromContext(r)); err != nil {
			log.Error("Booking sync failed", "error", err)
			http.Error(w, "Booking sync failed", http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusOK)
		fmt.Fprintln(w, "Booking sync completed.")
	}
}

// TournamentCompletedHandler receives a push delivery carrying a finished
// tournament, ingests it and triggers a processing pass.
func (s *Server) TournamentCompletedHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rawData, err := decodePushPayload(r)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		isDryRun := isDryRunFromContext(r)

		var event pubsub.TournamentCompletedEvent
		if err := s.pubsub.ProcessMessage(rawData, &event); err != nil {
			http.Error(w, "Invalid message payload", http.StatusBadRequest)
			return
		}
		if event.Tournament.ID == "" {
			http.Error(w, "Missing tournament ID", http.StatusBadRequest)
			return
		}
		if err := s.Processor.IngestTournament(&event.Tournament, event.Matches, isDryRun); err != nil {
			log.Error("Failed to ingest tournament", "error", err, "tournamentID", event.Tournament.ID)
			http.Error(w, "Failed to ingest tournament", http.StatusInternalServerError)
			return
		}
		s.Processor.ProcessTournaments(isDryRun)
		w.Write([]byte("OK"))
	}
}

// BookingConfirmedHandler receives a push delivery for a confirmed booking
// and runs it through the loyalty pipeline.
func (s *Server) BookingConfirmedHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rawData, err := decodePushPayload(r)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		var event pubsub.BookingConfirmedEvent
		if err := s.pubsub.ProcessMessage(rawData, &event); err != nil {
			http.Error(w, "Invalid message payload", http.StatusBadRequest)
			return
		}
		if event.Booking.PlayerID == "" {
			http.Error(w, "Missing booking player", http.StatusBadRequest)
			return
		}
		if err := s.Processor.HandleBookingConfirmed(event.Booking, isDryRunFromContext(r)); err != nil {
			log.Error("Failed to handle booking confirmation", "error", err, "bookingID", event.Booking.ID)
			http.Error(w, "Failed to handle booking", http.StatusInternalServerError)
			return
		}
		w.Write([]byte("OK"))
	}
}

// decodePushPayload unwraps a Pub/Sub push delivery: an outer JSON envelope
// with a base64-encoded MessagePack payload inside.
func decodePushPayload(r *http.Request) ([]byte, error) {
	bodyBytes, err := io.ReadAll(r.Body)
	if err != nil {
		log.Error("Failed to read request body", "error", err)
		return nil, fmt.Errorf("failed to read request body")
	}
	log.Debug("Received push message", "body", string(bodyBytes))

	var pushMsg struct {
		Subscription string `json:"subscription"`
		Message      struct {
			Data string `json:"data"` // base64-encoded message payload
		} `json:"message"`
	}
	if err := json.Unmarshal(bodyBytes, &pushMsg); err != nil {
		log.Error("Failed to unmarshal wrapper JSON", "error", err)
		return nil, fmt.Errorf("invalid JSON")
	}

	rawData, err := base64.StdEncoding.DecodeString(pushMsg.Message.Data)
	if err != nil {
		log.Error("Failed to decode base64 data", "error", err)
		return nil, fmt.Errorf("invalid base64 data")
	}
	return rawData, nil
}
