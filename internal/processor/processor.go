package processor

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/midweekpadel/clubhouse/internal/club"
	"github.com/midweekpadel/clubhouse/internal/loyalty"
	"github.com/midweekpadel/clubhouse/internal/metrics"
	"github.com/midweekpadel/clubhouse/internal/playtomic"
	"github.com/midweekpadel/clubhouse/internal/pubsub"
	"github.com/midweekpadel/clubhouse/internal/rating"
	"github.com/midweekpadel/clubhouse/internal/standings"
)

// New creates a new Processor.
func New(store Store, notifier Notifier, metrics metrics.Metrics, pubsub pubsub.PubSubClient, bookings playtomic.PlaytomicClient, cfg Config) *Processor {
	tiers := loyalty.DefaultConfig()
	return &Processor{
		store:      store,
		pubsub:     pubsub,
		notifier:   notifier,
		metrics:    metrics,
		bookings:   bookings,
		cfg:        cfg,
		propagator: rating.New(store, rating.DefaultConfig()),
		aggregator: standings.New(store),
		loyalty:    loyalty.New(store, tiers),
		tiers:      tiers,
		now:        time.Now,
	}
}

// ProcessTournaments fetches tournaments that need processing and advances
// them through the state machine.
func (p *Processor) ProcessTournaments(dryRun bool) {
	log.Info("Starting tournament processing...")
	tournaments, err := p.store.GetTournamentsForProcessing()
	if err != nil {
		log.Error("Failed to get tournaments for processing", "error", err)
		return
	}

	if len(tournaments) == 0 {
		log.Info("No tournaments to process.")
		return
	}

	log.Info("Found tournaments to process", "count", len(tournaments))
	for _, tournament := range tournaments {
		startTime := time.Now()
		p.processTournament(tournament, dryRun)
		duration := time.Since(startTime).Milliseconds()
		p.metrics.ObserveProcessingDuration(float64(duration))
	}
	log.Info("Tournament processing finished.")
}

func (p *Processor) processTournament(tournament *club.Tournament, dryRun bool) {
	log.Info("Processing tournament", "tournamentID", tournament.ID, "initial_status", tournament.ProcessingStatus)
	for {
		currentState := tournament.ProcessingStatus
		log.Debug("Evaluating tournament state", "tournamentID", tournament.ID, "status", currentState)

		switch currentState {
		case club.StatusNew:
			if dryRun {
				log.Info("[Dry Run] Would apply rating pass", "tournamentID", tournament.ID)
				p.updateStatus(tournament, club.StatusRatingsApplied, dryRun)
				break
			}
			changes, err := p.propagator.PropagateBracket(tournament.ID)
			if err != nil {
				log.Error("Rating pass failed", "error", err, "tournamentID", tournament.ID)
				return
			}
			p.metrics.IncRatingPasses()
			log.Info("Rating pass applied", "tournamentID", tournament.ID, "changed", len(changes))
			if p.pubsub != nil {
				event := pubsub.RatingUpdatedEvent{TournamentID: tournament.ID, Changes: changes}
				if err := p.pubsub.SendMessage(context.Background(), pubsub.EventRatingUpdated, event); err != nil {
					log.Error("Failed to publish rating update", "error", err, "tournamentID", tournament.ID)
				}
			}
			p.updateStatus(tournament, club.StatusRatingsApplied, dryRun)

		case club.StatusRatingsApplied:
			bracket, err := p.store.GetBracket(tournament.ID)
			if err != nil {
				log.Error("Failed to load bracket for podium", "error", err, "tournamentID", tournament.ID)
				return
			}
			placements := rating.ExtractPlacements(bracket)
			if len(placements) == 0 {
				log.Info("No podium to announce", "tournamentID", tournament.ID)
			} else if err := p.notifier.SendPodiumNotification(tournament, placements, p.playerNames(placements), dryRun); err != nil {
				// Notification failures are not worth stalling the pipeline over.
				log.Error("Failed to send podium notification", "error", err, "tournamentID", tournament.ID)
			}
			p.updateStatus(tournament, club.StatusPodiumNotified, dryRun)

		case club.StatusPodiumNotified:
			log.Info("Podium announced. Marking tournament as complete.", "tournamentID", tournament.ID)
			p.updateStatus(tournament, club.StatusCompleted, dryRun)

		case club.StatusCompleted:
			log.Debug("Tournament is complete. No further processing needed.", "tournamentID", tournament.ID)
			return

		default:
			log.Warn("Unknown processing status", "status", currentState, "tournamentID", tournament.ID)
			return
		}

		// If the status hasn't changed, we're done with this tournament for now.
		if tournament.ProcessingStatus == currentState {
			log.Debug("Tournament state did not change. Finished processing for now.", "tournamentID", tournament.ID, "status", currentState)
			break
		}
	}
	log.Info("Finished processing tournament", "tournamentID", tournament.ID, "final_status", tournament.ProcessingStatus)
}

// playerNames resolves placement IDs to display names, falling back to the
// raw ID for players missing from the roster.
func (p *Processor) playerNames(placements []rating.Placement) map[string]string {
	ids := make([]string, 0, len(placements))
	for _, placement := range placements {
		ids = append(ids, placement.PlayerID)
	}
	names := make(map[string]string, len(ids))
	players, err := p.store.GetPlayers(ids)
	if err != nil {
		log.Error("Failed to resolve player names", "error", err)
		return names
	}
	for _, player := range players {
		names[player.ID] = player.Name
	}
	return names
}

// ApplyMatchResult records a league match outcome in the standings. It
// reports whether standings actually moved.
func (p *Processor) ApplyMatchResult(leagueID, matchID string, dryRun bool) (bool, error) {
	if leagueID == "" {
		leagueID = p.cfg.LeagueID
	}
	if dryRun {
		log.Info("[Dry Run] Would apply match result", "leagueID", leagueID, "matchID", matchID)
		return false, nil
	}
	applied, err := p.aggregator.ApplyMatch(leagueID, matchID)
	if err != nil {
		return false, err
	}
	if applied {
		p.metrics.IncMatchesApplied()
	}
	return applied, nil
}

// HandleBookingConfirmed records a confirmed booking and announces any tier
// promotion it triggers.
func (p *Processor) HandleBookingConfirmed(booking club.Booking, dryRun bool) error {
	if dryRun {
		log.Info("[Dry Run] Would record booking", "bookingID", booking.ID, "playerID", booking.PlayerID)
	} else if err := p.store.UpsertBookings([]club.Booking{booking}); err != nil {
		return fmt.Errorf("failed to record booking: %w", err)
	}
	p.checkTierPromotion(booking.PlayerID, dryRun)
	return nil
}

// SyncBookings pulls confirmed bookings from the booking provider, records
// them and re-evaluates tiers for every player seen.
func (p *Processor) SyncBookings(dryRun bool) error {
	since := p.now().AddDate(0, 0, -180)
	summaries, err := p.bookings.GetBookings(&playtomic.SearchBookingsParams{
		TenantID:      p.cfg.TenantID,
		SportID:       p.cfg.SportID,
		FromStartDate: since.Format("2006-01-02T15:04:05"),
	})
	if err != nil {
		return fmt.Errorf("failed to fetch bookings: %w", err)
	}

	playerIDs := make(map[string]bool)
	var rows []club.Booking
	for _, summary := range summaries {
		detail, err := p.bookings.GetSpecificBooking(summary.BookingID)
		if err != nil {
			log.Error("Failed to fetch booking detail", "error", err, "bookingID", summary.BookingID)
			continue
		}
		status := mapBookingStatus(detail.Status)
		for _, player := range detail.Players {
			rows = append(rows, club.Booking{
				// Deterministic ID so re-syncs update in place.
				ID:        detail.BookingID + "/" + player.UserID,
				PlayerID:  player.UserID,
				BookedFor: time.Unix(detail.Start, 0).UTC(),
				Status:    status,
				CreatedAt: time.Unix(detail.CreatedAt, 0).UTC(),
			})
			if status == club.BookingConfirmed {
				playerIDs[player.UserID] = true
			}
		}
	}

	if dryRun {
		log.Info("[Dry Run] Would record synced bookings", "count", len(rows))
		return nil
	}
	if len(rows) > 0 {
		if err := p.store.UpsertBookings(rows); err != nil {
			return fmt.Errorf("failed to record synced bookings: %w", err)
		}
	}
	p.metrics.IncBookingSyncRuns()
	log.Info("Booking sync finished", "bookings", len(rows), "players", len(playerIDs))

	for playerID := range playerIDs {
		p.checkTierPromotion(playerID, dryRun)
	}
	return nil
}

// TierStatus reports a player's current loyalty standing.
func (p *Processor) TierStatus(playerID string) loyalty.TierStatus {
	status := p.loyalty.Status(playerID, p.now())
	p.metrics.IncTierComputations()
	return status
}

// IngestTournament stores a completed tournament and its bracket so the next
// processing pass picks it up.
func (p *Processor) IngestTournament(tournament *club.Tournament, matches []club.BracketMatch, dryRun bool) error {
	if dryRun {
		log.Info("[Dry Run] Would ingest tournament", "tournamentID", tournament.ID, "matches", len(matches))
		return nil
	}
	if err := p.store.UpsertTournament(tournament); err != nil {
		return fmt.Errorf("failed to store tournament: %w", err)
	}
	if err := p.store.UpsertBracketMatches(tournament.ID, matches); err != nil {
		return fmt.Errorf("failed to store bracket: %w", err)
	}
	return nil
}

// checkTierPromotion recomputes a player's tier and announces it when it
// climbed past the last announced one. Failures are logged, never returned;
// tier status is advisory.
func (p *Processor) checkTierPromotion(playerID string, dryRun bool) {
	status := p.loyalty.Status(playerID, p.now())
	p.metrics.IncTierComputations()

	announced, err := p.store.GetAnnouncedTier(playerID)
	if err != nil {
		log.Error("Failed to read announced tier", "error", err, "playerID", playerID)
		return
	}
	announcedRank := p.tiers.Rank(loyalty.Tier(announced))
	if announcedRank < 0 {
		// Never announced: the bottom tier is the baseline, not a promotion.
		announcedRank = 0
	}
	if p.tiers.Rank(status.Tier) <= announcedRank {
		return
	}

	player := club.PlayerInfo{ID: playerID, Name: playerID}
	if players, err := p.store.GetPlayers([]string{playerID}); err == nil && len(players) > 0 {
		player = players[0]
	}

	log.Info("Tier promotion", "playerID", playerID, "from", announced, "to", status.Tier)
	if err := p.notifier.SendTierPromotion(player, status, dryRun); err != nil {
		log.Error("Failed to send tier promotion", "error", err, "playerID", playerID)
	}
	if dryRun {
		log.Info("[Dry Run] Would record announced tier", "playerID", playerID, "tier", status.Tier)
		return
	}
	if err := p.store.SetAnnouncedTier(playerID, string(status.Tier)); err != nil {
		log.Error("Failed to record announced tier", "error", err, "playerID", playerID)
		return
	}
	if p.pubsub != nil {
		event := pubsub.TierPromotedEvent{PlayerID: playerID, Tier: string(status.Tier)}
		if err := p.pubsub.SendMessage(context.Background(), pubsub.EventTierPromoted, event); err != nil {
			log.Error("Failed to publish tier promotion", "error", err, "playerID", playerID)
		}
	}
}

func mapBookingStatus(status string) club.BookingStatus {
	switch status {
	case "CONFIRMED", "PLAYED":
		return club.BookingConfirmed
	case "CANCELED", "CANCELLED":
		return club.BookingCancelled
	default:
		return club.BookingPending
	}
}

func (p *Processor) updateStatus(tournament *club.Tournament, newStatus club.ProcessingStatus, dryRun bool) {
	if dryRun {
		log.Info("[Dry Run] Would update tournament status", "tournamentID", tournament.ID, "from", tournament.ProcessingStatus, "to", newStatus)
		tournament.ProcessingStatus = newStatus // Update in-memory for the loop
		return
	}

	err := p.store.UpdateProcessingStatus(tournament.ID, newStatus)
	if err != nil {
		log.Error("Failed to update processing status", "error", err, "tournamentID", tournament.ID)
	} else {
		log.Debug("Successfully updated status", "tournamentID", tournament.ID, "from", tournament.ProcessingStatus, "to", newStatus)
		tournament.ProcessingStatus = newStatus // Keep the in-memory object in sync
	}
}
