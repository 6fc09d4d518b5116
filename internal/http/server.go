package http

import (
	"net/http"

	"github.com/midweekpadel/clubhouse/internal/club"
	"github.com/midweekpadel/clubhouse/internal/config"
	"github.com/midweekpadel/clubhouse/internal/leaderboard"
	"github.com/midweekpadel/clubhouse/internal/metrics"
	"github.com/midweekpadel/clubhouse/internal/notifier"
	"github.com/midweekpadel/clubhouse/internal/processor"
	"github.com/midweekpadel/clubhouse/internal/pubsub"
)

func NewServer(store club.ClubStore, metricsSvc metrics.Metrics, metricsHandler http.Handler, cfg config.Config, notifier notifier.Notifier, processor *processor.Processor, pubsub pubsub.PubSubClient) *Server {
	server := &Server{
		Store:          store,
		Metrics:        metricsSvc,
		MetricsHandler: metricsHandler,
		Cfg:            cfg,
		Notifier:       notifier,
		Processor:      processor,
		Leaderboard:    leaderboard.New(store),
		Router:         http.NewServeMux(),
		pubsub:         pubsub,
	}

	server.routes()
	return server
}

func (s *Server) routes() {
	// All handlers are wrapped with middleware using the Chain helper.
	// This makes it easy to add more middlewares in the future, like an
	// authentication middleware.
	s.Router.Handle("/metrics", s.MetricsHandler)
	s.Router.Handle("/health", Chain(s.HealthCheckHandler(), paramsMiddleware))
	s.Router.Handle("/clear", Chain(s.ClearStoreHandler(), paramsMiddleware))
	s.Router.Handle("/players", Chain(s.ListPlayersHandler(), paramsMiddleware))
	s.Router.Handle("/leaderboard", Chain(s.LeaderboardHandler(), paramsMiddleware))
	s.Router.Handle("/tier-status", Chain(s.TierStatusHandler(), paramsMiddleware))
	s.Router.Handle("/process-tournaments", Chain(s.ProcessTournamentsHandler(), paramsMiddleware))
	s.Router.Handle("/apply-match", Chain(s.ApplyMatchHandler(), paramsMiddleware))
	s.Router.Handle("/sync-bookings", Chain(s.SyncBookingsHandler(), paramsMiddleware))
	s.Router.Handle("/pubsub/tournament-completed", Chain(s.TournamentCompletedHandler(), paramsMiddleware))
	s.Router.Handle("/pubsub/booking-confirmed", Chain(s.BookingConfirmedHandler(), paramsMiddleware))
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.Router.ServeHTTP(w, r)
}
