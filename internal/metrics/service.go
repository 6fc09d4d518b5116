package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var _ Metrics = (*Service)(nil)

// NewMetricsHandler returns an http.Handler for the given Gatherer.
// If no gatherer is provided, it uses the default one.
func NewMetricsHandler(gatherer ...prometheus.Gatherer) http.Handler {
	gath := prometheus.DefaultGatherer
	if len(gatherer) > 0 {
		gath = gatherer[0]
	}
	return promhttp.HandlerFor(gath, promhttp.HandlerOpts{})
}

// NewService creates and registers the Prometheus metrics.
// If no registerer is provided, it uses the default Prometheus registerer.
func NewService(registerer ...prometheus.Registerer) *Service {
	reg := prometheus.DefaultRegisterer
	if len(registerer) > 0 {
		reg = registerer[0]
	}

	s := &Service{
		RatingPasses: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "clubhouse_rating_passes_total",
			Help: "The total number of bracket rating propagation passes.",
		}),
		MatchesApplied: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "clubhouse_league_matches_applied_total",
			Help: "The total number of league matches folded into standings.",
		}),
		TierComputations: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "clubhouse_tier_computations_total",
			Help: "The total number of loyalty tier status computations.",
		}),
		BookingSyncRuns: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "clubhouse_booking_sync_runs_total",
			Help: "The total number of times the booking importer has run.",
		}),
		NotifSent: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "clubhouse_notifications_sent_total",
			Help: "The total number of notifications successfully sent.",
		}),
		NotifFailed: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "clubhouse_notifications_failed_total",
			Help: "The total number of notifications that failed to send.",
		}),
		ProcessingDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "clubhouse_tournament_processing_duration_seconds",
			Help:    "The duration of individual tournament processing.",
			Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		}),
		StartupTimeSeconds: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "clubhouse_startup_duration_seconds",
			Help: "The duration of the application startup in seconds.",
		}),
	}

	reg.MustRegister(
		s.RatingPasses,
		s.MatchesApplied,
		s.TierComputations,
		s.BookingSyncRuns,
		s.NotifSent,
		s.NotifFailed,
		s.ProcessingDuration,
		s.StartupTimeSeconds,
	)

	return s
}

func (s *Service) IncRatingPasses() {
	s.RatingPasses.Inc()
}

func (s *Service) IncMatchesApplied() {
	s.MatchesApplied.Inc()
}

func (s *Service) IncTierComputations() {
	s.TierComputations.Inc()
}

func (s *Service) IncBookingSyncRuns() {
	s.BookingSyncRuns.Inc()
}

func (s *Service) IncNotifSent() {
	s.NotifSent.Inc()
}

func (s *Service) IncNotifFailed() {
	s.NotifFailed.Inc()
}

func (s *Service) ObserveProcessingDuration(duration float64) {
	s.ProcessingDuration.Observe(duration)
}

func (s *Service) SetStartupTime(duration float64) {
	s.StartupTimeSeconds.Set(duration)
}
