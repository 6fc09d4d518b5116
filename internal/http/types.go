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

type Server struct {
	Store          club.ClubStore
	Metrics        metrics.Metrics
	MetricsHandler http.Handler
	Cfg            config.Config
	Notifier       notifier.Notifier
	Processor      *processor.Processor
	Leaderboard    *leaderboard.Projector
	Router         *http.ServeMux
	pubsub         pubsub.PubSubClient
}
