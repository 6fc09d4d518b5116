package metrics

import "github.com/prometheus/client_golang/prometheus"

// Service holds all the Prometheus metrics for the application.
// By defining them all in one place, we ensure consistency in naming and labeling.
type Service struct {
	RatingPasses       prometheus.Counter
	MatchesApplied     prometheus.Counter
	TierComputations   prometheus.Counter
	BookingSyncRuns    prometheus.Counter
	NotifSent          prometheus.Counter
	NotifFailed        prometheus.Counter
	ProcessingDuration prometheus.Histogram
	StartupTimeSeconds prometheus.Gauge
}
