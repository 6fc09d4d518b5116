package metrics

// Metrics defines the interface for collecting application metrics.
// This decouples the application from the specific metrics implementation (e.g., Prometheus).
type Metrics interface {
	IncRatingPasses()
	IncMatchesApplied()
	IncTierComputations()
	IncBookingSyncRuns()
	IncNotifSent()
	IncNotifFailed()
	ObserveProcessingDuration(duration float64)
	SetStartupTime(duration float64)
}
