package playtomic

// PlaytomicClient defines the interface for interacting with the Playtomic API.
// This allows for mock implementations to be used in tests.
type PlaytomicClient interface {
	GetBookings(params *SearchBookingsParams) ([]BookingSummary, error)
	GetSpecificBooking(bookingID string) (CourtBooking, error)
}
