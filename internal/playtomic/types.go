package playtomic

// SearchBookingsParams narrows a booking fetch to the club's venue and sport.
type SearchBookingsParams struct {
	TenantID      string
	SportID       string
	FromStartDate string
}

// BookingSummary is the lightweight listing row returned by the search API.
// Full details require a follow-up fetch per booking.
type BookingSummary struct {
	BookingID string
	OwnerID   string
}

// CourtBooking is a fully resolved booking with its registered participants.
type CourtBooking struct {
	BookingID string
	OwnerID   string
	Status    string
	Start     int64
	CreatedAt int64
	Players   []Player
}

// Player is a registered participant on a court booking.
type Player struct {
	UserID string
	Name   string
	Level  float64
}

// bookingResponse mirrors the fields of the upstream match payload we care
// about.
type bookingResponse struct {
	MatchID   string `json:"match_id"`
	OwnerID   string `json:"owner_id"`
	Status    string `json:"status"`
	StartDate string `json:"start_date"`
	CreatedAt string `json:"created_at"`
	Teams     []struct {
		TeamID  string `json:"team_id"`
		Players []struct {
			UserID     string   `json:"user_id"`
			Name       string   `json:"name"`
			LevelValue *float64 `json:"level_value"`
		} `json:"players"`
	} `json:"teams"`
}
