package playtomic

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rafa-garcia/go-playtomic-api/client"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetSpecificBooking(t *testing.T) {
	// Sample JSON response from the Playtomic API
	mockJSONResponse := `{
		"match_id": "booking-abc",
		"owner_id": "user-123",
		"status": "CONFIRMED",
		"start_date": "2025-07-09T18:00:00",
		"created_at": "2025-07-08T10:00:00",
		"teams": [{
			"team_id": "1",
			"players": [
				{ "user_id": "user-123", "name": "Player A", "level_value": 3.5 },
				{ "user_id": "user-456", "name": "Player B" }
			]
		}]
	}`

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/matches/booking-abc", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprintln(w, mockJSONResponse)
	}))
	defer server.Close()

	c := APIClient{
		httpClient: server.Client(),
		apiClient:  client.NewClient(), // Dummy client, not used in this specific test
		BaseURL:    server.URL,
	}

	booking, err := c.GetSpecificBooking("booking-abc")

	require.NoError(t, err)
	assert.Equal(t, "booking-abc", booking.BookingID)
	assert.Equal(t, "user-123", booking.OwnerID)
	assert.Equal(t, "CONFIRMED", booking.Status)
	assert.NotEqual(t, int64(0), booking.Start, "Start time should be parsed")
	require.Len(t, booking.Players, 2)
	assert.Equal(t, "Player A", booking.Players[0].Name)
	assert.Equal(t, 3.5, booking.Players[0].Level)
	assert.Zero(t, booking.Players[1].Level)
}

func TestGetSpecificBooking_NonOKStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "not found", http.StatusNotFound)
	}))
	defer server.Close()

	c := APIClient{
		httpClient: server.Client(),
		apiClient:  client.NewClient(),
		BaseURL:    server.URL,
	}

	_, err := c.GetSpecificBooking("missing")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "404")
}
