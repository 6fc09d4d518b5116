package playtomic

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/rafa-garcia/go-playtomic-api/client"
	"github.com/rafa-garcia/go-playtomic-api/models"
)

// APIClient is a custom Playtomic API client that implements the
// PlaytomicClient interface.
type APIClient struct {
	httpClient *http.Client
	apiClient  *client.Client
	BaseURL    string
}

// NewClient creates a new custom Playtomic client.
func NewClient() PlaytomicClient {
	return &APIClient{
		httpClient: &http.Client{Timeout: 10 * time.Second},
		apiClient: client.NewClient(
			client.WithTimeout(10*time.Second),
			client.WithRetries(3),
		),
		BaseURL: "https://api.playtomic.io",
	}
}

var _ PlaytomicClient = (*APIClient)(nil)

// GetBookings fetches booking summaries for the club's venue, paging until
// the API runs dry.
func (c *APIClient) GetBookings(params *SearchBookingsParams) ([]BookingSummary, error) {
	const pageSize = 300
	var (
		all  []BookingSummary
		page = 0
	)

	for {
		externalParams := &models.SearchMatchesParams{
			SportID:       params.SportID,
			TenantIDs:     []string{params.TenantID},
			FromStartDate: params.FromStartDate,
			Sort:          "start_date,ASC",
			Size:          pageSize,
			Page:          page,
		}

		log.Debug("Fetching bookings from Playtomic API", "params", externalParams)
		matches, err := c.apiClient.GetMatches(context.Background(), externalParams)
		if err != nil {
			return nil, fmt.Errorf("error fetching bookings from playtomic api: %w", err)
		}

		for _, m := range matches {
			ownerID := ""
			if m.OwnerID != nil {
				ownerID = *m.OwnerID
			}
			all = append(all, BookingSummary{
				BookingID: m.MatchID,
				OwnerID:   ownerID,
			})
		}

		if len(matches) < pageSize {
			break
		}
		page++
	}
	log.Info("Fetched all bookings", "count", len(all))
	return all, nil
}

// GetSpecificBooking fetches one booking with its registered participants.
func (c *APIClient) GetSpecificBooking(bookingID string) (CourtBooking, error) {
	url := fmt.Sprintf("%s/v1/matches/%s", c.BaseURL, bookingID)

	req, err := http.NewRequestWithContext(context.Background(), "GET", url, nil)
	if err != nil {
		return CourtBooking{}, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Accept", "*/*")
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", "PlaytomicGoClient/1.0")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return CourtBooking{}, fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		log.Error("Received non-OK HTTP status from Playtomic API", "status", resp.StatusCode, "body", string(body))
		return CourtBooking{}, fmt.Errorf("received non-OK HTTP status: %d", resp.StatusCode)
	}

	var payload bookingResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return CourtBooking{}, fmt.Errorf("failed to decode response: %w", err)
	}

	const layout = "2006-01-02T15:04:05"
	start, err := time.Parse(layout, payload.StartDate)
	if err != nil {
		return CourtBooking{}, fmt.Errorf("failed to parse start time: %w", err)
	}
	createdAt, err := time.Parse(layout, payload.CreatedAt)
	if err != nil {
		return CourtBooking{}, fmt.Errorf("failed to parse created at time: %w", err)
	}

	booking := CourtBooking{
		BookingID: bookingID,
		OwnerID:   payload.OwnerID,
		Status:    payload.Status,
		Start:     start.Unix(),
		CreatedAt: createdAt.Unix(),
	}
	for _, team := range payload.Teams {
		for _, p := range team.Players {
			player := Player{UserID: p.UserID, Name: p.Name}
			if p.LevelValue != nil {
				player.Level = *p.LevelValue
			}
			booking.Players = append(booking.Players, player)
		}
	}
	return booking, nil
}
