package playtomic

import "sync"

// MockClient is a mock implementation of PlaytomicClient for testing.
// It is safe for concurrent use.
type MockClient struct {
	mu sync.Mutex

	GetBookingsFunc        func(params *SearchBookingsParams) ([]BookingSummary, error)
	GetSpecificBookingFunc func(bookingID string) (CourtBooking, error)

	GetBookingsCalls        []*SearchBookingsParams
	GetSpecificBookingCalls []string
}

var _ PlaytomicClient = (*MockClient)(nil)

// NewMock creates a new mock client.
func NewMock() *MockClient {
	return &MockClient{}
}

func (m *MockClient) GetBookings(params *SearchBookingsParams) ([]BookingSummary, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.GetBookingsCalls = append(m.GetBookingsCalls, params)
	if m.GetBookingsFunc != nil {
		return m.GetBookingsFunc(params)
	}
	return nil, nil
}

func (m *MockClient) GetSpecificBooking(bookingID string) (CourtBooking, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.GetSpecificBookingCalls = append(m.GetSpecificBookingCalls, bookingID)
	if m.GetSpecificBookingFunc != nil {
		return m.GetSpecificBookingFunc(bookingID)
	}
	return CourtBooking{}, nil
}
