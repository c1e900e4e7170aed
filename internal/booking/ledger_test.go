package booking

import (
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cinetix/booking-engine/internal/domain"
	"github.com/cinetix/booking-engine/internal/matcher"
	"github.com/cinetix/booking-engine/internal/repository"
)

func newTestLedger() *Ledger {
	catalog := repository.NewMemoryCatalogRepository([]domain.Movie{
		{
			Title:     "Inception",
			Language:  "English",
			Rating:    8.8,
			Hall:      domain.HallIMAX,
			Showtimes: []string{"10:00 AM", "09:00 PM"},
		},
		{
			Title:     "Parasite",
			Language:  "Korean",
			Rating:    8.5,
			Hall:      domain.HallStandard,
			Showtimes: []string{"07:30 PM"},
		},
	})

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return NewLedger(matcher.New(catalog), repository.NewMemoryBookingRepository(), logger)
}

func TestBookIncreasesCountByOne(t *testing.T) {
	ledger := newTestLedger()
	require.Empty(t, ledger.List())

	booked, ok := ledger.Book("Inception", "10:00 AM")
	require.True(t, ok)
	require.NotEmpty(t, booked.ID)

	bookings := ledger.List()
	require.Len(t, bookings, 1)
	assert.Equal(t, booked.ID, bookings[0].ID)
	assert.Equal(t, "Inception", bookings[0].MovieTitle)
	assert.True(t, bookings[0].Price.Equal(domain.HallIMAX.TicketPrice()))
}

func TestBookResolvesFuzzyInput(t *testing.T) {
	ledger := newTestLedger()

	booked, ok := ledger.Book("  INCEPTION  ", "10:00 am")
	require.True(t, ok)
	assert.Equal(t, "Inception", booked.MovieTitle)
	assert.Equal(t, "10:00 AM", booked.Showtime)
}

func TestBookUnresolvedInput(t *testing.T) {
	ledger := newTestLedger()

	_, ok := ledger.Book("Not A Movie", "10:00 AM")
	assert.False(t, ok)

	_, ok = ledger.Book("Inception", "11:00 AM")
	assert.False(t, ok)

	assert.Empty(t, ledger.List())
}

func TestBookingIDsAreUnique(t *testing.T) {
	ledger := newTestLedger()

	seen := make(map[string]bool)
	for i := 0; i < 20; i++ {
		booked, ok := ledger.Book("Parasite", "07:30 PM")
		require.True(t, ok)
		require.False(t, seen[booked.ID], "duplicate booking ID %s", booked.ID)
		seen[booked.ID] = true
	}
}

func TestCancel(t *testing.T) {
	ledger := newTestLedger()

	booked, ok := ledger.Book("Inception", "10:00 AM")
	require.True(t, ok)

	// Case-insensitive on the identifier, succeeds exactly once.
	assert.True(t, ledger.Cancel(strings.ToUpper(booked.ID)))
	assert.False(t, ledger.Cancel(booked.ID))
	assert.Empty(t, ledger.List())
}

func TestCancelUnknownIDLeavesCartUnchanged(t *testing.T) {
	ledger := newTestLedger()

	_, ok := ledger.Book("Inception", "10:00 AM")
	require.True(t, ok)

	assert.False(t, ledger.Cancel("not-an-id"))
	assert.Len(t, ledger.List(), 1)
}

func TestClear(t *testing.T) {
	ledger := newTestLedger()

	ledger.Book("Inception", "10:00 AM")
	ledger.Book("Parasite", "07:30 PM")
	require.Len(t, ledger.List(), 2)

	ledger.Clear()
	assert.Empty(t, ledger.List())
	assert.True(t, ledger.Total().Equal(decimal.Zero))
}

func TestTotal(t *testing.T) {
	ledger := newTestLedger()

	ledger.Book("Inception", "10:00 AM") // IMAX, 15.00
	ledger.Book("Parasite", "07:30 PM")  // Standard, 10.00

	assert.True(t, ledger.Total().Equal(decimal.RequireFromString("25.00")),
		"got %s", ledger.Total())
}
