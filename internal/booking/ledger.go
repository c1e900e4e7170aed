// Package booking owns the booking lifecycle: resolving user input into
// bookings, listing the cart, and cancelling by identifier.
package booking

import (
	"log/slog"

	"github.com/shopspring/decimal"

	"github.com/cinetix/booking-engine/internal/domain"
	"github.com/cinetix/booking-engine/internal/matcher"
)

type Ledger struct {
	matcher *matcher.Matcher
	repo    domain.BookingRepository
	logger  *slog.Logger
}

func NewLedger(m *matcher.Matcher, repo domain.BookingRepository, logger *slog.Logger) *Ledger {
	return &Ledger{
		matcher: m,
		repo:    repo,
		logger:  logger,
	}
}

// Book resolves the raw title/showtime pair and, on success, appends a
// new booking. ok=false means the pair did not resolve; the caller owns
// the user-facing messaging.
func (l *Ledger) Book(rawTitle, rawShowtime string) (domain.Booking, bool) {
	movie, showtime, ok := l.matcher.Resolve(rawTitle, rawShowtime)
	if !ok {
		l.logger.Debug("booking rejected: title or showtime did not resolve",
			"title", rawTitle, "showtime", rawShowtime)
		return domain.Booking{}, false
	}

	return l.Create(movie, showtime), true
}

// Create appends a booking for an already-resolved movie and showtime.
// It always succeeds; rejecting unresolved input is the matcher's job.
func (l *Ledger) Create(movie domain.Movie, showtime string) domain.Booking {
	booking := domain.NewBooking(movie, showtime)
	l.repo.Add(booking)

	l.logger.Info("booking created",
		"booking_id", booking.ID, "movie", booking.MovieTitle, "showtime", booking.Showtime)

	return booking
}

// List returns the active bookings in insertion order.
func (l *Ledger) List() []domain.Booking {
	return l.repo.List()
}

// Cancel removes at most one booking, matching the identifier
// case-insensitively. Unknown identifiers report false, not an error.
func (l *Ledger) Cancel(id string) bool {
	removed := l.repo.Remove(id)
	if removed {
		l.logger.Info("booking cancelled", "booking_id", id)
	}

	return removed
}

// Clear drops every active booking. Used as the checkout commit.
func (l *Ledger) Clear() {
	l.repo.Clear()
}

// Total sums the active booking prices.
func (l *Ledger) Total() decimal.Decimal {
	total := decimal.Zero
	for _, b := range l.repo.List() {
		total = total.Add(b.Price)
	}

	return total
}
