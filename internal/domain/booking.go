package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Booking ties a resolved (movie, showtime) pair to a generated
// identifier. The identifier is opaque and compared case-insensitively.
type Booking struct {
	ID         string
	MovieTitle string
	Showtime   string
	Hall       HallType
	Price      decimal.Decimal
	CreatedAt  time.Time
}

func NewBooking(movie Movie, showtime string) Booking {
	return Booking{
		ID:         uuid.New().String(),
		MovieTitle: movie.Title,
		Showtime:   showtime,
		Hall:       movie.Hall,
		Price:      movie.TicketPrice(),
		CreatedAt:  time.Now(),
	}
}

// BookingRepository owns the active bookings in insertion order.
type BookingRepository interface {
	Add(booking Booking)
	List() []Booking
	// Remove deletes at most one booking whose ID matches
	// case-insensitively and reports whether a removal occurred.
	Remove(id string) bool
	Clear()
}
