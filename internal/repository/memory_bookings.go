package repository

import (
	"strings"
	"sync"

	"github.com/cinetix/booking-engine/internal/domain"
)

// MemoryBookingRepository keeps active bookings in insertion order.
type MemoryBookingRepository struct {
	mu       sync.Mutex
	bookings []domain.Booking
}

func NewMemoryBookingRepository() *MemoryBookingRepository {
	return &MemoryBookingRepository{}
}

func (r *MemoryBookingRepository) Add(booking domain.Booking) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.bookings = append(r.bookings, booking)
}

func (r *MemoryBookingRepository) List() []domain.Booking {
	r.mu.Lock()
	defer r.mu.Unlock()

	return append([]domain.Booking(nil), r.bookings...)
}

func (r *MemoryBookingRepository) Remove(id string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, booking := range r.bookings {
		if strings.EqualFold(booking.ID, id) {
			r.bookings = append(r.bookings[:i], r.bookings[i+1:]...)
			return true
		}
	}

	return false
}

func (r *MemoryBookingRepository) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.bookings = nil
}
