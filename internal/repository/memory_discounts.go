package repository

import (
	"sync"

	"github.com/cinetix/booking-engine/internal/domain"
)

// MemoryDiscountRepository holds the static discount reference table.
type MemoryDiscountRepository struct {
	mu    sync.Mutex
	codes []domain.DiscountCode
}

func NewMemoryDiscountRepository(codes []domain.DiscountCode) *MemoryDiscountRepository {
	return &MemoryDiscountRepository{
		codes: append([]domain.DiscountCode(nil), codes...),
	}
}

func (r *MemoryDiscountRepository) All() []domain.DiscountCode {
	r.mu.Lock()
	defer r.mu.Unlock()

	return append([]domain.DiscountCode(nil), r.codes...)
}
