package repository

import (
	"sync"

	"github.com/cinetix/booking-engine/internal/domain"
)

// MemoryPaymentMethodRepository stores the single card-on-file. Saving a
// new method always replaces the prior one.
type MemoryPaymentMethodRepository struct {
	mu     sync.Mutex
	method *domain.PaymentMethod
}

func NewMemoryPaymentMethodRepository() *MemoryPaymentMethodRepository {
	return &MemoryPaymentMethodRepository{}
}

func (r *MemoryPaymentMethodRepository) Get() (domain.PaymentMethod, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.method == nil {
		return domain.PaymentMethod{}, false
	}

	return *r.method, true
}

func (r *MemoryPaymentMethodRepository) Save(method domain.PaymentMethod) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.method = &method
}
