package repository

import (
	"sync"

	"github.com/cinetix/booking-engine/internal/domain"
)

// MemoryCatalogRepository holds the seeded movie catalog. The catalog is
// read-only to the engine, so All hands out copies.
type MemoryCatalogRepository struct {
	mu     sync.Mutex
	movies []domain.Movie
}

func NewMemoryCatalogRepository(movies []domain.Movie) *MemoryCatalogRepository {
	return &MemoryCatalogRepository{
		movies: append([]domain.Movie(nil), movies...),
	}
}

func (r *MemoryCatalogRepository) All() []domain.Movie {
	r.mu.Lock()
	defer r.mu.Unlock()

	return append([]domain.Movie(nil), r.movies...)
}
