package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cinetix/booking-engine/internal/domain"
	"github.com/cinetix/booking-engine/internal/repository"
)

func newTestService() *Service {
	catalog := repository.NewMemoryCatalogRepository([]domain.Movie{
		{Title: "Inception", Language: "English", Rating: 8.8},
		{Title: "Amélie", Language: "French", Rating: 8.3},
		{Title: "Parasite", Language: "Korean", Rating: 8.5},
		{Title: "The Room", Language: "English", Rating: 3.7},
	})

	return NewService(catalog)
}

func TestSearchByTitle(t *testing.T) {
	svc := newTestService()

	results := svc.SearchByTitle("  incep  ")
	require.Len(t, results, 1)
	assert.Equal(t, "Inception", results[0].Title)

	assert.Empty(t, svc.SearchByTitle("matrix"))
	assert.Empty(t, svc.SearchByTitle("   "))
}

func TestSearchByLanguage(t *testing.T) {
	svc := newTestService()

	results, err := svc.SearchByLanguage("english")
	require.NoError(t, err)
	assert.Len(t, results, 2)

	results, err = svc.SearchByLanguage("German")
	require.NoError(t, err)
	assert.Empty(t, results)

	_, err = svc.SearchByLanguage("engl1sh")
	assert.ErrorIs(t, err, domain.ErrInvalidLanguageQuery)

	_, err = svc.SearchByLanguage("english!")
	assert.ErrorIs(t, err, domain.ErrInvalidLanguageQuery)
}

func TestSearchByRating(t *testing.T) {
	svc := newTestService()

	tests := []struct {
		name      string
		min, max  float64
		wantCount int
		wantErr   error
	}{
		{name: "full range", min: 0, max: 10, wantCount: 4},
		{name: "narrow range", min: 8.4, max: 9.0, wantCount: 2},
		{name: "zero matches is not an error", min: 9.5, max: 10, wantCount: 0},
		{name: "min above max is a fault", min: 9, max: 8, wantErr: domain.ErrInvalidRatingRange},
		{name: "negative min is a fault", min: -1, max: 5, wantErr: domain.ErrInvalidRatingRange},
		{name: "max above ten is a fault", min: 0, max: 10.5, wantErr: domain.ErrInvalidRatingRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			results, err := svc.SearchByRating(tt.min, tt.max)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Len(t, results, tt.wantCount)
		})
	}
}
