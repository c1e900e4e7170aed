// Package catalog provides browse and search queries over the movie
// catalog. Malformed queries fail with a distinct sentinel error so
// callers never conflate "zero matches" with "bad query".
package catalog

import (
	"strings"
	"unicode"

	"github.com/cinetix/booking-engine/internal/domain"
	"github.com/cinetix/booking-engine/internal/matcher"
)

const (
	MinRating = 0.0
	MaxRating = 10.0
)

type Service struct {
	catalog domain.CatalogRepository
}

func NewService(catalog domain.CatalogRepository) *Service {
	return &Service{catalog: catalog}
}

func (s *Service) All() []domain.Movie {
	return s.catalog.All()
}

// SearchByTitle returns every movie whose normalized title contains the
// normalized term. An empty term matches nothing.
func (s *Service) SearchByTitle(term string) []domain.Movie {
	want := matcher.NormalizeTitle(term)
	if want == "" {
		return nil
	}

	var results []domain.Movie
	for _, movie := range s.catalog.All() {
		if strings.Contains(matcher.NormalizeTitle(movie.Title), want) {
			results = append(results, movie)
		}
	}

	return results
}

// SearchByLanguage filters by a case-insensitive language substring. A
// query containing anything other than letters and spaces is a
// contract violation, reported as ErrInvalidLanguageQuery.
func (s *Service) SearchByLanguage(language string) ([]domain.Movie, error) {
	language = strings.TrimSpace(language)
	if language == "" {
		return nil, nil
	}

	for _, r := range language {
		if !unicode.IsLetter(r) && !unicode.IsSpace(r) {
			return nil, domain.ErrInvalidLanguageQuery
		}
	}

	var results []domain.Movie
	for _, movie := range s.catalog.All() {
		if strings.Contains(strings.ToLower(movie.Language), strings.ToLower(language)) {
			results = append(results, movie)
		}
	}

	return results, nil
}

// SearchByRating returns movies whose IMDb rating lies in [min, max].
// Bounds outside [0, 10] or min > max fail with ErrInvalidRatingRange;
// zero matches is an empty result with a nil error.
func (s *Service) SearchByRating(min, max float64) ([]domain.Movie, error) {
	if min < MinRating || max > MaxRating || min > max {
		return nil, domain.ErrInvalidRatingRange
	}

	var results []domain.Movie
	for _, movie := range s.catalog.All() {
		if movie.Rating >= min && movie.Rating <= max {
			results = append(results, movie)
		}
	}

	return results, nil
}
