package app

import "github.com/cinetix/booking-engine/internal/domain"

// SeedMovies returns the built-in catalog. The engine never mutates it.
func SeedMovies() []domain.Movie {
	return []domain.Movie{
		{
			Title:     "Inception",
			Language:  "English",
			Rating:    8.8,
			Duration:  148,
			Hall:      domain.HallIMAX,
			Showtimes: []string{"10:00 AM", "02:30 PM", "09:00 PM"},
		},
		{
			Title:     "The Godfather",
			Language:  "English",
			Rating:    9.2,
			Duration:  175,
			Hall:      domain.HallVIP,
			Showtimes: []string{"06:00 PM", "10:00 PM"},
		},
		{
			Title:     "Amélie",
			Language:  "French",
			Rating:    8.3,
			Duration:  122,
			Hall:      domain.HallStandard,
			Showtimes: []string{"11:30 AM", "05:15 PM"},
		},
		{
			Title:     "Spider-Man: Across the Spider-Verse",
			Language:  "English",
			Rating:    8.6,
			Duration:  140,
			Hall:      domain.Hall3D,
			Showtimes: []string{"12:00 PM", "03:45 PM", "08:30 PM"},
		},
		{
			Title:     "Parasite",
			Language:  "Korean",
			Rating:    8.5,
			Duration:  132,
			Hall:      domain.HallStandard,
			Showtimes: []string{"01:00 PM", "07:30 PM"},
		},
	}
}

// SeedDiscountCodes returns the static discount reference table.
func SeedDiscountCodes() []domain.DiscountCode {
	return []domain.DiscountCode{
		{Code: "NEWYEAR25", Percentage: 25},
		{Code: "WELCOME10", Percentage: 10},
		{Code: "STUDENT-15", Percentage: 15},
		{Code: "VIP_GUEST", Percentage: 30},
	}
}
