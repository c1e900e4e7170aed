package domain

import "errors"

var (
	ErrInvalidRatingRange   = errors.New("rating bounds must be within 0-10 and min must not exceed max")
	ErrInvalidLanguageQuery = errors.New("language query must contain only letters and spaces")
)
