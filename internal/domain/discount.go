package domain

// DiscountCode is static reference data mapping a single-word code to an
// integer percentage off the cart total. Codes are unique
// case-insensitively.
type DiscountCode struct {
	Code       string
	Percentage int
}

type DiscountRepository interface {
	All() []DiscountCode
}
