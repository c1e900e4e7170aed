package domain

// PaymentMethod holds the card details entered during checkout. The
// validate tags are wired up by the validator package.
type PaymentMethod struct {
	CardType       string `validate:"required,card_type"`
	CardholderName string `validate:"required,cardholder_name"`
	CardNumber     string `validate:"required,card_number"`
	ExpiryDate     string `validate:"required,card_expiry"`
	CVV            string `validate:"required,cvv"`
}

// PaymentMethodRepository stores at most one saved method. Save replaces
// any prior method wholesale.
type PaymentMethodRepository interface {
	Get() (PaymentMethod, bool)
	Save(method PaymentMethod)
}
