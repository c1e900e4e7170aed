// Package validator holds the payment-method validation rules: standalone
// predicates used by the checkout prompts, plus a configured
// go-playground validator for whole-struct validation.
package validator

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

var (
	cardNumberRgx = regexp.MustCompile(`^[0-9]{16}$`)
	cvvRgx        = regexp.MustCompile(`^[0-9]{3}$`)
	holderNameRgx = regexp.MustCompile(`^[a-zA-Z ]+$`)
	expiryRgx     = regexp.MustCompile(`^(0[1-9]|1[0-2])/([0-9]{2})$`)
)

func NewValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterValidation("card_type", validateCardType)
	v.RegisterValidation("cardholder_name", validateCardholderName)
	v.RegisterValidation("card_number", validateCardNumber)
	v.RegisterValidation("card_expiry", validateExpiryDate)
	v.RegisterValidation("cvv", validateCVV)

	return v
}

// IsValidCardType accepts Visa and MasterCard, case-insensitively.
func IsValidCardType(cardType string) bool {
	cardType = strings.TrimSpace(cardType)
	return strings.EqualFold(cardType, "Visa") || strings.EqualFold(cardType, "MasterCard")
}

// IsValidCardholderName requires a non-empty trimmed name of ASCII
// letters and spaces.
func IsValidCardholderName(name string) bool {
	return holderNameRgx.MatchString(strings.TrimSpace(name))
}

// IsValidCardNumber requires exactly 16 ASCII digits after trimming, with
// no separators.
func IsValidCardNumber(cardNumber string) bool {
	return cardNumberRgx.MatchString(strings.TrimSpace(cardNumber))
}

// IsValidCVV requires exactly 3 ASCII digits after trimming.
func IsValidCVV(cvv string) bool {
	return cvvRgx.MatchString(strings.TrimSpace(cvv))
}

// IsValidExpiryDate validates MM/YY against the current month.
func IsValidExpiryDate(expiryDate string) bool {
	return IsValidExpiryDateAt(expiryDate, time.Now())
}

// IsValidExpiryDateAt validates MM/YY against an explicit reference time.
// The two-digit year is interpreted as 2000+YY; the reference month
// itself is still valid, any earlier month is not.
func IsValidExpiryDateAt(expiryDate string, now time.Time) bool {
	parts := expiryRgx.FindStringSubmatch(strings.TrimSpace(expiryDate))
	if parts == nil {
		return false
	}

	month, _ := strconv.Atoi(parts[1])
	year, _ := strconv.Atoi(parts[2])
	year += 2000

	if year < now.Year() {
		return false
	}
	if year == now.Year() && month < int(now.Month()) {
		return false
	}

	return true
}

func validateCardType(fl validator.FieldLevel) bool {
	return IsValidCardType(fl.Field().String())
}

func validateCardholderName(fl validator.FieldLevel) bool {
	return IsValidCardholderName(fl.Field().String())
}

func validateCardNumber(fl validator.FieldLevel) bool {
	return IsValidCardNumber(fl.Field().String())
}

func validateExpiryDate(fl validator.FieldLevel) bool {
	return IsValidExpiryDate(fl.Field().String())
}

func validateCVV(fl validator.FieldLevel) bool {
	return IsValidCVV(fl.Field().String())
}

// ValidationMessage converts validator errors into readable messages.
func ValidationMessage(err validator.FieldError) string {
	switch err.Tag() {
	case "required":
		return "is required"
	case "card_type":
		return "must be Visa or MasterCard"
	case "cardholder_name":
		return "must contain only letters and spaces"
	case "card_number":
		return "must be exactly 16 digits"
	case "card_expiry":
		return "must be in MM/YY format and not expired"
	case "cvv":
		return "must be exactly 3 digits"
	default:
		return fmt.Sprintf("failed on the %s rule", err.Tag())
	}
}
