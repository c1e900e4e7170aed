package validator

import (
	"fmt"
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cinetix/booking-engine/internal/domain"
)

func TestIsValidCardType(t *testing.T) {
	assert.True(t, IsValidCardType("Visa"))
	assert.True(t, IsValidCardType("visa"))
	assert.True(t, IsValidCardType("MASTERCARD"))
	assert.True(t, IsValidCardType(" MasterCard "))
	assert.False(t, IsValidCardType("Amex"))
	assert.False(t, IsValidCardType(""))
}

func TestIsValidCardholderName(t *testing.T) {
	assert.True(t, IsValidCardholderName("John Doe"))
	assert.True(t, IsValidCardholderName("  Jane Doe  "))
	assert.False(t, IsValidCardholderName("J0hn Doe"))
	assert.False(t, IsValidCardholderName("John-Doe"))
	assert.False(t, IsValidCardholderName("   "))
	assert.False(t, IsValidCardholderName(""))
}

func TestIsValidCardNumber(t *testing.T) {
	assert.True(t, IsValidCardNumber("1234567890123456"))
	assert.True(t, IsValidCardNumber(" 1234567890123456 "))
	assert.False(t, IsValidCardNumber("1234-5678-9012-3456"))
	assert.False(t, IsValidCardNumber("123456789012345"))
	assert.False(t, IsValidCardNumber("12345678901234567"))
	assert.False(t, IsValidCardNumber(""))
}

func TestIsValidCVV(t *testing.T) {
	assert.True(t, IsValidCVV("123"))
	assert.True(t, IsValidCVV("123 "))
	assert.False(t, IsValidCVV("12"))
	assert.False(t, IsValidCVV("1234"))
	assert.False(t, IsValidCVV("12a"))
	assert.False(t, IsValidCVV(""))
}

func TestIsValidExpiryDateAt(t *testing.T) {
	now := time.Date(2026, time.September, 15, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name   string
		expiry string
		want   bool
	}{
		{name: "current month is valid", expiry: "09/26", want: true},
		{name: "next month", expiry: "10/26", want: true},
		{name: "next year", expiry: "01/27", want: true},
		{name: "previous month is expired", expiry: "08/26", want: false},
		{name: "previous year is expired", expiry: "12/25", want: false},
		{name: "month zero", expiry: "00/27", want: false},
		{name: "month thirteen", expiry: "13/27", want: false},
		{name: "missing slash", expiry: "0927", want: false},
		{name: "four digit year", expiry: "09/2026", want: false},
		{name: "empty", expiry: "", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsValidExpiryDateAt(tt.expiry, now))
		})
	}
}

func TestPaymentMethodStructValidation(t *testing.T) {
	v := NewValidator()

	valid := domain.PaymentMethod{
		CardType:       "Visa",
		CardholderName: "John Doe",
		CardNumber:     "1234567890123456",
		ExpiryDate:     fmt.Sprintf("12/%02d", time.Now().Year()%100+1),
		CVV:            "123",
	}
	require.NoError(t, v.Struct(valid))

	invalid := valid
	invalid.CardNumber = "1234-5678-9012-3456"

	err := v.Struct(invalid)
	require.Error(t, err)

	var fieldErrs validator.ValidationErrors
	require.ErrorAs(t, err, &fieldErrs)
	require.Len(t, fieldErrs, 1)
	assert.Equal(t, "must be exactly 16 digits", ValidationMessage(fieldErrs[0]))
}
