// Package discount validates discount codes against the reference table
// and applies the matching percentage to a cart total.
package discount

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/cases"

	"github.com/cinetix/booking-engine/internal/domain"
)

// A code must be a single word of letters, digits, hyphens, and
// underscores.
var codeShape = regexp.MustCompile(`^[a-zA-Z0-9_-]+$`)

type Engine struct {
	table domain.DiscountRepository
}

func NewEngine(table domain.DiscountRepository) *Engine {
	return &Engine{table: table}
}

// WellFormed reports whether the code is syntactically acceptable,
// independent of whether it exists in the table.
func (e *Engine) WellFormed(code string) bool {
	return codeShape.MatchString(strings.TrimSpace(code))
}

// IsValidCode reports whether the code is well-formed and present in the
// reference table. Lookup is case-insensitive after trimming.
func (e *Engine) IsValidCode(code string) bool {
	if !e.WellFormed(code) {
		return false
	}

	_, ok := e.lookup(code)
	return ok
}

// PercentageFor returns the discount percentage for the code, or 0 when
// the code is unknown.
func (e *Engine) PercentageFor(code string) int {
	dc, ok := e.lookup(code)
	if !ok {
		return 0
	}

	return dc.Percentage
}

// Apply reduces price by the code's percentage. Empty or unknown codes
// leave the price unchanged.
func (e *Engine) Apply(code string, price decimal.Decimal) decimal.Decimal {
	pct := e.PercentageFor(code)
	if pct == 0 {
		return price
	}

	factor := decimal.NewFromInt(int64(100 - pct)).Div(decimal.NewFromInt(100))
	return price.Mul(factor)
}

func (e *Engine) lookup(code string) (domain.DiscountCode, bool) {
	fold := cases.Fold()
	want := fold.String(strings.TrimSpace(code))
	if want == "" {
		return domain.DiscountCode{}, false
	}

	for _, dc := range e.table.All() {
		if fold.String(dc.Code) == want {
			return dc, true
		}
	}

	return domain.DiscountCode{}, false
}
