package domain

import "github.com/shopspring/decimal"

// HallType identifies the kind of hall a movie is screened in. Ticket
// prices are derived from it.
type HallType string

const (
	HallVIP      HallType = "VIP"
	Hall3D       HallType = "3D"
	HallIMAX     HallType = "IMAX"
	HallStandard HallType = "STANDARD"
)

var hallPrices = map[HallType]decimal.Decimal{
	HallVIP:      decimal.RequireFromString("20.00"),
	Hall3D:       decimal.RequireFromString("12.50"),
	HallIMAX:     decimal.RequireFromString("15.00"),
	HallStandard: decimal.RequireFromString("10.00"),
}

func (h HallType) Valid() bool {
	_, ok := hallPrices[h]
	return ok
}

// TicketPrice returns the fixed per-booking price for the hall type.
// Unknown hall types price as standard halls.
func (h HallType) TicketPrice() decimal.Decimal {
	if price, ok := hallPrices[h]; ok {
		return price
	}
	return hallPrices[HallStandard]
}

// Movie is an immutable catalog entry. Showtimes are ordered strings in
// "HH:MM AM/PM" form, fixed at catalog-entry time.
type Movie struct {
	Title     string
	Language  string
	Rating    float64
	Duration  int
	Hall      HallType
	Showtimes []string
}

func (m Movie) TicketPrice() decimal.Decimal {
	return m.Hall.TicketPrice()
}

type CatalogRepository interface {
	All() []Movie
}
