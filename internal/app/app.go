// Package app wires the engine's services together and drives them from
// an interactive console session.
package app

import (
	"log/slog"

	"github.com/cinetix/booking-engine/internal/booking"
	"github.com/cinetix/booking-engine/internal/catalog"
	"github.com/cinetix/booking-engine/internal/discount"
	"github.com/cinetix/booking-engine/internal/domain"
	"github.com/cinetix/booking-engine/internal/matcher"
	"github.com/cinetix/booking-engine/internal/repository"
)

type Config struct {
	Env      string
	Currency string
}

type Application struct {
	config Config
	logger *slog.Logger

	methodRepo domain.PaymentMethodRepository

	catalog   *catalog.Service
	ledger    *booking.Ledger
	discounts *discount.Engine
}

// New builds a fully wired application over freshly seeded in-memory
// repositories.
func New(cfg Config, logger *slog.Logger) *Application {
	catalogRepo := repository.NewMemoryCatalogRepository(SeedMovies())
	bookingRepo := repository.NewMemoryBookingRepository()
	discountRepo := repository.NewMemoryDiscountRepository(SeedDiscountCodes())
	methodRepo := repository.NewMemoryPaymentMethodRepository()

	return &Application{
		config:     cfg,
		logger:     logger,
		methodRepo: methodRepo,
		catalog:    catalog.NewService(catalogRepo),
		ledger:     booking.NewLedger(matcher.New(catalogRepo), bookingRepo, logger),
		discounts:  discount.NewEngine(discountRepo),
	}
}
