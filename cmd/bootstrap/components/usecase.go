package components

import (
	"rentwheels/internal/domain/booking"
	"rentwheels/internal/domain/pricing"
	"rentwheels/internal/domain/reservation"
	"rentwheels/internal/pkg/clock"
	"rentwheels/internal/pkg/config"
	"rentwheels/internal/usecase/commands"
	"rentwheels/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	reservation.NewValidator,
	fx.Annotate(
		NewCalculator,
		fx.As(new(pricing.Calculator)),
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewBookingQueries,
		queries.NewPaymentQueries,
		queries.NewAdminQueries,
	),
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewReconcilerCommands,
		commands.NewBookingCommands,
		commands.NewLifecycleCommands,
		commands.NewPaymentCommands,
		commands.NewAdminCommands,
	),
)

func NewCalculator(cfg config.Config) *pricing.StandardCalculator {
	rates := pricing.Rates{
		InsuranceCentsPerDay: map[booking.InsuranceTier]int64{
			booking.InsuranceNone:    0,
			booking.InsuranceBasic:   cfg.Pricing.BasicInsuranceCents,
			booking.InsurancePremium: cfg.Pricing.PremiumInsuranceCents,
		},
		DefaultServiceCents: cfg.Pricing.ServiceCents,
		TaxBasisPoints:      cfg.Pricing.TaxBasisPoints,
	}
	return pricing.NewStandardCalculator(rates)
}
