package commands

import (
	"context"
	"time"

	"rentwheels/internal/domain/booking"
	"rentwheels/internal/domain/pricing"
	"rentwheels/internal/domain/reservation"
	"rentwheels/internal/infra"
	"rentwheels/internal/pkg/clock"
	"rentwheels/internal/pkg/errs"
	"rentwheels/internal/usecase/queries"
	"rentwheels/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type BookingCommands interface {
	// Quote prices a prospective rental without creating anything.
	Quote(ctx context.Context, carID uuid.UUID, pickup, dropoff time.Time, tier booking.InsuranceTier, serviceIDs []string) (booking.PriceBreakdown, error)
	// Create runs the wizard gates, freezes the quote and persists the
	// booking with both status axes pending.
	Create(ctx context.Context, draft reservation.Draft, renterID uuid.UUID) (*queries.BookingView, error)
}

type bookingCommandsImpl struct {
	bookingRepo    BookingRepository
	cars           CarCatalog
	validator      *reservation.Validator
	calculator     pricing.Calculator
	bookingQueries queries.BookingQueries
	db             *pgxpool.Pool
	clock          clock.Clock
}

func NewBookingCommands(
	bookingRepo BookingRepository,
	cars CarCatalog,
	validator *reservation.Validator,
	calculator pricing.Calculator,
	bookingQueries queries.BookingQueries,
	db *pgxpool.Pool,
	clock clock.Clock,
) BookingCommands {
	return &bookingCommandsImpl{
		bookingRepo:    bookingRepo,
		cars:           cars,
		validator:      validator,
		calculator:     calculator,
		bookingQueries: bookingQueries,
		db:             db,
		clock:          clock,
	}
}

func (c *bookingCommandsImpl) Quote(
	ctx context.Context,
	carID uuid.UUID,
	pickup, dropoff time.Time,
	tier booking.InsuranceTier,
	serviceIDs []string,
) (booking.PriceBreakdown, error) {
	period, err := booking.NewRentalPeriod(pickup, dropoff)
	if err != nil {
		return booking.PriceBreakdown{}, errs.Mark(err, ErrInvalidRange)
	}

	car, err := c.findCar(ctx, carID)
	if err != nil {
		return booking.PriceBreakdown{}, err
	}

	return c.calculator.Quote(car.DailyRateCents, period, tier, serviceIDs)
}

func (c *bookingCommandsImpl) Create(
	ctx context.Context,
	draft reservation.Draft,
	renterID uuid.UUID,
) (*queries.BookingView, error) {
	// The gates run in wizard order; pricing only sees ranges the first
	// gate already accepted.
	if fe := c.validator.ValidateIdentitySchedule(draft); !fe.Valid() {
		return nil, NewValidationError(reservation.StepIdentitySchedule, fe)
	}
	if fe := c.validator.ValidatePaymentInstrument(draft); !fe.Valid() {
		return nil, NewValidationError(reservation.StepPaymentInstrument, fe)
	}

	car, err := c.findCar(ctx, draft.CarID)
	if err != nil {
		return nil, err
	}
	if !car.Available {
		return nil, ErrCarUnavailable
	}

	period, err := booking.NewRentalPeriod(draft.PickupDate, draft.DropoffDate)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidRange)
	}

	breakdown, err := c.calculator.Quote(car.DailyRateCents, period, draft.InsuranceTier, draft.ServiceIDs)
	if err != nil {
		return nil, err
	}

	entity, err := booking.NewBooking(
		car.ID, renterID, draft.Renter(), period,
		draft.PickupLocation, draft.DropoffLocation,
		draft.InsuranceTier, draft.ServiceIDs, draft.SpecialRequests,
		breakdown, c.clock.Now(),
	)
	if err != nil {
		return nil, err
	}

	_, err = shared.RunInTx(ctx, c.db, func(tx pgx.Tx) (struct{}, error) {
		return struct{}{}, c.bookingRepo.Create(ctx, tx, entity)
	})
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseFailure)
	}

	return c.bookingQueries.GetByIDSystem(ctx, entity.ID())
}

func (c *bookingCommandsImpl) findCar(ctx context.Context, carID uuid.UUID) (*shared.CarSnapshot, error) {
	car, err := c.cars.FindByID(ctx, carID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrCarNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseFailure)
	}
	return car, nil
}
