package queries

import (
	"context"

	"rentwheels/internal/infra"
	"rentwheels/internal/pkg/errs"
	"rentwheels/internal/pkg/jwt"

	"github.com/google/uuid"
)

var (
	ErrBookingNotFound = errs.New("booking not found")
	ErrAccessDenied    = errs.New("access denied")
)

type BookingReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*BookingView, error)
	FindByRenterID(ctx context.Context, renterID uuid.UUID) ([]*BookingListItem, error)
	FindAll(ctx context.Context, rentalStatus, paymentStatus string) ([]*BookingListItem, error)
}

type BookingQueries interface {
	// GetByIDFor enforces ownership: customers only see their own
	// bookings, administrators see everything.
	GetByIDFor(ctx context.Context, id, requesterID uuid.UUID, role jwt.Role) (*BookingView, error)
	GetByIDSystem(ctx context.Context, id uuid.UUID) (*BookingView, error)
	ListByRenter(ctx context.Context, renterID uuid.UUID) ([]*BookingListItem, error)
	ListAll(ctx context.Context, rentalStatus, paymentStatus string) ([]*BookingListItem, error)
}

type bookingQueriesImpl struct {
	store BookingReadStore
}

func NewBookingQueries(store BookingReadStore) BookingQueries {
	return &bookingQueriesImpl{store: store}
}

func (q *bookingQueriesImpl) GetByIDFor(ctx context.Context, id, requesterID uuid.UUID, role jwt.Role) (*BookingView, error) {
	view, err := q.findByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if role != jwt.RoleAdmin && view.RenterID != requesterID {
		return nil, ErrAccessDenied
	}
	return view, nil
}

// GetByIDSystem skips the ownership check, for internal read-after-write.
func (q *bookingQueriesImpl) GetByIDSystem(ctx context.Context, id uuid.UUID) (*BookingView, error) {
	return q.findByID(ctx, id)
}

func (q *bookingQueriesImpl) findByID(ctx context.Context, id uuid.UUID) (*BookingView, error) {
	view, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}
	return view, nil
}

func (q *bookingQueriesImpl) ListByRenter(ctx context.Context, renterID uuid.UUID) ([]*BookingListItem, error) {
	return q.store.FindByRenterID(ctx, renterID)
}

func (q *bookingQueriesImpl) ListAll(ctx context.Context, rentalStatus, paymentStatus string) ([]*BookingListItem, error) {
	return q.store.FindAll(ctx, rentalStatus, paymentStatus)
}
