package queries

import (
	"context"

	"rentwheels/internal/infra"
	"rentwheels/internal/pkg/jwt"

	"github.com/google/uuid"
)

type PaymentReadStore interface {
	FindByBookingID(ctx context.Context, bookingID uuid.UUID) ([]*PaymentView, error)
}

type PaymentQueries interface {
	// ListByBookingFor returns the attempt history for a booking the
	// requester may see.
	ListByBookingFor(ctx context.Context, bookingID, requesterID uuid.UUID, role jwt.Role) ([]*PaymentView, error)
}

type paymentQueriesImpl struct {
	bookings BookingReadStore
	payments PaymentReadStore
}

func NewPaymentQueries(bookings BookingReadStore, payments PaymentReadStore) PaymentQueries {
	return &paymentQueriesImpl{bookings: bookings, payments: payments}
}

func (q *paymentQueriesImpl) ListByBookingFor(ctx context.Context, bookingID, requesterID uuid.UUID, role jwt.Role) ([]*PaymentView, error) {
	view, err := q.bookings.FindByID(ctx, bookingID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}
	if role != jwt.RoleAdmin && view.RenterID != requesterID {
		return nil, ErrAccessDenied
	}
	return q.payments.FindByBookingID(ctx, bookingID)
}
