package booking

import (
	"context"

	"github.com/hourslot/booking-api/internal/audit"
	domain "github.com/hourslot/booking-api/internal/domain/booking"
	"github.com/hourslot/booking-api/internal/models"
)

type DeleteBooking struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewDeleteBooking(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *DeleteBooking {
	return &DeleteBooking{
		repo:  repo,
		audit: audit,
	}
}

func (uc *DeleteBooking) Execute(
	ctx context.Context,
	userID uint,
	appointmentID uint,
) (*models.Appointment, error) {

	ap, err := uc.repo.DeleteForUser(ctx, appointmentID, userID)
	if err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &userID,
		Action:   audit.ActionBookingDeleted,
		Entity:   "appointment",
		EntityID: &appointmentID,
	})

	return ap, nil
}
