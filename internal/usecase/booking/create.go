package booking

import (
	"context"
	"time"

	"github.com/hourslot/booking-api/internal/audit"
	domain "github.com/hourslot/booking-api/internal/domain/booking"
	"github.com/hourslot/booking-api/internal/httperr"
	"github.com/hourslot/booking-api/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type CreateBookingInput struct {
	UserID uint
	Date   string
}

// ======================================================
// USE CASE
// ======================================================

type CreateBooking struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	now   func() time.Time
}

func NewCreateBooking(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *CreateBooking {
	return &CreateBooking{
		repo:  repo,
		audit: audit,
		now:   time.Now,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateBooking) Execute(
	ctx context.Context,
	in CreateBookingInput,
) (*models.Appointment, error) {

	instant, err := domain.ParseInstant(in.Date)
	if err != nil {
		return nil, err
	}

	slot := domain.NormalizeSlot(instant)

	if err := domain.ValidateSlot(slot, uc.now()); err != nil {
		return nil, err
	}

	ap := &models.Appointment{
		UserID: in.UserID,
		Slot:   slot,
	}

	if err := uc.repo.CreateExclusive(ctx, ap); err != nil {
		if httperr.IsBusiness(err, httperr.CodeSlotConflict) {
			uc.audit.Dispatch(audit.Event{
				UserID: &in.UserID,
				Action: audit.ActionBookingConflict,
				Entity: "appointment",
				Metadata: map[string]any{
					"slot": slot,
				},
			})
		}
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &in.UserID,
		Action:   audit.ActionBookingCreated,
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return ap, nil
}
