package booking

import (
	"context"
	"time"

	"github.com/hourslot/booking-api/internal/models"
)

type Repository interface {
	// -------- Appointment (create / conflict) --------

	// CreateExclusive persists ap only if its slot is free, atomically with
	// respect to concurrent calls for the same slot. A taken slot yields
	// the slot_conflict business error.
	CreateExclusive(
		ctx context.Context,
		ap *models.Appointment,
	) error

	// -------- Appointment (read / delete) --------

	ListForUser(
		ctx context.Context,
		userID uint,
	) ([]models.Appointment, error)

	// DeleteForUser removes the appointment if it exists and belongs to
	// userID, returning the removed row. Absence (including an appointment
	// already deleted by a racing call) yields the not_found business error.
	DeleteForUser(
		ctx context.Context,
		appointmentID uint,
		userID uint,
	) (*models.Appointment, error)

	// ListBetween returns appointments with slot in [start, end] inclusive,
	// ascending, each with its owning user loaded.
	ListBetween(
		ctx context.Context,
		start time.Time,
		end time.Time,
	) ([]models.Appointment, error)
}
