package identity

import (
	"context"

	"github.com/hourslot/booking-api/internal/models"
)

// Repository is the identity store boundary. Driver error codes are
// translated into business errors here, never in handlers.
type Repository interface {
	// Create persists a new user, yielding the email_in_use business error
	// when the address is already registered.
	Create(
		ctx context.Context,
		user *models.User,
	) error

	// FindByEmail yields the not_found business error for an unknown address.
	FindByEmail(
		ctx context.Context,
		email string,
	) (*models.User, error)

	// FindByID yields the not_found business error for an unknown id.
	FindByID(
		ctx context.Context,
		userID uint,
	) (*models.User, error)
}
