package catalog

import (
	"context"

	"github.com/hourslot/booking-api/internal/models"
)

type Repository interface {
	Create(
		ctx context.Context,
		service *models.Service,
	) error

	// List returns all catalog entries, id ascending.
	List(
		ctx context.Context,
	) ([]models.Service, error)

	// Delete removes the service, yielding the not_found business error
	// when no row matches.
	Delete(
		ctx context.Context,
		serviceID uint,
	) error
}
