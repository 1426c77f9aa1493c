package booking

import (
	"context"

	domain "github.com/hourslot/booking-api/internal/domain/booking"
	"github.com/hourslot/booking-api/internal/models"
)

type ListUserBookings struct {
	repo domain.Repository
}

func NewListUserBookings(
	repo domain.Repository,
) *ListUserBookings {
	return &ListUserBookings{
		repo: repo,
	}
}

func (uc *ListUserBookings) Execute(
	ctx context.Context,
	userID uint,
) ([]models.Appointment, error) {

	aps, err := uc.repo.ListForUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	if aps == nil {
		aps = []models.Appointment{}
	}

	return aps, nil
}
