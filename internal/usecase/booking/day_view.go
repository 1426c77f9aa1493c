package booking

import (
	"context"

	domain "github.com/hourslot/booking-api/internal/domain/booking"
	"github.com/hourslot/booking-api/internal/dto"
)

type DayView struct {
	repo domain.Repository
}

func NewDayView(
	repo domain.Repository,
) *DayView {
	return &DayView{
		repo: repo,
	}
}

func (uc *DayView) Execute(
	ctx context.Context,
	dateStr string,
) ([]dto.DayEntryDTO, error) {

	start, end, err := domain.DayBounds(dateStr)
	if err != nil {
		return nil, err
	}

	appointments, err := uc.repo.ListBetween(ctx, start, end)
	if err != nil {
		return nil, err
	}

	out := make([]dto.DayEntryDTO, 0, len(appointments))
	for _, ap := range appointments {
		out = append(out, dto.DayEntryDTO{
			ID:        ap.ID,
			Date:      ap.Slot,
			UserID:    ap.UserID,
			UserName:  ap.User.Name,
			UserEmail: ap.User.Email,
		})
	}

	return out, nil
}
