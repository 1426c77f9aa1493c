package booking

import (
	"context"
	"sort"
	"sync"
	"time"

	domain "github.com/hourslot/booking-api/internal/domain/booking"
	"github.com/hourslot/booking-api/internal/httperr"
	"github.com/hourslot/booking-api/internal/models"
)

// fakeRepo mirrors the storage contract: slot exclusivity under concurrent
// creates, owner-scoped deletes, ascending reads.
type fakeRepo struct {
	mu     sync.Mutex
	nextID uint
	byID   map[uint]models.Appointment
	users  map[uint]models.User
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		byID:  make(map[uint]models.Appointment),
		users: make(map[uint]models.User),
	}
}

func (f *fakeRepo) CreateExclusive(_ context.Context, ap *models.Appointment) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, existing := range f.byID {
		if existing.Slot.Equal(ap.Slot) {
			return httperr.ErrBusiness(httperr.CodeSlotConflict)
		}
	}

	f.nextID++
	ap.ID = f.nextID
	f.byID[ap.ID] = *ap
	return nil
}

func (f *fakeRepo) ListForUser(_ context.Context, userID uint) ([]models.Appointment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var out []models.Appointment
	for _, ap := range f.byID {
		if ap.UserID == userID {
			out = append(out, ap)
		}
	}

	sort.Slice(out, func(i, j int) bool { return out[i].Slot.Before(out[j].Slot) })
	return out, nil
}

func (f *fakeRepo) DeleteForUser(_ context.Context, appointmentID, userID uint) (*models.Appointment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	ap, ok := f.byID[appointmentID]
	if !ok || ap.UserID != userID {
		return nil, httperr.ErrBusiness(httperr.CodeNotFound)
	}

	delete(f.byID, appointmentID)
	return &ap, nil
}

func (f *fakeRepo) ListBetween(_ context.Context, start, end time.Time) ([]models.Appointment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var out []models.Appointment
	for _, ap := range f.byID {
		if ap.Slot.Before(start) || ap.Slot.After(end) {
			continue
		}
		ap.User = f.users[ap.UserID]
		out = append(out, ap)
	}

	sort.Slice(out, func(i, j int) bool { return out[i].Slot.Before(out[j].Slot) })
	return out, nil
}

func (f *fakeRepo) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.byID)
}

var _ domain.Repository = (*fakeRepo)(nil)
