package handlers

import (
	"context"
	"sync"

	catalog "github.com/hourslot/booking-api/internal/domain/catalog"
	identity "github.com/hourslot/booking-api/internal/domain/identity"
	"github.com/hourslot/booking-api/internal/httperr"
	"github.com/hourslot/booking-api/internal/models"
)

var (
	_ catalog.Repository  = (*fakeCatalog)(nil)
	_ identity.Repository = (*fakeIdentity)(nil)
)

// ------------------------------------------------------------------
// Catalog fake
// ------------------------------------------------------------------

type fakeCatalog struct {
	mu     sync.Mutex
	nextID uint
	items  []models.Service
}

func newFakeCatalog() *fakeCatalog {
	return &fakeCatalog{}
}

func (f *fakeCatalog) Create(_ context.Context, service *models.Service) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.nextID++
	service.ID = f.nextID
	f.items = append(f.items, *service)
	return nil
}

func (f *fakeCatalog) List(_ context.Context) ([]models.Service, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	out := make([]models.Service, len(f.items))
	copy(out, f.items)
	return out, nil
}

func (f *fakeCatalog) Delete(_ context.Context, serviceID uint) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	for i, s := range f.items {
		if s.ID == serviceID {
			f.items = append(f.items[:i], f.items[i+1:]...)
			return nil
		}
	}
	return httperr.ErrBusiness(httperr.CodeNotFound)
}

func (f *fakeCatalog) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.items)
}

// ------------------------------------------------------------------
// Identity fake
// ------------------------------------------------------------------

type fakeIdentity struct {
	mu     sync.Mutex
	nextID uint
	users  map[uint]models.User
}

func newFakeIdentity() *fakeIdentity {
	return &fakeIdentity{users: make(map[uint]models.User)}
}

func (f *fakeIdentity) Create(_ context.Context, user *models.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, existing := range f.users {
		if existing.Email == user.Email {
			return httperr.ErrBusiness(httperr.CodeEmailInUse)
		}
	}

	f.nextID++
	user.ID = f.nextID
	f.users[user.ID] = *user
	return nil
}

func (f *fakeIdentity) FindByEmail(_ context.Context, email string) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, user := range f.users {
		if user.Email == email {
			u := user
			return &u, nil
		}
	}
	return nil, httperr.ErrBusiness(httperr.CodeNotFound)
}

func (f *fakeIdentity) FindByID(_ context.Context, userID uint) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	user, ok := f.users[userID]
	if !ok {
		return nil, httperr.ErrBusiness(httperr.CodeNotFound)
	}
	u := user
	return &u, nil
}
