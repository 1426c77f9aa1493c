package repository

import (
	"context"

	"gorm.io/gorm"

	domain "github.com/hourslot/booking-api/internal/domain/catalog"
	"github.com/hourslot/booking-api/internal/httperr"
	"github.com/hourslot/booking-api/internal/models"
)

type CatalogGormRepository struct {
	db *gorm.DB
}

func NewCatalogGormRepository(db *gorm.DB) *CatalogGormRepository {
	return &CatalogGormRepository{db: db}
}

func (r *CatalogGormRepository) Create(
	ctx context.Context,
	service *models.Service,
) error {
	return r.db.WithContext(ctx).Create(service).Error
}

func (r *CatalogGormRepository) List(
	ctx context.Context,
) ([]models.Service, error) {

	var services []models.Service
	if err := r.db.WithContext(ctx).
		Order("id ASC").
		Find(&services).Error; err != nil {
		return nil, err
	}

	return services, nil
}

func (r *CatalogGormRepository) Delete(
	ctx context.Context,
	serviceID uint,
) error {

	res := r.db.WithContext(ctx).Delete(&models.Service{}, serviceID)
	if res.Error != nil {
		return res.Error
	}

	if res.RowsAffected == 0 {
		return httperr.ErrBusiness(httperr.CodeNotFound)
	}

	return nil
}

// Compile-time check
var _ domain.Repository = (*CatalogGormRepository)(nil)
