package persistence

import (
	"context"
	"errors"
	"strings"

	"github.com/pizzaria/backend/internal/domain/partner"
	"github.com/pizzaria/backend/internal/domain/shared"
	"github.com/pizzaria/backend/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormCarrierRepository implements CarrierRepository using GORM
type GormCarrierRepository struct {
	db *gorm.DB
}

// NewGormCarrierRepository creates a new GormCarrierRepository
func NewGormCarrierRepository(db *gorm.DB) *GormCarrierRepository {
	return &GormCarrierRepository{db: db}
}

// FindByID finds a carrier by its ID
func (r *GormCarrierRepository) FindByID(ctx context.Context, id uuid.UUID) (*partner.Carrier, error) {
	var model models.CarrierModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByCode finds a carrier by its code
func (r *GormCarrierRepository) FindByCode(ctx context.Context, code string) (*partner.Carrier, error) {
	var model models.CarrierModel
	if err := r.db.WithContext(ctx).
		Where("code = ?", strings.ToUpper(code)).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindAll finds all carriers matching the filter
func (r *GormCarrierRepository) FindAll(ctx context.Context, filter shared.Filter) ([]partner.Carrier, error) {
	var carrierModels []models.CarrierModel
	query := r.applyFilter(r.db.WithContext(ctx).Model(&models.CarrierModel{}), filter)

	if err := query.Find(&carrierModels).Error; err != nil {
		return nil, err
	}
	carriers := make([]partner.Carrier, len(carrierModels))
	for i, model := range carrierModels {
		carriers[i] = *model.ToDomain()
	}
	return carriers, nil
}

// FindByStatus finds carriers by status
func (r *GormCarrierRepository) FindByStatus(ctx context.Context, status partner.Status, filter shared.Filter) ([]partner.Carrier, error) {
	var carrierModels []models.CarrierModel
	query := r.applyFilter(
		r.db.WithContext(ctx).Model(&models.CarrierModel{}).Where("status = ?", status),
		filter,
	)

	if err := query.Find(&carrierModels).Error; err != nil {
		return nil, err
	}
	carriers := make([]partner.Carrier, len(carrierModels))
	for i, model := range carrierModels {
		carriers[i] = *model.ToDomain()
	}
	return carriers, nil
}

// Count counts carriers matching the filter
func (r *GormCarrierRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	var count int64
	query := r.applyFilterWithoutPagination(r.db.WithContext(ctx).Model(&models.CarrierModel{}), filter)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// ExistsByCode checks if a carrier with the given code exists
func (r *GormCarrierRepository) ExistsByCode(ctx context.Context, code string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.CarrierModel{}).
		Where("code = ?", strings.ToUpper(code)).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// HasVehicles reports whether any vehicle references the carrier
func (r *GormCarrierRepository) HasVehicles(ctx context.Context, id uuid.UUID) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.VehicleModel{}).
		Where("carrier_id = ?", id).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// Save creates or updates a carrier
func (r *GormCarrierRepository) Save(ctx context.Context, carrier *partner.Carrier) error {
	model := models.CarrierModelFromDomain(carrier)
	return r.db.WithContext(ctx).Save(model).Error
}

// Delete removes a carrier by its ID
func (r *GormCarrierRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.CarrierModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// applyFilter applies filter options to the query
func (r *GormCarrierRepository) applyFilter(query *gorm.DB, filter shared.Filter) *gorm.DB {
	query = r.applyFilterWithoutPagination(query, filter)
	query = query.Offset(filter.Offset()).Limit(filter.Limit())

	orderBy := ValidateSortField(filter.OrderBy, CarrierSortFields, "name")
	orderDir := ValidateSortOrder(filter.OrderDir)
	return query.Order(orderBy + " " + orderDir)
}

// applyFilterWithoutPagination applies filter options without pagination
func (r *GormCarrierRepository) applyFilterWithoutPagination(query *gorm.DB, filter shared.Filter) *gorm.DB {
	if filter.Search != "" {
		searchPattern := "%" + filter.Search + "%"
		query = query.Where("name ILIKE ? OR code ILIKE ? OR cnpj LIKE ?",
			searchPattern, searchPattern, searchPattern)
	}
	for key, value := range filter.Filters {
		switch key {
		case "status":
			query = query.Where("status = ?", value)
		}
	}
	return query
}
