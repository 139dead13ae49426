package persistence

import (
	"context"
	"errors"

	"github.com/pizzaria/backend/internal/domain/finance"
	"github.com/pizzaria/backend/internal/domain/shared"
	"github.com/pizzaria/backend/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormPaymentConditionRepository implements PaymentConditionRepository using GORM
type GormPaymentConditionRepository struct {
	db *gorm.DB
}

// NewGormPaymentConditionRepository creates a new GormPaymentConditionRepository
func NewGormPaymentConditionRepository(db *gorm.DB) *GormPaymentConditionRepository {
	return &GormPaymentConditionRepository{db: db}
}

// Save creates or updates a payment condition. The rule list is replaced
// wholesale so the stored schedule always matches the aggregate.
func (r *GormPaymentConditionRepository) Save(ctx context.Context, condition *finance.PaymentCondition) error {
	model := models.PaymentConditionModelFromDomain(condition)
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Where("condition_id = ?", condition.ID).
			Delete(&models.InstallmentRuleModel{}).Error; err != nil {
			return err
		}
		rules := model.Rules
		model.Rules = nil
		if err := tx.Omit("Rules").Save(model).Error; err != nil {
			return err
		}
		if len(rules) > 0 {
			if err := tx.Create(&rules).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// FindByID finds a payment condition with its rules by ID
func (r *GormPaymentConditionRepository) FindByID(ctx context.Context, id uuid.UUID) (*finance.PaymentCondition, error) {
	var model models.PaymentConditionModel
	if err := r.db.WithContext(ctx).
		Preload("Rules").
		First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByName finds a payment condition by its name
func (r *GormPaymentConditionRepository) FindByName(ctx context.Context, name string) (*finance.PaymentCondition, error) {
	var model models.PaymentConditionModel
	if err := r.db.WithContext(ctx).
		Preload("Rules").
		Where("name = ?", name).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// ExistsByName checks if a payment condition with the given name exists
func (r *GormPaymentConditionRepository) ExistsByName(ctx context.Context, name string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.PaymentConditionModel{}).
		Where("name = ?", name).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// FindAll finds payment conditions matching the filter and the total count
func (r *GormPaymentConditionRepository) FindAll(ctx context.Context, filter shared.Filter) ([]*finance.PaymentCondition, int64, error) {
	base := r.applyFilterWithoutPagination(r.db.WithContext(ctx).Model(&models.PaymentConditionModel{}), filter)

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	orderBy := ValidateSortField(filter.OrderBy, PaymentConditionSortFields, "name")
	orderDir := ValidateSortOrder(filter.OrderDir)

	var conditionModels []models.PaymentConditionModel
	if err := base.
		Preload("Rules").
		Offset(filter.Offset()).Limit(filter.Limit()).
		Order(orderBy + " " + orderDir).
		Find(&conditionModels).Error; err != nil {
		return nil, 0, err
	}

	conditions := make([]*finance.PaymentCondition, len(conditionModels))
	for i := range conditionModels {
		conditions[i] = conditionModels[i].ToDomain()
	}
	return conditions, total, nil
}

// Delete removes a payment condition and its rules
func (r *GormPaymentConditionRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Where("condition_id = ?", id).
			Delete(&models.InstallmentRuleModel{}).Error; err != nil {
			return err
		}
		result := tx.Delete(&models.PaymentConditionModel{}, "id = ?", id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return shared.ErrNotFound
		}
		return nil
	})
}

// IsReferenced reports whether entry or exit invoices reference the condition
func (r *GormPaymentConditionRepository) IsReferenced(ctx context.Context, id uuid.UUID) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.EntryInvoiceModel{}).
		Where("payment_condition_id = ?", id).Count(&count).Error; err != nil {
		return false, err
	}
	if count > 0 {
		return true, nil
	}
	if err := r.db.WithContext(ctx).Model(&models.ExitInvoiceModel{}).
		Where("payment_condition_id = ?", id).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// applyFilterWithoutPagination applies filter options without pagination
func (r *GormPaymentConditionRepository) applyFilterWithoutPagination(query *gorm.DB, filter shared.Filter) *gorm.DB {
	if filter.Search != "" {
		searchPattern := "%" + filter.Search + "%"
		query = query.Where("name ILIKE ? OR description ILIKE ?", searchPattern, searchPattern)
	}
	for key, value := range filter.Filters {
		switch key {
		case "active":
			query = query.Where("active = ?", value)
		}
	}
	return query
}
