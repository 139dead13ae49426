package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/pizzaria/backend/internal/domain/finance"
	"github.com/pizzaria/backend/internal/domain/shared"
	"github.com/pizzaria/backend/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormAccountPayableRepository implements AccountPayableRepository using GORM
type GormAccountPayableRepository struct {
	db *gorm.DB
}

// NewGormAccountPayableRepository creates a new GormAccountPayableRepository
func NewGormAccountPayableRepository(db *gorm.DB) *GormAccountPayableRepository {
	return &GormAccountPayableRepository{db: db}
}

// Save creates or updates an account payable
func (r *GormAccountPayableRepository) Save(ctx context.Context, payable *finance.AccountPayable) error {
	model := models.AccountPayableModelFromDomain(payable)
	return r.db.WithContext(ctx).Save(model).Error
}

// SaveWithVersion updates an account payable only if the stored version still
// matches expectedVersion. A lost race returns shared.ErrConcurrencyConflict.
func (r *GormAccountPayableRepository) SaveWithVersion(ctx context.Context, payable *finance.AccountPayable, expectedVersion int) error {
	model := models.AccountPayableModelFromDomain(payable)
	result := r.db.WithContext(ctx).
		Model(&models.AccountPayableModel{}).
		Where("id = ? AND version = ?", payable.ID, expectedVersion).
		Select("*").Omit("id", "created_at").
		Updates(model)

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		var count int64
		if err := r.db.WithContext(ctx).Model(&models.AccountPayableModel{}).
			Where("id = ?", payable.ID).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return shared.ErrNotFound
		}
		return shared.ErrConcurrencyConflict
	}
	return nil
}

// SaveBatch creates all payables in a single transaction
func (r *GormAccountPayableRepository) SaveBatch(ctx context.Context, payables []*finance.AccountPayable) error {
	if len(payables) == 0 {
		return nil
	}
	payableModels := make([]*models.AccountPayableModel, len(payables))
	for i, payable := range payables {
		payableModels[i] = models.AccountPayableModelFromDomain(payable)
	}
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(&payableModels).Error
	})
}

// FindByID finds an account payable by its ID
func (r *GormAccountPayableRepository) FindByID(ctx context.Context, id uuid.UUID) (*finance.AccountPayable, error) {
	var model models.AccountPayableModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindAll finds payables matching the filter and the total count
func (r *GormAccountPayableRepository) FindAll(ctx context.Context, filter shared.Filter) ([]*finance.AccountPayable, int64, error) {
	return r.findWithConditions(ctx, r.db.WithContext(ctx).Model(&models.AccountPayableModel{}), filter)
}

// FindBySupplier finds payables for a supplier
func (r *GormAccountPayableRepository) FindBySupplier(ctx context.Context, supplierID uuid.UUID, filter shared.Filter) ([]*finance.AccountPayable, int64, error) {
	query := r.db.WithContext(ctx).Model(&models.AccountPayableModel{}).
		Where("supplier_id = ?", supplierID)
	return r.findWithConditions(ctx, query, filter)
}

// FindByStatus finds payables by status
func (r *GormAccountPayableRepository) FindByStatus(ctx context.Context, status finance.PayableStatus, filter shared.Filter) ([]*finance.AccountPayable, int64, error) {
	query := r.db.WithContext(ctx).Model(&models.AccountPayableModel{}).
		Where("status = ?", status)
	return r.findWithConditions(ctx, query, filter)
}

// FindOverdue finds pending payables whose due date passed as of the given time
func (r *GormAccountPayableRepository) FindOverdue(ctx context.Context, asOf time.Time, filter shared.Filter) ([]*finance.AccountPayable, int64, error) {
	query := r.db.WithContext(ctx).Model(&models.AccountPayableModel{}).
		Where("status = ? AND due_date < ?", finance.PayableStatusPending, asOf)
	return r.findWithConditions(ctx, query, filter)
}

// Summary aggregates payables by status, counting overdue against asOf
func (r *GormAccountPayableRepository) Summary(ctx context.Context, asOf time.Time) (*finance.PayableSummary, error) {
	var summary finance.PayableSummary
	err := r.db.WithContext(ctx).Model(&models.AccountPayableModel{}).
		Select(`
			COUNT(CASE WHEN status = 'PENDING' THEN 1 END) AS pending_count,
			COALESCE(SUM(CASE WHEN status = 'PENDING' THEN total_amount END), 0) AS pending_amount,
			COUNT(CASE WHEN status = 'PAID' THEN 1 END) AS paid_count,
			COALESCE(SUM(CASE WHEN status = 'PAID' THEN paid_amount END), 0) AS paid_amount,
			COUNT(CASE WHEN status = 'PENDING' AND due_date < ? THEN 1 END) AS overdue_count,
			COALESCE(SUM(CASE WHEN status = 'PENDING' AND due_date < ? THEN total_amount END), 0) AS overdue_amount`,
			asOf, asOf).
		Scan(&summary).Error
	if err != nil {
		return nil, err
	}
	return &summary, nil
}

// Delete removes an account payable by its ID
func (r *GormAccountPayableRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.AccountPayableModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// findWithConditions applies the filter, counts and loads one page
func (r *GormAccountPayableRepository) findWithConditions(ctx context.Context, query *gorm.DB, filter shared.Filter) ([]*finance.AccountPayable, int64, error) {
	query = r.applyFilterWithoutPagination(query, filter)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	orderBy := ValidateSortField(filter.OrderBy, AccountPayableSortFields, "due_date")
	orderDir := ValidateSortOrder(filter.OrderDir)

	var payableModels []models.AccountPayableModel
	if err := query.
		Offset(filter.Offset()).Limit(filter.Limit()).
		Order(orderBy + " " + orderDir).
		Find(&payableModels).Error; err != nil {
		return nil, 0, err
	}

	payables := make([]*finance.AccountPayable, len(payableModels))
	for i := range payableModels {
		payables[i] = payableModels[i].ToDomain()
	}
	return payables, total, nil
}

// applyFilterWithoutPagination applies filter options without pagination
func (r *GormAccountPayableRepository) applyFilterWithoutPagination(query *gorm.DB, filter shared.Filter) *gorm.DB {
	if filter.Search != "" {
		searchPattern := "%" + filter.Search + "%"
		query = query.Where("document_number ILIKE ? OR supplier_name ILIKE ?", searchPattern, searchPattern)
	}
	for key, value := range filter.Filters {
		switch key {
		case "supplier_id":
			query = query.Where("supplier_id = ?", value)
		case "due_before":
			query = query.Where("due_date < ?", value)
		case "due_after":
			query = query.Where("due_date >= ?", value)
		}
	}
	return query
}
