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

// GormAccountReceivableRepository implements AccountReceivableRepository using GORM
type GormAccountReceivableRepository struct {
	db *gorm.DB
}

// NewGormAccountReceivableRepository creates a new GormAccountReceivableRepository
func NewGormAccountReceivableRepository(db *gorm.DB) *GormAccountReceivableRepository {
	return &GormAccountReceivableRepository{db: db}
}

// Save creates or updates an account receivable
func (r *GormAccountReceivableRepository) Save(ctx context.Context, receivable *finance.AccountReceivable) error {
	model := models.AccountReceivableModelFromDomain(receivable)
	return r.db.WithContext(ctx).Save(model).Error
}

// SaveWithVersion updates an account receivable only if the stored version
// still matches expectedVersion. A lost race returns shared.ErrConcurrencyConflict.
func (r *GormAccountReceivableRepository) SaveWithVersion(ctx context.Context, receivable *finance.AccountReceivable, expectedVersion int) error {
	model := models.AccountReceivableModelFromDomain(receivable)
	result := r.db.WithContext(ctx).
		Model(&models.AccountReceivableModel{}).
		Where("id = ? AND version = ?", receivable.ID, expectedVersion).
		Select("*").Omit("id", "created_at").
		Updates(model)

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		var count int64
		if err := r.db.WithContext(ctx).Model(&models.AccountReceivableModel{}).
			Where("id = ?", receivable.ID).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return shared.ErrNotFound
		}
		return shared.ErrConcurrencyConflict
	}
	return nil
}

// SaveBatch creates all receivables in a single transaction
func (r *GormAccountReceivableRepository) SaveBatch(ctx context.Context, receivables []*finance.AccountReceivable) error {
	if len(receivables) == 0 {
		return nil
	}
	receivableModels := make([]*models.AccountReceivableModel, len(receivables))
	for i, receivable := range receivables {
		receivableModels[i] = models.AccountReceivableModelFromDomain(receivable)
	}
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(&receivableModels).Error
	})
}

// FindByID finds an account receivable by its ID
func (r *GormAccountReceivableRepository) FindByID(ctx context.Context, id uuid.UUID) (*finance.AccountReceivable, error) {
	var model models.AccountReceivableModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindAll finds receivables matching the filter and the total count
func (r *GormAccountReceivableRepository) FindAll(ctx context.Context, filter shared.Filter) ([]*finance.AccountReceivable, int64, error) {
	return r.findWithConditions(ctx, r.db.WithContext(ctx).Model(&models.AccountReceivableModel{}), filter)
}

// FindByClient finds receivables for a client
func (r *GormAccountReceivableRepository) FindByClient(ctx context.Context, clientID uuid.UUID, filter shared.Filter) ([]*finance.AccountReceivable, int64, error) {
	query := r.db.WithContext(ctx).Model(&models.AccountReceivableModel{}).
		Where("client_id = ?", clientID)
	return r.findWithConditions(ctx, query, filter)
}

// FindByStatus finds receivables by status
func (r *GormAccountReceivableRepository) FindByStatus(ctx context.Context, status finance.ReceivableStatus, filter shared.Filter) ([]*finance.AccountReceivable, int64, error) {
	query := r.db.WithContext(ctx).Model(&models.AccountReceivableModel{}).
		Where("status = ?", status)
	return r.findWithConditions(ctx, query, filter)
}

// FindOverdue finds pending receivables whose due date passed as of the given time
func (r *GormAccountReceivableRepository) FindOverdue(ctx context.Context, asOf time.Time, filter shared.Filter) ([]*finance.AccountReceivable, int64, error) {
	query := r.db.WithContext(ctx).Model(&models.AccountReceivableModel{}).
		Where("status = ? AND due_date < ?", finance.ReceivableStatusPending, asOf)
	return r.findWithConditions(ctx, query, filter)
}

// Summary aggregates receivables by status, counting overdue against asOf
func (r *GormAccountReceivableRepository) Summary(ctx context.Context, asOf time.Time) (*finance.ReceivableSummary, error) {
	var summary finance.ReceivableSummary
	err := r.db.WithContext(ctx).Model(&models.AccountReceivableModel{}).
		Select(`
			COUNT(CASE WHEN status = 'PENDING' THEN 1 END) AS pending_count,
			COALESCE(SUM(CASE WHEN status = 'PENDING' THEN total_amount END), 0) AS pending_amount,
			COUNT(CASE WHEN status = 'RECEIVED' THEN 1 END) AS received_count,
			COALESCE(SUM(CASE WHEN status = 'RECEIVED' THEN received_amount END), 0) AS received_amount,
			COUNT(CASE WHEN status = 'PENDING' AND due_date < ? THEN 1 END) AS overdue_count,
			COALESCE(SUM(CASE WHEN status = 'PENDING' AND due_date < ? THEN total_amount END), 0) AS overdue_amount`,
			asOf, asOf).
		Scan(&summary).Error
	if err != nil {
		return nil, err
	}
	return &summary, nil
}

// Delete removes an account receivable by its ID
func (r *GormAccountReceivableRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.AccountReceivableModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// findWithConditions applies the filter, counts and loads one page
func (r *GormAccountReceivableRepository) findWithConditions(ctx context.Context, query *gorm.DB, filter shared.Filter) ([]*finance.AccountReceivable, int64, error) {
	query = r.applyFilterWithoutPagination(query, filter)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	orderBy := ValidateSortField(filter.OrderBy, AccountReceivableSortFields, "due_date")
	orderDir := ValidateSortOrder(filter.OrderDir)

	var receivableModels []models.AccountReceivableModel
	if err := query.
		Offset(filter.Offset()).Limit(filter.Limit()).
		Order(orderBy + " " + orderDir).
		Find(&receivableModels).Error; err != nil {
		return nil, 0, err
	}

	receivables := make([]*finance.AccountReceivable, len(receivableModels))
	for i := range receivableModels {
		receivables[i] = receivableModels[i].ToDomain()
	}
	return receivables, total, nil
}

// applyFilterWithoutPagination applies filter options without pagination
func (r *GormAccountReceivableRepository) applyFilterWithoutPagination(query *gorm.DB, filter shared.Filter) *gorm.DB {
	if filter.Search != "" {
		searchPattern := "%" + filter.Search + "%"
		query = query.Where("document_number ILIKE ? OR client_name ILIKE ?", searchPattern, searchPattern)
	}
	for key, value := range filter.Filters {
		switch key {
		case "client_id":
			query = query.Where("client_id = ?", value)
		case "due_before":
			query = query.Where("due_date < ?", value)
		case "due_after":
			query = query.Where("due_date >= ?", value)
		}
	}
	return query
}
