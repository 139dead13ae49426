package persistence

import (
	"context"
	"errors"

	"github.com/pizzaria/backend/internal/domain/fiscal"
	"github.com/pizzaria/backend/internal/domain/shared"
	"github.com/pizzaria/backend/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormExitInvoiceRepository implements ExitInvoiceRepository using GORM
type GormExitInvoiceRepository struct {
	db *gorm.DB
}

// NewGormExitInvoiceRepository creates a new GormExitInvoiceRepository
func NewGormExitInvoiceRepository(db *gorm.DB) *GormExitInvoiceRepository {
	return &GormExitInvoiceRepository{db: db}
}

// Save creates or updates an exit invoice with its items. Items are
// replaced wholesale so the stored lines always match the aggregate.
func (r *GormExitInvoiceRepository) Save(ctx context.Context, invoice *fiscal.ExitInvoice) error {
	model := models.ExitInvoiceModelFromDomain(invoice)
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Where("invoice_id = ?", invoice.ID).
			Delete(&models.ExitInvoiceItemModel{}).Error; err != nil {
			return err
		}
		items := model.Items
		model.Items = nil
		if err := tx.Omit("Items").Save(model).Error; err != nil {
			return err
		}
		if len(items) > 0 {
			if err := tx.Create(&items).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// FindByKey finds an exit invoice by its composite key
func (r *GormExitInvoiceRepository) FindByKey(ctx context.Context, key fiscal.InvoiceKey) (*fiscal.ExitInvoice, error) {
	var model models.ExitInvoiceModel
	if err := r.keyScope(r.db.WithContext(ctx), key).
		Preload("Items").
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// ExistsByKey checks if an exit invoice with the composite key exists
func (r *GormExitInvoiceRepository) ExistsByKey(ctx context.Context, key fiscal.InvoiceKey) (bool, error) {
	var count int64
	if err := r.keyScope(r.db.WithContext(ctx).Model(&models.ExitInvoiceModel{}), key).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// FindAll finds exit invoices matching the filter and the total count
func (r *GormExitInvoiceRepository) FindAll(ctx context.Context, filter shared.Filter) ([]*fiscal.ExitInvoice, int64, error) {
	return r.findWithConditions(ctx, r.db.WithContext(ctx).Model(&models.ExitInvoiceModel{}), filter)
}

// FindByClient finds exit invoices for a client
func (r *GormExitInvoiceRepository) FindByClient(ctx context.Context, clientID uuid.UUID, filter shared.Filter) ([]*fiscal.ExitInvoice, int64, error) {
	query := r.db.WithContext(ctx).Model(&models.ExitInvoiceModel{}).
		Where("client_id = ?", clientID)
	return r.findWithConditions(ctx, query, filter)
}

// DeleteByKey removes an exit invoice and its items by the composite key
func (r *GormExitInvoiceRepository) DeleteByKey(ctx context.Context, key fiscal.InvoiceKey) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var model models.ExitInvoiceModel
		if err := r.keyScope(tx, key).Select("id").First(&model).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return shared.ErrNotFound
			}
			return err
		}
		if err := tx.
			Where("invoice_id = ?", model.ID).
			Delete(&models.ExitInvoiceItemModel{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.ExitInvoiceModel{}, "id = ?", model.ID).Error
	})
}

// keyScope narrows a query to one composite document key
func (r *GormExitInvoiceRepository) keyScope(query *gorm.DB, key fiscal.InvoiceKey) *gorm.DB {
	return query.Where(
		"number = ? AND model = ? AND series = ? AND client_id = ?",
		key.Number, key.Model, key.Series, key.PartnerID,
	)
}

// findWithConditions applies the filter, counts and loads one page
func (r *GormExitInvoiceRepository) findWithConditions(ctx context.Context, query *gorm.DB, filter shared.Filter) ([]*fiscal.ExitInvoice, int64, error) {
	query = r.applyFilterWithoutPagination(query, filter)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	orderBy := ValidateSortField(filter.OrderBy, InvoiceSortFields, "emission_date")
	orderDir := ValidateSortOrder(filter.OrderDir)

	var invoiceModels []models.ExitInvoiceModel
	if err := query.
		Preload("Items").
		Offset(filter.Offset()).Limit(filter.Limit()).
		Order(orderBy + " " + orderDir).
		Find(&invoiceModels).Error; err != nil {
		return nil, 0, err
	}

	invoices := make([]*fiscal.ExitInvoice, len(invoiceModels))
	for i := range invoiceModels {
		invoices[i] = invoiceModels[i].ToDomain()
	}
	return invoices, total, nil
}

// applyFilterWithoutPagination applies filter options without pagination
func (r *GormExitInvoiceRepository) applyFilterWithoutPagination(query *gorm.DB, filter shared.Filter) *gorm.DB {
	if filter.Search != "" {
		searchPattern := "%" + filter.Search + "%"
		query = query.Where("number ILIKE ? OR client_name ILIKE ?", searchPattern, searchPattern)
	}
	for key, value := range filter.Filters {
		switch key {
		case "client_id":
			query = query.Where("client_id = ?", value)
		case "carrier_id":
			query = query.Where("carrier_id = ?", value)
		case "emitted_before":
			query = query.Where("emission_date < ?", value)
		case "emitted_after":
			query = query.Where("emission_date >= ?", value)
		}
	}
	return query
}
