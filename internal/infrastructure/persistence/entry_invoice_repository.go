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

// GormEntryInvoiceRepository implements EntryInvoiceRepository using GORM.
// Documents are addressed by the full composite key; the surrogate row ID is
// never exposed outside the persistence layer.
type GormEntryInvoiceRepository struct {
	db *gorm.DB
}

// NewGormEntryInvoiceRepository creates a new GormEntryInvoiceRepository
func NewGormEntryInvoiceRepository(db *gorm.DB) *GormEntryInvoiceRepository {
	return &GormEntryInvoiceRepository{db: db}
}

// Save creates or updates an entry invoice with its items. Items are
// replaced wholesale so the stored lines always match the aggregate.
func (r *GormEntryInvoiceRepository) Save(ctx context.Context, invoice *fiscal.EntryInvoice) error {
	model := models.EntryInvoiceModelFromDomain(invoice)
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Where("invoice_id = ?", invoice.ID).
			Delete(&models.EntryInvoiceItemModel{}).Error; err != nil {
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

// FindByKey finds an entry invoice by its composite key
func (r *GormEntryInvoiceRepository) FindByKey(ctx context.Context, key fiscal.InvoiceKey) (*fiscal.EntryInvoice, error) {
	var model models.EntryInvoiceModel
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

// ExistsByKey checks if an entry invoice with the composite key exists
func (r *GormEntryInvoiceRepository) ExistsByKey(ctx context.Context, key fiscal.InvoiceKey) (bool, error) {
	var count int64
	if err := r.keyScope(r.db.WithContext(ctx).Model(&models.EntryInvoiceModel{}), key).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// FindAll finds entry invoices matching the filter and the total count
func (r *GormEntryInvoiceRepository) FindAll(ctx context.Context, filter shared.Filter) ([]*fiscal.EntryInvoice, int64, error) {
	return r.findWithConditions(ctx, r.db.WithContext(ctx).Model(&models.EntryInvoiceModel{}), filter)
}

// FindBySupplier finds entry invoices for a supplier
func (r *GormEntryInvoiceRepository) FindBySupplier(ctx context.Context, supplierID uuid.UUID, filter shared.Filter) ([]*fiscal.EntryInvoice, int64, error) {
	query := r.db.WithContext(ctx).Model(&models.EntryInvoiceModel{}).
		Where("supplier_id = ?", supplierID)
	return r.findWithConditions(ctx, query, filter)
}

// DeleteByKey removes an entry invoice and its items by the composite key
func (r *GormEntryInvoiceRepository) DeleteByKey(ctx context.Context, key fiscal.InvoiceKey) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var model models.EntryInvoiceModel
		if err := r.keyScope(tx, key).Select("id").First(&model).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return shared.ErrNotFound
			}
			return err
		}
		if err := tx.
			Where("invoice_id = ?", model.ID).
			Delete(&models.EntryInvoiceItemModel{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.EntryInvoiceModel{}, "id = ?", model.ID).Error
	})
}

// keyScope narrows a query to one composite document key
func (r *GormEntryInvoiceRepository) keyScope(query *gorm.DB, key fiscal.InvoiceKey) *gorm.DB {
	return query.Where(
		"number = ? AND model = ? AND series = ? AND supplier_id = ?",
		key.Number, key.Model, key.Series, key.PartnerID,
	)
}

// findWithConditions applies the filter, counts and loads one page
func (r *GormEntryInvoiceRepository) findWithConditions(ctx context.Context, query *gorm.DB, filter shared.Filter) ([]*fiscal.EntryInvoice, int64, error) {
	query = r.applyFilterWithoutPagination(query, filter)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	orderBy := ValidateSortField(filter.OrderBy, InvoiceSortFields, "emission_date")
	orderDir := ValidateSortOrder(filter.OrderDir)

	var invoiceModels []models.EntryInvoiceModel
	if err := query.
		Preload("Items").
		Offset(filter.Offset()).Limit(filter.Limit()).
		Order(orderBy + " " + orderDir).
		Find(&invoiceModels).Error; err != nil {
		return nil, 0, err
	}

	invoices := make([]*fiscal.EntryInvoice, len(invoiceModels))
	for i := range invoiceModels {
		invoices[i] = invoiceModels[i].ToDomain()
	}
	return invoices, total, nil
}

// applyFilterWithoutPagination applies filter options without pagination
func (r *GormEntryInvoiceRepository) applyFilterWithoutPagination(query *gorm.DB, filter shared.Filter) *gorm.DB {
	if filter.Search != "" {
		searchPattern := "%" + filter.Search + "%"
		query = query.Where("number ILIKE ? OR supplier_name ILIKE ?", searchPattern, searchPattern)
	}
	for key, value := range filter.Filters {
		switch key {
		case "supplier_id":
			query = query.Where("supplier_id = ?", value)
		case "emitted_before":
			query = query.Where("emission_date < ?", value)
		case "emitted_after":
			query = query.Where("emission_date >= ?", value)
		}
	}
	return query
}
