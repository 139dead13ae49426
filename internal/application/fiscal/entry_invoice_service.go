package fiscal

import (
	"context"

	"github.com/pizzaria/backend/internal/domain/catalog"
	"github.com/pizzaria/backend/internal/domain/finance"
	"github.com/pizzaria/backend/internal/domain/fiscal"
	"github.com/pizzaria/backend/internal/domain/partner"
	"github.com/pizzaria/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// EntryInvoiceService handles entry invoice operations
type EntryInvoiceService struct {
	invoiceRepo   fiscal.EntryInvoiceRepository
	supplierRepo  partner.SupplierRepository
	productRepo   catalog.ProductRepository
	conditionRepo finance.PaymentConditionRepository
}

// NewEntryInvoiceService creates a new EntryInvoiceService
func NewEntryInvoiceService(
	invoiceRepo fiscal.EntryInvoiceRepository,
	supplierRepo partner.SupplierRepository,
	productRepo catalog.ProductRepository,
	conditionRepo finance.PaymentConditionRepository,
) *EntryInvoiceService {
	return &EntryInvoiceService{
		invoiceRepo:   invoiceRepo,
		supplierRepo:  supplierRepo,
		productRepo:   productRepo,
		conditionRepo: conditionRepo,
	}
}

// resolveItems turns item requests into domain line items, resolving each
// product reference and line number in request order.
func (s *EntryInvoiceService) resolveItems(ctx context.Context, requests []InvoiceItemRequest) ([]fiscal.InvoiceItem, error) {
	items := make([]fiscal.InvoiceItem, 0, len(requests))
	for i, req := range requests {
		product, err := s.productRepo.FindByID(ctx, req.ProductID)
		if err != nil {
			if err == shared.ErrNotFound {
				return nil, shared.NewDomainError("INVALID_PRODUCT", "Referenced product does not exist")
			}
			return nil, err
		}

		discount := decimal.Zero
		if req.Discount != nil {
			discount = *req.Discount
		}
		item, err := fiscal.NewInvoiceItem(i+1, product.ID, product.Name, req.Quantity, req.UnitPrice, discount)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}

func (s *EntryInvoiceService) checkCondition(ctx context.Context, conditionID *uuid.UUID) error {
	if conditionID == nil {
		return nil
	}
	condition, err := s.conditionRepo.FindByID(ctx, *conditionID)
	if err != nil {
		if err == shared.ErrNotFound {
			return shared.NewDomainError("INVALID_PAYMENT_CONDITION", "Referenced payment condition does not exist")
		}
		return err
	}
	if !condition.Active {
		return shared.NewDomainError("INVALID_PAYMENT_CONDITION", "Referenced payment condition is inactive")
	}
	return nil
}

// Create registers a supplier invoice. The composite key must not collide
// with an existing document.
func (s *EntryInvoiceService) Create(ctx context.Context, req CreateEntryInvoiceRequest) (*EntryInvoiceResponse, error) {
	supplier, err := s.supplierRepo.FindByID(ctx, req.SupplierID)
	if err != nil {
		return nil, err
	}

	key, err := fiscal.NewInvoiceKey(req.Number, req.Model, req.Series, supplier.ID)
	if err != nil {
		return nil, err
	}

	exists, err := s.invoiceRepo.ExistsByKey(ctx, key)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, shared.NewDomainError("ALREADY_EXISTS", "Invoice with key "+key.String()+" already exists")
	}

	if err := s.checkCondition(ctx, req.PaymentConditionID); err != nil {
		return nil, err
	}

	items, err := s.resolveItems(ctx, req.Items)
	if err != nil {
		return nil, err
	}

	invoice, err := fiscal.NewEntryInvoice(
		key,
		supplier.Name,
		req.EmissionDate, req.ArrivalDate,
		items,
		req.ProductTotal, req.Freight, req.Insurance, req.OtherExpenses, req.Discount,
		req.PaymentConditionID,
	)
	if err != nil {
		return nil, err
	}
	if req.Notes != "" {
		invoice.SetNotes(req.Notes)
	}

	if err := s.invoiceRepo.Save(ctx, invoice); err != nil {
		return nil, err
	}

	response := ToEntryInvoiceResponse(invoice)
	return &response, nil
}

// GetByKey retrieves an entry invoice by its full composite key
func (s *EntryInvoiceService) GetByKey(ctx context.Context, key fiscal.InvoiceKey) (*EntryInvoiceResponse, error) {
	invoice, err := s.invoiceRepo.FindByKey(ctx, key)
	if err != nil {
		return nil, err
	}

	response := ToEntryInvoiceResponse(invoice)
	return &response, nil
}

// List retrieves entry invoices with pagination
func (s *EntryInvoiceService) List(ctx context.Context, filter ListFilter) ([]EntryInvoiceResponse, int64, error) {
	invoices, total, err := s.invoiceRepo.FindAll(ctx, buildFilter(filter))
	if err != nil {
		return nil, 0, err
	}

	responses := make([]EntryInvoiceResponse, 0, len(invoices))
	for _, inv := range invoices {
		responses = append(responses, ToEntryInvoiceResponse(inv))
	}
	return responses, total, nil
}

// ListBySupplier retrieves entry invoices of one supplier
func (s *EntryInvoiceService) ListBySupplier(ctx context.Context, supplierID uuid.UUID, filter ListFilter) ([]EntryInvoiceResponse, int64, error) {
	if _, err := s.supplierRepo.FindByID(ctx, supplierID); err != nil {
		return nil, 0, err
	}

	invoices, total, err := s.invoiceRepo.FindBySupplier(ctx, supplierID, buildFilter(filter))
	if err != nil {
		return nil, 0, err
	}

	responses := make([]EntryInvoiceResponse, 0, len(invoices))
	for _, inv := range invoices {
		responses = append(responses, ToEntryInvoiceResponse(inv))
	}
	return responses, total, nil
}

// Update changes the mutable fields of an entry invoice. The composite key
// identifies the record and is never rewritten.
func (s *EntryInvoiceService) Update(ctx context.Context, key fiscal.InvoiceKey, req UpdateEntryInvoiceRequest) (*EntryInvoiceResponse, error) {
	invoice, err := s.invoiceRepo.FindByKey(ctx, key)
	if err != nil {
		return nil, err
	}

	if req.EmissionDate != nil || req.ArrivalDate != nil {
		emission := invoice.EmissionDate
		arrival := invoice.ArrivalDate
		if req.EmissionDate != nil {
			emission = *req.EmissionDate
		}
		if req.ArrivalDate != nil {
			arrival = *req.ArrivalDate
		}
		if err := invoice.SetDates(emission, arrival); err != nil {
			return nil, err
		}
	}

	if req.PaymentConditionID != nil {
		if err := s.checkCondition(ctx, req.PaymentConditionID); err != nil {
			return nil, err
		}
		invoice.SetPaymentCondition(req.PaymentConditionID)
	}

	if req.Items != nil || req.ProductTotal != nil || req.Freight != nil ||
		req.Insurance != nil || req.OtherExpenses != nil || req.Discount != nil {
		items := invoice.Items
		if req.Items != nil {
			items, err = s.resolveItems(ctx, req.Items)
			if err != nil {
				return nil, err
			}
		}
		productTotal := invoice.ProductTotal
		freight := invoice.Freight
		insurance := invoice.Insurance
		expenses := invoice.OtherExpenses
		discount := invoice.Discount
		if req.ProductTotal != nil {
			productTotal = *req.ProductTotal
		}
		if req.Freight != nil {
			freight = *req.Freight
		}
		if req.Insurance != nil {
			insurance = *req.Insurance
		}
		if req.OtherExpenses != nil {
			expenses = *req.OtherExpenses
		}
		if req.Discount != nil {
			discount = *req.Discount
		}
		if err := invoice.ReplaceItems(items, productTotal, freight, insurance, expenses, discount); err != nil {
			return nil, err
		}
	}

	if req.Notes != nil {
		invoice.SetNotes(*req.Notes)
	}

	if err := s.invoiceRepo.Save(ctx, invoice); err != nil {
		return nil, err
	}

	response := ToEntryInvoiceResponse(invoice)
	return &response, nil
}

// Delete removes an entry invoice by its full composite key
func (s *EntryInvoiceService) Delete(ctx context.Context, key fiscal.InvoiceKey) error {
	if _, err := s.invoiceRepo.FindByKey(ctx, key); err != nil {
		return err
	}
	return s.invoiceRepo.DeleteByKey(ctx, key)
}
