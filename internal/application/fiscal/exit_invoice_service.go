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

// ExitInvoiceService handles exit invoice operations
type ExitInvoiceService struct {
	invoiceRepo   fiscal.ExitInvoiceRepository
	clientRepo    partner.ClientRepository
	carrierRepo   partner.CarrierRepository
	vehicleRepo   partner.VehicleRepository
	productRepo   catalog.ProductRepository
	conditionRepo finance.PaymentConditionRepository
}

// NewExitInvoiceService creates a new ExitInvoiceService
func NewExitInvoiceService(
	invoiceRepo fiscal.ExitInvoiceRepository,
	clientRepo partner.ClientRepository,
	carrierRepo partner.CarrierRepository,
	vehicleRepo partner.VehicleRepository,
	productRepo catalog.ProductRepository,
	conditionRepo finance.PaymentConditionRepository,
) *ExitInvoiceService {
	return &ExitInvoiceService{
		invoiceRepo:   invoiceRepo,
		clientRepo:    clientRepo,
		carrierRepo:   carrierRepo,
		vehicleRepo:   vehicleRepo,
		productRepo:   productRepo,
		conditionRepo: conditionRepo,
	}
}

func (s *ExitInvoiceService) resolveItems(ctx context.Context, requests []InvoiceItemRequest) ([]fiscal.InvoiceItem, error) {
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

func (s *ExitInvoiceService) checkCondition(ctx context.Context, conditionID *uuid.UUID) error {
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

// checkShipment validates the carrier and vehicle pair. A vehicle must
// belong to the carrier it is declared with.
func (s *ExitInvoiceService) checkShipment(ctx context.Context, carrierID, vehicleID *uuid.UUID) error {
	if vehicleID != nil && carrierID == nil {
		return shared.NewDomainError("INVALID_SHIPMENT", "Vehicle requires a carrier")
	}
	if carrierID != nil {
		if _, err := s.carrierRepo.FindByID(ctx, *carrierID); err != nil {
			if err == shared.ErrNotFound {
				return shared.NewDomainError("INVALID_SHIPMENT", "Referenced carrier does not exist")
			}
			return err
		}
	}
	if vehicleID != nil {
		vehicle, err := s.vehicleRepo.FindByID(ctx, *vehicleID)
		if err != nil {
			if err == shared.ErrNotFound {
				return shared.NewDomainError("INVALID_SHIPMENT", "Referenced vehicle does not exist")
			}
			return err
		}
		if vehicle.CarrierID != *carrierID {
			return shared.NewDomainError("INVALID_SHIPMENT", "Vehicle does not belong to the declared carrier")
		}
	}
	return nil
}

// Create registers a client invoice. The composite key must not collide
// with an existing document.
func (s *ExitInvoiceService) Create(ctx context.Context, req CreateExitInvoiceRequest) (*ExitInvoiceResponse, error) {
	client, err := s.clientRepo.FindByID(ctx, req.ClientID)
	if err != nil {
		return nil, err
	}

	key, err := fiscal.NewInvoiceKey(req.Number, req.Model, req.Series, client.ID)
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
	if err := s.checkShipment(ctx, req.CarrierID, req.VehicleID); err != nil {
		return nil, err
	}

	items, err := s.resolveItems(ctx, req.Items)
	if err != nil {
		return nil, err
	}

	invoice, err := fiscal.NewExitInvoice(
		key,
		client.Name,
		req.EmissionDate, req.DepartureDate,
		items,
		req.ProductTotal, req.Freight, req.Insurance, req.OtherExpenses, req.Discount,
		req.PaymentConditionID, req.CarrierID, req.VehicleID,
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

	response := ToExitInvoiceResponse(invoice)
	return &response, nil
}

// GetByKey retrieves an exit invoice by its full composite key
func (s *ExitInvoiceService) GetByKey(ctx context.Context, key fiscal.InvoiceKey) (*ExitInvoiceResponse, error) {
	invoice, err := s.invoiceRepo.FindByKey(ctx, key)
	if err != nil {
		return nil, err
	}

	response := ToExitInvoiceResponse(invoice)
	return &response, nil
}

// List retrieves exit invoices with pagination
func (s *ExitInvoiceService) List(ctx context.Context, filter ListFilter) ([]ExitInvoiceResponse, int64, error) {
	invoices, total, err := s.invoiceRepo.FindAll(ctx, buildFilter(filter))
	if err != nil {
		return nil, 0, err
	}

	responses := make([]ExitInvoiceResponse, 0, len(invoices))
	for _, inv := range invoices {
		responses = append(responses, ToExitInvoiceResponse(inv))
	}
	return responses, total, nil
}

// ListByClient retrieves exit invoices of one client
func (s *ExitInvoiceService) ListByClient(ctx context.Context, clientID uuid.UUID, filter ListFilter) ([]ExitInvoiceResponse, int64, error) {
	if _, err := s.clientRepo.FindByID(ctx, clientID); err != nil {
		return nil, 0, err
	}

	invoices, total, err := s.invoiceRepo.FindByClient(ctx, clientID, buildFilter(filter))
	if err != nil {
		return nil, 0, err
	}

	responses := make([]ExitInvoiceResponse, 0, len(invoices))
	for _, inv := range invoices {
		responses = append(responses, ToExitInvoiceResponse(inv))
	}
	return responses, total, nil
}

// Update changes the mutable fields of an exit invoice. The composite key
// identifies the record and is never rewritten.
func (s *ExitInvoiceService) Update(ctx context.Context, key fiscal.InvoiceKey, req UpdateExitInvoiceRequest) (*ExitInvoiceResponse, error) {
	invoice, err := s.invoiceRepo.FindByKey(ctx, key)
	if err != nil {
		return nil, err
	}

	if req.EmissionDate != nil || req.DepartureDate != nil {
		emission := invoice.EmissionDate
		departure := invoice.DepartureDate
		if req.EmissionDate != nil {
			emission = *req.EmissionDate
		}
		if req.DepartureDate != nil {
			departure = *req.DepartureDate
		}
		if err := invoice.SetDates(emission, departure); err != nil {
			return nil, err
		}
	}

	if req.PaymentConditionID != nil {
		if err := s.checkCondition(ctx, req.PaymentConditionID); err != nil {
			return nil, err
		}
		invoice.SetPaymentCondition(req.PaymentConditionID)
	}

	if req.CarrierID != nil || req.VehicleID != nil {
		carrierID := invoice.CarrierID
		vehicleID := invoice.VehicleID
		if req.CarrierID != nil {
			carrierID = req.CarrierID
		}
		if req.VehicleID != nil {
			vehicleID = req.VehicleID
		}
		if err := s.checkShipment(ctx, carrierID, vehicleID); err != nil {
			return nil, err
		}
		if err := invoice.SetShipment(carrierID, vehicleID); err != nil {
			return nil, err
		}
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

	response := ToExitInvoiceResponse(invoice)
	return &response, nil
}

// Delete removes an exit invoice by its full composite key
func (s *ExitInvoiceService) Delete(ctx context.Context, key fiscal.InvoiceKey) error {
	if _, err := s.invoiceRepo.FindByKey(ctx, key); err != nil {
		return err
	}
	return s.invoiceRepo.DeleteByKey(ctx, key)
}
