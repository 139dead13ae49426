package partner

import (
	"context"

	"github.com/pizzaria/backend/internal/domain/geo"
	"github.com/pizzaria/backend/internal/domain/partner"
	"github.com/pizzaria/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// SupplierService handles supplier-related business operations
type SupplierService struct {
	supplierRepo partner.SupplierRepository
	cityRepo     geo.CityRepository
}

// NewSupplierService creates a new SupplierService
func NewSupplierService(supplierRepo partner.SupplierRepository, cityRepo geo.CityRepository) *SupplierService {
	return &SupplierService{supplierRepo: supplierRepo, cityRepo: cityRepo}
}

// Create creates a new supplier
func (s *SupplierService) Create(ctx context.Context, req CreateSupplierRequest) (*SupplierResponse, error) {
	exists, err := s.supplierRepo.ExistsByCode(ctx, req.Code)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, shared.NewDomainError("ALREADY_EXISTS", "Supplier with this code already exists")
	}

	supplier, err := partner.NewSupplier(req.Code, req.Name, req.CNPJ)
	if err != nil {
		return nil, err
	}

	if supplier.CNPJ != "" {
		exists, err = s.supplierRepo.ExistsByCNPJ(ctx, supplier.CNPJ)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, shared.NewDomainError("ALREADY_EXISTS", "Supplier with this CNPJ already exists")
		}
	}

	if req.TradeName != "" {
		if err := supplier.Update(req.Name, req.TradeName); err != nil {
			return nil, err
		}
	}
	if req.StateRegistration != "" {
		if err := supplier.SetStateRegistration(req.StateRegistration); err != nil {
			return nil, err
		}
	}
	if req.ContactName != "" || req.Phone != "" || req.Email != "" {
		if err := supplier.SetContact(req.ContactName, req.Phone, req.Email); err != nil {
			return nil, err
		}
	}
	if req.Address != "" || req.CityID != nil {
		if err := s.checkCity(ctx, req.CityID); err != nil {
			return nil, err
		}
		if err := supplier.SetAddress(req.Address, req.CityID); err != nil {
			return nil, err
		}
	}
	if req.Notes != "" {
		supplier.SetNotes(req.Notes)
	}

	if err := s.supplierRepo.Save(ctx, supplier); err != nil {
		return nil, err
	}

	response := s.toResponse(ctx, supplier)
	return &response, nil
}

// GetByID retrieves a supplier by ID
func (s *SupplierService) GetByID(ctx context.Context, id uuid.UUID) (*SupplierResponse, error) {
	supplier, err := s.supplierRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	response := s.toResponse(ctx, supplier)
	return &response, nil
}

// GetByCode retrieves a supplier by code
func (s *SupplierService) GetByCode(ctx context.Context, code string) (*SupplierResponse, error) {
	supplier, err := s.supplierRepo.FindByCode(ctx, code)
	if err != nil {
		return nil, err
	}

	response := s.toResponse(ctx, supplier)
	return &response, nil
}

// List retrieves suppliers with filtering and pagination
func (s *SupplierService) List(ctx context.Context, filter ListFilter) ([]SupplierResponse, int64, error) {
	domainFilter := buildFilter(filter)

	suppliers, err := s.supplierRepo.FindAll(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.supplierRepo.Count(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	responses := make([]SupplierResponse, 0, len(suppliers))
	for i := range suppliers {
		responses = append(responses, s.toResponse(ctx, &suppliers[i]))
	}
	return responses, total, nil
}

// ListActive retrieves only active suppliers
func (s *SupplierService) ListActive(ctx context.Context, filter ListFilter) ([]SupplierResponse, error) {
	suppliers, err := s.supplierRepo.FindByStatus(ctx, partner.StatusActive, buildFilter(filter))
	if err != nil {
		return nil, err
	}

	responses := make([]SupplierResponse, 0, len(suppliers))
	for i := range suppliers {
		responses = append(responses, s.toResponse(ctx, &suppliers[i]))
	}
	return responses, nil
}

// Update updates a supplier
func (s *SupplierService) Update(ctx context.Context, id uuid.UUID, req UpdateSupplierRequest) (*SupplierResponse, error) {
	supplier, err := s.supplierRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil || req.TradeName != nil {
		name := supplier.Name
		tradeName := supplier.TradeName
		if req.Name != nil {
			name = *req.Name
		}
		if req.TradeName != nil {
			tradeName = *req.TradeName
		}
		if err := supplier.Update(name, tradeName); err != nil {
			return nil, err
		}
	}

	if req.CNPJ != nil {
		previous := supplier.CNPJ
		if err := supplier.SetCNPJ(*req.CNPJ); err != nil {
			return nil, err
		}
		if supplier.CNPJ != "" && supplier.CNPJ != previous {
			exists, err := s.supplierRepo.ExistsByCNPJ(ctx, supplier.CNPJ)
			if err != nil {
				return nil, err
			}
			if exists {
				return nil, shared.NewDomainError("ALREADY_EXISTS", "Supplier with this CNPJ already exists")
			}
		}
	}

	if req.StateRegistration != nil {
		if err := supplier.SetStateRegistration(*req.StateRegistration); err != nil {
			return nil, err
		}
	}

	if req.ContactName != nil || req.Phone != nil || req.Email != nil {
		contactName := supplier.ContactName
		phone := supplier.Phone
		email := supplier.Email
		if req.ContactName != nil {
			contactName = *req.ContactName
		}
		if req.Phone != nil {
			phone = *req.Phone
		}
		if req.Email != nil {
			email = *req.Email
		}
		if err := supplier.SetContact(contactName, phone, email); err != nil {
			return nil, err
		}
	}

	if req.Address != nil || req.CityID != nil {
		address := supplier.Address
		cityID := supplier.CityID
		if req.Address != nil {
			address = *req.Address
		}
		if req.CityID != nil {
			cityID = req.CityID
		}
		if err := s.checkCity(ctx, cityID); err != nil {
			return nil, err
		}
		if err := supplier.SetAddress(address, cityID); err != nil {
			return nil, err
		}
	}

	if req.Notes != nil {
		supplier.SetNotes(*req.Notes)
	}

	if err := s.supplierRepo.Save(ctx, supplier); err != nil {
		return nil, err
	}

	response := s.toResponse(ctx, supplier)
	return &response, nil
}

// Activate sets the supplier to active
func (s *SupplierService) Activate(ctx context.Context, id uuid.UUID) (*SupplierResponse, error) {
	supplier, err := s.supplierRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := supplier.Activate(); err != nil {
		return nil, err
	}
	if err := s.supplierRepo.Save(ctx, supplier); err != nil {
		return nil, err
	}

	response := s.toResponse(ctx, supplier)
	return &response, nil
}

// Deactivate sets the supplier to inactive
func (s *SupplierService) Deactivate(ctx context.Context, id uuid.UUID) (*SupplierResponse, error) {
	supplier, err := s.supplierRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := supplier.Deactivate(); err != nil {
		return nil, err
	}
	if err := s.supplierRepo.Save(ctx, supplier); err != nil {
		return nil, err
	}

	response := s.toResponse(ctx, supplier)
	return &response, nil
}

// Delete removes a supplier. Deletion is rejected while payables or entry
// invoices reference it.
func (s *SupplierService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.supplierRepo.FindByID(ctx, id); err != nil {
		return err
	}

	hasDocs, err := s.supplierRepo.HasFinancialDocuments(ctx, id)
	if err != nil {
		return err
	}
	if hasDocs {
		return shared.NewDomainError("HAS_DEPENDENTS", "Supplier has financial documents and cannot be deleted")
	}

	return s.supplierRepo.Delete(ctx, id)
}

func (s *SupplierService) checkCity(ctx context.Context, cityID *uuid.UUID) error {
	if cityID == nil {
		return nil
	}
	if _, err := s.cityRepo.FindByID(ctx, *cityID); err != nil {
		if err == shared.ErrNotFound {
			return shared.NewDomainError("INVALID_CITY", "Referenced city does not exist")
		}
		return err
	}
	return nil
}

func (s *SupplierService) toResponse(ctx context.Context, supplier *partner.Supplier) SupplierResponse {
	cityName := ""
	if supplier.CityID != nil {
		if city, err := s.cityRepo.FindByID(ctx, *supplier.CityID); err == nil {
			cityName = city.Name
		}
	}
	return ToSupplierResponse(supplier, cityName)
}
