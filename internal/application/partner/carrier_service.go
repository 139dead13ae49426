package partner

import (
	"context"

	"github.com/pizzaria/backend/internal/domain/partner"
	"github.com/pizzaria/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// CarrierService handles carrier-related business operations
type CarrierService struct {
	carrierRepo partner.CarrierRepository
}

// NewCarrierService creates a new CarrierService
func NewCarrierService(carrierRepo partner.CarrierRepository) *CarrierService {
	return &CarrierService{carrierRepo: carrierRepo}
}

// Create creates a new carrier
func (s *CarrierService) Create(ctx context.Context, req CreateCarrierRequest) (*CarrierResponse, error) {
	exists, err := s.carrierRepo.ExistsByCode(ctx, req.Code)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, shared.NewDomainError("ALREADY_EXISTS", "Carrier with this code already exists")
	}

	carrier, err := partner.NewCarrier(req.Code, req.Name, req.CNPJ)
	if err != nil {
		return nil, err
	}

	if req.Phone != "" || req.Email != "" || req.Address != "" || req.CityID != nil {
		if err := carrier.Update(req.Name, req.Phone, req.Email, req.Address, req.CityID); err != nil {
			return nil, err
		}
	}

	if err := s.carrierRepo.Save(ctx, carrier); err != nil {
		return nil, err
	}

	response := ToCarrierResponse(carrier)
	return &response, nil
}

// GetByID retrieves a carrier by ID
func (s *CarrierService) GetByID(ctx context.Context, id uuid.UUID) (*CarrierResponse, error) {
	carrier, err := s.carrierRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	response := ToCarrierResponse(carrier)
	return &response, nil
}

// List retrieves carriers with filtering and pagination
func (s *CarrierService) List(ctx context.Context, filter ListFilter) ([]CarrierResponse, int64, error) {
	domainFilter := buildFilter(filter)

	carriers, err := s.carrierRepo.FindAll(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.carrierRepo.Count(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	responses := make([]CarrierResponse, 0, len(carriers))
	for i := range carriers {
		responses = append(responses, ToCarrierResponse(&carriers[i]))
	}
	return responses, total, nil
}

// Update updates a carrier
func (s *CarrierService) Update(ctx context.Context, id uuid.UUID, req UpdateCarrierRequest) (*CarrierResponse, error) {
	carrier, err := s.carrierRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	name := carrier.Name
	phone := carrier.Phone
	email := carrier.Email
	address := carrier.Address
	cityID := carrier.CityID
	if req.Name != nil {
		name = *req.Name
	}
	if req.Phone != nil {
		phone = *req.Phone
	}
	if req.Email != nil {
		email = *req.Email
	}
	if req.Address != nil {
		address = *req.Address
	}
	if req.CityID != nil {
		cityID = req.CityID
	}

	if err := carrier.Update(name, phone, email, address, cityID); err != nil {
		return nil, err
	}
	if err := s.carrierRepo.Save(ctx, carrier); err != nil {
		return nil, err
	}

	response := ToCarrierResponse(carrier)
	return &response, nil
}

// Activate sets the carrier to active
func (s *CarrierService) Activate(ctx context.Context, id uuid.UUID) (*CarrierResponse, error) {
	carrier, err := s.carrierRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := carrier.Activate(); err != nil {
		return nil, err
	}
	if err := s.carrierRepo.Save(ctx, carrier); err != nil {
		return nil, err
	}

	response := ToCarrierResponse(carrier)
	return &response, nil
}

// Deactivate sets the carrier to inactive
func (s *CarrierService) Deactivate(ctx context.Context, id uuid.UUID) (*CarrierResponse, error) {
	carrier, err := s.carrierRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := carrier.Deactivate(); err != nil {
		return nil, err
	}
	if err := s.carrierRepo.Save(ctx, carrier); err != nil {
		return nil, err
	}

	response := ToCarrierResponse(carrier)
	return &response, nil
}

// Delete removes a carrier. Deletion is rejected while vehicles belong to it.
func (s *CarrierService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.carrierRepo.FindByID(ctx, id); err != nil {
		return err
	}

	hasVehicles, err := s.carrierRepo.HasVehicles(ctx, id)
	if err != nil {
		return err
	}
	if hasVehicles {
		return shared.NewDomainError("HAS_DEPENDENTS", "Carrier has vehicles and cannot be deleted")
	}

	return s.carrierRepo.Delete(ctx, id)
}
