package partner

import (
	"context"

	"github.com/pizzaria/backend/internal/domain/partner"
	"github.com/pizzaria/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// VehicleService handles vehicle-related business operations
type VehicleService struct {
	vehicleRepo partner.VehicleRepository
	carrierRepo partner.CarrierRepository
}

// NewVehicleService creates a new VehicleService
func NewVehicleService(vehicleRepo partner.VehicleRepository, carrierRepo partner.CarrierRepository) *VehicleService {
	return &VehicleService{vehicleRepo: vehicleRepo, carrierRepo: carrierRepo}
}

// Create creates a new vehicle for an existing carrier
func (s *VehicleService) Create(ctx context.Context, req CreateVehicleRequest) (*VehicleResponse, error) {
	carrier, err := s.carrierRepo.FindByID(ctx, req.CarrierID)
	if err != nil {
		return nil, err
	}

	vehicle, err := partner.NewVehicle(req.Plate, req.Description, req.CarrierID)
	if err != nil {
		return nil, err
	}

	exists, err := s.vehicleRepo.ExistsByPlate(ctx, vehicle.Plate)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, shared.NewDomainError("ALREADY_EXISTS", "Vehicle with this plate already exists")
	}

	if err := s.vehicleRepo.Save(ctx, vehicle); err != nil {
		return nil, err
	}

	response := ToVehicleResponse(vehicle, carrier.Name)
	return &response, nil
}

// GetByID retrieves a vehicle by ID
func (s *VehicleService) GetByID(ctx context.Context, id uuid.UUID) (*VehicleResponse, error) {
	vehicle, err := s.vehicleRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	response := s.toResponse(ctx, vehicle)
	return &response, nil
}

// GetByPlate retrieves a vehicle by its normalized plate
func (s *VehicleService) GetByPlate(ctx context.Context, plate string) (*VehicleResponse, error) {
	vehicle, err := s.vehicleRepo.FindByPlate(ctx, plate)
	if err != nil {
		return nil, err
	}

	response := s.toResponse(ctx, vehicle)
	return &response, nil
}

// ListByCarrier retrieves all vehicles of one carrier
func (s *VehicleService) ListByCarrier(ctx context.Context, carrierID uuid.UUID) ([]VehicleResponse, error) {
	carrier, err := s.carrierRepo.FindByID(ctx, carrierID)
	if err != nil {
		return nil, err
	}

	vehicles, err := s.vehicleRepo.FindByCarrier(ctx, carrierID)
	if err != nil {
		return nil, err
	}

	responses := make([]VehicleResponse, 0, len(vehicles))
	for i := range vehicles {
		responses = append(responses, ToVehicleResponse(&vehicles[i], carrier.Name))
	}
	return responses, nil
}

// List retrieves vehicles with filtering and pagination
func (s *VehicleService) List(ctx context.Context, filter ListFilter) ([]VehicleResponse, int64, error) {
	domainFilter := buildFilter(filter)

	vehicles, err := s.vehicleRepo.FindAll(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.vehicleRepo.Count(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	responses := make([]VehicleResponse, 0, len(vehicles))
	for i := range vehicles {
		responses = append(responses, s.toResponse(ctx, &vehicles[i]))
	}
	return responses, total, nil
}

// Update updates a vehicle, possibly reassigning it to another carrier
func (s *VehicleService) Update(ctx context.Context, id uuid.UUID, req UpdateVehicleRequest) (*VehicleResponse, error) {
	vehicle, err := s.vehicleRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	carrier, err := s.carrierRepo.FindByID(ctx, req.CarrierID)
	if err != nil {
		return nil, err
	}

	if err := vehicle.Update(req.Description, req.CarrierID); err != nil {
		return nil, err
	}
	if err := s.vehicleRepo.Save(ctx, vehicle); err != nil {
		return nil, err
	}

	response := ToVehicleResponse(vehicle, carrier.Name)
	return &response, nil
}

// Activate sets the vehicle to active
func (s *VehicleService) Activate(ctx context.Context, id uuid.UUID) (*VehicleResponse, error) {
	vehicle, err := s.vehicleRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := vehicle.Activate(); err != nil {
		return nil, err
	}
	if err := s.vehicleRepo.Save(ctx, vehicle); err != nil {
		return nil, err
	}

	response := s.toResponse(ctx, vehicle)
	return &response, nil
}

// Deactivate sets the vehicle to inactive
func (s *VehicleService) Deactivate(ctx context.Context, id uuid.UUID) (*VehicleResponse, error) {
	vehicle, err := s.vehicleRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := vehicle.Deactivate(); err != nil {
		return nil, err
	}
	if err := s.vehicleRepo.Save(ctx, vehicle); err != nil {
		return nil, err
	}

	response := s.toResponse(ctx, vehicle)
	return &response, nil
}

// Delete removes a vehicle
func (s *VehicleService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.vehicleRepo.FindByID(ctx, id); err != nil {
		return err
	}
	return s.vehicleRepo.Delete(ctx, id)
}

func (s *VehicleService) toResponse(ctx context.Context, vehicle *partner.Vehicle) VehicleResponse {
	carrierName := ""
	if carrier, err := s.carrierRepo.FindByID(ctx, vehicle.CarrierID); err == nil {
		carrierName = carrier.Name
	}
	return ToVehicleResponse(vehicle, carrierName)
}
