package geo

import (
	"context"

	"github.com/pizzaria/backend/internal/domain/geo"
	"github.com/pizzaria/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// CityService handles city-related business operations
type CityService struct {
	cityRepo    geo.CityRepository
	stateRepo   geo.StateRepository
	countryRepo geo.CountryRepository
}

// NewCityService creates a new CityService
func NewCityService(cityRepo geo.CityRepository, stateRepo geo.StateRepository, countryRepo geo.CountryRepository) *CityService {
	return &CityService{cityRepo: cityRepo, stateRepo: stateRepo, countryRepo: countryRepo}
}

// Create creates a new city under an existing state
func (s *CityService) Create(ctx context.Context, req CreateCityRequest) (*CityResponse, error) {
	state, err := s.stateRepo.FindByID(ctx, req.StateID)
	if err != nil {
		return nil, err
	}

	city, err := geo.NewCity(req.Name, req.IBGECode, req.StateID)
	if err != nil {
		return nil, err
	}

	if err := s.cityRepo.Save(ctx, city); err != nil {
		return nil, err
	}

	response := s.toResponse(ctx, city, state)
	return &response, nil
}

// GetByID retrieves a city with its state and country resolved transitively
func (s *CityService) GetByID(ctx context.Context, id uuid.UUID) (*CityResponse, error) {
	city, err := s.cityRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	state, err := s.stateRepo.FindByID(ctx, city.StateID)
	if err != nil {
		state = nil
	}

	response := s.toResponse(ctx, city, state)
	return &response, nil
}

// ListByState retrieves all cities of one state
func (s *CityService) ListByState(ctx context.Context, stateID uuid.UUID) ([]CityResponse, error) {
	state, err := s.stateRepo.FindByID(ctx, stateID)
	if err != nil {
		return nil, err
	}

	cities, err := s.cityRepo.FindByState(ctx, stateID)
	if err != nil {
		return nil, err
	}

	responses := make([]CityResponse, 0, len(cities))
	for i := range cities {
		responses = append(responses, s.toResponse(ctx, &cities[i], state))
	}
	return responses, nil
}

// List retrieves cities with filtering and pagination
func (s *CityService) List(ctx context.Context, filter ListFilter) ([]CityResponse, int64, error) {
	domainFilter := buildFilter(filter, "name", "asc")

	cities, err := s.cityRepo.FindAll(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.cityRepo.Count(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	responses := make([]CityResponse, 0, len(cities))
	for i := range cities {
		state, err := s.stateRepo.FindByID(ctx, cities[i].StateID)
		if err != nil {
			state = nil
		}
		responses = append(responses, s.toResponse(ctx, &cities[i], state))
	}
	return responses, total, nil
}

// Update updates a city, possibly reassigning it to another state
func (s *CityService) Update(ctx context.Context, id uuid.UUID, req UpdateCityRequest) (*CityResponse, error) {
	city, err := s.cityRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	state, err := s.stateRepo.FindByID(ctx, req.StateID)
	if err != nil {
		return nil, err
	}

	if err := city.Update(req.Name, req.IBGECode, req.StateID); err != nil {
		return nil, err
	}
	if err := s.cityRepo.Save(ctx, city); err != nil {
		return nil, err
	}

	response := s.toResponse(ctx, city, state)
	return &response, nil
}

// Delete removes a city. Deletion is rejected while clients, suppliers or
// carriers reference it.
func (s *CityService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.cityRepo.FindByID(ctx, id); err != nil {
		return err
	}

	hasReferences, err := s.cityRepo.HasReferences(ctx, id)
	if err != nil {
		return err
	}
	if hasReferences {
		return shared.NewDomainError("HAS_DEPENDENTS", "City is referenced by partners and cannot be deleted")
	}

	return s.cityRepo.Delete(ctx, id)
}

// toResponse resolves the country through the state for the derived fields
func (s *CityService) toResponse(ctx context.Context, city *geo.City, state *geo.State) CityResponse {
	var country *geo.Country
	if state != nil {
		if c, err := s.countryRepo.FindByID(ctx, state.CountryID); err == nil {
			country = c
		}
	}
	return ToCityResponse(city, state, country)
}
