package geo

import (
	"context"

	"github.com/pizzaria/backend/internal/domain/geo"
	"github.com/pizzaria/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// StateService handles state-related business operations
type StateService struct {
	stateRepo   geo.StateRepository
	countryRepo geo.CountryRepository
}

// NewStateService creates a new StateService
func NewStateService(stateRepo geo.StateRepository, countryRepo geo.CountryRepository) *StateService {
	return &StateService{stateRepo: stateRepo, countryRepo: countryRepo}
}

// Create creates a new state under an existing country
func (s *StateService) Create(ctx context.Context, req CreateStateRequest) (*StateResponse, error) {
	country, err := s.countryRepo.FindByID(ctx, req.CountryID)
	if err != nil {
		return nil, err
	}

	exists, err := s.stateRepo.ExistsByUF(ctx, req.CountryID, req.UF)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, shared.NewDomainError("ALREADY_EXISTS", "State with this UF already exists in the country")
	}

	state, err := geo.NewState(req.Name, req.UF, req.CountryID)
	if err != nil {
		return nil, err
	}

	if err := s.stateRepo.Save(ctx, state); err != nil {
		return nil, err
	}

	response := ToStateResponse(state, country)
	return &response, nil
}

// GetByID retrieves a state by ID with its country name resolved
func (s *StateService) GetByID(ctx context.Context, id uuid.UUID) (*StateResponse, error) {
	state, err := s.stateRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	country, err := s.countryRepo.FindByID(ctx, state.CountryID)
	if err != nil {
		// missing parent only suppresses the derived display fields
		country = nil
	}

	response := ToStateResponse(state, country)
	return &response, nil
}

// ListByCountry retrieves all states of one country
func (s *StateService) ListByCountry(ctx context.Context, countryID uuid.UUID) ([]StateResponse, error) {
	country, err := s.countryRepo.FindByID(ctx, countryID)
	if err != nil {
		return nil, err
	}

	states, err := s.stateRepo.FindByCountry(ctx, countryID)
	if err != nil {
		return nil, err
	}

	responses := make([]StateResponse, 0, len(states))
	for i := range states {
		responses = append(responses, ToStateResponse(&states[i], country))
	}
	return responses, nil
}

// List retrieves states with filtering and pagination
func (s *StateService) List(ctx context.Context, filter ListFilter) ([]StateResponse, int64, error) {
	domainFilter := buildFilter(filter, "name", "asc")

	states, err := s.stateRepo.FindAll(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.stateRepo.Count(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	responses := make([]StateResponse, 0, len(states))
	for i := range states {
		country, err := s.countryRepo.FindByID(ctx, states[i].CountryID)
		if err != nil {
			country = nil
		}
		responses = append(responses, ToStateResponse(&states[i], country))
	}
	return responses, total, nil
}

// Update updates a state, possibly reassigning it to another country
func (s *StateService) Update(ctx context.Context, id uuid.UUID, req UpdateStateRequest) (*StateResponse, error) {
	state, err := s.stateRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	country, err := s.countryRepo.FindByID(ctx, req.CountryID)
	if err != nil {
		return nil, err
	}

	if req.UF != state.UF || req.CountryID != state.CountryID {
		exists, err := s.stateRepo.ExistsByUF(ctx, req.CountryID, req.UF)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, shared.NewDomainError("ALREADY_EXISTS", "State with this UF already exists in the country")
		}
	}

	if err := state.Update(req.Name, req.UF, req.CountryID); err != nil {
		return nil, err
	}
	if err := s.stateRepo.Save(ctx, state); err != nil {
		return nil, err
	}

	response := ToStateResponse(state, country)
	return &response, nil
}

// Delete removes a state. Deletion is rejected while cities reference it.
func (s *StateService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.stateRepo.FindByID(ctx, id); err != nil {
		return err
	}

	hasCities, err := s.stateRepo.HasCities(ctx, id)
	if err != nil {
		return err
	}
	if hasCities {
		return shared.NewDomainError("HAS_DEPENDENTS", "State has cities and cannot be deleted")
	}

	return s.stateRepo.Delete(ctx, id)
}
