package geo

import (
	"context"

	"github.com/pizzaria/backend/internal/domain/geo"
	"github.com/pizzaria/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// CountryService handles country-related business operations
type CountryService struct {
	countryRepo geo.CountryRepository
}

// NewCountryService creates a new CountryService
func NewCountryService(countryRepo geo.CountryRepository) *CountryService {
	return &CountryService{countryRepo: countryRepo}
}

// Create creates a new country
func (s *CountryService) Create(ctx context.Context, req CreateCountryRequest) (*CountryResponse, error) {
	exists, err := s.countryRepo.ExistsByName(ctx, req.Name)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, shared.NewDomainError("ALREADY_EXISTS", "Country with this name already exists")
	}

	country, err := geo.NewCountry(req.Name, req.Abbreviation)
	if err != nil {
		return nil, err
	}

	if err := s.countryRepo.Save(ctx, country); err != nil {
		return nil, err
	}

	response := ToCountryResponse(country)
	return &response, nil
}

// GetByID retrieves a country by ID
func (s *CountryService) GetByID(ctx context.Context, id uuid.UUID) (*CountryResponse, error) {
	country, err := s.countryRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	response := ToCountryResponse(country)
	return &response, nil
}

// List retrieves countries with filtering and pagination
func (s *CountryService) List(ctx context.Context, filter ListFilter) ([]CountryResponse, int64, error) {
	domainFilter := buildFilter(filter, "name", "asc")

	countries, err := s.countryRepo.FindAll(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.countryRepo.Count(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	responses := make([]CountryResponse, 0, len(countries))
	for i := range countries {
		responses = append(responses, ToCountryResponse(&countries[i]))
	}
	return responses, total, nil
}

// Update updates a country
func (s *CountryService) Update(ctx context.Context, id uuid.UUID, req UpdateCountryRequest) (*CountryResponse, error) {
	country, err := s.countryRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != country.Name {
		exists, err := s.countryRepo.ExistsByName(ctx, req.Name)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, shared.NewDomainError("ALREADY_EXISTS", "Country with this name already exists")
		}
	}

	if err := country.Update(req.Name, req.Abbreviation); err != nil {
		return nil, err
	}
	if err := s.countryRepo.Save(ctx, country); err != nil {
		return nil, err
	}

	response := ToCountryResponse(country)
	return &response, nil
}

// Delete removes a country. Deletion is rejected while states reference it.
func (s *CountryService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.countryRepo.FindByID(ctx, id); err != nil {
		return err
	}

	hasStates, err := s.countryRepo.HasStates(ctx, id)
	if err != nil {
		return err
	}
	if hasStates {
		return shared.NewDomainError("HAS_DEPENDENTS", "Country has states and cannot be deleted")
	}

	return s.countryRepo.Delete(ctx, id)
}

// buildFilter applies list defaults and converts to the domain filter
func buildFilter(filter ListFilter, defaultOrderBy, defaultOrderDir string) shared.Filter {
	if filter.Page <= 0 {
		filter.Page = 1
	}
	if filter.PageSize <= 0 {
		filter.PageSize = 20
	}
	if filter.OrderBy == "" {
		filter.OrderBy = defaultOrderBy
	}
	if filter.OrderDir == "" {
		filter.OrderDir = defaultOrderDir
	}
	return shared.Filter{
		Page:     filter.Page,
		PageSize: filter.PageSize,
		OrderBy:  filter.OrderBy,
		OrderDir: filter.OrderDir,
		Search:   filter.Search,
		Filters:  make(map[string]any),
	}
}
