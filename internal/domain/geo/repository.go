package geo

import (
	"context"

	"github.com/pizzaria/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// CountryRepository defines persistence for countries
type CountryRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Country, error)
	FindByName(ctx context.Context, name string) (*Country, error)
	FindAll(ctx context.Context, filter shared.Filter) ([]Country, error)
	Count(ctx context.Context, filter shared.Filter) (int64, error)
	ExistsByName(ctx context.Context, name string) (bool, error)
	// HasStates reports whether any state references the country.
	// Used to enforce the no-delete-with-dependents policy.
	HasStates(ctx context.Context, id uuid.UUID) (bool, error)
	Save(ctx context.Context, country *Country) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// StateRepository defines persistence for states
type StateRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*State, error)
	FindByCountry(ctx context.Context, countryID uuid.UUID) ([]State, error)
	FindAll(ctx context.Context, filter shared.Filter) ([]State, error)
	Count(ctx context.Context, filter shared.Filter) (int64, error)
	ExistsByUF(ctx context.Context, countryID uuid.UUID, uf string) (bool, error)
	// HasCities reports whether any city references the state.
	HasCities(ctx context.Context, id uuid.UUID) (bool, error)
	Save(ctx context.Context, state *State) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// CityRepository defines persistence for cities
type CityRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*City, error)
	FindByState(ctx context.Context, stateID uuid.UUID) ([]City, error)
	FindAll(ctx context.Context, filter shared.Filter) ([]City, error)
	Count(ctx context.Context, filter shared.Filter) (int64, error)
	// HasReferences reports whether any partner record points at the city.
	HasReferences(ctx context.Context, id uuid.UUID) (bool, error)
	Save(ctx context.Context, city *City) error
	Delete(ctx context.Context, id uuid.UUID) error
}
