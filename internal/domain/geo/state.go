package geo

import (
	"strings"

	"github.com/pizzaria/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// State belongs to a country and groups cities.
type State struct {
	shared.BaseAggregateRoot
	Name      string    `json:"name"`
	UF        string    `json:"uf"` // two-letter state code, e.g. PR, SP
	CountryID uuid.UUID `json:"country_id"`
}

// NewState creates a new state under a country
func NewState(name, uf string, countryID uuid.UUID) (*State, error) {
	if name == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "State name cannot be empty")
	}
	if len(name) > 100 {
		return nil, shared.NewDomainError("INVALID_NAME", "State name cannot exceed 100 characters")
	}
	if len(uf) != 2 {
		return nil, shared.NewDomainError("INVALID_UF", "State UF must be exactly 2 characters")
	}
	if countryID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_COUNTRY", "Country ID cannot be empty")
	}

	return &State{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Name:              name,
		UF:                strings.ToUpper(uf),
		CountryID:         countryID,
	}, nil
}

// Update changes the state's mutable fields. The parent country may be
// reassigned, which implicitly moves all of the state's cities.
func (s *State) Update(name, uf string, countryID uuid.UUID) error {
	if name == "" {
		return shared.NewDomainError("INVALID_NAME", "State name cannot be empty")
	}
	if len(name) > 100 {
		return shared.NewDomainError("INVALID_NAME", "State name cannot exceed 100 characters")
	}
	if len(uf) != 2 {
		return shared.NewDomainError("INVALID_UF", "State UF must be exactly 2 characters")
	}
	if countryID == uuid.Nil {
		return shared.NewDomainError("INVALID_COUNTRY", "Country ID cannot be empty")
	}

	s.Name = name
	s.UF = strings.ToUpper(uf)
	s.CountryID = countryID
	s.Touch()
	s.IncrementVersion()
	return nil
}
