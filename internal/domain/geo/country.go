package geo

import (
	"github.com/pizzaria/backend/internal/domain/shared"
)

// Country is the root of the geographic reference hierarchy.
type Country struct {
	shared.BaseAggregateRoot
	Name         string `json:"name"`
	Abbreviation string `json:"abbreviation"` // ISO 3166-1 alpha-2 where available
}

// NewCountry creates a new country
func NewCountry(name, abbreviation string) (*Country, error) {
	if name == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "Country name cannot be empty")
	}
	if len(name) > 100 {
		return nil, shared.NewDomainError("INVALID_NAME", "Country name cannot exceed 100 characters")
	}
	if abbreviation == "" {
		return nil, shared.NewDomainError("INVALID_ABBREVIATION", "Country abbreviation cannot be empty")
	}
	if len(abbreviation) > 3 {
		return nil, shared.NewDomainError("INVALID_ABBREVIATION", "Country abbreviation cannot exceed 3 characters")
	}

	return &Country{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Name:              name,
		Abbreviation:      abbreviation,
	}, nil
}

// Update changes the country's mutable fields
func (c *Country) Update(name, abbreviation string) error {
	if name == "" {
		return shared.NewDomainError("INVALID_NAME", "Country name cannot be empty")
	}
	if len(name) > 100 {
		return shared.NewDomainError("INVALID_NAME", "Country name cannot exceed 100 characters")
	}
	if abbreviation == "" {
		return shared.NewDomainError("INVALID_ABBREVIATION", "Country abbreviation cannot be empty")
	}
	if len(abbreviation) > 3 {
		return shared.NewDomainError("INVALID_ABBREVIATION", "Country abbreviation cannot exceed 3 characters")
	}

	c.Name = name
	c.Abbreviation = abbreviation
	c.Touch()
	c.IncrementVersion()
	return nil
}
