package geo

import (
	"github.com/pizzaria/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// City belongs to a state. Its country is derived through the state,
// never stored directly.
type City struct {
	shared.BaseAggregateRoot
	Name     string    `json:"name"`
	IBGECode string    `json:"ibge_code"` // Brazilian municipality code
	StateID  uuid.UUID `json:"state_id"`
}

// NewCity creates a new city under a state
func NewCity(name, ibgeCode string, stateID uuid.UUID) (*City, error) {
	if name == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "City name cannot be empty")
	}
	if len(name) > 100 {
		return nil, shared.NewDomainError("INVALID_NAME", "City name cannot exceed 100 characters")
	}
	if len(ibgeCode) > 10 {
		return nil, shared.NewDomainError("INVALID_IBGE_CODE", "IBGE code cannot exceed 10 characters")
	}
	if stateID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_STATE", "State ID cannot be empty")
	}

	return &City{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Name:              name,
		IBGECode:          ibgeCode,
		StateID:           stateID,
	}, nil
}

// Update changes the city's mutable fields
func (c *City) Update(name, ibgeCode string, stateID uuid.UUID) error {
	if name == "" {
		return shared.NewDomainError("INVALID_NAME", "City name cannot be empty")
	}
	if len(name) > 100 {
		return shared.NewDomainError("INVALID_NAME", "City name cannot exceed 100 characters")
	}
	if len(ibgeCode) > 10 {
		return shared.NewDomainError("INVALID_IBGE_CODE", "IBGE code cannot exceed 10 characters")
	}
	if stateID == uuid.Nil {
		return shared.NewDomainError("INVALID_STATE", "State ID cannot be empty")
	}

	c.Name = name
	c.IBGECode = ibgeCode
	c.StateID = stateID
	c.Touch()
	c.IncrementVersion()
	return nil
}
