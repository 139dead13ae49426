package partner

import (
	"strings"
	"time"

	"github.com/pizzaria/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// Vehicle is a delivery vehicle owned by a carrier.
type Vehicle struct {
	shared.BaseAggregateRoot
	Plate       string    `json:"plate"` // unique, normalized uppercase
	Description string    `json:"description"`
	CarrierID   uuid.UUID `json:"carrier_id"`
	Status      Status    `json:"status"`
}

// NewVehicle creates a new active vehicle for a carrier
func NewVehicle(plate, description string, carrierID uuid.UUID) (*Vehicle, error) {
	plate = normalizePlate(plate)
	if plate == "" {
		return nil, shared.NewDomainError("INVALID_PLATE", "Vehicle plate cannot be empty")
	}
	if len(plate) > 10 {
		return nil, shared.NewDomainError("INVALID_PLATE", "Vehicle plate cannot exceed 10 characters")
	}
	if len(description) > 200 {
		return nil, shared.NewDomainError("INVALID_DESCRIPTION", "Description cannot exceed 200 characters")
	}
	if carrierID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_CARRIER", "Carrier ID cannot be empty")
	}

	return &Vehicle{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Plate:             plate,
		Description:       description,
		CarrierID:         carrierID,
		Status:            StatusActive,
	}, nil
}

// Update changes the vehicle's description and carrier
func (v *Vehicle) Update(description string, carrierID uuid.UUID) error {
	if len(description) > 200 {
		return shared.NewDomainError("INVALID_DESCRIPTION", "Description cannot exceed 200 characters")
	}
	if carrierID == uuid.Nil {
		return shared.NewDomainError("INVALID_CARRIER", "Carrier ID cannot be empty")
	}

	v.Description = description
	v.CarrierID = carrierID
	v.touch()
	return nil
}

// Activate sets the vehicle to active
func (v *Vehicle) Activate() error {
	if v.Status == StatusActive {
		return shared.NewDomainError("INVALID_STATE", "Vehicle is already active")
	}
	v.Status = StatusActive
	v.touch()
	return nil
}

// Deactivate sets the vehicle to inactive
func (v *Vehicle) Deactivate() error {
	if v.Status == StatusInactive {
		return shared.NewDomainError("INVALID_STATE", "Vehicle is already inactive")
	}
	v.Status = StatusInactive
	v.touch()
	return nil
}

func (v *Vehicle) touch() {
	v.UpdatedAt = time.Now()
	v.IncrementVersion()
}

// normalizePlate uppercases and strips separator characters from a plate
func normalizePlate(plate string) string {
	plate = strings.ToUpper(strings.TrimSpace(plate))
	return strings.ReplaceAll(plate, "-", "")
}
