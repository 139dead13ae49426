package partner

import (
	"context"

	"github.com/pizzaria/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// ClientRepository defines persistence for clients
type ClientRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Client, error)
	FindByCode(ctx context.Context, code string) (*Client, error)
	FindAll(ctx context.Context, filter shared.Filter) ([]Client, error)
	FindByStatus(ctx context.Context, status Status, filter shared.Filter) ([]Client, error)
	Count(ctx context.Context, filter shared.Filter) (int64, error)
	ExistsByCode(ctx context.Context, code string) (bool, error)
	ExistsByDocument(ctx context.Context, document string) (bool, error)
	// HasFinancialDocuments reports whether receivables or exit invoices
	// reference the client.
	HasFinancialDocuments(ctx context.Context, id uuid.UUID) (bool, error)
	Save(ctx context.Context, client *Client) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// SupplierRepository defines persistence for suppliers
type SupplierRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Supplier, error)
	FindByCode(ctx context.Context, code string) (*Supplier, error)
	FindAll(ctx context.Context, filter shared.Filter) ([]Supplier, error)
	FindByStatus(ctx context.Context, status Status, filter shared.Filter) ([]Supplier, error)
	Count(ctx context.Context, filter shared.Filter) (int64, error)
	ExistsByCode(ctx context.Context, code string) (bool, error)
	ExistsByCNPJ(ctx context.Context, cnpj string) (bool, error)
	HasFinancialDocuments(ctx context.Context, id uuid.UUID) (bool, error)
	Save(ctx context.Context, supplier *Supplier) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// CarrierRepository defines persistence for carriers
type CarrierRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Carrier, error)
	FindByCode(ctx context.Context, code string) (*Carrier, error)
	FindAll(ctx context.Context, filter shared.Filter) ([]Carrier, error)
	FindByStatus(ctx context.Context, status Status, filter shared.Filter) ([]Carrier, error)
	Count(ctx context.Context, filter shared.Filter) (int64, error)
	ExistsByCode(ctx context.Context, code string) (bool, error)
	HasVehicles(ctx context.Context, id uuid.UUID) (bool, error)
	Save(ctx context.Context, carrier *Carrier) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// VehicleRepository defines persistence for vehicles
type VehicleRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Vehicle, error)
	FindByPlate(ctx context.Context, plate string) (*Vehicle, error)
	FindByCarrier(ctx context.Context, carrierID uuid.UUID) ([]Vehicle, error)
	FindAll(ctx context.Context, filter shared.Filter) ([]Vehicle, error)
	Count(ctx context.Context, filter shared.Filter) (int64, error)
	ExistsByPlate(ctx context.Context, plate string) (bool, error)
	Save(ctx context.Context, vehicle *Vehicle) error
	Delete(ctx context.Context, id uuid.UUID) error
}
