package fiscal

import (
	"context"

	"github.com/pizzaria/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// EntryInvoiceRepository persists entry invoices. All single-record
// operations address documents by the full composite key; partial-key
// lookups are not supported.
type EntryInvoiceRepository interface {
	Save(ctx context.Context, invoice *EntryInvoice) error
	FindByKey(ctx context.Context, key InvoiceKey) (*EntryInvoice, error)
	ExistsByKey(ctx context.Context, key InvoiceKey) (bool, error)
	FindAll(ctx context.Context, filter shared.Filter) ([]*EntryInvoice, int64, error)
	FindBySupplier(ctx context.Context, supplierID uuid.UUID, filter shared.Filter) ([]*EntryInvoice, int64, error)
	DeleteByKey(ctx context.Context, key InvoiceKey) error
}

// ExitInvoiceRepository persists exit invoices
type ExitInvoiceRepository interface {
	Save(ctx context.Context, invoice *ExitInvoice) error
	FindByKey(ctx context.Context, key InvoiceKey) (*ExitInvoice, error)
	ExistsByKey(ctx context.Context, key InvoiceKey) (bool, error)
	FindAll(ctx context.Context, filter shared.Filter) ([]*ExitInvoice, int64, error)
	FindByClient(ctx context.Context, clientID uuid.UUID, filter shared.Filter) ([]*ExitInvoice, int64, error)
	DeleteByKey(ctx context.Context, key InvoiceKey) error
}
