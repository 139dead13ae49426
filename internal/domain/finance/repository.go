package finance

import (
	"context"
	"time"

	"github.com/pizzaria/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PayableSummary aggregates payables by status for dashboard views
type PayableSummary struct {
	PendingCount   int64           `json:"pending_count"`
	PendingAmount  decimal.Decimal `json:"pending_amount"`
	PaidCount      int64           `json:"paid_count"`
	PaidAmount     decimal.Decimal `json:"paid_amount"`
	OverdueCount   int64           `json:"overdue_count"`
	OverdueAmount  decimal.Decimal `json:"overdue_amount"`
}

// ReceivableSummary aggregates receivables by status
type ReceivableSummary struct {
	PendingCount    int64           `json:"pending_count"`
	PendingAmount   decimal.Decimal `json:"pending_amount"`
	ReceivedCount   int64           `json:"received_count"`
	ReceivedAmount  decimal.Decimal `json:"received_amount"`
	OverdueCount    int64           `json:"overdue_count"`
	OverdueAmount   decimal.Decimal `json:"overdue_amount"`
}

// PaymentMethodRepository persists payment methods
type PaymentMethodRepository interface {
	Save(ctx context.Context, method *PaymentMethod) error
	FindByID(ctx context.Context, id uuid.UUID) (*PaymentMethod, error)
	FindByCode(ctx context.Context, code string) (*PaymentMethod, error)
	ExistsByCode(ctx context.Context, code string) (bool, error)
	FindAll(ctx context.Context, filter shared.Filter) ([]*PaymentMethod, int64, error)
	Delete(ctx context.Context, id uuid.UUID) error
	IsReferenced(ctx context.Context, id uuid.UUID) (bool, error)
}

// PaymentConditionRepository persists payment conditions with their rules
type PaymentConditionRepository interface {
	Save(ctx context.Context, condition *PaymentCondition) error
	FindByID(ctx context.Context, id uuid.UUID) (*PaymentCondition, error)
	FindByName(ctx context.Context, name string) (*PaymentCondition, error)
	ExistsByName(ctx context.Context, name string) (bool, error)
	FindAll(ctx context.Context, filter shared.Filter) ([]*PaymentCondition, int64, error)
	Delete(ctx context.Context, id uuid.UUID) error
	IsReferenced(ctx context.Context, id uuid.UUID) (bool, error)
}

// AccountPayableRepository persists payables. SaveWithVersion performs an
// optimistic-lock update and returns shared.ErrConcurrencyConflict when the
// stored version no longer matches expectedVersion.
type AccountPayableRepository interface {
	Save(ctx context.Context, payable *AccountPayable) error
	SaveWithVersion(ctx context.Context, payable *AccountPayable, expectedVersion int) error
	SaveBatch(ctx context.Context, payables []*AccountPayable) error
	FindByID(ctx context.Context, id uuid.UUID) (*AccountPayable, error)
	FindAll(ctx context.Context, filter shared.Filter) ([]*AccountPayable, int64, error)
	FindBySupplier(ctx context.Context, supplierID uuid.UUID, filter shared.Filter) ([]*AccountPayable, int64, error)
	FindByStatus(ctx context.Context, status PayableStatus, filter shared.Filter) ([]*AccountPayable, int64, error)
	FindOverdue(ctx context.Context, asOf time.Time, filter shared.Filter) ([]*AccountPayable, int64, error)
	Summary(ctx context.Context, asOf time.Time) (*PayableSummary, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// AccountReceivableRepository persists receivables
type AccountReceivableRepository interface {
	Save(ctx context.Context, receivable *AccountReceivable) error
	SaveWithVersion(ctx context.Context, receivable *AccountReceivable, expectedVersion int) error
	SaveBatch(ctx context.Context, receivables []*AccountReceivable) error
	FindByID(ctx context.Context, id uuid.UUID) (*AccountReceivable, error)
	FindAll(ctx context.Context, filter shared.Filter) ([]*AccountReceivable, int64, error)
	FindByClient(ctx context.Context, clientID uuid.UUID, filter shared.Filter) ([]*AccountReceivable, int64, error)
	FindByStatus(ctx context.Context, status ReceivableStatus, filter shared.Filter) ([]*AccountReceivable, int64, error)
	FindOverdue(ctx context.Context, asOf time.Time, filter shared.Filter) ([]*AccountReceivable, int64, error)
	Summary(ctx context.Context, asOf time.Time) (*ReceivableSummary, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
