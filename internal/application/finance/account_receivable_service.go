package finance

import (
	"context"
	"fmt"
	"time"

	"github.com/pizzaria/backend/internal/domain/finance"
	"github.com/pizzaria/backend/internal/domain/partner"
	"github.com/pizzaria/backend/internal/domain/shared"
	"github.com/pizzaria/backend/internal/domain/shared/valueobject"
	"github.com/google/uuid"
)

// AccountReceivableService handles receivable operations
type AccountReceivableService struct {
	receivableRepo finance.AccountReceivableRepository
	clientRepo     partner.ClientRepository
	methodRepo     finance.PaymentMethodRepository
	conditionRepo  finance.PaymentConditionRepository
}

// NewAccountReceivableService creates a new AccountReceivableService
func NewAccountReceivableService(
	receivableRepo finance.AccountReceivableRepository,
	clientRepo partner.ClientRepository,
	methodRepo finance.PaymentMethodRepository,
	conditionRepo finance.PaymentConditionRepository,
) *AccountReceivableService {
	return &AccountReceivableService{
		receivableRepo: receivableRepo,
		clientRepo:     clientRepo,
		methodRepo:     methodRepo,
		conditionRepo:  conditionRepo,
	}
}

// Create creates a single receivable installment
func (s *AccountReceivableService) Create(ctx context.Context, req CreateReceivableRequest) (*ReceivableResponse, error) {
	client, err := s.clientRepo.FindByID(ctx, req.ClientID)
	if err != nil {
		return nil, err
	}

	receivable, err := finance.NewAccountReceivable(
		req.DocumentNumber,
		client.ID,
		client.Name,
		req.InstallmentNumber,
		req.InstallmentCount,
		valueobject.NewMoneyBRL(req.OriginalAmount),
		req.Discount, req.Interest, req.Penalty,
		req.IssueDate, req.DueDate,
	)
	if err != nil {
		return nil, err
	}
	if req.Notes != "" {
		receivable.SetNotes(req.Notes)
	}

	if err := s.receivableRepo.Save(ctx, receivable); err != nil {
		return nil, err
	}

	response := ToReceivableResponse(receivable)
	return &response, nil
}

// GenerateFromCondition expands a payment condition's schedule over a
// document total and persists one pending receivable per installment.
func (s *AccountReceivableService) GenerateFromCondition(ctx context.Context, req GenerateReceivablesRequest) ([]ReceivableResponse, error) {
	client, err := s.clientRepo.FindByID(ctx, req.ClientID)
	if err != nil {
		return nil, err
	}
	condition, err := s.conditionRepo.FindByID(ctx, req.PaymentConditionID)
	if err != nil {
		return nil, err
	}
	if !condition.Active {
		return nil, shared.NewDomainError("INVALID_STATE", "Payment condition is inactive")
	}

	installments, err := condition.ExpandSchedule(valueobject.NewMoneyBRL(req.Total), req.ReferenceDate)
	if err != nil {
		return nil, err
	}

	receivables := make([]*finance.AccountReceivable, 0, len(installments))
	for _, inst := range installments {
		receivable, err := finance.NewAccountReceivable(
			req.DocumentNumber,
			client.ID,
			client.Name,
			inst.Number,
			len(installments),
			valueobject.NewMoneyBRL(inst.Amount),
			nil, nil, nil,
			req.ReferenceDate, inst.DueDate,
		)
		if err != nil {
			return nil, err
		}
		receivable.SetNotes(fmt.Sprintf("Generated from payment condition %s", condition.Name))
		receivables = append(receivables, receivable)
	}

	if err := s.receivableRepo.SaveBatch(ctx, receivables); err != nil {
		return nil, err
	}

	responses := make([]ReceivableResponse, 0, len(receivables))
	for _, r := range receivables {
		responses = append(responses, ToReceivableResponse(r))
	}
	return responses, nil
}

// GetByID retrieves a receivable by ID
func (s *AccountReceivableService) GetByID(ctx context.Context, id uuid.UUID) (*ReceivableResponse, error) {
	receivable, err := s.receivableRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	response := ToReceivableResponse(receivable)
	return &response, nil
}

// List retrieves receivables with filtering and pagination
func (s *AccountReceivableService) List(ctx context.Context, filter DocumentListFilter) ([]ReceivableResponse, int64, error) {
	domainFilter := buildFilter(filter, "due_date")

	var (
		receivables []*finance.AccountReceivable
		total       int64
		err         error
	)
	if filter.Status != "" {
		status := finance.ReceivableStatus(filter.Status)
		if !status.IsValid() {
			return nil, 0, shared.NewDomainError("INVALID_STATUS", "Unknown receivable status")
		}
		receivables, total, err = s.receivableRepo.FindByStatus(ctx, status, domainFilter)
	} else {
		receivables, total, err = s.receivableRepo.FindAll(ctx, domainFilter)
	}
	if err != nil {
		return nil, 0, err
	}

	responses := make([]ReceivableResponse, 0, len(receivables))
	for _, r := range receivables {
		responses = append(responses, ToReceivableResponse(r))
	}
	return responses, total, nil
}

// ListByClient retrieves receivables of one client
func (s *AccountReceivableService) ListByClient(ctx context.Context, clientID uuid.UUID, filter DocumentListFilter) ([]ReceivableResponse, int64, error) {
	if _, err := s.clientRepo.FindByID(ctx, clientID); err != nil {
		return nil, 0, err
	}

	receivables, total, err := s.receivableRepo.FindByClient(ctx, clientID, buildFilter(filter, "due_date"))
	if err != nil {
		return nil, 0, err
	}

	responses := make([]ReceivableResponse, 0, len(receivables))
	for _, r := range receivables {
		responses = append(responses, ToReceivableResponse(r))
	}
	return responses, total, nil
}

// ListOverdue retrieves pending receivables past their due date
func (s *AccountReceivableService) ListOverdue(ctx context.Context, filter DocumentListFilter) ([]ReceivableResponse, int64, error) {
	receivables, total, err := s.receivableRepo.FindOverdue(ctx, time.Now(), buildFilter(filter, "due_date"))
	if err != nil {
		return nil, 0, err
	}

	responses := make([]ReceivableResponse, 0, len(receivables))
	for _, r := range receivables {
		responses = append(responses, ToReceivableResponse(r))
	}
	return responses, total, nil
}

// Summary aggregates receivables by status for dashboards
func (s *AccountReceivableService) Summary(ctx context.Context) (*ReceivableSummaryResponse, error) {
	summary, err := s.receivableRepo.Summary(ctx, time.Now())
	if err != nil {
		return nil, err
	}
	return &ReceivableSummaryResponse{
		PendingCount:   summary.PendingCount,
		PendingAmount:  summary.PendingAmount,
		ReceivedCount:  summary.ReceivedCount,
		ReceivedAmount: summary.ReceivedAmount,
		OverdueCount:   summary.OverdueCount,
		OverdueAmount:  summary.OverdueAmount,
	}, nil
}

// Update updates a pending receivable's amounts, due date and notes
func (s *AccountReceivableService) Update(ctx context.Context, id uuid.UUID, req UpdateReceivableRequest) (*ReceivableResponse, error) {
	receivable, err := s.receivableRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.OriginalAmount != nil || req.Discount != nil || req.Interest != nil || req.Penalty != nil {
		original := receivable.OriginalAmount
		discount := receivable.Discount
		interest := receivable.Interest
		penalty := receivable.Penalty
		if req.OriginalAmount != nil {
			original = *req.OriginalAmount
		}
		if req.Discount != nil {
			discount = *req.Discount
		}
		if req.Interest != nil {
			interest = *req.Interest
		}
		if req.Penalty != nil {
			penalty = *req.Penalty
		}
		if err := receivable.UpdateAmounts(valueobject.NewMoneyBRL(original), &discount, &interest, &penalty); err != nil {
			return nil, err
		}
	}
	if req.DueDate != nil {
		if err := receivable.SetDueDate(*req.DueDate); err != nil {
			return nil, err
		}
	}
	if req.Notes != nil {
		receivable.SetNotes(*req.Notes)
	}

	if err := s.receivableRepo.Save(ctx, receivable); err != nil {
		return nil, err
	}

	response := ToReceivableResponse(receivable)
	return &response, nil
}

// Receive settles a pending receivable with an optimistic version check
func (s *AccountReceivableService) Receive(ctx context.Context, id uuid.UUID, req ReceiveRequest) (*ReceivableResponse, error) {
	receivable, err := s.receivableRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	method, err := s.methodRepo.FindByID(ctx, req.PaymentMethodID)
	if err != nil {
		if err == shared.ErrNotFound {
			return nil, shared.NewDomainError("INVALID_PAYMENT_METHOD", "Referenced payment method does not exist")
		}
		return nil, err
	}
	if !method.Active {
		return nil, shared.NewDomainError("INVALID_PAYMENT_METHOD", "Referenced payment method is inactive")
	}

	expectedVersion := receivable.Version
	if err := receivable.Receive(valueobject.NewMoneyBRL(req.Amount), req.ReceiptDate, method.ID); err != nil {
		return nil, err
	}

	if err := s.receivableRepo.SaveWithVersion(ctx, receivable, expectedVersion); err != nil {
		return nil, err
	}

	response := ToReceivableResponse(receivable)
	return &response, nil
}

// Cancel moves a pending receivable to the terminal cancelled state
func (s *AccountReceivableService) Cancel(ctx context.Context, id uuid.UUID, req CancelRequest) (*ReceivableResponse, error) {
	receivable, err := s.receivableRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	expectedVersion := receivable.Version
	if err := receivable.Cancel(req.Reason); err != nil {
		return nil, err
	}

	if err := s.receivableRepo.SaveWithVersion(ctx, receivable, expectedVersion); err != nil {
		return nil, err
	}

	response := ToReceivableResponse(receivable)
	return &response, nil
}

// Delete removes a receivable. Received records are retained for accounting
// history and cannot be hard-deleted.
func (s *AccountReceivableService) Delete(ctx context.Context, id uuid.UUID) error {
	receivable, err := s.receivableRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if !receivable.CanDelete() {
		return shared.NewDomainError("INVALID_STATE", "Received receivables cannot be deleted")
	}
	return s.receivableRepo.Delete(ctx, id)
}
