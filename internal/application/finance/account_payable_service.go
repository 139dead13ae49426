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

// AccountPayableService handles payable operations
type AccountPayableService struct {
	payableRepo   finance.AccountPayableRepository
	supplierRepo  partner.SupplierRepository
	methodRepo    finance.PaymentMethodRepository
	conditionRepo finance.PaymentConditionRepository
}

// NewAccountPayableService creates a new AccountPayableService
func NewAccountPayableService(
	payableRepo finance.AccountPayableRepository,
	supplierRepo partner.SupplierRepository,
	methodRepo finance.PaymentMethodRepository,
	conditionRepo finance.PaymentConditionRepository,
) *AccountPayableService {
	return &AccountPayableService{
		payableRepo:   payableRepo,
		supplierRepo:  supplierRepo,
		methodRepo:    methodRepo,
		conditionRepo: conditionRepo,
	}
}

// Create creates a single payable installment
func (s *AccountPayableService) Create(ctx context.Context, req CreatePayableRequest) (*PayableResponse, error) {
	supplier, err := s.supplierRepo.FindByID(ctx, req.SupplierID)
	if err != nil {
		return nil, err
	}

	payable, err := finance.NewAccountPayable(
		req.DocumentNumber,
		supplier.ID,
		supplier.Name,
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
		payable.SetNotes(req.Notes)
	}

	if err := s.payableRepo.Save(ctx, payable); err != nil {
		return nil, err
	}

	response := ToPayableResponse(payable)
	return &response, nil
}

// GenerateFromCondition expands a payment condition's schedule over a
// document total and persists one pending payable per installment.
func (s *AccountPayableService) GenerateFromCondition(ctx context.Context, req GeneratePayablesRequest) ([]PayableResponse, error) {
	supplier, err := s.supplierRepo.FindByID(ctx, req.SupplierID)
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

	payables := make([]*finance.AccountPayable, 0, len(installments))
	for _, inst := range installments {
		payable, err := finance.NewAccountPayable(
			req.DocumentNumber,
			supplier.ID,
			supplier.Name,
			inst.Number,
			len(installments),
			valueobject.NewMoneyBRL(inst.Amount),
			nil, nil, nil,
			req.ReferenceDate, inst.DueDate,
		)
		if err != nil {
			return nil, err
		}
		payable.SetNotes(fmt.Sprintf("Generated from payment condition %s", condition.Name))
		payables = append(payables, payable)
	}

	if err := s.payableRepo.SaveBatch(ctx, payables); err != nil {
		return nil, err
	}

	responses := make([]PayableResponse, 0, len(payables))
	for _, p := range payables {
		responses = append(responses, ToPayableResponse(p))
	}
	return responses, nil
}

// GetByID retrieves a payable by ID
func (s *AccountPayableService) GetByID(ctx context.Context, id uuid.UUID) (*PayableResponse, error) {
	payable, err := s.payableRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	response := ToPayableResponse(payable)
	return &response, nil
}

// List retrieves payables with filtering and pagination
func (s *AccountPayableService) List(ctx context.Context, filter DocumentListFilter) ([]PayableResponse, int64, error) {
	domainFilter := buildFilter(filter, "due_date")

	var (
		payables []*finance.AccountPayable
		total    int64
		err      error
	)
	if filter.Status != "" {
		status := finance.PayableStatus(filter.Status)
		if !status.IsValid() {
			return nil, 0, shared.NewDomainError("INVALID_STATUS", "Unknown payable status")
		}
		payables, total, err = s.payableRepo.FindByStatus(ctx, status, domainFilter)
	} else {
		payables, total, err = s.payableRepo.FindAll(ctx, domainFilter)
	}
	if err != nil {
		return nil, 0, err
	}

	responses := make([]PayableResponse, 0, len(payables))
	for _, p := range payables {
		responses = append(responses, ToPayableResponse(p))
	}
	return responses, total, nil
}

// ListBySupplier retrieves payables of one supplier
func (s *AccountPayableService) ListBySupplier(ctx context.Context, supplierID uuid.UUID, filter DocumentListFilter) ([]PayableResponse, int64, error) {
	if _, err := s.supplierRepo.FindByID(ctx, supplierID); err != nil {
		return nil, 0, err
	}

	payables, total, err := s.payableRepo.FindBySupplier(ctx, supplierID, buildFilter(filter, "due_date"))
	if err != nil {
		return nil, 0, err
	}

	responses := make([]PayableResponse, 0, len(payables))
	for _, p := range payables {
		responses = append(responses, ToPayableResponse(p))
	}
	return responses, total, nil
}

// ListOverdue retrieves pending payables past their due date
func (s *AccountPayableService) ListOverdue(ctx context.Context, filter DocumentListFilter) ([]PayableResponse, int64, error) {
	payables, total, err := s.payableRepo.FindOverdue(ctx, time.Now(), buildFilter(filter, "due_date"))
	if err != nil {
		return nil, 0, err
	}

	responses := make([]PayableResponse, 0, len(payables))
	for _, p := range payables {
		responses = append(responses, ToPayableResponse(p))
	}
	return responses, total, nil
}

// Summary aggregates payables by status for dashboards
func (s *AccountPayableService) Summary(ctx context.Context) (*PayableSummaryResponse, error) {
	summary, err := s.payableRepo.Summary(ctx, time.Now())
	if err != nil {
		return nil, err
	}
	return &PayableSummaryResponse{
		PendingCount:  summary.PendingCount,
		PendingAmount: summary.PendingAmount,
		PaidCount:     summary.PaidCount,
		PaidAmount:    summary.PaidAmount,
		OverdueCount:  summary.OverdueCount,
		OverdueAmount: summary.OverdueAmount,
	}, nil
}

// Update updates a pending payable's amounts, due date and notes
func (s *AccountPayableService) Update(ctx context.Context, id uuid.UUID, req UpdatePayableRequest) (*PayableResponse, error) {
	payable, err := s.payableRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.OriginalAmount != nil || req.Discount != nil || req.Interest != nil || req.Penalty != nil {
		original := payable.OriginalAmount
		discount := payable.Discount
		interest := payable.Interest
		penalty := payable.Penalty
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
		if err := payable.UpdateAmounts(valueobject.NewMoneyBRL(original), &discount, &interest, &penalty); err != nil {
			return nil, err
		}
	}
	if req.DueDate != nil {
		if err := payable.SetDueDate(*req.DueDate); err != nil {
			return nil, err
		}
	}
	if req.Notes != nil {
		payable.SetNotes(*req.Notes)
	}

	if err := s.payableRepo.Save(ctx, payable); err != nil {
		return nil, err
	}

	response := ToPayableResponse(payable)
	return &response, nil
}

// Pay settles a pending payable. The stored version read before the
// transition guards against two concurrent settlements of the same record.
func (s *AccountPayableService) Pay(ctx context.Context, id uuid.UUID, req PayRequest) (*PayableResponse, error) {
	payable, err := s.payableRepo.FindByID(ctx, id)
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

	expectedVersion := payable.Version
	if err := payable.Pay(valueobject.NewMoneyBRL(req.Amount), req.PaymentDate, method.ID); err != nil {
		return nil, err
	}

	if err := s.payableRepo.SaveWithVersion(ctx, payable, expectedVersion); err != nil {
		return nil, err
	}

	response := ToPayableResponse(payable)
	return &response, nil
}

// Cancel moves a pending payable to the terminal cancelled state
func (s *AccountPayableService) Cancel(ctx context.Context, id uuid.UUID, req CancelRequest) (*PayableResponse, error) {
	payable, err := s.payableRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	expectedVersion := payable.Version
	if err := payable.Cancel(req.Reason); err != nil {
		return nil, err
	}

	if err := s.payableRepo.SaveWithVersion(ctx, payable, expectedVersion); err != nil {
		return nil, err
	}

	response := ToPayableResponse(payable)
	return &response, nil
}

// Delete removes a payable. Paid records are retained for accounting history
// and cannot be hard-deleted.
func (s *AccountPayableService) Delete(ctx context.Context, id uuid.UUID) error {
	payable, err := s.payableRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if !payable.CanDelete() {
		return shared.NewDomainError("INVALID_STATE", "Paid payables cannot be deleted")
	}
	return s.payableRepo.Delete(ctx, id)
}
