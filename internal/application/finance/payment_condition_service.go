package finance

import (
	"context"
	"time"

	"github.com/pizzaria/backend/internal/domain/finance"
	"github.com/pizzaria/backend/internal/domain/shared"
	"github.com/pizzaria/backend/internal/domain/shared/valueobject"
	"github.com/google/uuid"
)

// PaymentConditionService handles payment condition operations
type PaymentConditionService struct {
	conditionRepo finance.PaymentConditionRepository
	methodRepo    finance.PaymentMethodRepository
}

// NewPaymentConditionService creates a new PaymentConditionService
func NewPaymentConditionService(conditionRepo finance.PaymentConditionRepository, methodRepo finance.PaymentMethodRepository) *PaymentConditionService {
	return &PaymentConditionService{conditionRepo: conditionRepo, methodRepo: methodRepo}
}

// Create creates a new payment condition. Every referenced payment method
// must exist and be active.
func (s *PaymentConditionService) Create(ctx context.Context, req CreatePaymentConditionRequest) (*PaymentConditionResponse, error) {
	exists, err := s.conditionRepo.ExistsByName(ctx, req.Name)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, shared.NewDomainError("ALREADY_EXISTS", "Payment condition with this name already exists")
	}

	rules, err := s.resolveRules(ctx, req.Rules)
	if err != nil {
		return nil, err
	}

	condition, err := finance.NewPaymentCondition(req.Name, req.Description, rules)
	if err != nil {
		return nil, err
	}

	if err := s.conditionRepo.Save(ctx, condition); err != nil {
		return nil, err
	}

	response := ToPaymentConditionResponse(condition)
	return &response, nil
}

// GetByID retrieves a payment condition by ID
func (s *PaymentConditionService) GetByID(ctx context.Context, id uuid.UUID) (*PaymentConditionResponse, error) {
	condition, err := s.conditionRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	response := ToPaymentConditionResponse(condition)
	return &response, nil
}

// List retrieves payment conditions with filtering and pagination
func (s *PaymentConditionService) List(ctx context.Context, filter DocumentListFilter) ([]PaymentConditionResponse, int64, error) {
	conditions, total, err := s.conditionRepo.FindAll(ctx, buildFilter(filter, "name"))
	if err != nil {
		return nil, 0, err
	}

	responses := make([]PaymentConditionResponse, 0, len(conditions))
	for _, c := range conditions {
		responses = append(responses, ToPaymentConditionResponse(c))
	}
	return responses, total, nil
}

// Update replaces a condition's name, description and rule list
func (s *PaymentConditionService) Update(ctx context.Context, id uuid.UUID, req UpdatePaymentConditionRequest) (*PaymentConditionResponse, error) {
	condition, err := s.conditionRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != condition.Name {
		exists, err := s.conditionRepo.ExistsByName(ctx, req.Name)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, shared.NewDomainError("ALREADY_EXISTS", "Payment condition with this name already exists")
		}
	}

	rules, err := s.resolveRules(ctx, req.Rules)
	if err != nil {
		return nil, err
	}

	if err := condition.Update(req.Name, req.Description, rules); err != nil {
		return nil, err
	}
	if err := s.conditionRepo.Save(ctx, condition); err != nil {
		return nil, err
	}

	response := ToPaymentConditionResponse(condition)
	return &response, nil
}

// Activate marks the condition usable
func (s *PaymentConditionService) Activate(ctx context.Context, id uuid.UUID) (*PaymentConditionResponse, error) {
	condition, err := s.conditionRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	condition.Activate()
	if err := s.conditionRepo.Save(ctx, condition); err != nil {
		return nil, err
	}

	response := ToPaymentConditionResponse(condition)
	return &response, nil
}

// Deactivate marks the condition unusable for new documents
func (s *PaymentConditionService) Deactivate(ctx context.Context, id uuid.UUID) (*PaymentConditionResponse, error) {
	condition, err := s.conditionRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	condition.Deactivate()
	if err := s.conditionRepo.Save(ctx, condition); err != nil {
		return nil, err
	}

	response := ToPaymentConditionResponse(condition)
	return &response, nil
}

// Delete removes a payment condition. Deletion is rejected while documents
// reference it.
func (s *PaymentConditionService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.conditionRepo.FindByID(ctx, id); err != nil {
		return err
	}

	referenced, err := s.conditionRepo.IsReferenced(ctx, id)
	if err != nil {
		return err
	}
	if referenced {
		return shared.NewDomainError("HAS_DEPENDENTS", "Payment condition is referenced and cannot be deleted")
	}

	return s.conditionRepo.Delete(ctx, id)
}

// Simulate previews the installment schedule for a document total without
// persisting anything.
func (s *PaymentConditionService) Simulate(ctx context.Context, id uuid.UUID, req SimulateScheduleRequest) ([]ScheduledInstallmentResponse, error) {
	condition, err := s.conditionRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	referenceDate := time.Now()
	if req.ReferenceDate != nil {
		referenceDate = *req.ReferenceDate
	}

	installments, err := condition.ExpandSchedule(valueobject.NewMoneyBRL(req.Total), referenceDate)
	if err != nil {
		return nil, err
	}

	responses := make([]ScheduledInstallmentResponse, 0, len(installments))
	for _, inst := range installments {
		responses = append(responses, ScheduledInstallmentResponse{
			Number:          inst.Number,
			Amount:          inst.Amount,
			DueDate:         inst.DueDate,
			PaymentMethodID: inst.PaymentMethodID,
		})
	}
	return responses, nil
}

// resolveRules validates payment method references and maps to domain rules
func (s *PaymentConditionService) resolveRules(ctx context.Context, reqRules []InstallmentRuleRequest) ([]finance.InstallmentRule, error) {
	rules := make([]finance.InstallmentRule, 0, len(reqRules))
	for _, r := range reqRules {
		method, err := s.methodRepo.FindByID(ctx, r.PaymentMethodID)
		if err != nil {
			if err == shared.ErrNotFound {
				return nil, shared.NewDomainError("INVALID_PAYMENT_METHOD", "Referenced payment method does not exist")
			}
			return nil, err
		}
		if !method.Active {
			return nil, shared.NewDomainError("INVALID_PAYMENT_METHOD", "Referenced payment method is inactive")
		}
		rules = append(rules, finance.InstallmentRule{
			Number:          r.Number,
			DaysOffset:      r.DaysOffset,
			Percentage:      r.Percentage,
			PaymentMethodID: r.PaymentMethodID,
		})
	}
	return rules, nil
}
