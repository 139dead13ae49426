package finance

import (
	"context"

	"github.com/pizzaria/backend/internal/domain/finance"
	"github.com/pizzaria/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// PaymentMethodService handles payment method operations
type PaymentMethodService struct {
	methodRepo finance.PaymentMethodRepository
}

// NewPaymentMethodService creates a new PaymentMethodService
func NewPaymentMethodService(methodRepo finance.PaymentMethodRepository) *PaymentMethodService {
	return &PaymentMethodService{methodRepo: methodRepo}
}

// Create creates a new payment method
func (s *PaymentMethodService) Create(ctx context.Context, req CreatePaymentMethodRequest) (*PaymentMethodResponse, error) {
	exists, err := s.methodRepo.ExistsByCode(ctx, req.Code)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, shared.NewDomainError("ALREADY_EXISTS", "Payment method with this code already exists")
	}

	method, err := finance.NewPaymentMethod(req.Code, req.Description)
	if err != nil {
		return nil, err
	}

	if err := s.methodRepo.Save(ctx, method); err != nil {
		return nil, err
	}

	response := ToPaymentMethodResponse(method)
	return &response, nil
}

// GetByID retrieves a payment method by ID
func (s *PaymentMethodService) GetByID(ctx context.Context, id uuid.UUID) (*PaymentMethodResponse, error) {
	method, err := s.methodRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	response := ToPaymentMethodResponse(method)
	return &response, nil
}

// List retrieves payment methods with filtering and pagination
func (s *PaymentMethodService) List(ctx context.Context, filter DocumentListFilter) ([]PaymentMethodResponse, int64, error) {
	methods, total, err := s.methodRepo.FindAll(ctx, buildFilter(filter, "code"))
	if err != nil {
		return nil, 0, err
	}

	responses := make([]PaymentMethodResponse, 0, len(methods))
	for _, m := range methods {
		responses = append(responses, ToPaymentMethodResponse(m))
	}
	return responses, total, nil
}

// Update updates a payment method's description
func (s *PaymentMethodService) Update(ctx context.Context, id uuid.UUID, req UpdatePaymentMethodRequest) (*PaymentMethodResponse, error) {
	method, err := s.methodRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := method.Update(req.Description); err != nil {
		return nil, err
	}
	if err := s.methodRepo.Save(ctx, method); err != nil {
		return nil, err
	}

	response := ToPaymentMethodResponse(method)
	return &response, nil
}

// Activate marks the method usable
func (s *PaymentMethodService) Activate(ctx context.Context, id uuid.UUID) (*PaymentMethodResponse, error) {
	method, err := s.methodRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	method.Activate()
	if err := s.methodRepo.Save(ctx, method); err != nil {
		return nil, err
	}

	response := ToPaymentMethodResponse(method)
	return &response, nil
}

// Deactivate marks the method unusable for new documents
func (s *PaymentMethodService) Deactivate(ctx context.Context, id uuid.UUID) (*PaymentMethodResponse, error) {
	method, err := s.methodRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	method.Deactivate()
	if err := s.methodRepo.Save(ctx, method); err != nil {
		return nil, err
	}

	response := ToPaymentMethodResponse(method)
	return &response, nil
}

// Delete removes a payment method. Deletion is rejected while conditions or
// settled documents reference it.
func (s *PaymentMethodService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.methodRepo.FindByID(ctx, id); err != nil {
		return err
	}

	referenced, err := s.methodRepo.IsReferenced(ctx, id)
	if err != nil {
		return err
	}
	if referenced {
		return shared.NewDomainError("HAS_DEPENDENTS", "Payment method is referenced and cannot be deleted")
	}

	return s.methodRepo.Delete(ctx, id)
}

// buildFilter applies list defaults and converts to the domain filter
func buildFilter(filter DocumentListFilter, defaultOrderBy string) shared.Filter {
	if filter.Page <= 0 {
		filter.Page = 1
	}
	if filter.PageSize <= 0 {
		filter.PageSize = 20
	}
	if filter.OrderBy == "" {
		filter.OrderBy = defaultOrderBy
	}
	if filter.OrderDir == "" {
		filter.OrderDir = "asc"
	}
	domainFilter := shared.Filter{
		Page:     filter.Page,
		PageSize: filter.PageSize,
		OrderBy:  filter.OrderBy,
		OrderDir: filter.OrderDir,
		Search:   filter.Search,
		Filters:  make(map[string]any),
	}
	if filter.Status != "" {
		domainFilter.Filters["status"] = filter.Status
	}
	return domainFilter
}
