package finance

import (
	"context"
	"testing"
	"time"

	"github.com/pizzaria/backend/internal/domain/finance"
	"github.com/pizzaria/backend/internal/domain/partner"
	"github.com/pizzaria/backend/internal/domain/shared"
	"github.com/pizzaria/backend/internal/domain/shared/valueobject"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// =============================================================================
// Mock Repositories
// =============================================================================

type MockAccountPayableRepository struct {
	mock.Mock
}

func (m *MockAccountPayableRepository) Save(ctx context.Context, payable *finance.AccountPayable) error {
	args := m.Called(ctx, payable)
	return args.Error(0)
}

func (m *MockAccountPayableRepository) SaveWithVersion(ctx context.Context, payable *finance.AccountPayable, expectedVersion int) error {
	args := m.Called(ctx, payable, expectedVersion)
	return args.Error(0)
}

func (m *MockAccountPayableRepository) SaveBatch(ctx context.Context, payables []*finance.AccountPayable) error {
	args := m.Called(ctx, payables)
	return args.Error(0)
}

func (m *MockAccountPayableRepository) FindByID(ctx context.Context, id uuid.UUID) (*finance.AccountPayable, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*finance.AccountPayable), args.Error(1)
}

func (m *MockAccountPayableRepository) FindAll(ctx context.Context, filter shared.Filter) ([]*finance.AccountPayable, int64, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*finance.AccountPayable), args.Get(1).(int64), args.Error(2)
}

func (m *MockAccountPayableRepository) FindBySupplier(ctx context.Context, supplierID uuid.UUID, filter shared.Filter) ([]*finance.AccountPayable, int64, error) {
	args := m.Called(ctx, supplierID, filter)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*finance.AccountPayable), args.Get(1).(int64), args.Error(2)
}

func (m *MockAccountPayableRepository) FindByStatus(ctx context.Context, status finance.PayableStatus, filter shared.Filter) ([]*finance.AccountPayable, int64, error) {
	args := m.Called(ctx, status, filter)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*finance.AccountPayable), args.Get(1).(int64), args.Error(2)
}

func (m *MockAccountPayableRepository) FindOverdue(ctx context.Context, asOf time.Time, filter shared.Filter) ([]*finance.AccountPayable, int64, error) {
	args := m.Called(ctx, asOf, filter)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*finance.AccountPayable), args.Get(1).(int64), args.Error(2)
}

func (m *MockAccountPayableRepository) Summary(ctx context.Context, asOf time.Time) (*finance.PayableSummary, error) {
	args := m.Called(ctx, asOf)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*finance.PayableSummary), args.Error(1)
}

func (m *MockAccountPayableRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

var _ finance.AccountPayableRepository = (*MockAccountPayableRepository)(nil)

type MockSupplierRepository struct {
	mock.Mock
}

func (m *MockSupplierRepository) FindByID(ctx context.Context, id uuid.UUID) (*partner.Supplier, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*partner.Supplier), args.Error(1)
}

func (m *MockSupplierRepository) FindByCode(ctx context.Context, code string) (*partner.Supplier, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*partner.Supplier), args.Error(1)
}

func (m *MockSupplierRepository) FindAll(ctx context.Context, filter shared.Filter) ([]partner.Supplier, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]partner.Supplier), args.Error(1)
}

func (m *MockSupplierRepository) FindByStatus(ctx context.Context, status partner.Status, filter shared.Filter) ([]partner.Supplier, error) {
	args := m.Called(ctx, status, filter)
	return args.Get(0).([]partner.Supplier), args.Error(1)
}

func (m *MockSupplierRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockSupplierRepository) ExistsByCode(ctx context.Context, code string) (bool, error) {
	args := m.Called(ctx, code)
	return args.Bool(0), args.Error(1)
}

func (m *MockSupplierRepository) ExistsByCNPJ(ctx context.Context, cnpj string) (bool, error) {
	args := m.Called(ctx, cnpj)
	return args.Bool(0), args.Error(1)
}

func (m *MockSupplierRepository) HasFinancialDocuments(ctx context.Context, id uuid.UUID) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockSupplierRepository) Save(ctx context.Context, supplier *partner.Supplier) error {
	args := m.Called(ctx, supplier)
	return args.Error(0)
}

func (m *MockSupplierRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

var _ partner.SupplierRepository = (*MockSupplierRepository)(nil)

type MockPaymentMethodRepository struct {
	mock.Mock
}

func (m *MockPaymentMethodRepository) Save(ctx context.Context, method *finance.PaymentMethod) error {
	args := m.Called(ctx, method)
	return args.Error(0)
}

func (m *MockPaymentMethodRepository) FindByID(ctx context.Context, id uuid.UUID) (*finance.PaymentMethod, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*finance.PaymentMethod), args.Error(1)
}

func (m *MockPaymentMethodRepository) FindByCode(ctx context.Context, code string) (*finance.PaymentMethod, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*finance.PaymentMethod), args.Error(1)
}

func (m *MockPaymentMethodRepository) ExistsByCode(ctx context.Context, code string) (bool, error) {
	args := m.Called(ctx, code)
	return args.Bool(0), args.Error(1)
}

func (m *MockPaymentMethodRepository) FindAll(ctx context.Context, filter shared.Filter) ([]*finance.PaymentMethod, int64, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*finance.PaymentMethod), args.Get(1).(int64), args.Error(2)
}

func (m *MockPaymentMethodRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockPaymentMethodRepository) IsReferenced(ctx context.Context, id uuid.UUID) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

var _ finance.PaymentMethodRepository = (*MockPaymentMethodRepository)(nil)

type MockPaymentConditionRepository struct {
	mock.Mock
}

func (m *MockPaymentConditionRepository) Save(ctx context.Context, condition *finance.PaymentCondition) error {
	args := m.Called(ctx, condition)
	return args.Error(0)
}

func (m *MockPaymentConditionRepository) FindByID(ctx context.Context, id uuid.UUID) (*finance.PaymentCondition, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*finance.PaymentCondition), args.Error(1)
}

func (m *MockPaymentConditionRepository) FindByName(ctx context.Context, name string) (*finance.PaymentCondition, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*finance.PaymentCondition), args.Error(1)
}

func (m *MockPaymentConditionRepository) ExistsByName(ctx context.Context, name string) (bool, error) {
	args := m.Called(ctx, name)
	return args.Bool(0), args.Error(1)
}

func (m *MockPaymentConditionRepository) FindAll(ctx context.Context, filter shared.Filter) ([]*finance.PaymentCondition, int64, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*finance.PaymentCondition), args.Get(1).(int64), args.Error(2)
}

func (m *MockPaymentConditionRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockPaymentConditionRepository) IsReferenced(ctx context.Context, id uuid.UUID) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

var _ finance.PaymentConditionRepository = (*MockPaymentConditionRepository)(nil)

// =============================================================================
// Test Helper Functions
// =============================================================================

func newPayableTestService() (*AccountPayableService, *MockAccountPayableRepository, *MockSupplierRepository, *MockPaymentMethodRepository, *MockPaymentConditionRepository) {
	payableRepo := new(MockAccountPayableRepository)
	supplierRepo := new(MockSupplierRepository)
	methodRepo := new(MockPaymentMethodRepository)
	conditionRepo := new(MockPaymentConditionRepository)
	service := NewAccountPayableService(payableRepo, supplierRepo, methodRepo, conditionRepo)
	return service, payableRepo, supplierRepo, methodRepo, conditionRepo
}

func createTestSupplier(t *testing.T) *partner.Supplier {
	t.Helper()
	supplier, err := partner.NewSupplier("SUP-001", "Moinho Paulista", "11.222.333/0001-81")
	require.NoError(t, err)
	return supplier
}

func createTestPayable(t *testing.T, supplierID uuid.UUID) *finance.AccountPayable {
	t.Helper()
	payable, err := finance.NewAccountPayable(
		"NF-1020", supplierID, "Moinho Paulista", 1, 1,
		valueobject.NewMoneyBRLFromFloat(500.00),
		nil, nil, nil,
		time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC),
	)
	require.NoError(t, err)
	return payable
}

func createTestMethod(t *testing.T) *finance.PaymentMethod {
	t.Helper()
	method, err := finance.NewPaymentMethod("BOLETO", "Boleto bancario")
	require.NoError(t, err)
	return method
}

// =============================================================================
// Create Tests
// =============================================================================

func TestAccountPayableService_Create_Success(t *testing.T) {
	service, payableRepo, supplierRepo, _, _ := newPayableTestService()
	ctx := context.Background()
	supplier := createTestSupplier(t)

	supplierRepo.On("FindByID", ctx, supplier.ID).Return(supplier, nil)
	payableRepo.On("Save", ctx, mock.AnythingOfType("*finance.AccountPayable")).Return(nil)

	resp, err := service.Create(ctx, CreatePayableRequest{
		DocumentNumber:    "NF-1020",
		SupplierID:        supplier.ID,
		InstallmentNumber: 1,
		InstallmentCount:  1,
		OriginalAmount:    decimal.NewFromFloat(500.00),
		IssueDate:         time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
		DueDate:           time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC),
	})

	require.NoError(t, err)
	assert.Equal(t, "NF-1020", resp.DocumentNumber)
	assert.Equal(t, supplier.Name, resp.SupplierName)
	assert.Equal(t, string(finance.PayableStatusPending), resp.Status)
	assert.True(t, resp.TotalAmount.Equal(decimal.NewFromFloat(500.00)))
	payableRepo.AssertExpectations(t)
}

func TestAccountPayableService_Create_SupplierNotFound(t *testing.T) {
	service, _, supplierRepo, _, _ := newPayableTestService()
	ctx := context.Background()
	supplierID := uuid.New()

	supplierRepo.On("FindByID", ctx, supplierID).Return(nil, shared.ErrNotFound)

	_, err := service.Create(ctx, CreatePayableRequest{
		DocumentNumber:    "NF-1020",
		SupplierID:        supplierID,
		InstallmentNumber: 1,
		InstallmentCount:  1,
		OriginalAmount:    decimal.NewFromFloat(500.00),
		IssueDate:         time.Now(),
		DueDate:           time.Now().AddDate(0, 1, 0),
	})

	assert.ErrorIs(t, err, shared.ErrNotFound)
}

// =============================================================================
// GenerateFromCondition Tests
// =============================================================================

func TestAccountPayableService_GenerateFromCondition(t *testing.T) {
	service, payableRepo, supplierRepo, _, conditionRepo := newPayableTestService()
	ctx := context.Background()
	supplier := createTestSupplier(t)
	methodID := uuid.New()

	condition, err := finance.NewPaymentCondition("30/60", "Two installments", []finance.InstallmentRule{
		{Number: 1, DaysOffset: 30, Percentage: decimal.NewFromFloat(50), PaymentMethodID: methodID},
		{Number: 2, DaysOffset: 60, Percentage: decimal.NewFromFloat(50), PaymentMethodID: methodID},
	})
	require.NoError(t, err)

	supplierRepo.On("FindByID", ctx, supplier.ID).Return(supplier, nil)
	conditionRepo.On("FindByID", ctx, condition.ID).Return(condition, nil)
	payableRepo.On("SaveBatch", ctx, mock.AnythingOfType("[]*finance.AccountPayable")).Return(nil)

	reference := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	responses, err := service.GenerateFromCondition(ctx, GeneratePayablesRequest{
		DocumentNumber:     "NF-1020",
		SupplierID:         supplier.ID,
		PaymentConditionID: condition.ID,
		Total:              decimal.NewFromFloat(1000.00),
		ReferenceDate:      reference,
	})

	require.NoError(t, err)
	require.Len(t, responses, 2)
	assert.Equal(t, 1, responses[0].InstallmentNumber)
	assert.Equal(t, 2, responses[1].InstallmentNumber)
	assert.Equal(t, 2, responses[0].InstallmentCount)
	assert.True(t, responses[0].OriginalAmount.Equal(decimal.NewFromFloat(500.00)))
	assert.True(t, responses[1].OriginalAmount.Equal(decimal.NewFromFloat(500.00)))
	assert.Equal(t, reference.AddDate(0, 0, 30), responses[0].DueDate)
	assert.Equal(t, reference.AddDate(0, 0, 60), responses[1].DueDate)
	payableRepo.AssertExpectations(t)
}

func TestAccountPayableService_GenerateFromCondition_InactiveCondition(t *testing.T) {
	service, _, supplierRepo, _, conditionRepo := newPayableTestService()
	ctx := context.Background()
	supplier := createTestSupplier(t)
	methodID := uuid.New()

	condition, err := finance.NewPaymentCondition("Cash", "", []finance.InstallmentRule{
		{Number: 1, DaysOffset: 0, Percentage: decimal.NewFromFloat(100), PaymentMethodID: methodID},
	})
	require.NoError(t, err)
	condition.Deactivate()

	supplierRepo.On("FindByID", ctx, supplier.ID).Return(supplier, nil)
	conditionRepo.On("FindByID", ctx, condition.ID).Return(condition, nil)

	_, err = service.GenerateFromCondition(ctx, GeneratePayablesRequest{
		DocumentNumber:     "NF-1020",
		SupplierID:         supplier.ID,
		PaymentConditionID: condition.ID,
		Total:              decimal.NewFromFloat(1000.00),
		ReferenceDate:      time.Now(),
	})

	var domainErr *shared.DomainError
	assert.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "INVALID_STATE", domainErr.Code)
}

// =============================================================================
// Pay Tests
// =============================================================================

func TestAccountPayableService_Pay_Success(t *testing.T) {
	service, payableRepo, _, methodRepo, _ := newPayableTestService()
	ctx := context.Background()
	payable := createTestPayable(t, uuid.New())
	method := createTestMethod(t)

	payableRepo.On("FindByID", ctx, payable.ID).Return(payable, nil)
	methodRepo.On("FindByID", ctx, method.ID).Return(method, nil)
	payableRepo.On("SaveWithVersion", ctx, payable, 1).Return(nil)

	resp, err := service.Pay(ctx, payable.ID, PayRequest{
		Amount:          decimal.NewFromFloat(500.00),
		PaymentMethodID: method.ID,
	})

	require.NoError(t, err)
	assert.Equal(t, string(finance.PayableStatusPaid), resp.Status)
	assert.True(t, resp.PaidAmount.Equal(decimal.NewFromFloat(500.00)))
	assert.NotNil(t, resp.PaymentDate)
	payableRepo.AssertExpectations(t)
}

func TestAccountPayableService_Pay_ExceedsTotal(t *testing.T) {
	service, payableRepo, _, methodRepo, _ := newPayableTestService()
	ctx := context.Background()
	payable := createTestPayable(t, uuid.New())
	method := createTestMethod(t)

	payableRepo.On("FindByID", ctx, payable.ID).Return(payable, nil)
	methodRepo.On("FindByID", ctx, method.ID).Return(method, nil)

	_, err := service.Pay(ctx, payable.ID, PayRequest{
		Amount:          decimal.NewFromFloat(500.01),
		PaymentMethodID: method.ID,
	})

	var domainErr *shared.DomainError
	assert.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "EXCEEDS_TOTAL", domainErr.Code)
}

func TestAccountPayableService_Pay_UnknownMethod(t *testing.T) {
	service, payableRepo, _, methodRepo, _ := newPayableTestService()
	ctx := context.Background()
	payable := createTestPayable(t, uuid.New())
	methodID := uuid.New()

	payableRepo.On("FindByID", ctx, payable.ID).Return(payable, nil)
	methodRepo.On("FindByID", ctx, methodID).Return(nil, shared.ErrNotFound)

	_, err := service.Pay(ctx, payable.ID, PayRequest{
		Amount:          decimal.NewFromFloat(500.00),
		PaymentMethodID: methodID,
	})

	var domainErr *shared.DomainError
	assert.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "INVALID_PAYMENT_METHOD", domainErr.Code)
}

func TestAccountPayableService_Pay_ConcurrencyConflict(t *testing.T) {
	service, payableRepo, _, methodRepo, _ := newPayableTestService()
	ctx := context.Background()
	payable := createTestPayable(t, uuid.New())
	method := createTestMethod(t)

	payableRepo.On("FindByID", ctx, payable.ID).Return(payable, nil)
	methodRepo.On("FindByID", ctx, method.ID).Return(method, nil)
	payableRepo.On("SaveWithVersion", ctx, payable, 1).Return(shared.ErrConcurrencyConflict)

	_, err := service.Pay(ctx, payable.ID, PayRequest{
		Amount:          decimal.NewFromFloat(500.00),
		PaymentMethodID: method.ID,
	})

	assert.ErrorIs(t, err, shared.ErrConcurrencyConflict)
}

// =============================================================================
// Cancel and Delete Tests
// =============================================================================

func TestAccountPayableService_Cancel_RequiresReason(t *testing.T) {
	service, payableRepo, _, _, _ := newPayableTestService()
	ctx := context.Background()
	payable := createTestPayable(t, uuid.New())

	payableRepo.On("FindByID", ctx, payable.ID).Return(payable, nil)

	_, err := service.Cancel(ctx, payable.ID, CancelRequest{Reason: ""})

	var domainErr *shared.DomainError
	assert.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "INVALID_REASON", domainErr.Code)
}

func TestAccountPayableService_Cancel_Success(t *testing.T) {
	service, payableRepo, _, _, _ := newPayableTestService()
	ctx := context.Background()
	payable := createTestPayable(t, uuid.New())

	payableRepo.On("FindByID", ctx, payable.ID).Return(payable, nil)
	payableRepo.On("SaveWithVersion", ctx, payable, 1).Return(nil)

	resp, err := service.Cancel(ctx, payable.ID, CancelRequest{Reason: "Duplicate entry"})

	require.NoError(t, err)
	assert.Equal(t, string(finance.PayableStatusCancelled), resp.Status)
	payableRepo.AssertExpectations(t)
}

func TestAccountPayableService_Delete_PaidRejected(t *testing.T) {
	service, payableRepo, _, _, _ := newPayableTestService()
	ctx := context.Background()
	payable := createTestPayable(t, uuid.New())
	require.NoError(t, payable.Pay(valueobject.NewMoneyBRLFromFloat(500.00), nil, uuid.New()))

	payableRepo.On("FindByID", ctx, payable.ID).Return(payable, nil)

	err := service.Delete(ctx, payable.ID)

	var domainErr *shared.DomainError
	assert.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "INVALID_STATE", domainErr.Code)
}

func TestAccountPayableService_Delete_PendingAllowed(t *testing.T) {
	service, payableRepo, _, _, _ := newPayableTestService()
	ctx := context.Background()
	payable := createTestPayable(t, uuid.New())

	payableRepo.On("FindByID", ctx, payable.ID).Return(payable, nil)
	payableRepo.On("Delete", ctx, payable.ID).Return(nil)

	err := service.Delete(ctx, payable.ID)

	assert.NoError(t, err)
	payableRepo.AssertExpectations(t)
}
