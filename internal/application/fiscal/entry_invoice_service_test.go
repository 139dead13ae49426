package fiscal

import (
	"context"
	"testing"
	"time"

	"github.com/pizzaria/backend/internal/domain/catalog"
	"github.com/pizzaria/backend/internal/domain/finance"
	"github.com/pizzaria/backend/internal/domain/fiscal"
	"github.com/pizzaria/backend/internal/domain/partner"
	"github.com/pizzaria/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// =============================================================================
// Mock Repositories
// =============================================================================

type MockEntryInvoiceRepository struct {
	mock.Mock
}

func (m *MockEntryInvoiceRepository) Save(ctx context.Context, invoice *fiscal.EntryInvoice) error {
	args := m.Called(ctx, invoice)
	return args.Error(0)
}

func (m *MockEntryInvoiceRepository) FindByKey(ctx context.Context, key fiscal.InvoiceKey) (*fiscal.EntryInvoice, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*fiscal.EntryInvoice), args.Error(1)
}

func (m *MockEntryInvoiceRepository) ExistsByKey(ctx context.Context, key fiscal.InvoiceKey) (bool, error) {
	args := m.Called(ctx, key)
	return args.Bool(0), args.Error(1)
}

func (m *MockEntryInvoiceRepository) FindAll(ctx context.Context, filter shared.Filter) ([]*fiscal.EntryInvoice, int64, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*fiscal.EntryInvoice), args.Get(1).(int64), args.Error(2)
}

func (m *MockEntryInvoiceRepository) FindBySupplier(ctx context.Context, supplierID uuid.UUID, filter shared.Filter) ([]*fiscal.EntryInvoice, int64, error) {
	args := m.Called(ctx, supplierID, filter)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*fiscal.EntryInvoice), args.Get(1).(int64), args.Error(2)
}

func (m *MockEntryInvoiceRepository) DeleteByKey(ctx context.Context, key fiscal.InvoiceKey) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

var _ fiscal.EntryInvoiceRepository = (*MockEntryInvoiceRepository)(nil)

type MockExitInvoiceRepository struct {
	mock.Mock
}

func (m *MockExitInvoiceRepository) Save(ctx context.Context, invoice *fiscal.ExitInvoice) error {
	args := m.Called(ctx, invoice)
	return args.Error(0)
}

func (m *MockExitInvoiceRepository) FindByKey(ctx context.Context, key fiscal.InvoiceKey) (*fiscal.ExitInvoice, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*fiscal.ExitInvoice), args.Error(1)
}

func (m *MockExitInvoiceRepository) ExistsByKey(ctx context.Context, key fiscal.InvoiceKey) (bool, error) {
	args := m.Called(ctx, key)
	return args.Bool(0), args.Error(1)
}

func (m *MockExitInvoiceRepository) FindAll(ctx context.Context, filter shared.Filter) ([]*fiscal.ExitInvoice, int64, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*fiscal.ExitInvoice), args.Get(1).(int64), args.Error(2)
}

func (m *MockExitInvoiceRepository) FindByClient(ctx context.Context, clientID uuid.UUID, filter shared.Filter) ([]*fiscal.ExitInvoice, int64, error) {
	args := m.Called(ctx, clientID, filter)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*fiscal.ExitInvoice), args.Get(1).(int64), args.Error(2)
}

func (m *MockExitInvoiceRepository) DeleteByKey(ctx context.Context, key fiscal.InvoiceKey) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

var _ fiscal.ExitInvoiceRepository = (*MockExitInvoiceRepository)(nil)

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

type MockClientRepository struct {
	mock.Mock
}

func (m *MockClientRepository) FindByID(ctx context.Context, id uuid.UUID) (*partner.Client, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*partner.Client), args.Error(1)
}

func (m *MockClientRepository) FindByCode(ctx context.Context, code string) (*partner.Client, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*partner.Client), args.Error(1)
}

func (m *MockClientRepository) FindAll(ctx context.Context, filter shared.Filter) ([]partner.Client, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]partner.Client), args.Error(1)
}

func (m *MockClientRepository) FindByStatus(ctx context.Context, status partner.Status, filter shared.Filter) ([]partner.Client, error) {
	args := m.Called(ctx, status, filter)
	return args.Get(0).([]partner.Client), args.Error(1)
}

func (m *MockClientRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockClientRepository) ExistsByCode(ctx context.Context, code string) (bool, error) {
	args := m.Called(ctx, code)
	return args.Bool(0), args.Error(1)
}

func (m *MockClientRepository) ExistsByDocument(ctx context.Context, document string) (bool, error) {
	args := m.Called(ctx, document)
	return args.Bool(0), args.Error(1)
}

func (m *MockClientRepository) HasFinancialDocuments(ctx context.Context, id uuid.UUID) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockClientRepository) Save(ctx context.Context, client *partner.Client) error {
	args := m.Called(ctx, client)
	return args.Error(0)
}

func (m *MockClientRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

var _ partner.ClientRepository = (*MockClientRepository)(nil)

type MockCarrierRepository struct {
	mock.Mock
}

func (m *MockCarrierRepository) FindByID(ctx context.Context, id uuid.UUID) (*partner.Carrier, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*partner.Carrier), args.Error(1)
}

func (m *MockCarrierRepository) FindByCode(ctx context.Context, code string) (*partner.Carrier, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*partner.Carrier), args.Error(1)
}

func (m *MockCarrierRepository) FindAll(ctx context.Context, filter shared.Filter) ([]partner.Carrier, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]partner.Carrier), args.Error(1)
}

func (m *MockCarrierRepository) FindByStatus(ctx context.Context, status partner.Status, filter shared.Filter) ([]partner.Carrier, error) {
	args := m.Called(ctx, status, filter)
	return args.Get(0).([]partner.Carrier), args.Error(1)
}

func (m *MockCarrierRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockCarrierRepository) ExistsByCode(ctx context.Context, code string) (bool, error) {
	args := m.Called(ctx, code)
	return args.Bool(0), args.Error(1)
}

func (m *MockCarrierRepository) HasVehicles(ctx context.Context, id uuid.UUID) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockCarrierRepository) Save(ctx context.Context, carrier *partner.Carrier) error {
	args := m.Called(ctx, carrier)
	return args.Error(0)
}

func (m *MockCarrierRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

var _ partner.CarrierRepository = (*MockCarrierRepository)(nil)

type MockVehicleRepository struct {
	mock.Mock
}

func (m *MockVehicleRepository) FindByID(ctx context.Context, id uuid.UUID) (*partner.Vehicle, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*partner.Vehicle), args.Error(1)
}

func (m *MockVehicleRepository) FindByPlate(ctx context.Context, plate string) (*partner.Vehicle, error) {
	args := m.Called(ctx, plate)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*partner.Vehicle), args.Error(1)
}

func (m *MockVehicleRepository) FindByCarrier(ctx context.Context, carrierID uuid.UUID) ([]partner.Vehicle, error) {
	args := m.Called(ctx, carrierID)
	return args.Get(0).([]partner.Vehicle), args.Error(1)
}

func (m *MockVehicleRepository) FindAll(ctx context.Context, filter shared.Filter) ([]partner.Vehicle, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]partner.Vehicle), args.Error(1)
}

func (m *MockVehicleRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockVehicleRepository) ExistsByPlate(ctx context.Context, plate string) (bool, error) {
	args := m.Called(ctx, plate)
	return args.Bool(0), args.Error(1)
}

func (m *MockVehicleRepository) Save(ctx context.Context, vehicle *partner.Vehicle) error {
	args := m.Called(ctx, vehicle)
	return args.Error(0)
}

func (m *MockVehicleRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

var _ partner.VehicleRepository = (*MockVehicleRepository)(nil)

type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) FindByID(ctx context.Context, id uuid.UUID) (*catalog.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Product), args.Error(1)
}

func (m *MockProductRepository) FindByCode(ctx context.Context, code string) (*catalog.Product, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Product), args.Error(1)
}

func (m *MockProductRepository) FindAll(ctx context.Context, filter shared.Filter) ([]catalog.Product, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]catalog.Product), args.Error(1)
}

func (m *MockProductRepository) FindByStatus(ctx context.Context, status catalog.ProductStatus, filter shared.Filter) ([]catalog.Product, error) {
	args := m.Called(ctx, status, filter)
	return args.Get(0).([]catalog.Product), args.Error(1)
}

func (m *MockProductRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockProductRepository) ExistsByCode(ctx context.Context, code string) (bool, error) {
	args := m.Called(ctx, code)
	return args.Bool(0), args.Error(1)
}

func (m *MockProductRepository) Save(ctx context.Context, product *catalog.Product) error {
	args := m.Called(ctx, product)
	return args.Error(0)
}

func (m *MockProductRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

var _ catalog.ProductRepository = (*MockProductRepository)(nil)

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

func newEntryTestService() (*EntryInvoiceService, *MockEntryInvoiceRepository, *MockSupplierRepository, *MockProductRepository, *MockPaymentConditionRepository) {
	invoiceRepo := new(MockEntryInvoiceRepository)
	supplierRepo := new(MockSupplierRepository)
	productRepo := new(MockProductRepository)
	conditionRepo := new(MockPaymentConditionRepository)
	service := NewEntryInvoiceService(invoiceRepo, supplierRepo, productRepo, conditionRepo)
	return service, invoiceRepo, supplierRepo, productRepo, conditionRepo
}

func createTestSupplier(t *testing.T) *partner.Supplier {
	t.Helper()
	supplier, err := partner.NewSupplier("SUP-001", "Moinho Paulista", "11.222.333/0001-81")
	require.NoError(t, err)
	return supplier
}

func createTestProduct(t *testing.T, code, name string) *catalog.Product {
	t.Helper()
	product, err := catalog.NewProduct(code, name, "KG")
	require.NoError(t, err)
	return product
}

func entryDates() (time.Time, time.Time) {
	emission := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	arrival := time.Date(2026, 3, 3, 0, 0, 0, 0, time.UTC)
	return emission, arrival
}

// =============================================================================
// EntryInvoiceService Tests
// =============================================================================

func TestEntryInvoiceService_Create_Success(t *testing.T) {
	service, invoiceRepo, supplierRepo, productRepo, _ := newEntryTestService()
	ctx := context.Background()
	supplier := createTestSupplier(t)
	flour := createTestProduct(t, "FLR-001", "Farinha Tipo 00")
	tomato := createTestProduct(t, "TOM-001", "Molho de Tomate")

	supplierRepo.On("FindByID", ctx, supplier.ID).Return(supplier, nil)
	invoiceRepo.On("ExistsByKey", ctx, mock.AnythingOfType("fiscal.InvoiceKey")).Return(false, nil)
	productRepo.On("FindByID", ctx, flour.ID).Return(flour, nil)
	productRepo.On("FindByID", ctx, tomato.ID).Return(tomato, nil)
	invoiceRepo.On("Save", ctx, mock.AnythingOfType("*fiscal.EntryInvoice")).Return(nil)

	emission, arrival := entryDates()
	resp, err := service.Create(ctx, CreateEntryInvoiceRequest{
		Number:       "22232",
		Model:        "55",
		Series:       "1",
		SupplierID:   supplier.ID,
		EmissionDate: emission,
		ArrivalDate:  arrival,
		Items: []InvoiceItemRequest{
			{ProductID: flour.ID, Quantity: decimal.NewFromInt(10), UnitPrice: decimal.NewFromFloat(30.00)},
			{ProductID: tomato.ID, Quantity: decimal.NewFromInt(20), UnitPrice: decimal.NewFromFloat(10.00)},
		},
		ProductTotal: decimal.NewFromFloat(500.00),
		Freight:      decimal.NewFromFloat(40.00),
	})

	require.NoError(t, err)
	assert.Equal(t, "22232", resp.Number)
	assert.Equal(t, "55", resp.Model)
	assert.Equal(t, "1", resp.Series)
	assert.Equal(t, supplier.ID, resp.SupplierID)
	assert.Equal(t, supplier.Name, resp.SupplierName)
	require.Len(t, resp.Items, 2)
	assert.Equal(t, "Farinha Tipo 00", resp.Items[0].ProductName)
	assert.True(t, resp.InvoiceTotal.Equal(decimal.NewFromFloat(540.00)))
	invoiceRepo.AssertExpectations(t)
}

func TestEntryInvoiceService_Create_DuplicateKey(t *testing.T) {
	service, invoiceRepo, supplierRepo, _, _ := newEntryTestService()
	ctx := context.Background()
	supplier := createTestSupplier(t)

	supplierRepo.On("FindByID", ctx, supplier.ID).Return(supplier, nil)
	invoiceRepo.On("ExistsByKey", ctx, mock.AnythingOfType("fiscal.InvoiceKey")).Return(true, nil)

	emission, arrival := entryDates()
	_, err := service.Create(ctx, CreateEntryInvoiceRequest{
		Number:       "22232",
		Model:        "55",
		Series:       "1",
		SupplierID:   supplier.ID,
		EmissionDate: emission,
		ArrivalDate:  arrival,
		Items: []InvoiceItemRequest{
			{ProductID: uuid.New(), Quantity: decimal.NewFromInt(1), UnitPrice: decimal.NewFromFloat(10.00)},
		},
		ProductTotal: decimal.NewFromFloat(10.00),
	})

	var domainErr *shared.DomainError
	assert.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "ALREADY_EXISTS", domainErr.Code)
	assert.Contains(t, domainErr.Message, "22232/55/1")
}

func TestEntryInvoiceService_Create_UnknownProduct(t *testing.T) {
	service, invoiceRepo, supplierRepo, productRepo, _ := newEntryTestService()
	ctx := context.Background()
	supplier := createTestSupplier(t)
	productID := uuid.New()

	supplierRepo.On("FindByID", ctx, supplier.ID).Return(supplier, nil)
	invoiceRepo.On("ExistsByKey", ctx, mock.AnythingOfType("fiscal.InvoiceKey")).Return(false, nil)
	productRepo.On("FindByID", ctx, productID).Return(nil, shared.ErrNotFound)

	emission, arrival := entryDates()
	_, err := service.Create(ctx, CreateEntryInvoiceRequest{
		Number:       "22232",
		Model:        "55",
		Series:       "1",
		SupplierID:   supplier.ID,
		EmissionDate: emission,
		ArrivalDate:  arrival,
		Items: []InvoiceItemRequest{
			{ProductID: productID, Quantity: decimal.NewFromInt(1), UnitPrice: decimal.NewFromFloat(10.00)},
		},
		ProductTotal: decimal.NewFromFloat(10.00),
	})

	var domainErr *shared.DomainError
	assert.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "INVALID_PRODUCT", domainErr.Code)
}

func TestEntryInvoiceService_Create_TotalsMismatch(t *testing.T) {
	service, invoiceRepo, supplierRepo, productRepo, _ := newEntryTestService()
	ctx := context.Background()
	supplier := createTestSupplier(t)
	flour := createTestProduct(t, "FLR-001", "Farinha Tipo 00")

	supplierRepo.On("FindByID", ctx, supplier.ID).Return(supplier, nil)
	invoiceRepo.On("ExistsByKey", ctx, mock.AnythingOfType("fiscal.InvoiceKey")).Return(false, nil)
	productRepo.On("FindByID", ctx, flour.ID).Return(flour, nil)

	emission, arrival := entryDates()
	_, err := service.Create(ctx, CreateEntryInvoiceRequest{
		Number:       "22232",
		Model:        "55",
		Series:       "1",
		SupplierID:   supplier.ID,
		EmissionDate: emission,
		ArrivalDate:  arrival,
		Items: []InvoiceItemRequest{
			{ProductID: flour.ID, Quantity: decimal.NewFromInt(10), UnitPrice: decimal.NewFromFloat(30.00)},
		},
		ProductTotal: decimal.NewFromFloat(310.00),
	})

	var domainErr *shared.DomainError
	assert.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "TOTALS_MISMATCH", domainErr.Code)
}

func TestEntryInvoiceService_Update_KeyUnchanged(t *testing.T) {
	service, invoiceRepo, _, _, _ := newEntryTestService()
	ctx := context.Background()

	key, err := fiscal.NewInvoiceKey("22232", "55", "1", uuid.New())
	require.NoError(t, err)
	item, err := fiscal.NewInvoiceItem(1, uuid.New(), "Farinha Tipo 00", decimal.NewFromInt(10), decimal.NewFromFloat(30.00), decimal.Zero)
	require.NoError(t, err)
	emission, arrival := entryDates()
	invoice, err := fiscal.NewEntryInvoice(key, "Moinho Paulista", emission, arrival,
		[]fiscal.InvoiceItem{item},
		decimal.NewFromFloat(300.00), decimal.Zero, decimal.Zero, decimal.Zero, decimal.Zero, nil)
	require.NoError(t, err)

	invoiceRepo.On("FindByKey", ctx, key).Return(invoice, nil)
	invoiceRepo.On("Save", ctx, invoice).Return(nil)

	notes := "Conferido no recebimento"
	resp, err := service.Update(ctx, key, UpdateEntryInvoiceRequest{Notes: &notes})

	require.NoError(t, err)
	assert.Equal(t, key.Number, resp.Number)
	assert.Equal(t, key.Model, resp.Model)
	assert.Equal(t, key.Series, resp.Series)
	assert.Equal(t, key.PartnerID, resp.SupplierID)
	assert.Equal(t, notes, resp.Notes)
	invoiceRepo.AssertExpectations(t)
}

func TestEntryInvoiceService_Update_InvalidDates(t *testing.T) {
	service, invoiceRepo, _, _, _ := newEntryTestService()
	ctx := context.Background()

	key, err := fiscal.NewInvoiceKey("22232", "55", "1", uuid.New())
	require.NoError(t, err)
	item, err := fiscal.NewInvoiceItem(1, uuid.New(), "Farinha Tipo 00", decimal.NewFromInt(10), decimal.NewFromFloat(30.00), decimal.Zero)
	require.NoError(t, err)
	emission, arrival := entryDates()
	invoice, err := fiscal.NewEntryInvoice(key, "Moinho Paulista", emission, arrival,
		[]fiscal.InvoiceItem{item},
		decimal.NewFromFloat(300.00), decimal.Zero, decimal.Zero, decimal.Zero, decimal.Zero, nil)
	require.NoError(t, err)

	invoiceRepo.On("FindByKey", ctx, key).Return(invoice, nil)

	badArrival := emission.AddDate(0, 0, -1)
	_, err = service.Update(ctx, key, UpdateEntryInvoiceRequest{ArrivalDate: &badArrival})

	var domainErr *shared.DomainError
	assert.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "INVALID_DATES", domainErr.Code)
}

func TestEntryInvoiceService_Delete_NotFound(t *testing.T) {
	service, invoiceRepo, _, _, _ := newEntryTestService()
	ctx := context.Background()

	key, err := fiscal.NewInvoiceKey("99999", "55", "1", uuid.New())
	require.NoError(t, err)

	invoiceRepo.On("FindByKey", ctx, key).Return(nil, shared.ErrNotFound)

	err = service.Delete(ctx, key)

	assert.ErrorIs(t, err, shared.ErrNotFound)
}

func TestEntryInvoiceService_Delete_Success(t *testing.T) {
	service, invoiceRepo, _, _, _ := newEntryTestService()
	ctx := context.Background()

	key, err := fiscal.NewInvoiceKey("22232", "55", "1", uuid.New())
	require.NoError(t, err)
	item, err := fiscal.NewInvoiceItem(1, uuid.New(), "Farinha Tipo 00", decimal.NewFromInt(10), decimal.NewFromFloat(30.00), decimal.Zero)
	require.NoError(t, err)
	emission, arrival := entryDates()
	invoice, err := fiscal.NewEntryInvoice(key, "Moinho Paulista", emission, arrival,
		[]fiscal.InvoiceItem{item},
		decimal.NewFromFloat(300.00), decimal.Zero, decimal.Zero, decimal.Zero, decimal.Zero, nil)
	require.NoError(t, err)

	invoiceRepo.On("FindByKey", ctx, key).Return(invoice, nil)
	invoiceRepo.On("DeleteByKey", ctx, key).Return(nil)

	err = service.Delete(ctx, key)

	assert.NoError(t, err)
	invoiceRepo.AssertExpectations(t)
}
