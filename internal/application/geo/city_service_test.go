package geo

import (
	"context"
	"testing"

	"github.com/pizzaria/backend/internal/domain/geo"
	"github.com/pizzaria/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// =============================================================================
// Mock Repositories
// =============================================================================

type MockCityRepository struct {
	mock.Mock
}

func (m *MockCityRepository) FindByID(ctx context.Context, id uuid.UUID) (*geo.City, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*geo.City), args.Error(1)
}

func (m *MockCityRepository) FindByState(ctx context.Context, stateID uuid.UUID) ([]geo.City, error) {
	args := m.Called(ctx, stateID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]geo.City), args.Error(1)
}

func (m *MockCityRepository) FindAll(ctx context.Context, filter shared.Filter) ([]geo.City, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]geo.City), args.Error(1)
}

func (m *MockCityRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockCityRepository) HasReferences(ctx context.Context, id uuid.UUID) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockCityRepository) Save(ctx context.Context, city *geo.City) error {
	args := m.Called(ctx, city)
	return args.Error(0)
}

func (m *MockCityRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockStateRepository struct {
	mock.Mock
}

func (m *MockStateRepository) FindByID(ctx context.Context, id uuid.UUID) (*geo.State, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*geo.State), args.Error(1)
}

func (m *MockStateRepository) FindByCountry(ctx context.Context, countryID uuid.UUID) ([]geo.State, error) {
	args := m.Called(ctx, countryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]geo.State), args.Error(1)
}

func (m *MockStateRepository) FindAll(ctx context.Context, filter shared.Filter) ([]geo.State, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]geo.State), args.Error(1)
}

func (m *MockStateRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockStateRepository) ExistsByUF(ctx context.Context, countryID uuid.UUID, uf string) (bool, error) {
	args := m.Called(ctx, countryID, uf)
	return args.Bool(0), args.Error(1)
}

func (m *MockStateRepository) HasCities(ctx context.Context, id uuid.UUID) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockStateRepository) Save(ctx context.Context, state *geo.State) error {
	args := m.Called(ctx, state)
	return args.Error(0)
}

func (m *MockStateRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockCountryRepository struct {
	mock.Mock
}

func (m *MockCountryRepository) FindByID(ctx context.Context, id uuid.UUID) (*geo.Country, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*geo.Country), args.Error(1)
}

func (m *MockCountryRepository) FindByName(ctx context.Context, name string) (*geo.Country, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*geo.Country), args.Error(1)
}

func (m *MockCountryRepository) FindAll(ctx context.Context, filter shared.Filter) ([]geo.Country, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]geo.Country), args.Error(1)
}

func (m *MockCountryRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockCountryRepository) ExistsByName(ctx context.Context, name string) (bool, error) {
	args := m.Called(ctx, name)
	return args.Bool(0), args.Error(1)
}

func (m *MockCountryRepository) HasStates(ctx context.Context, id uuid.UUID) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockCountryRepository) Save(ctx context.Context, country *geo.Country) error {
	args := m.Called(ctx, country)
	return args.Error(0)
}

func (m *MockCountryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// =============================================================================
// Tests
// =============================================================================

func newCityServiceWithMocks() (*CityService, *MockCityRepository, *MockStateRepository, *MockCountryRepository) {
	cityRepo := new(MockCityRepository)
	stateRepo := new(MockStateRepository)
	countryRepo := new(MockCountryRepository)
	return NewCityService(cityRepo, stateRepo, countryRepo), cityRepo, stateRepo, countryRepo
}

func TestCityService_Delete(t *testing.T) {
	service, cityRepo, _, _ := newCityServiceWithMocks()
	ctx := context.Background()

	city, err := geo.NewCity("Curitiba", "4106902", uuid.New())
	require.NoError(t, err)

	cityRepo.On("FindByID", ctx, city.ID).Return(city, nil)
	cityRepo.On("HasReferences", ctx, city.ID).Return(false, nil)
	cityRepo.On("Delete", ctx, city.ID).Return(nil)

	require.NoError(t, service.Delete(ctx, city.ID))
	cityRepo.AssertExpectations(t)
}

func TestCityService_DeleteWithReferences(t *testing.T) {
	service, cityRepo, _, _ := newCityServiceWithMocks()
	ctx := context.Background()

	city, err := geo.NewCity("Curitiba", "4106902", uuid.New())
	require.NoError(t, err)

	cityRepo.On("FindByID", ctx, city.ID).Return(city, nil)
	cityRepo.On("HasReferences", ctx, city.ID).Return(true, nil)

	err = service.Delete(ctx, city.ID)
	require.Error(t, err)

	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "HAS_DEPENDENTS", domainErr.Code)

	cityRepo.AssertNotCalled(t, "Delete", ctx, city.ID)
}

func TestCityService_DeleteNotFound(t *testing.T) {
	service, cityRepo, _, _ := newCityServiceWithMocks()
	ctx := context.Background()

	id := uuid.New()
	cityRepo.On("FindByID", ctx, id).Return(nil, shared.ErrNotFound)

	err := service.Delete(ctx, id)
	assert.ErrorIs(t, err, shared.ErrNotFound)
}
