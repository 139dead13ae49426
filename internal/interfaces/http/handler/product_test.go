package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	catalogapp "github.com/pizzaria/backend/internal/application/catalog"
	"github.com/pizzaria/backend/internal/domain/catalog"
	"github.com/pizzaria/backend/internal/domain/shared"
	"github.com/pizzaria/backend/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockProductRepository implements catalog.ProductRepository for testing
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

func setupProductRouter(repo *MockProductRepository) *gin.Engine {
	service := catalogapp.NewProductService(repo)
	h := NewProductHandler(service)

	r := gin.New()
	r.POST("/products", h.Create)
	r.GET("/products", h.List)
	r.GET("/products/code/:code", h.GetByCode)
	r.GET("/products/:id", h.GetByID)
	r.POST("/products/:id/adjust-stock", h.AdjustStock)
	return r
}

func TestProductHandlerCreate(t *testing.T) {
	repo := new(MockProductRepository)
	router := setupProductRouter(repo)

	repo.On("ExistsByCode", mock.Anything, "FLOUR-00").Return(false, nil)
	repo.On("Save", mock.Anything, mock.AnythingOfType("*catalog.Product")).Return(nil)

	body, _ := json.Marshal(map[string]any{
		"code": "FLOUR-00",
		"name": "Type 00 flour 25kg",
		"unit": "BAG",
	})
	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/products", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)

	data := resp.Data.(map[string]any)
	assert.Equal(t, "FLOUR-00", data["code"])
	assert.Equal(t, "BAG", data["unit"])
	repo.AssertExpectations(t)
}

func TestProductHandlerCreateDuplicateCode(t *testing.T) {
	repo := new(MockProductRepository)
	router := setupProductRouter(repo)

	repo.On("ExistsByCode", mock.Anything, "FLOUR-00").Return(true, nil)

	body, _ := json.Marshal(map[string]any{
		"code": "FLOUR-00",
		"name": "Type 00 flour 25kg",
	})
	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/products", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)

	var resp dto.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
	assert.Equal(t, "ALREADY_EXISTS", resp.Error.Code)
}

func TestProductHandlerCreateMissingName(t *testing.T) {
	repo := new(MockProductRepository)
	router := setupProductRouter(repo)

	body, _ := json.Marshal(map[string]any{"code": "FLOUR-00"})
	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/products", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestProductHandlerGetByID(t *testing.T) {
	repo := new(MockProductRepository)
	router := setupProductRouter(repo)

	product, err := catalog.NewProduct("MOZZ-01", "Mozzarella 3kg", "KG")
	require.NoError(t, err)
	repo.On("FindByID", mock.Anything, product.ID).Return(product, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/products/"+product.ID.String(), nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data := resp.Data.(map[string]any)
	assert.Equal(t, "MOZZ-01", data["code"])
}

func TestProductHandlerGetByIDNotFound(t *testing.T) {
	repo := new(MockProductRepository)
	router := setupProductRouter(repo)

	id := uuid.New()
	repo.On("FindByID", mock.Anything, id).Return(nil, shared.ErrNotFound)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/products/"+id.String(), nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestProductHandlerGetByIDInvalidUUID(t *testing.T) {
	repo := new(MockProductRepository)
	router := setupProductRouter(repo)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/products/not-a-uuid", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestProductHandlerList(t *testing.T) {
	repo := new(MockProductRepository)
	router := setupProductRouter(repo)

	p1, err := catalog.NewProduct("MOZZ-01", "Mozzarella 3kg", "KG")
	require.NoError(t, err)
	p2, err := catalog.NewProduct("TOM-01", "Peeled tomatoes", "CAN")
	require.NoError(t, err)

	repo.On("FindAll", mock.Anything, mock.AnythingOfType("shared.Filter")).Return([]catalog.Product{*p1, *p2}, nil)
	repo.On("Count", mock.Anything, mock.AnythingOfType("shared.Filter")).Return(int64(2), nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/products?page=1&page_size=10", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	require.NotNil(t, resp.Meta)
	assert.Equal(t, int64(2), resp.Meta.Total)
	assert.Len(t, resp.Data.([]any), 2)
}

func TestProductHandlerAdjustStock(t *testing.T) {
	repo := new(MockProductRepository)
	router := setupProductRouter(repo)

	product, err := catalog.NewProduct("MOZZ-01", "Mozzarella 3kg", "KG")
	require.NoError(t, err)
	repo.On("FindByID", mock.Anything, product.ID).Return(product, nil)
	repo.On("Save", mock.Anything, mock.AnythingOfType("*catalog.Product")).Return(nil)

	body, _ := json.Marshal(map[string]any{"delta": "12.5"})
	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/products/"+product.ID.String()+"/adjust-stock", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data := resp.Data.(map[string]any)
	stock, err := decimal.NewFromString(data["stock"].(string))
	require.NoError(t, err)
	assert.True(t, stock.Equal(decimal.RequireFromString("12.5")))
}

func TestProductHandlerAdjustStockBelowZero(t *testing.T) {
	repo := new(MockProductRepository)
	router := setupProductRouter(repo)

	product, err := catalog.NewProduct("MOZZ-01", "Mozzarella 3kg", "KG")
	require.NoError(t, err)
	repo.On("FindByID", mock.Anything, product.ID).Return(product, nil)

	body, _ := json.Marshal(map[string]any{"delta": "-5"})
	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/products/"+product.ID.String()+"/adjust-stock", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	var resp dto.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "INSUFFICIENT_STOCK", resp.Error.Code)
}
