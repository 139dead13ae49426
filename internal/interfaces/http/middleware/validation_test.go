package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pizzaria/backend/internal/interfaces/http/dto"
)

func TestSetupValidator(t *testing.T) {
	SetupValidator()

	v, ok := binding.Validator.Engine().(*validator.Validate)
	assert.True(t, ok)
	assert.NotNil(t, v)
}

func TestHandleValidationError(t *testing.T) {
	type createVehicleBody struct {
		Plate    string `json:"plate" binding:"required,min=1,max=10"`
		Capacity int    `json:"capacity" binding:"omitempty,gte=0"`
	}

	SetupValidator()
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.POST("/vehicles", func(c *gin.Context) {
		var req createVehicleBody
		if err := c.ShouldBindJSON(&req); err != nil {
			HandleValidationError(c, err)
			return
		}
		c.JSON(http.StatusOK, dto.NewSuccessResponse(req))
	})

	t.Run("reports per-field details with json tag names", func(t *testing.T) {
		body := strings.NewReader(`{"plate": "", "capacity": -3}`)
		req := httptest.NewRequest("POST", "/vehicles", body)
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)

		var resp dto.Response
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.False(t, resp.Success)
		require.NotNil(t, resp.Error)
		assert.Equal(t, dto.ErrCodeValidation, resp.Error.Code)
		assert.Equal(t, "Request validation failed", resp.Error.Message)

		fields := make(map[string]string)
		for _, d := range resp.Error.Details {
			fields[d.Field] = d.Message
		}
		assert.Equal(t, "This field is required", fields["plate"])
		assert.Equal(t, "Must be greater than or equal to 0", fields["capacity"])
	})

	t.Run("passes valid input through", func(t *testing.T) {
		body := strings.NewReader(`{"plate": "ABC1D23", "capacity": 1200}`)
		req := httptest.NewRequest("POST", "/vehicles", body)
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("carries the request ID when present", func(t *testing.T) {
		r := gin.New()
		r.Use(RequestID())
		r.POST("/vehicles", func(c *gin.Context) {
			var req createVehicleBody
			if err := c.ShouldBindJSON(&req); err != nil {
				HandleValidationError(c, err)
				return
			}
			c.JSON(http.StatusOK, dto.NewSuccessResponse(req))
		})

		body := strings.NewReader(`{}`)
		req := httptest.NewRequest("POST", "/vehicles", body)
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set(RequestIDKey, "req-42")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)

		var resp dto.Response
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		require.NotNil(t, resp.Error)
		assert.Equal(t, "req-42", resp.Error.RequestID)
	})
}

func TestGetValidationMessage(t *testing.T) {
	type sample struct {
		Email string `json:"email" binding:"omitempty,email"`
		Code  string `json:"code" binding:"omitempty,len=5"`
		Kind  string `json:"kind" binding:"omitempty,oneof=entry exit"`
	}

	SetupValidator()
	v, ok := binding.Validator.Engine().(*validator.Validate)
	require.True(t, ok)

	err := v.Struct(sample{Email: "nope", Code: "abc", Kind: "other"})
	require.Error(t, err)

	validationErrors, ok := err.(validator.ValidationErrors)
	require.True(t, ok)

	messages := make(map[string]string)
	for _, e := range validationErrors {
		messages[e.Field()] = getValidationMessage(e)
	}
	assert.Equal(t, "Invalid email format", messages["email"])
	assert.Equal(t, "Must be exactly 5 characters", messages["code"])
	assert.Equal(t, "Must be one of: entry exit", messages["kind"])
}
