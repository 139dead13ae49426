package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	financeapp "github.com/pizzaria/backend/internal/application/finance"
)

// PaymentMethodHandler handles payment method API endpoints
type PaymentMethodHandler struct {
	BaseHandler
	methodService *financeapp.PaymentMethodService
}

// NewPaymentMethodHandler creates a new PaymentMethodHandler
func NewPaymentMethodHandler(methodService *financeapp.PaymentMethodService) *PaymentMethodHandler {
	return &PaymentMethodHandler{methodService: methodService}
}

// Create godoc
// @Summary      Create a new payment method
// @Tags         payment-methods
// @Accept       json
// @Produce      json
// @Param        request body financeapp.CreatePaymentMethodRequest true "Payment method creation request"
// @Success      201 {object} dto.Response{data=financeapp.PaymentMethodResponse}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      409 {object} dto.Response{error=dto.ErrorInfo}
// @Router       /finance/payment-methods [post]
func (h *PaymentMethodHandler) Create(c *gin.Context) {
	var req financeapp.CreatePaymentMethodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	method, err := h.methodService.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, method)
}

// GetByID godoc
// @Summary      Get payment method by ID
// @Tags         payment-methods
// @Produce      json
// @Param        id path string true "Payment method ID" format(uuid)
// @Success      200 {object} dto.Response{data=financeapp.PaymentMethodResponse}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Router       /finance/payment-methods/{id} [get]
func (h *PaymentMethodHandler) GetByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid payment method ID format")
		return
	}

	method, err := h.methodService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, method)
}

// List godoc
// @Summary      List payment methods
// @Tags         payment-methods
// @Produce      json
// @Param        search query string false "Search term (code or description)"
// @Param        page query int false "Page number" default(1)
// @Param        page_size query int false "Page size" default(20) maximum(100)
// @Success      200 {object} dto.Response{data=[]financeapp.PaymentMethodResponse,meta=dto.Meta}
// @Router       /finance/payment-methods [get]
func (h *PaymentMethodHandler) List(c *gin.Context) {
	var filter financeapp.DocumentListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	methods, total, err := h.methodService.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.SuccessWithMeta(c, methods, total, filter.Page, filter.PageSize)
}

// Update godoc
// @Summary      Update a payment method
// @Tags         payment-methods
// @Accept       json
// @Produce      json
// @Param        id path string true "Payment method ID" format(uuid)
// @Param        request body financeapp.UpdatePaymentMethodRequest true "Payment method update request"
// @Success      200 {object} dto.Response{data=financeapp.PaymentMethodResponse}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Router       /finance/payment-methods/{id} [put]
func (h *PaymentMethodHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid payment method ID format")
		return
	}

	var req financeapp.UpdatePaymentMethodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	method, err := h.methodService.Update(c.Request.Context(), id, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, method)
}

// Activate godoc
// @Summary      Activate a payment method
// @Tags         payment-methods
// @Produce      json
// @Param        id path string true "Payment method ID" format(uuid)
// @Success      200 {object} dto.Response{data=financeapp.PaymentMethodResponse}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Router       /finance/payment-methods/{id}/activate [post]
func (h *PaymentMethodHandler) Activate(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid payment method ID format")
		return
	}

	method, err := h.methodService.Activate(c.Request.Context(), id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, method)
}

// Deactivate godoc
// @Summary      Deactivate a payment method
// @Tags         payment-methods
// @Produce      json
// @Param        id path string true "Payment method ID" format(uuid)
// @Success      200 {object} dto.Response{data=financeapp.PaymentMethodResponse}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Router       /finance/payment-methods/{id}/deactivate [post]
func (h *PaymentMethodHandler) Deactivate(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid payment method ID format")
		return
	}

	method, err := h.methodService.Deactivate(c.Request.Context(), id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, method)
}

// Delete godoc
// @Summary      Delete a payment method
// @Description  Delete a payment method. Fails when it is referenced by documents or installment rules.
// @Tags         payment-methods
// @Param        id path string true "Payment method ID" format(uuid)
// @Success      204
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      409 {object} dto.Response{error=dto.ErrorInfo}
// @Router       /finance/payment-methods/{id} [delete]
func (h *PaymentMethodHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid payment method ID format")
		return
	}

	if err := h.methodService.Delete(c.Request.Context(), id); err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.NoContent(c)
}

// PaymentConditionHandler handles payment condition API endpoints
type PaymentConditionHandler struct {
	BaseHandler
	conditionService *financeapp.PaymentConditionService
}

// NewPaymentConditionHandler creates a new PaymentConditionHandler
func NewPaymentConditionHandler(conditionService *financeapp.PaymentConditionService) *PaymentConditionHandler {
	return &PaymentConditionHandler{conditionService: conditionService}
}

// Create godoc
// @Summary      Create a new payment condition
// @Description  Create a payment condition with installment rules. Rule percentages must sum to 100.
// @Tags         payment-conditions
// @Accept       json
// @Produce      json
// @Param        request body financeapp.CreatePaymentConditionRequest true "Payment condition creation request"
// @Success      201 {object} dto.Response{data=financeapp.PaymentConditionResponse}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      409 {object} dto.Response{error=dto.ErrorInfo}
// @Router       /finance/payment-conditions [post]
func (h *PaymentConditionHandler) Create(c *gin.Context) {
	var req financeapp.CreatePaymentConditionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	condition, err := h.conditionService.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, condition)
}

// GetByID godoc
// @Summary      Get payment condition by ID
// @Tags         payment-conditions
// @Produce      json
// @Param        id path string true "Payment condition ID" format(uuid)
// @Success      200 {object} dto.Response{data=financeapp.PaymentConditionResponse}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Router       /finance/payment-conditions/{id} [get]
func (h *PaymentConditionHandler) GetByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid payment condition ID format")
		return
	}

	condition, err := h.conditionService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, condition)
}

// List godoc
// @Summary      List payment conditions
// @Tags         payment-conditions
// @Produce      json
// @Param        search query string false "Search term (name)"
// @Param        page query int false "Page number" default(1)
// @Param        page_size query int false "Page size" default(20) maximum(100)
// @Success      200 {object} dto.Response{data=[]financeapp.PaymentConditionResponse,meta=dto.Meta}
// @Router       /finance/payment-conditions [get]
func (h *PaymentConditionHandler) List(c *gin.Context) {
	var filter financeapp.DocumentListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	conditions, total, err := h.conditionService.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.SuccessWithMeta(c, conditions, total, filter.Page, filter.PageSize)
}

// Update godoc
// @Summary      Update a payment condition
// @Description  Update a payment condition and replace its installment rules
// @Tags         payment-conditions
// @Accept       json
// @Produce      json
// @Param        id path string true "Payment condition ID" format(uuid)
// @Param        request body financeapp.UpdatePaymentConditionRequest true "Payment condition update request"
// @Success      200 {object} dto.Response{data=financeapp.PaymentConditionResponse}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      409 {object} dto.Response{error=dto.ErrorInfo}
// @Router       /finance/payment-conditions/{id} [put]
func (h *PaymentConditionHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid payment condition ID format")
		return
	}

	var req financeapp.UpdatePaymentConditionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	condition, err := h.conditionService.Update(c.Request.Context(), id, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, condition)
}

// Activate godoc
// @Summary      Activate a payment condition
// @Tags         payment-conditions
// @Produce      json
// @Param        id path string true "Payment condition ID" format(uuid)
// @Success      200 {object} dto.Response{data=financeapp.PaymentConditionResponse}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Router       /finance/payment-conditions/{id}/activate [post]
func (h *PaymentConditionHandler) Activate(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid payment condition ID format")
		return
	}

	condition, err := h.conditionService.Activate(c.Request.Context(), id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, condition)
}

// Deactivate godoc
// @Summary      Deactivate a payment condition
// @Tags         payment-conditions
// @Produce      json
// @Param        id path string true "Payment condition ID" format(uuid)
// @Success      200 {object} dto.Response{data=financeapp.PaymentConditionResponse}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Router       /finance/payment-conditions/{id}/deactivate [post]
func (h *PaymentConditionHandler) Deactivate(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid payment condition ID format")
		return
	}

	condition, err := h.conditionService.Deactivate(c.Request.Context(), id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, condition)
}

// Delete godoc
// @Summary      Delete a payment condition
// @Description  Delete a payment condition. Fails when it is referenced by invoices.
// @Tags         payment-conditions
// @Param        id path string true "Payment condition ID" format(uuid)
// @Success      204
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      409 {object} dto.Response{error=dto.ErrorInfo}
// @Router       /finance/payment-conditions/{id} [delete]
func (h *PaymentConditionHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid payment condition ID format")
		return
	}

	if err := h.conditionService.Delete(c.Request.Context(), id); err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.NoContent(c)
}

// Simulate godoc
// @Summary      Simulate an installment schedule
// @Description  Expand a payment condition into concrete installment amounts and due dates for a document total
// @Tags         payment-conditions
// @Accept       json
// @Produce      json
// @Param        id path string true "Payment condition ID" format(uuid)
// @Param        request body financeapp.SimulateScheduleRequest true "Simulation request"
// @Success      200 {object} dto.Response{data=[]financeapp.ScheduledInstallmentResponse}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      422 {object} dto.Response{error=dto.ErrorInfo}
// @Router       /finance/payment-conditions/{id}/simulate [post]
func (h *PaymentConditionHandler) Simulate(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid payment condition ID format")
		return
	}

	var req financeapp.SimulateScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	schedule, err := h.conditionService.Simulate(c.Request.Context(), id, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, schedule)
}
