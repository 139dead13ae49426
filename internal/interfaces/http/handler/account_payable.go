package handler

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	financeapp "github.com/pizzaria/backend/internal/application/finance"
)

// AccountPayableHandler handles account payable API endpoints
type AccountPayableHandler struct {
	BaseHandler
	payableService *financeapp.AccountPayableService
}

// NewAccountPayableHandler creates a new AccountPayableHandler
func NewAccountPayableHandler(payableService *financeapp.AccountPayableService) *AccountPayableHandler {
	return &AccountPayableHandler{payableService: payableService}
}

// Create godoc
// @Summary      Create a new account payable
// @Tags         payables
// @Accept       json
// @Produce      json
// @Param        request body financeapp.CreatePayableRequest true "Payable creation request"
// @Success      201 {object} dto.Response{data=financeapp.PayableResponse}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      409 {object} dto.Response{error=dto.ErrorInfo}
// @Router       /finance/payables [post]
func (h *AccountPayableHandler) Create(c *gin.Context) {
	var req financeapp.CreatePayableRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	payable, err := h.payableService.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, payable)
}

// Generate godoc
// @Summary      Generate payables from a payment condition
// @Description  Expand a payment condition into one pending payable per installment for a document total
// @Tags         payables
// @Accept       json
// @Produce      json
// @Param        request body financeapp.GeneratePayablesRequest true "Generation request"
// @Success      201 {object} dto.Response{data=[]financeapp.PayableResponse}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      409 {object} dto.Response{error=dto.ErrorInfo}
// @Router       /finance/payables/generate [post]
func (h *AccountPayableHandler) Generate(c *gin.Context) {
	var req financeapp.GeneratePayablesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	payables, err := h.payableService.GenerateFromCondition(c.Request.Context(), req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, payables)
}

// GetByID godoc
// @Summary      Get account payable by ID
// @Tags         payables
// @Produce      json
// @Param        id path string true "Payable ID" format(uuid)
// @Success      200 {object} dto.Response{data=financeapp.PayableResponse}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Router       /finance/payables/{id} [get]
func (h *AccountPayableHandler) GetByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid payable ID format")
		return
	}

	payable, err := h.payableService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, payable)
}

// List godoc
// @Summary      List account payables
// @Tags         payables
// @Produce      json
// @Param        search query string false "Search term (document number)"
// @Param        status query string false "Filter by status" Enums(PENDING, PAID, CANCELLED)
// @Param        page query int false "Page number" default(1)
// @Param        page_size query int false "Page size" default(20) maximum(100)
// @Success      200 {object} dto.Response{data=[]financeapp.PayableResponse,meta=dto.Meta}
// @Router       /finance/payables [get]
func (h *AccountPayableHandler) List(c *gin.Context) {
	var filter financeapp.DocumentListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	payables, total, err := h.payableService.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.SuccessWithMeta(c, payables, total, filter.Page, filter.PageSize)
}

// ListBySupplier godoc
// @Summary      List account payables for a supplier
// @Tags         payables
// @Produce      json
// @Param        supplier_id path string true "Supplier ID" format(uuid)
// @Param        page query int false "Page number" default(1)
// @Param        page_size query int false "Page size" default(20) maximum(100)
// @Success      200 {object} dto.Response{data=[]financeapp.PayableResponse,meta=dto.Meta}
// @Router       /finance/payables/supplier/{supplier_id} [get]
func (h *AccountPayableHandler) ListBySupplier(c *gin.Context) {
	supplierID, err := uuid.Parse(c.Param("supplier_id"))
	if err != nil {
		h.BadRequest(c, "Invalid supplier ID format")
		return
	}

	var filter financeapp.DocumentListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	payables, total, err := h.payableService.ListBySupplier(c.Request.Context(), supplierID, filter)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.SuccessWithMeta(c, payables, total, filter.Page, filter.PageSize)
}

// ListOverdue godoc
// @Summary      List overdue account payables
// @Description  List pending payables whose due date has passed
// @Tags         payables
// @Produce      json
// @Param        page query int false "Page number" default(1)
// @Param        page_size query int false "Page size" default(20) maximum(100)
// @Success      200 {object} dto.Response{data=[]financeapp.PayableResponse,meta=dto.Meta}
// @Router       /finance/payables/overdue [get]
func (h *AccountPayableHandler) ListOverdue(c *gin.Context) {
	var filter financeapp.DocumentListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	payables, total, err := h.payableService.ListOverdue(c.Request.Context(), filter)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.SuccessWithMeta(c, payables, total, filter.Page, filter.PageSize)
}

// ListByStatus godoc
// @Summary      List account payables by status
// @Tags         payables
// @Produce      json
// @Param        status path string true "Payable status" Enums(PENDING, PAID, CANCELLED)
// @Param        page query int false "Page number" default(1)
// @Param        page_size query int false "Page size" default(20) maximum(100)
// @Success      200 {object} dto.Response{data=[]financeapp.PayableResponse,meta=dto.Meta}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Router       /finance/payables/status/{status} [get]
func (h *AccountPayableHandler) ListByStatus(c *gin.Context) {
	var filter financeapp.DocumentListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.BadRequest(c, err.Error())
		return
	}
	filter.Status = strings.ToUpper(c.Param("status"))

	payables, total, err := h.payableService.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.SuccessWithMeta(c, payables, total, filter.Page, filter.PageSize)
}

// Summary godoc
// @Summary      Summarize account payables
// @Description  Aggregate open, paid, overdue and cancelled totals across all payables
// @Tags         payables
// @Produce      json
// @Success      200 {object} dto.Response{data=financeapp.PayableSummaryResponse}
// @Router       /finance/payables/summary [get]
func (h *AccountPayableHandler) Summary(c *gin.Context) {
	summary, err := h.payableService.Summary(c.Request.Context())
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, summary)
}

// Update godoc
// @Summary      Update an account payable
// @Description  Update a pending payable. Paid and cancelled payables are immutable.
// @Tags         payables
// @Accept       json
// @Produce      json
// @Param        id path string true "Payable ID" format(uuid)
// @Param        request body financeapp.UpdatePayableRequest true "Payable update request"
// @Success      200 {object} dto.Response{data=financeapp.PayableResponse}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      422 {object} dto.Response{error=dto.ErrorInfo}
// @Router       /finance/payables/{id} [put]
func (h *AccountPayableHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid payable ID format")
		return
	}

	var req financeapp.UpdatePayableRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	payable, err := h.payableService.Update(c.Request.Context(), id, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, payable)
}

// Pay godoc
// @Summary      Settle an account payable
// @Description  Mark a pending payable as paid, recording the paid amount, date and payment method
// @Tags         payables
// @Accept       json
// @Produce      json
// @Param        id path string true "Payable ID" format(uuid)
// @Param        request body financeapp.PayRequest true "Payment request"
// @Success      200 {object} dto.Response{data=financeapp.PayableResponse}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      422 {object} dto.Response{error=dto.ErrorInfo}
// @Router       /finance/payables/{id}/pay [post]
func (h *AccountPayableHandler) Pay(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid payable ID format")
		return
	}

	var req financeapp.PayRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	payable, err := h.payableService.Pay(c.Request.Context(), id, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, payable)
}

// Cancel godoc
// @Summary      Cancel an account payable
// @Description  Cancel a pending payable. Paid payables cannot be cancelled.
// @Tags         payables
// @Accept       json
// @Produce      json
// @Param        id path string true "Payable ID" format(uuid)
// @Param        request body financeapp.CancelRequest true "Cancellation request"
// @Success      200 {object} dto.Response{data=financeapp.PayableResponse}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      422 {object} dto.Response{error=dto.ErrorInfo}
// @Router       /finance/payables/{id}/cancel [post]
func (h *AccountPayableHandler) Cancel(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid payable ID format")
		return
	}

	var req financeapp.CancelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	payable, err := h.payableService.Cancel(c.Request.Context(), id, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, payable)
}

// Delete godoc
// @Summary      Delete an account payable
// @Description  Delete a payable. Only pending or cancelled payables can be deleted.
// @Tags         payables
// @Param        id path string true "Payable ID" format(uuid)
// @Success      204
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      422 {object} dto.Response{error=dto.ErrorInfo}
// @Router       /finance/payables/{id} [delete]
func (h *AccountPayableHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid payable ID format")
		return
	}

	if err := h.payableService.Delete(c.Request.Context(), id); err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.NoContent(c)
}
