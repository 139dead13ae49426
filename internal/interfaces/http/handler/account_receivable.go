package handler

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	financeapp "github.com/pizzaria/backend/internal/application/finance"
)

// AccountReceivableHandler handles account receivable API endpoints
type AccountReceivableHandler struct {
	BaseHandler
	receivableService *financeapp.AccountReceivableService
}

// NewAccountReceivableHandler creates a new AccountReceivableHandler
func NewAccountReceivableHandler(receivableService *financeapp.AccountReceivableService) *AccountReceivableHandler {
	return &AccountReceivableHandler{receivableService: receivableService}
}

// Create godoc
// @Summary      Create a new account receivable
// @Tags         receivables
// @Accept       json
// @Produce      json
// @Param        request body financeapp.CreateReceivableRequest true "Receivable creation request"
// @Success      201 {object} dto.Response{data=financeapp.ReceivableResponse}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      409 {object} dto.Response{error=dto.ErrorInfo}
// @Router       /finance/receivables [post]
func (h *AccountReceivableHandler) Create(c *gin.Context) {
	var req financeapp.CreateReceivableRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	receivable, err := h.receivableService.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, receivable)
}

// Generate godoc
// @Summary      Generate receivables from a payment condition
// @Description  Expand a payment condition into one pending receivable per installment for a document total
// @Tags         receivables
// @Accept       json
// @Produce      json
// @Param        request body financeapp.GenerateReceivablesRequest true "Generation request"
// @Success      201 {object} dto.Response{data=[]financeapp.ReceivableResponse}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      409 {object} dto.Response{error=dto.ErrorInfo}
// @Router       /finance/receivables/generate [post]
func (h *AccountReceivableHandler) Generate(c *gin.Context) {
	var req financeapp.GenerateReceivablesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	receivables, err := h.receivableService.GenerateFromCondition(c.Request.Context(), req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, receivables)
}

// GetByID godoc
// @Summary      Get account receivable by ID
// @Tags         receivables
// @Produce      json
// @Param        id path string true "Receivable ID" format(uuid)
// @Success      200 {object} dto.Response{data=financeapp.ReceivableResponse}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Router       /finance/receivables/{id} [get]
func (h *AccountReceivableHandler) GetByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid receivable ID format")
		return
	}

	receivable, err := h.receivableService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, receivable)
}

// List godoc
// @Summary      List account receivables
// @Tags         receivables
// @Produce      json
// @Param        search query string false "Search term (document number)"
// @Param        status query string false "Filter by status" Enums(PENDING, RECEIVED, CANCELLED)
// @Param        page query int false "Page number" default(1)
// @Param        page_size query int false "Page size" default(20) maximum(100)
// @Success      200 {object} dto.Response{data=[]financeapp.ReceivableResponse,meta=dto.Meta}
// @Router       /finance/receivables [get]
func (h *AccountReceivableHandler) List(c *gin.Context) {
	var filter financeapp.DocumentListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	receivables, total, err := h.receivableService.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.SuccessWithMeta(c, receivables, total, filter.Page, filter.PageSize)
}

// ListByClient godoc
// @Summary      List account receivables for a client
// @Tags         receivables
// @Produce      json
// @Param        client_id path string true "Client ID" format(uuid)
// @Param        page query int false "Page number" default(1)
// @Param        page_size query int false "Page size" default(20) maximum(100)
// @Success      200 {object} dto.Response{data=[]financeapp.ReceivableResponse,meta=dto.Meta}
// @Router       /finance/receivables/client/{client_id} [get]
func (h *AccountReceivableHandler) ListByClient(c *gin.Context) {
	clientID, err := uuid.Parse(c.Param("client_id"))
	if err != nil {
		h.BadRequest(c, "Invalid client ID format")
		return
	}

	var filter financeapp.DocumentListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	receivables, total, err := h.receivableService.ListByClient(c.Request.Context(), clientID, filter)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.SuccessWithMeta(c, receivables, total, filter.Page, filter.PageSize)
}

// ListOverdue godoc
// @Summary      List overdue account receivables
// @Description  List pending receivables whose due date has passed
// @Tags         receivables
// @Produce      json
// @Param        page query int false "Page number" default(1)
// @Param        page_size query int false "Page size" default(20) maximum(100)
// @Success      200 {object} dto.Response{data=[]financeapp.ReceivableResponse,meta=dto.Meta}
// @Router       /finance/receivables/overdue [get]
func (h *AccountReceivableHandler) ListOverdue(c *gin.Context) {
	var filter financeapp.DocumentListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	receivables, total, err := h.receivableService.ListOverdue(c.Request.Context(), filter)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.SuccessWithMeta(c, receivables, total, filter.Page, filter.PageSize)
}

// ListByStatus godoc
// @Summary      List account receivables by status
// @Tags         receivables
// @Produce      json
// @Param        status path string true "Receivable status" Enums(PENDING, RECEIVED, CANCELLED)
// @Param        page query int false "Page number" default(1)
// @Param        page_size query int false "Page size" default(20) maximum(100)
// @Success      200 {object} dto.Response{data=[]financeapp.ReceivableResponse,meta=dto.Meta}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Router       /finance/receivables/status/{status} [get]
func (h *AccountReceivableHandler) ListByStatus(c *gin.Context) {
	var filter financeapp.DocumentListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.BadRequest(c, err.Error())
		return
	}
	filter.Status = strings.ToUpper(c.Param("status"))

	receivables, total, err := h.receivableService.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.SuccessWithMeta(c, receivables, total, filter.Page, filter.PageSize)
}

// Summary godoc
// @Summary      Summarize account receivables
// @Description  Aggregate open, received, overdue and cancelled totals across all receivables
// @Tags         receivables
// @Produce      json
// @Success      200 {object} dto.Response{data=financeapp.ReceivableSummaryResponse}
// @Router       /finance/receivables/summary [get]
func (h *AccountReceivableHandler) Summary(c *gin.Context) {
	summary, err := h.receivableService.Summary(c.Request.Context())
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, summary)
}

// Update godoc
// @Summary      Update an account receivable
// @Description  Update a pending receivable. Received and cancelled receivables are immutable.
// @Tags         receivables
// @Accept       json
// @Produce      json
// @Param        id path string true "Receivable ID" format(uuid)
// @Param        request body financeapp.UpdateReceivableRequest true "Receivable update request"
// @Success      200 {object} dto.Response{data=financeapp.ReceivableResponse}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      422 {object} dto.Response{error=dto.ErrorInfo}
// @Router       /finance/receivables/{id} [put]
func (h *AccountReceivableHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid receivable ID format")
		return
	}

	var req financeapp.UpdateReceivableRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	receivable, err := h.receivableService.Update(c.Request.Context(), id, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, receivable)
}

// Receive godoc
// @Summary      Settle an account receivable
// @Description  Mark a pending receivable as received, recording the received amount, date and payment method
// @Tags         receivables
// @Accept       json
// @Produce      json
// @Param        id path string true "Receivable ID" format(uuid)
// @Param        request body financeapp.ReceiveRequest true "Receipt request"
// @Success      200 {object} dto.Response{data=financeapp.ReceivableResponse}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      422 {object} dto.Response{error=dto.ErrorInfo}
// @Router       /finance/receivables/{id}/receive [post]
func (h *AccountReceivableHandler) Receive(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid receivable ID format")
		return
	}

	var req financeapp.ReceiveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	receivable, err := h.receivableService.Receive(c.Request.Context(), id, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, receivable)
}

// Cancel godoc
// @Summary      Cancel an account receivable
// @Description  Cancel a pending receivable. Received receivables cannot be cancelled.
// @Tags         receivables
// @Accept       json
// @Produce      json
// @Param        id path string true "Receivable ID" format(uuid)
// @Param        request body financeapp.CancelRequest true "Cancellation request"
// @Success      200 {object} dto.Response{data=financeapp.ReceivableResponse}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      422 {object} dto.Response{error=dto.ErrorInfo}
// @Router       /finance/receivables/{id}/cancel [post]
func (h *AccountReceivableHandler) Cancel(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid receivable ID format")
		return
	}

	var req financeapp.CancelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	receivable, err := h.receivableService.Cancel(c.Request.Context(), id, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, receivable)
}

// Delete godoc
// @Summary      Delete an account receivable
// @Description  Delete a receivable. Only pending or cancelled receivables can be deleted.
// @Tags         receivables
// @Param        id path string true "Receivable ID" format(uuid)
// @Success      204
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      422 {object} dto.Response{error=dto.ErrorInfo}
// @Router       /finance/receivables/{id} [delete]
func (h *AccountReceivableHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid receivable ID format")
		return
	}

	if err := h.receivableService.Delete(c.Request.Context(), id); err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.NoContent(c)
}
