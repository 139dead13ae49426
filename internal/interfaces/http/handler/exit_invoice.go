package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	fiscalapp "github.com/pizzaria/backend/internal/application/fiscal"
	"github.com/pizzaria/backend/internal/domain/fiscal"
)

// ExitInvoiceHandler handles exit invoice API endpoints
type ExitInvoiceHandler struct {
	BaseHandler
	invoiceService *fiscalapp.ExitInvoiceService
}

// NewExitInvoiceHandler creates a new ExitInvoiceHandler
func NewExitInvoiceHandler(invoiceService *fiscalapp.ExitInvoiceService) *ExitInvoiceHandler {
	return &ExitInvoiceHandler{invoiceService: invoiceService}
}

func (h *ExitInvoiceHandler) invoiceKey(c *gin.Context) (fiscal.InvoiceKey, bool) {
	clientID, err := uuid.Parse(c.Param("client_id"))
	if err != nil {
		h.BadRequest(c, "Invalid client ID format")
		return fiscal.InvoiceKey{}, false
	}

	key, err := fiscal.NewInvoiceKey(c.Param("number"), c.Param("model"), c.Param("series"), clientID)
	if err != nil {
		h.BadRequest(c, err.Error())
		return fiscal.InvoiceKey{}, false
	}
	return key, true
}

// Create godoc
// @Summary      Issue an exit invoice
// @Description  Issue a sales invoice with its items, optional shipment data, and generate the matching receivables when a payment condition is given
// @Tags         exit-invoices
// @Accept       json
// @Produce      json
// @Param        request body fiscalapp.CreateExitInvoiceRequest true "Exit invoice creation request"
// @Success      201 {object} dto.Response{data=fiscalapp.ExitInvoiceResponse}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      409 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      422 {object} dto.Response{error=dto.ErrorInfo}
// @Router       /fiscal/exit-invoices [post]
func (h *ExitInvoiceHandler) Create(c *gin.Context) {
	var req fiscalapp.CreateExitInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	invoice, err := h.invoiceService.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, invoice)
}

// GetByKey godoc
// @Summary      Get exit invoice by composite key
// @Tags         exit-invoices
// @Produce      json
// @Param        number path string true "Invoice number"
// @Param        model path string true "Invoice model"
// @Param        series path string true "Invoice series"
// @Param        client_id path string true "Client ID" format(uuid)
// @Success      200 {object} dto.Response{data=fiscalapp.ExitInvoiceResponse}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Router       /fiscal/exit-invoices/{number}/{model}/{series}/{client_id} [get]
func (h *ExitInvoiceHandler) GetByKey(c *gin.Context) {
	key, ok := h.invoiceKey(c)
	if !ok {
		return
	}

	invoice, err := h.invoiceService.GetByKey(c.Request.Context(), key)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, invoice)
}

// List godoc
// @Summary      List exit invoices
// @Tags         exit-invoices
// @Produce      json
// @Param        search query string false "Search term (invoice number)"
// @Param        page query int false "Page number" default(1)
// @Param        page_size query int false "Page size" default(20) maximum(100)
// @Success      200 {object} dto.Response{data=[]fiscalapp.ExitInvoiceResponse,meta=dto.Meta}
// @Router       /fiscal/exit-invoices [get]
func (h *ExitInvoiceHandler) List(c *gin.Context) {
	var filter fiscalapp.ListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	invoices, total, err := h.invoiceService.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.SuccessWithMeta(c, invoices, total, filter.Page, filter.PageSize)
}

// ListByClient godoc
// @Summary      List exit invoices for a client
// @Tags         exit-invoices
// @Produce      json
// @Param        client_id path string true "Client ID" format(uuid)
// @Param        page query int false "Page number" default(1)
// @Param        page_size query int false "Page size" default(20) maximum(100)
// @Success      200 {object} dto.Response{data=[]fiscalapp.ExitInvoiceResponse,meta=dto.Meta}
// @Router       /fiscal/exit-invoices/client/{client_id} [get]
func (h *ExitInvoiceHandler) ListByClient(c *gin.Context) {
	clientID, err := uuid.Parse(c.Param("client_id"))
	if err != nil {
		h.BadRequest(c, "Invalid client ID format")
		return
	}

	var filter fiscalapp.ListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	invoices, total, err := h.invoiceService.ListByClient(c.Request.Context(), clientID, filter)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.SuccessWithMeta(c, invoices, total, filter.Page, filter.PageSize)
}

// Update godoc
// @Summary      Update an exit invoice
// @Description  Replace the mutable fields, items and shipment data of an exit invoice identified by its composite key
// @Tags         exit-invoices
// @Accept       json
// @Produce      json
// @Param        number path string true "Invoice number"
// @Param        model path string true "Invoice model"
// @Param        series path string true "Invoice series"
// @Param        client_id path string true "Client ID" format(uuid)
// @Param        request body fiscalapp.UpdateExitInvoiceRequest true "Exit invoice update request"
// @Success      200 {object} dto.Response{data=fiscalapp.ExitInvoiceResponse}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      422 {object} dto.Response{error=dto.ErrorInfo}
// @Router       /fiscal/exit-invoices/{number}/{model}/{series}/{client_id} [put]
func (h *ExitInvoiceHandler) Update(c *gin.Context) {
	key, ok := h.invoiceKey(c)
	if !ok {
		return
	}

	var req fiscalapp.UpdateExitInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	invoice, err := h.invoiceService.Update(c.Request.Context(), key, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, invoice)
}

// Delete godoc
// @Summary      Delete an exit invoice
// @Tags         exit-invoices
// @Param        number path string true "Invoice number"
// @Param        model path string true "Invoice model"
// @Param        series path string true "Invoice series"
// @Param        client_id path string true "Client ID" format(uuid)
// @Success      204
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Router       /fiscal/exit-invoices/{number}/{model}/{series}/{client_id} [delete]
func (h *ExitInvoiceHandler) Delete(c *gin.Context) {
	key, ok := h.invoiceKey(c)
	if !ok {
		return
	}

	if err := h.invoiceService.Delete(c.Request.Context(), key); err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.NoContent(c)
}
