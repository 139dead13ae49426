package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	fiscalapp "github.com/pizzaria/backend/internal/application/fiscal"
	"github.com/pizzaria/backend/internal/domain/fiscal"
)

// EntryInvoiceHandler handles entry invoice API endpoints
type EntryInvoiceHandler struct {
	BaseHandler
	invoiceService *fiscalapp.EntryInvoiceService
}

// NewEntryInvoiceHandler creates a new EntryInvoiceHandler
func NewEntryInvoiceHandler(invoiceService *fiscalapp.EntryInvoiceService) *EntryInvoiceHandler {
	return &EntryInvoiceHandler{invoiceService: invoiceService}
}

// Entry invoices are identified by the NFe composite key: number, model,
// series and supplier. The key segments arrive as path parameters.
func (h *EntryInvoiceHandler) invoiceKey(c *gin.Context) (fiscal.InvoiceKey, bool) {
	supplierID, err := uuid.Parse(c.Param("supplier_id"))
	if err != nil {
		h.BadRequest(c, "Invalid supplier ID format")
		return fiscal.InvoiceKey{}, false
	}

	key, err := fiscal.NewInvoiceKey(c.Param("number"), c.Param("model"), c.Param("series"), supplierID)
	if err != nil {
		h.BadRequest(c, err.Error())
		return fiscal.InvoiceKey{}, false
	}
	return key, true
}

// Create godoc
// @Summary      Register an entry invoice
// @Description  Register a supplier invoice with its items. An optional payment condition is stored for later payable generation via the finance module
// @Tags         entry-invoices
// @Accept       json
// @Produce      json
// @Param        request body fiscalapp.CreateEntryInvoiceRequest true "Entry invoice creation request"
// @Success      201 {object} dto.Response{data=fiscalapp.EntryInvoiceResponse}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      409 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      422 {object} dto.Response{error=dto.ErrorInfo}
// @Router       /fiscal/entry-invoices [post]
func (h *EntryInvoiceHandler) Create(c *gin.Context) {
	var req fiscalapp.CreateEntryInvoiceRequest
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
// @Summary      Get entry invoice by composite key
// @Tags         entry-invoices
// @Produce      json
// @Param        number path string true "Invoice number"
// @Param        model path string true "Invoice model"
// @Param        series path string true "Invoice series"
// @Param        supplier_id path string true "Supplier ID" format(uuid)
// @Success      200 {object} dto.Response{data=fiscalapp.EntryInvoiceResponse}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Router       /fiscal/entry-invoices/{number}/{model}/{series}/{supplier_id} [get]
func (h *EntryInvoiceHandler) GetByKey(c *gin.Context) {
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
// @Summary      List entry invoices
// @Tags         entry-invoices
// @Produce      json
// @Param        search query string false "Search term (invoice number)"
// @Param        page query int false "Page number" default(1)
// @Param        page_size query int false "Page size" default(20) maximum(100)
// @Success      200 {object} dto.Response{data=[]fiscalapp.EntryInvoiceResponse,meta=dto.Meta}
// @Router       /fiscal/entry-invoices [get]
func (h *EntryInvoiceHandler) List(c *gin.Context) {
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

// ListBySupplier godoc
// @Summary      List entry invoices for a supplier
// @Tags         entry-invoices
// @Produce      json
// @Param        supplier_id path string true "Supplier ID" format(uuid)
// @Param        page query int false "Page number" default(1)
// @Param        page_size query int false "Page size" default(20) maximum(100)
// @Success      200 {object} dto.Response{data=[]fiscalapp.EntryInvoiceResponse,meta=dto.Meta}
// @Router       /fiscal/entry-invoices/supplier/{supplier_id} [get]
func (h *EntryInvoiceHandler) ListBySupplier(c *gin.Context) {
	supplierID, err := uuid.Parse(c.Param("supplier_id"))
	if err != nil {
		h.BadRequest(c, "Invalid supplier ID format")
		return
	}

	var filter fiscalapp.ListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	invoices, total, err := h.invoiceService.ListBySupplier(c.Request.Context(), supplierID, filter)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.SuccessWithMeta(c, invoices, total, filter.Page, filter.PageSize)
}

// Update godoc
// @Summary      Update an entry invoice
// @Description  Replace the mutable fields and items of an entry invoice identified by its composite key
// @Tags         entry-invoices
// @Accept       json
// @Produce      json
// @Param        number path string true "Invoice number"
// @Param        model path string true "Invoice model"
// @Param        series path string true "Invoice series"
// @Param        supplier_id path string true "Supplier ID" format(uuid)
// @Param        request body fiscalapp.UpdateEntryInvoiceRequest true "Entry invoice update request"
// @Success      200 {object} dto.Response{data=fiscalapp.EntryInvoiceResponse}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      422 {object} dto.Response{error=dto.ErrorInfo}
// @Router       /fiscal/entry-invoices/{number}/{model}/{series}/{supplier_id} [put]
func (h *EntryInvoiceHandler) Update(c *gin.Context) {
	key, ok := h.invoiceKey(c)
	if !ok {
		return
	}

	var req fiscalapp.UpdateEntryInvoiceRequest
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
// @Summary      Delete an entry invoice
// @Tags         entry-invoices
// @Param        number path string true "Invoice number"
// @Param        model path string true "Invoice model"
// @Param        series path string true "Invoice series"
// @Param        supplier_id path string true "Supplier ID" format(uuid)
// @Success      204
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Router       /fiscal/entry-invoices/{number}/{model}/{series}/{supplier_id} [delete]
func (h *EntryInvoiceHandler) Delete(c *gin.Context) {
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
