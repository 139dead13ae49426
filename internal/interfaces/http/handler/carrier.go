package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	partnerapp "github.com/pizzaria/backend/internal/application/partner"
)

// CarrierHandler handles carrier API endpoints
type CarrierHandler struct {
	BaseHandler
	carrierService *partnerapp.CarrierService
}

// NewCarrierHandler creates a new CarrierHandler
func NewCarrierHandler(carrierService *partnerapp.CarrierService) *CarrierHandler {
	return &CarrierHandler{carrierService: carrierService}
}

// Create godoc
// @Summary      Create a new carrier
// @Tags         carriers
// @Accept       json
// @Produce      json
// @Param        request body partnerapp.CreateCarrierRequest true "Carrier creation request"
// @Success      201 {object} dto.Response{data=partnerapp.CarrierResponse}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      409 {object} dto.Response{error=dto.ErrorInfo}
// @Router       /partner/carriers [post]
func (h *CarrierHandler) Create(c *gin.Context) {
	var req partnerapp.CreateCarrierRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	carrier, err := h.carrierService.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, carrier)
}

// GetByID godoc
// @Summary      Get carrier by ID
// @Tags         carriers
// @Produce      json
// @Param        id path string true "Carrier ID" format(uuid)
// @Success      200 {object} dto.Response{data=partnerapp.CarrierResponse}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Router       /partner/carriers/{id} [get]
func (h *CarrierHandler) GetByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid carrier ID format")
		return
	}

	carrier, err := h.carrierService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, carrier)
}

// List godoc
// @Summary      List carriers
// @Tags         carriers
// @Produce      json
// @Param        search query string false "Search term (name, code or CNPJ)"
// @Param        status query string false "Carrier status" Enums(active, inactive)
// @Param        page query int false "Page number" default(1)
// @Param        page_size query int false "Page size" default(20) maximum(100)
// @Success      200 {object} dto.Response{data=[]partnerapp.CarrierResponse,meta=dto.Meta}
// @Router       /partner/carriers [get]
func (h *CarrierHandler) List(c *gin.Context) {
	var filter partnerapp.ListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	carriers, total, err := h.carrierService.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.SuccessWithMeta(c, carriers, total, filter.Page, filter.PageSize)
}

// Update godoc
// @Summary      Update a carrier
// @Tags         carriers
// @Accept       json
// @Produce      json
// @Param        id path string true "Carrier ID" format(uuid)
// @Param        request body partnerapp.UpdateCarrierRequest true "Carrier update request"
// @Success      200 {object} dto.Response{data=partnerapp.CarrierResponse}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      409 {object} dto.Response{error=dto.ErrorInfo}
// @Router       /partner/carriers/{id} [put]
func (h *CarrierHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid carrier ID format")
		return
	}

	var req partnerapp.UpdateCarrierRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	carrier, err := h.carrierService.Update(c.Request.Context(), id, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, carrier)
}

// Activate godoc
// @Summary      Activate a carrier
// @Tags         carriers
// @Produce      json
// @Param        id path string true "Carrier ID" format(uuid)
// @Success      200 {object} dto.Response{data=partnerapp.CarrierResponse}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Router       /partner/carriers/{id}/activate [post]
func (h *CarrierHandler) Activate(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid carrier ID format")
		return
	}

	carrier, err := h.carrierService.Activate(c.Request.Context(), id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, carrier)
}

// Deactivate godoc
// @Summary      Deactivate a carrier
// @Tags         carriers
// @Produce      json
// @Param        id path string true "Carrier ID" format(uuid)
// @Success      200 {object} dto.Response{data=partnerapp.CarrierResponse}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Router       /partner/carriers/{id}/deactivate [post]
func (h *CarrierHandler) Deactivate(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid carrier ID format")
		return
	}

	carrier, err := h.carrierService.Deactivate(c.Request.Context(), id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, carrier)
}

// Delete godoc
// @Summary      Delete a carrier
// @Description  Delete a carrier. Fails when the carrier still has vehicles.
// @Tags         carriers
// @Param        id path string true "Carrier ID" format(uuid)
// @Success      204
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      409 {object} dto.Response{error=dto.ErrorInfo}
// @Router       /partner/carriers/{id} [delete]
func (h *CarrierHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid carrier ID format")
		return
	}

	if err := h.carrierService.Delete(c.Request.Context(), id); err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.NoContent(c)
}
