package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	partnerapp "github.com/pizzaria/backend/internal/application/partner"
)

// VehicleHandler handles vehicle API endpoints
type VehicleHandler struct {
	BaseHandler
	vehicleService *partnerapp.VehicleService
}

// NewVehicleHandler creates a new VehicleHandler
func NewVehicleHandler(vehicleService *partnerapp.VehicleService) *VehicleHandler {
	return &VehicleHandler{vehicleService: vehicleService}
}

// Create godoc
// @Summary      Create a new vehicle
// @Tags         vehicles
// @Accept       json
// @Produce      json
// @Param        request body partnerapp.CreateVehicleRequest true "Vehicle creation request"
// @Success      201 {object} dto.Response{data=partnerapp.VehicleResponse}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      409 {object} dto.Response{error=dto.ErrorInfo}
// @Router       /partner/vehicles [post]
func (h *VehicleHandler) Create(c *gin.Context) {
	var req partnerapp.CreateVehicleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	vehicle, err := h.vehicleService.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, vehicle)
}

// GetByID godoc
// @Summary      Get vehicle by ID
// @Tags         vehicles
// @Produce      json
// @Param        id path string true "Vehicle ID" format(uuid)
// @Success      200 {object} dto.Response{data=partnerapp.VehicleResponse}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Router       /partner/vehicles/{id} [get]
func (h *VehicleHandler) GetByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid vehicle ID format")
		return
	}

	vehicle, err := h.vehicleService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, vehicle)
}

// GetByPlate godoc
// @Summary      Get vehicle by plate
// @Description  Plate lookup is normalized, so AAA-1234 and aaa1234 match the same vehicle
// @Tags         vehicles
// @Produce      json
// @Param        plate path string true "Vehicle plate"
// @Success      200 {object} dto.Response{data=partnerapp.VehicleResponse}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Router       /partner/vehicles/plate/{plate} [get]
func (h *VehicleHandler) GetByPlate(c *gin.Context) {
	plate := c.Param("plate")
	if plate == "" {
		h.BadRequest(c, "Vehicle plate is required")
		return
	}

	vehicle, err := h.vehicleService.GetByPlate(c.Request.Context(), plate)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, vehicle)
}

// List godoc
// @Summary      List vehicles
// @Tags         vehicles
// @Produce      json
// @Param        search query string false "Search term (plate or description)"
// @Param        status query string false "Vehicle status" Enums(active, inactive)
// @Param        page query int false "Page number" default(1)
// @Param        page_size query int false "Page size" default(20) maximum(100)
// @Success      200 {object} dto.Response{data=[]partnerapp.VehicleResponse,meta=dto.Meta}
// @Router       /partner/vehicles [get]
func (h *VehicleHandler) List(c *gin.Context) {
	var filter partnerapp.ListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	vehicles, total, err := h.vehicleService.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.SuccessWithMeta(c, vehicles, total, filter.Page, filter.PageSize)
}

// ListByCarrier godoc
// @Summary      List vehicles of a carrier
// @Tags         vehicles
// @Produce      json
// @Param        id path string true "Carrier ID" format(uuid)
// @Success      200 {object} dto.Response{data=[]partnerapp.VehicleResponse}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Router       /partner/carriers/{id}/vehicles [get]
func (h *VehicleHandler) ListByCarrier(c *gin.Context) {
	carrierID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid carrier ID format")
		return
	}

	vehicles, err := h.vehicleService.ListByCarrier(c.Request.Context(), carrierID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, vehicles)
}

// Update godoc
// @Summary      Update a vehicle
// @Tags         vehicles
// @Accept       json
// @Produce      json
// @Param        id path string true "Vehicle ID" format(uuid)
// @Param        request body partnerapp.UpdateVehicleRequest true "Vehicle update request"
// @Success      200 {object} dto.Response{data=partnerapp.VehicleResponse}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      409 {object} dto.Response{error=dto.ErrorInfo}
// @Router       /partner/vehicles/{id} [put]
func (h *VehicleHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid vehicle ID format")
		return
	}

	var req partnerapp.UpdateVehicleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	vehicle, err := h.vehicleService.Update(c.Request.Context(), id, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, vehicle)
}

// Activate godoc
// @Summary      Activate a vehicle
// @Tags         vehicles
// @Produce      json
// @Param        id path string true "Vehicle ID" format(uuid)
// @Success      200 {object} dto.Response{data=partnerapp.VehicleResponse}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Router       /partner/vehicles/{id}/activate [post]
func (h *VehicleHandler) Activate(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid vehicle ID format")
		return
	}

	vehicle, err := h.vehicleService.Activate(c.Request.Context(), id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, vehicle)
}

// Deactivate godoc
// @Summary      Deactivate a vehicle
// @Tags         vehicles
// @Produce      json
// @Param        id path string true "Vehicle ID" format(uuid)
// @Success      200 {object} dto.Response{data=partnerapp.VehicleResponse}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Router       /partner/vehicles/{id}/deactivate [post]
func (h *VehicleHandler) Deactivate(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid vehicle ID format")
		return
	}

	vehicle, err := h.vehicleService.Deactivate(c.Request.Context(), id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, vehicle)
}

// Delete godoc
// @Summary      Delete a vehicle
// @Tags         vehicles
// @Param        id path string true "Vehicle ID" format(uuid)
// @Success      204
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Router       /partner/vehicles/{id} [delete]
func (h *VehicleHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid vehicle ID format")
		return
	}

	if err := h.vehicleService.Delete(c.Request.Context(), id); err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.NoContent(c)
}
