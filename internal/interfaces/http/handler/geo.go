package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	geoapp "github.com/pizzaria/backend/internal/application/geo"
)

// CountryHandler handles country API endpoints
type CountryHandler struct {
	BaseHandler
	countryService *geoapp.CountryService
}

// NewCountryHandler creates a new CountryHandler
func NewCountryHandler(countryService *geoapp.CountryService) *CountryHandler {
	return &CountryHandler{countryService: countryService}
}

// Create godoc
// @Summary      Create a new country
// @Tags         geo
// @Accept       json
// @Produce      json
// @Param        request body geoapp.CreateCountryRequest true "Country creation request"
// @Success      201 {object} dto.Response{data=geoapp.CountryResponse}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      409 {object} dto.Response{error=dto.ErrorInfo}
// @Router       /geo/countries [post]
func (h *CountryHandler) Create(c *gin.Context) {
	var req geoapp.CreateCountryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	country, err := h.countryService.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, country)
}

// GetByID godoc
// @Summary      Get country by ID
// @Tags         geo
// @Produce      json
// @Param        id path string true "Country ID" format(uuid)
// @Success      200 {object} dto.Response{data=geoapp.CountryResponse}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Router       /geo/countries/{id} [get]
func (h *CountryHandler) GetByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid country ID format")
		return
	}

	country, err := h.countryService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, country)
}

// List godoc
// @Summary      List countries
// @Tags         geo
// @Produce      json
// @Param        search query string false "Search term (name or abbreviation)"
// @Param        page query int false "Page number" default(1)
// @Param        page_size query int false "Page size" default(20) maximum(100)
// @Success      200 {object} dto.Response{data=[]geoapp.CountryResponse,meta=dto.Meta}
// @Router       /geo/countries [get]
func (h *CountryHandler) List(c *gin.Context) {
	var filter geoapp.ListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	countries, total, err := h.countryService.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.SuccessWithMeta(c, countries, total, filter.Page, filter.PageSize)
}

// Update godoc
// @Summary      Update a country
// @Tags         geo
// @Accept       json
// @Produce      json
// @Param        id path string true "Country ID" format(uuid)
// @Param        request body geoapp.UpdateCountryRequest true "Country update request"
// @Success      200 {object} dto.Response{data=geoapp.CountryResponse}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      409 {object} dto.Response{error=dto.ErrorInfo}
// @Router       /geo/countries/{id} [put]
func (h *CountryHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid country ID format")
		return
	}

	var req geoapp.UpdateCountryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	country, err := h.countryService.Update(c.Request.Context(), id, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, country)
}

// Delete godoc
// @Summary      Delete a country
// @Description  Delete a country. Fails when the country still has states.
// @Tags         geo
// @Param        id path string true "Country ID" format(uuid)
// @Success      204
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      409 {object} dto.Response{error=dto.ErrorInfo}
// @Router       /geo/countries/{id} [delete]
func (h *CountryHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid country ID format")
		return
	}

	if err := h.countryService.Delete(c.Request.Context(), id); err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.NoContent(c)
}

// StateHandler handles state API endpoints
type StateHandler struct {
	BaseHandler
	stateService *geoapp.StateService
}

// NewStateHandler creates a new StateHandler
func NewStateHandler(stateService *geoapp.StateService) *StateHandler {
	return &StateHandler{stateService: stateService}
}

// Create godoc
// @Summary      Create a new state
// @Tags         geo
// @Accept       json
// @Produce      json
// @Param        request body geoapp.CreateStateRequest true "State creation request"
// @Success      201 {object} dto.Response{data=geoapp.StateResponse}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      409 {object} dto.Response{error=dto.ErrorInfo}
// @Router       /geo/states [post]
func (h *StateHandler) Create(c *gin.Context) {
	var req geoapp.CreateStateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	state, err := h.stateService.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, state)
}

// GetByID godoc
// @Summary      Get state by ID
// @Tags         geo
// @Produce      json
// @Param        id path string true "State ID" format(uuid)
// @Success      200 {object} dto.Response{data=geoapp.StateResponse}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Router       /geo/states/{id} [get]
func (h *StateHandler) GetByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid state ID format")
		return
	}

	state, err := h.stateService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, state)
}

// List godoc
// @Summary      List states
// @Tags         geo
// @Produce      json
// @Param        search query string false "Search term (name or UF)"
// @Param        page query int false "Page number" default(1)
// @Param        page_size query int false "Page size" default(20) maximum(100)
// @Success      200 {object} dto.Response{data=[]geoapp.StateResponse,meta=dto.Meta}
// @Router       /geo/states [get]
func (h *StateHandler) List(c *gin.Context) {
	var filter geoapp.ListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	states, total, err := h.stateService.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.SuccessWithMeta(c, states, total, filter.Page, filter.PageSize)
}

// ListByCountry godoc
// @Summary      List states of a country
// @Tags         geo
// @Produce      json
// @Param        id path string true "Country ID" format(uuid)
// @Success      200 {object} dto.Response{data=[]geoapp.StateResponse}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Router       /geo/countries/{id}/states [get]
func (h *StateHandler) ListByCountry(c *gin.Context) {
	countryID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid country ID format")
		return
	}

	states, err := h.stateService.ListByCountry(c.Request.Context(), countryID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, states)
}

// Update godoc
// @Summary      Update a state
// @Tags         geo
// @Accept       json
// @Produce      json
// @Param        id path string true "State ID" format(uuid)
// @Param        request body geoapp.UpdateStateRequest true "State update request"
// @Success      200 {object} dto.Response{data=geoapp.StateResponse}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      409 {object} dto.Response{error=dto.ErrorInfo}
// @Router       /geo/states/{id} [put]
func (h *StateHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid state ID format")
		return
	}

	var req geoapp.UpdateStateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	state, err := h.stateService.Update(c.Request.Context(), id, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, state)
}

// Delete godoc
// @Summary      Delete a state
// @Description  Delete a state. Fails when the state still has cities.
// @Tags         geo
// @Param        id path string true "State ID" format(uuid)
// @Success      204
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      409 {object} dto.Response{error=dto.ErrorInfo}
// @Router       /geo/states/{id} [delete]
func (h *StateHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid state ID format")
		return
	}

	if err := h.stateService.Delete(c.Request.Context(), id); err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.NoContent(c)
}

// CityHandler handles city API endpoints
type CityHandler struct {
	BaseHandler
	cityService *geoapp.CityService
}

// NewCityHandler creates a new CityHandler
func NewCityHandler(cityService *geoapp.CityService) *CityHandler {
	return &CityHandler{cityService: cityService}
}

// Create godoc
// @Summary      Create a new city
// @Tags         geo
// @Accept       json
// @Produce      json
// @Param        request body geoapp.CreateCityRequest true "City creation request"
// @Success      201 {object} dto.Response{data=geoapp.CityResponse}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Router       /geo/cities [post]
func (h *CityHandler) Create(c *gin.Context) {
	var req geoapp.CreateCityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	city, err := h.cityService.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, city)
}

// GetByID godoc
// @Summary      Get city by ID
// @Tags         geo
// @Produce      json
// @Param        id path string true "City ID" format(uuid)
// @Success      200 {object} dto.Response{data=geoapp.CityResponse}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Router       /geo/cities/{id} [get]
func (h *CityHandler) GetByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid city ID format")
		return
	}

	city, err := h.cityService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, city)
}

// List godoc
// @Summary      List cities
// @Tags         geo
// @Produce      json
// @Param        search query string false "Search term (name or IBGE code)"
// @Param        page query int false "Page number" default(1)
// @Param        page_size query int false "Page size" default(20) maximum(100)
// @Success      200 {object} dto.Response{data=[]geoapp.CityResponse,meta=dto.Meta}
// @Router       /geo/cities [get]
func (h *CityHandler) List(c *gin.Context) {
	var filter geoapp.ListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	cities, total, err := h.cityService.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.SuccessWithMeta(c, cities, total, filter.Page, filter.PageSize)
}

// ListByState godoc
// @Summary      List cities of a state
// @Tags         geo
// @Produce      json
// @Param        id path string true "State ID" format(uuid)
// @Success      200 {object} dto.Response{data=[]geoapp.CityResponse}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Router       /geo/states/{id}/cities [get]
func (h *CityHandler) ListByState(c *gin.Context) {
	stateID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid state ID format")
		return
	}

	cities, err := h.cityService.ListByState(c.Request.Context(), stateID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, cities)
}

// Update godoc
// @Summary      Update a city
// @Tags         geo
// @Accept       json
// @Produce      json
// @Param        id path string true "City ID" format(uuid)
// @Param        request body geoapp.UpdateCityRequest true "City update request"
// @Success      200 {object} dto.Response{data=geoapp.CityResponse}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Router       /geo/cities/{id} [put]
func (h *CityHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid city ID format")
		return
	}

	var req geoapp.UpdateCityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	city, err := h.cityService.Update(c.Request.Context(), id, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, city)
}

// Delete godoc
// @Summary      Delete a city
// @Tags         geo
// @Param        id path string true "City ID" format(uuid)
// @Success      204
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Router       /geo/cities/{id} [delete]
func (h *CityHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid city ID format")
		return
	}

	if err := h.cityService.Delete(c.Request.Context(), id); err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.NoContent(c)
}
