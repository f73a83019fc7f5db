package controller

import (
	"delivery-availability/core/controller"
	"delivery-availability/core/errors"
	"delivery-availability/core/params"
	"delivery-availability/modules/location/dto"
	"delivery-availability/modules/location/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// LocationController handles location HTTP requests.
type LocationController struct {
	controller.BaseController
	LocationService service.LocationServiceInterface
}

func NewLocationController(svc service.LocationServiceInterface) *LocationController {
	return &LocationController{
		BaseController:  controller.NewBaseController(),
		LocationService: svc,
	}
}

// List handles GET /locations
// @Summary List locations
// @Description Returns a page of locations, optionally filtered by a search term
// @Tags Locations
// @Security BearerAuth
// @Produce json
// @Param page_number query int false "Page number"
// @Param page_size query int false "Page size"
// @Param search query string false "Name or code filter"
// @Success 200 {object} dto.LocationResponse
// @Router /private/locations [get]
func (c *LocationController) List(ctx echo.Context) error {
	p := params.NewQueryParams(ctx)

	result, svcErr := c.LocationService.List(ctx.Request().Context(), p)
	if svcErr != nil {
		return c.ErrorResponse(ctx, svcErr)
	}

	return c.SuccessResponse(ctx, result, "Success")
}

// Get handles GET /locations/:id
// @Summary Get one location
// @Tags Locations
// @Security BearerAuth
// @Produce json
// @Param id path string true "Location ID"
// @Success 200 {object} dto.LocationResponse
// @Failure 404 {object} errors.AppError
// @Router /private/locations/{id} [get]
func (c *LocationController) Get(ctx echo.Context) error {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "invalid location id")
	}

	result, svcErr := c.LocationService.GetByID(ctx.Request().Context(), id)
	if svcErr != nil {
		return c.ErrorResponse(ctx, svcErr)
	}

	return c.SuccessResponse(ctx, result, "Success")
}

// Create handles POST /locations
// @Summary Create a location
// @Description Creates a site; the code is slugified and must be unique
// @Tags Locations
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.CreateLocationRequest true "Location"
// @Success 200 {object} dto.LocationResponse
// @Failure 409 {object} errors.AppError
// @Router /private/locations [post]
func (c *LocationController) Create(ctx echo.Context) error {
	var req dto.CreateLocationRequest
	if err := ctx.Bind(&req); err != nil {
		return c.BadRequest(errors.ErrInvalidRequestData, "invalid request body")
	}

	result, svcErr := c.LocationService.Create(ctx.Request().Context(), &req)
	if svcErr != nil {
		return c.ErrorResponse(ctx, svcErr)
	}

	return c.SuccessResponse(ctx, result, "Location created successfully")
}

// Update handles PUT /locations/:id
// @Summary Update a location
// @Tags Locations
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Location ID"
// @Param request body dto.UpdateLocationRequest true "Location"
// @Success 200 {object} dto.LocationResponse
// @Failure 404 {object} errors.AppError
// @Router /private/locations/{id} [put]
func (c *LocationController) Update(ctx echo.Context) error {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "invalid location id")
	}

	var req dto.UpdateLocationRequest
	if err := ctx.Bind(&req); err != nil {
		return c.BadRequest(errors.ErrInvalidRequestData, "invalid request body")
	}

	result, svcErr := c.LocationService.Update(ctx.Request().Context(), id, &req)
	if svcErr != nil {
		return c.ErrorResponse(ctx, svcErr)
	}

	return c.SuccessResponse(ctx, result, "Location updated successfully")
}

// Delete handles DELETE /locations/:id
// @Summary Delete a location
// @Tags Locations
// @Security BearerAuth
// @Produce json
// @Param id path string true "Location ID"
// @Success 200 {object} controller.SuccessResponse
// @Failure 404 {object} errors.AppError
// @Router /private/locations/{id} [delete]
func (c *LocationController) Delete(ctx echo.Context) error {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "invalid location id")
	}

	if svcErr := c.LocationService.Delete(ctx.Request().Context(), id); svcErr != nil {
		return c.ErrorResponse(ctx, svcErr)
	}

	return c.SuccessResponse(ctx, nil, "Location deleted successfully")
}
