package controller

import (
	"strconv"

	"delivery-availability/core/controller"
	"delivery-availability/core/errors"
	"delivery-availability/modules/frequency/dto"
	"delivery-availability/modules/frequency/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// FrequencyController handles delivery-frequency HTTP requests.
type FrequencyController struct {
	controller.BaseController
	FrequencyService service.FrequencyServiceInterface
}

func NewFrequencyController(svc service.FrequencyServiceInterface) *FrequencyController {
	return &FrequencyController{
		BaseController:   controller.NewBaseController(),
		FrequencyService: svc,
	}
}

// ListByLocation handles GET /frequency/:location_id
// @Summary List a location's frequency flags
// @Description Returns every delivery-frequency flag stored for a location
// @Tags Frequency
// @Security BearerAuth
// @Produce json
// @Param location_id path string true "Location ID"
// @Success 200 {array} dto.FlagResponse
// @Failure 400 {object} errors.AppError
// @Router /private/frequency/{location_id} [get]
func (c *FrequencyController) ListByLocation(ctx echo.Context) error {
	locationID, err := uuid.Parse(ctx.Param("location_id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "invalid location id")
	}

	result, svcErr := c.FrequencyService.ListByLocation(ctx.Request().Context(), locationID)
	if svcErr != nil {
		return c.ErrorResponse(ctx, svcErr)
	}

	return c.SuccessResponse(ctx, result, "Success")
}

// Get handles GET /frequency/:location_id/days/:day
// @Summary Read one frequency flag
// @Description Reports whether the cadence flag is set for a location and weekday
// @Tags Frequency
// @Security BearerAuth
// @Produce json
// @Param location_id path string true "Location ID"
// @Param day path int true "Day of week (0=Sunday)"
// @Success 200 {object} dto.FlagResponse
// @Failure 400 {object} errors.AppError
// @Router /private/frequency/{location_id}/days/{day} [get]
func (c *FrequencyController) Get(ctx echo.Context) error {
	locationID, err := uuid.Parse(ctx.Param("location_id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "invalid location id")
	}
	day, err := strconv.Atoi(ctx.Param("day"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "day must be an integer")
	}

	enabled, svcErr := c.FrequencyService.Has(ctx.Request().Context(), locationID, day)
	if svcErr != nil {
		return c.ErrorResponse(ctx, svcErr)
	}

	return c.SuccessResponse(ctx, &dto.FlagResponse{
		LocationID: locationID.String(),
		DayOfWeek:  day,
		Enabled:    enabled,
	}, "Success")
}

// Toggle handles POST /frequency/toggle
// @Summary Toggle a frequency flag
// @Description Flips the cadence flag for a location and weekday and returns the new state
// @Tags Frequency
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.ToggleFlagRequest true "Cell"
// @Success 200 {object} dto.ToggleResponse
// @Failure 400 {object} errors.AppError
// @Router /private/frequency/toggle [post]
func (c *FrequencyController) Toggle(ctx echo.Context) error {
	var req dto.ToggleFlagRequest
	if err := ctx.Bind(&req); err != nil {
		return c.BadRequest(errors.ErrInvalidRequestData, "invalid request body")
	}

	result, svcErr := c.FrequencyService.Toggle(ctx.Request().Context(), &req)
	if svcErr != nil {
		return c.ErrorResponse(ctx, svcErr)
	}

	return c.SuccessResponse(ctx, result, "Flag toggled successfully")
}
