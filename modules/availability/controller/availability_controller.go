package controller

import (
	"strconv"
	"time"

	"delivery-availability/core/constants"
	"delivery-availability/core/controller"
	"delivery-availability/core/errors"
	"delivery-availability/modules/availability/dto"
	"delivery-availability/modules/availability/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// AvailabilityController handles resolution HTTP requests.
type AvailabilityController struct {
	controller.BaseController
	ResolutionService service.ResolutionServiceInterface
}

func NewAvailabilityController(svc service.ResolutionServiceInterface) *AvailabilityController {
	return &AvailabilityController{
		BaseController:    controller.NewBaseController(),
		ResolutionService: svc,
	}
}

// ResolveCell handles GET /availability/:location_id/days/:day
// @Summary Resolve one cell
// @Description Returns the effective status of a location/weekday cell; an optional date query applies that date's exception
// @Tags Availability
// @Security BearerAuth
// @Produce json
// @Param location_id path string true "Location ID"
// @Param day path int true "Day of week (0=Sunday)"
// @Param date query string false "Calendar date (YYYY-MM-DD)"
// @Success 200 {object} dto.ResolutionResponse
// @Failure 400 {object} errors.AppError
// @Router /private/availability/{location_id}/days/{day} [get]
func (c *AvailabilityController) ResolveCell(ctx echo.Context) error {
	locationID, err := uuid.Parse(ctx.Param("location_id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "invalid location id")
	}
	day, err := strconv.Atoi(ctx.Param("day"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "day must be an integer")
	}

	var date *time.Time
	var dateStr *string
	if raw := ctx.QueryParam("date"); raw != "" {
		parsed, parseErr := time.Parse(constants.DateLayout, raw)
		if parseErr != nil {
			return c.BadRequest(errors.ErrInvalidInput, "date must be YYYY-MM-DD")
		}
		date = &parsed
		dateStr = &raw
	}

	res, svcErr := c.ResolutionService.Resolve(ctx.Request().Context(), locationID, day, date)
	if svcErr != nil {
		return c.ErrorResponse(ctx, svcErr)
	}

	return c.SuccessResponse(ctx, &dto.ResolutionResponse{
		LocationID: locationID.String(),
		DayOfWeek:  day,
		Date:       dateStr,
		Resolution: *res,
	}, "Success")
}

// ResolveWeek handles GET /availability/:location_id/week
// @Summary Resolve a full week
// @Description Returns the weekly view for a location, one resolution per weekday
// @Tags Availability
// @Security BearerAuth
// @Produce json
// @Param location_id path string true "Location ID"
// @Success 200 {object} dto.WeekResponse
// @Failure 400 {object} errors.AppError
// @Router /private/availability/{location_id}/week [get]
func (c *AvailabilityController) ResolveWeek(ctx echo.Context) error {
	locationID, err := uuid.Parse(ctx.Param("location_id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "invalid location id")
	}

	week, svcErr := c.ResolutionService.ResolveWeek(ctx.Request().Context(), locationID)
	if svcErr != nil {
		return c.ErrorResponse(ctx, svcErr)
	}

	days := make([]dto.DayCell, 0, len(week))
	for day, res := range week {
		days = append(days, dto.DayCell{DayOfWeek: day, Resolution: res})
	}

	return c.SuccessResponse(ctx, &dto.WeekResponse{
		LocationID: locationID.String(),
		Days:       days,
	}, "Success")
}

// ResolveMatrix handles GET /availability/:location_id/matrix
// @Summary Resolve a date range
// @Description Returns one resolution per calendar date in [from, to], with exceptions applied on their dates
// @Tags Availability
// @Security BearerAuth
// @Produce json
// @Param location_id path string true "Location ID"
// @Param from query string true "Range start (YYYY-MM-DD)"
// @Param to query string true "Range end (YYYY-MM-DD)"
// @Success 200 {object} dto.MatrixResponse
// @Failure 400 {object} errors.AppError
// @Router /private/availability/{location_id}/matrix [get]
func (c *AvailabilityController) ResolveMatrix(ctx echo.Context) error {
	locationID, err := uuid.Parse(ctx.Param("location_id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "invalid location id")
	}

	from, err := time.Parse(constants.DateLayout, ctx.QueryParam("from"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "from must be YYYY-MM-DD")
	}
	to, err := time.Parse(constants.DateLayout, ctx.QueryParam("to"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "to must be YYYY-MM-DD")
	}

	matrix, svcErr := c.ResolutionService.ResolveMatrix(ctx.Request().Context(), locationID, from, to)
	if svcErr != nil {
		return c.ErrorResponse(ctx, svcErr)
	}

	return c.SuccessResponse(ctx, &dto.MatrixResponse{
		LocationID: locationID.String(),
		From:       from.Format(constants.DateLayout),
		To:         to.Format(constants.DateLayout),
		Days:       matrix,
	}, "Success")
}
