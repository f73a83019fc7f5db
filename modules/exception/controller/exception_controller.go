package controller

import (
	"time"

	"delivery-availability/core/constants"
	"delivery-availability/core/controller"
	"delivery-availability/core/errors"
	"delivery-availability/modules/exception/dto"
	"delivery-availability/modules/exception/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// ExceptionController handles date-override HTTP requests.
type ExceptionController struct {
	controller.BaseController
	ExceptionService service.ExceptionServiceInterface
}

func NewExceptionController(svc service.ExceptionServiceInterface) *ExceptionController {
	return &ExceptionController{
		BaseController:   controller.NewBaseController(),
		ExceptionService: svc,
	}
}

// GetByDate handles GET /exceptions/:location_id/dates/:date
// @Summary Get the override for one date
// @Description Returns the exception active for a location on a calendar date, if any
// @Tags Exceptions
// @Security BearerAuth
// @Produce json
// @Param location_id path string true "Location ID"
// @Param date path string true "Date (YYYY-MM-DD)"
// @Success 200 {object} dto.ExceptionResponse
// @Failure 400 {object} errors.AppError
// @Router /private/exceptions/{location_id}/dates/{date} [get]
func (c *ExceptionController) GetByDate(ctx echo.Context) error {
	locationID, err := uuid.Parse(ctx.Param("location_id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "invalid location id")
	}
	date, err := time.Parse(constants.DateLayout, ctx.Param("date"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "date must be YYYY-MM-DD")
	}

	result, svcErr := c.ExceptionService.GetByLocationAndDate(ctx.Request().Context(), locationID, date)
	if svcErr != nil {
		return c.ErrorResponse(ctx, svcErr)
	}

	return c.SuccessResponse(ctx, result, "Success")
}

// ListByRange handles GET /exceptions/:location_id
// @Summary List overrides in a date range
// @Description Returns every exception for a location between the from and to dates inclusive
// @Tags Exceptions
// @Security BearerAuth
// @Produce json
// @Param location_id path string true "Location ID"
// @Param from query string true "Range start (YYYY-MM-DD)"
// @Param to query string true "Range end (YYYY-MM-DD)"
// @Success 200 {array} dto.ExceptionResponse
// @Failure 400 {object} errors.AppError
// @Router /private/exceptions/{location_id} [get]
func (c *ExceptionController) ListByRange(ctx echo.Context) error {
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
	if to.Before(from) {
		return c.BadRequest(errors.ErrInvalidInput, "to must not precede from")
	}

	result, svcErr := c.ExceptionService.ListByLocationAndRange(ctx.Request().Context(), locationID, from, to)
	if svcErr != nil {
		return c.ErrorResponse(ctx, svcErr)
	}

	return c.SuccessResponse(ctx, result, "Success")
}

// Create handles POST /exceptions
// @Summary Create a date override
// @Description Creates one exception per location and date; a second exception for the same date is rejected
// @Tags Exceptions
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.CreateExceptionRequest true "Exception"
// @Success 200 {object} dto.ExceptionResponse
// @Failure 409 {object} errors.AppError
// @Router /private/exceptions [post]
func (c *ExceptionController) Create(ctx echo.Context) error {
	var req dto.CreateExceptionRequest
	if err := ctx.Bind(&req); err != nil {
		return c.BadRequest(errors.ErrInvalidRequestData, "invalid request body")
	}

	result, svcErr := c.ExceptionService.Create(ctx.Request().Context(), &req)
	if svcErr != nil {
		return c.ErrorResponse(ctx, svcErr)
	}

	return c.SuccessResponse(ctx, result, "Exception created successfully")
}

// Update handles PUT /exceptions/:id
// @Summary Update a date override
// @Description Updates an exception's type, times or note; the date itself is immutable
// @Tags Exceptions
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Exception ID"
// @Param request body dto.UpdateExceptionRequest true "Exception"
// @Success 200 {object} dto.ExceptionResponse
// @Failure 404 {object} errors.AppError
// @Router /private/exceptions/{id} [put]
func (c *ExceptionController) Update(ctx echo.Context) error {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "invalid exception id")
	}

	var req dto.UpdateExceptionRequest
	if err := ctx.Bind(&req); err != nil {
		return c.BadRequest(errors.ErrInvalidRequestData, "invalid request body")
	}

	result, svcErr := c.ExceptionService.Update(ctx.Request().Context(), id, &req)
	if svcErr != nil {
		return c.ErrorResponse(ctx, svcErr)
	}

	return c.SuccessResponse(ctx, result, "Exception updated successfully")
}

// Delete handles DELETE /exceptions/:id
// @Summary Delete a date override
// @Description Removes an exception so the date falls back to the recurring schedule
// @Tags Exceptions
// @Security BearerAuth
// @Produce json
// @Param id path string true "Exception ID"
// @Success 200 {object} controller.SuccessResponse
// @Failure 404 {object} errors.AppError
// @Router /private/exceptions/{id} [delete]
func (c *ExceptionController) Delete(ctx echo.Context) error {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "invalid exception id")
	}

	if svcErr := c.ExceptionService.Delete(ctx.Request().Context(), id); svcErr != nil {
		return c.ErrorResponse(ctx, svcErr)
	}

	return c.SuccessResponse(ctx, nil, "Exception deleted successfully")
}
