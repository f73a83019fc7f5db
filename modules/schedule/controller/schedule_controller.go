package controller

import (
	"delivery-availability/core/controller"
	"delivery-availability/core/errors"
	"delivery-availability/modules/schedule/dto"
	"delivery-availability/modules/schedule/entity"
	"delivery-availability/modules/schedule/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// ScheduleController handles weekly-slot HTTP requests.
type ScheduleController struct {
	controller.BaseController
	ScheduleService service.ScheduleServiceInterface
}

func NewScheduleController(svc service.ScheduleServiceInterface) *ScheduleController {
	return &ScheduleController{
		BaseController:  controller.NewBaseController(),
		ScheduleService: svc,
	}
}

// ListCell handles GET /schedule/:location_id/days/:day
// @Summary List a cell's recurring slots
// @Description Returns every recurring slot for one location and weekday
// @Tags Schedule
// @Security BearerAuth
// @Produce json
// @Param location_id path string true "Location ID"
// @Param day path int true "Day of week (0=Sunday)"
// @Success 200 {object} dto.CellResponse
// @Failure 400 {object} errors.AppError
// @Router /private/schedule/{location_id}/days/{day} [get]
func (c *ScheduleController) ListCell(ctx echo.Context) error {
	locationID, err := uuid.Parse(ctx.Param("location_id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "invalid location id")
	}
	day, appErr := parseDayParam(ctx.Param("day"))
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	result, svcErr := c.ScheduleService.ListCell(ctx.Request().Context(), locationID, day)
	if svcErr != nil {
		return c.ErrorResponse(ctx, svcErr)
	}

	return c.SuccessResponse(ctx, result, "Success")
}

// CreateSlot handles POST /schedule/slots
// @Summary Create a recurring slot
// @Description Adds a recurring availability window after validating the whole cell for conflicts
// @Tags Schedule
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.CreateSlotRequest true "Slot"
// @Success 200 {object} dto.SlotResponse
// @Failure 422 {object} errors.AppError
// @Router /private/schedule/slots [post]
func (c *ScheduleController) CreateSlot(ctx echo.Context) error {
	var req dto.CreateSlotRequest
	if err := ctx.Bind(&req); err != nil {
		return c.BadRequest(errors.ErrInvalidRequestData, "invalid request body")
	}

	result, svcErr := c.ScheduleService.CreateSlot(ctx.Request().Context(), &req)
	if svcErr != nil {
		return c.ErrorResponse(ctx, svcErr)
	}

	return c.SuccessResponse(ctx, result, "Slot created successfully")
}

// DeleteSlot handles DELETE /schedule/slots/:id
// @Summary Delete a recurring slot
// @Description Deletes one recurring slot; deleting an unknown id is an error
// @Tags Schedule
// @Security BearerAuth
// @Produce json
// @Param id path string true "Slot ID"
// @Success 200 {object} controller.SuccessResponse
// @Failure 404 {object} errors.AppError
// @Router /private/schedule/slots/{id} [delete]
func (c *ScheduleController) DeleteSlot(ctx echo.Context) error {
	slotID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "invalid slot id")
	}

	if svcErr := c.ScheduleService.DeleteSlot(ctx.Request().Context(), slotID); svcErr != nil {
		return c.ErrorResponse(ctx, svcErr)
	}

	return c.SuccessResponse(ctx, nil, "Slot deleted successfully")
}

// Replicate handles POST /schedule/replicate
// @Summary Copy or clear a cell
// @Description Copies the source cell's slots onto the target cell, or clears the target if the source is empty
// @Tags Schedule
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.ReplicateRequest true "Source and target cells"
// @Success 200 {object} service.ReplicationReport
// @Failure 409 {object} errors.AppError
// @Router /private/schedule/replicate [post]
func (c *ScheduleController) Replicate(ctx echo.Context) error {
	var req dto.ReplicateRequest
	if err := ctx.Bind(&req); err != nil {
		return c.BadRequest(errors.ErrInvalidRequestData, "invalid request body")
	}

	source, appErr := toCellKey(req.Source)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	target, appErr := toCellKey(req.Target)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	report, svcErr := c.ScheduleService.Replicate(ctx.Request().Context(), source, target)
	if svcErr != nil {
		return c.ErrorResponse(ctx, svcErr)
	}

	return c.SuccessResponse(ctx, report, "Replication completed")
}

func toCellKey(d dto.CellKeyDTO) (entity.CellKey, *errors.AppError) {
	locationID, err := uuid.Parse(d.LocationID)
	if err != nil {
		return entity.CellKey{}, errors.NewAppError(errors.ErrInvalidInput, "invalid location id", err)
	}
	return entity.CellKey{LocationID: locationID, DayOfWeek: d.DayOfWeek}, nil
}
