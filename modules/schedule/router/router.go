package router

import (
	"delivery-availability/core/middleware"
	"delivery-availability/modules/schedule/controller"

	"github.com/labstack/echo/v4"
)

// ScheduleRouter handles weekly-slot routes.
type ScheduleRouter struct {
	ScheduleController *controller.ScheduleController
}

func NewScheduleRouter(scheduleController *controller.ScheduleController) *ScheduleRouter {
	return &ScheduleRouter{
		ScheduleController: scheduleController,
	}
}

// Setup registers schedule routes.
func (r *ScheduleRouter) Setup(e *echo.Echo, mw *middleware.Middleware) {
	v1 := e.Group("/api/v1")
	privateRoutes := v1.Group("/private")

	scheduleRoutes := privateRoutes.Group("/schedule", mw.AuthMiddleware())

	scheduleRoutes.GET("/:location_id/days/:day", r.ScheduleController.ListCell)
	scheduleRoutes.POST("/slots", r.ScheduleController.CreateSlot)
	scheduleRoutes.DELETE("/slots/:id", r.ScheduleController.DeleteSlot)
	scheduleRoutes.POST("/replicate", r.ScheduleController.Replicate)
}
