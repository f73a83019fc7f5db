package router

import (
	"delivery-availability/core/middleware"
	"delivery-availability/modules/availability/controller"

	"github.com/labstack/echo/v4"
)

// AvailabilityRouter handles resolution routes.
type AvailabilityRouter struct {
	AvailabilityController *controller.AvailabilityController
}

func NewAvailabilityRouter(availabilityController *controller.AvailabilityController) *AvailabilityRouter {
	return &AvailabilityRouter{
		AvailabilityController: availabilityController,
	}
}

// Setup registers availability routes.
func (r *AvailabilityRouter) Setup(e *echo.Echo, mw *middleware.Middleware) {
	v1 := e.Group("/api/v1")
	privateRoutes := v1.Group("/private")

	availabilityRoutes := privateRoutes.Group("/availability", mw.AuthMiddleware())

	availabilityRoutes.GET("/:location_id/days/:day", r.AvailabilityController.ResolveCell)
	availabilityRoutes.GET("/:location_id/week", r.AvailabilityController.ResolveWeek)
	availabilityRoutes.GET("/:location_id/matrix", r.AvailabilityController.ResolveMatrix)
}
