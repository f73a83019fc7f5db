package router

import (
	"delivery-availability/core/middleware"
	"delivery-availability/modules/frequency/controller"

	"github.com/labstack/echo/v4"
)

// FrequencyRouter handles delivery-frequency routes.
type FrequencyRouter struct {
	FrequencyController *controller.FrequencyController
}

func NewFrequencyRouter(frequencyController *controller.FrequencyController) *FrequencyRouter {
	return &FrequencyRouter{
		FrequencyController: frequencyController,
	}
}

// Setup registers frequency routes.
func (r *FrequencyRouter) Setup(e *echo.Echo, mw *middleware.Middleware) {
	v1 := e.Group("/api/v1")
	privateRoutes := v1.Group("/private")

	frequencyRoutes := privateRoutes.Group("/frequency", mw.AuthMiddleware())

	frequencyRoutes.GET("/:location_id", r.FrequencyController.ListByLocation)
	frequencyRoutes.GET("/:location_id/days/:day", r.FrequencyController.Get)
	frequencyRoutes.POST("/toggle", r.FrequencyController.Toggle)
}
