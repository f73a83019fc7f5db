package router

import (
	"delivery-availability/core/middleware"
	"delivery-availability/modules/location/controller"

	"github.com/labstack/echo/v4"
)

// LocationRouter handles location routes.
type LocationRouter struct {
	LocationController *controller.LocationController
}

func NewLocationRouter(locationController *controller.LocationController) *LocationRouter {
	return &LocationRouter{
		LocationController: locationController,
	}
}

// Setup registers location routes.
func (r *LocationRouter) Setup(e *echo.Echo, mw *middleware.Middleware) {
	v1 := e.Group("/api/v1")
	privateRoutes := v1.Group("/private")

	locationRoutes := privateRoutes.Group("/locations", mw.AuthMiddleware())

	locationRoutes.GET("", r.LocationController.List)
	locationRoutes.GET("/:id", r.LocationController.Get)
	locationRoutes.POST("", r.LocationController.Create)
	locationRoutes.PUT("/:id", r.LocationController.Update)
	locationRoutes.DELETE("/:id", r.LocationController.Delete)
}
