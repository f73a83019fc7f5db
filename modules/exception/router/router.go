package router

import (
	"delivery-availability/core/middleware"
	"delivery-availability/modules/exception/controller"

	"github.com/labstack/echo/v4"
)

// ExceptionRouter handles date-override routes.
type ExceptionRouter struct {
	ExceptionController *controller.ExceptionController
}

func NewExceptionRouter(exceptionController *controller.ExceptionController) *ExceptionRouter {
	return &ExceptionRouter{
		ExceptionController: exceptionController,
	}
}

// Setup registers exception routes.
func (r *ExceptionRouter) Setup(e *echo.Echo, mw *middleware.Middleware) {
	v1 := e.Group("/api/v1")
	privateRoutes := v1.Group("/private")

	exceptionRoutes := privateRoutes.Group("/exceptions", mw.AuthMiddleware())

	exceptionRoutes.GET("/:location_id", r.ExceptionController.ListByRange)
	exceptionRoutes.GET("/:location_id/dates/:date", r.ExceptionController.GetByDate)
	exceptionRoutes.POST("", r.ExceptionController.Create)
	exceptionRoutes.PUT("/:id", r.ExceptionController.Update)
	exceptionRoutes.DELETE("/:id", r.ExceptionController.Delete)
}
