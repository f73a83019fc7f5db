package location

import (
	"delivery-availability/core/database"
	"delivery-availability/core/middleware"
	"delivery-availability/modules/location/controller"
	"delivery-availability/modules/location/repository"
	"delivery-availability/modules/location/router"
	"delivery-availability/modules/location/service"

	"github.com/labstack/echo/v4"
)

// Init initializes the location module and registers routes.
func Init(e *echo.Echo, db database.IDatabase, mw *middleware.Middleware) {
	repo := repository.NewLocationRepository(db)
	svc := service.NewLocationService(repo)
	ctrl := controller.NewLocationController(svc)
	rtr := router.NewLocationRouter(ctrl)

	rtr.Setup(e, mw)
}
