package schedule

import (
	"delivery-availability/core/cache"
	"delivery-availability/core/database"
	"delivery-availability/core/middleware"
	"delivery-availability/modules/schedule/controller"
	"delivery-availability/modules/schedule/repository"
	"delivery-availability/modules/schedule/router"
	"delivery-availability/modules/schedule/service"

	"github.com/labstack/echo/v4"
)

// Init initializes the schedule module and registers routes.
func Init(e *echo.Echo, db database.IDatabase, mw *middleware.Middleware, c cache.Cache) {
	repo := repository.NewScheduleRepository(db)
	svc := service.NewScheduleService(repo, c)
	ctrl := controller.NewScheduleController(svc)
	rtr := router.NewScheduleRouter(ctrl)

	rtr.Setup(e, mw)
}
