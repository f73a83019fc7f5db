package frequency

import (
	"delivery-availability/core/database"
	"delivery-availability/core/middleware"
	"delivery-availability/modules/frequency/controller"
	"delivery-availability/modules/frequency/repository"
	"delivery-availability/modules/frequency/router"
	"delivery-availability/modules/frequency/service"

	"github.com/labstack/echo/v4"
)

// Init initializes the frequency module and registers routes.
func Init(e *echo.Echo, db database.IDatabase, mw *middleware.Middleware) {
	repo := repository.NewFrequencyRepository(db)
	svc := service.NewFrequencyService(repo)
	ctrl := controller.NewFrequencyController(svc)
	rtr := router.NewFrequencyRouter(ctrl)

	rtr.Setup(e, mw)
}
