package availability

import (
	"delivery-availability/core/cache"
	"delivery-availability/core/database"
	"delivery-availability/core/middleware"
	"delivery-availability/modules/availability/controller"
	"delivery-availability/modules/availability/router"
	"delivery-availability/modules/availability/service"
	exceptionRepo "delivery-availability/modules/exception/repository"
	scheduleRepo "delivery-availability/modules/schedule/repository"

	"github.com/labstack/echo/v4"
)

// Init initializes the availability module and registers routes. The
// resolution service is returned so background jobs can reuse it.
func Init(e *echo.Echo, db database.IDatabase, mw *middleware.Middleware, c cache.Cache) service.ResolutionServiceInterface {
	slots := scheduleRepo.NewScheduleRepository(db)
	exceptions := exceptionRepo.NewExceptionRepository(db)
	svc := service.NewResolutionService(slots, exceptions, c)
	ctrl := controller.NewAvailabilityController(svc)
	rtr := router.NewAvailabilityRouter(ctrl)

	rtr.Setup(e, mw)

	return svc
}
