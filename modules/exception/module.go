package exception

import (
	"delivery-availability/core/database"
	"delivery-availability/core/middleware"
	"delivery-availability/modules/exception/controller"
	"delivery-availability/modules/exception/repository"
	"delivery-availability/modules/exception/router"
	"delivery-availability/modules/exception/service"

	"github.com/labstack/echo/v4"
)

// Init initializes the exception module and registers routes. The service
// is returned so the retention prune task can reuse it.
func Init(e *echo.Echo, db database.IDatabase, mw *middleware.Middleware) service.ExceptionServiceInterface {
	repo := repository.NewExceptionRepository(db)
	svc := service.NewExceptionService(repo)
	ctrl := controller.NewExceptionController(svc)
	rtr := router.NewExceptionRouter(ctrl)

	rtr.Setup(e, mw)

	return svc
}
