package main

import (
	"delivery-availability/core/logger"
	"delivery-availability/core/server"
)

// @title Delivery Availability API
// @version 1.0
// @description Recurring weekly availability windows, date exceptions and delivery-frequency flags for delivery locations.
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @BasePath /api/v1
func main() {
	if err := server.Run(); err != nil {
		logger.Error("server exited", err)
	}
}
