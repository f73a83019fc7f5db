package export

import (
	"delivery-availability/core/database"
	"delivery-availability/core/storage"
	availabilityService "delivery-availability/modules/availability/service"
	"delivery-availability/modules/export/service"
	locationRepo "delivery-availability/modules/location/repository"
)

// Init wires the export service. It has no routes of its own; the matrix
// export runs from the task queue.
func Init(db database.IDatabase, resolver availabilityService.ResolutionServiceInterface, uploader storage.Uploader) service.ExportServiceInterface {
	locations := locationRepo.NewLocationRepository(db)
	return service.NewExportService(locations, resolver, uploader)
}
