package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"delivery-availability/core/constants"
	"delivery-availability/core/errors"
	"delivery-availability/core/logger"
	"delivery-availability/core/storage"
	"delivery-availability/core/utils"
	availabilityEntity "delivery-availability/modules/availability/entity"
	availabilityService "delivery-availability/modules/availability/service"
	locationRepo "delivery-availability/modules/location/repository"

	"github.com/hibiken/asynq"
)

// ExportService snapshots the weekly availability matrix of every active
// location into the export bucket.
type ExportService struct {
	locations locationRepo.LocationRepositoryInterface
	resolver  availabilityService.ResolutionServiceInterface
	uploader  storage.Uploader
}

// ExportServiceInterface defines the service contract.
type ExportServiceInterface interface {
	ExportMatrix(ctx context.Context) (string, *errors.AppError)
}

func NewExportService(locations locationRepo.LocationRepositoryInterface, resolver availabilityService.ResolutionServiceInterface, uploader storage.Uploader) ExportServiceInterface {
	return &ExportService{locations: locations, resolver: resolver, uploader: uploader}
}

type locationMatrix struct {
	LocationID string                          `json:"location_id"`
	Name       string                          `json:"name"`
	Code       string                          `json:"code"`
	Days       []availabilityEntity.Resolution `json:"days"`
}

type matrixDocument struct {
	GeneratedAt time.Time        `json:"generated_at"`
	Locations   []locationMatrix `json:"locations"`
}

// ExportMatrix resolves all seven weekdays for every active location,
// serializes the result and uploads it. Returns the object key.
func (s *ExportService) ExportMatrix(ctx context.Context) (string, *errors.AppError) {
	ctx, cancel := context.WithTimeout(ctx, constants.DefaultTimeout)
	defer cancel()

	active, err := s.locations.ListActive(ctx)
	if err != nil {
		return "", errors.NewAppError(errors.ErrGetFailed, "failed to list active locations", err)
	}

	doc := matrixDocument{
		GeneratedAt: time.Now().UTC(),
		Locations:   make([]locationMatrix, 0, len(active)),
	}
	for i := range active {
		loc := &active[i]
		week, appErr := s.resolver.ResolveWeek(ctx, loc.ID)
		if appErr != nil {
			return "", appErr
		}
		doc.Locations = append(doc.Locations, locationMatrix{
			LocationID: loc.ID.String(),
			Name:       loc.Name,
			Code:       loc.Code,
			Days:       week,
		})
	}

	payload, jsonErr := json.Marshal(doc)
	if jsonErr != nil {
		return "", errors.NewAppError(errors.ErrInternalServer, "failed to serialize matrix", jsonErr)
	}

	key := fmt.Sprintf("availability/matrix-%s-%s.json",
		doc.GeneratedAt.Format("20060102"), utils.GenerateID())
	if err := s.uploader.Upload(ctx, key, payload, "application/json"); err != nil {
		return "", errors.NewAppError(errors.ErrInternalServer, "failed to upload matrix", err)
	}

	return key, nil
}

// NewExportTaskHandler adapts ExportMatrix to the task queue.
func NewExportTaskHandler(svc ExportServiceInterface) asynq.HandlerFunc {
	return func(ctx context.Context, _ *asynq.Task) error {
		key, appErr := svc.ExportMatrix(ctx)
		if appErr != nil {
			logger.Error("ExportService:ExportMatrix", appErr)
			return appErr
		}
		logger.Info("exported availability matrix", "key", key)
		return nil
	}
}
