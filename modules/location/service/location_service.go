package service

import (
	"context"
	"database/sql"
	"strings"

	"delivery-availability/core/constants"
	coreDto "delivery-availability/core/dto"
	"delivery-availability/core/errors"
	"delivery-availability/core/params"
	"delivery-availability/modules/location/dto"
	"delivery-availability/modules/location/entity"
	"delivery-availability/modules/location/repository"

	"github.com/google/uuid"
	"github.com/gosimple/slug"
)

// LocationService manages delivery and receiving sites.
type LocationService struct {
	repo repository.LocationRepositoryInterface
}

// LocationServiceInterface defines the service contract.
type LocationServiceInterface interface {
	List(ctx context.Context, p *params.QueryParams) (*coreDto.Pagination[dto.LocationResponse], *errors.AppError)
	GetByID(ctx context.Context, id uuid.UUID) (*dto.LocationResponse, *errors.AppError)
	Create(ctx context.Context, req *dto.CreateLocationRequest) (*dto.LocationResponse, *errors.AppError)
	Update(ctx context.Context, id uuid.UUID, req *dto.UpdateLocationRequest) (*dto.LocationResponse, *errors.AppError)
	Delete(ctx context.Context, id uuid.UUID) *errors.AppError
}

func NewLocationService(repo repository.LocationRepositoryInterface) LocationServiceInterface {
	return &LocationService{repo: repo}
}

func (s *LocationService) List(ctx context.Context, p *params.QueryParams) (*coreDto.Pagination[dto.LocationResponse], *errors.AppError) {
	ctx, cancel := context.WithTimeout(ctx, constants.DefaultRequestTimeout)
	defer cancel()

	page, err := s.repo.List(ctx, p)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrGetFailed, "failed to list locations", err)
	}

	return &coreDto.Pagination[dto.LocationResponse]{
		Items:      dto.ToLocationResponses(page.Items),
		TotalItems: page.TotalItems,
		PageNumber: page.PageNumber,
		PageSize:   page.PageSize,
	}, nil
}

func (s *LocationService) GetByID(ctx context.Context, id uuid.UUID) (*dto.LocationResponse, *errors.AppError) {
	ctx, cancel := context.WithTimeout(ctx, constants.DefaultRequestTimeout)
	defer cancel()

	loc, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrGetFailed, "failed to get location", err)
	}
	if loc == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "location not found", nil)
	}
	return dto.ToLocationResponse(loc), nil
}

func (s *LocationService) Create(ctx context.Context, req *dto.CreateLocationRequest) (*dto.LocationResponse, *errors.AppError) {
	ctx, cancel := context.WithTimeout(ctx, constants.DefaultRequestTimeout)
	defer cancel()

	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "name is required", nil)
	}

	code := strings.TrimSpace(req.Code)
	if code == "" {
		code = name
	}

	loc := &entity.Location{
		Name:    name,
		Code:    slug.Make(code),
		Address: strings.TrimSpace(req.Address),
		Active:  true,
	}

	created, err := s.repo.Create(ctx, loc)
	if err != nil {
		if repository.IsUniqueViolation(err) {
			return nil, errors.NewAppError(errors.ErrAlreadyExists, "a location with this code already exists", err)
		}
		return nil, errors.NewAppError(errors.ErrCreateFailed, "failed to create location", err)
	}
	return dto.ToLocationResponse(created), nil
}

func (s *LocationService) Update(ctx context.Context, id uuid.UUID, req *dto.UpdateLocationRequest) (*dto.LocationResponse, *errors.AppError) {
	ctx, cancel := context.WithTimeout(ctx, constants.DefaultRequestTimeout)
	defer cancel()

	loc, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrGetFailed, "failed to get location", err)
	}
	if loc == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "location not found", nil)
	}

	if name := strings.TrimSpace(req.Name); name != "" {
		loc.Name = name
	}
	if code := strings.TrimSpace(req.Code); code != "" {
		loc.Code = slug.Make(code)
	}
	if addr := strings.TrimSpace(req.Address); addr != "" {
		loc.Address = addr
	}
	if req.Active != nil {
		loc.Active = *req.Active
	}

	if err := s.repo.Update(ctx, loc); err != nil {
		if err == sql.ErrNoRows {
			return nil, errors.NewAppError(errors.ErrNotFound, "location not found", err)
		}
		if repository.IsUniqueViolation(err) {
			return nil, errors.NewAppError(errors.ErrAlreadyExists, "a location with this code already exists", err)
		}
		return nil, errors.NewAppError(errors.ErrUpdateFailed, "failed to update location", err)
	}
	return dto.ToLocationResponse(loc), nil
}

func (s *LocationService) Delete(ctx context.Context, id uuid.UUID) *errors.AppError {
	ctx, cancel := context.WithTimeout(ctx, constants.DefaultRequestTimeout)
	defer cancel()

	if err := s.repo.Delete(ctx, id); err != nil {
		if err == sql.ErrNoRows {
			return errors.NewAppError(errors.ErrNotFound, "location not found", err)
		}
		return errors.NewAppError(errors.ErrDeleteFailed, "failed to delete location", err)
	}
	return nil
}
