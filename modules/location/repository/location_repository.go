package repository

import (
	"context"
	"database/sql"

	"delivery-availability/core/database"
	coreEntity "delivery-availability/core/entity"
	"delivery-availability/core/logger"
	"delivery-availability/core/params"
	"delivery-availability/modules/location/entity"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

const uniqueViolationCode = pq.ErrorCode("23505")

// LocationRepository owns the locations table.
type LocationRepository struct {
	DB database.IDatabase
}

func NewLocationRepository(db database.IDatabase) *LocationRepository {
	return &LocationRepository{DB: db}
}

// LocationRepositoryInterface defines the repository contract.
type LocationRepositoryInterface interface {
	List(ctx context.Context, p *params.QueryParams) (*coreEntity.Pagination[entity.Location], error)
	ListActive(ctx context.Context) ([]entity.Location, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Location, error)
	Create(ctx context.Context, loc *entity.Location) (*entity.Location, error)
	Update(ctx context.Context, loc *entity.Location) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// IsUniqueViolation reports whether err is a Postgres unique-index violation.
func IsUniqueViolation(err error) bool {
	if pqErr, ok := err.(*pq.Error); ok {
		return pqErr.Code == uniqueViolationCode
	}
	return false
}

func (r *LocationRepository) List(ctx context.Context, p *params.QueryParams) (*coreEntity.Pagination[entity.Location], error) {
	countQuery := `
		SELECT COUNT(*)
		FROM locations
		WHERE ($1 = '' OR name ILIKE '%' || $1 || '%' OR code ILIKE '%' || $1 || '%')
	`

	var total int
	if err := r.DB.GetContext(ctx, &total, countQuery, p.Search); err != nil {
		logger.Error("LocationRepository:List:count", err)
		return nil, err
	}

	query := `
		SELECT id, name, code, address, active, created_at, updated_at
		FROM locations
		WHERE ($1 = '' OR name ILIKE '%' || $1 || '%' OR code ILIKE '%' || $1 || '%')
		ORDER BY name
		LIMIT $2 OFFSET $3
	`

	offset := (p.PageNumber - 1) * p.PageSize
	items := []entity.Location{}
	if err := r.DB.SelectContext(ctx, &items, query, p.Search, p.PageSize, offset); err != nil {
		logger.Error("LocationRepository:List", err)
		return nil, err
	}

	return &coreEntity.Pagination[entity.Location]{
		Items:      items,
		TotalItems: total,
		PageNumber: p.PageNumber,
		PageSize:   p.PageSize,
	}, nil
}

func (r *LocationRepository) ListActive(ctx context.Context) ([]entity.Location, error) {
	query := `
		SELECT id, name, code, address, active, created_at, updated_at
		FROM locations
		WHERE active = TRUE
		ORDER BY name
	`

	items := []entity.Location{}
	if err := r.DB.SelectContext(ctx, &items, query); err != nil {
		logger.Error("LocationRepository:ListActive", err)
		return nil, err
	}
	return items, nil
}

func (r *LocationRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Location, error) {
	query := `
		SELECT id, name, code, address, active, created_at, updated_at
		FROM locations
		WHERE id = $1
	`

	var loc entity.Location
	err := r.DB.GetContext(ctx, &loc, query, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		logger.Error("LocationRepository:GetByID", err)
		return nil, err
	}
	return &loc, nil
}

func (r *LocationRepository) Create(ctx context.Context, loc *entity.Location) (*entity.Location, error) {
	query := `
		INSERT INTO locations (name, code, address, active)
		VALUES ($1, $2, $3, $4)
		RETURNING id, name, code, address, active, created_at, updated_at
	`

	var created entity.Location
	err := r.DB.GetContext(ctx, &created, query, loc.Name, loc.Code, loc.Address, loc.Active)
	if err != nil {
		logger.Error("LocationRepository:Create", err)
		return nil, err
	}
	return &created, nil
}

func (r *LocationRepository) Update(ctx context.Context, loc *entity.Location) error {
	query := `
		UPDATE locations
		SET name = $1, code = $2, address = $3, active = $4, updated_at = NOW()
		WHERE id = $5
	`

	res, err := r.DB.SQLx().ExecContext(ctx, query, loc.Name, loc.Code, loc.Address, loc.Active, loc.ID)
	if err != nil {
		logger.Error("LocationRepository:Update", err)
		return err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		logger.Error("LocationRepository:Update:RowsAffected", err)
		return err
	}
	if affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func (r *LocationRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM locations WHERE id = $1`

	res, err := r.DB.SQLx().ExecContext(ctx, query, id)
	if err != nil {
		logger.Error("LocationRepository:Delete", err)
		return err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		logger.Error("LocationRepository:Delete:RowsAffected", err)
		return err
	}
	if affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}
