package repository

import (
	"context"
	"database/sql"
	"time"

	"delivery-availability/core/database"
	"delivery-availability/core/logger"
	"delivery-availability/modules/exception/entity"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// Uniqueness of (location_id, exception_date) is enforced by a unique index;
// violations carry this Postgres error code.
const uniqueViolationCode = pq.ErrorCode("23505")

// ExceptionRepository owns the exceptions table.
type ExceptionRepository struct {
	DB database.IDatabase
}

func NewExceptionRepository(db database.IDatabase) *ExceptionRepository {
	return &ExceptionRepository{DB: db}
}

// ExceptionRepositoryInterface defines the repository contract.
type ExceptionRepositoryInterface interface {
	GetByLocationAndDate(ctx context.Context, locationID uuid.UUID, date time.Time) (*entity.Exception, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Exception, error)
	ListByLocationAndRange(ctx context.Context, locationID uuid.UUID, from, to time.Time) ([]entity.Exception, error)
	Create(ctx context.Context, exc *entity.Exception) (*entity.Exception, error)
	Update(ctx context.Context, exc *entity.Exception) error
	Delete(ctx context.Context, id uuid.UUID) error
	DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error)
}

// IsUniqueViolation reports whether err is a Postgres unique-index violation.
func IsUniqueViolation(err error) bool {
	if pqErr, ok := err.(*pq.Error); ok {
		return pqErr.Code == uniqueViolationCode
	}
	return false
}

func (r *ExceptionRepository) GetByLocationAndDate(ctx context.Context, locationID uuid.UUID, date time.Time) (*entity.Exception, error) {
	// Ordered so a legacy duplicate row still yields a deterministic pick.
	query := `
		SELECT id, location_id, exception_date, type, start_time, end_time, note, source, created_at, updated_at
		FROM exceptions
		WHERE location_id = $1 AND exception_date = $2
		ORDER BY created_at, id
		LIMIT 1
	`

	var exc entity.Exception
	err := r.DB.GetContext(ctx, &exc, query, locationID, date)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		logger.Error("ExceptionRepository:GetByLocationAndDate", err)
		return nil, err
	}

	return &exc, nil
}

func (r *ExceptionRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Exception, error) {
	query := `
		SELECT id, location_id, exception_date, type, start_time, end_time, note, source, created_at, updated_at
		FROM exceptions
		WHERE id = $1
	`

	var exc entity.Exception
	err := r.DB.GetContext(ctx, &exc, query, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		logger.Error("ExceptionRepository:GetByID", err)
		return nil, err
	}

	return &exc, nil
}

func (r *ExceptionRepository) ListByLocationAndRange(ctx context.Context, locationID uuid.UUID, from, to time.Time) ([]entity.Exception, error) {
	query := `
		SELECT id, location_id, exception_date, type, start_time, end_time, note, source, created_at, updated_at
		FROM exceptions
		WHERE location_id = $1 AND exception_date >= $2 AND exception_date <= $3
		ORDER BY exception_date
	`

	var excs []entity.Exception
	err := r.DB.SelectContext(ctx, &excs, query, locationID, from, to)
	if err != nil {
		logger.Error("ExceptionRepository:ListByLocationAndRange", err)
		return nil, err
	}

	return excs, nil
}

func (r *ExceptionRepository) Create(ctx context.Context, exc *entity.Exception) (*entity.Exception, error) {
	query := `
		INSERT INTO exceptions (location_id, exception_date, type, start_time, end_time, note, source)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, location_id, exception_date, type, start_time, end_time, note, source, created_at, updated_at
	`

	var created entity.Exception
	err := r.DB.GetContext(ctx, &created, query,
		exc.LocationID, exc.ExceptionDate, exc.Type, exc.StartTime, exc.EndTime, exc.Note, exc.Source)
	if err != nil {
		logger.Error("ExceptionRepository:Create", err)
		return nil, err
	}

	return &created, nil
}

func (r *ExceptionRepository) Update(ctx context.Context, exc *entity.Exception) error {
	query := `
		UPDATE exceptions
		SET type = $2, start_time = $3, end_time = $4, note = $5, source = $6, updated_at = NOW()
		WHERE id = $1
	`

	res, err := r.DB.SQLx().ExecContext(ctx, query,
		exc.ID, exc.Type, exc.StartTime, exc.EndTime, exc.Note, exc.Source)
	if err != nil {
		logger.Error("ExceptionRepository:Update", err)
		return err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return sql.ErrNoRows
	}

	return nil
}

func (r *ExceptionRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM exceptions WHERE id = $1`

	res, err := r.DB.SQLx().ExecContext(ctx, query, id)
	if err != nil {
		logger.Error("ExceptionRepository:Delete", err)
		return err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return sql.ErrNoRows
	}

	return nil
}

// DeleteOlderThan removes exceptions dated before cutoff; used by the
// retention prune task.
func (r *ExceptionRepository) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	query := `DELETE FROM exceptions WHERE exception_date < $1`

	res, err := r.DB.SQLx().ExecContext(ctx, query, cutoff)
	if err != nil {
		logger.Error("ExceptionRepository:DeleteOlderThan", err)
		return 0, err
	}

	return res.RowsAffected()
}
