package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/lucasschmidt015/ponto-tracker-api/internal/domain/workingday"
	"github.com/lucasschmidt015/ponto-tracker-api/internal/pkg/database"
)

type workingDayRepositoryImpl struct {
	db *database.DB
}

func NewWorkingDayRepository(db *database.DB) workingday.WorkingDayRepository {
	return &workingDayRepositoryImpl{db: db}
}

// GetOpenByUserAndDate implements workingday.WorkingDayRepository.
func (w *workingDayRepositoryImpl) GetOpenByUserAndDate(ctx context.Context, userID string, workedDate time.Time) (workingday.WorkingDay, error) {
	q := GetQuerier(ctx, w.db)

	query := `
		SELECT id, user_id, company_id, worked_date, worked_time, finished, created_at, updated_at
		FROM working_days
		WHERE user_id = $1 AND worked_date = $2 AND NOT finished
	`

	var day workingday.WorkingDay
	err := q.QueryRow(ctx, query, userID, workedDate).Scan(
		&day.ID, &day.UserID, &day.CompanyID, &day.WorkedDate,
		&day.WorkedTime, &day.Finished, &day.CreatedAt, &day.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return workingday.WorkingDay{}, workingday.ErrWorkingDayNotFound
		}
		return workingday.WorkingDay{}, fmt.Errorf("failed to get open working day: %w", err)
	}
	return day, nil
}

// Create implements workingday.WorkingDayRepository.
func (w *workingDayRepositoryImpl) Create(ctx context.Context, day workingday.WorkingDay) (workingday.WorkingDay, error) {
	q := GetQuerier(ctx, w.db)

	// ON CONFLICT DO NOTHING instead of letting the unique index raise: a
	// 23505 would abort the caller's transaction, and the service still has
	// to refetch the winner's row on it after losing the race.
	query := `
		INSERT INTO working_days (id, user_id, company_id, worked_date, worked_time, finished)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (user_id, worked_date) WHERE NOT finished DO NOTHING
		RETURNING created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		day.ID, day.UserID, day.CompanyID, day.WorkedDate, day.WorkedTime, day.Finished,
	).Scan(&day.CreatedAt, &day.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return workingday.WorkingDay{}, workingday.ErrOpenDayExists
		}
		return workingday.WorkingDay{}, fmt.Errorf("failed to create working day: %w", err)
	}
	return day, nil
}

// ListUnfinishedBefore implements workingday.WorkingDayRepository.
func (w *workingDayRepositoryImpl) ListUnfinishedBefore(ctx context.Context, date time.Time) ([]workingday.WorkingDay, error) {
	q := GetQuerier(ctx, w.db)

	query := `
		SELECT id, user_id, company_id, worked_date, worked_time, finished, created_at, updated_at
		FROM working_days
		WHERE NOT finished AND worked_date < $1
		ORDER BY worked_date, user_id
	`

	rows, err := q.Query(ctx, query, date)
	if err != nil {
		return nil, fmt.Errorf("failed to list unfinished working days: %w", err)
	}
	defer rows.Close()

	days := make([]workingday.WorkingDay, 0)
	for rows.Next() {
		var day workingday.WorkingDay
		err := rows.Scan(
			&day.ID, &day.UserID, &day.CompanyID, &day.WorkedDate,
			&day.WorkedTime, &day.Finished, &day.CreatedAt, &day.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan working day: %w", err)
		}
		days = append(days, day)
	}
	return days, rows.Err()
}

// Finish implements workingday.WorkingDayRepository.
func (w *workingDayRepositoryImpl) Finish(ctx context.Context, id string, workedMinutes int) error {
	q := GetQuerier(ctx, w.db)

	query := `
		UPDATE working_days
		SET finished = TRUE, worked_time = $2, updated_at = NOW()
		WHERE id = $1
	`

	tag, err := q.Exec(ctx, query, id, workedMinutes)
	if err != nil {
		return fmt.Errorf("failed to finish working day: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return workingday.ErrWorkingDayNotFound
	}
	return nil
}

// List implements workingday.WorkingDayRepository.
func (w *workingDayRepositoryImpl) List(ctx context.Context, filter workingday.ListWorkingDaysFilter) ([]workingday.WorkingDay, error) {
	q := GetQuerier(ctx, w.db)

	query := `
		SELECT id, user_id, company_id, worked_date, worked_time, finished, created_at, updated_at
		FROM working_days
		WHERE user_id = $1
	`
	args := []interface{}{filter.UserID}

	if filter.StartDate != nil {
		args = append(args, *filter.StartDate)
		query += fmt.Sprintf(" AND worked_date >= $%d", len(args))
	}
	if filter.EndDate != nil {
		args = append(args, *filter.EndDate)
		query += fmt.Sprintf(" AND worked_date <= $%d", len(args))
	}
	query += " ORDER BY worked_date DESC"

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list working days: %w", err)
	}
	defer rows.Close()

	days := make([]workingday.WorkingDay, 0)
	for rows.Next() {
		var day workingday.WorkingDay
		err := rows.Scan(
			&day.ID, &day.UserID, &day.CompanyID, &day.WorkedDate,
			&day.WorkedTime, &day.Finished, &day.CreatedAt, &day.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan working day: %w", err)
		}
		days = append(days, day)
	}
	return days, rows.Err()
}
