package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/lucasschmidt015/ponto-tracker-api/internal/domain/entry"
	"github.com/lucasschmidt015/ponto-tracker-api/internal/pkg/database"
)

type entryRepositoryImpl struct {
	db *database.DB
}

func NewEntryRepository(db *database.DB) entry.EntryRepository {
	return &entryRepositoryImpl{db: db}
}

// Create implements entry.EntryRepository.
func (e *entryRepositoryImpl) Create(ctx context.Context, newEntry entry.Entry) (entry.Entry, error) {
	q := GetQuerier(ctx, e.db)

	query := `
		INSERT INTO entries (id, user_id, working_day_id, entry_time, latitude, longitude, is_approved)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		newEntry.ID, newEntry.UserID, newEntry.WorkingDayID, newEntry.EntryTime,
		newEntry.Latitude, newEntry.Longitude, newEntry.IsApproved,
	).Scan(&newEntry.CreatedAt, &newEntry.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err, "uq_entries_user_minute") {
			return entry.Entry{}, entry.ErrDuplicateEntryInMinute
		}
		return entry.Entry{}, fmt.Errorf("failed to create entry: %w", err)
	}
	return newEntry, nil
}

// GetByID implements entry.EntryRepository.
func (e *entryRepositoryImpl) GetByID(ctx context.Context, id string) (entry.Entry, error) {
	q := GetQuerier(ctx, e.db)

	query := `
		SELECT id, user_id, working_day_id, entry_time, latitude, longitude, is_approved, created_at, updated_at
		FROM entries
		WHERE id = $1
	`

	var found entry.Entry
	err := q.QueryRow(ctx, query, id).Scan(
		&found.ID, &found.UserID, &found.WorkingDayID, &found.EntryTime,
		&found.Latitude, &found.Longitude, &found.IsApproved,
		&found.CreatedAt, &found.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entry.Entry{}, entry.ErrEntryNotFound
		}
		return entry.Entry{}, fmt.Errorf("failed to get entry by ID: %w", err)
	}
	return found, nil
}

// ExistsForUserBetween implements entry.EntryRepository.
func (e *entryRepositoryImpl) ExistsForUserBetween(ctx context.Context, userID string, start, end time.Time) (bool, error) {
	q := GetQuerier(ctx, e.db)

	var exists bool
	err := q.QueryRow(ctx, `
		SELECT EXISTS(
			SELECT 1 FROM entries
			WHERE user_id = $1 AND entry_time BETWEEN $2 AND $3
		)
	`, userID, start, end).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check entry existence: %w", err)
	}
	return exists, nil
}

// ListForUserBetween implements entry.EntryRepository.
func (e *entryRepositoryImpl) ListForUserBetween(ctx context.Context, userID string, start, end time.Time) ([]entry.Entry, error) {
	q := GetQuerier(ctx, e.db)

	query := `
		SELECT id, user_id, working_day_id, entry_time, latitude, longitude, is_approved, created_at, updated_at
		FROM entries
		WHERE user_id = $1 AND entry_time BETWEEN $2 AND $3
		ORDER BY entry_time
	`

	rows, err := q.Query(ctx, query, userID, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to list entries: %w", err)
	}
	defer rows.Close()

	return scanEntries(rows)
}

// ListApprovedByWorkingDay implements entry.EntryRepository.
func (e *entryRepositoryImpl) ListApprovedByWorkingDay(ctx context.Context, workingDayID string) ([]entry.Entry, error) {
	q := GetQuerier(ctx, e.db)

	query := `
		SELECT id, user_id, working_day_id, entry_time, latitude, longitude, is_approved, created_at, updated_at
		FROM entries
		WHERE working_day_id = $1 AND is_approved
		ORDER BY entry_time
	`

	rows, err := q.Query(ctx, query, workingDayID)
	if err != nil {
		return nil, fmt.Errorf("failed to list approved entries: %w", err)
	}
	defer rows.Close()

	return scanEntries(rows)
}

// SetApproved implements entry.EntryRepository.
func (e *entryRepositoryImpl) SetApproved(ctx context.Context, id string) error {
	q := GetQuerier(ctx, e.db)

	tag, err := q.Exec(ctx, `
		UPDATE entries SET is_approved = TRUE, updated_at = NOW() WHERE id = $1
	`, id)
	if err != nil {
		return fmt.Errorf("failed to approve entry: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return entry.ErrEntryNotFound
	}
	return nil
}

func scanEntries(rows pgx.Rows) ([]entry.Entry, error) {
	entries := make([]entry.Entry, 0)
	for rows.Next() {
		var en entry.Entry
		err := rows.Scan(
			&en.ID, &en.UserID, &en.WorkingDayID, &en.EntryTime,
			&en.Latitude, &en.Longitude, &en.IsApproved,
			&en.CreatedAt, &en.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan entry: %w", err)
		}
		entries = append(entries, en)
	}
	return entries, rows.Err()
}
