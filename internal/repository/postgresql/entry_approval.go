package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/lucasschmidt015/ponto-tracker-api/internal/domain/approval"
	"github.com/lucasschmidt015/ponto-tracker-api/internal/pkg/database"
)

type approvalRepositoryImpl struct {
	db *database.DB
}

func NewApprovalRepository(db *database.DB) approval.ApprovalRepository {
	return &approvalRepositoryImpl{db: db}
}

// Create implements approval.ApprovalRepository.
func (a *approvalRepositoryImpl) Create(ctx context.Context, newApproval approval.EntryApproval) (approval.EntryApproval, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		INSERT INTO entries_approval (id, entry_id, approval_user_id, approval_date, justificative)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		newApproval.ID, newApproval.EntryID, newApproval.ApprovalUserID,
		newApproval.ApprovalDate, newApproval.Justificative,
	).Scan(&newApproval.CreatedAt, &newApproval.UpdatedAt)
	if err != nil {
		return approval.EntryApproval{}, fmt.Errorf("failed to create entry approval: %w", err)
	}
	return newApproval, nil
}

// GetByID implements approval.ApprovalRepository.
func (a *approvalRepositoryImpl) GetByID(ctx context.Context, id string) (approval.EntryApproval, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT id, entry_id, approval_user_id, approval_date, justificative, created_at, updated_at
		FROM entries_approval
		WHERE id = $1
	`

	var found approval.EntryApproval
	err := q.QueryRow(ctx, query, id).Scan(
		&found.ID, &found.EntryID, &found.ApprovalUserID,
		&found.ApprovalDate, &found.Justificative,
		&found.CreatedAt, &found.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return approval.EntryApproval{}, approval.ErrApprovalNotFound
		}
		return approval.EntryApproval{}, fmt.Errorf("failed to get entry approval: %w", err)
	}
	return found, nil
}

// Resolve implements approval.ApprovalRepository. The pending guard lives in
// the WHERE clause so two concurrent managers cannot both win.
func (a *approvalRepositoryImpl) Resolve(ctx context.Context, id string, approvalUserID string, approvalDate time.Time, justificative string, onlyPending bool) error {
	q := GetQuerier(ctx, a.db)

	query := `
		UPDATE entries_approval
		SET approval_user_id = $2, approval_date = $3, justificative = $4, updated_at = NOW()
		WHERE id = $1 AND (NOT $5 OR approval_date IS NULL)
	`

	tag, err := q.Exec(ctx, query, id, approvalUserID, approvalDate, justificative, onlyPending)
	if err != nil {
		return fmt.Errorf("failed to resolve entry approval: %w", err)
	}
	if tag.RowsAffected() == 0 {
		var exists bool
		if err := q.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM entries_approval WHERE id = $1)`, id).Scan(&exists); err != nil {
			return fmt.Errorf("failed to check entry approval existence: %w", err)
		}
		if exists {
			return approval.ErrApprovalAlreadyResolved
		}
		return approval.ErrApprovalNotFound
	}
	return nil
}

// ListPendingByCompany implements approval.ApprovalRepository.
func (a *approvalRepositoryImpl) ListPendingByCompany(ctx context.Context, companyID string) ([]approval.EntryApproval, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT ea.id, ea.entry_id, ea.approval_user_id, ea.approval_date, ea.justificative, ea.created_at, ea.updated_at
		FROM entries_approval ea
		JOIN entries e ON e.id = ea.entry_id
		JOIN working_days wd ON wd.id = e.working_day_id
		WHERE wd.company_id = $1 AND ea.approval_date IS NULL
		ORDER BY ea.created_at
	`

	rows, err := q.Query(ctx, query, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to list pending approvals: %w", err)
	}
	defer rows.Close()

	approvals := make([]approval.EntryApproval, 0)
	for rows.Next() {
		var ap approval.EntryApproval
		err := rows.Scan(
			&ap.ID, &ap.EntryID, &ap.ApprovalUserID,
			&ap.ApprovalDate, &ap.Justificative,
			&ap.CreatedAt, &ap.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan entry approval: %w", err)
		}
		approvals = append(approvals, ap)
	}
	return approvals, rows.Err()
}
