package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/deltanet/helpdesk-api/internal/dto"
	"github.com/deltanet/helpdesk-api/internal/models"
)

// ActivityRepository persists activity logs.
type ActivityRepository struct {
	db *sqlx.DB
}

// NewActivityRepository constructs the repository.
func NewActivityRepository(db *sqlx.DB) *ActivityRepository {
	return &ActivityRepository{db: db}
}

// Create inserts one activity log, stamping created_at server-side.
func (r *ActivityRepository) Create(ctx context.Context, log *models.ActivityLog) error {
	now := time.Now().UTC()
	const query = `INSERT INTO activity_logs (person_id, activity_type_id, occurred_at, detail, created_by, created_at)
VALUES (?, ?, ?, ?, ?, ?)`
	res, err := r.db.ExecContext(ctx, query, log.PersonID, log.ActivityTypeID, log.OccurredAt, log.Detail, log.CreatedBy, now)
	if err != nil {
		return fmt.Errorf("insert activity log: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("activity log insert id: %w", err)
	}
	log.ID = id
	log.CreatedAt = &now
	return nil
}

// Update rewrites the date component of the stored timestamp (preserving the
// time of day) and the detail text. Returns the number of rows touched.
func (r *ActivityRepository) Update(ctx context.Context, id int64, date, detail, updatedBy string) (int64, error) {
	now := time.Now().UTC()
	const query = `UPDATE activity_logs
SET occurred_at = TIMESTAMP(?, TIME(occurred_at)), detail = ?, updated_by = ?, updated_at = ?
WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query, date, detail, updatedBy, now, id)
	if err != nil {
		return 0, fmt.Errorf("update activity log: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("update activity log result: %w", err)
	}
	return affected, nil
}

// ListByFilter matches logs on person, activity type and the calendar date
// of the stored timestamp, ignoring time of day.
func (r *ActivityRepository) ListByFilter(ctx context.Context, filter dto.ActivityFilter) ([]models.ActivityLog, error) {
	const query = `SELECT id, person_id, activity_type_id, occurred_at, detail, created_by, created_at, updated_by, updated_at
FROM activity_logs
WHERE person_id = ? AND activity_type_id = ? AND DATE(occurred_at) = ?
ORDER BY occurred_at`
	logs := []models.ActivityLog{}
	if err := r.db.SelectContext(ctx, &logs, query, filter.PersonID, filter.ActivityTypeID, filter.Date); err != nil {
		return nil, fmt.Errorf("list activity logs: %w", err)
	}
	return logs, nil
}
