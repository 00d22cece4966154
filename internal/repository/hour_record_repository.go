package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/deltanet/helpdesk-api/internal/dto"
	"github.com/deltanet/helpdesk-api/internal/models"
)

// HourRecordRepository persists hour registrations.
type HourRecordRepository struct {
	db *sqlx.DB
}

// NewHourRecordRepository constructs the repository.
func NewHourRecordRepository(db *sqlx.DB) *HourRecordRepository {
	return &HourRecordRepository{db: db}
}

// CreateBatch inserts every row inside one transaction; a failure on any
// entry rolls back the whole batch.
func (r *HourRecordRepository) CreateBatch(ctx context.Context, records []models.HourRecord) (err error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin hour record batch: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	now := time.Now().UTC()
	const query = `INSERT INTO hour_records (project_id, person_id, activity, hours, day, status, created_by, created_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?)`
	for i := range records {
		rec := &records[i]
		var res sql.Result
		res, err = tx.ExecContext(ctx, query, rec.ProjectID, rec.PersonID, rec.Activity, rec.Hours, rec.Day, models.HourRecordActive, rec.CreatedBy, now)
		if err != nil {
			return fmt.Errorf("insert hour record: %w", err)
		}
		if rec.ID, err = res.LastInsertId(); err != nil {
			return fmt.Errorf("hour record insert id: %w", err)
		}
		rec.Status = models.HourRecordActive
		rec.CreatedAt = &now
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("commit hour record batch: %w", err)
	}
	return nil
}

// ListByFilter matches rows on person, status and an inclusive day range.
func (r *HourRecordRepository) ListByFilter(ctx context.Context, filter dto.HourRecordFilter) ([]models.HourRecord, error) {
	const query = `SELECT id, project_id, person_id, activity, hours, DATE_FORMAT(day, '%Y-%m-%d') AS day, status, created_by, created_at, updated_by, updated_at
FROM hour_records
WHERE person_id = ? AND status = ? AND day BETWEEN ? AND ?
ORDER BY day, id`
	records := []models.HourRecord{}
	if err := r.db.SelectContext(ctx, &records, query, filter.PersonID, filter.Status, filter.DayStart, filter.DayEnd); err != nil {
		return nil, fmt.Errorf("list hour records: %w", err)
	}
	return records, nil
}

// Update rewrites activity and hours for one row.
func (r *HourRecordRepository) Update(ctx context.Context, id int64, activity, hours, updatedBy string) (int64, error) {
	now := time.Now().UTC()
	const query = `UPDATE hour_records SET activity = ?, hours = ?, updated_by = ?, updated_at = ? WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query, activity, hours, updatedBy, now, id)
	if err != nil {
		return 0, fmt.Errorf("update hour record: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("update hour record result: %w", err)
	}
	return affected, nil
}

// Delete removes one row.
func (r *HourRecordRepository) Delete(ctx context.Context, id int64) (int64, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM hour_records WHERE id = ?`, id)
	if err != nil {
		return 0, fmt.Errorf("delete hour record: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("delete hour record result: %w", err)
	}
	return affected, nil
}

// Activate sets status back to active one id at a time and reports how many
// rows were actually touched. Ids that do not exist are skipped silently.
func (r *HourRecordRepository) Activate(ctx context.Context, ids []int64, updatedBy string) (int64, error) {
	now := time.Now().UTC()
	const query = `UPDATE hour_records SET status = ?, updated_by = ?, updated_at = ? WHERE id = ?`
	var updated int64
	for _, id := range ids {
		res, err := r.db.ExecContext(ctx, query, models.HourRecordActive, updatedBy, now, id)
		if err != nil {
			return updated, fmt.Errorf("activate hour record %d: %w", id, err)
		}
		affected, err := res.RowsAffected()
		if err != nil {
			return updated, fmt.Errorf("activate hour record result: %w", err)
		}
		updated += affected
	}
	return updated, nil
}
