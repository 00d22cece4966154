package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/deltanet/helpdesk-api/internal/dto"
	"github.com/deltanet/helpdesk-api/internal/models"
)

// Sentinel errors for the project workflows. Services translate these into
// the API error taxonomy.
var (
	ErrDuplicateCode    = errors.New("project code already in use for person")
	ErrStatusNotNumeric = errors.New("stored project status is not numeric")
)

const projectColumns = `id, person_id, code, description, status, created_by, created_at, updated_by, updated_at`

// ProjectRepository persists projects and owns the multi-statement ticket
// workflows (conflict-checked create, cascade delete, status advance).
type ProjectRepository struct {
	db *sqlx.DB
}

// NewProjectRepository constructs the repository.
func NewProjectRepository(db *sqlx.DB) *ProjectRepository {
	return &ProjectRepository{db: db}
}

// List returns projects matching the filter.
func (r *ProjectRepository) List(ctx context.Context, filter dto.ProjectFilter) ([]models.Project, error) {
	query := strings.Builder{}
	query.WriteString(`SELECT ` + projectColumns + ` FROM projects WHERE 1=1`)

	args := []interface{}{}
	if filter.PersonID != nil {
		query.WriteString(` AND person_id = ?`)
		args = append(args, *filter.PersonID)
	}
	if filter.Status != nil {
		query.WriteString(` AND status = ?`)
		args = append(args, *filter.Status)
	}
	if filter.Description != "" {
		query.WriteString(` AND description LIKE ?`)
		args = append(args, "%"+filter.Description+"%")
	}
	query.WriteString(` ORDER BY id`)

	projects := []models.Project{}
	if err := r.db.SelectContext(ctx, &projects, query.String(), args...); err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	return projects, nil
}

// Create inserts a project after checking that no row with the same
// (person, code) pair exists. The check and the insert run in one
// transaction with the matching row locked, so the window only remains
// across connections using weaker isolation.
func (r *ProjectRepository) Create(ctx context.Context, project *models.Project) (err error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin project create: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	var existing int64
	err = tx.GetContext(ctx, &existing, `SELECT id FROM projects WHERE person_id = ? AND code = ? FOR UPDATE`, project.PersonID, project.Code)
	if err == nil {
		err = ErrDuplicateCode
		return err
	}
	if err != sql.ErrNoRows {
		return fmt.Errorf("check project code: %w", err)
	}

	now := time.Now().UTC()
	var res sql.Result
	res, err = tx.ExecContext(ctx,
		`INSERT INTO projects (person_id, code, description, status, created_by, created_at) VALUES (?, ?, ?, ?, ?, ?)`,
		project.PersonID, project.Code, project.Description, models.ProjectStatusActive, project.CreatedBy, now)
	if err != nil {
		return fmt.Errorf("insert project: %w", err)
	}
	if project.ID, err = res.LastInsertId(); err != nil {
		return fmt.Errorf("project insert id: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("commit project create: %w", err)
	}

	project.Status = models.ProjectStatusActive
	project.CreatedAt = &now
	return nil
}

// UpdateByOwner rewrites the description of the project matching both id and
// owner. Status is left untouched.
func (r *ProjectRepository) UpdateByOwner(ctx context.Context, id, personID int64, description, updatedBy string) (int64, error) {
	now := time.Now().UTC()
	const query = `UPDATE projects SET description = ?, updated_by = ?, updated_at = ? WHERE id = ? AND person_id = ?`
	res, err := r.db.ExecContext(ctx, query, description, updatedBy, now, id, personID)
	if err != nil {
		return 0, fmt.Errorf("update project: %w", err)
	}
	return rowsAffected(res, "update project")
}

// UpdateTicket overwrites status and description keyed by id only.
func (r *ProjectRepository) UpdateTicket(ctx context.Context, id int64, status int, description, updatedBy string) (int64, error) {
	now := time.Now().UTC()
	const query = `UPDATE projects SET status = ?, description = ?, updated_by = ?, updated_at = ? WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query, status, description, updatedBy, now, id)
	if err != nil {
		return 0, fmt.Errorf("update ticket: %w", err)
	}
	return rowsAffected(res, "update ticket")
}

// Delete removes a project and every hour record referencing it, children
// first, in one transaction. Returns sql.ErrNoRows without side effects when
// the project does not exist.
func (r *ProjectRepository) Delete(ctx context.Context, id int64) (hoursDeleted int64, err error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("begin project delete: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	var existing int64
	err = tx.GetContext(ctx, &existing, `SELECT id FROM projects WHERE id = ? FOR UPDATE`, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return 0, err
		}
		return 0, fmt.Errorf("check project: %w", err)
	}

	var res sql.Result
	res, err = tx.ExecContext(ctx, `DELETE FROM hour_records WHERE project_id = ?`, id)
	if err != nil {
		return 0, fmt.Errorf("delete project hour records: %w", err)
	}
	if hoursDeleted, err = res.RowsAffected(); err != nil {
		return 0, fmt.Errorf("delete project hour records result: %w", err)
	}

	if _, err = tx.ExecContext(ctx, `DELETE FROM projects WHERE id = ?`, id); err != nil {
		return 0, fmt.Errorf("delete project: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit project delete: %w", err)
	}
	return hoursDeleted, nil
}

// Activate sets every listed project back to active with one set-membership
// update.
func (r *ProjectRepository) Activate(ctx context.Context, ids []int64, updatedBy string) (int64, error) {
	now := time.Now().UTC()
	query, args, err := sqlx.In(
		`UPDATE projects SET status = ?, updated_by = ?, updated_at = ? WHERE id IN (?)`,
		models.ProjectStatusActive, updatedBy, now, ids)
	if err != nil {
		return 0, fmt.Errorf("build project activate: %w", err)
	}
	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("activate projects: %w", err)
	}
	return rowsAffected(res, "activate projects")
}

// AdvanceStatus moves the project to the next status in the 4-state cycle,
// locking the row for the read-modify-write. The stored status is read as
// raw text; ErrStatusNotNumeric reports legacy rows that do not parse.
func (r *ProjectRepository) AdvanceStatus(ctx context.Context, id int64, updatedBy string) (prev, next int, err error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return 0, 0, fmt.Errorf("begin status advance: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	var raw string
	err = tx.GetContext(ctx, &raw, `SELECT CAST(status AS CHAR) FROM projects WHERE id = ? FOR UPDATE`, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return 0, 0, err
		}
		return 0, 0, fmt.Errorf("read project status: %w", err)
	}

	prev, convErr := strconv.Atoi(strings.TrimSpace(raw))
	if convErr != nil {
		err = ErrStatusNotNumeric
		return 0, 0, err
	}
	next = (prev + 1) % models.ProjectStatusCount

	now := time.Now().UTC()
	if _, err = tx.ExecContext(ctx, `UPDATE projects SET status = ?, updated_by = ?, updated_at = ? WHERE id = ?`, next, updatedBy, now, id); err != nil {
		return 0, 0, fmt.Errorf("write project status: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return 0, 0, fmt.Errorf("commit status advance: %w", err)
	}
	return prev, next, nil
}

// ReassignOwner moves the project to another owner.
func (r *ProjectRepository) ReassignOwner(ctx context.Context, id, personID int64, updatedBy string) (int64, error) {
	now := time.Now().UTC()
	const query = `UPDATE projects SET person_id = ?, updated_by = ?, updated_at = ? WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query, personID, updatedBy, now, id)
	if err != nil {
		return 0, fmt.Errorf("reassign project owner: %w", err)
	}
	return rowsAffected(res, "reassign project owner")
}

// ReassignArea retargets the project at another area and catalog service.
// The legacy schema repurposes person_id for the destination area and code
// for the catalog service id.
func (r *ProjectRepository) ReassignArea(ctx context.Context, id, areaID, serviceID int64, updatedBy string) (int64, error) {
	now := time.Now().UTC()
	const query = `UPDATE projects SET person_id = ?, code = ?, updated_by = ?, updated_at = ? WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query, areaID, serviceID, updatedBy, now, id)
	if err != nil {
		return 0, fmt.Errorf("reassign project area: %w", err)
	}
	return rowsAffected(res, "reassign project area")
}

// Reopen rewrites status and description keyed by the explicit ticket id.
func (r *ProjectRepository) Reopen(ctx context.Context, ticketID int64, status int, description, updatedBy string) (int64, error) {
	now := time.Now().UTC()
	const query = `UPDATE projects SET status = ?, description = ?, updated_by = ?, updated_at = ? WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query, status, description, updatedBy, now, ticketID)
	if err != nil {
		return 0, fmt.Errorf("reopen project: %w", err)
	}
	return rowsAffected(res, "reopen project")
}

func rowsAffected(res sql.Result, op string) (int64, error) {
	affected, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%s result: %w", op, err)
	}
	return affected, nil
}
