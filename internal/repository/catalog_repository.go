package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/deltanet/helpdesk-api/internal/models"
)

const lookupColumns = `id, description, status, created_by, created_at, updated_by, updated_at`

// CatalogRepository reads the reference tables: areas, catalog services and
// the user/record type lookups.
type CatalogRepository struct {
	db *sqlx.DB
}

// NewCatalogRepository constructs the repository.
func NewCatalogRepository(db *sqlx.DB) *CatalogRepository {
	return &CatalogRepository{db: db}
}

// AreaExists reports whether the area id is present in the reference set.
func (r *CatalogRepository) AreaExists(ctx context.Context, id int64) (bool, error) {
	var found int
	err := r.db.GetContext(ctx, &found, `SELECT 1 FROM areas WHERE id = ?`, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return false, nil
		}
		return false, fmt.Errorf("check area: %w", err)
	}
	return true, nil
}

// ListServices returns catalog services in insertion order, optionally
// filtered by area.
func (r *CatalogRepository) ListServices(ctx context.Context, areaID *int64) ([]models.CatalogService, error) {
	query := `SELECT id, area_id, name FROM catalog_services`
	args := []interface{}{}
	if areaID != nil {
		query += ` WHERE area_id = ?`
		args = append(args, *areaID)
	}
	query += ` ORDER BY id`

	services := []models.CatalogService{}
	if err := r.db.SelectContext(ctx, &services, query, args...); err != nil {
		return nil, fmt.Errorf("list catalog services: %w", err)
	}
	return services, nil
}

// ListAreas returns the full area table.
func (r *CatalogRepository) ListAreas(ctx context.Context) ([]models.Area, error) {
	areas := []models.Area{}
	query := `SELECT id, parent_id, description, status, created_by, created_at, updated_by, updated_at FROM areas ORDER BY id`
	if err := r.db.SelectContext(ctx, &areas, query); err != nil {
		return nil, fmt.Errorf("list areas: %w", err)
	}
	return areas, nil
}

// ListUserTypes returns the full user_types table.
func (r *CatalogRepository) ListUserTypes(ctx context.Context) ([]models.LookupType, error) {
	return r.listLookup(ctx, "user_types")
}

// ListRecordTypes returns the full record_types table.
func (r *CatalogRepository) ListRecordTypes(ctx context.Context) ([]models.LookupType, error) {
	return r.listLookup(ctx, "record_types")
}

func (r *CatalogRepository) listLookup(ctx context.Context, table string) ([]models.LookupType, error) {
	types := []models.LookupType{}
	query := fmt.Sprintf(`SELECT %s FROM %s ORDER BY id`, lookupColumns, table)
	if err := r.db.SelectContext(ctx, &types, query); err != nil {
		return nil, fmt.Errorf("list %s: %w", table, err)
	}
	return types, nil
}
