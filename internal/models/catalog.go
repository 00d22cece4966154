package models

import "time"

// Area is a jurisdiction within the organisation. Read-only in this API.
type Area struct {
	ID          int64      `db:"id" json:"id"`
	ParentID    *int64     `db:"parent_id" json:"parentId"`
	Description string     `db:"description" json:"description"`
	Status      int        `db:"status" json:"status"`
	CreatedBy   *string    `db:"created_by" json:"createdBy"`
	CreatedAt   *time.Time `db:"created_at" json:"createdAt"`
	UpdatedBy   *string    `db:"updated_by" json:"updatedBy"`
	UpdatedAt   *time.Time `db:"updated_at" json:"updatedAt"`
}

// CatalogService is a service offered by an area.
type CatalogService struct {
	ID     int64  `db:"id" json:"id"`
	AreaID int64  `db:"area_id" json:"areaId"`
	Name   string `db:"name" json:"name"`
}

// LookupType backs the user_types and record_types reference tables, which
// share the same column layout.
type LookupType struct {
	ID          int64      `db:"id" json:"id"`
	Description string     `db:"description" json:"description"`
	Status      int        `db:"status" json:"status"`
	CreatedBy   *string    `db:"created_by" json:"createdBy"`
	CreatedAt   *time.Time `db:"created_at" json:"createdAt"`
	UpdatedBy   *string    `db:"updated_by" json:"updatedBy"`
	UpdatedAt   *time.Time `db:"updated_at" json:"updatedAt"`
}
