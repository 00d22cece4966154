package models

import "time"

// Project status cycle. Values wrap around on advance: 0 → 1 → 2 → 3 → 0.
const (
	ProjectStatusActive = 1
	ProjectStatusCount  = 4
)

// Project (a ticket in the legacy UI) is the central workflow entity: a unit
// of tracked work identified by its owner and a per-owner code.
type Project struct {
	ID          int64      `db:"id" json:"id"`
	PersonID    int64      `db:"person_id" json:"personId"`
	Code        string     `db:"code" json:"code"`
	Description string     `db:"description" json:"description"`
	Status      int        `db:"status" json:"status"`
	CreatedBy   *string    `db:"created_by" json:"createdBy"`
	CreatedAt   *time.Time `db:"created_at" json:"createdAt"`
	UpdatedBy   *string    `db:"updated_by" json:"updatedBy"`
	UpdatedAt   *time.Time `db:"updated_at" json:"updatedAt"`
}
