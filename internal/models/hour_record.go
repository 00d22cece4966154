package models

import "time"

// HourRecordActive is the status new hour records start in.
const HourRecordActive = 1

// HourRecord is a logged quantity of hours against a project, person and day.
// Hours stays textual: the legacy column holds free-form decimal text.
type HourRecord struct {
	ID        int64      `db:"id" json:"id"`
	ProjectID int64      `db:"project_id" json:"projectId"`
	PersonID  int64      `db:"person_id" json:"personId"`
	Activity  string     `db:"activity" json:"activity"`
	Hours     string     `db:"hours" json:"hours"`
	Day       string     `db:"day" json:"day"`
	Status    int        `db:"status" json:"status"`
	CreatedBy *string    `db:"created_by" json:"createdBy"`
	CreatedAt *time.Time `db:"created_at" json:"createdAt"`
	UpdatedBy *string    `db:"updated_by" json:"updatedBy"`
	UpdatedAt *time.Time `db:"updated_at" json:"updatedAt"`
}
