package models

import "time"

// ActivityLog is a timestamped record of an activity performed by a person.
type ActivityLog struct {
	ID             int64      `db:"id" json:"id"`
	PersonID       int64      `db:"person_id" json:"personId"`
	ActivityTypeID int64      `db:"activity_type_id" json:"activityTypeId"`
	OccurredAt     time.Time  `db:"occurred_at" json:"occurredAt"`
	Detail         string     `db:"detail" json:"detail"`
	CreatedBy      *string    `db:"created_by" json:"createdBy"`
	CreatedAt      *time.Time `db:"created_at" json:"createdAt"`
	UpdatedBy      *string    `db:"updated_by" json:"updatedBy"`
	UpdatedAt      *time.Time `db:"updated_at" json:"updatedAt"`
}
