package dto

// HourEntry is one activity/hours pair inside a batch create.
type HourEntry struct {
	Activity string `json:"activity"`
	Hours    string `json:"hours"`
}

// CreateHourRecordsRequest inserts one row per entry for the given
// project/person/day. The batch is atomic.
type CreateHourRecordsRequest struct {
	ProjectID int64       `json:"projectId" validate:"required"`
	PersonID  int64       `json:"personId" validate:"required"`
	Day       string      `json:"day" validate:"required"`
	Entries   []HourEntry `json:"entries" validate:"required,min=1"`
	CreatedBy string      `json:"createdBy" validate:"required"`
}

// UpdateHourRecordRequest rewrites one row by id.
type UpdateHourRecordRequest struct {
	ID        int64  `json:"id" validate:"required"`
	Activity  string `json:"activity" validate:"required"`
	Hours     string `json:"hours" validate:"required"`
	UpdatedBy string `json:"updatedBy" validate:"required"`
}

// ActivateHourRecordsRequest re-activates records one id at a time.
type ActivateHourRecordsRequest struct {
	IDs       IDList `json:"ids" validate:"required,min=1"`
	UpdatedBy string `json:"updatedBy" validate:"required"`
}

// HourRecordFilter matches rows by person, status and inclusive day range.
// All four values are required.
type HourRecordFilter struct {
	PersonID int64
	Status   int
	DayStart string
	DayEnd   string
}

// ActivateResult echoes the requested ids alongside the number of rows the
// update actually touched.
type ActivateResult struct {
	IDs     []int64 `json:"ids"`
	Updated int64   `json:"updated"`
}
