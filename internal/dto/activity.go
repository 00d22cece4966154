package dto

// CreateActivityRequest creates one activity log. Date and Time are combined
// into the stored timestamp; Detail falls back to a placeholder when empty.
type CreateActivityRequest struct {
	PersonID       int64  `json:"personId" validate:"required"`
	ActivityTypeID int64  `json:"activityTypeId" validate:"required"`
	Date           string `json:"date" validate:"required"`
	Time           string `json:"time" validate:"required"`
	Detail         string `json:"detail"`
	CreatedBy      string `json:"createdBy" validate:"required"`
}

// UpdateActivityRequest rewrites the date component and detail of a log.
type UpdateActivityRequest struct {
	ID        int64  `json:"id" validate:"required"`
	Date      string `json:"date" validate:"required"`
	Detail    string `json:"detail" validate:"required"`
	UpdatedBy string `json:"updatedBy" validate:"required"`
}

// ActivityFilter matches logs by person, activity type and calendar date.
// All three are required.
type ActivityFilter struct {
	PersonID       int64
	ActivityTypeID int64
	Date           string
}
