package dto

// CreateProjectRequest creates a project after the (person, code) duplicate
// check. New projects start active.
type CreateProjectRequest struct {
	PersonID    int64  `json:"personId" validate:"required"`
	Code        string `json:"code" validate:"required"`
	Description string `json:"description" validate:"required"`
	CreatedBy   string `json:"createdBy" validate:"required"`
}

// UpdateProjectRequest is the general update, keyed by (id, person). Status
// is never touched by this path.
type UpdateProjectRequest struct {
	PersonID    int64  `json:"personId" validate:"required"`
	Description string `json:"description" validate:"required"`
	UpdatedBy   string `json:"updatedBy" validate:"required"`
}

// TicketUpdateRequest overwrites status and description by id only. State is
// the legacy alias for Status kept for old clients; Status wins when both
// are present.
type TicketUpdateRequest struct {
	Status      *int   `json:"status"`
	State       *int   `json:"state"`
	Description string `json:"description" validate:"required"`
	UpdatedBy   string `json:"updatedBy" validate:"required"`
}

// ActivateProjectsRequest re-activates a set of projects in one statement.
type ActivateProjectsRequest struct {
	IDs       IDList `json:"ids" validate:"required,min=1"`
	UpdatedBy string `json:"updatedBy" validate:"required"`
}

// ReassignOwnerRequest moves a project to another owner.
type ReassignOwnerRequest struct {
	PersonID  int64  `json:"personId" validate:"required"`
	UpdatedBy string `json:"updatedBy" validate:"required"`
}

// ReassignAreaRequest retargets a project at another area and catalog
// service. The legacy schema stores the destination area in person_id and
// the catalog service in code.
type ReassignAreaRequest struct {
	AreaID    int64  `json:"areaId" validate:"required"`
	ServiceID int64  `json:"serviceId" validate:"required"`
	UpdatedBy string `json:"updatedBy" validate:"required"`
}

// ReopenProjectRequest rewrites status and description for an explicit
// ticket id, which must match the addressed project.
type ReopenProjectRequest struct {
	TicketID    int64  `json:"ticketId" validate:"required"`
	StatusID    *int   `json:"statusId" validate:"required"`
	Description string `json:"description" validate:"required"`
	UpdatedBy   string `json:"updatedBy" validate:"required"`
}

// AdvanceStatusResult reports a cyclic status transition.
type AdvanceStatusResult struct {
	PreviousStatus int `json:"previousStatus"`
	Status         int `json:"status"`
}

// ProjectFilter narrows the project listing. Person and Status are equality
// matches, Description a substring match; all optional.
type ProjectFilter struct {
	PersonID    *int64
	Status      *int
	Description string
}

// AdvanceStatusRequest carries the audit user for a cyclic advance.
type AdvanceStatusRequest struct {
	UpdatedBy string `json:"updatedBy" validate:"required"`
}
