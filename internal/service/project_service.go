package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/deltanet/helpdesk-api/internal/dto"
	"github.com/deltanet/helpdesk-api/internal/models"
	"github.com/deltanet/helpdesk-api/internal/repository"
	appErrors "github.com/deltanet/helpdesk-api/pkg/errors"
	"github.com/deltanet/helpdesk-api/pkg/export"
)

type projectRepository interface {
	List(ctx context.Context, filter dto.ProjectFilter) ([]models.Project, error)
	Create(ctx context.Context, project *models.Project) error
	UpdateByOwner(ctx context.Context, id, personID int64, description, updatedBy string) (int64, error)
	UpdateTicket(ctx context.Context, id int64, status int, description, updatedBy string) (int64, error)
	Delete(ctx context.Context, id int64) (int64, error)
	Activate(ctx context.Context, ids []int64, updatedBy string) (int64, error)
	AdvanceStatus(ctx context.Context, id int64, updatedBy string) (prev, next int, err error)
	ReassignOwner(ctx context.Context, id, personID int64, updatedBy string) (int64, error)
	ReassignArea(ctx context.Context, id, areaID, serviceID int64, updatedBy string) (int64, error)
	Reopen(ctx context.Context, ticketID int64, status int, description, updatedBy string) (int64, error)
}

// ExportFile is a rendered export ready to stream to the client.
type ExportFile struct {
	Content     []byte
	ContentType string
	Filename    string
}

// DeleteResult reports a cascade delete.
type DeleteResult struct {
	Deleted            bool  `json:"deleted"`
	HourRecordsDeleted int64 `json:"hourRecordsDeleted"`
}

// ProjectService orchestrates the ticket workflows.
type ProjectService struct {
	repo      projectRepository
	validator *validator.Validate
	logger    *zap.Logger
}

// NewProjectService constructs a ProjectService.
func NewProjectService(repo projectRepository, validate *validator.Validate, logger *zap.Logger) *ProjectService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ProjectService{repo: repo, validator: validate, logger: logger}
}

// List returns projects matching the optional filters.
func (s *ProjectService) List(ctx context.Context, filter dto.ProjectFilter) ([]models.Project, error) {
	projects, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, appErrors.Internal(err, "failed to list projects")
	}
	return projects, nil
}

// Create inserts a project unless the (person, code) pair is already taken.
func (s *ProjectService) Create(ctx context.Context, req dto.CreateProjectRequest) (*models.Project, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid project payload")
	}

	project := &models.Project{
		PersonID:    req.PersonID,
		Code:        req.Code,
		Description: req.Description,
		CreatedBy:   &req.CreatedBy,
	}
	if err := s.repo.Create(ctx, project); err != nil {
		if errors.Is(err, repository.ErrDuplicateCode) {
			return nil, appErrors.Clone(appErrors.ErrConflict, "project code already exists for this person")
		}
		return nil, appErrors.Internal(err, "failed to create project")
	}
	return project, nil
}

// Update is the general update keyed by (id, person); status is untouched.
func (s *ProjectService) Update(ctx context.Context, id int64, req dto.UpdateProjectRequest) error {
	if id <= 0 {
		return appErrors.Clone(appErrors.ErrValidation, "id is required")
	}
	if err := s.validator.Struct(req); err != nil {
		return appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid project payload")
	}

	affected, err := s.repo.UpdateByOwner(ctx, id, req.PersonID, req.Description, req.UpdatedBy)
	if err != nil {
		return appErrors.Internal(err, "failed to update project")
	}
	if affected == 0 {
		return appErrors.Clone(appErrors.ErrNotFound, "project not found")
	}
	return nil
}

// UpdateTicket overwrites status and description by id only. The legacy
// state field is honoured when status is absent.
func (s *ProjectService) UpdateTicket(ctx context.Context, id int64, req dto.TicketUpdateRequest) error {
	if id <= 0 {
		return appErrors.Clone(appErrors.ErrValidation, "id is required")
	}
	if err := s.validator.Struct(req); err != nil {
		return appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid ticket payload")
	}
	status := req.Status
	if status == nil {
		status = req.State
	}
	if status == nil {
		return appErrors.Clone(appErrors.ErrValidation, "status is required")
	}

	affected, err := s.repo.UpdateTicket(ctx, id, *status, req.Description, req.UpdatedBy)
	if err != nil {
		return appErrors.Internal(err, "failed to update ticket")
	}
	if affected == 0 {
		return appErrors.Clone(appErrors.ErrNotFound, "project not found")
	}
	return nil
}

// Delete cascades: hour records first, then the project, in one transaction.
func (s *ProjectService) Delete(ctx context.Context, id int64) (*DeleteResult, error) {
	if id <= 0 {
		return nil, appErrors.Clone(appErrors.ErrValidation, "id is required")
	}

	hoursDeleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "project not found")
		}
		return nil, appErrors.Internal(err, "failed to delete project")
	}
	return &DeleteResult{Deleted: true, HourRecordsDeleted: hoursDeleted}, nil
}

// Activate sets every listed project back to active in one statement.
func (s *ProjectService) Activate(ctx context.Context, req dto.ActivateProjectsRequest) (*dto.ActivateResult, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid activate payload")
	}

	updated, err := s.repo.Activate(ctx, req.IDs, req.UpdatedBy)
	if err != nil {
		return nil, appErrors.Internal(err, "failed to activate projects")
	}
	return &dto.ActivateResult{IDs: req.IDs, Updated: updated}, nil
}

// AdvanceStatus moves the project one step through the 4-state cycle and
// reports both the previous and new value.
func (s *ProjectService) AdvanceStatus(ctx context.Context, id int64, updatedBy string) (*dto.AdvanceStatusResult, error) {
	if id <= 0 || updatedBy == "" {
		return nil, appErrors.Clone(appErrors.ErrValidation, "id and updatedBy are required")
	}

	prev, next, err := s.repo.AdvanceStatus(ctx, id, updatedBy)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			return nil, appErrors.Clone(appErrors.ErrNotFound, "project not found")
		case errors.Is(err, repository.ErrStatusNotNumeric):
			return nil, appErrors.Clone(appErrors.ErrValidation, "stored project status is not numeric")
		default:
			return nil, appErrors.Internal(err, "failed to advance project status")
		}
	}
	return &dto.AdvanceStatusResult{PreviousStatus: prev, Status: next}, nil
}

// ReassignOwner moves the project to another owner.
func (s *ProjectService) ReassignOwner(ctx context.Context, id int64, req dto.ReassignOwnerRequest) error {
	if id <= 0 {
		return appErrors.Clone(appErrors.ErrValidation, "id is required")
	}
	if err := s.validator.Struct(req); err != nil {
		return appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid reassign payload")
	}

	affected, err := s.repo.ReassignOwner(ctx, id, req.PersonID, req.UpdatedBy)
	if err != nil {
		return appErrors.Internal(err, "failed to reassign project owner")
	}
	if affected == 0 {
		return appErrors.Clone(appErrors.ErrNotFound, "project not found")
	}
	return nil
}

// ReassignArea retargets the project at another area and catalog service.
func (s *ProjectService) ReassignArea(ctx context.Context, id int64, req dto.ReassignAreaRequest) error {
	if id <= 0 {
		return appErrors.Clone(appErrors.ErrValidation, "id is required")
	}
	if err := s.validator.Struct(req); err != nil {
		return appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid reassign payload")
	}

	affected, err := s.repo.ReassignArea(ctx, id, req.AreaID, req.ServiceID, req.UpdatedBy)
	if err != nil {
		return appErrors.Internal(err, "failed to reassign project area")
	}
	if affected == 0 {
		return appErrors.Clone(appErrors.ErrNotFound, "project not found")
	}
	return nil
}

// Reopen rewrites status and description. The explicit ticket id must match
// the addressed project.
func (s *ProjectService) Reopen(ctx context.Context, id int64, req dto.ReopenProjectRequest) error {
	if id <= 0 {
		return appErrors.Clone(appErrors.ErrValidation, "id is required")
	}
	if err := s.validator.Struct(req); err != nil {
		return appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid reopen payload")
	}
	if req.TicketID != id {
		return appErrors.Clone(appErrors.ErrValidation, "ticketId does not match the addressed project")
	}

	affected, err := s.repo.Reopen(ctx, req.TicketID, *req.StatusID, req.Description, req.UpdatedBy)
	if err != nil {
		return appErrors.Internal(err, "failed to reopen project")
	}
	if affected == 0 {
		return appErrors.Clone(appErrors.ErrNotFound, "project not found")
	}
	return nil
}

// Export renders the filtered project list as CSV or PDF.
func (s *ProjectService) Export(ctx context.Context, filter dto.ProjectFilter, format string) (*ExportFile, error) {
	projects, err := s.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	table := export.Table{
		Title:   "Projects",
		Columns: []string{"ID", "Owner", "Code", "Description", "Status", "Created By", "Created At"},
		Rows:    make([][]string, 0, len(projects)),
	}
	for _, p := range projects {
		createdBy := ""
		if p.CreatedBy != nil {
			createdBy = *p.CreatedBy
		}
		createdAt := ""
		if p.CreatedAt != nil {
			createdAt = p.CreatedAt.Format(time.RFC3339)
		}
		table.Rows = append(table.Rows, []string{
			strconv.FormatInt(p.ID, 10),
			strconv.FormatInt(p.PersonID, 10),
			p.Code,
			p.Description,
			strconv.Itoa(p.Status),
			createdBy,
			createdAt,
		})
	}

	switch format {
	case "csv":
		content, err := export.RenderCSV(table)
		if err != nil {
			return nil, appErrors.Internal(err, "failed to render csv export")
		}
		return &ExportFile{Content: content, ContentType: "text/csv", Filename: "projects.csv"}, nil
	case "pdf":
		content, err := export.RenderPDF(table)
		if err != nil {
			return nil, appErrors.Internal(err, "failed to render pdf export")
		}
		return &ExportFile{Content: content, ContentType: "application/pdf", Filename: "projects.pdf"}, nil
	default:
		return nil, appErrors.Clone(appErrors.ErrValidation, fmt.Sprintf("unsupported export format %q", format))
	}
}
