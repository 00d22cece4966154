package service

import (
	"context"
	"database/sql"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deltanet/helpdesk-api/internal/dto"
	"github.com/deltanet/helpdesk-api/internal/models"
	"github.com/deltanet/helpdesk-api/internal/repository"
	appErrors "github.com/deltanet/helpdesk-api/pkg/errors"
)

type projectRepoStub struct {
	projects     []models.Project
	createErr    error
	deleteErr    error
	advanceErr   error
	affected     int64
	hoursDeleted int64
	updated      int64
	prev         int
	next         int

	lastTicketStatus int
	lastAreaID       int64
	lastServiceID    int64
}

func (s *projectRepoStub) List(ctx context.Context, filter dto.ProjectFilter) ([]models.Project, error) {
	return s.projects, nil
}

func (s *projectRepoStub) Create(ctx context.Context, project *models.Project) error {
	if s.createErr != nil {
		return s.createErr
	}
	project.ID = 11
	project.Status = models.ProjectStatusActive
	return nil
}

func (s *projectRepoStub) UpdateByOwner(ctx context.Context, id, personID int64, description, updatedBy string) (int64, error) {
	return s.affected, nil
}

func (s *projectRepoStub) UpdateTicket(ctx context.Context, id int64, status int, description, updatedBy string) (int64, error) {
	s.lastTicketStatus = status
	return s.affected, nil
}

func (s *projectRepoStub) Delete(ctx context.Context, id int64) (int64, error) {
	if s.deleteErr != nil {
		return 0, s.deleteErr
	}
	return s.hoursDeleted, nil
}

func (s *projectRepoStub) Activate(ctx context.Context, ids []int64, updatedBy string) (int64, error) {
	return s.updated, nil
}

func (s *projectRepoStub) AdvanceStatus(ctx context.Context, id int64, updatedBy string) (int, int, error) {
	if s.advanceErr != nil {
		return 0, 0, s.advanceErr
	}
	return s.prev, s.next, nil
}

func (s *projectRepoStub) ReassignOwner(ctx context.Context, id, personID int64, updatedBy string) (int64, error) {
	return s.affected, nil
}

func (s *projectRepoStub) ReassignArea(ctx context.Context, id, areaID, serviceID int64, updatedBy string) (int64, error) {
	s.lastAreaID = areaID
	s.lastServiceID = serviceID
	return s.affected, nil
}

func (s *projectRepoStub) Reopen(ctx context.Context, ticketID int64, status int, description, updatedBy string) (int64, error) {
	return s.affected, nil
}

func TestProjectServiceCreateStartsActive(t *testing.T) {
	svc := NewProjectService(&projectRepoStub{}, nil, nil)

	project, err := svc.Create(context.Background(), dto.CreateProjectRequest{
		PersonID:    4,
		Code:        "HD-101",
		Description: "vpn renewal",
		CreatedBy:   "jperez",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(11), project.ID)
	assert.Equal(t, models.ProjectStatusActive, project.Status)
}

func TestProjectServiceCreateDuplicateIsConflict(t *testing.T) {
	svc := NewProjectService(&projectRepoStub{createErr: repository.ErrDuplicateCode}, nil, nil)

	_, err := svc.Create(context.Background(), dto.CreateProjectRequest{
		PersonID:    4,
		Code:        "HD-100",
		Description: "printer offline",
		CreatedBy:   "jperez",
	})
	require.Error(t, err)
	appErr := appErrors.FromError(err)
	assert.Equal(t, http.StatusConflict, appErr.Status)
	assert.Equal(t, "CONFLICT", appErr.Code)
}

func TestProjectServiceUpdateTicketHonoursLegacyState(t *testing.T) {
	repo := &projectRepoStub{affected: 1}
	svc := NewProjectService(repo, nil, nil)

	state := 2
	err := svc.UpdateTicket(context.Background(), 10, dto.TicketUpdateRequest{
		State:       &state,
		Description: "escalated",
		UpdatedBy:   "admin",
	})
	require.NoError(t, err)
	assert.Equal(t, 2, repo.lastTicketStatus)
}

func TestProjectServiceUpdateTicketPrefersStatusOverState(t *testing.T) {
	repo := &projectRepoStub{affected: 1}
	svc := NewProjectService(repo, nil, nil)

	status, state := 3, 1
	err := svc.UpdateTicket(context.Background(), 10, dto.TicketUpdateRequest{
		Status:      &status,
		State:       &state,
		Description: "closing",
		UpdatedBy:   "admin",
	})
	require.NoError(t, err)
	assert.Equal(t, 3, repo.lastTicketStatus)
}

func TestProjectServiceUpdateTicketRequiresStatus(t *testing.T) {
	svc := NewProjectService(&projectRepoStub{affected: 1}, nil, nil)

	err := svc.UpdateTicket(context.Background(), 10, dto.TicketUpdateRequest{
		Description: "no status",
		UpdatedBy:   "admin",
	})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)
}

func TestProjectServiceDeleteMissingProject(t *testing.T) {
	svc := NewProjectService(&projectRepoStub{deleteErr: sql.ErrNoRows}, nil, nil)

	_, err := svc.Delete(context.Background(), 99)
	require.Error(t, err)
	assert.Equal(t, http.StatusNotFound, appErrors.FromError(err).Status)
}

func TestProjectServiceDeleteReportsCascade(t *testing.T) {
	svc := NewProjectService(&projectRepoStub{hoursDeleted: 3}, nil, nil)

	result, err := svc.Delete(context.Background(), 10)
	require.NoError(t, err)
	assert.True(t, result.Deleted)
	assert.Equal(t, int64(3), result.HourRecordsDeleted)
}

func TestProjectServiceAdvanceStatusNotNumeric(t *testing.T) {
	svc := NewProjectService(&projectRepoStub{advanceErr: repository.ErrStatusNotNumeric}, nil, nil)

	_, err := svc.AdvanceStatus(context.Background(), 10, "admin")
	require.Error(t, err)
	appErr := appErrors.FromError(err)
	assert.Equal(t, http.StatusBadRequest, appErr.Status)
	assert.Contains(t, appErr.Message, "not numeric")
}

func TestProjectServiceAdvanceStatusMissingProject(t *testing.T) {
	svc := NewProjectService(&projectRepoStub{advanceErr: sql.ErrNoRows}, nil, nil)

	_, err := svc.AdvanceStatus(context.Background(), 99, "admin")
	require.Error(t, err)
	assert.Equal(t, http.StatusNotFound, appErrors.FromError(err).Status)
}

func TestProjectServiceAdvanceStatusReportsTransition(t *testing.T) {
	svc := NewProjectService(&projectRepoStub{prev: 3, next: 0}, nil, nil)

	result, err := svc.AdvanceStatus(context.Background(), 10, "admin")
	require.NoError(t, err)
	assert.Equal(t, 3, result.PreviousStatus)
	assert.Equal(t, 0, result.Status)
}

func TestProjectServiceReassignAreaForwardsTargets(t *testing.T) {
	repo := &projectRepoStub{affected: 1}
	svc := NewProjectService(repo, nil, nil)

	err := svc.ReassignArea(context.Background(), 10, dto.ReassignAreaRequest{
		AreaID:    7,
		ServiceID: 3,
		UpdatedBy: "admin",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(7), repo.lastAreaID)
	assert.Equal(t, int64(3), repo.lastServiceID)
}

func TestProjectServiceReopenMismatchedTicket(t *testing.T) {
	svc := NewProjectService(&projectRepoStub{affected: 1}, nil, nil)

	status := 1
	err := svc.Reopen(context.Background(), 10, dto.ReopenProjectRequest{
		TicketID:    11,
		StatusID:    &status,
		Description: "reopening",
		UpdatedBy:   "admin",
	})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)
}

func TestProjectServiceExportCSV(t *testing.T) {
	createdBy := "jperez"
	repo := &projectRepoStub{projects: []models.Project{
		{ID: 10, PersonID: 4, Code: "HD-100", Description: "printer offline", Status: 1, CreatedBy: &createdBy},
	}}
	svc := NewProjectService(repo, nil, nil)

	file, err := svc.Export(context.Background(), dto.ProjectFilter{}, "csv")
	require.NoError(t, err)
	assert.Equal(t, "text/csv", file.ContentType)
	assert.Equal(t, "projects.csv", file.Filename)
	assert.True(t, strings.Contains(string(file.Content), "HD-100"))
}

func TestProjectServiceExportUnsupportedFormat(t *testing.T) {
	svc := NewProjectService(&projectRepoStub{}, nil, nil)

	_, err := svc.Export(context.Background(), dto.ProjectFilter{}, "xlsx")
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)
}
