package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deltanet/helpdesk-api/internal/dto"
	"github.com/deltanet/helpdesk-api/internal/models"
	"github.com/deltanet/helpdesk-api/internal/service"
	appErrors "github.com/deltanet/helpdesk-api/pkg/errors"
)

type projectServiceMock struct {
	createErr  error
	deleteErr  error
	advanceErr error
	exportFile *service.ExportFile
}

func (m *projectServiceMock) List(ctx context.Context, filter dto.ProjectFilter) ([]models.Project, error) {
	return []models.Project{}, nil
}

func (m *projectServiceMock) Create(ctx context.Context, req dto.CreateProjectRequest) (*models.Project, error) {
	if m.createErr != nil {
		return nil, m.createErr
	}
	return &models.Project{ID: 11, PersonID: req.PersonID, Code: req.Code, Description: req.Description, Status: models.ProjectStatusActive}, nil
}

func (m *projectServiceMock) Update(ctx context.Context, id int64, req dto.UpdateProjectRequest) error {
	return nil
}

func (m *projectServiceMock) UpdateTicket(ctx context.Context, id int64, req dto.TicketUpdateRequest) error {
	return nil
}

func (m *projectServiceMock) Delete(ctx context.Context, id int64) (*service.DeleteResult, error) {
	if m.deleteErr != nil {
		return nil, m.deleteErr
	}
	return &service.DeleteResult{Deleted: true, HourRecordsDeleted: 3}, nil
}

func (m *projectServiceMock) Activate(ctx context.Context, req dto.ActivateProjectsRequest) (*dto.ActivateResult, error) {
	return &dto.ActivateResult{IDs: req.IDs, Updated: int64(len(req.IDs))}, nil
}

func (m *projectServiceMock) AdvanceStatus(ctx context.Context, id int64, updatedBy string) (*dto.AdvanceStatusResult, error) {
	if m.advanceErr != nil {
		return nil, m.advanceErr
	}
	return &dto.AdvanceStatusResult{PreviousStatus: 1, Status: 2}, nil
}

func (m *projectServiceMock) ReassignOwner(ctx context.Context, id int64, req dto.ReassignOwnerRequest) error {
	return nil
}

func (m *projectServiceMock) ReassignArea(ctx context.Context, id int64, req dto.ReassignAreaRequest) error {
	return nil
}

func (m *projectServiceMock) Reopen(ctx context.Context, id int64, req dto.ReopenProjectRequest) error {
	return nil
}

func (m *projectServiceMock) Export(ctx context.Context, filter dto.ProjectFilter, format string) (*service.ExportFile, error) {
	if m.exportFile != nil {
		return m.exportFile, nil
	}
	return nil, appErrors.Clone(appErrors.ErrValidation, "unsupported export format")
}

func newTestContext(t *testing.T, method, target string, body interface{}) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req, err := http.NewRequest(method, target, reader)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	c.Request = req
	return c, w
}

func TestProjectHandlerCreate(t *testing.T) {
	handler := NewProjectHandler(&projectServiceMock{})
	c, w := newTestContext(t, http.MethodPost, "/projects", dto.CreateProjectRequest{
		PersonID:    4,
		Code:        "HD-101",
		Description: "vpn renewal",
		CreatedBy:   "jperez",
	})

	handler.Create(c)
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), `"status":1`)
}

func TestProjectHandlerCreateConflict(t *testing.T) {
	handler := NewProjectHandler(&projectServiceMock{
		createErr: appErrors.Clone(appErrors.ErrConflict, "project code already exists for this person"),
	})
	c, w := newTestContext(t, http.MethodPost, "/projects", dto.CreateProjectRequest{
		PersonID:    4,
		Code:        "HD-100",
		Description: "printer offline",
		CreatedBy:   "jperez",
	})

	handler.Create(c)
	require.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "CONFLICT")
}

func TestProjectHandlerCreateInvalidBody(t *testing.T) {
	handler := NewProjectHandler(&projectServiceMock{})
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req, _ := http.NewRequest(http.MethodPost, "/projects", bytes.NewReader([]byte(`{invalid`)))
	req.Header.Set("Content-Type", "application/json")
	c.Request = req

	handler.Create(c)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestProjectHandlerDeleteRequiresID(t *testing.T) {
	handler := NewProjectHandler(&projectServiceMock{})
	c, w := newTestContext(t, http.MethodDelete, "/projects", nil)

	handler.Delete(c)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestProjectHandlerDelete(t *testing.T) {
	handler := NewProjectHandler(&projectServiceMock{})
	c, w := newTestContext(t, http.MethodDelete, "/projects?id=10", nil)

	handler.Delete(c)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"hourRecordsDeleted":3`)
}

func TestProjectHandlerAdvanceStatusBadPathID(t *testing.T) {
	handler := NewProjectHandler(&projectServiceMock{})
	c, w := newTestContext(t, http.MethodPost, "/projects/abc/advance-status", dto.AdvanceStatusRequest{UpdatedBy: "admin"})
	c.Params = gin.Params{{Key: "id", Value: "abc"}}

	handler.AdvanceStatus(c)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestProjectHandlerAdvanceStatus(t *testing.T) {
	handler := NewProjectHandler(&projectServiceMock{})
	c, w := newTestContext(t, http.MethodPost, "/projects/10/advance-status", dto.AdvanceStatusRequest{UpdatedBy: "admin"})
	c.Params = gin.Params{{Key: "id", Value: "10"}}

	handler.AdvanceStatus(c)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"previousStatus":1`)
}

func TestProjectHandlerActivateAcceptsCommaSeparatedIDs(t *testing.T) {
	handler := NewProjectHandler(&projectServiceMock{})
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req, _ := http.NewRequest(http.MethodPost, "/projects/activate", bytes.NewReader([]byte(`{"ids":"1, 2,999","updatedBy":"admin"}`)))
	req.Header.Set("Content-Type", "application/json")
	c.Request = req

	handler.Activate(c)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"ids":[1,2,999]`)
}

func TestProjectHandlerActivateAcceptsFormEncoding(t *testing.T) {
	handler := NewProjectHandler(&projectServiceMock{})
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	form := url.Values{"ids": {"1, 2,999"}, "updatedBy": {"admin"}}
	req, _ := http.NewRequest(http.MethodPost, "/projects/activate", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	c.Request = req

	handler.Activate(c)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"ids":[1,2,999]`)
}

func TestProjectHandlerActivateFormWithoutIDs(t *testing.T) {
	handler := NewProjectHandler(&projectServiceMock{})
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	form := url.Values{"updatedBy": {"admin"}}
	req, _ := http.NewRequest(http.MethodPost, "/projects/activate", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	c.Request = req

	handler.Activate(c)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestProjectHandlerExportStreamsFile(t *testing.T) {
	handler := NewProjectHandler(&projectServiceMock{
		exportFile: &service.ExportFile{Content: []byte("ID,Code\n"), ContentType: "text/csv", Filename: "projects.csv"},
	})
	c, w := newTestContext(t, http.MethodGet, "/projects/export?format=csv", nil)

	handler.Export(c)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "text/csv", w.Header().Get("Content-Type"))
	assert.Contains(t, w.Header().Get("Content-Disposition"), "projects.csv")
}

func TestProjectHandlerExportUnsupportedFormat(t *testing.T) {
	handler := NewProjectHandler(&projectServiceMock{})
	c, w := newTestContext(t, http.MethodGet, "/projects/export?format=xlsx", nil)

	handler.Export(c)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestProjectHandlerListBadStatusQuery(t *testing.T) {
	handler := NewProjectHandler(&projectServiceMock{})
	c, w := newTestContext(t, http.MethodGet, "/projects?status=open", nil)

	handler.List(c)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
