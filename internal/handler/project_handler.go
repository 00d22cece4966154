package handler

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/deltanet/helpdesk-api/internal/dto"
	"github.com/deltanet/helpdesk-api/internal/models"
	"github.com/deltanet/helpdesk-api/internal/service"
	appErrors "github.com/deltanet/helpdesk-api/pkg/errors"
	"github.com/deltanet/helpdesk-api/pkg/response"
)

type projectService interface {
	List(ctx context.Context, filter dto.ProjectFilter) ([]models.Project, error)
	Create(ctx context.Context, req dto.CreateProjectRequest) (*models.Project, error)
	Update(ctx context.Context, id int64, req dto.UpdateProjectRequest) error
	UpdateTicket(ctx context.Context, id int64, req dto.TicketUpdateRequest) error
	Delete(ctx context.Context, id int64) (*service.DeleteResult, error)
	Activate(ctx context.Context, req dto.ActivateProjectsRequest) (*dto.ActivateResult, error)
	AdvanceStatus(ctx context.Context, id int64, updatedBy string) (*dto.AdvanceStatusResult, error)
	ReassignOwner(ctx context.Context, id int64, req dto.ReassignOwnerRequest) error
	ReassignArea(ctx context.Context, id int64, req dto.ReassignAreaRequest) error
	Reopen(ctx context.Context, id int64, req dto.ReopenProjectRequest) error
	Export(ctx context.Context, filter dto.ProjectFilter, format string) (*service.ExportFile, error)
}

// ProjectHandler exposes the ticket endpoints.
type ProjectHandler struct {
	service projectService
}

// NewProjectHandler builds a new handler.
func NewProjectHandler(service projectService) *ProjectHandler {
	return &ProjectHandler{service: service}
}

func projectFilterFromQuery(c *gin.Context) (dto.ProjectFilter, error) {
	filter := dto.ProjectFilter{Description: c.Query("description")}
	if value, ok, err := queryInt64(c, "person"); err != nil {
		return filter, err
	} else if ok {
		filter.PersonID = &value
	}
	if value, ok, err := queryInt(c, "status"); err != nil {
		return filter, err
	} else if ok {
		filter.Status = &value
	}
	return filter, nil
}

// List godoc
// @Summary List projects
// @Tags Projects
// @Produce json
// @Param person query int false "Owner id"
// @Param status query int false "Status"
// @Param description query string false "Description substring"
// @Success 200 {object} response.Envelope
// @Router /projects [get]
func (h *ProjectHandler) List(c *gin.Context) {
	filter, err := projectFilterFromQuery(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	projects, err := h.service.List(c.Request.Context(), filter)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, projects)
}

// Create godoc
// @Summary Create a project
// @Tags Projects
// @Accept json
// @Produce json
// @Param payload body dto.CreateProjectRequest true "Project payload"
// @Success 201 {object} response.Envelope
// @Failure 409 {object} response.Envelope
// @Router /projects [post]
func (h *ProjectHandler) Create(c *gin.Context) {
	var req dto.CreateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid project payload"))
		return
	}
	project, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, project)
}

// Update godoc
// @Summary Update a project
// @Tags Projects
// @Accept json
// @Produce json
// @Param id path int true "Project id"
// @Param payload body dto.UpdateProjectRequest true "Update payload"
// @Success 200 {object} response.Envelope
// @Router /projects/{id} [put]
func (h *ProjectHandler) Update(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	var req dto.UpdateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid project payload"))
		return
	}
	if err := h.service.Update(c.Request.Context(), id, req); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, gin.H{"updated": true})
}

// UpdateTicket godoc
// @Summary Update a project as a ticket
// @Tags Projects
// @Accept json
// @Produce json
// @Param id path int true "Project id"
// @Param payload body dto.TicketUpdateRequest true "Ticket payload"
// @Success 200 {object} response.Envelope
// @Router /projects/{id}/ticket [put]
func (h *ProjectHandler) UpdateTicket(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	var req dto.TicketUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid ticket payload"))
		return
	}
	if err := h.service.UpdateTicket(c.Request.Context(), id, req); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, gin.H{"updated": true})
}

// Delete godoc
// @Summary Delete a project and its hour records
// @Tags Projects
// @Produce json
// @Param id query int true "Project id"
// @Success 200 {object} response.Envelope
// @Router /projects [delete]
func (h *ProjectHandler) Delete(c *gin.Context) {
	id, ok, err := queryInt64(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}
	if !ok || id <= 0 {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "id is required"))
		return
	}
	result, err := h.service.Delete(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, result)
}

// Activate godoc
// @Summary Re-activate a set of projects
// @Tags Projects
// @Accept json
// @Accept x-www-form-urlencoded
// @Produce json
// @Param payload body dto.ActivateProjectsRequest true "Activation payload"
// @Success 200 {object} response.Envelope
// @Router /projects/activate [post]
func (h *ProjectHandler) Activate(c *gin.Context) {
	req, err := activateRequestFrom(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	result, err := h.service.Activate(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, result)
}

// activateRequestFrom accepts the JSON body used by current clients and the
// form-encoded shape legacy clients still send.
func activateRequestFrom(c *gin.Context) (dto.ActivateProjectsRequest, error) {
	var req dto.ActivateProjectsRequest
	if c.ContentType() == gin.MIMEPOSTForm {
		ids, err := dto.ParseIDs(c.PostForm("ids"))
		if err != nil {
			return req, appErrors.Clone(appErrors.ErrValidation, err.Error())
		}
		req.IDs = ids
		req.UpdatedBy = c.PostForm("updatedBy")
		return req, nil
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid activation payload")
	}
	return req, nil
}

// AdvanceStatus godoc
// @Summary Advance a project status one step in the cycle
// @Tags Projects
// @Accept json
// @Produce json
// @Param id path int true "Project id"
// @Param payload body dto.AdvanceStatusRequest true "Audit payload"
// @Success 200 {object} response.Envelope
// @Router /projects/{id}/advance-status [post]
func (h *ProjectHandler) AdvanceStatus(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	var req dto.AdvanceStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	result, err := h.service.AdvanceStatus(c.Request.Context(), id, req.UpdatedBy)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, result)
}

// ReassignOwner godoc
// @Summary Reassign a project to another owner
// @Tags Projects
// @Accept json
// @Produce json
// @Param id path int true "Project id"
// @Param payload body dto.ReassignOwnerRequest true "Reassignment payload"
// @Success 200 {object} response.Envelope
// @Router /projects/{id}/reassign-owner [post]
func (h *ProjectHandler) ReassignOwner(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	var req dto.ReassignOwnerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid reassignment payload"))
		return
	}
	if err := h.service.ReassignOwner(c.Request.Context(), id, req); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, gin.H{"updated": true})
}

// ReassignArea godoc
// @Summary Reassign a project to another area and catalog service
// @Tags Projects
// @Accept json
// @Produce json
// @Param id path int true "Project id"
// @Param payload body dto.ReassignAreaRequest true "Reassignment payload"
// @Success 200 {object} response.Envelope
// @Router /projects/{id}/reassign-area [post]
func (h *ProjectHandler) ReassignArea(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	var req dto.ReassignAreaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid reassignment payload"))
		return
	}
	if err := h.service.ReassignArea(c.Request.Context(), id, req); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, gin.H{"updated": true})
}

// Reopen godoc
// @Summary Reopen a ticket
// @Tags Projects
// @Accept json
// @Produce json
// @Param id path int true "Project id"
// @Param payload body dto.ReopenProjectRequest true "Reopen payload"
// @Success 200 {object} response.Envelope
// @Router /projects/{id}/reopen [post]
func (h *ProjectHandler) Reopen(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	var req dto.ReopenProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid reopen payload"))
		return
	}
	if err := h.service.Reopen(c.Request.Context(), id, req); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, gin.H{"updated": true})
}

// Export godoc
// @Summary Export the filtered project list
// @Tags Projects
// @Produce text/csv
// @Produce application/pdf
// @Param format query string true "csv or pdf"
// @Param person query int false "Owner id"
// @Param status query int false "Status"
// @Param description query string false "Description substring"
// @Success 200 {file} file
// @Router /projects/export [get]
func (h *ProjectHandler) Export(c *gin.Context) {
	filter, err := projectFilterFromQuery(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	file, err := h.service.Export(c.Request.Context(), filter, c.Query("format"))
	if err != nil {
		response.Error(c, err)
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", file.Filename))
	c.Data(http.StatusOK, file.ContentType, file.Content)
}
