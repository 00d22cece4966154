package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/deltanet/helpdesk-api/internal/dto"
	"github.com/deltanet/helpdesk-api/internal/models"
	appErrors "github.com/deltanet/helpdesk-api/pkg/errors"
	"github.com/deltanet/helpdesk-api/pkg/response"
)

type activityService interface {
	Create(ctx context.Context, req dto.CreateActivityRequest) (*models.ActivityLog, error)
	Update(ctx context.Context, req dto.UpdateActivityRequest) error
	List(ctx context.Context, filter dto.ActivityFilter) ([]models.ActivityLog, error)
}

// ActivityHandler exposes the activity-log endpoints.
type ActivityHandler struct {
	service activityService
}

// NewActivityHandler builds a new handler.
func NewActivityHandler(service activityService) *ActivityHandler {
	return &ActivityHandler{service: service}
}

// Create godoc
// @Summary Create activity log
// @Tags Activities
// @Accept json
// @Produce json
// @Param payload body dto.CreateActivityRequest true "Activity payload"
// @Success 201 {object} response.Envelope
// @Router /activities [post]
func (h *ActivityHandler) Create(c *gin.Context) {
	var req dto.CreateActivityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid activity payload"))
		return
	}
	log, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, log)
}

// Update godoc
// @Summary Update activity log
// @Tags Activities
// @Accept json
// @Produce json
// @Param payload body dto.UpdateActivityRequest true "Activity payload"
// @Success 200 {object} response.Envelope
// @Router /activities [put]
func (h *ActivityHandler) Update(c *gin.Context) {
	var req dto.UpdateActivityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid activity payload"))
		return
	}
	if err := h.service.Update(c.Request.Context(), req); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, gin.H{"updated": true})
}

// List godoc
// @Summary List activity logs
// @Tags Activities
// @Produce json
// @Param person query int true "Person id"
// @Param activityType query int true "Activity type id"
// @Param date query string true "Calendar date (YYYY-MM-DD)"
// @Success 200 {object} response.Envelope
// @Router /activities [get]
func (h *ActivityHandler) List(c *gin.Context) {
	filter := dto.ActivityFilter{Date: c.Query("date")}
	if value, _, err := queryInt64(c, "person"); err != nil {
		response.Error(c, err)
		return
	} else {
		filter.PersonID = value
	}
	if value, _, err := queryInt64(c, "activityType"); err != nil {
		response.Error(c, err)
		return
	} else {
		filter.ActivityTypeID = value
	}

	logs, err := h.service.List(c.Request.Context(), filter)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, logs)
}
