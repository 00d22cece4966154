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

type hourRecordService interface {
	Create(ctx context.Context, req dto.CreateHourRecordsRequest) ([]models.HourRecord, error)
	List(ctx context.Context, filter dto.HourRecordFilter) ([]models.HourRecord, error)
	Update(ctx context.Context, req dto.UpdateHourRecordRequest) error
	Delete(ctx context.Context, id int64) error
	Activate(ctx context.Context, req dto.ActivateHourRecordsRequest) (*dto.ActivateResult, error)
}

// HourRecordHandler exposes the hour-registration endpoints.
type HourRecordHandler struct {
	service hourRecordService
}

// NewHourRecordHandler builds a new handler.
func NewHourRecordHandler(service hourRecordService) *HourRecordHandler {
	return &HourRecordHandler{service: service}
}

// Create godoc
// @Summary Register a batch of hour records
// @Tags HourRecords
// @Accept json
// @Produce json
// @Param payload body dto.CreateHourRecordsRequest true "Batch payload"
// @Success 201 {object} response.Envelope
// @Router /hour-records [post]
func (h *HourRecordHandler) Create(c *gin.Context) {
	var req dto.CreateHourRecordsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid hour record payload"))
		return
	}
	records, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, records)
}

// List godoc
// @Summary List hour records
// @Tags HourRecords
// @Produce json
// @Param person query int true "Person id"
// @Param status query int true "Status"
// @Param dayStart query string true "Range start (YYYY-MM-DD)"
// @Param dayEnd query string true "Range end (YYYY-MM-DD)"
// @Success 200 {object} response.Envelope
// @Router /hour-records [get]
func (h *HourRecordHandler) List(c *gin.Context) {
	filter := dto.HourRecordFilter{DayStart: c.Query("dayStart"), DayEnd: c.Query("dayEnd")}
	if value, _, err := queryInt64(c, "person"); err != nil {
		response.Error(c, err)
		return
	} else {
		filter.PersonID = value
	}
	if value, ok, err := queryInt(c, "status"); err != nil {
		response.Error(c, err)
		return
	} else if !ok {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "status is required"))
		return
	} else {
		filter.Status = value
	}

	records, err := h.service.List(c.Request.Context(), filter)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, records)
}

// Update godoc
// @Summary Update an hour record
// @Tags HourRecords
// @Accept json
// @Produce json
// @Param payload body dto.UpdateHourRecordRequest true "Update payload"
// @Success 200 {object} response.Envelope
// @Router /hour-records [put]
func (h *HourRecordHandler) Update(c *gin.Context) {
	var req dto.UpdateHourRecordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid hour record payload"))
		return
	}
	if err := h.service.Update(c.Request.Context(), req); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, gin.H{"updated": true})
}

// Delete godoc
// @Summary Delete an hour record
// @Tags HourRecords
// @Produce json
// @Param id query int true "Record id"
// @Success 200 {object} response.Envelope
// @Router /hour-records [delete]
func (h *HourRecordHandler) Delete(c *gin.Context) {
	id, ok, err := queryInt64(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}
	if !ok || id <= 0 {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "id is required"))
		return
	}
	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, gin.H{"deleted": true})
}

// Activate godoc
// @Summary Re-activate hour records
// @Tags HourRecords
// @Accept json
// @Produce json
// @Param payload body dto.ActivateHourRecordsRequest true "Activation payload"
// @Success 200 {object} response.Envelope
// @Router /hour-records/activate [post]
func (h *HourRecordHandler) Activate(c *gin.Context) {
	var req dto.ActivateHourRecordsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid activation payload"))
		return
	}
	result, err := h.service.Activate(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, result)
}
