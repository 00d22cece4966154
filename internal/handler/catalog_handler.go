package handler

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/deltanet/helpdesk-api/internal/dto"
	"github.com/deltanet/helpdesk-api/internal/models"
	"github.com/deltanet/helpdesk-api/pkg/response"
)

type catalogService interface {
	ListServices(ctx context.Context, areaID *int64) ([]dto.ServiceItem, error)
	ListAreas(ctx context.Context) ([]models.Area, error)
	ListUserTypes(ctx context.Context) ([]models.LookupType, error)
	ListRecordTypes(ctx context.Context) ([]models.LookupType, error)
}

// CatalogHandler exposes the reference-data endpoints.
type CatalogHandler struct {
	service catalogService
}

// NewCatalogHandler builds a new handler.
func NewCatalogHandler(service catalogService) *CatalogHandler {
	return &CatalogHandler{service: service}
}

// ListServices godoc
// @Summary List catalog services
// @Tags Catalog
// @Produce json
// @Param area query int false "Area id"
// @Success 200 {object} response.Envelope
// @Router /catalog/services [get]
func (h *CatalogHandler) ListServices(c *gin.Context) {
	var areaID *int64
	if value, ok, err := queryInt64(c, "area"); err != nil {
		response.Error(c, err)
		return
	} else if ok {
		areaID = &value
	}

	items, err := h.service.ListServices(c.Request.Context(), areaID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, items)
}

// ListAreas godoc
// @Summary List areas
// @Tags Catalog
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /areas [get]
func (h *CatalogHandler) ListAreas(c *gin.Context) {
	areas, err := h.service.ListAreas(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, areas)
}

// ListUserTypes godoc
// @Summary List user types
// @Tags Catalog
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /user-types [get]
func (h *CatalogHandler) ListUserTypes(c *gin.Context) {
	types, err := h.service.ListUserTypes(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, types)
}

// ListRecordTypes godoc
// @Summary List record types
// @Tags Catalog
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /record-types [get]
func (h *CatalogHandler) ListRecordTypes(c *gin.Context) {
	types, err := h.service.ListRecordTypes(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, types)
}
