package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/deltanet/helpdesk-api/internal/dto"
	"github.com/deltanet/helpdesk-api/internal/models"
	appErrors "github.com/deltanet/helpdesk-api/pkg/errors"
)

type catalogRepository interface {
	AreaExists(ctx context.Context, id int64) (bool, error)
	ListServices(ctx context.Context, areaID *int64) ([]models.CatalogService, error)
	ListAreas(ctx context.Context) ([]models.Area, error)
	ListUserTypes(ctx context.Context) ([]models.LookupType, error)
	ListRecordTypes(ctx context.Context) ([]models.LookupType, error)
}

// CatalogService exposes the read-only reference data.
type CatalogService struct {
	repo   catalogRepository
	logger *zap.Logger
}

// NewCatalogService constructs a CatalogService.
func NewCatalogService(repo catalogRepository, logger *zap.Logger) *CatalogService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CatalogService{repo: repo, logger: logger}
}

// ListServices returns catalog services, optionally restricted to one area.
// An unknown area is reported as not found; an existing area without
// services yields an empty list.
func (s *CatalogService) ListServices(ctx context.Context, areaID *int64) ([]dto.ServiceItem, error) {
	if areaID != nil {
		exists, err := s.repo.AreaExists(ctx, *areaID)
		if err != nil {
			return nil, appErrors.Internal(err, "failed to verify area")
		}
		if !exists {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "area not found")
		}
	}

	services, err := s.repo.ListServices(ctx, areaID)
	if err != nil {
		return nil, appErrors.Internal(err, "failed to list catalog services")
	}

	items := make([]dto.ServiceItem, 0, len(services))
	for _, svc := range services {
		items = append(items, dto.ServiceItem{ID: svc.ID, Name: svc.Name})
	}
	return items, nil
}

// ListAreas returns the full area table.
func (s *CatalogService) ListAreas(ctx context.Context) ([]models.Area, error) {
	areas, err := s.repo.ListAreas(ctx)
	if err != nil {
		return nil, appErrors.Internal(err, "failed to list areas")
	}
	return areas, nil
}

// ListUserTypes returns the full user-type table.
func (s *CatalogService) ListUserTypes(ctx context.Context) ([]models.LookupType, error) {
	types, err := s.repo.ListUserTypes(ctx)
	if err != nil {
		return nil, appErrors.Internal(err, "failed to list user types")
	}
	return types, nil
}

// ListRecordTypes returns the full record-type table.
func (s *CatalogService) ListRecordTypes(ctx context.Context) ([]models.LookupType, error) {
	types, err := s.repo.ListRecordTypes(ctx)
	if err != nil {
		return nil, appErrors.Internal(err, "failed to list record types")
	}
	return types, nil
}
