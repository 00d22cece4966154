package service

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deltanet/helpdesk-api/internal/models"
	appErrors "github.com/deltanet/helpdesk-api/pkg/errors"
)

type catalogRepoStub struct {
	areas    map[int64]bool
	services []models.CatalogService
	err      error
}

func (s *catalogRepoStub) AreaExists(ctx context.Context, id int64) (bool, error) {
	if s.err != nil {
		return false, s.err
	}
	return s.areas[id], nil
}

func (s *catalogRepoStub) ListServices(ctx context.Context, areaID *int64) ([]models.CatalogService, error) {
	if s.err != nil {
		return nil, s.err
	}
	if areaID == nil {
		return s.services, nil
	}
	result := []models.CatalogService{}
	for _, svc := range s.services {
		if svc.AreaID == *areaID {
			result = append(result, svc)
		}
	}
	return result, nil
}

func (s *catalogRepoStub) ListAreas(ctx context.Context) ([]models.Area, error) {
	if s.err != nil {
		return nil, s.err
	}
	return []models.Area{}, nil
}

func (s *catalogRepoStub) ListUserTypes(ctx context.Context) ([]models.LookupType, error) {
	return []models.LookupType{}, s.err
}

func (s *catalogRepoStub) ListRecordTypes(ctx context.Context) ([]models.LookupType, error) {
	return []models.LookupType{}, s.err
}

func TestCatalogServiceListServicesUnknownArea(t *testing.T) {
	svc := NewCatalogService(&catalogRepoStub{areas: map[int64]bool{7: true}}, nil)

	areaID := int64(99)
	_, err := svc.ListServices(context.Background(), &areaID)
	require.Error(t, err)
	appErr := appErrors.FromError(err)
	assert.Equal(t, http.StatusNotFound, appErr.Status)
	assert.Equal(t, "area not found", appErr.Message)
}

func TestCatalogServiceListServicesEmptyAreaIsOK(t *testing.T) {
	svc := NewCatalogService(&catalogRepoStub{areas: map[int64]bool{7: true}}, nil)

	areaID := int64(7)
	items, err := svc.ListServices(context.Background(), &areaID)
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestCatalogServiceListServicesMapsItems(t *testing.T) {
	repo := &catalogRepoStub{
		areas: map[int64]bool{7: true},
		services: []models.CatalogService{
			{ID: 1, AreaID: 7, Name: "Backups"},
			{ID: 2, AreaID: 8, Name: "Telephony"},
		},
	}
	svc := NewCatalogService(repo, nil)

	areaID := int64(7)
	items, err := svc.ListServices(context.Background(), &areaID)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Backups", items[0].Name)
}

func TestCatalogServiceListServicesRepoFailure(t *testing.T) {
	svc := NewCatalogService(&catalogRepoStub{err: errors.New("connection lost")}, nil)

	_, err := svc.ListServices(context.Background(), nil)
	require.Error(t, err)
	assert.Equal(t, http.StatusInternalServerError, appErrors.FromError(err).Status)
}
