package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/deltanet/helpdesk-api/internal/dto"
	"github.com/deltanet/helpdesk-api/internal/models"
	appErrors "github.com/deltanet/helpdesk-api/pkg/errors"
)

const (
	dateLayout = "2006-01-02"

	// defaultActivityDetail replaces an absent or empty detail on create.
	defaultActivityDetail = "No detail provided"
)

type activityRepository interface {
	Create(ctx context.Context, log *models.ActivityLog) error
	Update(ctx context.Context, id int64, date, detail, updatedBy string) (int64, error)
	ListByFilter(ctx context.Context, filter dto.ActivityFilter) ([]models.ActivityLog, error)
}

// ActivityService orchestrates activity-log workflows.
type ActivityService struct {
	repo      activityRepository
	validator *validator.Validate
	logger    *zap.Logger
}

// NewActivityService constructs an ActivityService.
func NewActivityService(repo activityRepository, validate *validator.Validate, logger *zap.Logger) *ActivityService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ActivityService{repo: repo, validator: validate, logger: logger}
}

// Create combines date and time into one timestamp and inserts the log.
func (s *ActivityService) Create(ctx context.Context, req dto.CreateActivityRequest) (*models.ActivityLog, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid activity payload")
	}

	occurredAt, err := combineDateTime(req.Date, req.Time)
	if err != nil {
		return nil, appErrors.Clone(appErrors.ErrValidation, err.Error())
	}

	detail := strings.TrimSpace(req.Detail)
	if detail == "" {
		detail = defaultActivityDetail
	}

	log := &models.ActivityLog{
		PersonID:       req.PersonID,
		ActivityTypeID: req.ActivityTypeID,
		OccurredAt:     occurredAt,
		Detail:         detail,
		CreatedBy:      &req.CreatedBy,
	}
	if err := s.repo.Create(ctx, log); err != nil {
		return nil, appErrors.Internal(err, "failed to create activity log")
	}
	return log, nil
}

// Update rewrites the date component and detail of an existing log.
func (s *ActivityService) Update(ctx context.Context, req dto.UpdateActivityRequest) error {
	if err := s.validator.Struct(req); err != nil {
		return appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid activity payload")
	}
	if _, err := time.Parse(dateLayout, req.Date); err != nil {
		return appErrors.Clone(appErrors.ErrValidation, "date must use YYYY-MM-DD")
	}

	affected, err := s.repo.Update(ctx, req.ID, req.Date, req.Detail, req.UpdatedBy)
	if err != nil {
		return appErrors.Internal(err, "failed to update activity log")
	}
	if affected == 0 {
		return appErrors.Clone(appErrors.ErrNotFound, "activity log not found")
	}
	return nil
}

// List matches logs by person, activity type and calendar date. All three
// filters are required.
func (s *ActivityService) List(ctx context.Context, filter dto.ActivityFilter) ([]models.ActivityLog, error) {
	if filter.PersonID <= 0 || filter.ActivityTypeID <= 0 || filter.Date == "" {
		return nil, appErrors.Clone(appErrors.ErrValidation, "person, activityType and date are required")
	}
	if _, err := time.Parse(dateLayout, filter.Date); err != nil {
		return nil, appErrors.Clone(appErrors.ErrValidation, "date must use YYYY-MM-DD")
	}

	logs, err := s.repo.ListByFilter(ctx, filter)
	if err != nil {
		return nil, appErrors.Internal(err, "failed to list activity logs")
	}
	return logs, nil
}

func combineDateTime(date, clock string) (time.Time, error) {
	for _, layout := range []string{"15:04:05", "15:04"} {
		if ts, err := time.Parse(dateLayout+" "+layout, date+" "+clock); err == nil {
			return ts.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("date and time must use YYYY-MM-DD and HH:MM[:SS]")
}
