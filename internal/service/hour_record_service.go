package service

import (
	"context"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/deltanet/helpdesk-api/internal/dto"
	"github.com/deltanet/helpdesk-api/internal/models"
	appErrors "github.com/deltanet/helpdesk-api/pkg/errors"
)

type hourRecordRepository interface {
	CreateBatch(ctx context.Context, records []models.HourRecord) error
	ListByFilter(ctx context.Context, filter dto.HourRecordFilter) ([]models.HourRecord, error)
	Update(ctx context.Context, id int64, activity, hours, updatedBy string) (int64, error)
	Delete(ctx context.Context, id int64) (int64, error)
	Activate(ctx context.Context, ids []int64, updatedBy string) (int64, error)
}

// HourRecordService orchestrates hour-registration workflows.
type HourRecordService struct {
	repo      hourRecordRepository
	validator *validator.Validate
	logger    *zap.Logger
}

// NewHourRecordService constructs a HourRecordService.
func NewHourRecordService(repo hourRecordRepository, validate *validator.Validate, logger *zap.Logger) *HourRecordService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &HourRecordService{repo: repo, validator: validate, logger: logger}
}

// Create validates every entry up front, then inserts the whole batch in one
// transaction. No row is written when any entry is incomplete.
func (s *HourRecordService) Create(ctx context.Context, req dto.CreateHourRecordsRequest) ([]models.HourRecord, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid hour record payload")
	}
	if _, err := time.Parse(dateLayout, req.Day); err != nil {
		return nil, appErrors.Clone(appErrors.ErrValidation, "day must use YYYY-MM-DD")
	}
	for _, entry := range req.Entries {
		if strings.TrimSpace(entry.Activity) == "" || strings.TrimSpace(entry.Hours) == "" {
			return nil, appErrors.Clone(appErrors.ErrValidation, "every entry requires activity and hours")
		}
	}

	records := make([]models.HourRecord, 0, len(req.Entries))
	for _, entry := range req.Entries {
		records = append(records, models.HourRecord{
			ProjectID: req.ProjectID,
			PersonID:  req.PersonID,
			Activity:  entry.Activity,
			Hours:     entry.Hours,
			Day:       req.Day,
			CreatedBy: &req.CreatedBy,
		})
	}
	if err := s.repo.CreateBatch(ctx, records); err != nil {
		return nil, appErrors.Internal(err, "failed to create hour records")
	}
	return records, nil
}

// List matches rows by person, status and inclusive day range. All four
// parameters are required.
func (s *HourRecordService) List(ctx context.Context, filter dto.HourRecordFilter) ([]models.HourRecord, error) {
	if filter.PersonID <= 0 || filter.DayStart == "" || filter.DayEnd == "" {
		return nil, appErrors.Clone(appErrors.ErrValidation, "person, status, dayStart and dayEnd are required")
	}

	records, err := s.repo.ListByFilter(ctx, filter)
	if err != nil {
		return nil, appErrors.Internal(err, "failed to list hour records")
	}
	return records, nil
}

// Update rewrites a single row by id.
func (s *HourRecordService) Update(ctx context.Context, req dto.UpdateHourRecordRequest) error {
	if err := s.validator.Struct(req); err != nil {
		return appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid hour record payload")
	}

	affected, err := s.repo.Update(ctx, req.ID, req.Activity, req.Hours, req.UpdatedBy)
	if err != nil {
		return appErrors.Internal(err, "failed to update hour record")
	}
	if affected == 0 {
		return appErrors.Clone(appErrors.ErrNotFound, "hour record not found")
	}
	return nil
}

// Delete removes a single row by id.
func (s *HourRecordService) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return appErrors.Clone(appErrors.ErrValidation, "id is required")
	}

	affected, err := s.repo.Delete(ctx, id)
	if err != nil {
		return appErrors.Internal(err, "failed to delete hour record")
	}
	if affected == 0 {
		return appErrors.Clone(appErrors.ErrNotFound, "hour record not found")
	}
	return nil
}

// Activate sets each listed record back to active. The result echoes the
// requested ids and counts the rows that actually existed.
func (s *HourRecordService) Activate(ctx context.Context, req dto.ActivateHourRecordsRequest) (*dto.ActivateResult, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid activate payload")
	}

	updated, err := s.repo.Activate(ctx, req.IDs, req.UpdatedBy)
	if err != nil {
		return nil, appErrors.Internal(err, "failed to activate hour records")
	}
	return &dto.ActivateResult{IDs: req.IDs, Updated: updated}, nil
}
