package repository

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deltanet/helpdesk-api/internal/dto"
	"github.com/deltanet/helpdesk-api/internal/models"
)

func TestActivityRepositoryCreate(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewActivityRepository(db)

	occurred := time.Date(2024, 5, 10, 9, 30, 0, 0, time.UTC)
	mock.ExpectExec("INSERT INTO activity_logs").
		WithArgs(int64(4), int64(2), occurred, "daily standup", strPtr("jperez"), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(15, 1))

	log := &models.ActivityLog{
		PersonID:       4,
		ActivityTypeID: 2,
		OccurredAt:     occurred,
		Detail:         "daily standup",
		CreatedBy:      strPtr("jperez"),
	}
	require.NoError(t, repo.Create(context.Background(), log))
	assert.Equal(t, int64(15), log.ID)
	require.NotNil(t, log.CreatedAt)
}

func TestActivityRepositoryUpdateMissingRow(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewActivityRepository(db)

	mock.ExpectExec("UPDATE activity_logs").
		WithArgs("2024-05-11", "moved to friday", "jperez", sqlmock.AnyArg(), int64(99)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	affected, err := repo.Update(context.Background(), 99, "2024-05-11", "moved to friday", "jperez")
	require.NoError(t, err)
	assert.Zero(t, affected)
}

func TestActivityRepositoryListByFilter(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewActivityRepository(db)

	rows := sqlmock.NewRows([]string{"id", "person_id", "activity_type_id", "occurred_at", "detail", "created_by", "created_at", "updated_by", "updated_at"}).
		AddRow(1, 4, 2, time.Date(2024, 5, 10, 9, 30, 0, 0, time.UTC), "daily standup", "jperez", time.Now(), nil, nil)
	mock.ExpectQuery("FROM activity_logs").
		WithArgs(int64(4), int64(2), "2024-05-10").
		WillReturnRows(rows)

	logs, err := repo.ListByFilter(context.Background(), dto.ActivityFilter{PersonID: 4, ActivityTypeID: 2, Date: "2024-05-10"})
	require.NoError(t, err)
	require.Len(t, logs, 1)
	assert.Equal(t, "daily standup", logs[0].Detail)
}

func strPtr(value string) *string {
	return &value
}
