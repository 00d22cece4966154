package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deltanet/helpdesk-api/internal/dto"
	"github.com/deltanet/helpdesk-api/internal/models"
)

func TestHourRecordRepositoryCreateBatch(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewHourRecordRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO hour_records").
		WithArgs(int64(3), int64(4), "support call", "2.5", "2024-05-10", models.HourRecordActive, strPtr("jperez"), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(21, 1))
	mock.ExpectExec("INSERT INTO hour_records").
		WithArgs(int64(3), int64(4), "deploy", "1.0", "2024-05-10", models.HourRecordActive, strPtr("jperez"), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(22, 1))
	mock.ExpectCommit()

	records := []models.HourRecord{
		{ProjectID: 3, PersonID: 4, Activity: "support call", Hours: "2.5", Day: "2024-05-10", CreatedBy: strPtr("jperez")},
		{ProjectID: 3, PersonID: 4, Activity: "deploy", Hours: "1.0", Day: "2024-05-10", CreatedBy: strPtr("jperez")},
	}
	require.NoError(t, repo.CreateBatch(context.Background(), records))
	assert.Equal(t, int64(21), records[0].ID)
	assert.Equal(t, int64(22), records[1].ID)
	assert.Equal(t, models.HourRecordActive, records[0].Status)
}

func TestHourRecordRepositoryCreateBatchRollsBack(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewHourRecordRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO hour_records").
		WillReturnResult(sqlmock.NewResult(21, 1))
	mock.ExpectExec("INSERT INTO hour_records").
		WillReturnError(errors.New("constraint violation"))
	mock.ExpectRollback()

	records := []models.HourRecord{
		{ProjectID: 3, PersonID: 4, Activity: "support call", Hours: "2.5", Day: "2024-05-10"},
		{ProjectID: 3, PersonID: 4, Activity: "deploy", Hours: "1.0", Day: "2024-05-10"},
	}
	err := repo.CreateBatch(context.Background(), records)
	require.Error(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestHourRecordRepositoryListByFilter(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewHourRecordRepository(db)

	rows := sqlmock.NewRows([]string{"id", "project_id", "person_id", "activity", "hours", "day", "status", "created_by", "created_at", "updated_by", "updated_at"}).
		AddRow(21, 3, 4, "support call", "2.5", "2024-05-10", 1, "jperez", nil, nil, nil)
	mock.ExpectQuery("FROM hour_records").
		WithArgs(int64(4), 1, "2024-05-01", "2024-05-31").
		WillReturnRows(rows)

	records, err := repo.ListByFilter(context.Background(), dto.HourRecordFilter{PersonID: 4, Status: 1, DayStart: "2024-05-01", DayEnd: "2024-05-31"})
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "2024-05-10", records[0].Day)
}

func TestHourRecordRepositoryActivateSkipsMissingIDs(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewHourRecordRepository(db)

	mock.ExpectExec("UPDATE hour_records SET status").
		WithArgs(models.HourRecordActive, "admin", sqlmock.AnyArg(), int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("UPDATE hour_records SET status").
		WithArgs(models.HourRecordActive, "admin", sqlmock.AnyArg(), int64(2)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("UPDATE hour_records SET status").
		WithArgs(models.HourRecordActive, "admin", sqlmock.AnyArg(), int64(999)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	updated, err := repo.Activate(context.Background(), []int64{1, 2, 999}, "admin")
	require.NoError(t, err)
	assert.Equal(t, int64(2), updated)
}

func TestHourRecordRepositoryDelete(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewHourRecordRepository(db)

	mock.ExpectExec("DELETE FROM hour_records").
		WithArgs(int64(21)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	affected, err := repo.Delete(context.Background(), 21)
	require.NoError(t, err)
	assert.Equal(t, int64(1), affected)
}
