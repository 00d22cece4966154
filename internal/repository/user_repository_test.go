package repository

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserRepositoryFindByUsername(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewUserRepository(db)

	rows := sqlmock.NewRows([]string{"id", "username", "password_hash", "full_name", "active", "created_at", "updated_at", "last_login_at"}).
		AddRow("usr-1", "jperez", "$2a$10$hash", "Juan Perez", true, time.Now(), time.Now(), nil)
	mock.ExpectQuery("FROM users WHERE username").
		WithArgs("jperez").
		WillReturnRows(rows)

	user, err := repo.FindByUsername(context.Background(), "jperez")
	require.NoError(t, err)
	assert.Equal(t, "usr-1", user.ID)
	assert.True(t, user.Active)
}

func TestUserRepositoryFindByUsernameMissing(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewUserRepository(db)

	mock.ExpectQuery("FROM users WHERE username").
		WithArgs("ghost").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.FindByUsername(context.Background(), "ghost")
	require.ErrorIs(t, err, sql.ErrNoRows)
}
