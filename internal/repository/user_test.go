package repository

import (
	"context"
	"regexp"
	"testing"

	"inkwell/internal/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func TestUserRepositorySqlite(t *testing.T) {
	t.Parallel()

	db := setupTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	t.Run("create and lookups", func(t *testing.T) {
		user := &models.User{Username: "dave", Email: "dave@example.com", Password: "pw"}
		require.NoError(t, repo.Create(ctx, user))

		byName, err := repo.GetByUsername(ctx, "dave")
		require.NoError(t, err)
		assert.Equal(t, user.ID, byName.ID)

		byEmail, err := repo.GetByEmail(ctx, "dave@example.com")
		require.NoError(t, err)
		require.NotNil(t, byEmail)
		assert.Equal(t, user.ID, byEmail.ID)
	})

	t.Run("missing email lookup returns nil without error", func(t *testing.T) {
		user, err := repo.GetByEmail(ctx, "nobody@example.com")
		require.NoError(t, err)
		assert.Nil(t, user)
	})

	t.Run("missing username is not found", func(t *testing.T) {
		_, err := repo.GetByUsername(ctx, "nobody")
		require.Error(t, err)
		appErr, ok := err.(*models.AppError)
		require.True(t, ok)
		assert.Equal(t, models.CodeNotFound, appErr.Code)
	})

	t.Run("duplicate username is a constraint violation", func(t *testing.T) {
		err := repo.Create(ctx, &models.User{Username: "dave", Email: "other@example.com", Password: "pw"})
		require.Error(t, err)
		appErr, ok := err.(*models.AppError)
		require.True(t, ok)
		assert.Equal(t, models.CodeConstraintViolation, appErr.Code)
	})
}

// The postgres path is exercised against a mocked connection: the repository
// must translate SQLSTATE 23505 into the constraint-violation taxonomy.
func TestUserRepositoryTranslatesPostgresUniqueViolation(t *testing.T) {
	t.Parallel()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer func() { _ = sqlDB.Close() }()

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO "users"`)).
		WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "idx_users_username"})
	mock.ExpectRollback()

	repo := NewUserRepository(db)
	createErr := repo.Create(context.Background(), &models.User{
		Username: "dup", Email: "dup@example.com", Password: "pw",
	})

	require.Error(t, createErr)
	appErr, ok := createErr.(*models.AppError)
	require.True(t, ok)
	assert.Equal(t, models.CodeConstraintViolation, appErr.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}
