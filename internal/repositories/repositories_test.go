package repositories

import (
	"errors"
	"fmt"
	"testing"

	"creatorcrewz/internal/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// setupMockDB opens gorm over sqlmock with the same error translation as database.Connect.
func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = mockDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: mockDB}), &gorm.Config{
		TranslateError:         true,
		SkipDefaultTransaction: true,
		Logger:                 gormlogger.Discard,
	})
	require.NoError(t, err)
	return db, mock
}

func TestTranslateCreate(t *testing.T) {
	dup := errors.New("duplicate")
	other := errors.New("connection reset")

	assert.NoError(t, translateCreate(nil, dup))
	assert.Same(t, dup, translateCreate(gorm.ErrDuplicatedKey, dup))
	assert.Same(t, dup, translateCreate(fmt.Errorf("insert: %w", gorm.ErrDuplicatedKey), dup))
	assert.Same(t, other, translateCreate(other, dup))
}

func TestProjectRepository_UpdatePaymentStatus(t *testing.T) {
	tests := []struct {
		name    string
		rows    int64
		execErr error
		want    error
	}{
		{"moved", 1, nil, nil},
		{"status changed underneath", 0, nil, ErrStatusConflict},
		{"driver error", 0, errors.New("connection reset"), nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock := setupMockDB(t)
			exec := mock.ExpectExec(`UPDATE "projects" SET "payment_status"`)
			if tt.execErr != nil {
				exec.WillReturnError(tt.execErr)
			} else {
				exec.WillReturnResult(sqlmock.NewResult(0, tt.rows))
			}

			err := NewProjectRepository().UpdatePaymentStatus(db, "p1", models.PaymentStatusPending, models.PaymentStatusInEscrow)
			switch {
			case tt.execErr != nil:
				assert.Error(t, err)
				assert.NotErrorIs(t, err, ErrStatusConflict)
			case tt.want != nil:
				assert.ErrorIs(t, err, tt.want)
			default:
				assert.NoError(t, err)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestJobRepository_UpdateStatusConflict(t *testing.T) {
	db, mock := setupMockDB(t)
	mock.ExpectExec(`UPDATE "job_postings" SET "status"`).WillReturnResult(sqlmock.NewResult(0, 0))

	err := NewJobRepository().UpdateStatus(db, "j1", models.JobStatusOpen, models.JobStatusInProgress)
	assert.ErrorIs(t, err, ErrStatusConflict)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReviewRepository_CreateUniqueViolation(t *testing.T) {
	db, mock := setupMockDB(t)
	mock.ExpectQuery(`SELECT \* FROM "reviews"`).WillReturnRows(sqlmock.NewRows([]string{"id"}))
	mock.ExpectExec(`INSERT INTO "reviews"`).WillReturnError(&pgconn.PgError{Code: "23505"})

	err := NewReviewRepository().Create(db, &models.Review{
		ProjectID:  "p1",
		ReviewerID: "u1",
		ReviewedID: "u2",
		Rating:     5,
	})
	assert.ErrorIs(t, err, ErrReviewAlreadyExists)
	assert.NoError(t, mock.ExpectationsWereMet())
}
