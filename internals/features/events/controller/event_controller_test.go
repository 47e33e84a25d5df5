package controller

import (
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func mockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	return db, mock
}

// Deleting an event must take its rosters and their assignments down with
// it, not just the pastoral links and participants.
func TestRemoveEventGraphDeletesScheduleRows(t *testing.T) {
	db, mock := mockDB(t)
	id := uuid.New()

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM "event_pastoral_assignments"`)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM "event_pastorals"`)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM "event_participants"`)).
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM "schedule_assignments"`) +
		`.*` + regexp.QuoteMeta(`SELECT "schedule_id" FROM "schedules"`)).
		WillReturnResult(sqlmock.NewResult(0, 3))
	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM "schedules" WHERE schedule_event_id`)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM "events"`)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := db.Transaction(func(tx *gorm.DB) error {
		return removeEventGraph(tx, id)
	})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// A failing child delete must roll the whole transaction back and leave the
// event row untouched.
func TestRemoveEventGraphRollsBackOnChildFailure(t *testing.T) {
	db, mock := mockDB(t)
	id := uuid.New()

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM "event_pastoral_assignments"`)).
		WillReturnError(gorm.ErrInvalidTransaction)
	mock.ExpectRollback()

	err := db.Transaction(func(tx *gorm.DB) error {
		return removeEventGraph(tx, id)
	})
	require.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
