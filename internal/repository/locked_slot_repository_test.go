package repository

import (
	"testing"
	"time"

	"go-clinic-management/pkg/dateparse"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{Logger: logger.Discard})
	require.NoError(t, err)
	return db, mock
}

func TestLockedSlotFindByDetails(t *testing.T) {
	repo := NewLockedSlotRepository()
	doctorID := uuid.New()
	day := time.Date(2026, 9, 12, 0, 0, 0, 0, time.UTC)

	t.Run("returns the matching lock", func(t *testing.T) {
		db, mock := newMockDB(t)
		slotID := uuid.New()

		rows := sqlmock.NewRows([]string{"id", "doctor_id", "date", "time", "reason"}).
			AddRow(slotID, doctorID, day, "14:00", "Holiday")
		mock.ExpectQuery(`SELECT \* FROM "locked_slots" WHERE doctor_id = \$1 AND date >= \$2 AND date <= \$3 AND time = \$4`).
			WithArgs(doctorID, dateparse.StartOfDay(day), dateparse.EndOfDay(day), "14:00", 1).
			WillReturnRows(rows)

		slot, err := repo.FindByDetails(db, doctorID, dateparse.StartOfDay(day), dateparse.EndOfDay(day), "14:00")
		require.NoError(t, err)
		require.NotNil(t, slot)
		assert.Equal(t, slotID, slot.ID)
		assert.Equal(t, "Holiday", slot.Reason)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("maps record-not-found to a nil slot", func(t *testing.T) {
		db, mock := newMockDB(t)

		mock.ExpectQuery(`SELECT \* FROM "locked_slots"`).
			WillReturnRows(sqlmock.NewRows([]string{"id"}))

		slot, err := repo.FindByDetails(db, doctorID, dateparse.StartOfDay(day), dateparse.EndOfDay(day), "14:00")
		require.NoError(t, err)
		assert.Nil(t, slot)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestLockedSlotDeleteByID(t *testing.T) {
	repo := NewLockedSlotRepository()

	t.Run("reports affected rows", func(t *testing.T) {
		db, mock := newMockDB(t)
		slotID := uuid.New()

		mock.ExpectBegin()
		mock.ExpectExec(`DELETE FROM "locked_slots" WHERE id = \$1`).
			WithArgs(slotID).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		affected, err := repo.DeleteByID(db, slotID)
		require.NoError(t, err)
		assert.Equal(t, int64(1), affected)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("reports zero rows for an unknown id", func(t *testing.T) {
		db, mock := newMockDB(t)
		slotID := uuid.New()

		mock.ExpectBegin()
		mock.ExpectExec(`DELETE FROM "locked_slots"`).
			WithArgs(slotID).
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectCommit()

		affected, err := repo.DeleteByID(db, slotID)
		require.NoError(t, err)
		assert.Equal(t, int64(0), affected)
	})
}

func TestLockedSlotDeleteByDetails(t *testing.T) {
	repo := NewLockedSlotRepository()
	doctorID := uuid.New()
	day := time.Date(2026, 9, 12, 0, 0, 0, 0, time.UTC)

	db, mock := newMockDB(t)

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM "locked_slots" WHERE doctor_id = \$1 AND date >= \$2 AND date <= \$3 AND time = \$4`).
		WithArgs(doctorID, dateparse.StartOfDay(day), dateparse.EndOfDay(day), "14:00").
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectCommit()

	affected, err := repo.DeleteByDetails(db, doctorID, dateparse.StartOfDay(day), dateparse.EndOfDay(day), "14:00")
	require.NoError(t, err)
	assert.Equal(t, int64(2), affected)
	assert.NoError(t, mock.ExpectationsWereMet())
}
