package service

import (
	"errors"
	"testing"
	"time"

	"go-clinic-management/internal/domain/entity"
	"go-clinic-management/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type stubAppointmentRepo struct {
	repository.AppointmentRepository

	appointments []entity.Appointment
	err          error
}

func (s *stubAppointmentRepo) FindByDoctorID(db *gorm.DB, doctorID uuid.UUID) ([]entity.Appointment, error) {
	return s.appointments, s.err
}

type stubLockedSlotRepo struct {
	repository.LockedSlotRepository

	lock *entity.LockedSlot
	err  error
}

func (s *stubLockedSlotRepo) FindByDetails(db *gorm.DB, doctorID uuid.UUID, dayStart, dayEnd time.Time, timeToken string) (*entity.LockedSlot, error) {
	return s.lock, s.err
}

func newLedger(appointments *stubAppointmentRepo, locks *stubLockedSlotRepo) *SlotLedger {
	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)
	return NewSlotLedger(log, appointments, locks)
}

func TestSlotLedgerIsAvailable(t *testing.T) {
	doctorID := uuid.New()
	day := time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC)

	appointmentAt := func(d time.Time, timeToken string, status entity.AppointmentStatus) entity.Appointment {
		return entity.Appointment{
			DoctorID:        doctorID,
			AppointmentDate: d,
			AppointmentTime: timeToken,
			Status:          status,
		}
	}

	t.Run("free when nothing occupies the slot", func(t *testing.T) {
		ledger := newLedger(&stubAppointmentRepo{}, &stubLockedSlotRepo{})

		available, err := ledger.IsAvailable(nil, doctorID, day, "10:30")
		require.NoError(t, err)
		assert.True(t, available)
	})

	t.Run("taken by a scheduled appointment at the same day and time", func(t *testing.T) {
		ledger := newLedger(&stubAppointmentRepo{
			appointments: []entity.Appointment{appointmentAt(day, "10:30", entity.AppointmentStatusScheduled)},
		}, &stubLockedSlotRepo{})

		available, err := ledger.IsAvailable(nil, doctorID, day, "10:30")
		require.NoError(t, err)
		assert.False(t, available)
	})

	t.Run("taken by a completed appointment", func(t *testing.T) {
		ledger := newLedger(&stubAppointmentRepo{
			appointments: []entity.Appointment{appointmentAt(day, "10:30", entity.AppointmentStatusCompleted)},
		}, &stubLockedSlotRepo{})

		available, err := ledger.IsAvailable(nil, doctorID, day, "10:30")
		require.NoError(t, err)
		assert.False(t, available)
	})

	t.Run("cancelled and no-show appointments free the slot", func(t *testing.T) {
		ledger := newLedger(&stubAppointmentRepo{
			appointments: []entity.Appointment{
				appointmentAt(day, "10:30", entity.AppointmentStatusCancelled),
				appointmentAt(day, "10:30", entity.AppointmentStatusNoShow),
			},
		}, &stubLockedSlotRepo{})

		available, err := ledger.IsAvailable(nil, doctorID, day, "10:30")
		require.NoError(t, err)
		assert.True(t, available)
	})

	t.Run("same time on another day does not conflict", func(t *testing.T) {
		ledger := newLedger(&stubAppointmentRepo{
			appointments: []entity.Appointment{appointmentAt(day.AddDate(0, 0, 1), "10:30", entity.AppointmentStatusScheduled)},
		}, &stubLockedSlotRepo{})

		available, err := ledger.IsAvailable(nil, doctorID, day, "10:30")
		require.NoError(t, err)
		assert.True(t, available)
	})

	t.Run("records with a zero date are skipped", func(t *testing.T) {
		ledger := newLedger(&stubAppointmentRepo{
			appointments: []entity.Appointment{appointmentAt(time.Time{}, "10:30", entity.AppointmentStatusScheduled)},
		}, &stubLockedSlotRepo{})

		available, err := ledger.IsAvailable(nil, doctorID, day, "10:30")
		require.NoError(t, err)
		assert.True(t, available)
	})

	t.Run("an admin lock takes the slot", func(t *testing.T) {
		ledger := newLedger(&stubAppointmentRepo{}, &stubLockedSlotRepo{
			lock: &entity.LockedSlot{DoctorID: doctorID, Date: day, Time: "10:30"},
		})

		available, err := ledger.IsAvailable(nil, doctorID, day, "10:30")
		require.NoError(t, err)
		assert.False(t, available)
	})

	t.Run("appointment store errors propagate", func(t *testing.T) {
		ledger := newLedger(&stubAppointmentRepo{err: errors.New("connection reset")}, &stubLockedSlotRepo{})

		_, err := ledger.IsAvailable(nil, doctorID, day, "10:30")
		assert.Error(t, err)
	})

	t.Run("locked slot store errors propagate", func(t *testing.T) {
		ledger := newLedger(&stubAppointmentRepo{}, &stubLockedSlotRepo{err: errors.New("connection reset")})

		_, err := ledger.IsAvailable(nil, doctorID, day, "10:30")
		assert.Error(t, err)
	})
}
