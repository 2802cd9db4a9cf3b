package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"go-clinic-management/internal/delivery/dto"
	"go-clinic-management/internal/domain/entity"
	"go-clinic-management/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type waitingListFixture struct {
	usecase         WaitingListUsecase
	waitingListRepo *mockWaitingListRepo
	patientRepo     *mockPatientRepo
	doctorRepo      *mockDoctorRepo
	appointmentRepo *mockAppointmentRepo
	audit           *mockAuditService
}

func newWaitingListFixture(t *testing.T) *waitingListFixture {
	t.Helper()

	f := &waitingListFixture{
		waitingListRepo: &mockWaitingListRepo{},
		patientRepo:     &mockPatientRepo{},
		doctorRepo:      &mockDoctorRepo{},
		appointmentRepo: &mockAppointmentRepo{},
		audit:           &mockAuditService{},
	}

	db := newTestDB(t)
	log := newTestLogger()
	ledger := service.NewSlotLedger(log, f.appointmentRepo, &mockLockedSlotRepo{})
	appointmentUsecase := NewAppointmentUsecase(db, log, f.appointmentRepo, f.patientRepo, f.doctorRepo, ledger, f.audit)
	f.usecase = NewWaitingListUsecase(db, log, f.waitingListRepo, f.patientRepo, f.doctorRepo, appointmentUsecase, f.audit)
	return f
}

func waitingEntry(doctorID uuid.UUID, preferred time.Time, priority int) entity.WaitingListEntry {
	return entity.WaitingListEntry{
		ID:            uuid.New(),
		PatientID:     uuid.New(),
		PatientName:   "Ada Brown",
		DoctorID:      doctorID,
		DoctorName:    "Dr. Grace Osei",
		PreferredDate: preferred,
		Status:        entity.WaitingListStatusWaiting,
		Priority:      priority,
	}
}

func TestWaitingListAdd(t *testing.T) {
	patientID := uuid.New()
	doctorID := uuid.New()
	actorID := uuid.New()

	setupLookups := func(f *waitingListFixture) {
		f.patientRepo.findByIDFn = func(_ *gorm.DB, id uuid.UUID) (*entity.Patient, error) {
			return existingPatient(patientID, actorID), nil
		}
		f.doctorRepo.findByIDFn = func(_ *gorm.DB, id uuid.UUID) (*entity.Doctor, error) {
			return existingDoctor(doctorID), nil
		}
	}

	t.Run("appends to the back of the doctor's queue by default", func(t *testing.T) {
		f := newWaitingListFixture(t)
		setupLookups(f)
		f.waitingListRepo.findWaitingByDoctorIDFn = func(_ *gorm.DB, id uuid.UUID) ([]entity.WaitingListEntry, error) {
			return []entity.WaitingListEntry{
				waitingEntry(id, time.Now(), 2),
				waitingEntry(id, time.Now(), 5),
			}, nil
		}

		resp, err := f.usecase.Add(context.Background(), &dto.CreateWaitingListRequest{
			PatientID:     patientID,
			DoctorID:      doctorID,
			PreferredDate: flexDate(t, "2026-09-15"),
		}, actorID)

		require.NoError(t, err)
		assert.Equal(t, 6, resp.Priority)
		assert.Equal(t, string(entity.WaitingListStatusWaiting), resp.Status)
		assert.Contains(t, f.audit.actions, entity.AuditActionWaitingListAdd)
	})

	t.Run("keeps an explicit priority", func(t *testing.T) {
		f := newWaitingListFixture(t)
		setupLookups(f)

		priority := 1
		resp, err := f.usecase.Add(context.Background(), &dto.CreateWaitingListRequest{
			PatientID:     patientID,
			DoctorID:      doctorID,
			PreferredDate: flexDate(t, "2026-09-15"),
			Priority:      &priority,
		}, actorID)

		require.NoError(t, err)
		assert.Equal(t, 1, resp.Priority)
	})

	t.Run("rejects a missing preferred date", func(t *testing.T) {
		f := newWaitingListFixture(t)
		setupLookups(f)

		_, err := f.usecase.Add(context.Background(), &dto.CreateWaitingListRequest{
			PatientID: patientID,
			DoctorID:  doctorID,
		}, actorID)

		assert.ErrorIs(t, err, ErrInvalidPreferredDate)
	})

	t.Run("rejects unknown patients and doctors", func(t *testing.T) {
		f := newWaitingListFixture(t)

		_, err := f.usecase.Add(context.Background(), &dto.CreateWaitingListRequest{
			PatientID:     patientID,
			DoctorID:      doctorID,
			PreferredDate: flexDate(t, "2026-09-15"),
		}, actorID)
		assert.ErrorIs(t, err, ErrPatientNotFound)

		f.patientRepo.findByIDFn = func(_ *gorm.DB, id uuid.UUID) (*entity.Patient, error) {
			return existingPatient(patientID, actorID), nil
		}
		_, err = f.usecase.Add(context.Background(), &dto.CreateWaitingListRequest{
			PatientID:     patientID,
			DoctorID:      doctorID,
			PreferredDate: flexDate(t, "2026-09-15"),
		}, actorID)
		assert.ErrorIs(t, err, ErrDoctorNotFound)
	})
}

func TestWaitingListList(t *testing.T) {
	doctorID := uuid.New()

	t.Run("ages stale waiting entries forward to today", func(t *testing.T) {
		f := newWaitingListFixture(t)
		stale := waitingEntry(doctorID, time.Now().AddDate(0, 0, -3), 1)

		f.waitingListRepo.findAllFn = func(_ *gorm.DB) ([]entity.WaitingListEntry, error) {
			return []entity.WaitingListEntry{stale}, nil
		}
		var persisted *entity.WaitingListEntry
		f.waitingListRepo.updateFn = func(_ *gorm.DB, entry *entity.WaitingListEntry) error {
			persisted = entry
			return nil
		}

		resp, err := f.usecase.List(context.Background(), nil)
		require.NoError(t, err)
		require.Equal(t, 1, resp.Total)

		today := time.Now().Format("2006-01-02")
		assert.Equal(t, today, resp.Entries[0].PreferredDate)
		require.NotNil(t, persisted)
		assert.Equal(t, today, persisted.PreferredDate.Format("2006-01-02"))
	})

	t.Run("reflects the aged date even when the write fails", func(t *testing.T) {
		f := newWaitingListFixture(t)
		stale := waitingEntry(doctorID, time.Now().AddDate(0, 0, -3), 1)

		f.waitingListRepo.findAllFn = func(_ *gorm.DB) ([]entity.WaitingListEntry, error) {
			return []entity.WaitingListEntry{stale}, nil
		}
		f.waitingListRepo.updateFn = func(_ *gorm.DB, entry *entity.WaitingListEntry) error {
			return errors.New("connection reset")
		}

		resp, err := f.usecase.List(context.Background(), nil)
		require.NoError(t, err)
		assert.Equal(t, time.Now().Format("2006-01-02"), resp.Entries[0].PreferredDate)
	})

	t.Run("leaves booked entries alone", func(t *testing.T) {
		f := newWaitingListFixture(t)
		booked := waitingEntry(doctorID, time.Now().AddDate(0, 0, -3), 1)
		booked.Status = entity.WaitingListStatusBooked

		f.waitingListRepo.findAllFn = func(_ *gorm.DB) ([]entity.WaitingListEntry, error) {
			return []entity.WaitingListEntry{booked}, nil
		}
		updated := false
		f.waitingListRepo.updateFn = func(_ *gorm.DB, entry *entity.WaitingListEntry) error {
			updated = true
			return nil
		}

		resp, err := f.usecase.List(context.Background(), nil)
		require.NoError(t, err)
		assert.False(t, updated)
		assert.Equal(t, booked.PreferredDate.Format("2006-01-02"), resp.Entries[0].PreferredDate)
	})

	t.Run("filters by doctor and status", func(t *testing.T) {
		f := newWaitingListFixture(t)
		otherDoctor := uuid.New()
		future := time.Now().AddDate(0, 0, 7)
		mine := waitingEntry(doctorID, future, 1)
		cancelled := waitingEntry(doctorID, future, 2)
		cancelled.Status = entity.WaitingListStatusCancelled

		f.waitingListRepo.findAllFn = func(_ *gorm.DB) ([]entity.WaitingListEntry, error) {
			return []entity.WaitingListEntry{mine, cancelled, waitingEntry(otherDoctor, future, 1)}, nil
		}

		resp, err := f.usecase.List(context.Background(), &entity.WaitingListFilter{
			DoctorID: &doctorID,
			Status:   string(entity.WaitingListStatusWaiting),
		})

		require.NoError(t, err)
		require.Equal(t, 1, resp.Total)
		assert.Equal(t, mine.ID, resp.Entries[0].ID)
	})

	t.Run("sorts by preferred day then priority", func(t *testing.T) {
		f := newWaitingListFixture(t)
		early := time.Now().AddDate(0, 0, 3)
		late := time.Now().AddDate(0, 0, 9)

		lateLow := waitingEntry(doctorID, late, 1)
		earlyHigh := waitingEntry(doctorID, early, 7)
		earlyLow := waitingEntry(doctorID, early, 2)

		f.waitingListRepo.findAllFn = func(_ *gorm.DB) ([]entity.WaitingListEntry, error) {
			return []entity.WaitingListEntry{lateLow, earlyHigh, earlyLow}, nil
		}

		resp, err := f.usecase.List(context.Background(), nil)
		require.NoError(t, err)
		require.Equal(t, 3, resp.Total)

		assert.Equal(t, earlyLow.ID, resp.Entries[0].ID)
		assert.Equal(t, earlyHigh.ID, resp.Entries[1].ID)
		assert.Equal(t, lateLow.ID, resp.Entries[2].ID)
	})
}

func TestWaitingListRemove(t *testing.T) {
	actorID := uuid.New()

	t.Run("not found on zero rows", func(t *testing.T) {
		f := newWaitingListFixture(t)
		f.waitingListRepo.deleteFn = func(_ *gorm.DB, id uuid.UUID) (int64, error) {
			return 0, nil
		}

		err := f.usecase.Remove(context.Background(), uuid.New(), actorID)
		assert.ErrorIs(t, err, ErrWaitingEntryNotFound)
	})

	t.Run("audits the removal", func(t *testing.T) {
		f := newWaitingListFixture(t)

		err := f.usecase.Remove(context.Background(), uuid.New(), actorID)
		require.NoError(t, err)
		assert.Contains(t, f.audit.actions, entity.AuditActionWaitingListRemove)
	})
}

func TestBookFromWaitingList(t *testing.T) {
	doctorID := uuid.New()
	actorID := uuid.New()

	bookReq := func(t *testing.T) *dto.BookWaitingListRequest {
		return &dto.BookWaitingListRequest{
			AppointmentDate: flexDate(t, "2026-09-20"),
			AppointmentTime: "11:00",
		}
	}

	setup := func(f *waitingListFixture, entry *entity.WaitingListEntry) {
		f.waitingListRepo.findByIDFn = func(_ *gorm.DB, id uuid.UUID) (*entity.WaitingListEntry, error) {
			if entry != nil && entry.ID == id {
				return entry, nil
			}
			return nil, nil
		}
		f.patientRepo.findByIDFn = func(_ *gorm.DB, id uuid.UUID) (*entity.Patient, error) {
			return existingPatient(entry.PatientID, actorID), nil
		}
		f.doctorRepo.findByIDFn = func(_ *gorm.DB, id uuid.UUID) (*entity.Doctor, error) {
			return existingDoctor(doctorID), nil
		}
	}

	t.Run("books the appointment then deletes the entry", func(t *testing.T) {
		f := newWaitingListFixture(t)
		entry := waitingEntry(doctorID, time.Now().AddDate(0, 0, 5), 1)
		setup(f, &entry)

		var deletedID uuid.UUID
		f.waitingListRepo.deleteFn = func(_ *gorm.DB, id uuid.UUID) (int64, error) {
			deletedID = id
			return 1, nil
		}

		resp, err := f.usecase.BookFromWaitingList(context.Background(), entry.ID, bookReq(t), actorID)
		require.NoError(t, err)
		assert.Equal(t, "2026-09-20", resp.AppointmentDate)
		assert.Equal(t, entry.ID, deletedID)
		assert.Contains(t, f.audit.actions, entity.AuditActionWaitingListPromote)
	})

	t.Run("leaves the entry untouched when the booking fails", func(t *testing.T) {
		f := newWaitingListFixture(t)
		entry := waitingEntry(doctorID, time.Now().AddDate(0, 0, 5), 1)
		setup(f, &entry)

		f.appointmentRepo.findByDoctorIDFn = func(_ *gorm.DB, id uuid.UUID) ([]entity.Appointment, error) {
			return []entity.Appointment{{
				DoctorID:        doctorID,
				AppointmentDate: time.Date(2026, 9, 20, 0, 0, 0, 0, time.UTC),
				AppointmentTime: "11:00",
				Status:          entity.AppointmentStatusScheduled,
			}}, nil
		}
		deleted := false
		f.waitingListRepo.deleteFn = func(_ *gorm.DB, id uuid.UUID) (int64, error) {
			deleted = true
			return 1, nil
		}

		_, err := f.usecase.BookFromWaitingList(context.Background(), entry.ID, bookReq(t), actorID)
		assert.ErrorIs(t, err, ErrSlotUnavailable)
		assert.False(t, deleted)
	})

	t.Run("rejects an entry that is no longer waiting", func(t *testing.T) {
		f := newWaitingListFixture(t)
		entry := waitingEntry(doctorID, time.Now().AddDate(0, 0, 5), 1)
		entry.Status = entity.WaitingListStatusBooked
		setup(f, &entry)

		_, err := f.usecase.BookFromWaitingList(context.Background(), entry.ID, bookReq(t), actorID)
		assert.ErrorIs(t, err, ErrWaitingEntryNotActive)
	})

	t.Run("not found for an unknown entry", func(t *testing.T) {
		f := newWaitingListFixture(t)

		_, err := f.usecase.BookFromWaitingList(context.Background(), uuid.New(), bookReq(t), actorID)
		assert.ErrorIs(t, err, ErrWaitingEntryNotFound)
	})
}
