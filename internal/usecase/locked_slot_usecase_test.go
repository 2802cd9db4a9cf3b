package usecase

import (
	"context"
	"testing"
	"time"

	"go-clinic-management/internal/delivery/dto"
	"go-clinic-management/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type lockedSlotFixture struct {
	usecase LockedSlotUsecase
	repo    *mockLockedSlotRepo
	audit   *mockAuditService
}

func newLockedSlotFixture(t *testing.T) *lockedSlotFixture {
	t.Helper()

	f := &lockedSlotFixture{
		repo:  &mockLockedSlotRepo{},
		audit: &mockAuditService{},
	}
	f.usecase = NewLockedSlotUsecase(newTestDB(t), newTestLogger(), f.repo, f.audit)
	return f
}

func TestLockedSlotCreate(t *testing.T) {
	doctorID := uuid.New()
	actorID := uuid.New()

	t.Run("locks a free slot and defaults the reason", func(t *testing.T) {
		f := newLockedSlotFixture(t)

		var created *entity.LockedSlot
		f.repo.createFn = func(_ *gorm.DB, slot *entity.LockedSlot) error {
			slot.ID = uuid.New()
			created = slot
			return nil
		}

		resp, err := f.usecase.Create(context.Background(), &dto.CreateLockedSlotRequest{
			DoctorID: doctorID,
			Date:     flexDate(t, "2026-09-12"),
			Time:     "14:00",
		}, actorID)

		require.NoError(t, err)
		require.NotNil(t, created)
		assert.Equal(t, entity.DefaultLockReason, created.Reason)
		assert.Equal(t, actorID, created.CreatedBy)
		assert.Equal(t, "2026-09-12", resp.Date)
		assert.Contains(t, f.audit.actions, entity.AuditActionSlotLock)
	})

	t.Run("keeps an explicit reason", func(t *testing.T) {
		f := newLockedSlotFixture(t)

		var created *entity.LockedSlot
		f.repo.createFn = func(_ *gorm.DB, slot *entity.LockedSlot) error {
			created = slot
			return nil
		}

		_, err := f.usecase.Create(context.Background(), &dto.CreateLockedSlotRequest{
			DoctorID: doctorID,
			Date:     flexDate(t, "2026-09-12"),
			Time:     "14:00",
			Reason:   "Surgery block",
		}, actorID)

		require.NoError(t, err)
		assert.Equal(t, "Surgery block", created.Reason)
	})

	t.Run("conflicts when the slot is already locked", func(t *testing.T) {
		f := newLockedSlotFixture(t)
		f.repo.findByDetailsFn = func(_ *gorm.DB, id uuid.UUID, dayStart, dayEnd time.Time, timeToken string) (*entity.LockedSlot, error) {
			return &entity.LockedSlot{ID: uuid.New(), DoctorID: id, Time: timeToken}, nil
		}

		_, err := f.usecase.Create(context.Background(), &dto.CreateLockedSlotRequest{
			DoctorID: doctorID,
			Date:     flexDate(t, "2026-09-12"),
			Time:     "14:00",
		}, actorID)

		assert.ErrorIs(t, err, ErrSlotAlreadyLocked)
	})

	t.Run("rejects a missing date", func(t *testing.T) {
		f := newLockedSlotFixture(t)

		_, err := f.usecase.Create(context.Background(), &dto.CreateLockedSlotRequest{
			DoctorID: doctorID,
			Time:     "14:00",
		}, actorID)

		assert.ErrorIs(t, err, ErrInvalidLockDate)
	})
}

func TestLockedSlotCheck(t *testing.T) {
	doctorID := uuid.New()
	day := time.Date(2026, 9, 12, 0, 0, 0, 0, time.UTC)

	t.Run("reports a locked slot with its detail", func(t *testing.T) {
		f := newLockedSlotFixture(t)
		f.repo.findByDetailsFn = func(_ *gorm.DB, id uuid.UUID, dayStart, dayEnd time.Time, timeToken string) (*entity.LockedSlot, error) {
			return &entity.LockedSlot{ID: uuid.New(), DoctorID: id, Date: day, Time: timeToken, Reason: "Holiday"}, nil
		}

		resp, err := f.usecase.Check(context.Background(), doctorID, day, "09:00")
		require.NoError(t, err)
		assert.True(t, resp.Locked)
		require.NotNil(t, resp.Slot)
		assert.Equal(t, "Holiday", resp.Slot.Reason)
	})

	t.Run("reports an open slot", func(t *testing.T) {
		f := newLockedSlotFixture(t)

		resp, err := f.usecase.Check(context.Background(), doctorID, day, "09:00")
		require.NoError(t, err)
		assert.False(t, resp.Locked)
		assert.Nil(t, resp.Slot)
	})
}

func TestLockedSlotListByDoctor(t *testing.T) {
	doctorID := uuid.New()

	f := newLockedSlotFixture(t)
	f.repo.findByDoctorIDFn = func(_ *gorm.DB, id uuid.UUID) ([]entity.LockedSlot, error) {
		return []entity.LockedSlot{
			{DoctorID: id, Date: time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC), Time: "09:00"},
			{DoctorID: id, Date: time.Date(2026, 9, 14, 0, 0, 0, 0, time.UTC), Time: "09:00"},
			{DoctorID: id, Date: time.Date(2026, 9, 12, 0, 0, 0, 0, time.UTC), Time: "09:00"},
		}, nil
	}

	resp, err := f.usecase.ListByDoctor(context.Background(), doctorID)
	require.NoError(t, err)
	require.Equal(t, 3, resp.Total)

	assert.Equal(t, "2026-09-14", resp.LockedSlots[0].Date)
	assert.Equal(t, "2026-09-12", resp.LockedSlots[1].Date)
	assert.Equal(t, "2026-09-10", resp.LockedSlots[2].Date)
}

func TestLockedSlotDelete(t *testing.T) {
	actorID := uuid.New()

	t.Run("delete by id reports not found on zero rows", func(t *testing.T) {
		f := newLockedSlotFixture(t)
		f.repo.deleteByIDFn = func(_ *gorm.DB, id uuid.UUID) (int64, error) {
			return 0, nil
		}

		err := f.usecase.DeleteByID(context.Background(), uuid.New(), actorID)
		assert.ErrorIs(t, err, ErrLockedSlotNotFound)
	})

	t.Run("delete by id audits the unlock", func(t *testing.T) {
		f := newLockedSlotFixture(t)

		err := f.usecase.DeleteByID(context.Background(), uuid.New(), actorID)
		require.NoError(t, err)
		assert.Contains(t, f.audit.actions, entity.AuditActionSlotUnlock)
	})

	t.Run("delete by details reports whether anything matched", func(t *testing.T) {
		f := newLockedSlotFixture(t)
		day := time.Date(2026, 9, 12, 0, 0, 0, 0, time.UTC)

		matched, err := f.usecase.DeleteByDetails(context.Background(), uuid.New(), day, "14:00", actorID)
		require.NoError(t, err)
		assert.True(t, matched)

		f.repo.deleteByDetailsFn = func(_ *gorm.DB, doctorID uuid.UUID, dayStart, dayEnd time.Time, timeToken string) (int64, error) {
			return 0, nil
		}

		matched, err = f.usecase.DeleteByDetails(context.Background(), uuid.New(), day, "14:00", actorID)
		require.NoError(t, err)
		assert.False(t, matched)
	})
}
