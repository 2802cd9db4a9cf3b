package usecase

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"go-clinic-management/internal/converter"
	"go-clinic-management/internal/delivery/dto"
	"go-clinic-management/internal/domain/entity"
	"go-clinic-management/internal/domain/repository"
	"go-clinic-management/internal/service"
	"go-clinic-management/pkg/dateparse"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrSlotAlreadyLocked  = errors.New("slot already locked")
	ErrLockedSlotNotFound = errors.New("locked slot not found")
	ErrInvalidLockDate    = errors.New("invalid locked slot date format")
)

type LockedSlotUsecase interface {
	Create(ctx context.Context, req *dto.CreateLockedSlotRequest, actorID uuid.UUID) (*dto.LockedSlotResponse, error)
	Check(ctx context.Context, doctorID uuid.UUID, date time.Time, timeToken string) (*dto.SlotCheckResponse, error)
	ListByDoctor(ctx context.Context, doctorID uuid.UUID) (*dto.LockedSlotListResponse, error)
	ListByDoctorAndDate(ctx context.Context, doctorID uuid.UUID, date time.Time) (*dto.LockedSlotListResponse, error)
	DeleteByID(ctx context.Context, id uuid.UUID, actorID uuid.UUID) error
	// DeleteByDetails removes every lock matching the triple; it reports
	// whether anything matched.
	DeleteByDetails(ctx context.Context, doctorID uuid.UUID, date time.Time, timeToken string, actorID uuid.UUID) (bool, error)
}

type lockedSlotUsecase struct {
	db             *gorm.DB
	log            *logrus.Logger
	lockedSlotRepo repository.LockedSlotRepository
	auditService   service.AuditService
}

func NewLockedSlotUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	lockedSlotRepo repository.LockedSlotRepository,
	auditService service.AuditService,
) LockedSlotUsecase {
	return &lockedSlotUsecase{
		db:             db,
		log:            log,
		lockedSlotRepo: lockedSlotRepo,
		auditService:   auditService,
	}
}

// Create locks a slot after verifying no lock already covers the same
// (doctor, calendar day, time) triple. The uniqueness guarantee rests on this
// pre-create check, not on a storage constraint.
func (u *lockedSlotUsecase) Create(ctx context.Context, req *dto.CreateLockedSlotRequest, actorID uuid.UUID) (*dto.LockedSlotResponse, error) {
	db := u.db.WithContext(ctx)

	if req.Date == nil || req.Date.IsZero() {
		return nil, ErrInvalidLockDate
	}
	date := req.Date.Time

	existing, err := u.lockedSlotRepo.FindByDetails(db, req.DoctorID, dateparse.StartOfDay(date), dateparse.EndOfDay(date), req.Time)
	if err != nil {
		u.log.Warnf("Failed to check existing locked slot: %+v", err)
		return nil, fmt.Errorf("failed to create locked slot: %w", err)
	}
	if existing != nil {
		return nil, ErrSlotAlreadyLocked
	}

	reason := req.Reason
	if reason == "" {
		reason = entity.DefaultLockReason
	}

	slot := &entity.LockedSlot{
		DoctorID:  req.DoctorID,
		Date:      date,
		Time:      req.Time,
		Reason:    reason,
		CreatedBy: actorID,
	}

	if err := u.lockedSlotRepo.Create(db, slot); err != nil {
		u.log.Warnf("Failed to create locked slot: %+v", err)
		return nil, fmt.Errorf("failed to create locked slot: %w", err)
	}

	u.auditService.Record(db, &actorID, entity.AuditActionSlotLock, "locked_slot", slot.ID.String(), entity.JSON{
		"doctor_id": slot.DoctorID.String(),
		"date":      dateparse.DayString(slot.Date),
		"time":      slot.Time,
	})

	u.log.Infof("Slot locked: doctor=%s, date=%s, time=%s", slot.DoctorID, dateparse.DayString(slot.Date), slot.Time)
	return converter.LockedSlotToResponse(slot), nil
}

func (u *lockedSlotUsecase) Check(ctx context.Context, doctorID uuid.UUID, date time.Time, timeToken string) (*dto.SlotCheckResponse, error) {
	slot, err := u.lockedSlotRepo.FindByDetails(u.db.WithContext(ctx), doctorID, dateparse.StartOfDay(date), dateparse.EndOfDay(date), timeToken)
	if err != nil {
		u.log.Warnf("Failed to check locked slot: %+v", err)
		return nil, fmt.Errorf("failed to check locked slot: %w", err)
	}

	return &dto.SlotCheckResponse{
		Locked: slot != nil,
		Slot:   converter.LockedSlotToResponse(slot),
	}, nil
}

// ListByDoctor returns every lock for the doctor, newest date first. Ordering
// happens in memory over the full per-doctor set.
func (u *lockedSlotUsecase) ListByDoctor(ctx context.Context, doctorID uuid.UUID) (*dto.LockedSlotListResponse, error) {
	slots, err := u.lockedSlotRepo.FindByDoctorID(u.db.WithContext(ctx), doctorID)
	if err != nil {
		u.log.Warnf("Failed to list locked slots for doctor %s: %+v", doctorID, err)
		return nil, fmt.Errorf("failed to list locked slots: %w", err)
	}

	sort.SliceStable(slots, func(i, j int) bool {
		return slots[i].Date.After(slots[j].Date)
	})

	return &dto.LockedSlotListResponse{
		LockedSlots: converter.LockedSlotsToResponses(slots),
		Total:       len(slots),
	}, nil
}

func (u *lockedSlotUsecase) ListByDoctorAndDate(ctx context.Context, doctorID uuid.UUID, date time.Time) (*dto.LockedSlotListResponse, error) {
	slots, err := u.lockedSlotRepo.FindByDoctorAndDay(u.db.WithContext(ctx), doctorID, dateparse.StartOfDay(date), dateparse.EndOfDay(date))
	if err != nil {
		u.log.Warnf("Failed to list locked slots for doctor %s: %+v", doctorID, err)
		return nil, fmt.Errorf("failed to list locked slots: %w", err)
	}

	return &dto.LockedSlotListResponse{
		LockedSlots: converter.LockedSlotsToResponses(slots),
		Total:       len(slots),
	}, nil
}

func (u *lockedSlotUsecase) DeleteByID(ctx context.Context, id uuid.UUID, actorID uuid.UUID) error {
	db := u.db.WithContext(ctx)

	affected, err := u.lockedSlotRepo.DeleteByID(db, id)
	if err != nil {
		u.log.Warnf("Failed to delete locked slot %s: %+v", id, err)
		return fmt.Errorf("failed to delete locked slot: %w", err)
	}
	if affected == 0 {
		return ErrLockedSlotNotFound
	}

	u.auditService.Record(db, &actorID, entity.AuditActionSlotUnlock, "locked_slot", id.String(), nil)
	return nil
}

func (u *lockedSlotUsecase) DeleteByDetails(ctx context.Context, doctorID uuid.UUID, date time.Time, timeToken string, actorID uuid.UUID) (bool, error) {
	db := u.db.WithContext(ctx)

	affected, err := u.lockedSlotRepo.DeleteByDetails(db, doctorID, dateparse.StartOfDay(date), dateparse.EndOfDay(date), timeToken)
	if err != nil {
		u.log.Warnf("Failed to delete locked slot by details: %+v", err)
		return false, fmt.Errorf("failed to delete locked slot: %w", err)
	}
	if affected == 0 {
		return false, nil
	}

	u.auditService.Record(db, &actorID, entity.AuditActionSlotUnlock, "locked_slot", doctorID.String(), entity.JSON{
		"date": dateparse.DayString(date),
		"time": timeToken,
	})
	return true, nil
}
