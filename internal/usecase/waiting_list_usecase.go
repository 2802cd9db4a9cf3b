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
	ErrWaitingEntryNotFound  = errors.New("waiting list entry not found")
	ErrWaitingEntryNotActive = errors.New("waiting list entry is no longer active")
	ErrInvalidPreferredDate  = errors.New("invalid preferred date format")
)

type WaitingListUsecase interface {
	Add(ctx context.Context, req *dto.CreateWaitingListRequest, actorID uuid.UUID) (*dto.WaitingListEntryResponse, error)
	// List ages stale waiting entries forward to today before filtering; the
	// aging write is best-effort and never aborts the read.
	List(ctx context.Context, filter *entity.WaitingListFilter) (*dto.WaitingListResponse, error)
	Get(ctx context.Context, id uuid.UUID) (*dto.WaitingListEntryResponse, error)
	Update(ctx context.Context, id uuid.UUID, req *dto.UpdateWaitingListRequest) (*dto.WaitingListEntryResponse, error)
	Remove(ctx context.Context, id uuid.UUID, actorID uuid.UUID) error
	// BookFromWaitingList promotes a waiting entry into a confirmed
	// appointment and deletes the entry only after the booking succeeds.
	BookFromWaitingList(ctx context.Context, id uuid.UUID, req *dto.BookWaitingListRequest, actorID uuid.UUID) (*dto.AppointmentResponse, error)
}

type waitingListUsecase struct {
	db                 *gorm.DB
	log                *logrus.Logger
	waitingListRepo    repository.WaitingListRepository
	patientRepo        repository.PatientRepository
	doctorRepo         repository.DoctorRepository
	appointmentUsecase AppointmentUsecase
	auditService       service.AuditService
}

func NewWaitingListUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	waitingListRepo repository.WaitingListRepository,
	patientRepo repository.PatientRepository,
	doctorRepo repository.DoctorRepository,
	appointmentUsecase AppointmentUsecase,
	auditService service.AuditService,
) WaitingListUsecase {
	return &waitingListUsecase{
		db:                 db,
		log:                log,
		waitingListRepo:    waitingListRepo,
		patientRepo:        patientRepo,
		doctorRepo:         doctorRepo,
		appointmentUsecase: appointmentUsecase,
		auditService:       auditService,
	}
}

func (u *waitingListUsecase) Add(ctx context.Context, req *dto.CreateWaitingListRequest, actorID uuid.UUID) (*dto.WaitingListEntryResponse, error) {
	db := u.db.WithContext(ctx)

	if req.PreferredDate == nil || req.PreferredDate.IsZero() {
		return nil, ErrInvalidPreferredDate
	}

	patient, err := u.patientRepo.FindByID(db, req.PatientID)
	if err != nil {
		u.log.Warnf("Failed to find patient %s: %+v", req.PatientID, err)
		return nil, fmt.Errorf("failed to add waiting list entry: %w", err)
	}
	if patient == nil {
		return nil, ErrPatientNotFound
	}

	doctor, err := u.doctorRepo.FindByID(db, req.DoctorID)
	if err != nil {
		u.log.Warnf("Failed to find doctor %s: %+v", req.DoctorID, err)
		return nil, fmt.Errorf("failed to add waiting list entry: %w", err)
	}
	if doctor == nil {
		return nil, ErrDoctorNotFound
	}

	priority, err := u.resolvePriority(db, req.DoctorID, req.Priority)
	if err != nil {
		return nil, fmt.Errorf("failed to add waiting list entry: %w", err)
	}

	entry := &entity.WaitingListEntry{
		PatientID:     patient.ID,
		PatientName:   patient.FullName,
		DoctorID:      doctor.ID,
		DoctorName:    doctor.FullName,
		ServiceType:   req.ServiceType,
		PreferredDate: req.PreferredDate.Time,
		Status:        entity.WaitingListStatusWaiting,
		Priority:      priority,
		Notes:         req.Notes,
		CreatedBy:     actorID,
	}

	if err := u.waitingListRepo.Create(db, entry); err != nil {
		u.log.Warnf("Failed to create waiting list entry: %+v", err)
		return nil, fmt.Errorf("failed to add waiting list entry: %w", err)
	}

	u.auditService.Record(db, &actorID, entity.AuditActionWaitingListAdd, "waiting_list_entry", entry.ID.String(), entity.JSON{
		"doctor_id": entry.DoctorID.String(),
		"priority":  entry.Priority,
	})

	return converter.WaitingListEntryToResponse(entry), nil
}

// resolvePriority returns the caller's explicit priority when supplied, else
// max(priority over the doctor's waiting entries) + 1 so new entries join the
// back of the queue.
func (u *waitingListUsecase) resolvePriority(db *gorm.DB, doctorID uuid.UUID, explicit *int) (int, error) {
	if explicit != nil {
		return *explicit, nil
	}

	waiting, err := u.waitingListRepo.FindWaitingByDoctorID(db, doctorID)
	if err != nil {
		u.log.Warnf("Failed to compute waiting list priority for doctor %s: %+v", doctorID, err)
		return 0, err
	}

	maxPriority := 0
	for i := range waiting {
		if waiting[i].Priority > maxPriority {
			maxPriority = waiting[i].Priority
		}
	}
	return maxPriority + 1, nil
}

func (u *waitingListUsecase) List(ctx context.Context, filter *entity.WaitingListFilter) (*dto.WaitingListResponse, error) {
	db := u.db.WithContext(ctx)

	entries, err := u.waitingListRepo.FindAll(db)
	if err != nil {
		u.log.Warnf("Failed to list waiting list entries: %+v", err)
		return nil, fmt.Errorf("failed to list waiting list entries: %w", err)
	}

	today := dateparse.StartOfDay(time.Now())

	// Aging pass: a waiting entry whose preferred day has slipped into the
	// past is advanced to today. The write is best-effort; the advanced date
	// is reflected in the response either way.
	for i := range entries {
		entry := &entries[i]
		if entry.Status != entity.WaitingListStatusWaiting {
			continue
		}
		if dateparse.StartOfDay(entry.PreferredDate).Before(today) {
			entry.PreferredDate = today
			if err := u.waitingListRepo.Update(db, entry); err != nil {
				u.log.Warnf("Failed to age waiting list entry %s forward: %+v", entry.ID, err)
			}
		}
	}

	filtered := entries[:0]
	for i := range entries {
		entry := entries[i]
		if filter != nil {
			if filter.DoctorID != nil && entry.DoctorID != *filter.DoctorID {
				continue
			}
			if filter.PatientID != nil && entry.PatientID != *filter.PatientID {
				continue
			}
			if filter.Status != "" && string(entry.Status) != filter.Status {
				continue
			}
			if filter.Date != nil && !dateparse.SameDay(entry.PreferredDate, *filter.Date) {
				continue
			}
		}
		filtered = append(filtered, entry)
	}

	sort.SliceStable(filtered, func(i, j int) bool {
		di, dj := dateparse.StartOfDay(filtered[i].PreferredDate), dateparse.StartOfDay(filtered[j].PreferredDate)
		if !di.Equal(dj) {
			return di.Before(dj)
		}
		return filtered[i].Priority < filtered[j].Priority
	})

	return &dto.WaitingListResponse{
		Entries: converter.WaitingListEntriesToResponses(filtered),
		Total:   len(filtered),
	}, nil
}

func (u *waitingListUsecase) Get(ctx context.Context, id uuid.UUID) (*dto.WaitingListEntryResponse, error) {
	entry, err := u.waitingListRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find waiting list entry %s: %+v", id, err)
		return nil, fmt.Errorf("failed to get waiting list entry: %w", err)
	}
	if entry == nil {
		return nil, ErrWaitingEntryNotFound
	}
	return converter.WaitingListEntryToResponse(entry), nil
}

func (u *waitingListUsecase) Update(ctx context.Context, id uuid.UUID, req *dto.UpdateWaitingListRequest) (*dto.WaitingListEntryResponse, error) {
	db := u.db.WithContext(ctx)

	entry, err := u.waitingListRepo.FindByID(db, id)
	if err != nil {
		u.log.Warnf("Failed to find waiting list entry %s: %+v", id, err)
		return nil, fmt.Errorf("failed to update waiting list entry: %w", err)
	}
	if entry == nil {
		return nil, ErrWaitingEntryNotFound
	}

	if req.ServiceType != nil {
		entry.ServiceType = *req.ServiceType
	}
	if req.PreferredDate != nil {
		if req.PreferredDate.IsZero() {
			return nil, ErrInvalidPreferredDate
		}
		entry.PreferredDate = req.PreferredDate.Time
	}
	if req.Status != nil {
		entry.Status = entity.WaitingListStatus(*req.Status)
	}
	if req.Priority != nil {
		entry.Priority = *req.Priority
	}
	if req.Notes != nil {
		entry.Notes = *req.Notes
	}

	if err := u.waitingListRepo.Update(db, entry); err != nil {
		u.log.Warnf("Failed to update waiting list entry %s: %+v", id, err)
		return nil, fmt.Errorf("failed to update waiting list entry: %w", err)
	}

	return converter.WaitingListEntryToResponse(entry), nil
}

func (u *waitingListUsecase) Remove(ctx context.Context, id uuid.UUID, actorID uuid.UUID) error {
	db := u.db.WithContext(ctx)

	affected, err := u.waitingListRepo.Delete(db, id)
	if err != nil {
		u.log.Warnf("Failed to delete waiting list entry %s: %+v", id, err)
		return fmt.Errorf("failed to delete waiting list entry: %w", err)
	}
	if affected == 0 {
		return ErrWaitingEntryNotFound
	}

	u.auditService.Record(db, &actorID, entity.AuditActionWaitingListRemove, "waiting_list_entry", id.String(), nil)
	return nil
}

func (u *waitingListUsecase) BookFromWaitingList(ctx context.Context, id uuid.UUID, req *dto.BookWaitingListRequest, actorID uuid.UUID) (*dto.AppointmentResponse, error) {
	db := u.db.WithContext(ctx)

	entry, err := u.waitingListRepo.FindByID(db, id)
	if err != nil {
		u.log.Warnf("Failed to find waiting list entry %s: %+v", id, err)
		return nil, fmt.Errorf("failed to book from waiting list: %w", err)
	}
	if entry == nil {
		return nil, ErrWaitingEntryNotFound
	}
	if !entry.IsWaiting() {
		return nil, ErrWaitingEntryNotActive
	}

	createReq := &dto.CreateAppointmentRequest{
		PatientID:       entry.PatientID,
		DoctorID:        entry.DoctorID,
		AppointmentDate: req.AppointmentDate,
		AppointmentTime: req.AppointmentTime,
		ServiceType:     entry.ServiceType,
		Duration:        entity.DefaultAppointmentDuration,
		Notes:           entry.Notes,
	}

	// The promotion books as admin on the entry's behalf. When the nested
	// create fails (slot conflict, vanished patient) the entry is left
	// untouched so the caller can retry with another slot.
	appointment, err := u.appointmentUsecase.Create(ctx, createReq, actorID, entity.RoleIDAdmin)
	if err != nil {
		return nil, err
	}

	if _, err := u.waitingListRepo.Delete(db, entry.ID); err != nil {
		u.log.Errorf("Failed to delete waiting list entry %s after booking appointment %s: %+v", entry.ID, appointment.ID, err)
		return nil, fmt.Errorf("failed to book from waiting list: %w", err)
	}

	u.auditService.Record(db, &actorID, entity.AuditActionWaitingListPromote, "waiting_list_entry", entry.ID.String(), entity.JSON{
		"appointment_id": appointment.ID.String(),
	})

	u.log.Infof("Waiting list entry promoted: entry=%s, appointment=%s", entry.ID, appointment.ID)
	return appointment, nil
}
