package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go-clinic-management/internal/converter"
	"go-clinic-management/internal/delivery/dto"
	"go-clinic-management/internal/domain/entity"
	"go-clinic-management/internal/domain/repository"
	"go-clinic-management/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrPatientNotFound        = errors.New("patient not found")
	ErrDoctorNotFound         = errors.New("doctor not found")
	ErrAppointmentNotFound    = errors.New("appointment not found")
	ErrSlotUnavailable        = errors.New("slot no longer available")
	ErrInvalidAppointmentDate = errors.New("invalid appointment date format")
	ErrBookingNotAllowed      = errors.New("cannot book on behalf of this patient")
)

type AppointmentUsecase interface {
	// Create books a slot on behalf of an explicit patient. Non-admin actors
	// may only book for patient records they themselves created.
	Create(ctx context.Context, req *dto.CreateAppointmentRequest, actorID uuid.UUID, actorRoleID int) (*dto.AppointmentResponse, error)
	// BookSelf is the self-service path: the patient record is resolved from
	// the caller's identity and provisioned when missing.
	BookSelf(ctx context.Context, req *dto.BookAppointmentRequest, actorID uuid.UUID, actorEmail, actorName string) (*dto.AppointmentResponse, error)
	Get(ctx context.Context, id uuid.UUID) (*dto.AppointmentResponse, error)
	Update(ctx context.Context, id uuid.UUID, req *dto.UpdateAppointmentRequest, actorID uuid.UUID) (*dto.AppointmentResponse, error)
	Delete(ctx context.Context, id uuid.UUID, actorID uuid.UUID) error
	ListToday(ctx context.Context, doctorID *uuid.UUID) (*dto.AppointmentListResponse, error)
	List(ctx context.Context, filter *entity.AppointmentFilter) (*dto.AppointmentListResponse, error)
}

type appointmentUsecase struct {
	db              *gorm.DB
	log             *logrus.Logger
	appointmentRepo repository.AppointmentRepository
	patientRepo     repository.PatientRepository
	doctorRepo      repository.DoctorRepository
	slotLedger      *service.SlotLedger
	auditService    service.AuditService
}

func NewAppointmentUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	appointmentRepo repository.AppointmentRepository,
	patientRepo repository.PatientRepository,
	doctorRepo repository.DoctorRepository,
	slotLedger *service.SlotLedger,
	auditService service.AuditService,
) AppointmentUsecase {
	return &appointmentUsecase{
		db:              db,
		log:             log,
		appointmentRepo: appointmentRepo,
		patientRepo:     patientRepo,
		doctorRepo:      doctorRepo,
		slotLedger:      slotLedger,
		auditService:    auditService,
	}
}

func (u *appointmentUsecase) Create(ctx context.Context, req *dto.CreateAppointmentRequest, actorID uuid.UUID, actorRoleID int) (*dto.AppointmentResponse, error) {
	db := u.db.WithContext(ctx)

	if req.AppointmentDate == nil || req.AppointmentDate.IsZero() {
		return nil, ErrInvalidAppointmentDate
	}
	appointmentDate := req.AppointmentDate.Time

	patient, err := u.patientRepo.FindByID(db, req.PatientID)
	if err != nil {
		u.log.Warnf("Failed to find patient %s: %+v", req.PatientID, err)
		return nil, fmt.Errorf("failed to create appointment: %w", err)
	}
	if patient == nil {
		return nil, ErrPatientNotFound
	}

	doctor, err := u.doctorRepo.FindByID(db, req.DoctorID)
	if err != nil {
		u.log.Warnf("Failed to find doctor %s: %+v", req.DoctorID, err)
		return nil, fmt.Errorf("failed to create appointment: %w", err)
	}
	if doctor == nil {
		return nil, ErrDoctorNotFound
	}

	// Self-service booking is scoped to patient records the actor provisioned.
	if actorRoleID != entity.RoleIDAdmin && patient.CreatedBy != actorID {
		return nil, ErrBookingNotAllowed
	}

	if req.AppointmentTime != "" {
		available, err := u.slotLedger.IsAvailable(db, req.DoctorID, appointmentDate, req.AppointmentTime)
		if err != nil {
			u.log.Warnf("Failed slot availability check for doctor %s: %+v", req.DoctorID, err)
			return nil, fmt.Errorf("failed to create appointment: %w", err)
		}
		if !available {
			return nil, ErrSlotUnavailable
		}
	}

	duration := req.Duration
	if duration == 0 {
		duration = entity.DefaultAppointmentDuration
	}

	appointment := &entity.Appointment{
		PatientID:       patient.ID,
		PatientName:     patient.FullName,
		DoctorID:        doctor.ID,
		DoctorName:      doctor.FullName,
		AppointmentDate: appointmentDate,
		AppointmentTime: req.AppointmentTime,
		ServiceType:     req.ServiceType,
		Duration:        duration,
		Status:          entity.AppointmentStatusScheduled,
		Notes:           req.Notes,
		CreatedBy:       actorID,
	}

	if err := u.appointmentRepo.Create(db, appointment); err != nil {
		u.log.Warnf("Failed to create appointment: %+v", err)
		return nil, fmt.Errorf("failed to create appointment: %w", err)
	}

	u.auditService.Record(db, &actorID, entity.AuditActionAppointmentCreate, "appointment", appointment.ID.String(), entity.JSON{
		"doctor_id": appointment.DoctorID.String(),
		"date":      appointment.AppointmentDate,
		"time":      appointment.AppointmentTime,
	})

	u.log.Infof("Appointment created: id=%s, doctor=%s, time=%s", appointment.ID, appointment.DoctorID, appointment.AppointmentTime)
	return converter.AppointmentToResponse(appointment), nil
}

func (u *appointmentUsecase) BookSelf(ctx context.Context, req *dto.BookAppointmentRequest, actorID uuid.UUID, actorEmail, actorName string) (*dto.AppointmentResponse, error) {
	db := u.db.WithContext(ctx)

	patient, err := u.patientRepo.FindByUserID(db, actorID)
	if err != nil {
		u.log.Warnf("Failed to find patient for user %s: %+v", actorID, err)
		return nil, fmt.Errorf("failed to create appointment: %w", err)
	}

	if patient == nil {
		patient = &entity.Patient{
			UserID:    &actorID,
			FullName:  actorName,
			Email:     actorEmail,
			CreatedBy: actorID,
		}
		if err := u.patientRepo.Create(db, patient); err != nil {
			u.log.Warnf("Failed to provision patient for user %s: %+v", actorID, err)
			return nil, fmt.Errorf("failed to create appointment: %w", err)
		}
	}

	createReq := &dto.CreateAppointmentRequest{
		PatientID:       patient.ID,
		DoctorID:        req.DoctorID,
		AppointmentDate: req.AppointmentDate,
		AppointmentTime: req.AppointmentTime,
		ServiceType:     req.ServiceType,
		Duration:        req.Duration,
		Notes:           req.Notes,
	}

	return u.Create(ctx, createReq, actorID, entity.RoleIDPatient)
}

func (u *appointmentUsecase) Get(ctx context.Context, id uuid.UUID) (*dto.AppointmentResponse, error) {
	appointment, err := u.appointmentRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find appointment %s: %+v", id, err)
		return nil, fmt.Errorf("failed to get appointment: %w", err)
	}
	if appointment == nil {
		return nil, ErrAppointmentNotFound
	}
	return converter.AppointmentToResponse(appointment), nil
}

// Update merges patch fields into the appointment. Date and time changes are
// renormalized but availability is not re-checked; that matches the booking
// flow admins use to correct records.
func (u *appointmentUsecase) Update(ctx context.Context, id uuid.UUID, req *dto.UpdateAppointmentRequest, actorID uuid.UUID) (*dto.AppointmentResponse, error) {
	db := u.db.WithContext(ctx)

	appointment, err := u.appointmentRepo.FindByID(db, id)
	if err != nil {
		u.log.Warnf("Failed to find appointment %s: %+v", id, err)
		return nil, fmt.Errorf("failed to update appointment: %w", err)
	}
	if appointment == nil {
		return nil, ErrAppointmentNotFound
	}

	if req.AppointmentDate != nil {
		if req.AppointmentDate.IsZero() {
			return nil, ErrInvalidAppointmentDate
		}
		appointment.AppointmentDate = req.AppointmentDate.Time
	}
	if req.AppointmentTime != nil {
		appointment.AppointmentTime = *req.AppointmentTime
	}
	if req.ServiceType != nil {
		appointment.ServiceType = *req.ServiceType
	}
	if req.Duration != nil {
		appointment.Duration = *req.Duration
	}
	if req.Status != nil {
		appointment.Status = entity.AppointmentStatus(*req.Status)
	}
	if req.Notes != nil {
		appointment.Notes = *req.Notes
	}

	if err := u.appointmentRepo.Update(db, appointment); err != nil {
		u.log.Warnf("Failed to update appointment %s: %+v", id, err)
		return nil, fmt.Errorf("failed to update appointment: %w", err)
	}

	updated, err := u.appointmentRepo.FindByID(db, id)
	if err != nil {
		u.log.Warnf("Failed to reload appointment %s: %+v", id, err)
		return nil, fmt.Errorf("failed to update appointment: %w", err)
	}
	if updated == nil {
		return nil, ErrAppointmentNotFound
	}

	u.auditService.Record(db, &actorID, entity.AuditActionAppointmentUpdate, "appointment", id.String(), entity.JSON{
		"status": string(updated.Status),
	})

	return converter.AppointmentToResponse(updated), nil
}

func (u *appointmentUsecase) Delete(ctx context.Context, id uuid.UUID, actorID uuid.UUID) error {
	db := u.db.WithContext(ctx)

	affected, err := u.appointmentRepo.Delete(db, id)
	if err != nil {
		u.log.Warnf("Failed to delete appointment %s: %+v", id, err)
		return fmt.Errorf("failed to delete appointment: %w", err)
	}
	if affected == 0 {
		return ErrAppointmentNotFound
	}

	u.auditService.Record(db, &actorID, entity.AuditActionAppointmentDelete, "appointment", id.String(), nil)

	u.log.Infof("Appointment deleted: id=%s", id)
	return nil
}

// ListToday returns appointments in the half-open [start-of-day, next-day)
// interval of the current local calendar day.
func (u *appointmentUsecase) ListToday(ctx context.Context, doctorID *uuid.UUID) (*dto.AppointmentListResponse, error) {
	now := time.Now()
	start := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	end := start.AddDate(0, 0, 1)

	appointments, err := u.appointmentRepo.FindInRange(u.db.WithContext(ctx), start, end, doctorID)
	if err != nil {
		u.log.Warnf("Failed to list today's appointments: %+v", err)
		return nil, fmt.Errorf("failed to list appointments: %w", err)
	}

	return &dto.AppointmentListResponse{
		Appointments: converter.AppointmentsToResponses(appointments),
		Total:        len(appointments),
	}, nil
}

func (u *appointmentUsecase) List(ctx context.Context, filter *entity.AppointmentFilter) (*dto.AppointmentListResponse, error) {
	appointments, err := u.appointmentRepo.FindFiltered(u.db.WithContext(ctx), filter)
	if err != nil {
		u.log.Warnf("Failed to list appointments: %+v", err)
		return nil, fmt.Errorf("failed to list appointments: %w", err)
	}

	return &dto.AppointmentListResponse{
		Appointments: converter.AppointmentsToResponses(appointments),
		Total:        len(appointments),
	}, nil
}
