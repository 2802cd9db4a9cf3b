package service

import (
	"fmt"
	"time"

	"go-clinic-management/internal/domain/repository"
	"go-clinic-management/pkg/dateparse"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// SlotLedger answers "is doctor D free at date/time T?". A slot is taken when
// an appointment with status scheduled or completed occupies the same calendar
// day and time token, or when an admin lock covers the slot.
//
// The appointment check deliberately fetches the doctor's full appointment set
// and filters in memory: it keeps the store free of composite indexes at the
// cost of O(n) work per check, which is acceptable at clinic volume.
type SlotLedger struct {
	log             *logrus.Logger
	appointmentRepo repository.AppointmentRepository
	lockedSlotRepo  repository.LockedSlotRepository
}

func NewSlotLedger(
	log *logrus.Logger,
	appointmentRepo repository.AppointmentRepository,
	lockedSlotRepo repository.LockedSlotRepository,
) *SlotLedger {
	return &SlotLedger{
		log:             log,
		appointmentRepo: appointmentRepo,
		lockedSlotRepo:  lockedSlotRepo,
	}
}

// IsAvailable checks both existing appointments and locked slots for the
// (doctor, calendar day, time) triple.
func (s *SlotLedger) IsAvailable(db *gorm.DB, doctorID uuid.UUID, date time.Time, timeToken string) (bool, error) {
	appointments, err := s.appointmentRepo.FindByDoctorID(db, doctorID)
	if err != nil {
		return false, fmt.Errorf("failed to check slot availability: %w", err)
	}

	for i := range appointments {
		appointment := &appointments[i]
		// Records with an unusable stored date are treated as non-conflicting.
		if appointment.AppointmentDate.IsZero() {
			continue
		}
		if !dateparse.SameDay(appointment.AppointmentDate, date) {
			continue
		}
		if appointment.AppointmentTime == timeToken && appointment.BlocksSlot() {
			return false, nil
		}
	}

	lock, err := s.lockedSlotRepo.FindByDetails(db, doctorID, dateparse.StartOfDay(date), dateparse.EndOfDay(date), timeToken)
	if err != nil {
		return false, fmt.Errorf("failed to check locked slots: %w", err)
	}
	if lock != nil {
		return false, nil
	}

	return true, nil
}
