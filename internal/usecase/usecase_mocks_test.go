package usecase

import (
	"testing"
	"time"

	"go-clinic-management/internal/domain/entity"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB returns a gorm handle backed by sqlmock. The usecases only thread
// the handle through to repositories, so no SQL expectations are needed here.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	sqlDB, _, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		Logger: logger.Discard,
	})
	require.NoError(t, err)

	return db
}

func newTestLogger() *logrus.Logger {
	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)
	return log
}

type mockAppointmentRepo struct {
	createFn         func(db *gorm.DB, appointment *entity.Appointment) error
	findByIDFn       func(db *gorm.DB, id uuid.UUID) (*entity.Appointment, error)
	findByDoctorIDFn func(db *gorm.DB, doctorID uuid.UUID) ([]entity.Appointment, error)
	findInRangeFn    func(db *gorm.DB, start, end time.Time, doctorID *uuid.UUID) ([]entity.Appointment, error)
	findFilteredFn   func(db *gorm.DB, filter *entity.AppointmentFilter) ([]entity.Appointment, error)
	updateFn         func(db *gorm.DB, appointment *entity.Appointment) error
	deleteFn         func(db *gorm.DB, id uuid.UUID) (int64, error)
}

func (m *mockAppointmentRepo) Create(db *gorm.DB, appointment *entity.Appointment) error {
	if m.createFn != nil {
		return m.createFn(db, appointment)
	}
	appointment.ID = uuid.New()
	return nil
}

func (m *mockAppointmentRepo) FindByID(db *gorm.DB, id uuid.UUID) (*entity.Appointment, error) {
	if m.findByIDFn != nil {
		return m.findByIDFn(db, id)
	}
	return nil, nil
}

func (m *mockAppointmentRepo) FindByDoctorID(db *gorm.DB, doctorID uuid.UUID) ([]entity.Appointment, error) {
	if m.findByDoctorIDFn != nil {
		return m.findByDoctorIDFn(db, doctorID)
	}
	return nil, nil
}

func (m *mockAppointmentRepo) FindInRange(db *gorm.DB, start, end time.Time, doctorID *uuid.UUID) ([]entity.Appointment, error) {
	if m.findInRangeFn != nil {
		return m.findInRangeFn(db, start, end, doctorID)
	}
	return nil, nil
}

func (m *mockAppointmentRepo) FindFiltered(db *gorm.DB, filter *entity.AppointmentFilter) ([]entity.Appointment, error) {
	if m.findFilteredFn != nil {
		return m.findFilteredFn(db, filter)
	}
	return nil, nil
}

func (m *mockAppointmentRepo) Update(db *gorm.DB, appointment *entity.Appointment) error {
	if m.updateFn != nil {
		return m.updateFn(db, appointment)
	}
	return nil
}

func (m *mockAppointmentRepo) Delete(db *gorm.DB, id uuid.UUID) (int64, error) {
	if m.deleteFn != nil {
		return m.deleteFn(db, id)
	}
	return 1, nil
}

type mockPatientRepo struct {
	createFn       func(db *gorm.DB, patient *entity.Patient) error
	findByIDFn     func(db *gorm.DB, id uuid.UUID) (*entity.Patient, error)
	findByUserIDFn func(db *gorm.DB, userID uuid.UUID) (*entity.Patient, error)
	findAllFn      func(db *gorm.DB) ([]entity.Patient, error)
	updateFn       func(db *gorm.DB, patient *entity.Patient) error
	deleteFn       func(db *gorm.DB, id uuid.UUID) (int64, error)
}

func (m *mockPatientRepo) Create(db *gorm.DB, patient *entity.Patient) error {
	if m.createFn != nil {
		return m.createFn(db, patient)
	}
	patient.ID = uuid.New()
	return nil
}

func (m *mockPatientRepo) FindByID(db *gorm.DB, id uuid.UUID) (*entity.Patient, error) {
	if m.findByIDFn != nil {
		return m.findByIDFn(db, id)
	}
	return nil, nil
}

func (m *mockPatientRepo) FindByUserID(db *gorm.DB, userID uuid.UUID) (*entity.Patient, error) {
	if m.findByUserIDFn != nil {
		return m.findByUserIDFn(db, userID)
	}
	return nil, nil
}

func (m *mockPatientRepo) FindAll(db *gorm.DB) ([]entity.Patient, error) {
	if m.findAllFn != nil {
		return m.findAllFn(db)
	}
	return nil, nil
}

func (m *mockPatientRepo) Update(db *gorm.DB, patient *entity.Patient) error {
	if m.updateFn != nil {
		return m.updateFn(db, patient)
	}
	return nil
}

func (m *mockPatientRepo) Delete(db *gorm.DB, id uuid.UUID) (int64, error) {
	if m.deleteFn != nil {
		return m.deleteFn(db, id)
	}
	return 1, nil
}

type mockDoctorRepo struct {
	createFn   func(db *gorm.DB, doctor *entity.Doctor) error
	findByIDFn func(db *gorm.DB, id uuid.UUID) (*entity.Doctor, error)
	findAllFn  func(db *gorm.DB) ([]entity.Doctor, error)
	updateFn   func(db *gorm.DB, doctor *entity.Doctor) error
	deleteFn   func(db *gorm.DB, id uuid.UUID) (int64, error)
}

func (m *mockDoctorRepo) Create(db *gorm.DB, doctor *entity.Doctor) error {
	if m.createFn != nil {
		return m.createFn(db, doctor)
	}
	doctor.ID = uuid.New()
	return nil
}

func (m *mockDoctorRepo) FindByID(db *gorm.DB, id uuid.UUID) (*entity.Doctor, error) {
	if m.findByIDFn != nil {
		return m.findByIDFn(db, id)
	}
	return nil, nil
}

func (m *mockDoctorRepo) FindAll(db *gorm.DB) ([]entity.Doctor, error) {
	if m.findAllFn != nil {
		return m.findAllFn(db)
	}
	return nil, nil
}

func (m *mockDoctorRepo) Update(db *gorm.DB, doctor *entity.Doctor) error {
	if m.updateFn != nil {
		return m.updateFn(db, doctor)
	}
	return nil
}

func (m *mockDoctorRepo) Delete(db *gorm.DB, id uuid.UUID) (int64, error) {
	if m.deleteFn != nil {
		return m.deleteFn(db, id)
	}
	return 1, nil
}

type mockLockedSlotRepo struct {
	createFn             func(db *gorm.DB, slot *entity.LockedSlot) error
	findByIDFn           func(db *gorm.DB, id uuid.UUID) (*entity.LockedSlot, error)
	findByDetailsFn      func(db *gorm.DB, doctorID uuid.UUID, dayStart, dayEnd time.Time, timeToken string) (*entity.LockedSlot, error)
	findByDoctorAndDayFn func(db *gorm.DB, doctorID uuid.UUID, dayStart, dayEnd time.Time) ([]entity.LockedSlot, error)
	findByDoctorIDFn     func(db *gorm.DB, doctorID uuid.UUID) ([]entity.LockedSlot, error)
	deleteByIDFn         func(db *gorm.DB, id uuid.UUID) (int64, error)
	deleteByDetailsFn    func(db *gorm.DB, doctorID uuid.UUID, dayStart, dayEnd time.Time, timeToken string) (int64, error)
}

func (m *mockLockedSlotRepo) Create(db *gorm.DB, slot *entity.LockedSlot) error {
	if m.createFn != nil {
		return m.createFn(db, slot)
	}
	slot.ID = uuid.New()
	return nil
}

func (m *mockLockedSlotRepo) FindByID(db *gorm.DB, id uuid.UUID) (*entity.LockedSlot, error) {
	if m.findByIDFn != nil {
		return m.findByIDFn(db, id)
	}
	return nil, nil
}

func (m *mockLockedSlotRepo) FindByDetails(db *gorm.DB, doctorID uuid.UUID, dayStart, dayEnd time.Time, timeToken string) (*entity.LockedSlot, error) {
	if m.findByDetailsFn != nil {
		return m.findByDetailsFn(db, doctorID, dayStart, dayEnd, timeToken)
	}
	return nil, nil
}

func (m *mockLockedSlotRepo) FindByDoctorAndDay(db *gorm.DB, doctorID uuid.UUID, dayStart, dayEnd time.Time) ([]entity.LockedSlot, error) {
	if m.findByDoctorAndDayFn != nil {
		return m.findByDoctorAndDayFn(db, doctorID, dayStart, dayEnd)
	}
	return nil, nil
}

func (m *mockLockedSlotRepo) FindByDoctorID(db *gorm.DB, doctorID uuid.UUID) ([]entity.LockedSlot, error) {
	if m.findByDoctorIDFn != nil {
		return m.findByDoctorIDFn(db, doctorID)
	}
	return nil, nil
}

func (m *mockLockedSlotRepo) DeleteByID(db *gorm.DB, id uuid.UUID) (int64, error) {
	if m.deleteByIDFn != nil {
		return m.deleteByIDFn(db, id)
	}
	return 1, nil
}

func (m *mockLockedSlotRepo) DeleteByDetails(db *gorm.DB, doctorID uuid.UUID, dayStart, dayEnd time.Time, timeToken string) (int64, error) {
	if m.deleteByDetailsFn != nil {
		return m.deleteByDetailsFn(db, doctorID, dayStart, dayEnd, timeToken)
	}
	return 1, nil
}

type mockWaitingListRepo struct {
	createFn                func(db *gorm.DB, entry *entity.WaitingListEntry) error
	findByIDFn              func(db *gorm.DB, id uuid.UUID) (*entity.WaitingListEntry, error)
	findAllFn               func(db *gorm.DB) ([]entity.WaitingListEntry, error)
	findWaitingByDoctorIDFn func(db *gorm.DB, doctorID uuid.UUID) ([]entity.WaitingListEntry, error)
	updateFn                func(db *gorm.DB, entry *entity.WaitingListEntry) error
	deleteFn                func(db *gorm.DB, id uuid.UUID) (int64, error)
}

func (m *mockWaitingListRepo) Create(db *gorm.DB, entry *entity.WaitingListEntry) error {
	if m.createFn != nil {
		return m.createFn(db, entry)
	}
	entry.ID = uuid.New()
	return nil
}

func (m *mockWaitingListRepo) FindByID(db *gorm.DB, id uuid.UUID) (*entity.WaitingListEntry, error) {
	if m.findByIDFn != nil {
		return m.findByIDFn(db, id)
	}
	return nil, nil
}

func (m *mockWaitingListRepo) FindAll(db *gorm.DB) ([]entity.WaitingListEntry, error) {
	if m.findAllFn != nil {
		return m.findAllFn(db)
	}
	return nil, nil
}

func (m *mockWaitingListRepo) FindWaitingByDoctorID(db *gorm.DB, doctorID uuid.UUID) ([]entity.WaitingListEntry, error) {
	if m.findWaitingByDoctorIDFn != nil {
		return m.findWaitingByDoctorIDFn(db, doctorID)
	}
	return nil, nil
}

func (m *mockWaitingListRepo) Update(db *gorm.DB, entry *entity.WaitingListEntry) error {
	if m.updateFn != nil {
		return m.updateFn(db, entry)
	}
	return nil
}

func (m *mockWaitingListRepo) Delete(db *gorm.DB, id uuid.UUID) (int64, error) {
	if m.deleteFn != nil {
		return m.deleteFn(db, id)
	}
	return 1, nil
}

// mockAuditService records every call so tests can assert on the trail.
type mockAuditService struct {
	actions []string
}

func (m *mockAuditService) Record(db *gorm.DB, userID *uuid.UUID, action string, entityName string, entityID string, detail interface{}) {
	m.actions = append(m.actions, action)
}
