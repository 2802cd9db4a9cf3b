package main

import (
	"fmt"
	"time"

	"go-clinic-management/config"
	"go-clinic-management/internal/domain/entity"
	"go-clinic-management/internal/infrastructure/database"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const (
	doctorCount      = 10
	patientCount     = 50
	appointmentCount = 100
)

var specializations = []string{
	"Dermatology",
	"Cardiology",
	"General Practice",
	"Orthopedics",
	"Pediatrics",
	"Neurology",
	"Ophthalmology",
	"ENT",
}

var serviceTypes = []string{
	"Consultation",
	"Check-up",
	"Follow-up",
	"Vaccination",
	"Screening",
}

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}

	db, err := database.NewPostgresConnection(cfg.DB)
	if err != nil {
		logrus.Fatalf("Failed to connect to database: %v", err)
	}

	if err := database.RunMigrations(db, cfg.DB); err != nil {
		logrus.Fatalf("Failed to run migrations: %v", err)
	}

	gofakeit.Seed(time.Now().UnixNano())

	admin, err := seedAdmin(db)
	if err != nil {
		logrus.Fatalf("Failed to seed admin user: %v", err)
	}

	doctors, err := seedDoctors(db, admin.ID)
	if err != nil {
		logrus.Fatalf("Failed to seed doctors: %v", err)
	}

	patients, err := seedPatients(db, admin.ID)
	if err != nil {
		logrus.Fatalf("Failed to seed patients: %v", err)
	}

	if err := seedAppointments(db, admin.ID, doctors, patients); err != nil {
		logrus.Fatalf("Failed to seed appointments: %v", err)
	}

	logrus.Info("Seed complete")
}

func seedAdmin(db *gorm.DB) (*entity.User, error) {
	var existing entity.User
	err := db.Where("email = ?", "admin@clinic.local").First(&existing).Error
	if err == nil {
		return &existing, nil
	}
	if err != gorm.ErrRecordNotFound {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("admin12345"), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	admin := &entity.User{
		RoleID:   entity.RoleIDAdmin,
		Email:    "admin@clinic.local",
		Password: string(hash),
		FullName: "Clinic Administrator",
		IsActive: true,
	}
	if err := db.Create(admin).Error; err != nil {
		return nil, err
	}

	logrus.Info("Admin user seeded")
	return admin, nil
}

func seedDoctors(db *gorm.DB, createdBy uuid.UUID) ([]entity.Doctor, error) {
	logrus.Infof("Seeding %d doctors", doctorCount)

	doctors := make([]entity.Doctor, 0, doctorCount)
	for i := 0; i < doctorCount; i++ {
		doctor := entity.Doctor{
			FullName:       fmt.Sprintf("Dr. %s", gofakeit.Name()),
			Specialization: specializations[gofakeit.Number(0, len(specializations)-1)],
			Email:          gofakeit.Email(),
			PhoneNumber:    gofakeit.Phone(),
			Biography:      gofakeit.Sentence(12),
			IsActive:       true,
			CreatedBy:      createdBy,
		}
		if err := db.Create(&doctor).Error; err != nil {
			return nil, err
		}
		doctors = append(doctors, doctor)
	}
	return doctors, nil
}

func seedPatients(db *gorm.DB, createdBy uuid.UUID) ([]entity.Patient, error) {
	logrus.Infof("Seeding %d patients", patientCount)

	patients := make([]entity.Patient, 0, patientCount)
	for i := 0; i < patientCount; i++ {
		dob := gofakeit.DateRange(
			time.Date(1940, 1, 1, 0, 0, 0, 0, time.UTC),
			time.Date(2010, 12, 31, 0, 0, 0, 0, time.UTC),
		)
		gender := entity.GenderMale
		if gofakeit.Bool() {
			gender = entity.GenderFemale
		}

		patient := entity.Patient{
			FullName:    gofakeit.Name(),
			Email:       gofakeit.Email(),
			PhoneNumber: gofakeit.Phone(),
			DateOfBirth: &dob,
			Gender:      gender,
			Address:     gofakeit.Address().Address,
			CreatedBy:   createdBy,
		}
		if err := db.Create(&patient).Error; err != nil {
			return nil, err
		}
		patients = append(patients, patient)
	}
	return patients, nil
}

func seedAppointments(db *gorm.DB, createdBy uuid.UUID, doctors []entity.Doctor, patients []entity.Patient) error {
	logrus.Infof("Seeding %d appointments", appointmentCount)

	for i := 0; i < appointmentCount; i++ {
		doctor := doctors[gofakeit.Number(0, len(doctors)-1)]
		patient := patients[gofakeit.Number(0, len(patients)-1)]

		day := time.Now().AddDate(0, 0, gofakeit.Number(1, 30))
		date := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, time.UTC)
		slot := fmt.Sprintf("%02d:%02d", gofakeit.Number(8, 16), 15*gofakeit.Number(0, 3))

		appointment := entity.Appointment{
			PatientID:       patient.ID,
			PatientName:     patient.FullName,
			DoctorID:        doctor.ID,
			DoctorName:      doctor.FullName,
			AppointmentDate: date,
			AppointmentTime: slot,
			ServiceType:     serviceTypes[gofakeit.Number(0, len(serviceTypes)-1)],
			Duration:        entity.DefaultAppointmentDuration,
			Status:          entity.AppointmentStatusScheduled,
			CreatedBy:       createdBy,
		}
		if err := db.Create(&appointment).Error; err != nil {
			return err
		}
	}
	return nil
}
