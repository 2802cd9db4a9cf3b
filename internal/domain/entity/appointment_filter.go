package entity

import (
	"time"

	"github.com/google/uuid"
)

// AppointmentFilter narrows appointment listings. Equality fields are applied
// when non-nil/non-empty; StartDate/EndDate form an inclusive range.
type AppointmentFilter struct {
	Status    string
	DoctorID  *uuid.UUID
	PatientID *uuid.UUID
	StartDate *time.Time
	EndDate   *time.Time
}

// WaitingListFilter narrows waiting-list listings. Date filters on the exact
// calendar day of PreferredDate.
type WaitingListFilter struct {
	DoctorID  *uuid.UUID
	PatientID *uuid.UUID
	Status    string
	Date      *time.Time
}
