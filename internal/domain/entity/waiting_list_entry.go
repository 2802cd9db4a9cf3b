package entity

import (
	"time"

	"github.com/google/uuid"
)

// WaitingListStatus represents the status of a waiting-list entry
type WaitingListStatus string

const (
	WaitingListStatusWaiting   WaitingListStatus = "waiting"
	WaitingListStatusBooked    WaitingListStatus = "booked"
	WaitingListStatusCancelled WaitingListStatus = "cancelled"
)

// WaitingListEntry is a queued request for a doctor/service. While status is
// waiting, PreferredDate is advanced to today whenever a list read finds it in
// the past; it never moves backward. Priority is the queue rank within a
// doctor's waiting list, lower served first.
type WaitingListEntry struct {
	ID            uuid.UUID         `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	PatientID     uuid.UUID         `gorm:"type:uuid;not null;index" json:"patient_id"`
	PatientName   string            `gorm:"type:varchar(255)" json:"patient_name"`
	DoctorID      uuid.UUID         `gorm:"type:uuid;not null;index" json:"doctor_id"`
	DoctorName    string            `gorm:"type:varchar(255)" json:"doctor_name"`
	ServiceType   string            `gorm:"type:varchar(100)" json:"service_type,omitempty"`
	PreferredDate time.Time         `gorm:"not null;index" json:"preferred_date"`
	Status        WaitingListStatus `gorm:"type:varchar(20);not null;default:'waiting';index" json:"status"`
	Priority      int               `gorm:"not null;default:0" json:"priority"`
	Notes         string            `gorm:"type:text" json:"notes,omitempty"`
	CreatedBy     uuid.UUID         `gorm:"type:uuid;not null" json:"created_by"`
	CreatedAt     time.Time         `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time         `gorm:"autoUpdateTime" json:"updated_at"`
}

func (WaitingListEntry) TableName() string {
	return "waiting_list_entries"
}

// IsWaiting reports whether the entry can still be promoted.
func (e *WaitingListEntry) IsWaiting() bool {
	return e.Status == WaitingListStatusWaiting
}
