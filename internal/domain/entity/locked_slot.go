package entity

import (
	"time"

	"github.com/google/uuid"
)

// DefaultLockReason is stamped on locked slots created without a reason.
const DefaultLockReason = "Admin locked"

// LockedSlot is an administrator-declared blackout on a (doctor, date, time)
// slot, independent of any appointment. At most one lock may exist per slot;
// that is enforced by a pre-create existence check, not a storage constraint.
type LockedSlot struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	DoctorID  uuid.UUID `gorm:"type:uuid;not null;index" json:"doctor_id"`
	Date      time.Time `gorm:"not null;index" json:"date"`
	Time      string    `gorm:"type:varchar(10);not null" json:"time"`
	Reason    string    `gorm:"type:varchar(255);not null;default:'Admin locked'" json:"reason"`
	CreatedBy uuid.UUID `gorm:"type:uuid;not null" json:"created_by"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (LockedSlot) TableName() string {
	return "locked_slots"
}
