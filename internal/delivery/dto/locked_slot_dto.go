package dto

import (
	"time"

	"go-clinic-management/pkg/dateparse"

	"github.com/google/uuid"
)

// Request DTOs

type CreateLockedSlotRequest struct {
	DoctorID uuid.UUID           `json:"doctor_id" validate:"required"`
	Date     *dateparse.FlexDate `json:"date" validate:"required"`
	Time     string              `json:"time" validate:"required,hhmm"`
	Reason   string              `json:"reason" validate:"omitempty,max=255"`
}

// Response DTOs

type LockedSlotResponse struct {
	ID        uuid.UUID `json:"id"`
	DoctorID  uuid.UUID `json:"doctor_id"`
	Date      string    `json:"date"`
	Time      string    `json:"time"`
	Reason    string    `json:"reason"`
	CreatedBy uuid.UUID `json:"created_by"`
	CreatedAt time.Time `json:"created_at"`
}

type LockedSlotListResponse struct {
	LockedSlots []LockedSlotResponse `json:"locked_slots"`
	Total       int                  `json:"total"`
}

type SlotCheckResponse struct {
	Locked bool                `json:"locked"`
	Slot   *LockedSlotResponse `json:"slot,omitempty"`
}
