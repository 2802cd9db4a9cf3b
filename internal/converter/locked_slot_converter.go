package converter

import (
	"go-clinic-management/internal/delivery/dto"
	"go-clinic-management/internal/domain/entity"
	"go-clinic-management/pkg/dateparse"
)

// LockedSlotToResponse converts a LockedSlot entity to its DTO
func LockedSlotToResponse(slot *entity.LockedSlot) *dto.LockedSlotResponse {
	if slot == nil {
		return nil
	}

	return &dto.LockedSlotResponse{
		ID:        slot.ID,
		DoctorID:  slot.DoctorID,
		Date:      dateparse.DayString(slot.Date),
		Time:      slot.Time,
		Reason:    slot.Reason,
		CreatedBy: slot.CreatedBy,
		CreatedAt: slot.CreatedAt,
	}
}

// LockedSlotsToResponses converts a slice of LockedSlot entities to DTOs
func LockedSlotsToResponses(slots []entity.LockedSlot) []dto.LockedSlotResponse {
	responses := make([]dto.LockedSlotResponse, len(slots))
	for i := range slots {
		responses[i] = *LockedSlotToResponse(&slots[i])
	}
	return responses
}
