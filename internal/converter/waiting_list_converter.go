package converter

import (
	"go-clinic-management/internal/delivery/dto"
	"go-clinic-management/internal/domain/entity"
	"go-clinic-management/pkg/dateparse"
)

// WaitingListEntryToResponse converts a WaitingListEntry entity to its DTO
func WaitingListEntryToResponse(entry *entity.WaitingListEntry) *dto.WaitingListEntryResponse {
	if entry == nil {
		return nil
	}

	return &dto.WaitingListEntryResponse{
		ID:            entry.ID,
		PatientID:     entry.PatientID,
		PatientName:   entry.PatientName,
		DoctorID:      entry.DoctorID,
		DoctorName:    entry.DoctorName,
		ServiceType:   entry.ServiceType,
		PreferredDate: dateparse.DayString(entry.PreferredDate),
		Status:        string(entry.Status),
		Priority:      entry.Priority,
		Notes:         entry.Notes,
		CreatedBy:     entry.CreatedBy,
		CreatedAt:     entry.CreatedAt,
		UpdatedAt:     entry.UpdatedAt,
	}
}

// WaitingListEntriesToResponses converts a slice of entries to DTOs
func WaitingListEntriesToResponses(entries []entity.WaitingListEntry) []dto.WaitingListEntryResponse {
	responses := make([]dto.WaitingListEntryResponse, len(entries))
	for i := range entries {
		responses[i] = *WaitingListEntryToResponse(&entries[i])
	}
	return responses
}
