package converter

import (
	"medical-appointment-api/internal/delivery/dto"
	"medical-appointment-api/internal/domain/entity"
)

func RecordsToResponses(records []entity.Record) []dto.RecordResponse {
	responses := make([]dto.RecordResponse, len(records))
	for i, record := range records {
		responses[i] = dto.RecordResponse{
			ID:         record.ID,
			UserEmail:  record.UserEmail,
			FileName:   record.FileName,
			FileType:   record.FileType,
			UploadedAt: record.UploadedAt,
		}
	}
	return responses
}
