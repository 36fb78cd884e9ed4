package dto

import (
	"time"

	"github.com/google/uuid"
)

type RecordResponse struct {
	ID         uuid.UUID `json:"id"`
	UserEmail  string    `json:"userEmail"`
	FileName   string    `json:"fileName"`
	FileType   string    `json:"fileType"`
	UploadedAt time.Time `json:"uploadedAt"`
}
