package entity

import (
	"time"

	"github.com/google/uuid"
)

// Record is metadata about an uploaded medical document.
type Record struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	UserEmail  string    `gorm:"type:varchar(255);not null;index" json:"userEmail"`
	FileName   string    `gorm:"type:varchar(255);not null" json:"fileName"`
	FileType   string    `gorm:"type:varchar(100);not null" json:"fileType"`
	UploadedAt time.Time `gorm:"type:timestamptz;not null;default:now()" json:"uploadedAt"`
	CreatedAt  time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt  time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (Record) TableName() string {
	return "records"
}
