package entity

import (
	"time"

	"github.com/google/uuid"
)

// FileRecord is upload-metadata bookkeeping: the blob itself lives in external
// storage, only the descriptor is kept here.
type FileRecord struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	FileName    string    `gorm:"type:varchar(255);not null" json:"file_name"`
	URL         string    `gorm:"type:text;not null" json:"url"`
	ContentType string    `gorm:"type:varchar(100)" json:"content_type,omitempty"`
	Size        int64     `gorm:"not null;default:0" json:"size"`
	UploadedBy  uuid.UUID `gorm:"type:uuid;not null;index" json:"uploaded_by"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (FileRecord) TableName() string {
	return "files"
}
