package model

import (
	"time"

	"gorm.io/gorm"
)

// OrganizedFile is one file inside a batch snapshot.
type OrganizedFile struct {
	ID uint `gorm:"primaryKey" json:"id"`
	// BatchID links the file to its OrganizeBatch.
	BatchID  string `gorm:"size:64;index" json:"batch_id"`
	FileName string `gorm:"size:512;index" json:"file_name"`
	Size     int64  `gorm:"index" json:"size"`
	// Hash is the lowercase hex SHA-256 of the file content.
	Hash        string `gorm:"size:64;index" json:"hash"`
	Duplicate   bool   `gorm:"index" json:"duplicate"`
	ContentType string `gorm:"size:255" json:"content_type"`
	// FileType is the coarse bucket derived from the extension (image,
	// document, video, ...).
	FileType string `gorm:"size:64;index" json:"file_type"`
	// TargetPath is the resolved destination inside the organized tree.
	TargetPath string `gorm:"size:1024" json:"target_path"`
	// AI classification outcome, empty when the file was not classified.
	Category        string  `gorm:"size:128;index" json:"category,omitempty"`
	Confidence      float64 `json:"confidence,omitempty"`
	SuggestedFolder string  `gorm:"size:512" json:"suggested_folder,omitempty"`
	Reasoning       string  `gorm:"type:text" json:"reasoning,omitempty"`
	// Object storage location of the uploaded copy.
	ObjectKey string `gorm:"size:1024" json:"object_key,omitempty"`
	Bucket    string `gorm:"size:255" json:"bucket,omitempty"`
	ETag      string `gorm:"size:64" json:"etag,omitempty"`
	// LastModified is the client-reported modification time.
	LastModified time.Time `gorm:"index" json:"last_modified"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
	DeletedAt    gorm.DeletedAt `gorm:"index"`
}
