package model

import (
	"fmt"
	"time"

	"github.com/bytedance/sonic"
	"gorm.io/gorm"
)

// OrganizeBatch is the persisted snapshot of one organize run. The DB is the
// source of truth; list-shaped fields are stored as JSON text to keep the
// schema simple.
type OrganizeBatch struct {
	BatchID string `gorm:"primaryKey;size:64" json:"batch_id"`
	Name    string `gorm:"size:255;index" json:"name"`
	// OrganizedByJSON records which axes were applied, e.g. ["date","type"].
	OrganizedByJSON string `gorm:"type:text" json:"-"`
	// RulesJSON snapshots the custom rules in effect for this run.
	RulesJSON      string         `gorm:"type:text" json:"-"`
	FileCount      int            `json:"file_count"`
	DuplicateCount int            `json:"duplicate_count"`
	TotalSize      int64          `json:"total_size"`
	ClassifiedAt   *time.Time     `json:"classified_at,omitempty"`
	ArchivedAt     *time.Time     `json:"archived_at,omitempty"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
	DeletedAt      gorm.DeletedAt `gorm:"index" json:"-"`
}

// OrganizedBy decodes the applied axes.
func (b *OrganizeBatch) OrganizedBy() ([]string, error) {
	if b.OrganizedByJSON == "" {
		return nil, nil
	}

	var axes []string
	if err := sonic.UnmarshalString(b.OrganizedByJSON, &axes); err != nil {
		return nil, fmt.Errorf("unmarshal organized_by: %w", err)
	}

	return axes, nil
}

// SetOrganizedBy encodes the applied axes.
func (b *OrganizeBatch) SetOrganizedBy(axes []string) error {
	data, err := sonic.MarshalString(axes)
	if err != nil {
		return fmt.Errorf("marshal organized_by: %w", err)
	}

	b.OrganizedByJSON = data

	return nil
}

// AllModels lists every model for auto-migration.
func AllModels() []any {
	return []any{
		&OrganizeBatch{},
		&OrganizedFile{},
	}
}
