package types

import "time"

// BatchSummary describes one stored batch snapshot.
type BatchSummary struct {
	BatchID        string    `json:"batch_id"`
	Name           string    `json:"name,omitempty"`
	FileCount      int       `json:"file_count"`
	DuplicateCount int       `json:"duplicate_count"`
	TotalSize      int64     `json:"total_size"`
	OrganizedBy    []string  `json:"organized_by,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}

// ListBatchesResponse lists snapshots, newest first.
type ListBatchesResponse struct {
	Batches []BatchSummary `json:"batches"`
	Total   int            `json:"total"`
}

// BatchDetailResponse is one snapshot with its files and stats.
type BatchDetailResponse struct {
	Batch BatchSummary        `json:"batch"`
	Files []OrganizedFileItem `json:"files"`
	Stats FileStats           `json:"stats"`
}
