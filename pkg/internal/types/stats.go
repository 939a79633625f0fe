package types

// FileStats is the summary over one organized-file list, recomputed fresh on
// every call.
type FileStats struct {
	TotalFiles int   `json:"total_files"`
	TotalSize  int64 `json:"total_size"`
	// FileTypes counts files per extension-derived type bucket.
	FileTypes  map[string]int `json:"file_types"`
	Duplicates int            `json:"duplicates"`
	// Categories counts files per first path segment of OrganizationPath.
	Categories map[string]int `json:"categories"`
	// AIClassifications counts classified files per model category.
	AIClassifications map[string]int `json:"ai_classifications"`
	// AverageConfidence is the mean over classified files, 0 when none.
	AverageConfidence float64 `json:"average_confidence"`
}

// StatsRequest posts an organized-file list for aggregation.
type StatsRequest struct {
	Files []OrganizedFileItem `json:"files" rule:"required,dive"`
}
