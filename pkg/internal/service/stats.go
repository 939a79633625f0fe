package service

import (
	"strings"

	"github.com/Himan2899/SmartFileOrganizer/pkg/internal/types"
)

// ComputeStats reduces an organized-file list into summary statistics. It is
// a full recompute on every call, never incrementally maintained.
func ComputeStats(files []types.OrganizedFileItem) types.FileStats {
	stats := types.FileStats{
		TotalFiles:        len(files),
		FileTypes:         make(map[string]int),
		Categories:        make(map[string]int),
		AIClassifications: make(map[string]int),
	}

	var totalConfidence float64

	classifiedCount := 0

	for i := range files {
		f := &files[i]
		stats.TotalSize += f.Size

		if f.IsDuplicate {
			stats.Duplicates++
		}

		stats.FileTypes[GetFileType(f.FileName)]++

		// category = first segment of the organization path
		category, _, _ := strings.Cut(f.OrganizationPath, "/")
		stats.Categories[category]++

		if f.AI != nil {
			stats.AIClassifications[f.AI.Category]++

			totalConfidence += f.AI.Confidence
			classifiedCount++
		}
	}

	if classifiedCount > 0 {
		stats.AverageConfidence = totalConfidence / float64(classifiedCount)
	}

	return stats
}
