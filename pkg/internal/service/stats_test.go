package service_test

import (
	"testing"

	"github.com/Himan2899/SmartFileOrganizer/pkg/internal/service"
	"github.com/Himan2899/SmartFileOrganizer/pkg/internal/types"
)

func TestHashBytes(t *testing.T) {
	got := service.HashBytes([]byte("hello"))
	want := "2cf24dba5fb0a30e26e83b2ac5b9e29e1b161e5c1fa7425e73043362938b9824"

	if got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}

	if service.HashBytes(nil) != service.HashBytes([]byte{}) {
		t.Fatal("nil and empty content should hash identically")
	}
}

func TestHashBytesDuplicateDetection(t *testing.T) {
	// simulates the engine's seen-set walk over [A, A', B] where A' has the
	// same content as A under a different name
	contents := [][]byte{
		[]byte("annual report"),
		[]byte("annual report"),
		[]byte("meeting notes"),
	}

	seen := make(map[string]struct{})

	var duplicates []bool

	for _, content := range contents {
		h := service.HashBytes(content)
		if _, dup := seen[h]; dup {
			duplicates = append(duplicates, true)
			continue
		}

		seen[h] = struct{}{}

		duplicates = append(duplicates, false)
	}

	want := []bool{false, true, false}
	for i, d := range duplicates {
		if d != want[i] {
			t.Fatalf("file %d: duplicate = %v, want %v", i, d, want[i])
		}
	}
}

func TestComputeStats(t *testing.T) {
	files := []types.OrganizedFileItem{
		{
			FileName:         "a.pdf",
			Size:             100,
			OrganizationPath: "Documents/a.pdf",
			AI:               &types.AIClassification{Category: "report", Confidence: 0.8},
		},
		{
			FileName:         "b.pdf",
			Size:             200,
			OrganizationPath: "Documents/b.pdf",
			IsDuplicate:      true,
			AI:               &types.AIClassification{Category: "report", Confidence: 0.6},
		},
		{
			FileName:         "c.jpg",
			Size:             300,
			OrganizationPath: "Images/c.jpg",
		},
	}

	stats := service.ComputeStats(files)

	if stats.TotalFiles != 3 {
		t.Fatalf("expected 3 files, got %d", stats.TotalFiles)
	}

	if stats.TotalSize != 600 {
		t.Fatalf("expected total size 600, got %d", stats.TotalSize)
	}

	if stats.Duplicates != 1 {
		t.Fatalf("expected 1 duplicate, got %d", stats.Duplicates)
	}

	if stats.FileTypes["document"] != 2 || stats.FileTypes["image"] != 1 {
		t.Fatalf("unexpected file type counts: %v", stats.FileTypes)
	}

	if stats.Categories["Documents"] != 2 || stats.Categories["Images"] != 1 {
		t.Fatalf("unexpected categories: %v", stats.Categories)
	}

	if stats.AIClassifications["report"] != 2 {
		t.Fatalf("unexpected AI classification counts: %v", stats.AIClassifications)
	}

	// average over classified files only
	if stats.AverageConfidence != 0.7 {
		t.Fatalf("expected average confidence 0.7, got %v", stats.AverageConfidence)
	}
}

func TestComputeStatsEmpty(t *testing.T) {
	stats := service.ComputeStats(nil)

	if stats.TotalFiles != 0 || stats.TotalSize != 0 {
		t.Fatalf("expected zero stats, got %+v", stats)
	}

	if stats.AverageConfidence != 0 {
		t.Fatalf("expected zero confidence with no classified files, got %v", stats.AverageConfidence)
	}
}

func TestComputeStatsBareNameCategory(t *testing.T) {
	files := []types.OrganizedFileItem{
		{FileName: "loose.txt", Size: 10, OrganizationPath: "loose.txt"},
	}

	stats := service.ComputeStats(files)

	// a path without folders counts under the file name itself
	if stats.Categories["loose.txt"] != 1 {
		t.Fatalf("unexpected categories: %v", stats.Categories)
	}
}
