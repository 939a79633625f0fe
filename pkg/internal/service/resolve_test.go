package service_test

import (
	"testing"
	"time"

	"github.com/Himan2899/SmartFileOrganizer/pkg/internal/classify"
	"github.com/Himan2899/SmartFileOrganizer/pkg/internal/service"
	"github.com/Himan2899/SmartFileOrganizer/pkg/internal/types"
)

func inputFile(name string, size int64, modified time.Time) *classify.InputFile {
	return &classify.InputFile{
		Name:         name,
		Size:         size,
		LastModified: modified,
	}
}

func TestResolvePathStructural(t *testing.T) {
	modified := time.Date(2024, time.March, 15, 12, 0, 0, 0, time.UTC)
	file := inputFile("report.pdf", 5<<20, modified)

	rules := &types.OrganizationRules{
		OrganizeByDate: true,
		OrganizeByType: true,
		OrganizeBySize: true,
	}

	got := service.ResolvePath(file, rules, nil)
	want := "2024/03/document/medium/report.pdf"

	if got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestResolvePathNoAxes(t *testing.T) {
	file := inputFile("notes.txt", 100, time.Now())

	got := service.ResolvePath(file, &types.OrganizationRules{}, nil)
	if got != "notes.txt" {
		t.Fatalf("expected bare file name, got %q", got)
	}
}

func TestResolvePathCustomRuleWins(t *testing.T) {
	modified := time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC)
	file := inputFile("march.invoice", 200, modified)

	rules := &types.OrganizationRules{
		OrganizeByDate: true,
		OrganizeByType: true,
		CustomRules: []types.CustomRule{
			{
				Name:         "invoices",
				Condition:    types.RuleConditionExtension,
				Value:        ".invoice",
				TargetFolder: "Finance/Invoices",
				Enabled:      true,
			},
		},
	}

	got := service.ResolvePath(file, rules, nil)
	if got != "Finance/Invoices/march.invoice" {
		t.Fatalf("custom rule should win, got %q", got)
	}
}

func TestResolvePathDisabledRuleSkipped(t *testing.T) {
	file := inputFile("march.invoice", 200, time.Now())

	rules := &types.OrganizationRules{
		CustomRules: []types.CustomRule{
			{
				Name:         "invoices",
				Condition:    types.RuleConditionExtension,
				Value:        ".invoice",
				TargetFolder: "Finance/Invoices",
				Enabled:      false,
			},
		},
	}

	got := service.ResolvePath(file, rules, nil)
	if got != "march.invoice" {
		t.Fatalf("disabled rule should not match, got %q", got)
	}
}

func TestResolvePathRuleOrder(t *testing.T) {
	file := inputFile("photo.jpg", 100, time.Now())

	rules := &types.OrganizationRules{
		CustomRules: []types.CustomRule{
			{Name: "first", Condition: types.RuleConditionName, Value: "photo",
				TargetFolder: "First", Enabled: true},
			{Name: "second", Condition: types.RuleConditionExtension, Value: ".jpg",
				TargetFolder: "Second", Enabled: true},
		},
	}

	got := service.ResolvePath(file, rules, nil)
	if got != "First/photo.jpg" {
		t.Fatalf("first matching rule should win, got %q", got)
	}
}

func TestResolvePathSizeRule(t *testing.T) {
	rules := &types.OrganizationRules{
		CustomRules: []types.CustomRule{
			{Name: "big", Condition: types.RuleConditionSize, Value: "10",
				TargetFolder: "Big", Enabled: true},
		},
	}

	big := inputFile("video.mp4", 11<<20, time.Now())
	if got := service.ResolvePath(big, rules, nil); got != "Big/video.mp4" {
		t.Fatalf("size rule should match file over threshold, got %q", got)
	}

	small := inputFile("clip.mp4", 1<<20, time.Now())
	if got := service.ResolvePath(small, rules, nil); got != "clip.mp4" {
		t.Fatalf("size rule should not match small file, got %q", got)
	}
}

func TestResolvePathAISuggestedFolder(t *testing.T) {
	file := inputFile("scan.png", 100, time.Now())

	rules := &types.OrganizationRules{
		AIClassification: true,
		OrganizeByType:   true,
	}

	outcome := &classify.Outcome{
		Kind: types.ClassifyKindImage,
		Result: &types.ClassificationResult{
			Category:        "receipt",
			Confidence:      0.9,
			SuggestedFolder: "Images/Receipts",
		},
	}

	got := service.ResolvePath(file, rules, outcome)
	if got != "Images/Receipts/scan.png" {
		t.Fatalf("AI folder should win over structural, got %q", got)
	}

	// without an outcome the structural fallback applies
	got = service.ResolvePath(file, rules, nil)
	if got != "image/scan.png" {
		t.Fatalf("expected structural fallback, got %q", got)
	}
}

func TestResolvePathIdempotent(t *testing.T) {
	modified := time.Date(2023, time.December, 31, 23, 59, 0, 0, time.UTC)
	file := inputFile("song.mp3", 3<<20, modified)

	rules := &types.OrganizationRules{OrganizeByDate: true, OrganizeByType: true}

	first := service.ResolvePath(file, rules, nil)
	second := service.ResolvePath(file, rules, nil)

	if first != second {
		t.Fatalf("resolution should be deterministic: %q vs %q", first, second)
	}

	if first != "2023/12/audio/song.mp3" {
		t.Fatalf("unexpected path %q", first)
	}
}

func TestIsIgnored(t *testing.T) {
	ignored := []string{".tmp", ".DS_Store"}

	cases := []struct {
		name string
		want bool
	}{
		{"cache.tmp", true},
		{"CACHE.TMP", true},
		{"folder.ds_store", true},
		{"report.pdf", false},
		{"noextension", false},
	}

	for _, tc := range cases {
		if got := service.IsIgnored(tc.name, ignored); got != tc.want {
			t.Errorf("IsIgnored(%q) = %v, want %v", tc.name, got, tc.want)
		}
	}
}

func TestGetFileType(t *testing.T) {
	cases := []struct {
		name string
		want string
	}{
		{"photo.JPG", "image"},
		{"doc.pdf", "document"},
		{"sheet.csv", "spreadsheet"},
		{"deck.pptx", "presentation"},
		{"clip.webm", "video"},
		{"song.flac", "audio"},
		{"bundle.tar", "archive"},
		{"main.py", "code"},
		{"data.xyz", "xyz"},
		{"README", "unknown"},
	}

	for _, tc := range cases {
		if got := service.GetFileType(tc.name); got != tc.want {
			t.Errorf("GetFileType(%q) = %q, want %q", tc.name, got, tc.want)
		}
	}
}

func TestGetSizeCategory(t *testing.T) {
	cases := []struct {
		size int64
		want string
	}{
		{0, "small"},
		{1<<20 - 1, "small"},
		{1 << 20, "medium"},
		{10<<20 - 1, "medium"},
		{10 << 20, "large"},
		{1 << 30, "large"},
	}

	for _, tc := range cases {
		if got := service.GetSizeCategory(tc.size); got != tc.want {
			t.Errorf("GetSizeCategory(%d) = %q, want %q", tc.size, got, tc.want)
		}
	}
}
