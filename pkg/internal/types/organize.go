// Package types defines the request and response shapes of the HTTP API.
package types

import "time"

// Custom rule conditions.
const (
	RuleConditionExtension = "extension" // case-insensitive suffix match
	RuleConditionName      = "name"      // case-insensitive substring match
	RuleConditionSize      = "size"      // value is a megabyte threshold, matches size > threshold
)

// CustomRule is one user-defined routing rule. Rules are evaluated in order
// and the first enabled match wins.
type CustomRule struct {
	ID           string `json:"id"`
	Name         string `json:"name"          rule:"required,max=255"`
	Condition    string `json:"condition"     rule:"required,oneof=extension name size"`
	Value        string `json:"value"         rule:"required,max=512"`
	TargetFolder string `json:"target_folder" rule:"required,max=512"`
	Enabled      bool   `json:"enabled"`
}

// OrganizationRules is the full rule configuration for one organize run.
type OrganizationRules struct {
	OrganizeByType   bool `json:"organize_by_type"`
	OrganizeBySize   bool `json:"organize_by_size"`
	OrganizeByDate   bool `json:"organize_by_date"`
	DetectDuplicates bool `json:"detect_duplicates"`
	AIClassification bool `json:"ai_classification"`
	// CustomRules are evaluated in order, first match wins.
	CustomRules []CustomRule `json:"custom_rules" rule:"omitempty,dive"`
	// IgnoredTypes lists extensions (lower-cased, leading dot) dropped from
	// the batch before any other processing.
	IgnoredTypes []string `json:"ignored_types"`
}

// FileMeta carries the metadata an OrganizedFile keeps about its input.
type FileMeta struct {
	LastModified time.Time `json:"last_modified"`
}

// OrganizedFileItem is one engine output record. The final path segment of
// OrganizationPath always equals FileName; organization only prepends
// folders, never renames.
type OrganizedFileItem struct {
	FileName         string `json:"file_name"    rule:"required"`
	Size             int64  `json:"size"`
	ContentType      string `json:"content_type,omitempty"`
	OrganizationPath string `json:"organization_path" rule:"required"`
	// Hash is empty when duplicate detection is disabled.
	Hash         string            `json:"hash,omitempty"`
	IsDuplicate  bool              `json:"is_duplicate"`
	FileType     string            `json:"file_type"`
	SizeCategory string            `json:"size_category"`
	ObjectKey    string            `json:"object_key,omitempty"`
	AI           *AIClassification `json:"ai_classification,omitempty"`
	Metadata     FileMeta          `json:"metadata"`
}

// AIClassification is the classification attached to an organized file.
type AIClassification struct {
	Category      string            `json:"category"`
	Confidence    float64           `json:"confidence"`
	Subcategory   string            `json:"subcategory,omitempty"`
	Reasoning     string            `json:"reasoning,omitempty"`
	ExtractedText string            `json:"extracted_text,omitempty"`
	Metadata      *DocumentMetadata `json:"metadata,omitempty"`
}

// OrganizeResponse is the result of one organize call.
type OrganizeResponse struct {
	BatchID string              `json:"batch_id"`
	Files   []OrganizedFileItem `json:"files"`
	Stats   FileStats           `json:"stats"`
}
