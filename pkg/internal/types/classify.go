package types

// Classification outcome kinds.
const (
	ClassifyKindDocument = "document"
	ClassifyKindImage    = "image"
)

// ClassificationResult is the validated answer from the model service. The
// JSON tags match the shape the model is instructed to produce.
type ClassificationResult struct {
	Category string `json:"category"`
	// Confidence is clamped into [0,1] before use.
	Confidence  float64 `json:"confidence"`
	Subcategory string  `json:"subcategory,omitempty"`
	// SuggestedFolder is never empty; it defaults to Documents/<category>
	// when the model omits it.
	SuggestedFolder string `json:"suggestedFolder"`
	Reasoning       string `json:"reasoning"`
}

// DocumentMetadata is derived from the extracted text, document path only.
type DocumentMetadata struct {
	WordCount int    `json:"word_count,omitempty"`
	PageCount int    `json:"page_count,omitempty"`
	Language  string `json:"language,omitempty"`
}

// DocumentAnalysis wraps a ClassificationResult with extraction context.
type DocumentAnalysis struct {
	Classification ClassificationResult `json:"classification"`
	// ExtractedText is a preview truncated to at most 1000 characters.
	ExtractedText string            `json:"extracted_text,omitempty"`
	Metadata      *DocumentMetadata `json:"metadata,omitempty"`
}

// ClassifyResponse is the tagged result of the single-file classification
// endpoint: exactly one of Result or Analysis is set, selected by Kind.
type ClassifyResponse struct {
	Kind     string                `json:"kind"`
	Result   *ClassificationResult `json:"result,omitempty"`
	Analysis *DocumentAnalysis     `json:"analysis,omitempty"`
	// Skipped is true when a document had too little text to classify.
	Skipped bool `json:"skipped,omitempty"`
}

// ConnectivityResponse reports the outcome of the model smoke test.
type ConnectivityResponse struct {
	OK      bool   `json:"ok"`
	Message string `json:"message"`
}
