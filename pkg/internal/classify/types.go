// Package classify implements the AI classification client: prompt
// construction, response parsing and validation, fallback policy, and the
// grouped batch fan-out.
package classify

import (
	"fmt"
	"strings"
	"time"

	"github.com/Himan2899/SmartFileOrganizer/pkg/internal/types"
)

// InputFile is one file handed to the classifier. Content is read at most
// once per call.
type InputFile struct {
	Name         string
	Size         int64
	LastModified time.Time
	ContentType  string
	Content      []byte
}

// Key is the heuristic identity used to correlate classification results
// back to files: name, size and last-modified milliseconds. It is not
// content-based and not guaranteed unique.
func (f *InputFile) Key() string {
	return fmt.Sprintf("%s-%d-%d", f.Name, f.Size, f.LastModified.UnixMilli())
}

// IsImage reports whether the file takes the image classification path.
func (f *InputFile) IsImage() bool {
	return strings.HasPrefix(strings.ToLower(f.ContentType), "image/")
}

// Outcome is the tagged classification result: Result is set for images,
// Analysis for documents. Callers branch on Kind, never on field presence.
type Outcome struct {
	Kind     string
	Result   *types.ClassificationResult
	Analysis *types.DocumentAnalysis
}

// Classification returns the embedded ClassificationResult for either kind.
func (o *Outcome) Classification() *types.ClassificationResult {
	if o == nil {
		return nil
	}

	switch o.Kind {
	case types.ClassifyKindImage:
		return o.Result
	case types.ClassifyKindDocument:
		if o.Analysis != nil {
			return &o.Analysis.Classification
		}
	}

	return nil
}
