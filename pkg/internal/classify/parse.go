package classify

import (
	"fmt"
	"strings"

	"github.com/bytedance/sonic"

	"github.com/Himan2899/SmartFileOrganizer/pkg/internal/types"
	"github.com/Himan2899/SmartFileOrganizer/pkg/log"
	"github.com/Himan2899/SmartFileOrganizer/pkg/metrics"
)

// parseClassification validates a raw model answer. Response-shape problems
// never surface as errors: they are logged, counted, and replaced by the
// fallback result so aggregate statistics stay observable.
func parseClassification(raw string) *types.ClassificationResult {
	res, err := extractClassification(raw)
	if err != nil {
		log.Logger().Warn().Err(err).Msg("classification response unusable, using fallback")
		metrics.ClassificationFallbacks.Inc()

		return fallbackClassification()
	}

	return res
}

// extractClassification locates the JSON object in the raw output, models may
// wrap it in prose.
func extractClassification(raw string) (*types.ClassificationResult, error) {
	start := strings.Index(raw, "{")
	end := strings.LastIndex(raw, "}")

	if start < 0 || end <= start {
		return nil, fmt.Errorf("no JSON found in response")
	}

	var parsed types.ClassificationResult
	if err := sonic.UnmarshalString(raw[start:end+1], &parsed); err != nil {
		return nil, fmt.Errorf("parse classification JSON: %w", err)
	}

	if parsed.Category == "" || parsed.Confidence == 0 {
		return nil, fmt.Errorf("missing required fields in classification response")
	}

	parsed.Confidence = max(0, min(1, parsed.Confidence))

	if parsed.SuggestedFolder == "" {
		parsed.SuggestedFolder = "Documents/" + parsed.Category
	}

	return &parsed, nil
}

// fallbackClassification is the degraded-but-valid result used when the model
// answer cannot be parsed.
func fallbackClassification() *types.ClassificationResult {
	return &types.ClassificationResult{
		Category:        "document",
		Confidence:      0.5,
		SuggestedFolder: "Documents/Unclassified",
		Reasoning:       "Classification failed, using fallback category",
	}
}
