package classify

import (
	"strings"
	"testing"
)

func TestParseClassificationValid(t *testing.T) {
	raw := `{"category":"invoice","confidence":0.92,"subcategory":"utility","suggestedFolder":"Documents/Invoices","reasoning":"mentions amount due"}`

	res := parseClassification(raw)

	if res.Category != "invoice" {
		t.Fatalf("expected invoice, got %q", res.Category)
	}

	if res.Confidence != 0.92 {
		t.Fatalf("expected confidence 0.92, got %v", res.Confidence)
	}

	if res.SuggestedFolder != "Documents/Invoices" {
		t.Fatalf("unexpected folder %q", res.SuggestedFolder)
	}
}

func TestParseClassificationWrappedInProse(t *testing.T) {
	raw := "Sure, here is the result:\n```json\n" +
		`{"category":"resume","confidence":0.8}` + "\n```\nLet me know if you need more."

	res := parseClassification(raw)

	if res.Category != "resume" {
		t.Fatalf("expected resume, got %q", res.Category)
	}
}

func TestParseClassificationClampsConfidence(t *testing.T) {
	high := parseClassification(`{"category":"report","confidence":1.5}`)
	if high.Confidence != 1.0 {
		t.Fatalf("expected confidence clamped to 1.0, got %v", high.Confidence)
	}

	low := parseClassification(`{"category":"report","confidence":-0.2}`)
	if low.Confidence != 0 {
		t.Fatalf("expected confidence clamped to 0, got %v", low.Confidence)
	}

	if low.Category != "report" {
		t.Fatalf("clamping should not discard the result, got %+v", low)
	}
}

func TestParseClassificationDefaultFolder(t *testing.T) {
	res := parseClassification(`{"category":"contract","confidence":0.7}`)

	if res.SuggestedFolder != "Documents/contract" {
		t.Fatalf("expected default folder Documents/contract, got %q", res.SuggestedFolder)
	}
}

func TestParseClassificationFallback(t *testing.T) {
	cases := []string{
		"no json here at all",
		`{"category":"","confidence":0.8}`,
		`{"category":"report","confidence":0}`,
		`{broken json`,
	}

	for _, raw := range cases {
		res := parseClassification(raw)

		if res.Category != "document" || res.Confidence != 0.5 {
			t.Errorf("input %q: expected fallback, got %+v", raw, res)
		}

		if res.SuggestedFolder != "Documents/Unclassified" {
			t.Errorf("input %q: expected fallback folder, got %q", raw, res.SuggestedFolder)
		}

		if !strings.Contains(res.Reasoning, "fallback") {
			t.Errorf("input %q: expected fallback reasoning, got %q", raw, res.Reasoning)
		}
	}
}
